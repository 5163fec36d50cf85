// Copyright 2026 go-lapack Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lapack

import (
	"github.com/ajroetker/go-lapack/internal/kernel"

	// The cgo backend (build tag lapack_cgo) registers for all four
	// element types; the pure-Go reference backend registers for the
	// real pair when no other backend has claimed them.
	_ "github.com/ajroetker/go-lapack/internal/fortran"
	_ "github.com/ajroetker/go-lapack/internal/gonum"
)

// tab returns the kernel table for T. Bindings fetch it once per call.
func tab[T Scalar]() *kernel.Table[T] {
	return kernel.For[T]()
}

// noKernel panics for a routine the registered backend does not bind,
// mirroring a call into an unregistered implementation. Routine lookup is
// a program configuration issue, not a per-call runtime condition, so this
// is a panic rather than an error return.
func noKernel(routine string, backend string) {
	if backend == "" {
		panic("lapack: no backend registered for element type (routine " + routine + ")")
	}
	panic("lapack: backend " + backend + " does not bind " + routine)
}

// Available reports whether any backend registered kernels for element
// type T.
func Available[T Scalar]() bool {
	return tab[T]().Backend != ""
}

// Backend returns the name of the backend serving element type T, or the
// empty string.
func Backend[T Scalar]() string {
	return tab[T]().Backend
}

// Routines returns the kernel names the backend for T has bound. Intended
// for diagnostics.
func Routines[T Scalar]() []string {
	return tab[T]().Routines()
}
