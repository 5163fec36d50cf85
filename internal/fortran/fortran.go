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

//go:build cgo && lapack_cgo

package fortran

import (
	"os"
	"unsafe"

	"github.com/rs/zerolog/log"
)

func init() {
	if os.Getenv("LAPACK_NO_CGO") != "" {
		log.Debug().Str("backend", "fortran").Msg("LAPACK_NO_CGO set, skipping registration")
		return
	}
	registerS()
	registerD()
	registerC()
	registerZ()
	log.Debug().
		Str("backend", "fortran").
		Strs("types", []string{"float32", "float64", "complex64", "complex128"}).
		Msg("registered Fortran LAPACK backend")
}

// Fortran takes every argument by reference. pt passes a scalar local,
// pv a slice base. Go memory is pinned for the duration of a cgo call,
// so no C-side copies are needed.

func pt[T any](x *T) unsafe.Pointer {
	return unsafe.Pointer(x)
}

func pv[T any](s []T) unsafe.Pointer {
	if len(s) == 0 {
		s = make([]T, 1)
	}
	return unsafe.Pointer(&s[0])
}

// i32 allocates an int32 scratch array for Fortran integer workspaces.
func i32(n int) []int32 {
	return make([]int32, max(1, n))
}

// fpiv converts a 0-based pivot vector to Fortran's 1-based int32 form.
func fpiv(ip []int) []int32 {
	out := make([]int32, max(1, len(ip)))
	for i, v := range ip {
		out[i] = int32(v) + 1
	}
	return out
}

// gpiv writes a Fortran pivot vector back in 0-based form.
func gpiv(dst []int, src []int32) {
	for i := range dst {
		dst[i] = int(src[i]) - 1
	}
}

// f32 narrows a float64 auxiliary array for the single-precision kernels.
func f32(s []float64) []float32 {
	out := make([]float32, max(1, len(s)))
	for i, v := range s {
		out[i] = float32(v)
	}
	return out
}

// f64 widens single-precision kernel output back into the caller's array.
func f64(dst []float64, src []float32) {
	for i := range dst {
		dst[i] = float64(src[i])
	}
}
