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

// Package fortran binds a system LAPACK library (reference LAPACK,
// OpenBLAS, MKL and friends all export the same Fortran symbols) through
// cgo, covering all four element types including the complex pair the
// pure-Go backend cannot serve.
//
// The bindings are compiled only with
//
//	CGO_ENABLED=1 go build -tags lapack_cgo
//
// so default builds never require a Fortran toolchain or a system
// library. Linking defaults to -llapack; override with CGO_LDFLAGS to
// point at another vendor. Setting LAPACK_NO_CGO in the environment
// skips registration at run time, falling back to the pure-Go backend.
//
// Buffers cross the boundary as raw pointers: the seam is column-major
// with Fortran index conventions shifted to 0-based on the Go side, so
// the only per-call work is pivot and index translation plus the
// float32/float64 auxiliary-array conversion for the single-precision
// types. The symbol wrappers live in z_fortran.go, generated by
// cmd/lapgen.
package fortran
