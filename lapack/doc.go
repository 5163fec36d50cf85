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

// Package lapack is a generic, type-safe binding layer over LAPACK-style
// dense linear algebra kernels, parameterized over float32, float64,
// complex64 and complex128.
//
// Every operation follows the same shape: the caller owns column-major
// buffers described by General, the binding validates layout, dimensions
// and flags before any kernel is invoked, workspace is sized by the
// standard two-call query protocol where the routine family requires it,
// the kernel runs once, and its integer status is translated into the
// structured error taxonomy in errors.go. Factorizations overwrite their
// input buffers in place; that is the documented contract, and every
// result type states which of its buffers alias an input.
//
// Kernels are provided by backends registered at init time. The pure-Go
// reference backend (built on gonum.org/v1/gonum) is always registered and
// covers the real pair; the cgo backend, enabled with the lapack_cgo build
// tag, binds a system LAPACK for all four element types. Calls are
// synchronous and hold no shared state: concurrent calls on disjoint
// buffers are safe, sharing a mutable buffer across concurrent calls is a
// caller error.
package lapack
