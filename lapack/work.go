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

// The two-call workspace protocol. Most blocked kernels cannot tell the
// caller their optimal scratch size in closed form: it depends on internal
// blocking parameters. Passing lwork == -1 makes the kernel write the
// optimal size into work[0] at negligible cost instead of doing real work.
// queryWork runs that query, allocates, and runs the real call, so the
// discipline is written once and shared by every routine family that needs
// it. Families with closed-form scratch sizes (tridiagonal solves, RFP
// conversions) never come through here.

// queryWork invokes call twice: first with a 1-element probe buffer and
// lwork == -1 to learn the optimal scratch size, then with a buffer of
// that size. A nonzero status from the query phase is returned immediately
// without attempting real work.
func queryWork[T Scalar](call func(work []T, lwork int) int) int {
	var probe [1]T
	if info := call(probe[:], -1); info != 0 {
		return info
	}
	lwork := max(1, workInt(probe[0]))
	work := make([]T, lwork)
	return call(work, lwork)
}

// workInt reads a scratch size a kernel reported through the first element
// of a work array.
func workInt[T Scalar](v T) int {
	switch x := any(v).(type) {
	case float32:
		return int(x)
	case float64:
		return int(x)
	case complex64:
		return int(real(x))
	case complex128:
		return int(real(x))
	}
	return 0
}

// scratch allocates a kernel scratch buffer of at least n elements,
// never empty: kernels expect a valid pointer even for degenerate shapes.
func scratch[T any](n int) []T {
	return make([]T, max(1, n))
}
