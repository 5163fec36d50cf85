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
	"fmt"
	"strings"
)

// Validation utilities. Every binding runs these before touching the
// kernel table, so no partial native invocation can happen on a caller
// error.

// checkGeneral verifies the storage of a column-major buffer: nonnegative
// shape, leading dimension at least the row count, and a data slice long
// enough to hold the last column.
func checkGeneral[T Scalar](arg string, a General[T]) error {
	if a.Rows < 0 || a.Cols < 0 {
		return &DimensionError{Reason: fmt.Sprintf("%s has negative shape %d×%d", arg, a.Rows, a.Cols)}
	}
	if a.Stride < max(1, a.Rows) {
		return &LayoutError{Arg: arg, Reason: fmt.Sprintf("leading dimension %d below row count %d", a.Stride, a.Rows)}
	}
	if a.Cols > 0 && len(a.Data) < a.Stride*(a.Cols-1)+a.Rows {
		return &LayoutError{Arg: arg, Reason: fmt.Sprintf("data length %d short of %d×%d with leading dimension %d", len(a.Data), a.Rows, a.Cols, a.Stride)}
	}
	return nil
}

// checkSquare verifies storage and squareness.
func checkSquare[T Scalar](arg string, a General[T]) error {
	if err := checkGeneral(arg, a); err != nil {
		return err
	}
	if a.Rows != a.Cols {
		return &DimensionError{Reason: fmt.Sprintf("%s is %d×%d, want square", arg, a.Rows, a.Cols)}
	}
	return nil
}

// checkSolveDims verifies that a right-hand-side buffer is compatible with
// an n×n coefficient matrix.
func checkSolveDims[T Scalar](n int, b General[T]) error {
	if err := checkGeneral("b", b); err != nil {
		return err
	}
	if b.Rows != n {
		return &DimensionError{Reason: fmt.Sprintf("right-hand side has %d rows, coefficient matrix has dimension %d", b.Rows, n)}
	}
	return nil
}

// checkVector verifies an auxiliary vector length.
func checkVector[T any](arg string, v []T, n int) error {
	if len(v) < n {
		return &DimensionError{Reason: fmt.Sprintf("%s has length %d, want at least %d", arg, len(v), n)}
	}
	return nil
}

// checkFlag verifies that a single-character flag belongs to its allowed
// set.
func checkFlag(name string, value byte, allowed string) error {
	if strings.IndexByte(allowed, value) < 0 {
		return &FlagError{Name: name, Value: value, Allowed: allowed}
	}
	return nil
}

// transSet returns the transpose flags a kernel accepts for element type
// T: real types reject the distinct conjugate transpose, complex types
// accept it.
func transSet[T Scalar]() string {
	if TypeOf[T]().Complex {
		return "NC"
	}
	return "NT"
}
