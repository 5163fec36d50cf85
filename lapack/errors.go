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

import "fmt"

// The error taxonomy splits into two halves. Local precondition failures
// (LayoutError, DimensionError, FlagError) are detected by the validation
// layer and returned before any kernel is invoked; the caller can correct
// the inputs and retry. Kernel failures (ArgumentError and the positive-
// status family below) are translated from the routine's integer status
// immediately after the call, are never retried internally, and carry the
// raw status or offending index for diagnosis.

// LayoutError reports a buffer whose storage does not satisfy the
// column-contiguous layout the kernels require: a leading dimension below
// the row count, or a data slice too short for the described shape.
type LayoutError struct {
	Arg    string
	Reason string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("lapack: bad layout for %s: %s", e.Arg, e.Reason)
}

// DimensionError reports incompatible or invalid matrix dimensions, named
// so the caller can see which operands disagree.
type DimensionError struct {
	Reason string
}

func (e *DimensionError) Error() string {
	return "lapack: dimension mismatch: " + e.Reason
}

// FlagError reports an operation flag outside its allowed set.
type FlagError struct {
	Name    string
	Value   byte
	Allowed string
}

func (e *FlagError) Error() string {
	return fmt.Sprintf("lapack: invalid %s flag %q, allowed %q", e.Name, e.Value, e.Allowed)
}

// ArgumentError reports a strictly negative kernel status: argument Index
// (1-based, as numbered in the kernel's parameter list) had an illegal
// value. With the validation layer in front of every call this indicates a
// binding bug rather than a caller error, and it is always fatal to the
// call.
type ArgumentError struct {
	Routine string
	Index   int
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("lapack: illegal value for argument %d of %s", e.Index, e.Routine)
}

// KernelError reports a positive kernel status for a routine family that
// defines no more specific semantic; Status holds the raw value.
type KernelError struct {
	Routine string
	Status  int
}

func (e *KernelError) Error() string {
	return fmt.Sprintf("lapack: %s failed with status %d", e.Routine, e.Status)
}

// SingularError reports exact singularity detected by a routine that
// checks for it (triangular inversion and solves, tridiagonal
// factorization). Index is the 0-based position of the first zero pivot or
// diagonal element.
type SingularError struct {
	Routine string
	Index   int
}

func (e *SingularError) Error() string {
	return fmt.Sprintf("lapack: %s: matrix is singular at diagonal element %d", e.Routine, e.Index)
}

// NotPositiveDefiniteError reports a Cholesky-family failure. Minor is the
// order of the first leading principal minor that is not positive
// definite (1-based, matching the kernel's status value).
type NotPositiveDefiniteError struct {
	Routine string
	Minor   int
}

func (e *NotPositiveDefiniteError) Error() string {
	return fmt.Sprintf("lapack: %s: leading minor of order %d is not positive definite", e.Routine, e.Minor)
}

// RankDeficientError reports that a rank-revealing factorization or a
// full-rank solver found the matrix rank deficient at the requested
// tolerance. Rank is the computed rank.
type RankDeficientError struct {
	Routine string
	Rank    int
}

func (e *RankDeficientError) Error() string {
	return fmt.Sprintf("lapack: %s: matrix is rank deficient (rank %d)", e.Routine, e.Rank)
}

// ConvergenceError reports that an iterative kernel (eigenvalue, Schur or
// SVD iteration) did not converge. Index is the row/column index or
// element count the kernel reported in its status.
type ConvergenceError struct {
	Routine string
	Index   int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("lapack: %s did not converge (status %d)", e.Routine, e.Index)
}

// The per-family status policies. Each takes the raw info code returned by
// a kernel and produces the structured error for that family, or nil on
// success. Negative status always maps to ArgumentError.

func checkInfo(routine string, info int) error {
	switch {
	case info < 0:
		return &ArgumentError{Routine: routine, Index: -info}
	case info > 0:
		return &KernelError{Routine: routine, Status: info}
	}
	return nil
}

func checkInfoSingular(routine string, info int) error {
	switch {
	case info < 0:
		return &ArgumentError{Routine: routine, Index: -info}
	case info > 0:
		return &SingularError{Routine: routine, Index: info - 1}
	}
	return nil
}

func checkInfoPosDef(routine string, info int) error {
	switch {
	case info < 0:
		return &ArgumentError{Routine: routine, Index: -info}
	case info > 0:
		return &NotPositiveDefiniteError{Routine: routine, Minor: info}
	}
	return nil
}

func checkInfoConverge(routine string, info int) error {
	switch {
	case info < 0:
		return &ArgumentError{Routine: routine, Index: -info}
	case info > 0:
		return &ConvergenceError{Routine: routine, Index: info}
	}
	return nil
}
