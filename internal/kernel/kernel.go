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

// Package kernel holds the per-element-type routine tables that back the
// public lapack package. A backend (the pure-Go gonum adapter, or the cgo
// Fortran bindings) fills the tables for the element types it supports at
// init time; the binding layer looks them up through For.
//
// Conventions at this seam, shared by every backend:
//
//   - Matrix buffers are column-major with an explicit leading dimension.
//   - Flags are single-byte LAPACK characters ('U', 'L', 'N', 'T', ...),
//     already validated by the binding layer.
//   - Pivot and index vectors are 0-based.
//   - Real-valued auxiliary arrays (eigenvalues, singular values, rcond,
//     real scratch) are float64 for all four element types; backends narrow
//     or widen at the edge for the single-precision pair.
//   - Every routine returns the raw LAPACK info code: negative for an
//     illegal argument index, zero for success, positive per the routine's
//     documented meaning.
package kernel

import "reflect"

// Scalar is the element-type quartet every routine family is parameterized
// over.
type Scalar interface {
	float32 | float64 | complex64 | complex128
}

// Table binds one LAPACK routine set for a single element type. Nil fields
// mean the registered backend does not provide that routine; the binding
// layer panics on use, mirroring an unregistered implementation.
//
// Slices named work/rwork/iwork are scratch owned by the caller of the
// field; lwork == -1 requests a workspace-size query writing the optimal
// size into work[0] (and rwork[0]/iwork[0] where documented) without doing
// real work.
type Table[T Scalar] struct {
	// Backend is the name of the backend that filled this table, empty if
	// no backend registered for the element type.
	Backend string

	// General dense (LU).
	Getrf func(m, n int, a []T, lda int, ipiv []int) int
	Getrs func(trans byte, n, nrhs int, a []T, lda int, ipiv []int, b []T, ldb int) int
	Getri func(n int, a []T, lda int, ipiv []int, work []T, lwork int) int
	Gecon func(norm byte, n int, a []T, lda int, anorm float64, rcond *float64, work []T, rwork []float64, iwork []int) int

	// General banded (LU). ab is LAPACK band storage: kl+ku+1 occupied
	// rows plus kl fill-in rows on top, ldab >= 2*kl+ku+1, the diagonal
	// in row kl+ku.
	Gbtrf func(m, n, kl, ku int, ab []T, ldab int, ipiv []int) int
	Gbtrs func(trans byte, n, kl, ku, nrhs int, ab []T, ldab int, ipiv []int, b []T, ldb int) int
	Gbsv  func(n, kl, ku, nrhs int, ab []T, ldab int, ipiv []int, b []T, ldb int) int

	// Orthogonal factorizations. For complex element types these fields
	// bind the unitary (un*) kernels.
	Geqrf func(m, n int, a []T, lda int, tau, work []T, lwork int) int
	Orgqr func(m, n, k int, a []T, lda int, tau, work []T, lwork int) int
	Ormqr func(side, trans byte, m, n, k int, a []T, lda int, tau, c []T, ldc int, work []T, lwork int) int
	Gelqf func(m, n int, a []T, lda int, tau, work []T, lwork int) int
	Orglq func(m, n, k int, a []T, lda int, tau, work []T, lwork int) int
	Ormlq func(side, trans byte, m, n, k int, a []T, lda int, tau, c []T, ldc int, work []T, lwork int) int
	Gels  func(trans byte, m, n, nrhs int, a []T, lda int, b []T, ldb int, work []T, lwork int) int

	// Positive definite (Cholesky).
	Potrf func(uplo byte, n int, a []T, lda int) int
	Potrs func(uplo byte, n, nrhs int, a []T, lda int, b []T, ldb int) int
	Potri func(uplo byte, n int, a []T, lda int) int
	Pocon func(uplo byte, n int, a []T, lda int, anorm float64, rcond *float64, work []T, rwork []float64, iwork []int) int
	Pstrf func(uplo byte, n int, a []T, lda int, piv []int, rank *int, tol float64, work []float64) int

	// Triangular.
	Trtrs func(uplo, trans, diag byte, n, nrhs int, a []T, lda int, b []T, ldb int) int
	Trtri func(uplo, diag byte, n int, a []T, lda int) int
	Trcon func(norm, uplo, diag byte, n int, a []T, lda int, rcond *float64, work []T, rwork []float64, iwork []int) int

	// Symmetric/Hermitian eigenproblems. Stev is bound for the real pair
	// only (the symmetric tridiagonal solver has no complex variant at
	// this layer).
	Syev  func(jobz, uplo byte, n int, a []T, lda int, w []float64, work []T, lwork int, rwork []float64) int
	Syevr func(jobz, rng, uplo byte, n int, a []T, lda int, vl, vu float64, il, iu int, abstol float64, m *int, w []float64, z []T, ldz int, isuppz []int, work []T, lwork int, rwork []float64, lrwork int, iwork []int, liwork int) int
	Stev  func(jobz byte, n int, d, e []T, z []T, ldz int, work []T) int

	// Nonsymmetric eigenproblems. Real backends fill wr/wi, complex
	// backends fill w; the unused pair is nil.
	Geev func(jobvl, jobvr byte, n int, a []T, lda int, wr, wi []float64, w []T, vl []T, ldvl int, vr []T, ldvr int, work []T, lwork int, rwork []float64) int

	// Singular value decomposition. Bdsdc (divide and conquer) is bound
	// for the real pair only.
	Gesvd func(jobu, jobvt byte, m, n int, a []T, lda int, s []float64, u []T, ldu int, vt []T, ldvt int, work []T, lwork int, rwork []float64) int
	Gesdd func(jobz byte, m, n int, a []T, lda int, s []float64, u []T, ldu int, vt []T, ldvt int, work []T, lwork int, rwork []float64, iwork []int) int
	Bdsqr func(uplo byte, n, ncvt, nru, ncc int, d, e []float64, vt []T, ldvt int, u []T, ldu int, c []T, ldc int, rwork []float64) int
	Bdsdc func(uplo, compq byte, n int, d, e []float64, u []T, ldu int, vt []T, ldvt int, work []float64, iwork []int) int

	// General tridiagonal.
	Gtsv  func(n, nrhs int, dl, d, du []T, b []T, ldb int) int
	Gttrf func(n int, dl, d, du, du2 []T, ipiv []int) int
	Gttrs func(trans byte, n, nrhs int, dl, d, du, du2 []T, ipiv []int, b []T, ldb int) int

	// Hessenberg reduction and Schur form. ilo/ihi are 0-based inclusive.
	Gehrd func(n, ilo, ihi int, a []T, lda int, tau, work []T, lwork int) int
	Orghr func(n, ilo, ihi int, a []T, lda int, tau, work []T, lwork int) int
	Gees  func(jobvs byte, n int, a []T, lda int, wr, wi []float64, w []T, vs []T, ldvs int, work []T, lwork int, rwork []float64) int

	// Norms.
	Lange func(norm byte, m, n int, a []T, lda int, rwork []float64) float64

	// Rectangular full packed conversions.
	Trttf func(transr, uplo byte, n int, a []T, lda int, arf []T) int
	Tfttr func(transr, uplo byte, n int, arf []T, a []T, lda int) int
}

// The four tables, one per supported element type.
var (
	S Table[float32]
	D Table[float64]
	C Table[complex64]
	Z Table[complex128]
)

// For returns the table for element type T.
func For[T Scalar]() *Table[T] {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(&S).(*Table[T])
	case float64:
		return any(&D).(*Table[T])
	case complex64:
		return any(&C).(*Table[T])
	case complex128:
		return any(&Z).(*Table[T])
	}
	panic("kernel: unsupported element type")
}

// Routines returns the names of the routine fields a backend has bound,
// in declaration order. Used by diagnostics.
func (t *Table[T]) Routines() []string {
	v := reflect.ValueOf(t).Elem()
	typ := v.Type()
	var bound []string
	for i := 0; i < typ.NumField(); i++ {
		if typ.Field(i).Type.Kind() != reflect.Func {
			continue
		}
		if !v.Field(i).IsNil() {
			bound = append(bound, typ.Field(i).Name)
		}
	}
	return bound
}
