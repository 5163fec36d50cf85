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

// Cholesky holds a Cholesky factorization computed by Potrf. A aliases the
// input buffer; only the Uplo triangle holds the factor, the other
// triangle is untouched input.
type Cholesky[T Scalar] struct {
	Uplo Uplo
	A    General[T]
}

// Potrf computes the Cholesky factorization of a symmetric (Hermitian)
// positive definite matrix: A = Uᴴ*U for Upper, A = L*Lᴴ for Lower. Only
// the uplo triangle of a is referenced and overwritten. If a leading minor
// is found not positive definite the call fails with
// NotPositiveDefiniteError carrying the minor's order.
func Potrf[T Scalar](uplo Uplo, a General[T]) (Cholesky[T], error) {
	if err := checkFlag("uplo", byte(uplo), "UL"); err != nil {
		return Cholesky[T]{}, err
	}
	if err := checkSquare("a", a); err != nil {
		return Cholesky[T]{}, err
	}
	k := tab[T]()
	if k.Potrf == nil {
		noKernel("potrf", k.Backend)
	}
	info := k.Potrf(byte(uplo), a.Rows, a.Data, a.Stride)
	if err := checkInfoPosDef("potrf", info); err != nil {
		return Cholesky[T]{}, err
	}
	return Cholesky[T]{Uplo: uplo, A: a}, nil
}

// Potrs solves A*X = B using a Cholesky factorization, overwriting b with
// the solution.
func Potrs[T Scalar](ch Cholesky[T], b General[T]) error {
	if err := checkSquare("a", ch.A); err != nil {
		return err
	}
	if err := checkSolveDims(ch.A.Rows, b); err != nil {
		return err
	}
	k := tab[T]()
	if k.Potrs == nil {
		noKernel("potrs", k.Backend)
	}
	info := k.Potrs(byte(ch.Uplo), ch.A.Rows, b.Cols, ch.A.Data, ch.A.Stride, b.Data, b.Stride)
	return checkInfo("potrs", info)
}

// Potri computes the inverse of a positive definite matrix from its
// Cholesky factorization, overwriting the uplo triangle of the factor with
// the corresponding triangle of the inverse. A zero diagonal element in
// the factor yields a SingularError.
func Potri[T Scalar](ch Cholesky[T]) error {
	if err := checkSquare("a", ch.A); err != nil {
		return err
	}
	k := tab[T]()
	if k.Potri == nil {
		noKernel("potri", k.Backend)
	}
	info := k.Potri(byte(ch.Uplo), ch.A.Rows, ch.A.Data, ch.A.Stride)
	return checkInfoSingular("potri", info)
}

// PivotedCholesky holds the rank-revealing factorization computed by
// Pstrf: Pᵀ*A*P = Uᴴ*U or L*Lᴴ truncated at Rank. A aliases the input
// buffer, Piv is the 0-based pivot permutation.
type PivotedCholesky[T Scalar] struct {
	Uplo Uplo
	A    General[T]
	Piv  []int
	Rank int
}

// Pstrf computes the pivoted Cholesky factorization of a positive
// semidefinite matrix. tol is the rank-decision tolerance; a negative
// value selects the kernel default n*eps*max(diag(A)). If the matrix is
// found rank deficient at that tolerance the factorization is still
// returned, along with a RankDeficientError carrying the computed rank.
func Pstrf[T Scalar](uplo Uplo, a General[T], tol float64) (PivotedCholesky[T], error) {
	if err := checkFlag("uplo", byte(uplo), "UL"); err != nil {
		return PivotedCholesky[T]{}, err
	}
	if err := checkSquare("a", a); err != nil {
		return PivotedCholesky[T]{}, err
	}
	k := tab[T]()
	if k.Pstrf == nil {
		noKernel("pstrf", k.Backend)
	}
	n := a.Rows
	piv := make([]int, n)
	var rank int
	work := scratch[float64](2 * n)
	info := k.Pstrf(byte(uplo), n, a.Data, a.Stride, piv, &rank, tol, work)
	pc := PivotedCholesky[T]{Uplo: uplo, A: a, Piv: piv, Rank: rank}
	switch {
	case info < 0:
		return PivotedCholesky[T]{}, &ArgumentError{Routine: "pstrf", Index: -info}
	case info > 0:
		return pc, &RankDeficientError{Routine: "pstrf", Rank: rank}
	}
	return pc, nil
}

// Pocon estimates the reciprocal 1-norm condition number of a positive
// definite matrix from its Cholesky factorization and the 1-norm of the
// original matrix. The result is in [0, 1].
func Pocon[T Scalar](ch Cholesky[T], anorm float64) (float64, error) {
	if err := checkSquare("a", ch.A); err != nil {
		return 0, err
	}
	k := tab[T]()
	if k.Pocon == nil {
		noKernel("pocon", k.Backend)
	}
	n := ch.A.Rows
	var rcond float64
	var rwork []float64
	var iwork []int
	var work []T
	if TypeOf[T]().Complex {
		work = scratch[T](2 * n)
		rwork = scratch[float64](n)
	} else {
		work = scratch[T](3 * n)
		iwork = scratch[int](n)
	}
	info := k.Pocon(byte(ch.Uplo), n, ch.A.Data, ch.A.Stride, anorm, &rcond, work, rwork, iwork)
	if err := checkInfo("pocon", info); err != nil {
		return 0, err
	}
	return rcond, nil
}
