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

// LU holds a pivoted LU factorization computed by Getrf. A aliases the
// input buffer: the unit lower triangular factor L is stored below the
// diagonal, the upper triangular factor U on and above it. Ipiv records
// the row interchanges, 0-based: row i was exchanged with row Ipiv[i].
//
// ZeroPivot is the 0-based index of the first exactly zero diagonal
// element of U, or -1 if none. An exactly singular matrix is not an error
// at factorization time; dividing by the zero pivot in a subsequent solve
// is where the failure surfaces.
type LU[T Scalar] struct {
	A         General[T]
	Ipiv      []int
	ZeroPivot int
}

// Getrf computes the LU factorization with partial pivoting of a general
// m×n matrix, P*A = L*U, overwriting a with the factors.
func Getrf[T Scalar](a General[T]) (LU[T], error) {
	if err := checkGeneral("a", a); err != nil {
		return LU[T]{}, err
	}
	k := tab[T]()
	if k.Getrf == nil {
		noKernel("getrf", k.Backend)
	}
	ipiv := make([]int, min(a.Rows, a.Cols))
	info := k.Getrf(a.Rows, a.Cols, a.Data, a.Stride, ipiv)
	if info < 0 {
		return LU[T]{}, &ArgumentError{Routine: "getrf", Index: -info}
	}
	lu := LU[T]{A: a, Ipiv: ipiv, ZeroPivot: -1}
	if info > 0 {
		lu.ZeroPivot = info - 1
	}
	return lu, nil
}

// Getrs solves A*X = B, Aᵀ*X = B or Aᴴ*X = B using the factorization
// computed by Getrf. The coefficient matrix must be square. On return b is
// overwritten with the solution.
func Getrs[T Scalar](trans Transpose, lu LU[T], b General[T]) error {
	if err := checkFlag("trans", byte(trans), "NTC"); err != nil {
		return err
	}
	if err := checkSquare("a", lu.A); err != nil {
		return err
	}
	n := lu.A.Rows
	if err := checkVector("ipiv", lu.Ipiv, n); err != nil {
		return err
	}
	if err := checkSolveDims(n, b); err != nil {
		return err
	}
	k := tab[T]()
	if k.Getrs == nil {
		noKernel("getrs", k.Backend)
	}
	info := k.Getrs(byte(trans), n, b.Cols, lu.A.Data, lu.A.Stride, lu.Ipiv, b.Data, b.Stride)
	return checkInfo("getrs", info)
}

// Getri computes the inverse of a square matrix from its LU factorization,
// overwriting the factors with the inverse. An exactly singular factor
// yields a SingularError carrying the index of the zero pivot.
func Getri[T Scalar](lu LU[T]) error {
	if err := checkSquare("a", lu.A); err != nil {
		return err
	}
	n := lu.A.Rows
	if err := checkVector("ipiv", lu.Ipiv, n); err != nil {
		return err
	}
	k := tab[T]()
	if k.Getri == nil {
		noKernel("getri", k.Backend)
	}
	info := queryWork(func(work []T, lwork int) int {
		return k.Getri(n, lu.A.Data, lu.A.Stride, lu.Ipiv, work, lwork)
	})
	return checkInfoSingular("getri", info)
}
