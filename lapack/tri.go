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

// Triangular solve, inversion and condition estimation. The coefficient
// matrix is the uplo triangle of a square General buffer; diag == Unit
// means the diagonal is all ones and is not referenced.

// Trtrs solves op(A)*X = B with A triangular, overwriting b with the
// solution. A zero diagonal element (with diag == NonUnit) yields a
// SingularError before any solution is computed.
func Trtrs[T Scalar](uplo Uplo, trans Transpose, diag Diag, a, b General[T]) error {
	if err := checkFlag("uplo", byte(uplo), "UL"); err != nil {
		return err
	}
	if err := checkFlag("trans", byte(trans), "NTC"); err != nil {
		return err
	}
	if err := checkFlag("diag", byte(diag), "NU"); err != nil {
		return err
	}
	if err := checkSquare("a", a); err != nil {
		return err
	}
	if err := checkSolveDims(a.Rows, b); err != nil {
		return err
	}
	k := tab[T]()
	if k.Trtrs == nil {
		noKernel("trtrs", k.Backend)
	}
	info := k.Trtrs(byte(uplo), byte(trans), byte(diag), a.Rows, b.Cols, a.Data, a.Stride, b.Data, b.Stride)
	return checkInfoSingular("trtrs", info)
}

// Trtri computes the inverse of a triangular matrix in place. A zero
// diagonal element (with diag == NonUnit) yields a SingularError carrying
// its index.
func Trtri[T Scalar](uplo Uplo, diag Diag, a General[T]) error {
	if err := checkFlag("uplo", byte(uplo), "UL"); err != nil {
		return err
	}
	if err := checkFlag("diag", byte(diag), "NU"); err != nil {
		return err
	}
	if err := checkSquare("a", a); err != nil {
		return err
	}
	k := tab[T]()
	if k.Trtri == nil {
		noKernel("trtri", k.Backend)
	}
	info := k.Trtri(byte(uplo), byte(diag), a.Rows, a.Data, a.Stride)
	return checkInfoSingular("trtri", info)
}

// Trcon estimates the reciprocal condition number of a triangular matrix
// in the 1-norm or ∞-norm. The result is in [0, 1].
func Trcon[T Scalar](norm Norm, uplo Uplo, diag Diag, a General[T]) (float64, error) {
	if err := checkFlag("norm", byte(norm), "1OI"); err != nil {
		return 0, err
	}
	if err := checkFlag("uplo", byte(uplo), "UL"); err != nil {
		return 0, err
	}
	if err := checkFlag("diag", byte(diag), "NU"); err != nil {
		return 0, err
	}
	if err := checkSquare("a", a); err != nil {
		return 0, err
	}
	k := tab[T]()
	if k.Trcon == nil {
		noKernel("trcon", k.Backend)
	}
	n := a.Rows
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
	info := k.Trcon(byte(norm), byte(uplo), byte(diag), n, a.Data, a.Stride, &rcond, work, rwork, iwork)
	if err := checkInfo("trcon", info); err != nil {
		return 0, err
	}
	return rcond, nil
}
