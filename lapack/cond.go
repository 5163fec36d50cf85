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

// Gecon estimates the reciprocal condition number of a general square
// matrix from its LU factorization, in the 1-norm or ∞-norm. anorm must be
// the corresponding norm of the original (unfactored) matrix, as computed
// by Lange. The result is in [0, 1]; an exactly singular matrix estimates
// to 0.
func Gecon[T Scalar](norm Norm, lu LU[T], anorm float64) (float64, error) {
	if err := checkFlag("norm", byte(norm), "1OI"); err != nil {
		return 0, err
	}
	if err := checkSquare("a", lu.A); err != nil {
		return 0, err
	}
	k := tab[T]()
	if k.Gecon == nil {
		noKernel("gecon", k.Backend)
	}
	n := lu.A.Rows
	var rcond float64
	var rwork []float64
	var iwork []int
	var work []T
	if TypeOf[T]().Complex {
		work = scratch[T](2 * n)
		rwork = scratch[float64](2 * n)
	} else {
		work = scratch[T](4 * n)
		iwork = scratch[int](n)
	}
	info := k.Gecon(byte(norm), n, lu.A.Data, lu.A.Stride, anorm, &rcond, work, rwork, iwork)
	if err := checkInfo("gecon", info); err != nil {
		return 0, err
	}
	return rcond, nil
}

// Lange computes the selected norm of a general m×n matrix: the largest
// absolute element, the 1-norm (maximum column sum), the ∞-norm (maximum
// row sum) or the Frobenius norm. It is the usual producer of the anorm
// argument to the condition estimators.
func Lange[T Scalar](norm Norm, a General[T]) (float64, error) {
	if err := checkFlag("norm", byte(norm), "M1OIF"); err != nil {
		return 0, err
	}
	if err := checkGeneral("a", a); err != nil {
		return 0, err
	}
	k := tab[T]()
	if k.Lange == nil {
		noKernel("lange", k.Backend)
	}
	var rwork []float64
	if norm == InfNorm {
		rwork = scratch[float64](a.Rows)
	}
	return k.Lange(byte(norm), a.Rows, a.Cols, a.Data, a.Stride, rwork), nil
}
