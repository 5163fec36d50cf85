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

// General tridiagonal systems. The matrix is described by its
// sub-diagonal dl (n-1 elements), diagonal d (n) and super-diagonal du
// (n-1). All scratch sizes are closed-form for this family, so none of
// these bindings use the workspace query protocol.

func checkTridiag[T Scalar](n int, dl, d, du []T) error {
	if len(d) != n {
		return &DimensionError{Reason: fmt.Sprintf("diagonal has length %d, want %d", len(d), n)}
	}
	if len(dl) < max(0, n-1) || len(du) < max(0, n-1) {
		return &DimensionError{Reason: "off-diagonals must have length n-1"}
	}
	return nil
}

// Gtsv solves A*X = B for a general tridiagonal A with partial pivoting,
// overwriting b with the solution. dl, d and du are destroyed. An exactly
// zero pivot yields a SingularError with its index; the solution is not
// computed.
func Gtsv[T Scalar](dl, d, du []T, b General[T]) error {
	n := len(d)
	if err := checkTridiag(n, dl, d, du); err != nil {
		return err
	}
	if err := checkSolveDims(n, b); err != nil {
		return err
	}
	k := tab[T]()
	if k.Gtsv == nil {
		noKernel("gtsv", k.Backend)
	}
	info := k.Gtsv(n, b.Cols, dl, d, du, b.Data, b.Stride)
	return checkInfoSingular("gtsv", info)
}

// Tridiagonal holds the pivoted LU factorization of a tridiagonal matrix
// computed by Gttrf. DL, D and DU alias the input vectors and hold the
// factors; DU2 is the second super-diagonal of U introduced by pivoting.
// Ipiv is 0-based. Like dense LU, an exactly zero pivot is not an error at
// factorization time: ZeroPivot records its index (or -1), and the failure
// surfaces when a solve divides by it.
type Tridiagonal[T Scalar] struct {
	DL, D, DU, DU2 []T
	Ipiv           []int
	ZeroPivot      int
}

// Gttrf computes the LU factorization of a general tridiagonal matrix with
// partial pivoting, in place.
func Gttrf[T Scalar](dl, d, du []T) (Tridiagonal[T], error) {
	n := len(d)
	if err := checkTridiag(n, dl, d, du); err != nil {
		return Tridiagonal[T]{}, err
	}
	k := tab[T]()
	if k.Gttrf == nil {
		noKernel("gttrf", k.Backend)
	}
	du2 := make([]T, max(0, n-2))
	ipiv := make([]int, n)
	info := k.Gttrf(n, dl, d, du, du2, ipiv)
	if info < 0 {
		return Tridiagonal[T]{}, &ArgumentError{Routine: "gttrf", Index: -info}
	}
	tf := Tridiagonal[T]{DL: dl, D: d, DU: du, DU2: du2, Ipiv: ipiv, ZeroPivot: -1}
	if info > 0 {
		tf.ZeroPivot = info - 1
	}
	return tf, nil
}

// Gttrs solves op(A)*X = B using the factorization computed by Gttrf,
// overwriting b with the solution.
func Gttrs[T Scalar](trans Transpose, tf Tridiagonal[T], b General[T]) error {
	if err := checkFlag("trans", byte(trans), "NTC"); err != nil {
		return err
	}
	n := len(tf.D)
	if err := checkTridiag(n, tf.DL, tf.D, tf.DU); err != nil {
		return err
	}
	if err := checkVector("du2", tf.DU2, max(0, n-2)); err != nil {
		return err
	}
	if err := checkVector("ipiv", tf.Ipiv, n); err != nil {
		return err
	}
	if err := checkSolveDims(n, b); err != nil {
		return err
	}
	k := tab[T]()
	if k.Gttrs == nil {
		noKernel("gttrs", k.Backend)
	}
	info := k.Gttrs(byte(trans), n, b.Cols, tf.DL, tf.D, tf.DU, tf.DU2, tf.Ipiv, b.Data, b.Stride)
	return checkInfo("gttrs", info)
}
