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
	"errors"
	"testing"
)

func TestGtsv(t *testing.T) {
	// Diagonally dominant system with solution x = [1 1 1].
	dl := []float64{1, 1}
	d := []float64{4, 4, 4}
	du := []float64{1, 1}
	b := colFrom([]float64{5, 6, 5})
	if err := Gtsv(dl, d, du, b); err != nil {
		t.Fatal(err)
	}
	wantVec(t, "x", []float64{b.At(0, 0), b.At(1, 0), b.At(2, 0)}, []float64{1, 1, 1}, tol)
}

func TestGtsvSingular(t *testing.T) {
	dl := []float64{0}
	d := []float64{0, 0}
	du := []float64{0}
	b := colFrom([]float64{1, 1})
	err := Gtsv(dl, d, du, b)
	var se *SingularError
	if !errors.As(err, &se) {
		t.Fatalf("got %v, want SingularError", err)
	}
}

func TestGtsvDimensionChecks(t *testing.T) {
	var de *DimensionError
	if err := Gtsv([]float64{1}, []float64{1, 1, 1}, []float64{1}, colFrom([]float64{1, 1, 1})); !errors.As(err, &de) {
		t.Errorf("short off-diagonal: got %v, want DimensionError", err)
	}
	if err := Gtsv([]float64{1, 1}, []float64{1, 1, 1}, []float64{1, 1}, colFrom([]float64{1, 1})); !errors.As(err, &de) {
		t.Errorf("short rhs: got %v, want DimensionError", err)
	}
}

func TestGttrfGttrs(t *testing.T) {
	// Asymmetric tridiagonal: dl = [1 2], d = [3 3 3], du = [2 1].
	dl := []float64{1, 2}
	d := []float64{3, 3, 3}
	du := []float64{2, 1}
	tf, err := Gttrf(dl, d, du)
	if err != nil {
		t.Fatal(err)
	}
	if tf.ZeroPivot != -1 {
		t.Errorf("zero pivot = %d", tf.ZeroPivot)
	}
	if len(tf.DU2) != 1 || len(tf.Ipiv) != 3 {
		t.Fatalf("du2 length %d, ipiv length %d", len(tf.DU2), len(tf.Ipiv))
	}

	// A·[1 1 1]ᵀ = [5 5 5]ᵀ.
	b := colFrom([]float64{5, 5, 5})
	if err := Gttrs(NoTrans, tf, b); err != nil {
		t.Fatal(err)
	}
	wantVec(t, "x", []float64{b.At(0, 0), b.At(1, 0), b.At(2, 0)}, []float64{1, 1, 1}, tol)

	// Aᵀ·[1 1 1]ᵀ = [4 7 4]ᵀ; one factorization serves both.
	bt := colFrom([]float64{4, 7, 4})
	if err := Gttrs(Trans, tf, bt); err != nil {
		t.Fatal(err)
	}
	wantVec(t, "xᵀ", []float64{bt.At(0, 0), bt.At(1, 0), bt.At(2, 0)}, []float64{1, 1, 1}, tol)
}

func TestGttrfZeroPivot(t *testing.T) {
	dl := []float64{0}
	d := []float64{0, 1}
	du := []float64{0}
	tf, err := Gttrf(dl, d, du)
	if err != nil {
		t.Fatal(err)
	}
	if tf.ZeroPivot != 0 {
		t.Errorf("zero pivot = %d, want 0", tf.ZeroPivot)
	}
}

func TestGttrsMultipleRHS(t *testing.T) {
	dl := []float64{1, 1}
	d := []float64{4, 4, 4}
	du := []float64{1, 1}
	tf, err := Gttrf(dl, d, du)
	if err != nil {
		t.Fatal(err)
	}
	// Column 1 is A·[1 1 1]ᵀ, column 2 is A·[0 1 0]ᵀ.
	b := matFrom([][]float64{{5, 1}, {6, 4}, {5, 1}})
	if err := Gttrs(NoTrans, tf, b); err != nil {
		t.Fatal(err)
	}
	wantMat(t, "x", b, [][]float64{{1, 0}, {1, 1}, {1, 0}}, tol)
}
