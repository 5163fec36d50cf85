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

// bandFrom packs the band of a dense row-major literal into band storage.
func bandFrom(kl, ku int, rows [][]float64) General[float64] {
	n := len(rows)
	ab := NewBand[float64](n, kl, ku)
	for j := 0; j < n; j++ {
		for i := max(0, j-ku); i <= min(n-1, j+kl); i++ {
			ab.Set(kl+ku+i-j, j, rows[i][j])
		}
	}
	return ab
}

func TestGbtrfGbtrs(t *testing.T) {
	// Asymmetric tridiagonal stored as a kl = ku = 1 band.
	a := [][]float64{
		{3, 2, 0},
		{1, 3, 1},
		{0, 2, 3},
	}
	bf, err := Gbtrf(1, 1, bandFrom(1, 1, a))
	if err != nil {
		t.Fatal(err)
	}
	if bf.ZeroPivot != -1 {
		t.Errorf("zero pivot = %d", bf.ZeroPivot)
	}
	if len(bf.Ipiv) != 3 {
		t.Fatalf("ipiv length %d", len(bf.Ipiv))
	}

	// A·[1 1 1]ᵀ = [5 5 5]ᵀ.
	b := colFrom([]float64{5, 5, 5})
	if err := Gbtrs(NoTrans, bf, b); err != nil {
		t.Fatal(err)
	}
	wantVec(t, "x", []float64{b.At(0, 0), b.At(1, 0), b.At(2, 0)}, []float64{1, 1, 1}, tol)

	// Aᵀ·[1 1 1]ᵀ = [4 7 4]ᵀ; one factorization serves both.
	bt := colFrom([]float64{4, 7, 4})
	if err := Gbtrs(Trans, bf, bt); err != nil {
		t.Fatal(err)
	}
	wantVec(t, "xᵀ", []float64{bt.At(0, 0), bt.At(1, 0), bt.At(2, 0)}, []float64{1, 1, 1}, tol)
}

func TestGbtrfWideBand(t *testing.T) {
	// kl = 2: pivoting reaches two rows down and fills in above.
	a := [][]float64{
		{4, 1, 0, 0},
		{1, 4, 1, 0},
		{2, 1, 4, 1},
		{0, 2, 1, 4},
	}
	bf, err := Gbtrf(2, 1, bandFrom(2, 1, a))
	if err != nil {
		t.Fatal(err)
	}
	// A·[1 1 1 1]ᵀ = [5 6 8 7]ᵀ.
	b := colFrom([]float64{5, 6, 8, 7})
	if err := Gbtrs(NoTrans, bf, b); err != nil {
		t.Fatal(err)
	}
	got := []float64{b.At(0, 0), b.At(1, 0), b.At(2, 0), b.At(3, 0)}
	wantVec(t, "x", got, []float64{1, 1, 1, 1}, tol)
}

func TestGbtrfMatchesDense(t *testing.T) {
	// The band solver and the dense LU must agree on the same matrix.
	a := [][]float64{
		{2, 1, 0, 0},
		{4, 2, 1, 0},
		{2, 8, 2, 1},
		{0, 4, 9, 2},
	}
	rhs := []float64{3, -1, 7, 2}

	bf, err := Gbtrf(2, 1, bandFrom(2, 1, a))
	if err != nil {
		t.Fatal(err)
	}
	xb := colFrom(rhs)
	if err := Gbtrs(NoTrans, bf, xb); err != nil {
		t.Fatal(err)
	}

	lu, err := Getrf(matFrom(a))
	if err != nil {
		t.Fatal(err)
	}
	xd := colFrom(rhs)
	if err := Getrs(NoTrans, lu, xd); err != nil {
		t.Fatal(err)
	}

	for i := range rhs {
		if !near(xb.At(i, 0), xd.At(i, 0), tol) {
			t.Errorf("x[%d] = %g banded, %g dense", i, xb.At(i, 0), xd.At(i, 0))
		}
	}
}

func TestGbsv(t *testing.T) {
	// |dl| > |d| forces a row interchange at the first step.
	a := [][]float64{
		{1, 2},
		{4, 1},
	}
	b := colFrom([]float64{3, 5})
	if err := Gbsv(1, 1, bandFrom(1, 1, a), b); err != nil {
		t.Fatal(err)
	}
	wantVec(t, "x", []float64{b.At(0, 0), b.At(1, 0)}, []float64{1, 1}, tol)
}

func TestGbsvSingular(t *testing.T) {
	ab := NewBand[float64](2, 1, 1)
	b := colFrom([]float64{1, 1})
	err := Gbsv(1, 1, ab, b)
	var se *SingularError
	if !errors.As(err, &se) {
		t.Fatalf("got %v, want SingularError", err)
	}
}

func TestGbtrfZeroPivot(t *testing.T) {
	bf, err := Gbtrf(1, 1, NewBand[float64](2, 1, 1))
	if err != nil {
		t.Fatal(err)
	}
	if bf.ZeroPivot != 0 {
		t.Errorf("zero pivot = %d, want 0", bf.ZeroPivot)
	}
}

func TestGbtrfDimensionChecks(t *testing.T) {
	var de *DimensionError
	if _, err := Gbtrf(-1, 0, NewGeneral[float64](1, 2)); !errors.As(err, &de) {
		t.Errorf("negative bandwidth: got %v, want DimensionError", err)
	}
	// 2 rows cannot hold kl = ku = 1 band storage (wants 4).
	if _, err := Gbtrf(1, 1, NewGeneral[float64](2, 3)); !errors.As(err, &de) {
		t.Errorf("short band storage: got %v, want DimensionError", err)
	}
}

func TestGbtrsShapeMismatch(t *testing.T) {
	a := [][]float64{
		{2, 0},
		{0, 2},
	}
	bf, err := Gbtrf(1, 1, bandFrom(1, 1, a))
	if err != nil {
		t.Fatal(err)
	}
	var de *DimensionError
	if err := Gbtrs(NoTrans, bf, NewGeneral[float64](3, 1)); !errors.As(err, &de) {
		t.Errorf("3-row rhs for 2×2 system: got %v, want DimensionError", err)
	}
}
