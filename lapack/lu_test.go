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

func TestGetrfSolve(t *testing.T) {
	a := matFrom([][]float64{{4, 3}, {6, 3}})
	lu, err := Getrf(a)
	if err != nil {
		t.Fatal(err)
	}
	if lu.ZeroPivot != -1 {
		t.Errorf("zero pivot = %d, want -1", lu.ZeroPivot)
	}
	if len(lu.Ipiv) != 2 {
		t.Fatalf("ipiv length %d", len(lu.Ipiv))
	}

	// Two right-hand sides at once: A*[x1 x2] = [10 7; 12 9].
	b := matFrom([][]float64{{10, 7}, {12, 9}})
	if err := Getrs(NoTrans, lu, b); err != nil {
		t.Fatal(err)
	}
	wantMat(t, "x", b, [][]float64{{1, 1}, {2, 1}}, tol)
}

func TestGetrsTranspose(t *testing.T) {
	a := matFrom([][]float64{{4, 3}, {6, 3}})
	lu, err := Getrf(a)
	if err != nil {
		t.Fatal(err)
	}
	// Aᵀ*x = [16; 9] has solution [1; 2].
	b := colFrom([]float64{16, 9})
	if err := Getrs(Trans, lu, b); err != nil {
		t.Fatal(err)
	}
	wantVec(t, "x", []float64{b.At(0, 0), b.At(1, 0)}, []float64{1, 2}, tol)
}

func TestGetri(t *testing.T) {
	a := matFrom([][]float64{{4, 3}, {6, 3}})
	a0 := a.Clone()
	lu, err := Getrf(a)
	if err != nil {
		t.Fatal(err)
	}
	if err := Getri(lu); err != nil {
		t.Fatal(err)
	}
	wantMat(t, "A⁻¹A", mulDense(lu.A, a0), [][]float64{{1, 0}, {0, 1}}, tol)
}

func TestGetrfSingular(t *testing.T) {
	a := matFrom([][]float64{{1, 2}, {2, 4}})
	lu, err := Getrf(a)
	if err != nil {
		t.Fatal(err)
	}
	if lu.ZeroPivot != 1 {
		t.Errorf("zero pivot = %d, want 1", lu.ZeroPivot)
	}
	err = Getri(lu)
	var se *SingularError
	if !errors.As(err, &se) {
		t.Fatalf("getri on singular factor: got %v, want SingularError", err)
	}
	if se.Index != 1 {
		t.Errorf("singular index = %d, want 1", se.Index)
	}
}

func TestGetrsShapeMismatch(t *testing.T) {
	a := matFrom([][]float64{{2, 0}, {0, 2}})
	lu, err := Getrf(a)
	if err != nil {
		t.Fatal(err)
	}
	var de *DimensionError
	if err := Getrs(NoTrans, lu, NewGeneral[float64](3, 1)); !errors.As(err, &de) {
		t.Errorf("3-row rhs for 2×2 system: got %v, want DimensionError", err)
	}
}

func TestGetrfFloat32(t *testing.T) {
	// The single-precision path runs through the widening adapter.
	a := NewGeneral[float32](2, 2)
	a.Set(0, 0, 4)
	a.Set(0, 1, 3)
	a.Set(1, 0, 6)
	a.Set(1, 1, 3)
	lu, err := Getrf(a)
	if err != nil {
		t.Fatal(err)
	}
	b := NewGeneral[float32](2, 1)
	b.Set(0, 0, 10)
	b.Set(1, 0, 12)
	if err := Getrs(NoTrans, lu, b); err != nil {
		t.Fatal(err)
	}
	if !near(float64(b.At(0, 0)), 1, 1e-5) || !near(float64(b.At(1, 0)), 2, 1e-5) {
		t.Errorf("x = [%g %g], want [1 2]", b.At(0, 0), b.At(1, 0))
	}
}

func TestGetrfRectangular(t *testing.T) {
	// Tall factorization: min(m, n) pivots, no error.
	a := matFrom([][]float64{{1, 2}, {3, 4}, {5, 6}})
	lu, err := Getrf(a)
	if err != nil {
		t.Fatal(err)
	}
	if len(lu.Ipiv) != 2 {
		t.Errorf("ipiv length %d, want 2", len(lu.Ipiv))
	}
	if lu.ZeroPivot != -1 {
		t.Errorf("zero pivot = %d", lu.ZeroPivot)
	}
}
