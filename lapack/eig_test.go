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
	"math"
	"sort"
	"testing"
)

func TestSyev(t *testing.T) {
	a := matFrom([][]float64{{2, 1}, {1, 2}})
	a0 := a.Clone()
	w, err := Syev(EVCompute, Upper, a)
	if err != nil {
		t.Fatal(err)
	}
	wantVec(t, "eigenvalues", w, []float64{1, 3}, tol)
	wantOrtho(t, "v", a, tol)

	// Residual A·v = λ·v against the original matrix.
	for j := range w {
		for i := 0; i < 2; i++ {
			var av float64
			for k := 0; k < 2; k++ {
				av += a0.At(i, k) * a.At(k, j)
			}
			if !near(av, w[j]*a.At(i, j), tol) {
				t.Errorf("residual at eigenpair %d, row %d: %g vs %g", j, i, av, w[j]*a.At(i, j))
			}
		}
	}
}

func TestSyevValuesOnly(t *testing.T) {
	a := matFrom([][]float64{{2, 1, 0}, {1, 3, 1}, {0, 1, 2}})
	w, err := Syev(EVNone, Lower, a)
	if err != nil {
		t.Fatal(err)
	}
	wantVec(t, "eigenvalues", w, []float64{1, 2, 4}, tol)
}

func diag4() General[float64] {
	a := NewGeneral[float64](4, 4)
	for i := 0; i < 4; i++ {
		a.Set(i, i, float64(i+1))
	}
	return a
}

func TestSyevrRangeIndices(t *testing.T) {
	// Positions [2, 4) of the ascending spectrum {1,2,3,4}.
	w, _, err := Syevr(EVNone, RangeIndices, Upper, diag4(), 0, 0, 2, 4, 0)
	if err != nil {
		t.Fatal(err)
	}
	wantVec(t, "selected", w, []float64{3, 4}, tol)
}

func TestSyevrIndexClamp(t *testing.T) {
	// An end past the dimension is clamped, not an error.
	w, _, err := Syevr(EVNone, RangeIndices, Upper, diag4(), 0, 0, 2, 10, 0)
	if err != nil {
		t.Fatal(err)
	}
	wantVec(t, "selected", w, []float64{3, 4}, tol)
}

func TestSyevrRangeValues(t *testing.T) {
	// Half-open interval (1.5, 3.5] picks {2, 3}.
	w, _, err := Syevr(EVNone, RangeValues, Lower, diag4(), 1.5, 3.5, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	wantVec(t, "selected", w, []float64{2, 3}, tol)
}

func TestSyevrVectors(t *testing.T) {
	a := matFrom([][]float64{{2, 1}, {1, 2}})
	a0 := a.Clone()
	w, z, err := Syevr(EVCompute, RangeAll, Upper, a, 0, 0, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	wantVec(t, "eigenvalues", w, []float64{1, 3}, tol)
	if z.Rows != 2 || z.Cols != 2 {
		t.Fatalf("z is %d×%d", z.Rows, z.Cols)
	}
	for j := range w {
		for i := 0; i < 2; i++ {
			var av float64
			for k := 0; k < 2; k++ {
				av += a0.At(i, k) * z.At(k, j)
			}
			if !near(av, w[j]*z.At(i, j), tol) {
				t.Errorf("residual at eigenpair %d, row %d", j, i)
			}
		}
	}
}

func TestStev(t *testing.T) {
	// Tridiagonal [2 1; 1 2]: spectrum {1, 3}, vectors (1,∓1)/√2.
	d := []float64{2, 2}
	e := []float64{1}
	z, err := Stev[float64](EVCompute, d, e)
	if err != nil {
		t.Fatal(err)
	}
	wantVec(t, "eigenvalues", d, []float64{1, 3}, tol)
	s := 1 / math.Sqrt2
	if !near(math.Abs(z.At(0, 0)), s, tol) || !near(math.Abs(z.At(1, 0)), s, tol) {
		t.Errorf("first eigenvector = [%g %g]", z.At(0, 0), z.At(1, 0))
	}
	if !near(z.At(0, 0)*z.At(1, 0), -0.5, tol) {
		t.Errorf("first eigenvector components should differ in sign: [%g %g]", z.At(0, 0), z.At(1, 0))
	}
}

func TestGeevRealSpectrum(t *testing.T) {
	a := matFrom([][]float64{{3, 0}, {0, 1}})
	eig, err := Geev(EVNone, EVNone, a)
	if err != nil {
		t.Fatal(err)
	}
	if !eig.IsReal {
		t.Error("diagonal matrix reported a complex spectrum")
	}
	got := []float64{real(eig.Values[0]), real(eig.Values[1])}
	sort.Float64s(got)
	wantVec(t, "eigenvalues", got, []float64{1, 3}, tol)
}

func TestGeevComplexPair(t *testing.T) {
	// Rotation by 90°: eigenvalues ±i.
	a := matFrom([][]float64{{0, -1}, {1, 0}})
	eig, err := Geev(EVNone, EVCompute, a)
	if err != nil {
		t.Fatal(err)
	}
	if eig.IsReal {
		t.Error("rotation matrix reported a real spectrum")
	}
	if len(eig.Values) != 2 {
		t.Fatalf("%d eigenvalues", len(eig.Values))
	}
	for i, v := range eig.Values {
		if !near(real(v), 0, tol) || !near(math.Abs(imag(v)), 1, tol) {
			t.Errorf("value %d = %v, want ±i", i, v)
		}
	}
	if imag(eig.Values[0])*imag(eig.Values[1]) >= 0 {
		t.Error("conjugate pair has matching signs")
	}
	if eig.VR.Rows != 2 || eig.VR.Cols != 2 {
		t.Errorf("vr is %d×%d", eig.VR.Rows, eig.VR.Cols)
	}
}
