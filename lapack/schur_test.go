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

func TestGehrdOrghr(t *testing.T) {
	a := matFrom([][]float64{
		{4, 1, 2, 3},
		{1, 3, 1, 2},
		{2, 1, 5, 1},
		{3, 2, 1, 4},
	})
	a0 := a.Clone()
	h, err := Gehrd(0, -1, a)
	if err != nil {
		t.Fatal(err)
	}
	if h.Ilo != 0 || h.Ihi != 3 {
		t.Errorf("range = [%d, %d], want [0, 3]", h.Ilo, h.Ihi)
	}

	// Hessenberg form: zero below the first subdiagonal. Copy H out
	// before the reflectors are consumed by Orghr.
	hm := NewGeneral[float64](4, 4)
	for j := 0; j < 4; j++ {
		for i := 0; i <= min(j+1, 3); i++ {
			hm.Set(i, j, h.A.At(i, j))
		}
	}

	if err := Orghr(h); err != nil {
		t.Fatal(err)
	}
	q := h.A
	wantOrtho(t, "q", q, 1e-9)

	// Q·H·Qᵀ reproduces the original matrix.
	got := mulDense(mulDense(q, hm), transDense(q))
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if !near(got.At(i, j), a0.At(i, j), 1e-9) {
				t.Errorf("QHQᵀ[%d,%d] = %g, want %g", i, j, got.At(i, j), a0.At(i, j))
			}
		}
	}
}

func TestGehrdRangeCheck(t *testing.T) {
	a := NewGeneral[float64](3, 3)
	if _, err := Gehrd(2, 1, a); err == nil {
		t.Error("inverted sub-range accepted")
	}
	if _, err := Gehrd(0, 5, a); err == nil {
		t.Error("out-of-bounds sub-range accepted")
	}
}

func TestGeesRealSpectrum(t *testing.T) {
	// Already upper triangular: the Schur form keeps the diagonal.
	a := matFrom([][]float64{{1, 2}, {0, 3}})
	sc, err := Gees(EVNone, a)
	if err != nil {
		t.Fatal(err)
	}
	if !sc.IsReal {
		t.Error("triangular real matrix reported a complex spectrum")
	}
	got := []float64{real(sc.Values[0]), real(sc.Values[1])}
	sort.Float64s(got)
	wantVec(t, "eigenvalues", got, []float64{1, 3}, 1e-9)
	if !near(sc.T.At(1, 0), 0, 1e-9) {
		t.Errorf("schur form has subdiagonal %g", sc.T.At(1, 0))
	}
}

func TestGeesComplexPair(t *testing.T) {
	a := matFrom([][]float64{{0, -1}, {1, 0}})
	a0 := a.Clone()
	sc, err := Gees(EVCompute, a)
	if err != nil {
		t.Fatal(err)
	}
	if sc.IsReal {
		t.Error("rotation matrix reported a real spectrum")
	}
	for i, v := range sc.Values {
		if !near(real(v), 0, 1e-9) || !near(math.Abs(imag(v)), 1, 1e-9) {
			t.Errorf("value %d = %v, want ±i", i, v)
		}
	}

	// Z·T·Zᵀ reproduces the input; the conjugate pair stays as a 2×2
	// block of the real Schur form.
	wantOrtho(t, "z", sc.Z, 1e-9)
	got := mulDense(mulDense(sc.Z, sc.T), transDense(sc.Z))
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if !near(got.At(i, j), a0.At(i, j), 1e-9) {
				t.Errorf("ZTZᵀ[%d,%d] = %g, want %g", i, j, got.At(i, j), a0.At(i, j))
			}
		}
	}
}
