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

func TestTrtrs(t *testing.T) {
	// Upper triangular [2 1; 0 1]: x = [1; 1] solves b = [3; 1].
	a := matFrom([][]float64{{2, 1}, {0, 1}})
	b := colFrom([]float64{3, 1})
	if err := Trtrs(Upper, NoTrans, NonUnit, a, b); err != nil {
		t.Fatal(err)
	}
	wantVec(t, "x", []float64{b.At(0, 0), b.At(1, 0)}, []float64{1, 1}, tol)

	// The transposed system Aᵀx = [2; 2] has solution [1; 1].
	bt := colFrom([]float64{2, 2})
	if err := Trtrs(Upper, Trans, NonUnit, a, bt); err != nil {
		t.Fatal(err)
	}
	wantVec(t, "xᵀ", []float64{bt.At(0, 0), bt.At(1, 0)}, []float64{1, 1}, tol)
}

func TestTrtrsSingular(t *testing.T) {
	a := matFrom([][]float64{{0, 1}, {0, 1}})
	b := colFrom([]float64{1, 1})
	err := Trtrs(Upper, NoTrans, NonUnit, a, b)
	var se *SingularError
	if !errors.As(err, &se) {
		t.Fatalf("got %v, want SingularError", err)
	}
	if se.Index != 0 {
		t.Errorf("singular index = %d, want 0", se.Index)
	}
}

func TestTrtri(t *testing.T) {
	a := matFrom([][]float64{{2, 1}, {0, 1}})
	if err := Trtri(Upper, NonUnit, a); err != nil {
		t.Fatal(err)
	}
	wantMat(t, "inverse", a, [][]float64{{0.5, -0.5}, {0, 1}}, tol)
}

func TestTrtriUnitDiagonal(t *testing.T) {
	// With diag == Unit the stored diagonal is not referenced, so a zero
	// there is not singular.
	a := matFrom([][]float64{{0, 2}, {0, 0}})
	if err := Trtri(Upper, Unit, a); err != nil {
		t.Fatal(err)
	}
	if !near(a.At(0, 1), -2, tol) {
		t.Errorf("off-diagonal of inverse = %g, want -2", a.At(0, 1))
	}
}

func TestTrcon(t *testing.T) {
	a := matFrom([][]float64{{1, 0}, {0, 1}})
	rcond, err := Trcon(OneNorm, Upper, NonUnit, a)
	if err != nil {
		t.Fatal(err)
	}
	if !near(rcond, 1, 1e-8) {
		t.Errorf("identity rcond = %g, want 1", rcond)
	}

	var fe *FlagError
	if _, err := Trcon(Frobenius, Upper, NonUnit, a); !errors.As(err, &fe) {
		t.Errorf("frobenius norm for condition estimate: got %v, want FlagError", err)
	}
}
