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

func TestCheckGeneral(t *testing.T) {
	cases := []struct {
		name string
		a    General[float64]
		want error
	}{
		{"ok", General[float64]{Rows: 2, Cols: 3, Stride: 2, Data: make([]float64, 6)}, nil},
		{"ok loose stride", General[float64]{Rows: 2, Cols: 2, Stride: 4, Data: make([]float64, 8)}, nil},
		{"empty", General[float64]{Rows: 0, Cols: 0, Stride: 1}, nil},
		{"negative rows", General[float64]{Rows: -1, Cols: 2, Stride: 1}, &DimensionError{}},
		{"stride below rows", General[float64]{Rows: 3, Cols: 2, Stride: 2, Data: make([]float64, 6)}, &LayoutError{}},
		{"zero stride", General[float64]{Rows: 0, Cols: 1, Stride: 0, Data: make([]float64, 1)}, &LayoutError{}},
		{"short data", General[float64]{Rows: 2, Cols: 3, Stride: 2, Data: make([]float64, 5)}, &LayoutError{}},
	}
	for _, tc := range cases {
		err := checkGeneral("a", tc.a)
		if tc.want == nil {
			if err != nil {
				t.Errorf("%s: unexpected error %v", tc.name, err)
			}
			continue
		}
		switch tc.want.(type) {
		case *DimensionError:
			var de *DimensionError
			if !errors.As(err, &de) {
				t.Errorf("%s: got %v, want DimensionError", tc.name, err)
			}
		case *LayoutError:
			var le *LayoutError
			if !errors.As(err, &le) {
				t.Errorf("%s: got %v, want LayoutError", tc.name, err)
			}
		}
	}
}

func TestCheckSquare(t *testing.T) {
	if err := checkSquare("a", NewGeneral[float64](3, 3)); err != nil {
		t.Errorf("square: %v", err)
	}
	var de *DimensionError
	if err := checkSquare("a", NewGeneral[float64](3, 2)); !errors.As(err, &de) {
		t.Errorf("3×2: got %v, want DimensionError", err)
	}
}

func TestCheckSolveDims(t *testing.T) {
	if err := checkSolveDims(3, NewGeneral[float64](3, 2)); err != nil {
		t.Errorf("matching rows: %v", err)
	}
	var de *DimensionError
	if err := checkSolveDims(3, NewGeneral[float64](2, 1)); !errors.As(err, &de) {
		t.Errorf("short rhs: got %v, want DimensionError", err)
	}
}

func TestCheckFlag(t *testing.T) {
	if err := checkFlag("uplo", 'U', "UL"); err != nil {
		t.Errorf("valid flag: %v", err)
	}
	err := checkFlag("uplo", 'X', "UL")
	var fe *FlagError
	if !errors.As(err, &fe) {
		t.Fatalf("got %v, want FlagError", err)
	}
	if fe.Name != "uplo" || fe.Value != 'X' || fe.Allowed != "UL" {
		t.Errorf("FlagError = %+v", fe)
	}
}

func TestTransSet(t *testing.T) {
	if got := transSet[float64](); got != "NT" {
		t.Errorf("real trans set = %q, want NT", got)
	}
	if got := transSet[complex128](); got != "NC" {
		t.Errorf("complex trans set = %q, want NC", got)
	}
}

func TestTypeOf(t *testing.T) {
	cases := []struct {
		got  TypeInfo
		want TypeInfo
	}{
		{TypeOf[float32](), TypeInfo{Prefix: 's', RealPrefix: 's', Size: 4}},
		{TypeOf[float64](), TypeInfo{Prefix: 'd', RealPrefix: 'd', Size: 8}},
		{TypeOf[complex64](), TypeInfo{Prefix: 'c', RealPrefix: 's', Complex: true, Size: 8}},
		{TypeOf[complex128](), TypeInfo{Prefix: 'z', RealPrefix: 'd', Complex: true, Size: 16}},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("TypeOf = %+v, want %+v", tc.got, tc.want)
		}
	}
}

// Flag validation must reject before any factorization state is touched.
func TestFlagErrorsPrecedeWork(t *testing.T) {
	var fe *FlagError

	lu := LU[float64]{A: NewGeneral[float64](2, 2), Ipiv: []int{0, 1}}
	if err := Getrs(Transpose('X'), lu, NewGeneral[float64](2, 1)); !errors.As(err, &fe) {
		t.Errorf("getrs bad trans: got %v, want FlagError", err)
	}

	if _, err := Potrf(Uplo('Q'), NewGeneral[float64](2, 2)); !errors.As(err, &fe) {
		t.Errorf("potrf bad uplo: got %v, want FlagError", err)
	}

	if _, err := Lange(Norm('Z'), NewGeneral[float64](2, 2)); !errors.As(err, &fe) {
		t.Errorf("lange bad norm: got %v, want FlagError", err)
	}

	// Real element types reject the distinct conjugate transpose.
	if err := Gels(ConjTrans, NewGeneral[float64](2, 2), NewGeneral[float64](2, 1)); !errors.As(err, &fe) {
		t.Errorf("gels conj trans on real type: got %v, want FlagError", err)
	}

	// Overwriting both vector sides at once is contradictory.
	if _, err := Gesvd(SVDOverwrite, SVDOverwrite, NewGeneral[float64](2, 2)); !errors.As(err, &fe) {
		t.Errorf("gesvd double overwrite: got %v, want FlagError", err)
	}
}

func TestSyevrEmptyIndexRange(t *testing.T) {
	a := matFrom([][]float64{{1, 0}, {0, 2}})
	w, z, err := Syevr(EVCompute, RangeIndices, Upper, a, 0, 0, 1, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(w) != 0 || z.Rows != 0 {
		t.Errorf("empty selection returned %d values, %d×%d vectors", len(w), z.Rows, z.Cols)
	}
}

func TestSyevrBadValueRange(t *testing.T) {
	a := NewGeneral[float64](2, 2)
	var de *DimensionError
	if _, _, err := Syevr(EVNone, RangeValues, Upper, a, 2, 1, 0, 0, 0); !errors.As(err, &de) {
		t.Errorf("vu < vl: got %v, want DimensionError", err)
	}
}
