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

import "testing"

func TestSvdShapes(t *testing.T) {
	cases := []struct {
		jobu, jobvt      SVDJob
		ur, uc, vtr, vtc int
	}{
		{SVDAll, SVDAll, 3, 3, 2, 2},
		{SVDStore, SVDStore, 3, 2, 2, 2},
		{SVDNone, SVDNone, 0, 0, 0, 0},
		{SVDOverwrite, SVDStore, 0, 0, 2, 2},
		{SVDAll, SVDNone, 3, 3, 0, 0},
	}
	for _, tc := range cases {
		ur, uc, vtr, vtc := svdShapes(tc.jobu, tc.jobvt, 3, 2)
		if ur != tc.ur || uc != tc.uc || vtr != tc.vtr || vtc != tc.vtc {
			t.Errorf("shapes(%c,%c) = (%d,%d,%d,%d), want (%d,%d,%d,%d)",
				tc.jobu, tc.jobvt, ur, uc, vtr, vtc, tc.ur, tc.uc, tc.vtr, tc.vtc)
		}
	}
}

// reconstruct sums u·diag(s)·vt for an economy decomposition.
func reconstruct(u General[float64], s []float64, vt General[float64]) General[float64] {
	scaled := vt.Clone()
	for i := range s {
		for j := 0; j < vt.Cols; j++ {
			scaled.Set(i, j, s[i]*vt.At(i, j))
		}
	}
	return mulDense(u, scaled)
}

func TestGesvdReconstruct(t *testing.T) {
	a := matFrom([][]float64{{1, 2}, {3, 4}, {5, 6}})
	a0 := a.Clone()
	svd, err := Gesvd(SVDStore, SVDStore, a)
	if err != nil {
		t.Fatal(err)
	}
	if len(svd.S) != 2 || svd.S[0] < svd.S[1] || svd.S[1] < 0 {
		t.Fatalf("singular values %v, want descending nonnegative", svd.S)
	}
	if svd.U.Rows != 3 || svd.U.Cols != 2 || svd.VT.Rows != 2 || svd.VT.Cols != 2 {
		t.Fatalf("u is %d×%d, vt is %d×%d", svd.U.Rows, svd.U.Cols, svd.VT.Rows, svd.VT.Cols)
	}
	wantOrtho(t, "u", svd.U, tol)
	got := reconstruct(svd.U, svd.S, svd.VT)
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			if !near(got.At(i, j), a0.At(i, j), 1e-9) {
				t.Errorf("reconstruction[%d,%d] = %g, want %g", i, j, got.At(i, j), a0.At(i, j))
			}
		}
	}
}

func TestGesvdValuesOnly(t *testing.T) {
	a := matFrom([][]float64{{3, 0}, {0, 4}})
	svd, err := Gesvd(SVDNone, SVDNone, a)
	if err != nil {
		t.Fatal(err)
	}
	wantVec(t, "s", svd.S, []float64{4, 3}, tol)
	if svd.U.Rows != 0 || svd.VT.Rows != 0 {
		t.Error("vector buffers allocated for a value-only decomposition")
	}
}

func TestGesddMatchesGesvd(t *testing.T) {
	a := matFrom([][]float64{{1, 2}, {3, 4}, {5, 6}})
	sdd, err := Gesdd(SVDStore, a.Clone())
	if err != nil {
		t.Fatal(err)
	}
	svd, err := Gesvd(SVDStore, SVDStore, a.Clone())
	if err != nil {
		t.Fatal(err)
	}
	wantVec(t, "s", sdd.S, svd.S, 1e-9)

	got := reconstruct(sdd.U, sdd.S, sdd.VT)
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			if !near(got.At(i, j), a.At(i, j), 1e-9) {
				t.Errorf("reconstruction[%d,%d] = %g, want %g", i, j, got.At(i, j), a.At(i, j))
			}
		}
	}
}

func TestBdsqrValuesOnly(t *testing.T) {
	// Diagonal bidiagonal matrix: values sort descending.
	d := []float64{1, 3}
	e := []float64{0}
	var none General[float64]
	if err := Bdsqr(Upper, d, e, none, none, none); err != nil {
		t.Fatal(err)
	}
	wantVec(t, "d", d, []float64{3, 1}, tol)
}

func TestBdsqrCoupled(t *testing.T) {
	// Nontrivial off-diagonal: [2 1; 0 1] has σ² solving the 2×2 Gram
	// eigenproblem, σ1·σ2 = |det| = 2 and σ1² + σ2² = 6.
	d := []float64{2, 1}
	e := []float64{1}
	var none General[float64]
	if err := Bdsqr(Upper, d, e, none, none, none); err != nil {
		t.Fatal(err)
	}
	if !near(d[0]*d[1], 2, 1e-9) || !near(d[0]*d[0]+d[1]*d[1], 6, 1e-9) {
		t.Errorf("singular values %v: product %g, square sum %g", d, d[0]*d[1], d[0]*d[0]+d[1]*d[1])
	}
}

func TestBdsdcMatchesBdsqr(t *testing.T) {
	dq := []float64{2, 1}
	eq := []float64{1}
	var none General[float64]
	if err := Bdsqr(Upper, dq, eq, none, none, none); err != nil {
		t.Fatal(err)
	}

	dd := []float64{2, 1}
	ed := []float64{1}
	u, vt, err := Bdsdc[float64](EVCompute, Upper, dd, ed)
	if err != nil {
		t.Fatal(err)
	}
	wantVec(t, "d", dd, dq, 1e-9)
	if u.Rows != 2 || u.Cols != 2 || vt.Rows != 2 || vt.Cols != 2 {
		t.Fatalf("u is %d×%d, vt is %d×%d", u.Rows, u.Cols, vt.Rows, vt.Cols)
	}
	wantOrtho(t, "u", u, 1e-9)

	// U·diag(d)·VT reproduces the bidiagonal input.
	got := reconstruct(u, dd, vt)
	wantMat(t, "reconstruction", got, [][]float64{{2, 1}, {0, 1}}, 1e-9)
}
