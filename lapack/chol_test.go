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
	"math"
	"testing"
)

func TestPotrfSolve(t *testing.T) {
	for _, uplo := range []Uplo{Lower, Upper} {
		a := matFrom([][]float64{{4, 2}, {2, 3}})
		ch, err := Potrf(uplo, a)
		if err != nil {
			t.Fatalf("uplo %c: %v", uplo, err)
		}
		b := colFrom([]float64{6, 5})
		if err := Potrs(ch, b); err != nil {
			t.Fatalf("uplo %c: %v", uplo, err)
		}
		wantVec(t, "x", []float64{b.At(0, 0), b.At(1, 0)}, []float64{1, 1}, tol)
	}
}

func TestPotrfFactor(t *testing.T) {
	a := matFrom([][]float64{{4, 2}, {2, 3}})
	ch, err := Potrf(Lower, a)
	if err != nil {
		t.Fatal(err)
	}
	// L = [2 0; 1 √2]; the strict upper triangle is untouched input.
	if !near(ch.A.At(0, 0), 2, tol) || !near(ch.A.At(1, 0), 1, tol) || !near(ch.A.At(1, 1), math.Sqrt2, tol) {
		t.Errorf("L = [%g 0; %g %g]", ch.A.At(0, 0), ch.A.At(1, 0), ch.A.At(1, 1))
	}
}

func TestPotrfNotPositiveDefinite(t *testing.T) {
	a := matFrom([][]float64{{1, 2}, {2, 1}})
	_, err := Potrf(Upper, a)
	var pe *NotPositiveDefiniteError
	if !errors.As(err, &pe) {
		t.Fatalf("got %v, want NotPositiveDefiniteError", err)
	}
	if pe.Minor != 2 {
		t.Errorf("minor = %d, want 2", pe.Minor)
	}

	// A zero leading element fails at the first minor.
	z := matFrom([][]float64{{0, 0}, {0, 1}})
	_, err = Potrf(Lower, z)
	if !errors.As(err, &pe) {
		t.Fatalf("zero leading element: got %v, want NotPositiveDefiniteError", err)
	}
	if pe.Minor != 1 {
		t.Errorf("zero leading element: minor = %d, want 1", pe.Minor)
	}
}

func TestPotri(t *testing.T) {
	a := matFrom([][]float64{{4, 2}, {2, 3}})
	ch, err := Potrf(Lower, a)
	if err != nil {
		t.Fatal(err)
	}
	if err := Potri(ch); err != nil {
		t.Fatal(err)
	}
	// Inverse is (1/8)·[3 -2; -2 4]; only the lower triangle is written.
	if !near(ch.A.At(0, 0), 0.375, tol) || !near(ch.A.At(1, 0), -0.25, tol) || !near(ch.A.At(1, 1), 0.5, tol) {
		t.Errorf("inverse lower triangle = [%g; %g %g]", ch.A.At(0, 0), ch.A.At(1, 0), ch.A.At(1, 1))
	}
}

func TestPstrfFullRank(t *testing.T) {
	a := matFrom([][]float64{{4, 2}, {2, 3}})
	pc, err := Pstrf(Lower, a, -1)
	if err != nil {
		t.Fatal(err)
	}
	if pc.Rank != 2 {
		t.Errorf("rank = %d, want 2", pc.Rank)
	}
	seen := map[int]bool{}
	for _, p := range pc.Piv {
		seen[p] = true
	}
	if len(pc.Piv) != 2 || !seen[0] || !seen[1] {
		t.Errorf("piv = %v, want a permutation of {0,1}", pc.Piv)
	}
}

func TestPstrfRankDeficient(t *testing.T) {
	// Rank-1 positive semidefinite matrix: the factorization is still
	// returned alongside the error.
	a := matFrom([][]float64{{1, 1}, {1, 1}})
	pc, err := Pstrf(Lower, a, -1)
	var re *RankDeficientError
	if !errors.As(err, &re) {
		t.Fatalf("got %v, want RankDeficientError", err)
	}
	if re.Rank != 1 || pc.Rank != 1 {
		t.Errorf("rank = %d (error %d), want 1", pc.Rank, re.Rank)
	}
	if len(pc.Piv) != 2 {
		t.Errorf("piv = %v", pc.Piv)
	}
}

func TestPocon(t *testing.T) {
	// Identity: perfectly conditioned.
	a := matFrom([][]float64{{1, 0}, {0, 1}})
	anorm, err := Lange(OneNorm, a)
	if err != nil {
		t.Fatal(err)
	}
	ch, err := Potrf(Upper, a)
	if err != nil {
		t.Fatal(err)
	}
	rcond, err := Pocon(ch, anorm)
	if err != nil {
		t.Fatal(err)
	}
	if !near(rcond, 1, 1e-8) {
		t.Errorf("rcond = %g, want 1", rcond)
	}
}
