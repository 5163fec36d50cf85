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

package gonum

import (
	"math"
	"testing"
)

func TestGttrfPivoting(t *testing.T) {
	// |dl[0]| > |d[0]| forces a row interchange at the first step.
	dl := []float64{4}
	d := []float64{1, 1}
	du := []float64{1}
	du2 := make([]float64, 0)
	ipiv := make([]int, 2)
	if info := dGttrf(2, dl, d, du, du2, ipiv); info != 0 {
		t.Fatalf("info %d", info)
	}
	if ipiv[0] != 1 {
		t.Errorf("ipiv[0] = %d, want 1 (rows swapped)", ipiv[0])
	}

	// The factorization still solves [1 1; 4 1]·x = [2; 5] → x = [1; 1].
	b := []float64{2, 5}
	if info := dGttrs('N', 2, 1, dl, d, du, du2, ipiv, b, 2); info != 0 {
		t.Fatalf("solve info %d", info)
	}
	if math.Abs(b[0]-1) > 1e-12 || math.Abs(b[1]-1) > 1e-12 {
		t.Errorf("x = %v, want [1 1]", b)
	}
}

func TestGttrfNoPivot(t *testing.T) {
	dl := []float64{1, 1}
	d := []float64{4, 4, 4}
	du := []float64{1, 1}
	du2 := make([]float64, 1)
	ipiv := make([]int, 3)
	if info := dGttrf(3, dl, d, du, du2, ipiv); info != 0 {
		t.Fatalf("info %d", info)
	}
	for i, p := range ipiv {
		if p != i {
			t.Errorf("ipiv[%d] = %d, want %d (diagonally dominant, no swaps)", i, p, i)
		}
	}

	// Transposed solve through the same factors: Aᵀ = A here.
	b := []float64{5, 6, 5}
	if info := dGttrs('T', 3, 1, dl, d, du, du2, ipiv, b, 3); info != 0 {
		t.Fatalf("solve info %d", info)
	}
	for i, x := range b {
		if math.Abs(x-1) > 1e-12 {
			t.Errorf("x[%d] = %g, want 1", i, x)
		}
	}
}

func TestGttrfZeroPivotIndex(t *testing.T) {
	dl := []float64{0}
	d := []float64{0, 1}
	du := []float64{0}
	ipiv := make([]int, 2)
	if info := dGttrf(2, dl, d, du, nil, ipiv); info != 1 {
		t.Errorf("info = %d, want 1", info)
	}
}
