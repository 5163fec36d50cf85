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
	"testing"
)

const tol = 1e-10

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// matFrom builds a column-major matrix from row-major literals, which read
// naturally in test fixtures.
func matFrom(rows [][]float64) General[float64] {
	m := NewGeneral[float64](len(rows), len(rows[0]))
	for i, row := range rows {
		for j, v := range row {
			m.Set(i, j, v)
		}
	}
	return m
}

func colFrom(v []float64) General[float64] {
	b := NewGeneral[float64](len(v), 1)
	for i, x := range v {
		b.Set(i, 0, x)
	}
	return b
}

func mulDense(a, b General[float64]) General[float64] {
	out := NewGeneral[float64](a.Rows, b.Cols)
	for i := 0; i < a.Rows; i++ {
		for j := 0; j < b.Cols; j++ {
			var sum float64
			for k := 0; k < a.Cols; k++ {
				sum += a.At(i, k) * b.At(k, j)
			}
			out.Set(i, j, sum)
		}
	}
	return out
}

func transDense(a General[float64]) General[float64] {
	out := NewGeneral[float64](a.Cols, a.Rows)
	for i := 0; i < a.Rows; i++ {
		for j := 0; j < a.Cols; j++ {
			out.Set(j, i, a.At(i, j))
		}
	}
	return out
}

func wantMat(t *testing.T, name string, got General[float64], want [][]float64, tol float64) {
	t.Helper()
	if got.Rows != len(want) || (len(want) > 0 && got.Cols != len(want[0])) {
		t.Fatalf("%s is %d×%d, want %d×%d", name, got.Rows, got.Cols, len(want), len(want[0]))
	}
	for i := range want {
		for j, v := range want[i] {
			if !near(got.At(i, j), v, tol) {
				t.Errorf("%s[%d,%d] = %g, want %g", name, i, j, got.At(i, j), v)
			}
		}
	}
}

func wantVec(t *testing.T, name string, got, want []float64, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s has length %d, want %d", name, len(got), len(want))
	}
	for i := range want {
		if !near(got[i], want[i], tol) {
			t.Errorf("%s[%d] = %g, want %g", name, i, got[i], want[i])
		}
	}
}

// wantOrtho checks that the columns of q are orthonormal: qᵀq ≈ I.
func wantOrtho(t *testing.T, name string, q General[float64], tol float64) {
	t.Helper()
	g := mulDense(transDense(q), q)
	for i := 0; i < g.Rows; i++ {
		for j := 0; j < g.Cols; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if !near(g.At(i, j), want, tol) {
				t.Errorf("%sᵀ%s[%d,%d] = %g, want %g", name, name, i, j, g.At(i, j), want)
			}
		}
	}
}
