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
	"fmt"
	"testing"
)

func TestRfpDims(t *testing.T) {
	for n := 0; n <= 8; n++ {
		ldr, q := rfpDims(n)
		if ldr*q != n*(n+1)/2 {
			t.Errorf("n=%d: %d×%d rectangle holds %d slots, want %d", n, ldr, q, ldr*q, n*(n+1)/2)
		}
		if n%2 == 0 && ldr != n+1 {
			t.Errorf("n=%d: ldr = %d, want %d", n, ldr, n+1)
		}
		if n%2 != 0 && ldr != n {
			t.Errorf("n=%d: ldr = %d, want %d", n, ldr, n)
		}
	}
}

// Every rectangle slot must map to a distinct element of the stored
// triangle, and together they must cover it exactly.
func TestRfpMapBijection(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for _, uplo := range []byte{'U', 'L'} {
			t.Run(fmt.Sprintf("n=%d/%c", n, uplo), func(t *testing.T) {
				ldr, q := rfpDims(n)
				seen := map[[2]int]bool{}
				for j := 0; j < q; j++ {
					for i := 0; i < ldr; i++ {
						r, c := rfpMap(uplo, n, i, j)
						if r < 0 || r >= n || c < 0 || c >= n {
							t.Fatalf("slot (%d,%d) maps outside the matrix: (%d,%d)", i, j, r, c)
						}
						inTri := r <= c
						if uplo == 'L' {
							inTri = r >= c
						}
						if !inTri {
							t.Fatalf("slot (%d,%d) maps to (%d,%d), outside the %c triangle", i, j, r, c, uplo)
						}
						key := [2]int{r, c}
						if seen[key] {
							t.Fatalf("element (%d,%d) covered twice", r, c)
						}
						seen[key] = true
					}
				}
				if len(seen) != n*(n+1)/2 {
					t.Errorf("covered %d elements, want %d", len(seen), n*(n+1)/2)
				}
			})
		}
	}
}

func TestTrttfTfttrKernels(t *testing.T) {
	// 3×3 lower triangle through the 'T' form and back.
	n := 3
	a := make([]float64, n*n)
	for j := 0; j < n; j++ {
		for i := j; i < n; i++ {
			a[j*n+i] = float64(10*i + j + 1)
		}
	}
	arf := make([]float64, n*(n+1)/2)
	if info := dTrttf('T', 'L', n, a, n, arf); info != 0 {
		t.Fatalf("trttf info %d", info)
	}
	back := make([]float64, n*n)
	if info := dTfttr('T', 'L', n, arf, back, n); info != 0 {
		t.Fatalf("tfttr info %d", info)
	}
	for j := 0; j < n; j++ {
		for i := j; i < n; i++ {
			if back[j*n+i] != a[j*n+i] {
				t.Errorf("a[%d,%d] = %g, want %g", i, j, back[j*n+i], a[j*n+i])
			}
		}
	}
}
