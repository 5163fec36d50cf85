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
	"fmt"
	"testing"
)

// triangleMatrix fills the uplo triangle of an n×n matrix with distinct
// values and the opposite triangle with a sentinel the conversion must
// not read.
func triangleMatrix(n int, uplo Uplo) General[float64] {
	a := NewGeneral[float64](n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			inTri := i <= j
			if uplo == Lower {
				inTri = i >= j
			}
			if inTri {
				a.Set(i, j, float64(10*i+j+1))
			} else {
				a.Set(i, j, -1000)
			}
		}
	}
	return a
}

func TestTrttfRoundTrip(t *testing.T) {
	for n := 1; n <= 6; n++ {
		for _, uplo := range []Uplo{Upper, Lower} {
			for _, transr := range []Transpose{NoTrans, Trans} {
				t.Run(fmt.Sprintf("n=%d/%c%c", n, uplo, transr), func(t *testing.T) {
					a := triangleMatrix(n, uplo)
					arf, err := Trttf(transr, uplo, a)
					if err != nil {
						t.Fatal(err)
					}
					if len(arf) != n*(n+1)/2 {
						t.Fatalf("rfp length %d, want %d", len(arf), n*(n+1)/2)
					}

					back, err := Tfttr(transr, uplo, n, arf)
					if err != nil {
						t.Fatal(err)
					}
					for i := 0; i < n; i++ {
						for j := 0; j < n; j++ {
							inTri := i <= j
							if uplo == Lower {
								inTri = i >= j
							}
							want := 0.0
							if inTri {
								want = float64(10*i + j + 1)
							}
							if back.At(i, j) != want {
								t.Errorf("a[%d,%d] = %g, want %g", i, j, back.At(i, j), want)
							}
						}
					}
				})
			}
		}
	}
}

func TestTfttrBadLength(t *testing.T) {
	var de *DimensionError
	if _, err := Tfttr[float64](NoTrans, Upper, 3, make([]float64, 5)); !errors.As(err, &de) {
		t.Errorf("wrong rfp length: got %v, want DimensionError", err)
	}
}

func TestRfpRealRejectsConjForm(t *testing.T) {
	var fe *FlagError
	if _, err := Trttf(ConjTrans, Upper, NewGeneral[float64](2, 2)); !errors.As(err, &fe) {
		t.Errorf("conjugate rfp form on a real type: got %v, want FlagError", err)
	}
}
