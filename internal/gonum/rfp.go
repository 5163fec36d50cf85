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

// Rectangular full packed conversions. The normal ('N') RFP form views
// the n*(n+1)/2 packed elements as a column-major rectangle of ldr rows
// by q columns, where ldr is n for odd n and n+1 for even n. Each
// rectangle slot maps to exactly one element of the stored triangle; the
// 'T' form is the transpose of that rectangle.
//
// For uplo = 'L' the first columns hold the lower trapezoid in place and
// the slots above the diagonal hold the transposed trailing triangle.
// For uplo = 'U' each rectangle column holds one trailing upper column on
// top, with the leading triangle's transposed rows filling the slack
// below. For n = 5:
//
//	lower             upper
//	00 33 43          02 03 04
//	10 11 44          12 13 14
//	20 21 22          22 23 24
//	30 31 32          00 33 34
//	40 41 42          01 11 44

// rfpDims returns the 'N'-form rectangle dimensions for order n.
func rfpDims(n int) (ldr, q int) {
	ldr = n
	if n%2 == 0 {
		ldr = n + 1
	}
	return ldr, n * (n + 1) / 2 / ldr
}

// rfpMap maps slot (i, j) of the 'N'-form rectangle to the full-matrix
// element (r, c) it stores.
func rfpMap(uploc byte, n, i, j int) (r, c int) {
	if uploc == 'U' {
		n1 := n / 2
		if i <= n1+j {
			return i, n1 + j
		}
		return j, i - n1 - 1
	}
	if n%2 != 0 {
		n1 := (n + 1) / 2
		if i >= j {
			return i, j
		}
		return n1 + j - 1, n1 + i
	}
	n1 := n / 2
	if i > j {
		return i - 1, j
	}
	return n1 + j, n1 + i
}

func dTrttf(transr, uploc byte, n int, a []float64, lda int, arf []float64) int {
	ldr, q := rfpDims(n)
	for j := 0; j < q; j++ {
		for i := 0; i < ldr; i++ {
			r, c := rfpMap(uploc, n, i, j)
			idx := j*ldr + i
			if transr != 'N' {
				idx = i*q + j
			}
			arf[idx] = a[c*lda+r]
		}
	}
	return 0
}

func dTfttr(transr, uploc byte, n int, arf []float64, a []float64, lda int) int {
	ldr, q := rfpDims(n)
	for j := 0; j < q; j++ {
		for i := 0; i < ldr; i++ {
			r, c := rfpMap(uploc, n, i, j)
			idx := j*ldr + i
			if transr != 'N' {
				idx = i*q + j
			}
			a[c*lda+r] = arf[idx]
		}
	}
	return 0
}
