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

import "math"

// gonum carries no general banded LU driver, so the factorization and
// solve are implemented here directly, like the tridiagonal family.
//
// ab is column-major band storage with leading dimension ldab >=
// 2*kl+ku+1: A(i, j) sits at ab[j*ldab + kl+ku+i-j], the diagonal in row
// kl+ku. Partial pivoting swaps rows at most kl apart, widening U by up
// to kl extra superdiagonals; the top kl rows of ab hold that fill-in.

func dGbtrf(m, n, kl, ku int, ab []float64, ldab int, ipiv []int) int {
	kv := kl + ku
	for j := 0; j < n; j++ {
		for i := 0; i < kl; i++ {
			ab[j*ldab+i] = 0
		}
	}
	info := 0
	ju := 0 // rightmost column touched by an interchange so far
	for j := 0; j < min(m, n); j++ {
		km := min(kl, m-1-j)
		col := j * ldab
		jp := 0
		pmax := math.Abs(ab[col+kv])
		for i := 1; i <= km; i++ {
			if v := math.Abs(ab[col+kv+i]); v > pmax {
				jp, pmax = i, v
			}
		}
		ipiv[j] = j + jp
		if ab[col+kv+jp] == 0 {
			if info == 0 {
				info = j + 1
			}
			continue
		}
		ju = max(ju, min(j+ku+jp, n-1))
		if jp != 0 {
			for q := j; q <= ju; q++ {
				o := q*ldab + kv + j - q
				ab[o], ab[o+jp] = ab[o+jp], ab[o]
			}
		}
		if km > 0 {
			piv := ab[col+kv]
			for i := 1; i <= km; i++ {
				ab[col+kv+i] /= piv
			}
			for q := j + 1; q <= ju; q++ {
				o := q*ldab + kv + j - q
				if f := ab[o]; f != 0 {
					for i := 1; i <= km; i++ {
						ab[o+i] -= ab[col+kv+i] * f
					}
				}
			}
		}
	}
	return info
}

func dGbtrs(transc byte, n, kl, ku, nrhs int, ab []float64, ldab int, ipiv []int, b []float64, ldb int) int {
	if n == 0 || nrhs == 0 {
		return 0
	}
	kv := kl + ku
	for r := 0; r < nrhs; r++ {
		x := b[r*ldb : r*ldb+n]
		if transc == 'N' {
			// Apply P and the multipliers column by column, then back
			// substitute through the widened U.
			for j := 0; j < n-1; j++ {
				if p := ipiv[j]; p != j {
					x[p], x[j] = x[j], x[p]
				}
				km := min(kl, n-1-j)
				col := j*ldab + kv
				for i := 1; i <= km; i++ {
					x[j+i] -= ab[col+i] * x[j]
				}
			}
			for j := n - 1; j >= 0; j-- {
				s := x[j]
				hi := min(n-1, j+kv)
				for q := j + 1; q <= hi; q++ {
					s -= ab[q*ldab+kv+j-q] * x[q]
				}
				x[j] = s / ab[j*ldab+kv]
			}
		} else {
			// Uᵀ forward substitution, then Lᵀ with the swaps undone last.
			for j := 0; j < n; j++ {
				s := x[j]
				for q := max(0, j-kv); q < j; q++ {
					s -= ab[j*ldab+kv+q-j] * x[q]
				}
				x[j] = s / ab[j*ldab+kv]
			}
			for j := n - 2; j >= 0; j-- {
				km := min(kl, n-1-j)
				col := j*ldab + kv
				for i := 1; i <= km; i++ {
					x[j] -= ab[col+i] * x[j+i]
				}
				if p := ipiv[j]; p != j {
					x[p], x[j] = x[j], x[p]
				}
			}
		}
	}
	return 0
}

func dGbsv(n, kl, ku, nrhs int, ab []float64, ldab int, ipiv []int, b []float64, ldb int) int {
	if info := dGbtrf(n, n, kl, ku, ab, ldab, ipiv); info != 0 {
		return info
	}
	return dGbtrs('N', n, kl, ku, nrhs, ab, ldab, ipiv, b, ldb)
}
