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

// gonum carries no general tridiagonal LU driver, so the factorization
// and solve are implemented here directly. Partial pivoting swaps at most
// adjacent rows, which introduces the du2 fill-in diagonal; ipiv[i] is
// either i (no swap) or i+1, 0-based.

func dGttrf(n int, dl, d, du, du2 []float64, ipiv []int) int {
	for i := range ipiv {
		ipiv[i] = i
	}
	for i := range du2 {
		du2[i] = 0
	}
	for i := 0; i < n-1; i++ {
		if math.Abs(d[i]) >= math.Abs(dl[i]) {
			if d[i] != 0 {
				fact := dl[i] / d[i]
				dl[i] = fact
				d[i+1] -= fact * du[i]
			}
		} else {
			fact := d[i] / dl[i]
			d[i] = dl[i]
			dl[i] = fact
			tmp := du[i]
			du[i] = d[i+1]
			d[i+1] = tmp - fact*d[i+1]
			if i < n-2 {
				du2[i] = du[i+1]
				du[i+1] = -fact * du[i+1]
			}
			ipiv[i] = i + 1
		}
	}
	for i := 0; i < n; i++ {
		if d[i] == 0 {
			return i + 1
		}
	}
	return 0
}

func dGttrs(transc byte, n, nrhs int, dl, d, du, du2 []float64, ipiv []int, b []float64, ldb int) int {
	if n == 0 || nrhs == 0 {
		return 0
	}
	for j := 0; j < nrhs; j++ {
		x := b[j*ldb : j*ldb+n]
		if transc == 'N' {
			gttsSolve(n, dl, d, du, du2, ipiv, x)
		} else {
			gttsSolveTrans(n, dl, d, du, du2, ipiv, x)
		}
	}
	return 0
}

// gttsSolve solves L*U*x = P*b for one right-hand side in place.
func gttsSolve(n int, dl, d, du, du2 []float64, ipiv []int, x []float64) {
	for i := 0; i < n-1; i++ {
		if ipiv[i] == i {
			x[i+1] -= dl[i] * x[i]
		} else {
			tmp := x[i]
			x[i] = x[i+1]
			x[i+1] = tmp - dl[i]*x[i]
		}
	}
	x[n-1] /= d[n-1]
	if n > 1 {
		x[n-2] = (x[n-2] - du[n-2]*x[n-1]) / d[n-2]
	}
	for i := n - 3; i >= 0; i-- {
		x[i] = (x[i] - du[i]*x[i+1] - du2[i]*x[i+2]) / d[i]
	}
}

// gttsSolveTrans solves Uᵀ*Lᵀ*x = b, undoing the pivot swaps last.
func gttsSolveTrans(n int, dl, d, du, du2 []float64, ipiv []int, x []float64) {
	x[0] /= d[0]
	if n > 1 {
		x[1] = (x[1] - du[0]*x[0]) / d[1]
	}
	for i := 2; i < n; i++ {
		x[i] = (x[i] - du[i-1]*x[i-1] - du2[i-2]*x[i-2]) / d[i]
	}
	for i := n - 2; i >= 0; i-- {
		if ipiv[i] == i {
			x[i] -= dl[i] * x[i+1]
		} else {
			tmp := x[i+1]
			x[i+1] = x[i] - dl[i]*tmp
			x[i] = tmp
		}
	}
}
