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

	"gonum.org/v1/gonum/lapack"
	ref "gonum.org/v1/gonum/lapack/gonum"

	"github.com/ajroetker/go-lapack/internal/kernel"
)

var impl ref.Implementation

// gonum reports some failures as a bare ok bool where LAPACK returns an
// index. Where the index is recoverable (an exactly zero diagonal, a
// non-positive leading minor) the adapters reconstruct it; for iterative
// routines a convergence failure maps to status 1.

func registerFloat64() {
	kernel.D = kernel.Table[float64]{
		Backend: "gonum",

		Getrf: dGetrf,
		Getrs: dGetrs,
		Getri: dGetri,
		Gecon: dGecon,

		Gbtrf: dGbtrf,
		Gbtrs: dGbtrs,
		Gbsv:  dGbsv,

		Geqrf: dGeqrf,
		Orgqr: dOrgqr,
		Ormqr: dOrmqr,
		Gelqf: dGelqf,
		Orglq: dOrglq,
		Ormlq: dOrmlq,
		Gels:  dGels,

		Potrf: dPotrf,
		Potrs: dPotrs,
		Potri: dPotri,
		Pocon: dPocon,
		Pstrf: dPstrf,

		Trtrs: dTrtrs,
		Trtri: dTrtri,
		Trcon: dTrcon,

		Syev:  dSyev,
		Syevr: dSyevr,
		Stev:  dStev,

		Geev: dGeev,

		Gesvd: dGesvd,
		Gesdd: dGesdd,
		Bdsqr: dBdsqr,
		Bdsdc: dBdsdc,

		Gtsv:  dGtsv,
		Gttrf: dGttrf,
		Gttrs: dGttrs,

		Gehrd: dGehrd,
		Orghr: dOrghr,
		Gees:  dGees,

		Lange: dLange,

		Trttf: dTrttf,
		Tfttr: dTfttr,
	}
}

func dGetrf(m, n int, a []float64, lda int, ipiv []int) int {
	rm := toRM(a, m, n, lda)
	ok := impl.Dgetrf(m, n, rm, rmStride(n), ipiv)
	fromRM(a, m, n, lda, rm)
	if !ok {
		if i := zeroDiag(rm, m, n); i != 0 {
			return i
		}
		return min(m, n)
	}
	return 0
}

func dGetrs(transc byte, n, nrhs int, a []float64, lda int, ipiv []int, b []float64, ldb int) int {
	arm := toRM(a, n, n, lda)
	brm := toRM(b, n, nrhs, ldb)
	impl.Dgetrs(trans(transc), n, nrhs, arm, rmStride(n), ipiv, brm, rmStride(nrhs))
	fromRM(b, n, nrhs, ldb, brm)
	return 0
}

func dGetri(n int, a []float64, lda int, ipiv []int, work []float64, lwork int) int {
	if lwork == -1 {
		impl.Dgetri(n, a, rmStride(n), ipiv, work, -1)
		return 0
	}
	if i := zeroDiagCM(a, n, lda); i != 0 {
		return i
	}
	rm := toRM(a, n, n, lda)
	ok := impl.Dgetri(n, rm, rmStride(n), ipiv, work, lwork)
	fromRM(a, n, n, lda, rm)
	if !ok {
		return 1
	}
	return 0
}

func dGecon(normc byte, n int, a []float64, lda int, anorm float64, rcond *float64, work []float64, _ []float64, iwork []int) int {
	rm := toRM(a, n, n, lda)
	*rcond = impl.Dgecon(norm(normc), n, rm, rmStride(n), anorm, work, iwork)
	return 0
}

func dGeqrf(m, n int, a []float64, lda int, tau, work []float64, lwork int) int {
	if lwork == -1 {
		impl.Dgeqrf(m, n, a, rmStride(n), tau, work, -1)
		return 0
	}
	rm := toRM(a, m, n, lda)
	impl.Dgeqrf(m, n, rm, rmStride(n), tau, work, lwork)
	fromRM(a, m, n, lda, rm)
	return 0
}

func dOrgqr(m, n, k int, a []float64, lda int, tau, work []float64, lwork int) int {
	if lwork == -1 {
		impl.Dorgqr(m, n, k, a, rmStride(n), tau, work, -1)
		return 0
	}
	rm := toRM(a, m, n, lda)
	impl.Dorgqr(m, n, k, rm, rmStride(n), tau, work, lwork)
	fromRM(a, m, n, lda, rm)
	return 0
}

func dOrmqr(sidec, transc byte, m, n, k int, a []float64, lda int, tau, c []float64, ldc int, work []float64, lwork int) int {
	// The reflector matrix is r×k with r set by the application side.
	r := m
	if sidec == 'R' {
		r = n
	}
	if lwork == -1 {
		impl.Dormqr(side(sidec), trans(transc), m, n, k, a, rmStride(k), tau, c, rmStride(n), work, -1)
		return 0
	}
	arm := toRM(a, r, k, lda)
	crm := toRM(c, m, n, ldc)
	impl.Dormqr(side(sidec), trans(transc), m, n, k, arm, rmStride(k), tau, crm, rmStride(n), work, lwork)
	fromRM(c, m, n, ldc, crm)
	return 0
}

func dGelqf(m, n int, a []float64, lda int, tau, work []float64, lwork int) int {
	if lwork == -1 {
		impl.Dgelqf(m, n, a, rmStride(n), tau, work, -1)
		return 0
	}
	rm := toRM(a, m, n, lda)
	impl.Dgelqf(m, n, rm, rmStride(n), tau, work, lwork)
	fromRM(a, m, n, lda, rm)
	return 0
}

func dOrglq(m, n, k int, a []float64, lda int, tau, work []float64, lwork int) int {
	if lwork == -1 {
		impl.Dorglq(m, n, k, a, rmStride(n), tau, work, -1)
		return 0
	}
	rm := toRM(a, m, n, lda)
	impl.Dorglq(m, n, k, rm, rmStride(n), tau, work, lwork)
	fromRM(a, m, n, lda, rm)
	return 0
}

func dOrmlq(sidec, transc byte, m, n, k int, a []float64, lda int, tau, c []float64, ldc int, work []float64, lwork int) int {
	// LQ reflectors are stored in rows: the matrix is k×r.
	r := m
	if sidec == 'R' {
		r = n
	}
	if lwork == -1 {
		impl.Dormlq(side(sidec), trans(transc), m, n, k, a, rmStride(r), tau, c, rmStride(n), work, -1)
		return 0
	}
	arm := toRM(a, k, r, lda)
	crm := toRM(c, m, n, ldc)
	impl.Dormlq(side(sidec), trans(transc), m, n, k, arm, rmStride(r), tau, crm, rmStride(n), work, lwork)
	fromRM(c, m, n, ldc, crm)
	return 0
}

func dGels(transc byte, m, n, nrhs int, a []float64, lda int, b []float64, ldb int, work []float64, lwork int) int {
	if lwork == -1 {
		impl.Dgels(trans(transc), m, n, nrhs, a, rmStride(n), b, rmStride(nrhs), work, -1)
		return 0
	}
	mx := max(m, n)
	arm := toRM(a, m, n, lda)
	brm := toRM(b, mx, nrhs, ldb)
	ok := impl.Dgels(trans(transc), m, n, nrhs, arm, rmStride(n), brm, rmStride(nrhs), work, lwork)
	fromRM(a, m, n, lda, arm)
	fromRM(b, mx, nrhs, ldb, brm)
	if !ok {
		if i := zeroDiag(arm, m, n); i != 0 {
			return i
		}
		return 1
	}
	return 0
}

func dPotrf(uploc byte, n int, a []float64, lda int) int {
	rm := toRM(a, n, n, lda)
	ok := impl.Dpotrf(uplo(uploc), n, rm, rmStride(n))
	if !ok {
		// a is untouched; rerun an unblocked factorization on it to
		// find the order of the first non-positive leading minor.
		return posdefMinor(a, n, lda, uploc)
	}
	fromRM(a, n, n, lda, rm)
	return 0
}

// posdefMinor runs a right-looking unblocked Cholesky over the uplo
// triangle of a column-major matrix and returns the 1-based order of the
// first leading minor that is not positive definite.
func posdefMinor(a []float64, n, lda int, uploc byte) int {
	at := func(i, j int) float64 {
		if uploc == 'L' {
			if i < j {
				i, j = j, i
			}
		} else if i > j {
			i, j = j, i
		}
		return a[j*lda+i]
	}
	l := make([]float64, n*n)
	for j := 0; j < n; j++ {
		d := at(j, j)
		for t := 0; t < j; t++ {
			d -= l[j*n+t] * l[j*n+t]
		}
		if d <= 0 || math.IsNaN(d) {
			return j + 1
		}
		dj := math.Sqrt(d)
		l[j*n+j] = dj
		for i := j + 1; i < n; i++ {
			s := at(i, j)
			for t := 0; t < j; t++ {
				s -= l[i*n+t] * l[j*n+t]
			}
			l[i*n+j] = s / dj
		}
	}
	return 1
}

func dPotrs(uploc byte, n, nrhs int, a []float64, lda int, b []float64, ldb int) int {
	arm := toRM(a, n, n, lda)
	brm := toRM(b, n, nrhs, ldb)
	impl.Dpotrs(uplo(uploc), n, nrhs, arm, rmStride(n), brm, rmStride(nrhs))
	fromRM(b, n, nrhs, ldb, brm)
	return 0
}

func dPotri(uploc byte, n int, a []float64, lda int) int {
	if i := zeroDiagCM(a, n, lda); i != 0 {
		return i
	}
	rm := toRM(a, n, n, lda)
	ok := impl.Dpotri(uplo(uploc), n, rm, rmStride(n))
	fromRM(a, n, n, lda, rm)
	if !ok {
		return 1
	}
	return 0
}

func dPocon(uploc byte, n int, a []float64, lda int, anorm float64, rcond *float64, work []float64, _ []float64, iwork []int) int {
	rm := toRM(a, n, n, lda)
	*rcond = impl.Dpocon(uplo(uploc), n, rm, rmStride(n), anorm, work, iwork)
	return 0
}

func dPstrf(uploc byte, n int, a []float64, lda int, piv []int, rank *int, tol float64, work []float64) int {
	rm := toRM(a, n, n, lda)
	r, ok := impl.Dpstrf(uplo(uploc), n, rm, rmStride(n), piv, tol, work)
	fromRM(a, n, n, lda, rm)
	*rank = r
	if !ok {
		return 1
	}
	return 0
}

func dTrtrs(uploc, transc, diagc byte, n, nrhs int, a []float64, lda int, b []float64, ldb int) int {
	if diagc == 'N' {
		if i := zeroDiagCM(a, n, lda); i != 0 {
			return i
		}
	}
	arm := toRM(a, n, n, lda)
	brm := toRM(b, n, nrhs, ldb)
	ok := impl.Dtrtrs(uplo(uploc), trans(transc), diag(diagc), n, nrhs, arm, rmStride(n), brm, rmStride(nrhs))
	if !ok {
		return 1
	}
	fromRM(b, n, nrhs, ldb, brm)
	return 0
}

func dTrtri(uploc, diagc byte, n int, a []float64, lda int) int {
	if diagc == 'N' {
		if i := zeroDiagCM(a, n, lda); i != 0 {
			return i
		}
	}
	rm := toRM(a, n, n, lda)
	ok := impl.Dtrtri(uplo(uploc), diag(diagc), n, rm, rmStride(n))
	fromRM(a, n, n, lda, rm)
	if !ok {
		return 1
	}
	return 0
}

func dTrcon(normc, uploc, diagc byte, n int, a []float64, lda int, rcond *float64, work []float64, _ []float64, iwork []int) int {
	rm := toRM(a, n, n, lda)
	*rcond = impl.Dtrcon(norm(normc), uplo(uploc), diag(diagc), n, rm, rmStride(n), work, iwork)
	return 0
}

func dSyev(jobz, uploc byte, n int, a []float64, lda int, w []float64, work []float64, lwork int, _ []float64) int {
	if lwork == -1 {
		impl.Dsyev(evJob(jobz), uplo(uploc), n, a, rmStride(n), w, work, -1)
		return 0
	}
	rm := toRM(a, n, n, lda)
	ok := impl.Dsyev(evJob(jobz), uplo(uploc), n, rm, rmStride(n), w, work, lwork)
	fromRM(a, n, n, lda, rm)
	if !ok {
		return 1
	}
	return 0
}

// dSyevr computes the full symmetric spectrum and filters it down to the
// requested range. gonum has no native RRR driver, so selection costs a
// full decomposition here; the cgo backend binds dsyevr directly.
func dSyevr(jobz, rng, uploc byte, n int, a []float64, lda int, vl, vu float64, il, iu int, _ float64,
	m *int, w []float64, z []float64, ldz int, _ []int, work []float64, lwork int,
	rwork []float64, lrwork int, iwork []int, liwork int) int {
	if lwork == -1 || lrwork == -1 || liwork == -1 {
		impl.Dsyev(evJob(jobz), uplo(uploc), n, a, rmStride(n), w, work, -1)
		rwork[0] = 1
		iwork[0] = 1
		return 0
	}
	rm := toRM(a, n, n, lda)
	wfull := make([]float64, n)
	ok := impl.Dsyev(evJob(jobz), uplo(uploc), n, rm, rmStride(n), wfull, work, lwork)
	fromRM(a, n, n, lda, rm)
	if !ok {
		return 1
	}
	var sel []int
	switch rng {
	case 'V':
		for i, v := range wfull {
			if vl < v && v <= vu {
				sel = append(sel, i)
			}
		}
	case 'I':
		for i := il; i < iu; i++ {
			sel = append(sel, i)
		}
	default:
		sel = make([]int, n)
		for i := range sel {
			sel[i] = i
		}
	}
	*m = len(sel)
	for idx, src := range sel {
		w[idx] = wfull[src]
		if jobz == 'V' {
			for i := 0; i < n; i++ {
				z[idx*ldz+i] = rm[i*n+src]
			}
		}
	}
	return 0
}

func dStev(jobz byte, n int, d, e []float64, z []float64, ldz int, work []float64) int {
	comp := lapack.EVCompNone
	zrm, lz := dummyRM(), 1
	if jobz == 'V' {
		comp = lapack.EVTridiag
		zrm, lz = make([]float64, n*n), rmStride(n)
	}
	ok := impl.Dsteqr(comp, n, d, e, zrm, lz, work)
	if !ok {
		return 1
	}
	if jobz == 'V' {
		fromRM(z, n, n, ldz, zrm)
	}
	return 0
}

func dGeev(jobvl, jobvr byte, n int, a []float64, lda int, wr, wi []float64, _ []float64,
	vl []float64, ldvl int, vr []float64, ldvr int, work []float64, lwork int, _ []float64) int {
	jl, jr := lapack.LeftEVNone, lapack.RightEVNone
	lvl, lvr := 1, 1
	if jobvl == 'V' {
		jl, lvl = lapack.LeftEVCompute, rmStride(n)
	}
	if jobvr == 'V' {
		jr, lvr = lapack.RightEVCompute, rmStride(n)
	}
	if lwork == -1 {
		impl.Dgeev(jl, jr, n, a, rmStride(n), wr, wi, vl, lvl, vr, lvr, work, -1)
		return 0
	}
	rm := toRM(a, n, n, lda)
	vlrm, vrrm := dummyRM(), dummyRM()
	if jobvl == 'V' {
		vlrm = make([]float64, n*n)
	}
	if jobvr == 'V' {
		vrrm = make([]float64, n*n)
	}
	first := impl.Dgeev(jl, jr, n, rm, rmStride(n), wr, wi, vlrm, lvl, vrrm, lvr, work, lwork)
	fromRM(a, n, n, lda, rm)
	if jobvl == 'V' {
		fromRM(vl, n, n, ldvl, vlrm)
	}
	if jobvr == 'V' {
		fromRM(vr, n, n, ldvr, vrrm)
	}
	return first
}

// svdDims mirrors the buffer shapes the binding layer allocates for a
// pair of SVD job flags.
func svdDims(ju, jvt lapack.SVDJob, m, n int) (ur, uc, vtr, vtc int) {
	minmn := min(m, n)
	switch ju {
	case lapack.SVDAll:
		ur, uc = m, m
	case lapack.SVDStore:
		ur, uc = m, minmn
	}
	switch jvt {
	case lapack.SVDAll:
		vtr, vtc = n, n
	case lapack.SVDStore:
		vtr, vtc = minmn, n
	}
	return ur, uc, vtr, vtc
}

func svdCall(ju, jvt lapack.SVDJob, m, n int, a []float64, lda int, s []float64,
	u []float64, ldu int, vt []float64, ldvt int, work []float64, lwork int) int {
	ur, uc, vtr, vtc := svdDims(ju, jvt, m, n)
	lu, lvt := rmStride(uc), rmStride(vtc)
	if lwork == -1 {
		impl.Dgesvd(ju, jvt, m, n, a, rmStride(n), s, u, lu, vt, lvt, work, -1)
		return 0
	}
	arm := toRM(a, m, n, lda)
	urm, vtrm := dummyRM(), dummyRM()
	if ur > 0 {
		urm = make([]float64, ur*uc)
	}
	if vtr > 0 {
		vtrm = make([]float64, vtr*vtc)
	}
	ok := impl.Dgesvd(ju, jvt, m, n, arm, rmStride(n), s, urm, lu, vtrm, lvt, work, lwork)
	fromRM(a, m, n, lda, arm)
	if ur > 0 {
		fromRM(u, ur, uc, ldu, urm)
	}
	if vtr > 0 {
		fromRM(vt, vtr, vtc, ldvt, vtrm)
	}
	if !ok {
		return 1
	}
	return 0
}

func dGesvd(jobu, jobvt byte, m, n int, a []float64, lda int, s []float64,
	u []float64, ldu int, vt []float64, ldvt int, work []float64, lwork int, _ []float64) int {
	return svdCall(svdJob(jobu), svdJob(jobvt), m, n, a, lda, s, u, ldu, vt, ldvt, work, lwork)
}

// dGesdd serves the divide-and-conquer entry point with the QR-iteration
// driver, translating the single jobz flag into the equivalent per-side
// pair. Identical results, different constant factors.
func dGesdd(jobz byte, m, n int, a []float64, lda int, s []float64,
	u []float64, ldu int, vt []float64, ldvt int, work []float64, lwork int, _ []float64, _ []int) int {
	var ju, jvt lapack.SVDJob
	switch jobz {
	case 'A':
		ju, jvt = lapack.SVDAll, lapack.SVDAll
	case 'S':
		ju, jvt = lapack.SVDStore, lapack.SVDStore
	case 'O':
		if m >= n {
			ju, jvt = lapack.SVDOverwrite, lapack.SVDAll
		} else {
			ju, jvt = lapack.SVDAll, lapack.SVDOverwrite
		}
	default:
		ju, jvt = lapack.SVDNone, lapack.SVDNone
	}
	return svdCall(ju, jvt, m, n, a, lda, s, u, ldu, vt, ldvt, work, lwork)
}

func dBdsqr(uploc byte, n, ncvt, nru, ncc int, d, e []float64,
	vt []float64, ldvt int, u []float64, ldu int, c []float64, ldc int, rwork []float64) int {
	vtrm, lvt := dummyRM(), 1
	urm, lu := dummyRM(), 1
	crm, lc := dummyRM(), 1
	if ncvt > 0 {
		vtrm, lvt = toRM(vt, n, ncvt, ldvt), rmStride(ncvt)
	}
	if nru > 0 {
		urm, lu = toRM(u, nru, n, ldu), rmStride(n)
	}
	if ncc > 0 {
		crm, lc = toRM(c, n, ncc, ldc), rmStride(ncc)
	}
	ok := impl.Dbdsqr(uplo(uploc), n, ncvt, nru, ncc, d, e, vtrm, lvt, urm, lu, crm, lc, rwork)
	if ncvt > 0 {
		fromRM(vt, n, ncvt, ldvt, vtrm)
	}
	if nru > 0 {
		fromRM(u, nru, n, ldu, urm)
	}
	if ncc > 0 {
		fromRM(c, n, ncc, ldc, crm)
	}
	if !ok {
		return 1
	}
	return 0
}

// dBdsdc runs the bidiagonal SVD through Dbdsqr with identity
// accumulation buffers. gonum has no divide-and-conquer bidiagonal
// driver; the cgo backend binds dbdsdc directly.
func dBdsdc(uploc, compq byte, n int, d, e []float64,
	u []float64, ldu int, vt []float64, ldvt int, work []float64, _ []int) int {
	if n == 0 {
		return 0
	}
	if compq != 'I' {
		if !impl.Dbdsqr(uplo(uploc), n, 0, 0, 0, d, e, dummyRM(), 1, dummyRM(), 1, dummyRM(), 1, work) {
			return 1
		}
		return 0
	}
	urm := identityRM(n)
	vtrm := identityRM(n)
	if !impl.Dbdsqr(uplo(uploc), n, n, n, 0, d, e, vtrm, n, urm, n, dummyRM(), 1, work) {
		return 1
	}
	fromRM(u, n, n, ldu, urm)
	fromRM(vt, n, n, ldvt, vtrm)
	return 0
}

func identityRM(n int) []float64 {
	id := make([]float64, n*n)
	for i := 0; i < n; i++ {
		id[i*n+i] = 1
	}
	return id
}

func dGtsv(n, nrhs int, dl, d, du []float64, b []float64, ldb int) int {
	if n == 0 {
		return 0
	}
	du2 := make([]float64, max(0, n-2))
	ipiv := make([]int, n)
	if info := dGttrf(n, dl, d, du, du2, ipiv); info != 0 {
		return info
	}
	return dGttrs('N', n, nrhs, dl, d, du, du2, ipiv, b, ldb)
}

func dGehrd(n, ilo, ihi int, a []float64, lda int, tau, work []float64, lwork int) int {
	if lwork == -1 {
		impl.Dgehrd(n, ilo, ihi, a, rmStride(n), tau, work, -1)
		return 0
	}
	rm := toRM(a, n, n, lda)
	impl.Dgehrd(n, ilo, ihi, rm, rmStride(n), tau, work, lwork)
	fromRM(a, n, n, lda, rm)
	return 0
}

func dOrghr(n, ilo, ihi int, a []float64, lda int, tau, work []float64, lwork int) int {
	if lwork == -1 {
		impl.Dorghr(n, ilo, ihi, a, rmStride(n), tau, work, -1)
		return 0
	}
	rm := toRM(a, n, n, lda)
	impl.Dorghr(n, ilo, ihi, rm, rmStride(n), tau, work, lwork)
	fromRM(a, n, n, lda, rm)
	return 0
}

// dGees chains Dgehrd, Dorghr and Dhseqr, the classical Schur driver
// decomposition. The workspace answer is a closed-form bound covering all
// three stages.
func dGees(jobvs byte, n int, a []float64, lda int, wr, wi []float64, _ []float64,
	vs []float64, ldvs int, work []float64, lwork int, _ []float64) int {
	if lwork == -1 {
		work[0] = float64(max(1, n*n+3*n))
		return 0
	}
	if n == 0 {
		return 0
	}
	rm := toRM(a, n, n, lda)
	tau := make([]float64, n-1)
	impl.Dgehrd(n, 0, n-1, rm, rmStride(n), tau, work, lwork)
	q, ldq := dummyRM(), 1
	compz := lapack.SchurNone
	if jobvs == 'V' {
		q = append([]float64(nil), rm...)
		impl.Dorghr(n, 0, n-1, q, rmStride(n), tau, work, lwork)
		compz, ldq = lapack.SchurOrig, rmStride(n)
	}
	unconv := impl.Dhseqr(lapack.EigenvaluesAndSchur, compz, n, 0, n-1, rm, rmStride(n), wr, wi, q, ldq, work, lwork)
	fromRM(a, n, n, lda, rm)
	if jobvs == 'V' {
		fromRM(vs, n, n, ldvs, q)
	}
	return unconv
}

func dLange(normc byte, m, n int, a []float64, lda int, rwork []float64) float64 {
	rm := toRM(a, m, n, lda)
	// The row-major Dlange wants scratch for the column-sum norm, the
	// transposed counterpart of the column-major 'I' contract.
	work := rwork
	if (normc == '1' || normc == 'O') && len(work) < n {
		work = make([]float64, n)
	}
	return impl.Dlange(norm(normc), m, n, rm, rmStride(n), work)
}
