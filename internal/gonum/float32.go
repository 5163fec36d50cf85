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

import "github.com/ajroetker/go-lapack/internal/kernel"

// The single-precision table widens every element buffer to float64,
// runs the double-precision adapter and rounds the results back. That
// trades speed and exact s-routine rounding for full routine coverage;
// the cgo backend binds the native s kernels when built.

func registerFloat32() {
	kernel.S = kernel.Table[float32]{
		Backend: "gonum",

		Getrf: sGetrf,
		Getrs: sGetrs,
		Getri: sGetri,
		Gecon: sGecon,

		Gbtrf: sGbtrf,
		Gbtrs: sGbtrs,
		Gbsv:  sGbsv,

		Geqrf: sGeqrf,
		Orgqr: sOrgqr,
		Ormqr: sOrmqr,
		Gelqf: sGelqf,
		Orglq: sOrglq,
		Ormlq: sOrmlq,
		Gels:  sGels,

		Potrf: sPotrf,
		Potrs: sPotrs,
		Potri: sPotri,
		Pocon: sPocon,
		Pstrf: sPstrf,

		Trtrs: sTrtrs,
		Trtri: sTrtri,
		Trcon: sTrcon,

		Syev:  sSyev,
		Syevr: sSyevr,
		Stev:  sStev,

		Geev: sGeev,

		Gesvd: sGesvd,
		Gesdd: sGesdd,
		Bdsqr: sBdsqr,
		Bdsdc: sBdsdc,

		Gtsv:  sGtsv,
		Gttrf: sGttrf,
		Gttrs: sGttrs,

		Gehrd: sGehrd,
		Orghr: sOrghr,
		Gees:  sGees,

		Lange: sLange,

		Trttf: sTrttf,
		Tfttr: sTfttr,
	}
}

func wide(s []float32) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = float64(v)
	}
	return out
}

func narrow(dst []float32, src []float64) {
	for i, v := range src {
		dst[i] = float32(v)
	}
}

func sGetrf(m, n int, a []float32, lda int, ipiv []int) int {
	a64 := wide(a)
	info := kernel.D.Getrf(m, n, a64, lda, ipiv)
	narrow(a, a64)
	return info
}

func sGetrs(transc byte, n, nrhs int, a []float32, lda int, ipiv []int, b []float32, ldb int) int {
	a64, b64 := wide(a), wide(b)
	info := kernel.D.Getrs(transc, n, nrhs, a64, lda, ipiv, b64, ldb)
	narrow(b, b64)
	return info
}

func sGetri(n int, a []float32, lda int, ipiv []int, work []float32, lwork int) int {
	a64, w64 := wide(a), wide(work)
	info := kernel.D.Getri(n, a64, lda, ipiv, w64, lwork)
	narrow(a, a64)
	narrow(work, w64)
	return info
}

func sGecon(normc byte, n int, a []float32, lda int, anorm float64, rcond *float64, work []float32, rwork []float64, iwork []int) int {
	a64, w64 := wide(a), wide(work)
	return kernel.D.Gecon(normc, n, a64, lda, anorm, rcond, w64, rwork, iwork)
}

func sGbtrf(m, n, kl, ku int, ab []float32, ldab int, ipiv []int) int {
	ab64 := wide(ab)
	info := kernel.D.Gbtrf(m, n, kl, ku, ab64, ldab, ipiv)
	narrow(ab, ab64)
	return info
}

func sGbtrs(transc byte, n, kl, ku, nrhs int, ab []float32, ldab int, ipiv []int, b []float32, ldb int) int {
	b64 := wide(b)
	info := kernel.D.Gbtrs(transc, n, kl, ku, nrhs, wide(ab), ldab, ipiv, b64, ldb)
	narrow(b, b64)
	return info
}

func sGbsv(n, kl, ku, nrhs int, ab []float32, ldab int, ipiv []int, b []float32, ldb int) int {
	ab64, b64 := wide(ab), wide(b)
	info := kernel.D.Gbsv(n, kl, ku, nrhs, ab64, ldab, ipiv, b64, ldb)
	narrow(ab, ab64)
	narrow(b, b64)
	return info
}

func sGeqrf(m, n int, a []float32, lda int, tau, work []float32, lwork int) int {
	a64, t64, w64 := wide(a), wide(tau), wide(work)
	info := kernel.D.Geqrf(m, n, a64, lda, t64, w64, lwork)
	narrow(a, a64)
	narrow(tau, t64)
	narrow(work, w64)
	return info
}

func sOrgqr(m, n, k int, a []float32, lda int, tau, work []float32, lwork int) int {
	a64, t64, w64 := wide(a), wide(tau), wide(work)
	info := kernel.D.Orgqr(m, n, k, a64, lda, t64, w64, lwork)
	narrow(a, a64)
	narrow(work, w64)
	return info
}

func sOrmqr(sidec, transc byte, m, n, k int, a []float32, lda int, tau, c []float32, ldc int, work []float32, lwork int) int {
	a64, t64, c64, w64 := wide(a), wide(tau), wide(c), wide(work)
	info := kernel.D.Ormqr(sidec, transc, m, n, k, a64, lda, t64, c64, ldc, w64, lwork)
	narrow(c, c64)
	narrow(work, w64)
	return info
}

func sGelqf(m, n int, a []float32, lda int, tau, work []float32, lwork int) int {
	a64, t64, w64 := wide(a), wide(tau), wide(work)
	info := kernel.D.Gelqf(m, n, a64, lda, t64, w64, lwork)
	narrow(a, a64)
	narrow(tau, t64)
	narrow(work, w64)
	return info
}

func sOrglq(m, n, k int, a []float32, lda int, tau, work []float32, lwork int) int {
	a64, t64, w64 := wide(a), wide(tau), wide(work)
	info := kernel.D.Orglq(m, n, k, a64, lda, t64, w64, lwork)
	narrow(a, a64)
	narrow(work, w64)
	return info
}

func sOrmlq(sidec, transc byte, m, n, k int, a []float32, lda int, tau, c []float32, ldc int, work []float32, lwork int) int {
	a64, t64, c64, w64 := wide(a), wide(tau), wide(c), wide(work)
	info := kernel.D.Ormlq(sidec, transc, m, n, k, a64, lda, t64, c64, ldc, w64, lwork)
	narrow(c, c64)
	narrow(work, w64)
	return info
}

func sGels(transc byte, m, n, nrhs int, a []float32, lda int, b []float32, ldb int, work []float32, lwork int) int {
	a64, b64, w64 := wide(a), wide(b), wide(work)
	info := kernel.D.Gels(transc, m, n, nrhs, a64, lda, b64, ldb, w64, lwork)
	narrow(a, a64)
	narrow(b, b64)
	narrow(work, w64)
	return info
}

func sPotrf(uploc byte, n int, a []float32, lda int) int {
	a64 := wide(a)
	info := kernel.D.Potrf(uploc, n, a64, lda)
	narrow(a, a64)
	return info
}

func sPotrs(uploc byte, n, nrhs int, a []float32, lda int, b []float32, ldb int) int {
	a64, b64 := wide(a), wide(b)
	info := kernel.D.Potrs(uploc, n, nrhs, a64, lda, b64, ldb)
	narrow(b, b64)
	return info
}

func sPotri(uploc byte, n int, a []float32, lda int) int {
	a64 := wide(a)
	info := kernel.D.Potri(uploc, n, a64, lda)
	narrow(a, a64)
	return info
}

func sPocon(uploc byte, n int, a []float32, lda int, anorm float64, rcond *float64, work []float32, rwork []float64, iwork []int) int {
	a64, w64 := wide(a), wide(work)
	return kernel.D.Pocon(uploc, n, a64, lda, anorm, rcond, w64, rwork, iwork)
}

func sPstrf(uploc byte, n int, a []float32, lda int, piv []int, rank *int, tol float64, work []float64) int {
	a64 := wide(a)
	info := kernel.D.Pstrf(uploc, n, a64, lda, piv, rank, tol, work)
	narrow(a, a64)
	return info
}

func sTrtrs(uploc, transc, diagc byte, n, nrhs int, a []float32, lda int, b []float32, ldb int) int {
	a64, b64 := wide(a), wide(b)
	info := kernel.D.Trtrs(uploc, transc, diagc, n, nrhs, a64, lda, b64, ldb)
	narrow(b, b64)
	return info
}

func sTrtri(uploc, diagc byte, n int, a []float32, lda int) int {
	a64 := wide(a)
	info := kernel.D.Trtri(uploc, diagc, n, a64, lda)
	narrow(a, a64)
	return info
}

func sTrcon(normc, uploc, diagc byte, n int, a []float32, lda int, rcond *float64, work []float32, rwork []float64, iwork []int) int {
	a64, w64 := wide(a), wide(work)
	return kernel.D.Trcon(normc, uploc, diagc, n, a64, lda, rcond, w64, rwork, iwork)
}

func sSyev(jobz, uploc byte, n int, a []float32, lda int, w []float64, work []float32, lwork int, rwork []float64) int {
	a64, w64 := wide(a), wide(work)
	info := kernel.D.Syev(jobz, uploc, n, a64, lda, w, w64, lwork, rwork)
	narrow(a, a64)
	narrow(work, w64)
	return info
}

func sSyevr(jobz, rng, uploc byte, n int, a []float32, lda int, vl, vu float64, il, iu int, abstol float64,
	m *int, w []float64, z []float32, ldz int, isuppz []int, work []float32, lwork int,
	rwork []float64, lrwork int, iwork []int, liwork int) int {
	a64, z64, w64 := wide(a), wide(z), wide(work)
	info := kernel.D.Syevr(jobz, rng, uploc, n, a64, lda, vl, vu, il, iu, abstol,
		m, w, z64, ldz, isuppz, w64, lwork, rwork, lrwork, iwork, liwork)
	narrow(a, a64)
	narrow(z, z64)
	narrow(work, w64)
	return info
}

func sStev(jobz byte, n int, d, e []float32, z []float32, ldz int, work []float32) int {
	d64, e64, z64, w64 := wide(d), wide(e), wide(z), wide(work)
	info := kernel.D.Stev(jobz, n, d64, e64, z64, ldz, w64)
	narrow(d, d64)
	narrow(e, e64)
	narrow(z, z64)
	return info
}

func sGeev(jobvl, jobvr byte, n int, a []float32, lda int, wr, wi []float64, _ []float32,
	vl []float32, ldvl int, vr []float32, ldvr int, work []float32, lwork int, rwork []float64) int {
	a64, vl64, vr64, w64 := wide(a), wide(vl), wide(vr), wide(work)
	info := kernel.D.Geev(jobvl, jobvr, n, a64, lda, wr, wi, nil, vl64, ldvl, vr64, ldvr, w64, lwork, rwork)
	narrow(a, a64)
	narrow(vl, vl64)
	narrow(vr, vr64)
	narrow(work, w64)
	return info
}

func sGesvd(jobu, jobvt byte, m, n int, a []float32, lda int, s []float64,
	u []float32, ldu int, vt []float32, ldvt int, work []float32, lwork int, rwork []float64) int {
	a64, u64, vt64, w64 := wide(a), wide(u), wide(vt), wide(work)
	info := kernel.D.Gesvd(jobu, jobvt, m, n, a64, lda, s, u64, ldu, vt64, ldvt, w64, lwork, rwork)
	narrow(a, a64)
	narrow(u, u64)
	narrow(vt, vt64)
	narrow(work, w64)
	return info
}

func sGesdd(jobz byte, m, n int, a []float32, lda int, s []float64,
	u []float32, ldu int, vt []float32, ldvt int, work []float32, lwork int, rwork []float64, iwork []int) int {
	a64, u64, vt64, w64 := wide(a), wide(u), wide(vt), wide(work)
	info := kernel.D.Gesdd(jobz, m, n, a64, lda, s, u64, ldu, vt64, ldvt, w64, lwork, rwork, iwork)
	narrow(a, a64)
	narrow(u, u64)
	narrow(vt, vt64)
	narrow(work, w64)
	return info
}

func sBdsqr(uploc byte, n, ncvt, nru, ncc int, d, e []float64,
	vt []float32, ldvt int, u []float32, ldu int, c []float32, ldc int, rwork []float64) int {
	vt64, u64, c64 := wide(vt), wide(u), wide(c)
	info := kernel.D.Bdsqr(uploc, n, ncvt, nru, ncc, d, e, vt64, ldvt, u64, ldu, c64, ldc, rwork)
	narrow(vt, vt64)
	narrow(u, u64)
	narrow(c, c64)
	return info
}

func sBdsdc(uploc, compq byte, n int, d, e []float64,
	u []float32, ldu int, vt []float32, ldvt int, work []float64, iwork []int) int {
	u64, vt64 := wide(u), wide(vt)
	info := kernel.D.Bdsdc(uploc, compq, n, d, e, u64, ldu, vt64, ldvt, work, iwork)
	narrow(u, u64)
	narrow(vt, vt64)
	return info
}

func sGtsv(n, nrhs int, dl, d, du []float32, b []float32, ldb int) int {
	dl64, d64, du64, b64 := wide(dl), wide(d), wide(du), wide(b)
	info := kernel.D.Gtsv(n, nrhs, dl64, d64, du64, b64, ldb)
	narrow(dl, dl64)
	narrow(d, d64)
	narrow(du, du64)
	narrow(b, b64)
	return info
}

func sGttrf(n int, dl, d, du, du2 []float32, ipiv []int) int {
	dl64, d64, du64, du264 := wide(dl), wide(d), wide(du), wide(du2)
	info := kernel.D.Gttrf(n, dl64, d64, du64, du264, ipiv)
	narrow(dl, dl64)
	narrow(d, d64)
	narrow(du, du64)
	narrow(du2, du264)
	return info
}

func sGttrs(transc byte, n, nrhs int, dl, d, du, du2 []float32, ipiv []int, b []float32, ldb int) int {
	b64 := wide(b)
	info := kernel.D.Gttrs(transc, n, nrhs, wide(dl), wide(d), wide(du), wide(du2), ipiv, b64, ldb)
	narrow(b, b64)
	return info
}

func sGehrd(n, ilo, ihi int, a []float32, lda int, tau, work []float32, lwork int) int {
	a64, t64, w64 := wide(a), wide(tau), wide(work)
	info := kernel.D.Gehrd(n, ilo, ihi, a64, lda, t64, w64, lwork)
	narrow(a, a64)
	narrow(tau, t64)
	narrow(work, w64)
	return info
}

func sOrghr(n, ilo, ihi int, a []float32, lda int, tau, work []float32, lwork int) int {
	a64, t64, w64 := wide(a), wide(tau), wide(work)
	info := kernel.D.Orghr(n, ilo, ihi, a64, lda, t64, w64, lwork)
	narrow(a, a64)
	narrow(work, w64)
	return info
}

func sGees(jobvs byte, n int, a []float32, lda int, wr, wi []float64, _ []float32,
	vs []float32, ldvs int, work []float32, lwork int, rwork []float64) int {
	a64, vs64, w64 := wide(a), wide(vs), wide(work)
	info := kernel.D.Gees(jobvs, n, a64, lda, wr, wi, nil, vs64, ldvs, w64, lwork, rwork)
	narrow(a, a64)
	narrow(vs, vs64)
	narrow(work, w64)
	return info
}

func sLange(normc byte, m, n int, a []float32, lda int, rwork []float64) float64 {
	return kernel.D.Lange(normc, m, n, wide(a), lda, rwork)
}

func sTrttf(transr, uploc byte, n int, a []float32, lda int, arf []float32) int {
	a64, arf64 := wide(a), wide(arf)
	info := kernel.D.Trttf(transr, uploc, n, a64, lda, arf64)
	narrow(arf, arf64)
	return info
}

func sTfttr(transr, uploc byte, n int, arf []float32, a []float32, lda int) int {
	arf64, a64 := wide(arf), wide(a)
	info := kernel.D.Tfttr(transr, uploc, n, arf64, a64, lda)
	narrow(a, a64)
	return info
}
