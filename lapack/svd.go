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

// SVD holds a singular value decomposition A = U * diag(S) * VT. S is
// descending. U and VT are freshly allocated at the shape the job flags
// requested, or empty when a side was not computed or was written over the
// input buffer (SVDOverwrite).
type SVD[T Scalar] struct {
	S     []float64
	U, VT General[T]
}

// svdShapes computes the U and VT buffer shapes requested by a pair of
// SVD job flags. Pure shape logic, kept separate from the kernel call so
// flag-driven allocation is testable on its own.
func svdShapes(jobu, jobvt SVDJob, m, n int) (ur, uc, vtr, vtc int) {
	minmn := min(m, n)
	switch jobu {
	case SVDAll:
		ur, uc = m, m
	case SVDStore:
		ur, uc = m, minmn
	}
	switch jobvt {
	case SVDAll:
		vtr, vtc = n, n
	case SVDStore:
		vtr, vtc = minmn, n
	}
	return ur, uc, vtr, vtc
}

// Gesvd computes the singular value decomposition of an m×n matrix by
// bidiagonal QR iteration. jobu and jobvt independently select whether the
// left/right singular vectors are computed in full (SVDAll), in economy
// size (SVDStore), over the input buffer (SVDOverwrite, at most one side),
// or not at all. a is destroyed (or overwritten with vectors under
// SVDOverwrite).
func Gesvd[T Scalar](jobu, jobvt SVDJob, a General[T]) (SVD[T], error) {
	if err := checkFlag("jobu", byte(jobu), "ASON"); err != nil {
		return SVD[T]{}, err
	}
	if err := checkFlag("jobvt", byte(jobvt), "ASON"); err != nil {
		return SVD[T]{}, err
	}
	if jobu == SVDOverwrite && jobvt == SVDOverwrite {
		return SVD[T]{}, &FlagError{Name: "jobvt", Value: byte(jobvt), Allowed: "ASN when jobu is O"}
	}
	if err := checkGeneral("a", a); err != nil {
		return SVD[T]{}, err
	}
	k := tab[T]()
	if k.Gesvd == nil {
		noKernel("gesvd", k.Backend)
	}
	m, n := a.Rows, a.Cols
	minmn := min(m, n)
	s := make([]float64, minmn)
	dummy := General[T]{Stride: 1, Data: make([]T, 1)}
	u, vt := dummy, dummy
	ur, uc, vtr, vtc := svdShapes(jobu, jobvt, m, n)
	if ur > 0 {
		u = NewGeneral[T](ur, uc)
	}
	if vtr > 0 {
		vt = NewGeneral[T](vtr, vtc)
	}
	var rwork []float64
	if TypeOf[T]().Complex {
		rwork = scratch[float64](5 * minmn)
	}
	info := queryWork(func(work []T, lwork int) int {
		return k.Gesvd(byte(jobu), byte(jobvt), m, n, a.Data, a.Stride, s, u.Data, u.Stride, vt.Data, vt.Stride, work, lwork, rwork)
	})
	if err := checkInfoConverge("gesvd", info); err != nil {
		return SVD[T]{}, err
	}
	return SVD[T]{S: s, U: u, VT: vt}, nil
}

// Gesdd computes the singular value decomposition by divide and conquer,
// faster than Gesvd for large matrices at the cost of more workspace. A
// single jobz flag controls both vector sides; SVDOverwrite stores the
// tall side's vectors over a.
func Gesdd[T Scalar](jobz SVDJob, a General[T]) (SVD[T], error) {
	if err := checkFlag("jobz", byte(jobz), "ASON"); err != nil {
		return SVD[T]{}, err
	}
	if err := checkGeneral("a", a); err != nil {
		return SVD[T]{}, err
	}
	k := tab[T]()
	if k.Gesdd == nil {
		noKernel("gesdd", k.Backend)
	}
	m, n := a.Rows, a.Cols
	minmn := min(m, n)
	s := make([]float64, minmn)
	dummy := General[T]{Stride: 1, Data: make([]T, 1)}
	u, vt := dummy, dummy
	switch jobz {
	case SVDAll:
		u = NewGeneral[T](m, m)
		vt = NewGeneral[T](n, n)
	case SVDStore:
		u = NewGeneral[T](m, minmn)
		vt = NewGeneral[T](minmn, n)
	case SVDOverwrite:
		// The tall side overwrites a; only the other side is allocated.
		if m >= n {
			vt = NewGeneral[T](n, n)
		} else {
			u = NewGeneral[T](m, m)
		}
	}
	iwork := scratch[int](8 * minmn)
	var rwork []float64
	if TypeOf[T]().Complex {
		lrwork := 7 * minmn
		if jobz != SVDNone {
			lrwork = max(5*minmn*minmn+5*minmn, 2*max(m, n)*minmn+2*minmn*minmn+minmn)
		}
		rwork = scratch[float64](lrwork)
	}
	info := queryWork(func(work []T, lwork int) int {
		return k.Gesdd(byte(jobz), m, n, a.Data, a.Stride, s, u.Data, u.Stride, vt.Data, vt.Stride, work, lwork, rwork, iwork)
	})
	if err := checkInfoConverge("gesdd", info); err != nil {
		return SVD[T]{}, err
	}
	return SVD[T]{S: s, U: u, VT: vt}, nil
}

// Bdsqr computes the singular value decomposition of a bidiagonal matrix
// with diagonal d and off-diagonal e by implicit QR iteration, optionally
// accumulating the transformations into vt (rows), u (columns) and c. Any
// of the three accumulation buffers may be empty. On return d holds the
// singular values in descending order. The workspace is closed-form, so no
// query call is made.
func Bdsqr[T Scalar](uplo Uplo, d, e []float64, vt, u, c General[T]) error {
	if err := checkFlag("uplo", byte(uplo), "UL"); err != nil {
		return err
	}
	n := len(d)
	if err := checkVector("e", e, max(0, n-1)); err != nil {
		return err
	}
	for _, m := range []struct {
		name string
		a    General[T]
		rows bool
	}{{"vt", vt, true}, {"u", u, false}, {"c", c, true}} {
		if len(m.a.Data) == 0 {
			continue
		}
		if err := checkGeneral(m.name, m.a); err != nil {
			return err
		}
		if m.rows && m.a.Rows != n {
			return &DimensionError{Reason: m.name + " accumulation buffer must have n rows"}
		}
		if !m.rows && m.a.Cols != n {
			return &DimensionError{Reason: m.name + " accumulation buffer must have n columns"}
		}
	}
	k := tab[T]()
	if k.Bdsqr == nil {
		noKernel("bdsqr", k.Backend)
	}
	vt = orDummy(vt)
	u = orDummy(u)
	c = orDummy(c)
	rwork := scratch[float64](4 * n)
	info := k.Bdsqr(byte(uplo), n, vt.Cols, u.Rows, c.Cols, d, e, vt.Data, vt.Stride, u.Data, u.Stride, c.Data, c.Stride, rwork)
	return checkInfoConverge("bdsqr", info)
}

// Bdsdc computes the singular value decomposition of a real bidiagonal
// matrix by divide and conquer. With jobz == EVCompute the left and right
// singular vectors are returned in freshly allocated n×n buffers. On
// return d holds the singular values in descending order. The
// divide-and-conquer bidiagonal kernel exists for the real pair only.
func Bdsdc[T Float](jobz EVJob, uplo Uplo, d, e []float64) (General[T], General[T], error) {
	if err := checkFlag("jobz", byte(jobz), "NV"); err != nil {
		return General[T]{}, General[T]{}, err
	}
	if err := checkFlag("uplo", byte(uplo), "UL"); err != nil {
		return General[T]{}, General[T]{}, err
	}
	n := len(d)
	if err := checkVector("e", e, max(0, n-1)); err != nil {
		return General[T]{}, General[T]{}, err
	}
	k := tab[T]()
	if k.Bdsdc == nil {
		noKernel("bdsdc", k.Backend)
	}
	compq := byte('N')
	dummy := General[T]{Stride: 1, Data: make([]T, 1)}
	u, vt := dummy, dummy
	lwork := 4 * n
	if jobz == EVCompute {
		compq = 'I'
		u = NewGeneral[T](n, n)
		vt = NewGeneral[T](n, n)
		lwork = 3*n*n + 4*n
	}
	work := scratch[float64](lwork)
	iwork := scratch[int](8 * n)
	info := k.Bdsdc(byte(uplo), compq, n, d, e, u.Data, u.Stride, vt.Data, vt.Stride, work, iwork)
	if err := checkInfoConverge("bdsdc", info); err != nil {
		return General[T]{}, General[T]{}, err
	}
	return u, vt, nil
}

// orDummy substitutes a 1-element placeholder for an empty accumulation
// buffer so kernels always receive a valid pointer and leading dimension.
func orDummy[T Scalar](a General[T]) General[T] {
	if len(a.Data) == 0 {
		return General[T]{Stride: 1, Data: make([]T, 1)}
	}
	return a
}
