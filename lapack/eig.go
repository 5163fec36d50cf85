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

// Symmetric, Hermitian and general eigenproblems. For complex element
// types the symmetric entry points bind the Hermitian (he*) kernels, which
// additionally require a real scratch array; the binding allocates it
// transparently.

// Syev computes all eigenvalues and, when jobz == EVCompute, the
// eigenvectors of a symmetric (Hermitian) matrix. Only the uplo triangle
// of a is referenced. Eigenvalues are returned in ascending order; with
// jobz == EVCompute the buffer is overwritten with the orthonormal
// eigenvectors, one per column, otherwise its uplo triangle is destroyed.
func Syev[T Scalar](jobz EVJob, uplo Uplo, a General[T]) ([]float64, error) {
	if err := checkFlag("jobz", byte(jobz), "NV"); err != nil {
		return nil, err
	}
	if err := checkFlag("uplo", byte(uplo), "UL"); err != nil {
		return nil, err
	}
	if err := checkSquare("a", a); err != nil {
		return nil, err
	}
	k := tab[T]()
	if k.Syev == nil {
		noKernel("syev", k.Backend)
	}
	n := a.Rows
	w := make([]float64, n)
	var rwork []float64
	if TypeOf[T]().Complex {
		rwork = scratch[float64](3*n - 2)
	}
	info := queryWork(func(work []T, lwork int) int {
		return k.Syev(byte(jobz), byte(uplo), n, a.Data, a.Stride, w, work, lwork, rwork)
	})
	if err := checkInfoConverge("syev", info); err != nil {
		return nil, err
	}
	return w, nil
}

// Syevr computes selected eigenvalues, and optionally eigenvectors, of a
// symmetric (Hermitian) matrix using the RRR representation. rng selects
// the spectrum subset: RangeAll, RangeValues for the half-open interval
// (vl, vu], or RangeIndices for positions [il, iu) of the ascending
// spectrum (0-based). Index ranges reaching past the matrix dimension are
// clamped, returning fewer eigenvalues rather than failing. abstol is the
// convergence tolerance; 0 selects the kernel default.
//
// The returned eigenvalues are ascending. With jobz == EVCompute the
// returned matrix holds one eigenvector column per returned eigenvalue,
// in freshly allocated storage; a is destroyed either way.
func Syevr[T Scalar](jobz EVJob, rng EVRange, uplo Uplo, a General[T], vl, vu float64, il, iu int, abstol float64) ([]float64, General[T], error) {
	if err := checkFlag("jobz", byte(jobz), "NV"); err != nil {
		return nil, General[T]{}, err
	}
	if err := checkFlag("range", byte(rng), "AVI"); err != nil {
		return nil, General[T]{}, err
	}
	if err := checkFlag("uplo", byte(uplo), "UL"); err != nil {
		return nil, General[T]{}, err
	}
	if err := checkSquare("a", a); err != nil {
		return nil, General[T]{}, err
	}
	n := a.Rows
	mmax := n
	switch rng {
	case RangeValues:
		if vu < vl {
			return nil, General[T]{}, &DimensionError{Reason: "syevr value range has vu < vl"}
		}
	case RangeIndices:
		il = max(il, 0)
		iu = min(iu, n)
		if iu <= il {
			// Empty selection, nothing for the kernel to do.
			return nil, General[T]{}, nil
		}
		mmax = iu - il
	}
	k := tab[T]()
	if k.Syevr == nil {
		noKernel("syevr", k.Backend)
	}
	w := make([]float64, n)
	z := General[T]{Rows: 0, Cols: 0, Stride: 1, Data: make([]T, 1)}
	if jobz == EVCompute {
		z = NewGeneral[T](n, mmax)
	}
	isuppz := make([]int, 2*max(1, mmax))

	// Three-way workspace query: element, real and integer scratch sizes
	// all depend on internal blocking.
	var m int
	probeW := scratch[T](1)
	probeR := scratch[float64](1)
	probeI := scratch[int](1)
	info := k.Syevr(byte(jobz), byte(rng), byte(uplo), n, a.Data, a.Stride, vl, vu, il, iu, abstol,
		&m, w, z.Data, z.Stride, isuppz, probeW, -1, probeR, -1, probeI, -1)
	if err := checkInfoConverge("syevr", info); err != nil {
		return nil, General[T]{}, err
	}
	work := scratch[T](workInt(probeW[0]))
	rwork := scratch[float64](int(probeR[0]))
	iwork := scratch[int](probeI[0])
	info = k.Syevr(byte(jobz), byte(rng), byte(uplo), n, a.Data, a.Stride, vl, vu, il, iu, abstol,
		&m, w, z.Data, z.Stride, isuppz, work, len(work), rwork, len(rwork), iwork, len(iwork))
	if err := checkInfoConverge("syevr", info); err != nil {
		return nil, General[T]{}, err
	}
	if jobz == EVCompute {
		z.Cols = m
	}
	return w[:m], z, nil
}

// Stev computes all eigenvalues, and optionally eigenvectors, of a real
// symmetric tridiagonal matrix with diagonal d and off-diagonal e. The
// workspace is closed-form, so no query call is made. On return d holds
// the eigenvalues in ascending order and e is destroyed; with jobz ==
// EVCompute the returned matrix holds the eigenvectors. This family is
// real-only at this layer.
func Stev[T Float](jobz EVJob, d, e []T) (General[T], error) {
	if err := checkFlag("jobz", byte(jobz), "NV"); err != nil {
		return General[T]{}, err
	}
	n := len(d)
	if err := checkVector("e", e, max(0, n-1)); err != nil {
		return General[T]{}, err
	}
	k := tab[T]()
	if k.Stev == nil {
		noKernel("stev", k.Backend)
	}
	z := General[T]{Rows: 0, Cols: 0, Stride: 1, Data: make([]T, 1)}
	if jobz == EVCompute {
		z = NewGeneral[T](n, n)
	}
	work := scratch[T](2*n - 2)
	info := k.Stev(byte(jobz), n, d, e, z.Data, z.Stride, work)
	if err := checkInfoConverge("stev", info); err != nil {
		return General[T]{}, err
	}
	return z, nil
}

// Eigen holds a general (nonsymmetric) eigendecomposition computed by
// Geev. Values always carries the spectrum as complex numbers; IsReal
// reports whether every imaginary part is exactly zero, the per-call
// merge decision for real element types whose kernels return parallel
// real and imaginary vectors. VL and VR hold the left and right
// eigenvectors when requested; for real element types a conjugate pair's
// vectors are packed into two consecutive real columns following the
// kernel convention.
type Eigen[T Scalar] struct {
	Values []complex128
	IsReal bool
	VL, VR General[T]
}

// Geev computes the eigenvalues and, per jobvl/jobvr, the left and/or
// right eigenvectors of a general square matrix. a is destroyed.
func Geev[T Scalar](jobvl, jobvr EVJob, a General[T]) (Eigen[T], error) {
	if err := checkFlag("jobvl", byte(jobvl), "NV"); err != nil {
		return Eigen[T]{}, err
	}
	if err := checkFlag("jobvr", byte(jobvr), "NV"); err != nil {
		return Eigen[T]{}, err
	}
	if err := checkSquare("a", a); err != nil {
		return Eigen[T]{}, err
	}
	k := tab[T]()
	if k.Geev == nil {
		noKernel("geev", k.Backend)
	}
	n := a.Rows
	ti := TypeOf[T]()
	dummy := General[T]{Stride: 1, Data: make([]T, 1)}
	vl, vr := dummy, dummy
	if jobvl == EVCompute {
		vl = NewGeneral[T](n, n)
	}
	if jobvr == EVCompute {
		vr = NewGeneral[T](n, n)
	}
	var wr, wi []float64
	var w []T
	var rwork []float64
	if ti.Complex {
		w = make([]T, n)
		rwork = scratch[float64](2 * n)
	} else {
		wr = make([]float64, n)
		wi = make([]float64, n)
	}
	info := queryWork(func(work []T, lwork int) int {
		return k.Geev(byte(jobvl), byte(jobvr), n, a.Data, a.Stride, wr, wi, w, vl.Data, vl.Stride, vr.Data, vr.Stride, work, lwork, rwork)
	})
	if err := checkInfoConverge("geev", info); err != nil {
		return Eigen[T]{}, err
	}
	out := Eigen[T]{VL: vl, VR: vr}
	out.Values, out.IsReal = mergeValues(wr, wi, w)
	return out, nil
}

// mergeValues builds the complex spectrum from whichever representation
// the kernel produced: parallel wr/wi vectors for real element types, a
// complex vector for complex ones. IsReal is decided per call from the
// imaginary parts, never assumed.
func mergeValues[T Scalar](wr, wi []float64, w []T) ([]complex128, bool) {
	if w == nil {
		values := make([]complex128, len(wr))
		isReal := true
		for i := range wr {
			values[i] = complex(wr[i], wi[i])
			if wi[i] != 0 {
				isReal = false
			}
		}
		return values, isReal
	}
	values := make([]complex128, len(w))
	isReal := true
	for i, v := range w {
		switch x := any(v).(type) {
		case complex64:
			values[i] = complex128(x)
		case complex128:
			values[i] = x
		}
		if imag(values[i]) != 0 {
			isReal = false
		}
	}
	return values, isReal
}
