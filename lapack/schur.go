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

// Hessenberg reduction and Schur forms.

// Hessenberg holds the reduction A = Q*H*Qᴴ computed by Gehrd. A aliases
// the input buffer: the upper Hessenberg matrix H on and above the first
// subdiagonal, the elementary reflectors defining Q below it, with scales
// in Tau. Ilo and Ihi delimit the 0-based inclusive index range the
// reduction worked on.
type Hessenberg[T Scalar] struct {
	A        General[T]
	Tau      []T
	Ilo, Ihi int
}

// Gehrd reduces a square matrix to upper Hessenberg form in place. ilo and
// ihi restrict the reduction to the 0-based inclusive index sub-range
// [ilo, ihi], as produced by a balancing step; pass ilo = 0, ihi = -1 for
// the whole matrix.
func Gehrd[T Scalar](ilo, ihi int, a General[T]) (Hessenberg[T], error) {
	if err := checkSquare("a", a); err != nil {
		return Hessenberg[T]{}, err
	}
	n := a.Rows
	if ihi == -1 {
		ihi = n - 1
	}
	if n > 0 && (ilo < 0 || ihi >= n || ilo > ihi) {
		return Hessenberg[T]{}, &DimensionError{Reason: "hessenberg sub-range out of bounds"}
	}
	k := tab[T]()
	if k.Gehrd == nil {
		noKernel("gehrd", k.Backend)
	}
	tau := make([]T, max(0, n-1))
	info := queryWork(func(work []T, lwork int) int {
		return k.Gehrd(n, ilo, ihi, a.Data, a.Stride, tau, work, lwork)
	})
	if err := checkInfo("gehrd", info); err != nil {
		return Hessenberg[T]{}, err
	}
	return Hessenberg[T]{A: a, Tau: tau, Ilo: ilo, Ihi: ihi}, nil
}

// Orghr overwrites the factored buffer with the explicit orthogonal
// (unitary) matrix Q of the Hessenberg reduction, destroying the stored
// reflectors. For complex element types this binds the unghr kernel.
func Orghr[T Scalar](h Hessenberg[T]) error {
	if err := checkSquare("a", h.A); err != nil {
		return err
	}
	n := h.A.Rows
	if err := checkVector("tau", h.Tau, max(0, n-1)); err != nil {
		return err
	}
	k := tab[T]()
	if k.Orghr == nil {
		noKernel("orghr", k.Backend)
	}
	info := queryWork(func(work []T, lwork int) int {
		return k.Orghr(n, h.Ilo, h.Ihi, h.A.Data, h.A.Stride, h.Tau, work, lwork)
	})
	return checkInfo("orghr", info)
}

// Schur holds the Schur decomposition A = Z*T*Zᴴ computed by Gees. T
// aliases the input buffer and holds the Schur form: upper triangular for
// complex element types, upper quasi-triangular with 2×2 blocks for
// conjugate pairs for real ones. Z holds the Schur vectors when requested.
// Values carries the eigenvalues as complex numbers, conjugate pairs
// merged; IsReal reports whether every imaginary part is exactly zero.
type Schur[T Scalar] struct {
	T      General[T]
	Z      General[T]
	Values []complex128
	IsReal bool
}

// Gees computes the Schur decomposition of a square matrix, overwriting a
// with the Schur form. With jobvs == EVCompute the Schur vectors are
// returned in freshly allocated storage. If the QR iteration fails to
// converge the error carries the index the kernel reported.
func Gees[T Scalar](jobvs EVJob, a General[T]) (Schur[T], error) {
	if err := checkFlag("jobvs", byte(jobvs), "NV"); err != nil {
		return Schur[T]{}, err
	}
	if err := checkSquare("a", a); err != nil {
		return Schur[T]{}, err
	}
	k := tab[T]()
	if k.Gees == nil {
		noKernel("gees", k.Backend)
	}
	n := a.Rows
	ti := TypeOf[T]()
	vs := General[T]{Stride: 1, Data: make([]T, 1)}
	if jobvs == EVCompute {
		vs = NewGeneral[T](n, n)
	}
	var wr, wi []float64
	var w []T
	var rwork []float64
	if ti.Complex {
		w = make([]T, n)
		rwork = scratch[float64](n)
	} else {
		wr = make([]float64, n)
		wi = make([]float64, n)
	}
	info := queryWork(func(work []T, lwork int) int {
		return k.Gees(byte(jobvs), n, a.Data, a.Stride, wr, wi, w, vs.Data, vs.Stride, work, lwork, rwork)
	})
	if err := checkInfoConverge("gees", info); err != nil {
		return Schur[T]{}, err
	}
	out := Schur[T]{T: a, Z: vs}
	out.Values, out.IsReal = mergeValues(wr, wi, w)
	return out, nil
}
