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

// QR holds a QR factorization computed by Geqrf. A aliases the input
// buffer: R occupies the upper triangle, the elementary reflectors that
// define Q are stored below the diagonal with their scales in Tau.
type QR[T Scalar] struct {
	A   General[T]
	Tau []T
}

// Geqrf computes the QR factorization of an m×n matrix in place.
func Geqrf[T Scalar](a General[T]) (QR[T], error) {
	if err := checkGeneral("a", a); err != nil {
		return QR[T]{}, err
	}
	k := tab[T]()
	if k.Geqrf == nil {
		noKernel("geqrf", k.Backend)
	}
	tau := make([]T, min(a.Rows, a.Cols))
	info := queryWork(func(work []T, lwork int) int {
		return k.Geqrf(a.Rows, a.Cols, a.Data, a.Stride, tau, work, lwork)
	})
	if err := checkInfo("geqrf", info); err != nil {
		return QR[T]{}, err
	}
	return QR[T]{A: a, Tau: tau}, nil
}

// Orgqr overwrites the factored buffer with the explicit orthogonal (for
// complex types, unitary) factor Q. The buffer shape selects the economy:
// an m×n buffer with n ≤ m yields the first n columns of Q. For complex
// element types this binds the ungqr kernel.
func Orgqr[T Scalar](qr QR[T]) error {
	if err := checkGeneral("a", qr.A); err != nil {
		return err
	}
	if qr.A.Cols > qr.A.Rows {
		return &DimensionError{Reason: "orgqr needs cols <= rows to form Q columns"}
	}
	if len(qr.Tau) > qr.A.Cols {
		return &DimensionError{Reason: "more reflectors than requested Q columns"}
	}
	k := tab[T]()
	if k.Orgqr == nil {
		noKernel("orgqr", k.Backend)
	}
	info := queryWork(func(work []T, lwork int) int {
		return k.Orgqr(qr.A.Rows, qr.A.Cols, len(qr.Tau), qr.A.Data, qr.A.Stride, qr.Tau, work, lwork)
	})
	return checkInfo("orgqr", info)
}

// Ormqr overwrites c with Q*C, Qᵀ*C, C*Q or C*Qᵀ (Qᴴ for complex types),
// where Q is represented by the reflectors in qr. side selects which side
// Q is applied from, trans whether it is transposed. For complex element
// types this binds the unmqr kernel and trans must be NoTrans or
// ConjTrans.
func Ormqr[T Scalar](side Side, trans Transpose, qr QR[T], c General[T]) error {
	if err := checkFlag("side", byte(side), "LR"); err != nil {
		return err
	}
	if err := checkFlag("trans", byte(trans), transSet[T]()); err != nil {
		return err
	}
	if err := checkGeneral("a", qr.A); err != nil {
		return err
	}
	if err := checkGeneral("c", c); err != nil {
		return err
	}
	applied := c.Rows
	if side == Right {
		applied = c.Cols
	}
	if qr.A.Rows != applied {
		return &DimensionError{Reason: "reflector length does not match the side of c it is applied to"}
	}
	k := tab[T]()
	if k.Ormqr == nil {
		noKernel("ormqr", k.Backend)
	}
	info := queryWork(func(work []T, lwork int) int {
		return k.Ormqr(byte(side), byte(trans), c.Rows, c.Cols, len(qr.Tau), qr.A.Data, qr.A.Stride, qr.Tau, c.Data, c.Stride, work, lwork)
	})
	return checkInfo("ormqr", info)
}

// LQ holds an LQ factorization computed by Gelqf. A aliases the input
// buffer: L occupies the lower triangle, the reflectors defining Q sit to
// the right of the diagonal with scales in Tau.
type LQ[T Scalar] struct {
	A   General[T]
	Tau []T
}

// Gelqf computes the LQ factorization of an m×n matrix in place.
func Gelqf[T Scalar](a General[T]) (LQ[T], error) {
	if err := checkGeneral("a", a); err != nil {
		return LQ[T]{}, err
	}
	k := tab[T]()
	if k.Gelqf == nil {
		noKernel("gelqf", k.Backend)
	}
	tau := make([]T, min(a.Rows, a.Cols))
	info := queryWork(func(work []T, lwork int) int {
		return k.Gelqf(a.Rows, a.Cols, a.Data, a.Stride, tau, work, lwork)
	})
	if err := checkInfo("gelqf", info); err != nil {
		return LQ[T]{}, err
	}
	return LQ[T]{A: a, Tau: tau}, nil
}

// Orglq overwrites the factored buffer with the explicit rows of Q from an
// LQ factorization; an m×n buffer with m ≤ n yields the first m rows. For
// complex element types this binds the unglq kernel.
func Orglq[T Scalar](lq LQ[T]) error {
	if err := checkGeneral("a", lq.A); err != nil {
		return err
	}
	if lq.A.Rows > lq.A.Cols {
		return &DimensionError{Reason: "orglq needs rows <= cols to form Q rows"}
	}
	if len(lq.Tau) > lq.A.Rows {
		return &DimensionError{Reason: "more reflectors than requested Q rows"}
	}
	k := tab[T]()
	if k.Orglq == nil {
		noKernel("orglq", k.Backend)
	}
	info := queryWork(func(work []T, lwork int) int {
		return k.Orglq(lq.A.Rows, lq.A.Cols, len(lq.Tau), lq.A.Data, lq.A.Stride, lq.Tau, work, lwork)
	})
	return checkInfo("orglq", info)
}

// Ormlq applies the Q factor of an LQ factorization to c, analogous to
// Ormqr. For complex element types this binds the unmlq kernel.
func Ormlq[T Scalar](side Side, trans Transpose, lq LQ[T], c General[T]) error {
	if err := checkFlag("side", byte(side), "LR"); err != nil {
		return err
	}
	if err := checkFlag("trans", byte(trans), transSet[T]()); err != nil {
		return err
	}
	if err := checkGeneral("a", lq.A); err != nil {
		return err
	}
	if err := checkGeneral("c", c); err != nil {
		return err
	}
	applied := c.Rows
	if side == Right {
		applied = c.Cols
	}
	if lq.A.Cols != applied {
		return &DimensionError{Reason: "reflector length does not match the side of c it is applied to"}
	}
	k := tab[T]()
	if k.Ormlq == nil {
		noKernel("ormlq", k.Backend)
	}
	info := queryWork(func(work []T, lwork int) int {
		return k.Ormlq(byte(side), byte(trans), c.Rows, c.Cols, len(lq.Tau), lq.A.Data, lq.A.Stride, lq.Tau, c.Data, c.Stride, work, lwork)
	})
	return checkInfo("ormlq", info)
}

// Gels solves the overdetermined or underdetermined system A*X = B in the
// least-squares sense, assuming A has full rank. a is m×n and is
// overwritten with its QR (m ≥ n) or LQ (m < n) factorization. b must have
// max(m, n) rows; on entry its leading rows hold B, on return the leading
// rows hold the solution. A rank-deficient A yields a RankDeficientError.
func Gels[T Scalar](trans Transpose, a, b General[T]) error {
	if err := checkFlag("trans", byte(trans), transSet[T]()); err != nil {
		return err
	}
	if err := checkGeneral("a", a); err != nil {
		return err
	}
	if err := checkGeneral("b", b); err != nil {
		return err
	}
	if b.Rows != max(a.Rows, a.Cols) {
		return &DimensionError{Reason: "gels right-hand side must have max(rows, cols) rows"}
	}
	k := tab[T]()
	if k.Gels == nil {
		noKernel("gels", k.Backend)
	}
	info := queryWork(func(work []T, lwork int) int {
		return k.Gels(byte(trans), a.Rows, a.Cols, b.Cols, a.Data, a.Stride, b.Data, b.Stride, work, lwork)
	})
	switch {
	case info < 0:
		return &ArgumentError{Routine: "gels", Index: -info}
	case info > 0:
		// The i-th diagonal element of the triangular factor is zero, so
		// A does not have full rank.
		return &RankDeficientError{Routine: "gels", Rank: info - 1}
	}
	return nil
}
