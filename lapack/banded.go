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

import "fmt"

// General banded systems use LAPACK band storage: an n×n matrix with kl
// sub- and ku super-diagonals is packed column by column into a
// (2*kl+ku+1)×n buffer with the diagonal in row kl+ku, so A(i, j) lands
// in ab.At(kl+ku+i-j, j). The top kl rows are workspace for the fill-in
// introduced by row interchanges; callers need not initialize them.
// Scratch sizes are closed-form for this family, so none of these
// bindings use the workspace query protocol.

// NewBand allocates a zeroed band-storage buffer for an n×n matrix with
// the given bandwidths.
func NewBand[T Scalar](n, kl, ku int) General[T] {
	return NewGeneral[T](2*kl+ku+1, n)
}

func checkBand[T Scalar](kl, ku int, ab General[T]) error {
	if kl < 0 || ku < 0 {
		return &DimensionError{Reason: fmt.Sprintf("negative bandwidths kl=%d ku=%d", kl, ku)}
	}
	if err := checkGeneral("ab", ab); err != nil {
		return err
	}
	if ab.Rows != 2*kl+ku+1 {
		return &DimensionError{Reason: fmt.Sprintf("band storage has %d rows, want 2*kl+ku+1 = %d", ab.Rows, 2*kl+ku+1)}
	}
	return nil
}

// BandLU holds the pivoted LU factorization of a banded matrix computed
// by Gbtrf. AB aliases the input buffer: the multipliers sit below the
// diagonal and U, widened to at most kl+ku superdiagonals by pivoting,
// on and above it. Ipiv is 0-based. Like dense LU, an exactly zero pivot
// is not an error at factorization time: ZeroPivot records its index (or
// -1), and the failure surfaces when a solve divides by it.
type BandLU[T Scalar] struct {
	KL, KU    int
	AB        General[T]
	Ipiv      []int
	ZeroPivot int
}

// Gbtrf computes the LU factorization with partial pivoting of a general
// banded matrix in band storage, overwriting ab with the factors.
func Gbtrf[T Scalar](kl, ku int, ab General[T]) (BandLU[T], error) {
	if err := checkBand(kl, ku, ab); err != nil {
		return BandLU[T]{}, err
	}
	k := tab[T]()
	if k.Gbtrf == nil {
		noKernel("gbtrf", k.Backend)
	}
	n := ab.Cols
	ipiv := make([]int, n)
	info := k.Gbtrf(n, n, kl, ku, ab.Data, ab.Stride, ipiv)
	if info < 0 {
		return BandLU[T]{}, &ArgumentError{Routine: "gbtrf", Index: -info}
	}
	bf := BandLU[T]{KL: kl, KU: ku, AB: ab, Ipiv: ipiv, ZeroPivot: -1}
	if info > 0 {
		bf.ZeroPivot = info - 1
	}
	return bf, nil
}

// Gbtrs solves op(A)*X = B using the factorization computed by Gbtrf,
// overwriting b with the solution.
func Gbtrs[T Scalar](trans Transpose, bf BandLU[T], b General[T]) error {
	if err := checkFlag("trans", byte(trans), "NTC"); err != nil {
		return err
	}
	if err := checkBand(bf.KL, bf.KU, bf.AB); err != nil {
		return err
	}
	n := bf.AB.Cols
	if err := checkVector("ipiv", bf.Ipiv, n); err != nil {
		return err
	}
	if err := checkSolveDims(n, b); err != nil {
		return err
	}
	k := tab[T]()
	if k.Gbtrs == nil {
		noKernel("gbtrs", k.Backend)
	}
	info := k.Gbtrs(byte(trans), n, bf.KL, bf.KU, b.Cols, bf.AB.Data, bf.AB.Stride, bf.Ipiv, b.Data, b.Stride)
	return checkInfo("gbtrs", info)
}

// Gbsv solves A*X = B for a general banded A with partial pivoting,
// overwriting ab with the factors and b with the solution. An exactly
// zero pivot yields a SingularError with its index; the solution is not
// computed.
func Gbsv[T Scalar](kl, ku int, ab General[T], b General[T]) error {
	if err := checkBand(kl, ku, ab); err != nil {
		return err
	}
	n := ab.Cols
	if err := checkSolveDims(n, b); err != nil {
		return err
	}
	k := tab[T]()
	if k.Gbsv == nil {
		noKernel("gbsv", k.Backend)
	}
	ipiv := make([]int, n)
	info := k.Gbsv(n, kl, ku, b.Cols, ab.Data, ab.Stride, ipiv, b.Data, b.Stride)
	return checkInfoSingular("gbsv", info)
}
