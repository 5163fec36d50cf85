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

// Operation flags are single-character enumerants matching the native
// kernel encoding; they cross the FFI boundary verbatim. Invalid values
// are rejected by the validation layer before any kernel call.

// Uplo selects which triangle of a matrix is referenced.
type Uplo byte

const (
	Upper Uplo = 'U'
	Lower Uplo = 'L'
)

// Transpose selects the operation applied to a matrix operand.
type Transpose byte

const (
	NoTrans   Transpose = 'N'
	Trans     Transpose = 'T'
	ConjTrans Transpose = 'C'
)

// Diag states whether a triangular matrix has a unit diagonal.
type Diag byte

const (
	NonUnit Diag = 'N'
	Unit    Diag = 'U'
)

// Side selects which side a matrix factor is applied from.
type Side byte

const (
	Left  Side = 'L'
	Right Side = 'R'
)

// Norm selects the matrix norm computed or estimated.
type Norm byte

const (
	MaxAbs    Norm = 'M'
	OneNorm   Norm = '1'
	InfNorm   Norm = 'I'
	Frobenius Norm = 'F'
)

// EVJob states whether eigenvectors (or Schur vectors) are computed in
// addition to eigenvalues.
type EVJob byte

const (
	EVNone    EVJob = 'N'
	EVCompute EVJob = 'V'
)

// SVDJob selects which singular vectors a decomposition produces and
// where they are stored.
type SVDJob byte

const (
	// SVDAll computes all m (resp. n) vectors into a fresh square buffer.
	SVDAll SVDJob = 'A'
	// SVDStore computes the first min(m, n) vectors into a fresh
	// economy-sized buffer.
	SVDStore SVDJob = 'S'
	// SVDOverwrite computes the first min(m, n) vectors over the input
	// buffer instead of allocating new storage.
	SVDOverwrite SVDJob = 'O'
	// SVDNone computes no vectors on that side.
	SVDNone SVDJob = 'N'
)

// EVRange selects which eigenvalues a range-capable eigensolver returns.
type EVRange byte

const (
	RangeAll EVRange = 'A'
	// RangeValues returns eigenvalues in the half-open interval (vl, vu].
	RangeValues EVRange = 'V'
	// RangeIndices returns eigenvalues il through iu of the ascending
	// spectrum, 0-based half-open.
	RangeIndices EVRange = 'I'
)
