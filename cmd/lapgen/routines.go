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

package main

// kind classifies one parameter of a kernel.Table field for marshalling.
type kind int

const (
	// kFlag is a single-byte LAPACK character, passed by reference.
	kFlag kind = iota
	// kDim is a Go int dimension, lowered to an int32 local. Shift is
	// added first, which covers the 0-based to 1-based index arguments.
	kDim
	// kElem is an element-typed slice ([]T), passed as its base pointer.
	kElem
	// kReal is a float64 auxiliary slice. The double-precision types pass
	// it straight through; the single-precision types round-trip it
	// through a float32 scratch copy, writing back when out is set.
	kReal
	// kIntScratch is an []int workspace lowered to an int32 scratch
	// array of the same length. Contents are not copied back.
	kIntScratch
	// kPivIn is a 0-based pivot vector converted to 1-based int32 input.
	kPivIn
	// kPivOut is an int32 output vector converted back to 0-based.
	kPivOut
	// kRScalar is a float64 scalar, narrowed for the 32-bit types.
	kRScalar
	// kROut is a *float64 output scalar.
	kROut
	// kIOut is a *int output scalar lowered to an int32 local.
	kIOut
)

// arg is one Go-side parameter of a kernel.Table field.
type arg struct {
	name  string
	kind  kind
	shift int  // kDim: value added before lowering
	out   bool // kReal: copy scratch back after the call
}

// Pseudo calling-sequence entries with no Go-side parameter. The emitter
// materializes a local for each.
const (
	argSortN = "@sortN" // sort = 'N' flag (gees; no eigenvalue ordering)
	argNull  = "@null"  // NULL select callback (gees)
	argSdim  = "@sdim"  // discarded sdim output (gees; sorting disabled)
	argBwork = "@bwork" // unreferenced logical workspace (gees)
	argDumE  = "@dumE"  // 1-element element-typed placeholder (bdsdc q)
	argDumI  = "@dumI"  // 1-element integer placeholder (bdsdc iq)
)

// routine describes one kernel.Table field and its Fortran binding.
type routine struct {
	// base is the Fortran routine stem; the element-type prefix letter is
	// prepended per expansion. cplxBase overrides it for the complex pair
	// (the or*/un* renames).
	base     string
	cplxBase string

	// field is the kernel.Table field name; derived from base via
	// fieldName when empty.
	field string

	// params is the Go parameter list in seam order. Parameters absent
	// from the active calling sequence are received but ignored.
	params []arg

	// realCall and cplxCall are the Fortran calling sequences by
	// parameter name, excluding the trailing info argument. A nil
	// cplxCall with realOnly unset means both sequences are identical.
	realCall []string
	cplxCall []string

	// realOnly leaves the field nil in the complex tables.
	realOnly bool

	// retNorm marks the one non-subroutine (lange): a typed floating
	// return and no info argument.
	retNorm bool

	// realPost and cplxPost are verbatim statements inserted between the
	// call and the return, after the standard write-backs.
	realPost string
	cplxPost string
}

// syevrQueryPost answers the workspace query for the real drivers, which
// have no rwork: the shared protocol still probes it.
const syevrQueryPost = `if lrwork == -1 && len(rwork) > 0 {
	rwork[0] = 1
}
if liwork == -1 && len(iwork) > 0 {
	iwork[0] = int(iwork_[0])
}`

const heevrQueryPost = `if liwork == -1 && len(iwork) > 0 {
	iwork[0] = int(iwork_[0])
}`

var catalog = []routine{
	// General dense (LU).
	{
		base: "getrf",
		params: []arg{
			{name: "m", kind: kDim}, {name: "n", kind: kDim},
			{name: "a", kind: kElem}, {name: "lda", kind: kDim},
			{name: "ipiv", kind: kPivOut},
		},
		realCall: []string{"m", "n", "a", "lda", "ipiv"},
	},
	{
		base: "getrs",
		params: []arg{
			{name: "trans", kind: kFlag}, {name: "n", kind: kDim}, {name: "nrhs", kind: kDim},
			{name: "a", kind: kElem}, {name: "lda", kind: kDim},
			{name: "ipiv", kind: kPivIn},
			{name: "b", kind: kElem}, {name: "ldb", kind: kDim},
		},
		realCall: []string{"trans", "n", "nrhs", "a", "lda", "ipiv", "b", "ldb"},
	},
	{
		base: "getri",
		params: []arg{
			{name: "n", kind: kDim}, {name: "a", kind: kElem}, {name: "lda", kind: kDim},
			{name: "ipiv", kind: kPivIn},
			{name: "work", kind: kElem}, {name: "lwork", kind: kDim},
		},
		realCall: []string{"n", "a", "lda", "ipiv", "work", "lwork"},
	},
	{
		base: "gecon",
		params: []arg{
			{name: "norm", kind: kFlag}, {name: "n", kind: kDim},
			{name: "a", kind: kElem}, {name: "lda", kind: kDim},
			{name: "anorm", kind: kRScalar}, {name: "rcond", kind: kROut},
			{name: "work", kind: kElem}, {name: "rwork", kind: kReal},
			{name: "iwork", kind: kIntScratch},
		},
		realCall: []string{"norm", "n", "a", "lda", "anorm", "rcond", "work", "iwork"},
		cplxCall: []string{"norm", "n", "a", "lda", "anorm", "rcond", "work", "rwork"},
	},

	// General banded (LU).
	{
		base: "gbtrf",
		params: []arg{
			{name: "m", kind: kDim}, {name: "n", kind: kDim},
			{name: "kl", kind: kDim}, {name: "ku", kind: kDim},
			{name: "ab", kind: kElem}, {name: "ldab", kind: kDim},
			{name: "ipiv", kind: kPivOut},
		},
		realCall: []string{"m", "n", "kl", "ku", "ab", "ldab", "ipiv"},
	},
	{
		base: "gbtrs",
		params: []arg{
			{name: "trans", kind: kFlag}, {name: "n", kind: kDim},
			{name: "kl", kind: kDim}, {name: "ku", kind: kDim}, {name: "nrhs", kind: kDim},
			{name: "ab", kind: kElem}, {name: "ldab", kind: kDim},
			{name: "ipiv", kind: kPivIn},
			{name: "b", kind: kElem}, {name: "ldb", kind: kDim},
		},
		realCall: []string{"trans", "n", "kl", "ku", "nrhs", "ab", "ldab", "ipiv", "b", "ldb"},
	},
	{
		base: "gbsv",
		params: []arg{
			{name: "n", kind: kDim},
			{name: "kl", kind: kDim}, {name: "ku", kind: kDim}, {name: "nrhs", kind: kDim},
			{name: "ab", kind: kElem}, {name: "ldab", kind: kDim},
			{name: "ipiv", kind: kPivOut},
			{name: "b", kind: kElem}, {name: "ldb", kind: kDim},
		},
		realCall: []string{"n", "kl", "ku", "nrhs", "ab", "ldab", "ipiv", "b", "ldb"},
	},

	// Orthogonal/unitary factorizations.
	{
		base: "geqrf",
		params: []arg{
			{name: "m", kind: kDim}, {name: "n", kind: kDim},
			{name: "a", kind: kElem}, {name: "lda", kind: kDim},
			{name: "tau", kind: kElem}, {name: "work", kind: kElem}, {name: "lwork", kind: kDim},
		},
		realCall: []string{"m", "n", "a", "lda", "tau", "work", "lwork"},
	},
	{
		base: "orgqr", cplxBase: "ungqr", field: "Orgqr",
		params: []arg{
			{name: "m", kind: kDim}, {name: "n", kind: kDim}, {name: "k", kind: kDim},
			{name: "a", kind: kElem}, {name: "lda", kind: kDim},
			{name: "tau", kind: kElem}, {name: "work", kind: kElem}, {name: "lwork", kind: kDim},
		},
		realCall: []string{"m", "n", "k", "a", "lda", "tau", "work", "lwork"},
	},
	{
		base: "ormqr", cplxBase: "unmqr", field: "Ormqr",
		params: []arg{
			{name: "side", kind: kFlag}, {name: "trans", kind: kFlag},
			{name: "m", kind: kDim}, {name: "n", kind: kDim}, {name: "k", kind: kDim},
			{name: "a", kind: kElem}, {name: "lda", kind: kDim}, {name: "tau", kind: kElem},
			{name: "c", kind: kElem}, {name: "ldc", kind: kDim},
			{name: "work", kind: kElem}, {name: "lwork", kind: kDim},
		},
		realCall: []string{"side", "trans", "m", "n", "k", "a", "lda", "tau", "c", "ldc", "work", "lwork"},
	},
	{
		base: "gelqf",
		params: []arg{
			{name: "m", kind: kDim}, {name: "n", kind: kDim},
			{name: "a", kind: kElem}, {name: "lda", kind: kDim},
			{name: "tau", kind: kElem}, {name: "work", kind: kElem}, {name: "lwork", kind: kDim},
		},
		realCall: []string{"m", "n", "a", "lda", "tau", "work", "lwork"},
	},
	{
		base: "orglq", cplxBase: "unglq", field: "Orglq",
		params: []arg{
			{name: "m", kind: kDim}, {name: "n", kind: kDim}, {name: "k", kind: kDim},
			{name: "a", kind: kElem}, {name: "lda", kind: kDim},
			{name: "tau", kind: kElem}, {name: "work", kind: kElem}, {name: "lwork", kind: kDim},
		},
		realCall: []string{"m", "n", "k", "a", "lda", "tau", "work", "lwork"},
	},
	{
		base: "ormlq", cplxBase: "unmlq", field: "Ormlq",
		params: []arg{
			{name: "side", kind: kFlag}, {name: "trans", kind: kFlag},
			{name: "m", kind: kDim}, {name: "n", kind: kDim}, {name: "k", kind: kDim},
			{name: "a", kind: kElem}, {name: "lda", kind: kDim}, {name: "tau", kind: kElem},
			{name: "c", kind: kElem}, {name: "ldc", kind: kDim},
			{name: "work", kind: kElem}, {name: "lwork", kind: kDim},
		},
		realCall: []string{"side", "trans", "m", "n", "k", "a", "lda", "tau", "c", "ldc", "work", "lwork"},
	},
	{
		base: "gels",
		params: []arg{
			{name: "trans", kind: kFlag},
			{name: "m", kind: kDim}, {name: "n", kind: kDim}, {name: "nrhs", kind: kDim},
			{name: "a", kind: kElem}, {name: "lda", kind: kDim},
			{name: "b", kind: kElem}, {name: "ldb", kind: kDim},
			{name: "work", kind: kElem}, {name: "lwork", kind: kDim},
		},
		realCall: []string{"trans", "m", "n", "nrhs", "a", "lda", "b", "ldb", "work", "lwork"},
	},

	// Positive definite (Cholesky).
	{
		base: "potrf",
		params: []arg{
			{name: "uplo", kind: kFlag}, {name: "n", kind: kDim},
			{name: "a", kind: kElem}, {name: "lda", kind: kDim},
		},
		realCall: []string{"uplo", "n", "a", "lda"},
	},
	{
		base: "potrs",
		params: []arg{
			{name: "uplo", kind: kFlag}, {name: "n", kind: kDim}, {name: "nrhs", kind: kDim},
			{name: "a", kind: kElem}, {name: "lda", kind: kDim},
			{name: "b", kind: kElem}, {name: "ldb", kind: kDim},
		},
		realCall: []string{"uplo", "n", "nrhs", "a", "lda", "b", "ldb"},
	},
	{
		base: "potri",
		params: []arg{
			{name: "uplo", kind: kFlag}, {name: "n", kind: kDim},
			{name: "a", kind: kElem}, {name: "lda", kind: kDim},
		},
		realCall: []string{"uplo", "n", "a", "lda"},
	},
	{
		base: "pocon",
		params: []arg{
			{name: "uplo", kind: kFlag}, {name: "n", kind: kDim},
			{name: "a", kind: kElem}, {name: "lda", kind: kDim},
			{name: "anorm", kind: kRScalar}, {name: "rcond", kind: kROut},
			{name: "work", kind: kElem}, {name: "rwork", kind: kReal},
			{name: "iwork", kind: kIntScratch},
		},
		realCall: []string{"uplo", "n", "a", "lda", "anorm", "rcond", "work", "iwork"},
		cplxCall: []string{"uplo", "n", "a", "lda", "anorm", "rcond", "work", "rwork"},
	},
	{
		base: "pstrf",
		params: []arg{
			{name: "uplo", kind: kFlag}, {name: "n", kind: kDim},
			{name: "a", kind: kElem}, {name: "lda", kind: kDim},
			{name: "piv", kind: kPivOut}, {name: "rank", kind: kIOut},
			{name: "tol", kind: kRScalar}, {name: "work", kind: kReal},
		},
		realCall: []string{"uplo", "n", "a", "lda", "piv", "rank", "tol", "work"},
	},

	// Triangular.
	{
		base: "trtrs",
		params: []arg{
			{name: "uplo", kind: kFlag}, {name: "trans", kind: kFlag}, {name: "diag", kind: kFlag},
			{name: "n", kind: kDim}, {name: "nrhs", kind: kDim},
			{name: "a", kind: kElem}, {name: "lda", kind: kDim},
			{name: "b", kind: kElem}, {name: "ldb", kind: kDim},
		},
		realCall: []string{"uplo", "trans", "diag", "n", "nrhs", "a", "lda", "b", "ldb"},
	},
	{
		base: "trtri",
		params: []arg{
			{name: "uplo", kind: kFlag}, {name: "diag", kind: kFlag}, {name: "n", kind: kDim},
			{name: "a", kind: kElem}, {name: "lda", kind: kDim},
		},
		realCall: []string{"uplo", "diag", "n", "a", "lda"},
	},
	{
		base: "trcon",
		params: []arg{
			{name: "norm", kind: kFlag}, {name: "uplo", kind: kFlag}, {name: "diag", kind: kFlag},
			{name: "n", kind: kDim}, {name: "a", kind: kElem}, {name: "lda", kind: kDim},
			{name: "rcond", kind: kROut},
			{name: "work", kind: kElem}, {name: "rwork", kind: kReal},
			{name: "iwork", kind: kIntScratch},
		},
		realCall: []string{"norm", "uplo", "diag", "n", "a", "lda", "rcond", "work", "iwork"},
		cplxCall: []string{"norm", "uplo", "diag", "n", "a", "lda", "rcond", "work", "rwork"},
	},

	// Symmetric/Hermitian eigenproblems.
	{
		base: "syev", cplxBase: "heev", field: "Syev",
		params: []arg{
			{name: "jobz", kind: kFlag}, {name: "uplo", kind: kFlag}, {name: "n", kind: kDim},
			{name: "a", kind: kElem}, {name: "lda", kind: kDim},
			{name: "w", kind: kReal, out: true},
			{name: "work", kind: kElem}, {name: "lwork", kind: kDim},
			{name: "rwork", kind: kReal},
		},
		realCall: []string{"jobz", "uplo", "n", "a", "lda", "w", "work", "lwork"},
		cplxCall: []string{"jobz", "uplo", "n", "a", "lda", "w", "work", "lwork", "rwork"},
	},
	{
		base: "syevr", cplxBase: "heevr", field: "Syevr",
		params: []arg{
			{name: "jobz", kind: kFlag}, {name: "rng", kind: kFlag}, {name: "uplo", kind: kFlag},
			{name: "n", kind: kDim}, {name: "a", kind: kElem}, {name: "lda", kind: kDim},
			{name: "vl", kind: kRScalar}, {name: "vu", kind: kRScalar},
			{name: "il", kind: kDim, shift: 1}, {name: "iu", kind: kDim},
			{name: "abstol", kind: kRScalar}, {name: "m", kind: kIOut},
			{name: "w", kind: kReal, out: true},
			{name: "z", kind: kElem}, {name: "ldz", kind: kDim},
			{name: "isuppz", kind: kPivOut},
			{name: "work", kind: kElem}, {name: "lwork", kind: kDim},
			{name: "rwork", kind: kReal, out: true}, {name: "lrwork", kind: kDim},
			{name: "iwork", kind: kIntScratch}, {name: "liwork", kind: kDim},
		},
		realCall: []string{"jobz", "rng", "uplo", "n", "a", "lda", "vl", "vu", "il", "iu",
			"abstol", "m", "w", "z", "ldz", "isuppz", "work", "lwork", "iwork", "liwork"},
		cplxCall: []string{"jobz", "rng", "uplo", "n", "a", "lda", "vl", "vu", "il", "iu",
			"abstol", "m", "w", "z", "ldz", "isuppz", "work", "lwork", "rwork", "lrwork", "iwork", "liwork"},
		realPost: syevrQueryPost,
		cplxPost: heevrQueryPost,
	},
	{
		base: "stev", realOnly: true,
		params: []arg{
			{name: "jobz", kind: kFlag}, {name: "n", kind: kDim},
			{name: "d", kind: kElem}, {name: "e", kind: kElem},
			{name: "z", kind: kElem}, {name: "ldz", kind: kDim},
			{name: "work", kind: kElem},
		},
		realCall: []string{"jobz", "n", "d", "e", "z", "ldz", "work"},
	},

	// Nonsymmetric eigenproblems.
	{
		base: "geev",
		params: []arg{
			{name: "jobvl", kind: kFlag}, {name: "jobvr", kind: kFlag}, {name: "n", kind: kDim},
			{name: "a", kind: kElem}, {name: "lda", kind: kDim},
			{name: "wr", kind: kReal, out: true}, {name: "wi", kind: kReal, out: true},
			{name: "w", kind: kElem},
			{name: "vl", kind: kElem}, {name: "ldvl", kind: kDim},
			{name: "vr", kind: kElem}, {name: "ldvr", kind: kDim},
			{name: "work", kind: kElem}, {name: "lwork", kind: kDim},
			{name: "rwork", kind: kReal},
		},
		realCall: []string{"jobvl", "jobvr", "n", "a", "lda", "wr", "wi",
			"vl", "ldvl", "vr", "ldvr", "work", "lwork"},
		cplxCall: []string{"jobvl", "jobvr", "n", "a", "lda", "w",
			"vl", "ldvl", "vr", "ldvr", "work", "lwork", "rwork"},
	},

	// Singular value decomposition.
	{
		base: "gesvd",
		params: []arg{
			{name: "jobu", kind: kFlag}, {name: "jobvt", kind: kFlag},
			{name: "m", kind: kDim}, {name: "n", kind: kDim},
			{name: "a", kind: kElem}, {name: "lda", kind: kDim},
			{name: "s", kind: kReal, out: true},
			{name: "u", kind: kElem}, {name: "ldu", kind: kDim},
			{name: "vt", kind: kElem}, {name: "ldvt", kind: kDim},
			{name: "work", kind: kElem}, {name: "lwork", kind: kDim},
			{name: "rwork", kind: kReal},
		},
		realCall: []string{"jobu", "jobvt", "m", "n", "a", "lda", "s",
			"u", "ldu", "vt", "ldvt", "work", "lwork"},
		cplxCall: []string{"jobu", "jobvt", "m", "n", "a", "lda", "s",
			"u", "ldu", "vt", "ldvt", "work", "lwork", "rwork"},
	},
	{
		base: "gesdd",
		params: []arg{
			{name: "jobz", kind: kFlag},
			{name: "m", kind: kDim}, {name: "n", kind: kDim},
			{name: "a", kind: kElem}, {name: "lda", kind: kDim},
			{name: "s", kind: kReal, out: true},
			{name: "u", kind: kElem}, {name: "ldu", kind: kDim},
			{name: "vt", kind: kElem}, {name: "ldvt", kind: kDim},
			{name: "work", kind: kElem}, {name: "lwork", kind: kDim},
			{name: "rwork", kind: kReal}, {name: "iwork", kind: kIntScratch},
		},
		realCall: []string{"jobz", "m", "n", "a", "lda", "s",
			"u", "ldu", "vt", "ldvt", "work", "lwork", "iwork"},
		cplxCall: []string{"jobz", "m", "n", "a", "lda", "s",
			"u", "ldu", "vt", "ldvt", "work", "lwork", "rwork", "iwork"},
	},
	{
		base: "bdsqr",
		params: []arg{
			{name: "uplo", kind: kFlag}, {name: "n", kind: kDim},
			{name: "ncvt", kind: kDim}, {name: "nru", kind: kDim}, {name: "ncc", kind: kDim},
			{name: "d", kind: kReal, out: true}, {name: "e", kind: kReal, out: true},
			{name: "vt", kind: kElem}, {name: "ldvt", kind: kDim},
			{name: "u", kind: kElem}, {name: "ldu", kind: kDim},
			{name: "c", kind: kElem}, {name: "ldc", kind: kDim},
			{name: "rwork", kind: kReal},
		},
		realCall: []string{"uplo", "n", "ncvt", "nru", "ncc", "d", "e",
			"vt", "ldvt", "u", "ldu", "c", "ldc", "rwork"},
	},
	{
		base: "bdsdc", realOnly: true,
		params: []arg{
			{name: "uplo", kind: kFlag}, {name: "compq", kind: kFlag}, {name: "n", kind: kDim},
			{name: "d", kind: kReal, out: true}, {name: "e", kind: kReal, out: true},
			{name: "u", kind: kElem}, {name: "ldu", kind: kDim},
			{name: "vt", kind: kElem}, {name: "ldvt", kind: kDim},
			{name: "work", kind: kReal}, {name: "iwork", kind: kIntScratch},
		},
		realCall: []string{"uplo", "compq", "n", "d", "e",
			"u", "ldu", "vt", "ldvt", argDumE, argDumI, "work", "iwork"},
	},

	// General tridiagonal.
	{
		base: "gtsv",
		params: []arg{
			{name: "n", kind: kDim}, {name: "nrhs", kind: kDim},
			{name: "dl", kind: kElem}, {name: "d", kind: kElem}, {name: "du", kind: kElem},
			{name: "b", kind: kElem}, {name: "ldb", kind: kDim},
		},
		realCall: []string{"n", "nrhs", "dl", "d", "du", "b", "ldb"},
	},
	{
		base: "gttrf",
		params: []arg{
			{name: "n", kind: kDim},
			{name: "dl", kind: kElem}, {name: "d", kind: kElem},
			{name: "du", kind: kElem}, {name: "du2", kind: kElem},
			{name: "ipiv", kind: kPivOut},
		},
		realCall: []string{"n", "dl", "d", "du", "du2", "ipiv"},
	},
	{
		base: "gttrs",
		params: []arg{
			{name: "trans", kind: kFlag}, {name: "n", kind: kDim}, {name: "nrhs", kind: kDim},
			{name: "dl", kind: kElem}, {name: "d", kind: kElem},
			{name: "du", kind: kElem}, {name: "du2", kind: kElem},
			{name: "ipiv", kind: kPivIn},
			{name: "b", kind: kElem}, {name: "ldb", kind: kDim},
		},
		realCall: []string{"trans", "n", "nrhs", "dl", "d", "du", "du2", "ipiv", "b", "ldb"},
	},

	// Hessenberg and Schur.
	{
		base: "gehrd",
		params: []arg{
			{name: "n", kind: kDim},
			{name: "ilo", kind: kDim, shift: 1}, {name: "ihi", kind: kDim, shift: 1},
			{name: "a", kind: kElem}, {name: "lda", kind: kDim},
			{name: "tau", kind: kElem}, {name: "work", kind: kElem}, {name: "lwork", kind: kDim},
		},
		realCall: []string{"n", "ilo", "ihi", "a", "lda", "tau", "work", "lwork"},
	},
	{
		base: "orghr", cplxBase: "unghr", field: "Orghr",
		params: []arg{
			{name: "n", kind: kDim},
			{name: "ilo", kind: kDim, shift: 1}, {name: "ihi", kind: kDim, shift: 1},
			{name: "a", kind: kElem}, {name: "lda", kind: kDim},
			{name: "tau", kind: kElem}, {name: "work", kind: kElem}, {name: "lwork", kind: kDim},
		},
		realCall: []string{"n", "ilo", "ihi", "a", "lda", "tau", "work", "lwork"},
	},
	{
		base: "gees",
		params: []arg{
			{name: "jobvs", kind: kFlag}, {name: "n", kind: kDim},
			{name: "a", kind: kElem}, {name: "lda", kind: kDim},
			{name: "wr", kind: kReal, out: true}, {name: "wi", kind: kReal, out: true},
			{name: "w", kind: kElem},
			{name: "vs", kind: kElem}, {name: "ldvs", kind: kDim},
			{name: "work", kind: kElem}, {name: "lwork", kind: kDim},
			{name: "rwork", kind: kReal},
		},
		realCall: []string{"jobvs", argSortN, argNull, "n", "a", "lda", argSdim,
			"wr", "wi", "vs", "ldvs", "work", "lwork", argBwork},
		cplxCall: []string{"jobvs", argSortN, argNull, "n", "a", "lda", argSdim,
			"w", "vs", "ldvs", "work", "lwork", "rwork", argBwork},
	},

	// Norms.
	{
		base: "lange", retNorm: true,
		params: []arg{
			{name: "norm", kind: kFlag},
			{name: "m", kind: kDim}, {name: "n", kind: kDim},
			{name: "a", kind: kElem}, {name: "lda", kind: kDim},
			{name: "rwork", kind: kReal},
		},
		realCall: []string{"norm", "m", "n", "a", "lda", "rwork"},
	},

	// Rectangular full packed conversions.
	{
		base: "trttf",
		params: []arg{
			{name: "transr", kind: kFlag}, {name: "uplo", kind: kFlag}, {name: "n", kind: kDim},
			{name: "a", kind: kElem}, {name: "lda", kind: kDim},
			{name: "arf", kind: kElem},
		},
		realCall: []string{"transr", "uplo", "n", "a", "lda", "arf"},
	},
	{
		base: "tfttr",
		params: []arg{
			{name: "transr", kind: kFlag}, {name: "uplo", kind: kFlag}, {name: "n", kind: kDim},
			{name: "arf", kind: kElem},
			{name: "a", kind: kElem}, {name: "lda", kind: kDim},
		},
		realCall: []string{"transr", "uplo", "n", "arf", "a", "lda"},
	},
}
