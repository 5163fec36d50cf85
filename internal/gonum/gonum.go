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

// Package gonum registers the pure-Go reference backend, built on
// gonum.org/v1/gonum's native LAPACK implementation. It serves the real
// pair: float64 directly, float32 by computing in double precision and
// rounding at the boundary. The complex pair needs the cgo backend.
//
// gonum's routines are row-major while the kernel seam is column-major;
// the adapters physically transpose buffers around each call, which
// preserves the logical matrix, so flags pass through unchanged. The
// copies make this backend a correctness reference rather than the fast
// path; the cgo backend replaces it when registered.
package gonum

import (
	"os"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/lapack"

	"github.com/ajroetker/go-lapack/internal/kernel"
)

func init() {
	if os.Getenv("LAPACK_NO_GONUM") != "" {
		return
	}
	// Yield to a backend that registered earlier (the cgo bindings).
	if kernel.D.Backend != "" {
		return
	}
	registerFloat64()
	registerFloat32()
	log.Debug().
		Str("backend", "gonum").
		Strs("types", []string{"float32", "float64"}).
		Msg("registered pure-Go LAPACK backend")
}

// toRM copies an m×n column-major matrix with leading dimension lda into
// a fresh row-major buffer with stride n.
func toRM(a []float64, m, n, lda int) []float64 {
	out := make([]float64, m*n)
	for j := 0; j < n; j++ {
		col := a[j*lda:]
		for i := 0; i < m; i++ {
			out[i*n+j] = col[i]
		}
	}
	return out
}

// fromRM copies a row-major buffer back into column-major storage.
func fromRM(dst []float64, m, n, lda int, rm []float64) {
	for j := 0; j < n; j++ {
		col := dst[j*lda:]
		for i := 0; i < m; i++ {
			col[i] = rm[i*n+j]
		}
	}
}

// rmStride is the row-major leading dimension for an n-column matrix.
func rmStride(n int) int {
	return max(1, n)
}

// dummyRM is a 1-element placeholder for vector buffers a routine will
// not reference.
func dummyRM() []float64 { return make([]float64, 1) }

func uplo(b byte) blas.Uplo {
	if b == 'U' {
		return blas.Upper
	}
	return blas.Lower
}

func trans(b byte) blas.Transpose {
	switch b {
	case 'T':
		return blas.Trans
	case 'C':
		return blas.ConjTrans
	}
	return blas.NoTrans
}

func side(b byte) blas.Side {
	if b == 'R' {
		return blas.Right
	}
	return blas.Left
}

func diag(b byte) blas.Diag {
	if b == 'U' {
		return blas.Unit
	}
	return blas.NonUnit
}

func norm(b byte) lapack.MatrixNorm {
	switch b {
	case 'M':
		return lapack.MaxAbs
	case 'I':
		return lapack.MaxRowSum
	case 'F', 'E':
		return lapack.Frobenius
	}
	return lapack.MaxColumnSum
}

func evJob(b byte) lapack.EVJob {
	if b == 'V' {
		return lapack.EVCompute
	}
	return lapack.EVNone
}

func svdJob(b byte) lapack.SVDJob {
	switch b {
	case 'A':
		return lapack.SVDAll
	case 'S':
		return lapack.SVDStore
	case 'O':
		return lapack.SVDOverwrite
	}
	return lapack.SVDNone
}

// zeroDiag returns the 1-based LAPACK status for the first exactly zero
// diagonal element of a row-major m×n matrix, or 0 if none.
func zeroDiag(rm []float64, m, n int) int {
	for i := 0; i < min(m, n); i++ {
		if rm[i*n+i] == 0 {
			return i + 1
		}
	}
	return 0
}

// zeroDiagCM is zeroDiag for column-major storage.
func zeroDiagCM(a []float64, n, lda int) int {
	for i := 0; i < n; i++ {
		if a[i*lda+i] == 0 {
			return i + 1
		}
	}
	return 0
}
