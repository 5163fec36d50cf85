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

import (
	"errors"
	"testing"

	"github.com/ajroetker/go-lapack/internal/kernel"
)

func TestRealBackendRegistered(t *testing.T) {
	if !Available[float64]() {
		t.Fatal("no backend registered for float64")
	}
	if !Available[float32]() {
		t.Fatal("no backend registered for float32")
	}
	bound := Routines[float64]()
	if len(bound) < 30 {
		t.Errorf("float64 backend binds %d routines", len(bound))
	}
	found := map[string]bool{}
	for _, r := range bound {
		found[r] = true
	}
	for _, want := range []string{"Getrf", "Syevr", "Gesvd", "Lange", "Tfttr"} {
		if !found[want] {
			t.Errorf("float64 backend does not bind %s", want)
		}
	}
}

// The complex tables are exercised through a stub backend: the dispatch
// and error translation paths are shared with the real pair, only the
// table lookup differs.
func TestComplexTableDispatch(t *testing.T) {
	saved := kernel.C
	defer func() { kernel.C = saved }()

	var gotM, gotN, gotLda, gotPiv int
	kernel.C = kernel.Table[complex64]{
		Backend: "stub",
		Getrf: func(m, n int, a []complex64, lda int, ipiv []int) int {
			gotM, gotN, gotLda, gotPiv = m, n, lda, len(ipiv)
			ipiv[0] = 1
			return 0
		},
	}

	if Backend[complex64]() != "stub" {
		t.Fatalf("Backend = %q", Backend[complex64]())
	}
	a := NewGeneral[complex64](2, 3)
	lu, err := Getrf(a)
	if err != nil {
		t.Fatal(err)
	}
	if gotM != 2 || gotN != 3 || gotLda != 2 || gotPiv != 2 {
		t.Errorf("kernel saw m=%d n=%d lda=%d len(ipiv)=%d", gotM, gotN, gotLda, gotPiv)
	}
	if lu.Ipiv[0] != 1 || lu.ZeroPivot != -1 {
		t.Errorf("lu = ipiv %v, zero pivot %d", lu.Ipiv, lu.ZeroPivot)
	}
}

func TestStubStatusTranslation(t *testing.T) {
	saved := kernel.Z
	defer func() { kernel.Z = saved }()

	kernel.Z = kernel.Table[complex128]{
		Backend: "stub",
		Getrf: func(m, n int, a []complex128, lda int, ipiv []int) int {
			return -3
		},
		Potrf: func(uplo byte, n int, a []complex128, lda int) int {
			return 2
		},
	}

	_, err := Getrf(NewGeneral[complex128](2, 2))
	var ae *ArgumentError
	if !errors.As(err, &ae) || ae.Index != 3 {
		t.Errorf("negative status: got %v, want ArgumentError index 3", err)
	}

	_, err = Potrf(Lower, NewGeneral[complex128](2, 2))
	var pe *NotPositiveDefiniteError
	if !errors.As(err, &pe) || pe.Minor != 2 {
		t.Errorf("positive status: got %v, want NotPositiveDefiniteError minor 2", err)
	}
}

func TestValidationPrecedesKernel(t *testing.T) {
	saved := kernel.C
	defer func() { kernel.C = saved }()

	kernel.C = kernel.Table[complex64]{
		Backend: "stub",
		Getrf: func(m, n int, a []complex64, lda int, ipiv []int) int {
			t.Error("kernel invoked on invalid input")
			return 0
		},
	}

	bad := General[complex64]{Rows: 2, Cols: 2, Stride: 1, Data: make([]complex64, 4)}
	_, err := Getrf(bad)
	var le *LayoutError
	if !errors.As(err, &le) {
		t.Errorf("got %v, want LayoutError", err)
	}
}

func TestUnboundRoutinePanics(t *testing.T) {
	saved := kernel.C
	defer func() { kernel.C = saved }()
	kernel.C = kernel.Table[complex64]{Backend: "stub"}

	defer func() {
		if recover() == nil {
			t.Error("call through a nil table field did not panic")
		}
	}()
	Getrf(NewGeneral[complex64](1, 1))
}
