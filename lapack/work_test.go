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

import "testing"

func TestQueryWorkProtocol(t *testing.T) {
	var lworks []int
	var lens []int
	info := queryWork(func(work []float64, lwork int) int {
		lworks = append(lworks, lwork)
		lens = append(lens, len(work))
		if lwork == -1 {
			work[0] = 25
		}
		return 0
	})
	if info != 0 {
		t.Fatalf("info = %d", info)
	}
	if len(lworks) != 2 || lworks[0] != -1 || lworks[1] != 25 {
		t.Errorf("lwork sequence = %v, want [-1 25]", lworks)
	}
	if lens[1] != 25 {
		t.Errorf("allocated %d elements, want 25", lens[1])
	}
}

func TestQueryWorkComplexProbe(t *testing.T) {
	// Complex kernels report the size through the real part.
	var got int
	queryWork(func(work []complex128, lwork int) int {
		if lwork == -1 {
			work[0] = complex(12, 0)
			return 0
		}
		got = lwork
		return 0
	})
	if got != 12 {
		t.Errorf("second-call lwork = %d, want 12", got)
	}
}

func TestQueryWorkFailedQueryShortCircuits(t *testing.T) {
	calls := 0
	info := queryWork(func(work []float64, lwork int) int {
		calls++
		return -3
	})
	if info != -3 {
		t.Errorf("info = %d, want -3", info)
	}
	if calls != 1 {
		t.Errorf("kernel called %d times after failed query, want 1", calls)
	}
}

func TestQueryWorkMinimumOneElement(t *testing.T) {
	// A degenerate kernel may answer 0; the work buffer must still be
	// allocatable and non-empty.
	queryWork(func(work []float64, lwork int) int {
		if lwork == -1 {
			work[0] = 0
			return 0
		}
		if len(work) < 1 {
			t.Errorf("work buffer has length %d", len(work))
		}
		return 0
	})
}

func TestWorkInt(t *testing.T) {
	if got := workInt(float32(17)); got != 17 {
		t.Errorf("float32: %d", got)
	}
	if got := workInt(float64(33)); got != 33 {
		t.Errorf("float64: %d", got)
	}
	if got := workInt(complex64(complex(5, 9))); got != 5 {
		t.Errorf("complex64: %d", got)
	}
	if got := workInt(complex(21.0, -4.0)); got != 21 {
		t.Errorf("complex128: %d", got)
	}
}

func TestScratchNeverEmpty(t *testing.T) {
	if got := len(scratch[float64](0)); got != 1 {
		t.Errorf("scratch(0) has length %d, want 1", got)
	}
	if got := len(scratch[int](7)); got != 7 {
		t.Errorf("scratch(7) has length %d", got)
	}
}
