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

// Rectangular full packed (RFP) format stores one triangle of an n×n
// matrix in exactly n*(n+1)/2 elements while keeping rectangular strides,
// so level-3 kernels can operate on it. The conversions are lossless by
// construction and need no workspace.

// rfpTrans returns the transr flags valid for element type T: complex
// types use the conjugate form in place of the plain transpose.
func rfpTrans[T Scalar]() string {
	if TypeOf[T]().Complex {
		return "NC"
	}
	return "NT"
}

// Trttf converts the uplo triangle of a full-format matrix into a freshly
// allocated RFP array of n*(n+1)/2 elements. transr selects the normal or
// transposed RFP form.
func Trttf[T Scalar](transr Transpose, uplo Uplo, a General[T]) ([]T, error) {
	if err := checkFlag("transr", byte(transr), rfpTrans[T]()); err != nil {
		return nil, err
	}
	if err := checkFlag("uplo", byte(uplo), "UL"); err != nil {
		return nil, err
	}
	if err := checkSquare("a", a); err != nil {
		return nil, err
	}
	k := tab[T]()
	if k.Trttf == nil {
		noKernel("trttf", k.Backend)
	}
	n := a.Rows
	arf := make([]T, n*(n+1)/2)
	info := k.Trttf(byte(transr), byte(uplo), n, a.Data, a.Stride, arf)
	if err := checkInfo("trttf", info); err != nil {
		return nil, err
	}
	return arf, nil
}

// Tfttr converts an RFP array back into full format, returning a freshly
// allocated n×n matrix with the uplo triangle filled and the opposite
// triangle zero.
func Tfttr[T Scalar](transr Transpose, uplo Uplo, n int, arf []T) (General[T], error) {
	if err := checkFlag("transr", byte(transr), rfpTrans[T]()); err != nil {
		return General[T]{}, err
	}
	if err := checkFlag("uplo", byte(uplo), "UL"); err != nil {
		return General[T]{}, err
	}
	if n < 0 {
		return General[T]{}, &DimensionError{Reason: "negative dimension"}
	}
	if len(arf) != n*(n+1)/2 {
		return General[T]{}, &DimensionError{Reason: fmt.Sprintf("rfp array has length %d, want %d", len(arf), n*(n+1)/2)}
	}
	k := tab[T]()
	if k.Tfttr == nil {
		noKernel("tfttr", k.Backend)
	}
	a := NewGeneral[T](n, n)
	info := k.Tfttr(byte(transr), byte(uplo), n, arf, a.Data, a.Stride)
	if err := checkInfo("tfttr", info); err != nil {
		return General[T]{}, err
	}
	return a, nil
}
