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

// Scalar is the element-type quartet supported by the binding layer: two
// real and two complex types sharing kernel logic but differing in buffer
// layout and auxiliary-array requirements.
type Scalar interface {
	float32 | float64 | complex64 | complex128
}

// Float is the real pair, used to constrain the real-only routines
// (tridiagonal eigensolvers, divide-and-conquer bidiagonal SVD).
type Float interface {
	float32 | float64
}

// Complex is the complex pair.
type Complex interface {
	complex64 | complex128
}

// TypeInfo describes how an element type maps onto the native kernel
// family: the kernel symbol prefix, the prefix of the associated real type
// (self for real types, the narrower real type for complex types), the
// complex flag, and the byte width of one element.
type TypeInfo struct {
	Prefix     byte
	RealPrefix byte
	Complex    bool
	Size       int
}

// TypeOf returns the kernel descriptor for element type T.
func TypeOf[T Scalar]() TypeInfo {
	var zero T
	switch any(zero).(type) {
	case float32:
		return TypeInfo{Prefix: 's', RealPrefix: 's', Size: 4}
	case float64:
		return TypeInfo{Prefix: 'd', RealPrefix: 'd', Size: 8}
	case complex64:
		return TypeInfo{Prefix: 'c', RealPrefix: 's', Complex: true, Size: 8}
	case complex128:
		return TypeInfo{Prefix: 'z', RealPrefix: 'd', Complex: true, Size: 16}
	}
	panic("lapack: unsupported element type")
}

// General is a caller-owned, mutable, column-major m×n matrix buffer.
// Element (i, j) lives at Data[j*Stride+i]; Stride is the leading
// dimension, the distance in elements between consecutive columns, and
// must be at least max(1, Rows). The binding layer receives General by
// value but mutates the shared Data slice in place where the operation's
// contract says so.
type General[T Scalar] struct {
	Rows, Cols int
	Stride     int
	Data       []T
}

// NewGeneral allocates a zeroed m×n column-major matrix with a tight
// leading dimension.
func NewGeneral[T Scalar](m, n int) General[T] {
	return General[T]{Rows: m, Cols: n, Stride: max(1, m), Data: make([]T, max(1, m)*n)}
}

// At returns element (i, j).
func (m General[T]) At(i, j int) T {
	return m.Data[j*m.Stride+i]
}

// Set stores v at element (i, j).
func (m General[T]) Set(i, j int, v T) {
	m.Data[j*m.Stride+i] = v
}

// Clone returns a copy of m with freshly allocated, tightly packed
// storage.
func (m General[T]) Clone() General[T] {
	out := NewGeneral[T](m.Rows, m.Cols)
	for j := 0; j < m.Cols; j++ {
		copy(out.Data[j*out.Stride:j*out.Stride+m.Rows], m.Data[j*m.Stride:j*m.Stride+m.Rows])
	}
	return out
}
