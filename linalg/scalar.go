// Copyright 2025 go-highway Authors
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

package linalg

// Floats is a constraint for real floating-point element types.
type Floats interface {
	~float32 | ~float64
}

// Complexes is a constraint for complex element types.
//
// Named complex types are not accepted: Conj and RealPart resolve complex
// values by their exact type.
type Complexes interface {
	complex64 | complex128
}

// Scalar is a constraint for every element type the kernels accept.
type Scalar interface {
	Floats | Complexes
}

// Conj returns the complex conjugate of v. It is the identity for real types.
func Conj[T Scalar](v T) T {
	switch c := any(v).(type) {
	case complex128:
		return any(complex(real(c), -imag(c))).(T)
	case complex64:
		return any(complex(real(c), -imag(c))).(T)
	}
	return v
}

// RealPart returns v with its imaginary part cleared. It is the identity for
// real types.
func RealPart[T Scalar](v T) T {
	switch c := any(v).(type) {
	case complex128:
		return any(complex(real(c), 0)).(T)
	case complex64:
		return any(complex(real(c), float32(0))).(T)
	}
	return v
}

// IsComplex reports whether T is a complex element type.
func IsComplex[T Scalar]() bool {
	var zero T
	switch any(zero).(type) {
	case complex64, complex128:
		return true
	}
	return false
}
