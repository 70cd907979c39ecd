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

// Package gonumblas provides linalg executors backed by the pure-Go BLAS in
// gonum.org/v1/gonum/blas/gonum.
//
// Each executor is specialized for one element type, and only for the
// operations level-2 BLAS defines:
//
//	Executor     Symmetric   Hermitian
//	Float64      Dsyr2       Dsyr2
//	Float32      Ssyr2       Ssyr2
//	Complex128   -           Zher2
//	Complex64    -           Cher2
//
// Calls the executor has no specialization for (a symmetric update of complex
// data, or any element type other than its own) are resolved by linalg's
// dispatch to the reference kernel.
//
// Usage:
//
//	linalg.SymmetricRank2UpdateWith(gonumblas.Float64{}, x, y, a, linalg.Lower)
package gonumblas

import (
	"go.uber.org/zap"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/gonum"

	"github.com/ajroetker/go-linalg/linalg"
)

var impl gonum.Implementation

// uplo maps a triangle of a with the given layout to the BLAS triangle of the
// row-major matrix BLAS sees. A column-major matrix is the row-major storage
// of its transpose, so its triangle flips.
func uplo(tri linalg.Triangle, layout linalg.Layout) blas.Uplo {
	if layout == linalg.ColMajor {
		tri = tri.Transpose()
	}
	if tri == linalg.Lower {
		return blas.Lower
	}
	return blas.Upper
}

// Float64 runs float64 updates through Dsyr2.
type Float64 struct{}

// Name returns "gonum-float64".
func (Float64) Name() string { return "gonum-float64" }

// SymmetricRank2Update implements linalg.SymmetricRank2Updater[float64].
func (Float64) SymmetricRank2Update(x, y linalg.Vector[float64], a linalg.Matrix[float64], tri linalg.Triangle) {
	n := a.Rows()
	if n == 0 {
		return
	}
	impl.Dsyr2(uplo(tri, a.Layout()), n, 1, x.Data(), x.Inc(), y.Data(), y.Inc(), a.Data(), a.Stride())
}

// HermitianRank2Update implements linalg.HermitianRank2Updater[float64]. For
// real data it is the symmetric update.
func (e Float64) HermitianRank2Update(x, y linalg.Vector[float64], a linalg.Matrix[float64], tri linalg.Triangle) {
	e.SymmetricRank2Update(x, y, a, tri)
}

// Float32 runs float32 updates through Ssyr2.
type Float32 struct{}

// Name returns "gonum-float32".
func (Float32) Name() string { return "gonum-float32" }

// SymmetricRank2Update implements linalg.SymmetricRank2Updater[float32].
func (Float32) SymmetricRank2Update(x, y linalg.Vector[float32], a linalg.Matrix[float32], tri linalg.Triangle) {
	n := a.Rows()
	if n == 0 {
		return
	}
	impl.Ssyr2(uplo(tri, a.Layout()), n, 1, x.Data(), x.Inc(), y.Data(), y.Inc(), a.Data(), a.Stride())
}

// HermitianRank2Update implements linalg.HermitianRank2Updater[float32].
func (e Float32) HermitianRank2Update(x, y linalg.Vector[float32], a linalg.Matrix[float32], tri linalg.Triangle) {
	e.SymmetricRank2Update(x, y, a, tri)
}

// Complex128 runs complex128 Hermitian updates through Zher2.
type Complex128 struct{}

// Name returns "gonum-complex128".
func (Complex128) Name() string { return "gonum-complex128" }

// HermitianRank2Update implements linalg.HermitianRank2Updater[complex128].
// Column-major matrices run the reference kernel: the transpose of a
// Hermitian update is an update by the conjugated vectors, which Zher2 could
// only take as copies.
func (e Complex128) HermitianRank2Update(x, y linalg.Vector[complex128], a linalg.Matrix[complex128], tri linalg.Triangle) {
	n := a.Rows()
	if n == 0 {
		return
	}
	if a.Layout() == linalg.ColMajor {
		fallback(e, a.Layout())
		linalg.HermitianRank2UpdateWith(linalg.Sequential{}, x, y, a, tri)
		return
	}
	impl.Zher2(uplo(tri, a.Layout()), n, 1, x.Data(), x.Inc(), y.Data(), y.Inc(), a.Data(), a.Stride())
}

// Complex64 runs complex64 Hermitian updates through Cher2.
type Complex64 struct{}

// Name returns "gonum-complex64".
func (Complex64) Name() string { return "gonum-complex64" }

// HermitianRank2Update implements linalg.HermitianRank2Updater[complex64].
// Column-major matrices run the reference kernel, as for Complex128.
func (e Complex64) HermitianRank2Update(x, y linalg.Vector[complex64], a linalg.Matrix[complex64], tri linalg.Triangle) {
	n := a.Rows()
	if n == 0 {
		return
	}
	if a.Layout() == linalg.ColMajor {
		fallback(e, a.Layout())
		linalg.HermitianRank2UpdateWith(linalg.Sequential{}, x, y, a, tri)
		return
	}
	impl.Cher2(uplo(tri, a.Layout()), n, 1, x.Data(), x.Inc(), y.Data(), y.Inc(), a.Data(), a.Stride())
}

func fallback(e linalg.Executor, layout linalg.Layout) {
	if l := linalg.Logger(); l.Core().Enabled(zap.DebugLevel) {
		l.Debug("layout not supported by BLAS, using reference kernel",
			zap.String("executor", e.Name()), zap.Stringer("layout", layout))
	}
}

// Compile-time checks.
var (
	_ linalg.SymmetricRank2Updater[float64]    = Float64{}
	_ linalg.HermitianRank2Updater[float64]    = Float64{}
	_ linalg.SymmetricRank2Updater[float32]    = Float32{}
	_ linalg.HermitianRank2Updater[float32]    = Float32{}
	_ linalg.HermitianRank2Updater[complex128] = Complex128{}
	_ linalg.HermitianRank2Updater[complex64]  = Complex64{}
)
