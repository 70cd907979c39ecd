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

// The reference kernels loop over an outer index k in [lo, hi) so a
// RangeScheduler can split them. Each k owns a disjoint set of entries.
//
// Symmetric: the outer index follows the storage order (columns for ColMajor,
// rows for RowMajor) so the inner loop is unit-stride. The covered entries
// are the same either way; only the rounding path differs.
//
// Hermitian: the outer index is always the column j, so Conj(x(j)) and
// Conj(y(j)) are computed once per column and the inner loop is plain
// multiply-add.

// symmetricOuter returns the extent of the outer loop of symmetricRange.
func symmetricOuter[T Scalar](a Matrix[T]) int {
	if a.layout == ColMajor {
		return a.cols
	}
	return a.rows
}

// symmetricRange applies A(i,j) += x(i)*y(j) + y(i)*x(j) over the triangle
// for outer indices in [lo, hi).
func symmetricRange[T Scalar](x, y Vector[T], a Matrix[T], tri Triangle, lo, hi int) {
	n := a.cols
	if a.layout == ColMajor {
		for j := lo; j < hi; j++ {
			xj, yj := x.At(j), y.At(j)
			ilo, ihi := tri.columnRange(j, n)
			col := a.data[j*a.stride:]
			for i := ilo; i < ihi; i++ {
				col[i] += x.At(i)*yj + y.At(i)*xj
			}
		}
		return
	}

	for i := lo; i < hi; i++ {
		xi, yi := x.At(i), y.At(i)
		jlo, jhi := tri.rowRange(i, n)
		row := a.data[i*a.stride:]
		for j := jlo; j < jhi; j++ {
			row[j] += xi*y.At(j) + yi*x.At(j)
		}
	}
}

// hermitianRange applies A(i,j) += x(i)*conj(y(j)) + y(i)*conj(x(j)) over the
// triangle for columns in [lo, hi), first replacing each diagonal entry by
// its real part.
func hermitianRange[T Scalar](x, y Vector[T], a Matrix[T], tri Triangle, lo, hi int) {
	n := a.cols
	for j := lo; j < hi; j++ {
		a.Set(j, j, RealPart(a.At(j, j)))

		cxj, cyj := Conj(x.At(j)), Conj(y.At(j))
		ilo, ihi := tri.columnRange(j, n)
		if a.layout == ColMajor {
			col := a.data[j*a.stride:]
			for i := ilo; i < ihi; i++ {
				col[i] += x.At(i)*cyj + y.At(i)*cxj
			}
			continue
		}
		for i := ilo; i < ihi; i++ {
			a.data[i*a.stride+j] += x.At(i)*cyj + y.At(i)*cxj
		}
	}
}

// symmetricReference is the sequential symmetric rank-2 update.
func symmetricReference[T Scalar](x, y Vector[T], a Matrix[T], tri Triangle) {
	symmetricRange(x, y, a, tri, 0, symmetricOuter(a))
}

// hermitianReference is the sequential Hermitian rank-2 update.
func hermitianReference[T Scalar](x, y Vector[T], a Matrix[T], tri Triangle) {
	hermitianRange(x, y, a, tri, 0, a.cols)
}
