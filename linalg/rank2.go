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

import "fmt"

// SymmetricRank2Update computes A += x*yᵀ + y*xᵀ on the tri triangle of a
// using the process default executor.
//
// Parameters:
//   - x, y: vectors of length n
//   - a: n×n matrix, updated in place; only the tri triangle is touched
//   - tri: Lower (i >= j) or Upper (i <= j), diagonal included
//
// Panics with an *ExtentError if the extents disagree, or with
// ErrBadTriangle for an invalid tri.
//
// Example:
//
//	x := VectorOf([]float64{1, 2})
//	y := VectorOf([]float64{3, 4})
//	a := RowMajorOf(make([]float64, 4), 2, 2)
//	SymmetricRank2Update(x, y, a, Lower) // a = [6 0; 10 16]
func SymmetricRank2Update[T Scalar](x, y Vector[T], a Matrix[T], tri Triangle) {
	SymmetricRank2UpdateWith(Default(), x, y, a, tri)
}

// SymmetricRank2UpdateWith is SymmetricRank2Update on an explicit executor.
//
// If exec implements SymmetricRank2Updater[T], before or after Mapper
// normalization, the call is forwarded to it unchanged and the reference
// kernel does not run. Otherwise, if it implements RangeScheduler, the reference kernel runs
// over the scheduled ranges; otherwise it runs sequentially. A nil exec means
// the process default. Panics raised by a specialization propagate.
func SymmetricRank2UpdateWith[T Scalar](exec Executor, x, y Vector[T], a Matrix[T], tri Triangle) {
	checkRank2("SymmetricRank2Update", x, y, a, tri)
	u, exec := resolveSymmetric[T](exec)
	if u != nil {
		u.SymmetricRank2Update(x, y, a, tri)
		return
	}
	if s, ok := rangeScheduler(exec); ok {
		s.ScheduleRange(symmetricOuter(a), cacheLineElems[T](), func(lo, hi int) {
			symmetricRange(x, y, a, tri, lo, hi)
		})
		return
	}
	symmetricReference(x, y, a, tri)
}

// HermitianRank2Update computes A += x*yᴴ + y*xᴴ on the tri triangle of a
// using the process default executor. Each diagonal entry in the triangle is
// replaced by its real part before it is updated, so the diagonal is real on
// return even if it was not on entry. For real element types the result is
// that of SymmetricRank2Update.
//
// Panics with an *ExtentError if the extents disagree, or with
// ErrBadTriangle for an invalid tri.
func HermitianRank2Update[T Scalar](x, y Vector[T], a Matrix[T], tri Triangle) {
	HermitianRank2UpdateWith(Default(), x, y, a, tri)
}

// HermitianRank2UpdateWith is HermitianRank2Update on an explicit executor.
// Dispatch follows SymmetricRank2UpdateWith, probing for
// HermitianRank2Updater[T].
func HermitianRank2UpdateWith[T Scalar](exec Executor, x, y Vector[T], a Matrix[T], tri Triangle) {
	checkRank2("HermitianRank2Update", x, y, a, tri)
	u, exec := resolveHermitian[T](exec)
	if u != nil {
		u.HermitianRank2Update(x, y, a, tri)
		return
	}
	if s, ok := rangeScheduler(exec); ok {
		s.ScheduleRange(a.cols, cacheLineElems[T](), func(lo, hi int) {
			hermitianRange(x, y, a, tri, lo, hi)
		})
		return
	}
	hermitianReference(x, y, a, tri)
}

// checkRank2 panics unless a is n×n, x and y have length n, and tri is valid.
func checkRank2[T Scalar](op string, x, y Vector[T], a Matrix[T], tri Triangle) {
	if !tri.Valid() {
		panic(fmt.Errorf("linalg: %s: %v: %w", op, tri, ErrBadTriangle))
	}
	n := a.rows
	if a.cols != n || x.n != n || y.n != n {
		panic(&ExtentError{Op: op, XLen: x.n, YLen: y.n, Rows: a.rows, Cols: a.cols})
	}
}
