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

import (
	"fmt"
	"strings"
)

// Layout describes how a Matrix maps (row, column) to its backing slice.
type Layout uint8

const (
	// RowMajor stores row i at data[i*stride : i*stride+cols].
	RowMajor Layout = iota

	// ColMajor stores column j at data[j*stride : j*stride+rows].
	ColMajor
)

// String returns "row-major" or "col-major".
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "row-major"
	case ColMajor:
		return "col-major"
	default:
		return fmt.Sprintf("Layout(%d)", uint8(l))
	}
}

// ParseLayout parses "row"/"row-major" or "col"/"col-major"/"column-major".
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "row", "row-major", "rowmajor", "":
		return RowMajor, nil
	case "col", "col-major", "colmajor", "column", "column-major":
		return ColMajor, nil
	default:
		return 0, fmt.Errorf("parse layout %q: %w", s, ErrBadShape)
	}
}

// Vector is a read-only strided view of n elements.
// Element i lives at data[i*inc].
type Vector[T Scalar] struct {
	data []T
	n    int
	inc  int
}

// NewVector returns a view of n elements of data spaced inc apart.
func NewVector[T Scalar](data []T, n, inc int) (Vector[T], error) {
	if n < 0 || inc < 1 {
		return Vector[T]{}, fmt.Errorf("vector n=%d inc=%d: %w", n, inc, ErrBadShape)
	}
	if n > 0 && len(data) < 1+(n-1)*inc {
		return Vector[T]{}, fmt.Errorf("vector n=%d inc=%d needs %d elements, have %d: %w",
			n, inc, 1+(n-1)*inc, len(data), ErrShortBuffer)
	}
	return Vector[T]{data: data, n: n, inc: inc}, nil
}

// VectorOf returns a contiguous view over all of data.
func VectorOf[T Scalar](data []T) Vector[T] {
	return Vector[T]{data: data, n: len(data), inc: 1}
}

// Len returns the number of elements in the view.
func (v Vector[T]) Len() int { return v.n }

// Inc returns the distance between consecutive elements in the backing slice.
func (v Vector[T]) Inc() int { return v.inc }

// Data returns the backing slice.
func (v Vector[T]) Data() []T { return v.data }

// At returns element i.
func (v Vector[T]) At(i int) T {
	return v.data[i*v.inc]
}

// Matrix is a read-write strided view of a rows×cols matrix.
type Matrix[T Scalar] struct {
	data   []T
	rows   int
	cols   int
	stride int
	layout Layout
}

// NewMatrix returns a rows×cols view of data. stride is the distance between
// consecutive rows (RowMajor) or columns (ColMajor) and must be at least the
// length of one of them.
func NewMatrix[T Scalar](data []T, rows, cols, stride int, layout Layout) (Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return Matrix[T]{}, fmt.Errorf("matrix %dx%d: %w", rows, cols, ErrBadShape)
	}
	lines, length := rows, cols
	switch layout {
	case RowMajor:
	case ColMajor:
		lines, length = cols, rows
	default:
		return Matrix[T]{}, fmt.Errorf("matrix layout %v: %w", layout, ErrBadShape)
	}
	if stride < max(1, length) {
		return Matrix[T]{}, fmt.Errorf("matrix %dx%d %v stride=%d: %w", rows, cols, layout, stride, ErrBadShape)
	}
	if lines > 0 && length > 0 {
		need := stride*(lines-1) + length
		if len(data) < need {
			return Matrix[T]{}, fmt.Errorf("matrix %dx%d %v stride=%d needs %d elements, have %d: %w",
				rows, cols, layout, stride, need, len(data), ErrShortBuffer)
		}
	}
	return Matrix[T]{data: data, rows: rows, cols: cols, stride: stride, layout: layout}, nil
}

// RowMajorOf returns a contiguous row-major rows×cols view of data.
// Panics if data is too short.
func RowMajorOf[T Scalar](data []T, rows, cols int) Matrix[T] {
	m, err := NewMatrix(data, rows, cols, max(1, cols), RowMajor)
	if err != nil {
		panic(err)
	}
	return m
}

// ColMajorOf returns a contiguous column-major rows×cols view of data.
// Panics if data is too short.
func ColMajorOf[T Scalar](data []T, rows, cols int) Matrix[T] {
	m, err := NewMatrix(data, rows, cols, max(1, rows), ColMajor)
	if err != nil {
		panic(err)
	}
	return m
}

// Rows returns the row extent.
func (m Matrix[T]) Rows() int { return m.rows }

// Cols returns the column extent.
func (m Matrix[T]) Cols() int { return m.cols }

// Stride returns the leading dimension of the backing slice.
func (m Matrix[T]) Stride() int { return m.stride }

// Layout returns the storage order.
func (m Matrix[T]) Layout() Layout { return m.layout }

// Data returns the backing slice.
func (m Matrix[T]) Data() []T { return m.data }

// At returns element (i, j).
func (m Matrix[T]) At(i, j int) T {
	return m.data[m.offset(i, j)]
}

// Set stores v at (i, j).
func (m Matrix[T]) Set(i, j int, v T) {
	m.data[m.offset(i, j)] = v
}

func (m Matrix[T]) offset(i, j int) int {
	if m.layout == ColMajor {
		return j*m.stride + i
	}
	return i*m.stride + j
}
