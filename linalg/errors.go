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
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a view is given a negative extent or a
	// non-positive increment or stride.
	ErrBadShape = errors.New("linalg: invalid shape")

	// ErrShortBuffer is returned when the backing slice cannot hold the
	// requested view.
	ErrShortBuffer = errors.New("linalg: buffer too short for view")

	// ErrDimensionMismatch signals operands whose extents disagree, e.g. a
	// non-square matrix or a vector whose length differs from the matrix order.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrBadTriangle signals a Triangle value other than Lower or Upper.
	ErrBadTriangle = errors.New("linalg: invalid triangle")
)

// ExtentError describes the operand extents of a rejected rank-2 update.
// Kernels panic with it; it unwraps to ErrDimensionMismatch.
type ExtentError struct {
	Op         string
	XLen, YLen int
	Rows, Cols int
}

func (e *ExtentError) Error() string {
	return fmt.Sprintf("linalg: %s: extents x=%d y=%d A=%dx%d: want x=y=n and A n×n",
		e.Op, e.XLen, e.YLen, e.Rows, e.Cols)
}

func (e *ExtentError) Unwrap() error { return ErrDimensionMismatch }
