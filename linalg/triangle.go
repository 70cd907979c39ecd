package linalg

import (
	"fmt"
	"strings"
)

// Triangle selects which half of a symmetric or Hermitian matrix is stored.
// Both halves include the diagonal.
type Triangle uint8

const (
	// Lower addresses entries (i, j) with i >= j.
	Lower Triangle = iota

	// Upper addresses entries (i, j) with i <= j.
	Upper
)

// String returns "lower" or "upper".
func (t Triangle) String() string {
	switch t {
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	default:
		return fmt.Sprintf("Triangle(%d)", uint8(t))
	}
}

// ParseTriangle parses "lower"/"l" or "upper"/"u", case-insensitively.
func ParseTriangle(s string) (Triangle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lower", "l":
		return Lower, nil
	case "upper", "u":
		return Upper, nil
	default:
		return 0, fmt.Errorf("parse triangle %q: %w", s, ErrBadTriangle)
	}
}

// Valid reports whether t is Lower or Upper.
func (t Triangle) Valid() bool {
	return t == Lower || t == Upper
}

// Contains reports whether entry (i, j) lies in the triangle.
func (t Triangle) Contains(i, j int) bool {
	if t == Lower {
		return i >= j
	}
	return i <= j
}

// Transpose returns the opposite triangle. Entry (i, j) of t is entry (j, i)
// of t.Transpose().
func (t Triangle) Transpose() Triangle {
	if t == Lower {
		return Upper
	}
	return Lower
}

// columnRange returns the row range [lo, hi) covered in column j of an n×n
// matrix.
func (t Triangle) columnRange(j, n int) (lo, hi int) {
	if t == Lower {
		return j, n
	}
	return 0, j + 1
}

// rowRange returns the column range [lo, hi) covered in row i of an n×n
// matrix.
func (t Triangle) rowRange(i, n int) (lo, hi int) {
	if t == Lower {
		return 0, i + 1
	}
	return i, n
}
