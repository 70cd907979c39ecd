package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-linalg/linalg"
)

func TestParseScenario(t *testing.T) {
	s, err := ParseScenario([]byte(`
kind: Hermitian
triangle: upper
layout: col-major
x: [1, [2, -1]]
y: [0.5, 3]
a: [[0, 0], [0, [1, 2]]]
`))
	require.NoError(t, err)
	assert.True(t, s.Hermitian())
	assert.True(t, s.Complex())
	assert.Equal(t, []Number{1, Number(complex(2, -1))}, s.X)
	assert.Equal(t, []Number{0.5, 3}, s.Y)
	assert.Equal(t, Number(complex(1, 2)), s.A[1][1])
}

func TestParseScenarioReal(t *testing.T) {
	s, err := ParseScenario([]byte("kind: symmetric\ntriangle: lower\nx: [1]\ny: [2]\na: [[3]]\n"))
	require.NoError(t, err)
	assert.False(t, s.Hermitian())
	assert.False(t, s.Complex())
}

func TestParseScenarioErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name:    "unknown kind",
			yaml:    "kind: general\ntriangle: lower\nx: [1]\ny: [1]\na: [[1]]\n",
			wantErr: errInvalidScenario,
		},
		{
			name:    "bad triangle",
			yaml:    "kind: symmetric\ntriangle: diagonal\nx: [1]\ny: [1]\na: [[1]]\n",
			wantErr: linalg.ErrBadTriangle,
		},
		{
			name:    "bad layout",
			yaml:    "kind: symmetric\ntriangle: lower\nlayout: diagonal\nx: [1]\ny: [1]\na: [[1]]\n",
			wantErr: linalg.ErrBadShape,
		},
		{
			name:    "vector lengths differ",
			yaml:    "kind: symmetric\ntriangle: lower\nx: [1, 2]\ny: [1]\na: [[1, 0], [0, 1]]\n",
			wantErr: linalg.ErrDimensionMismatch,
		},
		{
			name:    "ragged matrix",
			yaml:    "kind: symmetric\ntriangle: lower\nx: [1, 2]\ny: [1, 2]\na: [[1, 0], [0]]\n",
			wantErr: linalg.ErrDimensionMismatch,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNumberRejectsMalformed(t *testing.T) {
	for _, doc := range []string{
		"kind: symmetric\ntriangle: lower\nx: [[1, 2, 3]]\ny: [1]\na: [[1]]\n",
		"kind: symmetric\ntriangle: lower\nx: [abc]\ny: [1]\na: [[1]]\n",
		"kind: symmetric\ntriangle: lower\nx: [{re: 1}]\ny: [1]\na: [[1]]\n",
	} {
		_, err := ParseScenario([]byte(doc))
		assert.Error(t, err, doc)
	}
}

func TestLoadScenario(t *testing.T) {
	s, err := LoadScenario(filepath.Join("testdata", "symmetric.yaml"))
	require.NoError(t, err)
	assert.Len(t, s.X, 2)

	_, err = LoadScenario(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)
}
