package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-linalg/linalg"
	"github.com/ajroetker/go-linalg/linalg/gonumblas"
)

func TestParseExecutorList(t *testing.T) {
	tests := []struct {
		in      string
		want    []string
		wantErr bool
	}{
		{in: "sequential", want: []string{"sequential"}},
		{in: " Parallel , gonum,,parallel", want: []string{"parallel", "gonum"}},
		{in: "default", want: []string{"default"}},
		{in: "", wantErr: true},
		{in: " , ", wantErr: true},
		{in: "sequential,cuda", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseExecutorList(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExecutorFor(t *testing.T) {
	e, release, err := executorFor[float64]("gonum", 0)
	require.NoError(t, err)
	release()
	assert.Equal(t, gonumblas.Float64{}, e)

	e, release, err = executorFor[complex128]("gonum", 0)
	require.NoError(t, err)
	release()
	assert.Equal(t, gonumblas.Complex128{}, e)

	e, release, err = executorFor[float64]("parallel", 2)
	require.NoError(t, err)
	p, ok := e.(*linalg.Parallel)
	require.True(t, ok)
	assert.Equal(t, 2, p.Workers())
	release()
	assert.Equal(t, linalg.Sequential{}, p.MapExecutor())

	_, _, err = executorFor[float64]("cuda", 0)
	assert.Error(t, err)
}

func TestRunBench(t *testing.T) {
	results, err := runBench([]string{"sequential", "gonum"}, 8, 2, false, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "sequential", results[0].executor)
	assert.Equal(t, "gonum-float64", results[1].executor)

	var out bytes.Buffer
	require.NoError(t, writeBench(&out, results))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "EXECUTOR"))
}

func TestInfoCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"info"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "GOMAXPROCS:")
	assert.Contains(t, out.String(), linalg.EnvExecutor)
	assert.NotEmpty(t, cpuFeatures())
}
