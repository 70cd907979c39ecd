package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-linalg/linalg"
)

var (
	applyFile     string
	applyExecutor string
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply one rank-2 update described by a YAML scenario",
	Long: `Apply loads a scenario file, runs the update once with the chosen
executor and prints the resulting matrix row by row.

Scenarios with any complex entry run on complex128, otherwise on float64.`,
	Example: `  rank2 apply -f testdata/hermitian.yaml
  rank2 apply -f testdata/symmetric.yaml --executor gonum`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := parseExecutorList(applyExecutor)
		if err != nil {
			return err
		}
		if len(names) != 1 {
			return fmt.Errorf("apply takes a single executor, got %d", len(names))
		}
		s, err := LoadScenario(applyFile)
		if err != nil {
			return err
		}
		return runScenario(cmd.OutOrStdout(), s, names[0], workers)
	},
}

func init() {
	applyCmd.Flags().StringVarP(&applyFile, "file", "f", "", "Scenario YAML file")
	applyCmd.Flags().StringVarP(&applyExecutor, "executor", "e", "sequential",
		"Executor: "+strings.Join(executorNames, ", "))
	_ = applyCmd.MarkFlagRequired("file")
}

// runScenario applies s with the named executor and writes the matrix to w.
func runScenario(w io.Writer, s *Scenario, executor string, workers int) error {
	if s.Complex() {
		return applyAs[complex128](w, s, executor, workers)
	}
	return applyAs[float64](w, s, executor, workers)
}

func applyAs[T float64 | complex128](w io.Writer, s *Scenario, executor string, workers int) error {
	tri, err := linalg.ParseTriangle(s.Triangle)
	if err != nil {
		return err
	}
	layout, err := linalg.ParseLayout(s.Layout)
	if err != nil {
		return err
	}
	exec, release, err := executorFor[T](executor, workers)
	if err != nil {
		return err
	}
	defer release()

	n := len(s.X)
	x := lo.Map(s.X, func(v Number, _ int) T { return fromNumber[T](v) })
	y := lo.Map(s.Y, func(v Number, _ int) T { return fromNumber[T](v) })
	a, err := linalg.NewMatrix(make([]T, n*n), n, n, max(n, 1), layout)
	if err != nil {
		return err
	}
	for i, row := range s.A {
		for j, v := range row {
			a.Set(i, j, fromNumber[T](v))
		}
	}

	logger.Debug("applying scenario",
		zap.String("kind", strings.ToLower(s.Kind)),
		zap.Stringer("triangle", tri),
		zap.Stringer("layout", layout),
		zap.Int("n", n),
		zap.String("executor", exec.Name()))

	if s.Hermitian() {
		linalg.HermitianRank2UpdateWith(exec, linalg.VectorOf(x), linalg.VectorOf(y), a, tri)
	} else {
		linalg.SymmetricRank2UpdateWith(exec, linalg.VectorOf(x), linalg.VectorOf(y), a, tri)
	}
	return writeMatrix(w, a)
}

func writeMatrix[T float64 | complex128](w io.Writer, a linalg.Matrix[T]) error {
	for i := range a.Rows() {
		cells := lo.Times(a.Cols(), func(j int) string { return formatEntry(a.At(i, j)) })
		if _, err := fmt.Fprintln(w, strings.Join(cells, " ")); err != nil {
			return err
		}
	}
	return nil
}

func formatEntry[T float64 | complex128](v T) string {
	switch v := any(v).(type) {
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case complex128:
		return strconv.FormatComplex(v, 'g', -1, 128)
	}
	return fmt.Sprint(v)
}

func fromNumber[T float64 | complex128](v Number) T {
	var out T
	switch p := any(&out).(type) {
	case *float64:
		*p = real(v)
	case *complex128:
		*p = complex128(v)
	}
	return out
}
