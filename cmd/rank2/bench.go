package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-linalg/linalg"
)

var (
	benchN        int
	benchIters    int
	benchKind     string
	benchExecutor string
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time rank-2 updates on an n×n float64 matrix for each executor",
	Example: `  rank2 bench --n 2048 --iters 10
  rank2 bench --kind hermitian --executor parallel,gonum -w 8`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := parseExecutorList(benchExecutor)
		if err != nil {
			return err
		}
		if benchN < 1 || benchIters < 1 {
			return fmt.Errorf("--n and --iters must be positive (got %d, %d)", benchN, benchIters)
		}
		var hermitian bool
		switch strings.ToLower(benchKind) {
		case "symmetric":
		case "hermitian":
			hermitian = true
		default:
			return fmt.Errorf("unknown kind %q (want symmetric or hermitian)", benchKind)
		}
		results, err := runBench(names, benchN, benchIters, hermitian, workers)
		if err != nil {
			return err
		}
		return writeBench(cmd.OutOrStdout(), results)
	},
}

func init() {
	benchCmd.Flags().IntVar(&benchN, "n", 512, "Matrix order")
	benchCmd.Flags().IntVar(&benchIters, "iters", 10, "Updates per executor")
	benchCmd.Flags().StringVar(&benchKind, "kind", "symmetric", "Update kind: symmetric or hermitian")
	benchCmd.Flags().StringVarP(&benchExecutor, "executor", "e", "sequential,parallel,gonum",
		"Comma-separated executors to time")
}

type benchResult struct {
	executor string
	iters    int
	elapsed  time.Duration
	n        int
}

func (r benchResult) perOp() time.Duration {
	return r.elapsed / time.Duration(r.iters)
}

// gflops counts the 4 flops per updated element of one triangle.
func (r benchResult) gflops() float64 {
	flops := 4 * float64(r.n) * float64(r.n+1) / 2 * float64(r.iters)
	return flops / r.elapsed.Seconds() / 1e9
}

func runBench(names []string, n, iters int, hermitian bool, workers int) ([]benchResult, error) {
	rng := rand.New(rand.NewPCG(1, uint64(n)))
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = rng.Float64()
		y[i] = rng.Float64()
	}
	xv, yv := linalg.VectorOf(x), linalg.VectorOf(y)

	results := make([]benchResult, 0, len(names))
	for _, name := range names {
		exec, release, err := executorFor[float64](name, workers)
		if err != nil {
			return nil, err
		}
		a := linalg.RowMajorOf(make([]float64, n*n), n, n)
		update := func() {
			if hermitian {
				linalg.HermitianRank2UpdateWith(exec, xv, yv, a, linalg.Lower)
			} else {
				linalg.SymmetricRank2UpdateWith(exec, xv, yv, a, linalg.Lower)
			}
		}
		update() // warm up the pool and caches

		start := time.Now()
		for range iters {
			update()
		}
		r := benchResult{executor: exec.Name(), iters: iters, elapsed: time.Since(start), n: n}
		release()

		logger.Debug("bench finished",
			zap.String("executor", r.executor),
			zap.Int("n", n),
			zap.Duration("per_op", r.perOp()))
		results = append(results, r)
	}
	return results, nil
}

func writeBench(w io.Writer, results []benchResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "EXECUTOR\tN\tITERS\tPER OP\tGFLOP/S")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%v\t%.2f\n", r.executor, r.n, r.iters, r.perOp(), r.gflops())
	}
	return tw.Flush()
}
