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

// Command rank2 applies and benchmarks symmetric and Hermitian rank-2 updates.
//
// Usage:
//
//	rank2 info
//	rank2 apply -f scenario.yaml --executor parallel
//	rank2 bench --n 1024 --iters 20 --executor sequential,parallel,gonum
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ajroetker/go-linalg/linalg"
)

var (
	verbose bool
	workers int

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "rank2",
	Short: "Symmetric and Hermitian rank-2 matrix updates",
	Long: `rank2 drives the go-linalg rank-2 update kernels.

Executors:
  sequential  reference loop on the calling goroutine
  parallel    reference loop split across a worker pool
  gonum       gonum BLAS (Dsyr2/Zher2); unsupported cases use the reference loop
  default     whatever LINALG_EXECUTOR selects`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config = zap.NewDevelopmentConfig()
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		linalg.SetLogger(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", linalg.WorkersEnv(),
		"Workers for the parallel executor (default: "+linalg.EnvWorkers+" or GOMAXPROCS)")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(benchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
