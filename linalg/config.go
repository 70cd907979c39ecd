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
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const (
	// EnvExecutor names the environment variable selecting the default
	// executor: "sequential" (the default) or "parallel".
	EnvExecutor = "LINALG_EXECUTOR"

	// EnvWorkers names the environment variable holding the worker count of
	// an environment-selected parallel executor. Unset or <= 0 means
	// GOMAXPROCS.
	EnvWorkers = "LINALG_WORKERS"
)

// WorkersEnv returns the worker count configured by LINALG_WORKERS, or 0 if
// it is unset or not an integer.
func WorkersEnv() int {
	val := strings.TrimSpace(os.Getenv(EnvWorkers))
	if val == "" {
		return 0
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		Logger().Warn("ignoring malformed worker count", zap.String("env", EnvWorkers), zap.String("value", val))
		return 0
	}
	return n
}

// ExecutorByName builds one of the built-in executors: "sequential"/"seq" or
// "parallel"/"par". Parallel executors use the given worker count (<= 0 means
// GOMAXPROCS) and must be closed by the caller.
func ExecutorByName(name string, workers int) (Executor, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "sequential", "seq":
		return Sequential{}, true
	case "parallel", "par":
		return NewParallel(workers), true
	default:
		return nil, false
	}
}

// executorFromEnv resolves the initial process default.
func executorFromEnv() Executor {
	name := os.Getenv(EnvExecutor)
	e, ok := ExecutorByName(name, WorkersEnv())
	if !ok {
		Logger().Warn("unknown executor, using sequential",
			zap.String("env", EnvExecutor), zap.String("value", name))
		return Sequential{}
	}
	Logger().Info("default executor resolved", zap.String("executor", e.Name()))
	return e
}
