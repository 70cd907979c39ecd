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
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Executor describes how and where a kernel runs. Its method set decides
// which implementation dispatch picks; see SymmetricRank2Updater,
// HermitianRank2Updater and RangeScheduler.
type Executor interface {
	// Name returns a short human-readable name ("sequential", "parallel", ...).
	Name() string
}

// Sequential is the trivial executor. It always runs the reference kernels
// on the calling goroutine and is never treated as a specialization, even if
// a type embeds it.
type Sequential struct{}

// Name returns "sequential".
func (Sequential) Name() string { return "sequential" }

func (Sequential) sequential() {}

// SymmetricRank2Updater is implemented by executors that provide their own
// symmetric rank-2 update for element type T.
type SymmetricRank2Updater[T Scalar] interface {
	Executor
	SymmetricRank2Update(x, y Vector[T], a Matrix[T], tri Triangle)
}

// HermitianRank2Updater is implemented by executors that provide their own
// Hermitian rank-2 update for element type T.
type HermitianRank2Updater[T Scalar] interface {
	Executor
	HermitianRank2Update(x, y Vector[T], a Matrix[T], tri Triangle)
}

// RangeScheduler is implemented by executors that can run a loop body over
// disjoint sub-ranges of [0, n). ScheduleRange must call fn for ranges that
// exactly cover [0, n), each at least grain long except possibly the last,
// and must not return before every call has returned. A panic in fn must
// surface on the goroutine that called ScheduleRange.
type RangeScheduler interface {
	Executor
	ScheduleRange(n, grain int, fn func(lo, hi int))
}

// Mapper is implemented by executors that normalize themselves before
// dispatch, e.g. a parallel executor whose pool was closed maps to
// Sequential. A nil result leaves the executor unchanged.
type Mapper interface {
	MapExecutor() Executor
}

// mapExecutor resolves nil to the process default and applies one round of
// Mapper normalization.
func mapExecutor(e Executor) Executor {
	if e == nil {
		e = Default()
	}
	if m, ok := e.(Mapper); ok {
		if mapped := m.MapExecutor(); mapped != nil {
			return mapped
		}
	}
	return e
}

type executorBox struct {
	exec Executor
	// owned marks an executor the package created from the environment; it
	// is closed when replaced.
	owned bool
}

var (
	defaultOnce sync.Once
	defaultExec atomic.Pointer[executorBox]
)

// Default returns the process-wide default executor. On first use it is
// resolved from LINALG_EXECUTOR and LINALG_WORKERS unless SetDefault ran
// first.
func Default() Executor {
	defaultOnce.Do(func() {
		e := executorFromEnv()
		_, isPar := e.(*Parallel)
		defaultExec.Store(&executorBox{exec: e, owned: isPar})
	})
	if box := defaultExec.Load(); box != nil {
		return box.exec
	}
	return Sequential{}
}

// SetDefault replaces the process-wide default executor and returns the
// previous one. A nil e installs Sequential. If the default had not been
// resolved yet, the environment is never consulted and Sequential is
// returned as the previous value.
//
// Executors passed to SetDefault stay owned by the caller and are not
// closed. A Parallel created from LINALG_EXECUTOR is owned by the package and
// is closed here; the returned value then maps to Sequential on dispatch.
func SetDefault(e Executor) Executor {
	defaultOnce.Do(func() {})
	if e == nil {
		e = Sequential{}
	}
	prev := defaultExec.Swap(&executorBox{exec: e})
	Logger().Debug("default executor replaced", zap.String("executor", e.Name()))
	if prev == nil {
		return Sequential{}
	}
	if p, ok := prev.exec.(*Parallel); ok && prev.owned && p != e {
		p.Close()
	}
	return prev.exec
}
