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
	"go.uber.org/zap"

	"github.com/ajroetker/go-linalg/internal/workerpool"
)

// ParallelThreshold is the matrix order below which Parallel runs the update
// inline on the calling goroutine. Smaller problems finish faster than the
// cost of handing ranges to workers.
const ParallelThreshold = 64

// Parallel is an executor that splits the outer loop of the reference kernels
// across a persistent worker pool. Each range touches a disjoint set of
// matrix entries, so workers never write the same element.
//
// Usage:
//
//	par := linalg.NewParallel(runtime.GOMAXPROCS(0))
//	defer par.Close()
//
//	for _, step := range steps {
//	    linalg.SymmetricRank2UpdateWith(par, step.x, step.y, a, linalg.Lower)
//	}
type Parallel struct {
	pool *workerpool.Pool
}

// NewParallel creates a parallel executor with the given number of workers.
// If workers <= 0, uses GOMAXPROCS.
func NewParallel(workers int) *Parallel {
	p := &Parallel{pool: workerpool.New(workers)}
	Logger().Debug("parallel executor started", zap.Int("workers", p.pool.NumWorkers()))
	return p
}

// Name returns "parallel".
func (p *Parallel) Name() string { return "parallel" }

// Workers returns the number of pool workers, or 0 for a nil executor.
func (p *Parallel) Workers() int {
	if p == nil || p.pool == nil {
		return 0
	}
	return p.pool.NumWorkers()
}

// Close stops the pool workers. Updates dispatched afterwards run
// sequentially. Calling Close multiple times is safe.
func (p *Parallel) Close() {
	if p == nil || p.pool == nil {
		return
	}
	if !p.pool.Closed() {
		Logger().Debug("parallel executor closed", zap.Int("workers", p.pool.NumWorkers()))
	}
	p.pool.Close()
}

// MapExecutor maps a nil, closed or single-worker Parallel to Sequential.
func (p *Parallel) MapExecutor() Executor {
	if p == nil || p.pool == nil || p.pool.Closed() || p.pool.NumWorkers() < 2 {
		return Sequential{}
	}
	return p
}

// ScheduleRange implements RangeScheduler.
func (p *Parallel) ScheduleRange(n, grain int, fn func(lo, hi int)) {
	if n < ParallelThreshold {
		fn(0, n)
		return
	}
	// Aim for several ranges per worker so work stealing can even out the
	// triangular cost profile.
	grain = max(grain, n/(4*p.pool.NumWorkers()))
	p.pool.ForRange(n, grain, fn)
}
