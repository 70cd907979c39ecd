// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for splitting a loop
// over disjoint index ranges. A Pool is created once and reused across many
// kernel calls, so no goroutines are spawned per call.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ForRange(n, 8, func(lo, hi int) {
//	    updateColumns(lo, hi)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation and
// exit when the pool is closed.
type Pool struct {
	numWorkers int
	workC      chan workItem

	// mu is held for reading while a call submits work and for writing by
	// Close, so work is never sent on a closed channel.
	mu        sync.RWMutex
	closeOnce sync.Once
	closed    atomic.Bool
}

// workItem is one worker's share of a ForRange call.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers. If numWorkers <= 0, uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Closed reports whether Close has been called.
func (p *Pool) Closed() bool {
	return p.closed.Load()
}

// Close stops the workers once in-flight calls have finished submitting.
// Calling Close multiple times is safe. Calls made after Close run inline.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.closed.Store(true)
		close(p.workC)
	})
}

// ForRange calls fn over ranges that exactly cover [0, n). Ranges are grain
// indices long (the last may be shorter) and are handed to workers by atomic
// work stealing, which balances triangular workloads where the cost per index
// varies. ForRange blocks until every range has run.
//
// If fn panics, the first panic value is re-raised on the calling goroutine
// after all workers have finished.
func (p *Pool) ForRange(n, grain int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if grain <= 0 {
		grain = 1
	}

	numBatches := (n + grain - 1) / grain
	workers := min(p.numWorkers, numBatches)
	if workers <= 1 {
		fn(0, n)
		return
	}

	p.mu.RLock()
	if p.closed.Load() {
		p.mu.RUnlock()
		fn(0, n)
		return
	}

	var (
		nextBatch atomic.Int64
		wg        sync.WaitGroup
		failure   atomic.Pointer[panicValue]
	)
	wg.Add(workers)
	for range workers {
		p.workC <- workItem{
			fn: func() {
				defer func() {
					if r := recover(); r != nil {
						failure.CompareAndSwap(nil, &panicValue{value: r})
					}
				}()
				for failure.Load() == nil {
					batch := int(nextBatch.Add(1)) - 1
					lo := batch * grain
					if lo >= n {
						return
					}
					fn(lo, min(lo+grain, n))
				}
			},
			barrier: &wg,
		}
	}
	p.mu.RUnlock()

	wg.Wait()
	if pv := failure.Load(); pv != nil {
		panic(pv.value)
	}
}

type panicValue struct {
	value any
}
