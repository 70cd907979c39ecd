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

// Package linalg provides symmetric and Hermitian rank-2 update kernels with
// pluggable execution.
//
// # Rank-2 Updates
//
// The package updates one triangle of a square matrix in place:
//   - SymmetricRank2Update: A += x*yᵀ + y*xᵀ
//   - HermitianRank2Update: A += x*yᴴ + y*xᴴ, diagonal forced to real
//
// Only the triangle selected by Lower or Upper is read or written; the other
// triangle is implied by symmetry and left untouched.
//
// # Executors
//
// Every operation comes in two shapes:
//
//	linalg.SymmetricRank2Update(x, y, a, linalg.Lower)                    // process default
//	linalg.SymmetricRank2UpdateWith(linalg.Sequential{}, x, y, a, linalg.Lower) // explicit
//
// The explicit form accepts any Executor. Dispatch checks, in order:
//  1. whether the executor implements SymmetricRank2Updater[T] (or
//     HermitianRank2Updater[T]) for the exact element type, and forwards to it;
//  2. whether it implements RangeScheduler, and runs the reference loop over
//     the ranges it schedules;
//  3. otherwise the sequential reference loop runs.
//
// Sequential{} always resolves to the reference loop, so a specialized
// implementation may itself call back with Sequential{} without recursing.
//
// # Example Usage
//
//	x := linalg.VectorOf([]float64{1, 2})
//	y := linalg.VectorOf([]float64{3, 4})
//	a := linalg.RowMajorOf(make([]float64, 4), 2, 2)
//
//	linalg.SymmetricRank2Update(x, y, a, linalg.Lower)
//	// a = [[6 0]
//	//      [10 16]]
//
// # Configuration
//
// The process default executor is read once from LINALG_EXECUTOR
// ("sequential" or "parallel") and LINALG_WORKERS, and can be replaced at any
// time with SetDefault.
package linalg
