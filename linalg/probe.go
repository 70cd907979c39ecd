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
	"unsafe"

	"golang.org/x/sys/cpu"
)

// isSequential reports whether e is the trivial executor. Sequential must
// never be mistaken for a specialization, or a specialization that falls
// back with Sequential{} would dispatch to itself.
func isSequential(e Executor) bool {
	_, ok := e.(interface{ sequential() })
	return ok
}

// customSymmetric returns e's symmetric specialization for T, if any.
func customSymmetric[T Scalar](e Executor) (SymmetricRank2Updater[T], bool) {
	if isSequential(e) {
		return nil, false
	}
	u, ok := e.(SymmetricRank2Updater[T])
	return u, ok
}

// customHermitian returns e's Hermitian specialization for T, if any.
func customHermitian[T Scalar](e Executor) (HermitianRank2Updater[T], bool) {
	if isSequential(e) {
		return nil, false
	}
	u, ok := e.(HermitianRank2Updater[T])
	return u, ok
}

// resolveSymmetric finds the symmetric specialization for T, probing exec
// before and after Mapper normalization. A type that embeds a Mapper keeps
// its own specialization. Without one it returns the normalized executor.
func resolveSymmetric[T Scalar](exec Executor) (SymmetricRank2Updater[T], Executor) {
	if exec == nil {
		exec = Default()
	}
	if u, ok := customSymmetric[T](exec); ok {
		return u, exec
	}
	exec = mapExecutor(exec)
	u, _ := customSymmetric[T](exec)
	return u, exec
}

// resolveHermitian is resolveSymmetric for HermitianRank2Updater.
func resolveHermitian[T Scalar](exec Executor) (HermitianRank2Updater[T], Executor) {
	if exec == nil {
		exec = Default()
	}
	if u, ok := customHermitian[T](exec); ok {
		return u, exec
	}
	exec = mapExecutor(exec)
	u, _ := customHermitian[T](exec)
	return u, exec
}

// rangeScheduler returns e as a RangeScheduler, if it is one.
func rangeScheduler(e Executor) (RangeScheduler, bool) {
	if isSequential(e) {
		return nil, false
	}
	s, ok := e.(RangeScheduler)
	return s, ok
}

// cacheLineElems returns how many T fit in one CPU cache line. It is the
// smallest range handed to a RangeScheduler, which keeps workers from
// interleaving writes within a line when the outer index walks a row.
func cacheLineElems[T Scalar]() int {
	var zero T
	return max(1, int(unsafe.Sizeof(cpu.CacheLinePad{}))/int(unsafe.Sizeof(zero)))
}
