package main

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/ajroetker/go-linalg/linalg"
	"github.com/ajroetker/go-linalg/linalg/gonumblas"
)

// executorNames lists the names accepted by --executor.
var executorNames = []string{"sequential", "parallel", "gonum", "default"}

// parseExecutorList splits a comma-separated --executor value, dropping
// blanks and duplicates.
func parseExecutorList(s string) ([]string, error) {
	names := lo.Uniq(lo.Filter(
		lo.Map(strings.Split(s, ","), func(n string, _ int) string { return strings.ToLower(strings.TrimSpace(n)) }),
		func(n string, _ int) bool { return n != "" },
	))
	if len(names) == 0 {
		return nil, fmt.Errorf("no executor given (want one of %s)", strings.Join(executorNames, ", "))
	}
	if unknown := lo.Without(names, executorNames...); len(unknown) > 0 {
		return nil, fmt.Errorf("unknown executor %q (want one of %s)", unknown[0], strings.Join(executorNames, ", "))
	}
	return names, nil
}

// executorFor builds the named executor for element type T. The returned
// release func must be called when the executor is no longer needed.
func executorFor[T linalg.Scalar](name string, workers int) (linalg.Executor, func(), error) {
	noop := func() {}
	switch name {
	case "default":
		return linalg.Default(), noop, nil
	case "gonum":
		var zero T
		switch any(zero).(type) {
		case float64:
			return gonumblas.Float64{}, noop, nil
		case float32:
			return gonumblas.Float32{}, noop, nil
		case complex128:
			return gonumblas.Complex128{}, noop, nil
		case complex64:
			return gonumblas.Complex64{}, noop, nil
		}
		return nil, nil, fmt.Errorf("gonum executor: unsupported element type %T", zero)
	}

	e, ok := linalg.ExecutorByName(name, workers)
	if !ok {
		return nil, nil, fmt.Errorf("unknown executor %q", name)
	}
	if p, isPar := e.(*linalg.Parallel); isPar {
		return p, p.Close, nil
	}
	return e, noop, nil
}
