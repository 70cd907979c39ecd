package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-linalg/linalg"
)

// Scenario is one rank-2 update read from YAML:
//
//	kind: hermitian        # symmetric | hermitian
//	triangle: lower        # lower | upper
//	layout: row-major      # storage of the working matrix
//	x: [1, [0, 2]]         # a number, or [re, im]
//	y: [3, 4]
//	a:                     # n rows of n entries, row by row
//	  - [0, 0]
//	  - [0, 0]
type Scenario struct {
	Kind     string     `yaml:"kind"`
	Triangle string     `yaml:"triangle"`
	Layout   string     `yaml:"layout"`
	X        []Number   `yaml:"x"`
	Y        []Number   `yaml:"y"`
	A        [][]Number `yaml:"a"`
}

// Number is a real or complex scenario entry.
type Number complex128

// UnmarshalYAML accepts a scalar or a [re, im] pair.
func (n *Number) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var f float64
		if err := node.Decode(&f); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*n = Number(complex(f, 0))
		return nil
	case yaml.SequenceNode:
		var pair []float64
		if err := node.Decode(&pair); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		if len(pair) != 2 {
			return fmt.Errorf("line %d: complex entry needs [re, im], got %d values", node.Line, len(pair))
		}
		*n = Number(complex(pair[0], pair[1]))
		return nil
	default:
		return fmt.Errorf("line %d: expected a number or [re, im]", node.Line)
	}
}

var errInvalidScenario = errors.New("invalid scenario")

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	s, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseScenario decodes and validates a YAML scenario.
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the kind, triangle, layout and extents.
func (s *Scenario) Validate() error {
	switch strings.ToLower(s.Kind) {
	case "symmetric", "hermitian":
	default:
		return fmt.Errorf("%w: kind %q (want symmetric or hermitian)", errInvalidScenario, s.Kind)
	}
	if _, err := linalg.ParseTriangle(s.Triangle); err != nil {
		return fmt.Errorf("%w: %w", errInvalidScenario, err)
	}
	if _, err := linalg.ParseLayout(s.Layout); err != nil {
		return fmt.Errorf("%w: %w", errInvalidScenario, err)
	}
	n := len(s.X)
	if len(s.Y) != n || len(s.A) != n {
		return fmt.Errorf("%w: len(x)=%d len(y)=%d rows(a)=%d: %w",
			errInvalidScenario, n, len(s.Y), len(s.A), linalg.ErrDimensionMismatch)
	}
	for i, row := range s.A {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d entries, want %d: %w",
				errInvalidScenario, i, len(row), n, linalg.ErrDimensionMismatch)
		}
	}
	return nil
}

// Hermitian reports whether the scenario asks for a Hermitian update.
func (s *Scenario) Hermitian() bool {
	return strings.EqualFold(s.Kind, "hermitian")
}

// Complex reports whether any entry has a non-zero imaginary part.
func (s *Scenario) Complex() bool {
	hasImag := func(v Number) bool { return imag(v) != 0 }
	return lo.SomeBy(s.X, hasImag) || lo.SomeBy(s.Y, hasImag) || lo.SomeBy(lo.Flatten(s.A), hasImag)
}
