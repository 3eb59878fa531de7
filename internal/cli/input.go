// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Input errors. All map to ExitFailure.
var (
	ErrEmptyDocument = errors.New("cli: empty problem document")
	ErrBadDocument   = errors.New("cli: problem must be a mapping or a list of rows")
	ErrLabelCount    = errors.New("cli: label count does not match the matrix")
)

// Problem is the decoded input document.
// JSON is accepted as well, since every JSON document is valid YAML.
type Problem struct {
	Workers []string    `yaml:"workers,omitempty"`
	Jobs    []string    `yaml:"jobs,omitempty"`
	Costs   [][]float64 `yaml:"costs"`
}

// Rows and Cols report the matrix shape; Cols is 0 for an empty matrix.
func (p Problem) Rows() int { return len(p.Costs) }

func (p Problem) Cols() int {
	if len(p.Costs) == 0 {
		return 0
	}
	return len(p.Costs[0])
}

// WorkerLabel returns the configured label for worker w or "w<index>".
func (p Problem) WorkerLabel(w int) string {
	if w < len(p.Workers) {
		return p.Workers[w]
	}
	return fmt.Sprintf("w%d", w)
}

// JobLabel returns the configured label for job j or "j<index>".
func (p Problem) JobLabel(j int) string {
	if j < len(p.Jobs) {
		return p.Jobs[j]
	}
	return fmt.Sprintf("j%d", j)
}

// ParseProblem decodes a problem document. A top-level sequence is taken as
// the cost matrix itself; a mapping must carry a costs key. Matrix shape and
// finiteness are left to the solver.
func ParseProblem(data []byte) (Problem, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Problem{}, fmt.Errorf("decode problem: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return Problem{}, ErrEmptyDocument
	}

	var p Problem
	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&p.Costs); err != nil {
			return Problem{}, fmt.Errorf("decode costs: %w", err)
		}
	case yaml.MappingNode:
		if err := root.Decode(&p); err != nil {
			return Problem{}, fmt.Errorf("decode problem: %w", err)
		}
	default:
		return Problem{}, fmt.Errorf("%w (line %d)", ErrBadDocument, root.Line)
	}

	if len(p.Workers) != 0 && len(p.Workers) != p.Rows() {
		return Problem{}, fmt.Errorf("%w: %d workers for %d rows", ErrLabelCount, len(p.Workers), p.Rows())
	}
	if len(p.Jobs) != 0 && len(p.Jobs) != p.Cols() {
		return Problem{}, fmt.Errorf("%w: %d jobs for %d columns", ErrLabelCount, len(p.Jobs), p.Cols())
	}

	return p, nil
}

// loadProblem reads path ("-" meaning stdin) and decodes it.
func loadProblem(path string, stdin io.Reader) (Problem, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return Problem{}, fmt.Errorf("read %s: %w", path, err)
	}

	return ParseProblem(data)
}
