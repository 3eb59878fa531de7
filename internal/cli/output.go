// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvassign/hungarian"
)

// Assignment is one worker's line in the report.
// JobIndex is nil when the worker stays unassigned.
type Assignment struct {
	Worker   string  `json:"worker" yaml:"worker"`
	Job      string  `json:"job,omitempty" yaml:"job,omitempty"`
	JobIndex *int    `json:"jobIndex" yaml:"jobIndex"`
	Cost     float64 `json:"cost" yaml:"cost"`
}

// Report is the encoded outcome of one solve.
type Report struct {
	Objective   string       `json:"objective" yaml:"objective"`
	Assignments []Assignment `json:"assignments" yaml:"assignments"`
	UnusedJobs  []string     `json:"unusedJobs,omitempty" yaml:"unusedJobs,omitempty"`
	TotalCost   float64      `json:"totalCost" yaml:"totalCost"`
	Phases      int          `json:"phases" yaml:"phases"`
}

// NewReport labels res with the names from p.
func NewReport(p Problem, res hungarian.Result, maximize bool) Report {
	r := Report{
		Objective:   "min",
		Assignments: make([]Assignment, len(res.Jobs)),
		TotalCost:   res.Cost,
		Phases:      res.Phases,
	}
	if maximize {
		r.Objective = "max"
	}
	for w := range res.Jobs {
		a := Assignment{Worker: p.WorkerLabel(w)}
		if j, ok := res.Job(w); ok {
			idx := j
			a.Job = p.JobLabel(j)
			a.JobIndex = &idx
			a.Cost = p.Costs[w][j]
		}
		r.Assignments[w] = a
	}
	for _, j := range res.UnusedJobs(p.Cols()) {
		r.UnusedJobs = append(r.UnusedJobs, p.JobLabel(j))
	}

	return r
}

// WriteReport encodes r to w in the requested format.
func WriteReport(w io.Writer, f Format, r Report) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatText:
		return writeText(w, r)
	default:
		return fmt.Errorf("cli: unknown format %q", f)
	}
}

// writeText prints one "worker -> job (cost c)" line per worker, then totals.
func writeText(w io.Writer, r Report) error {
	var err error
	for _, a := range r.Assignments {
		if a.JobIndex == nil {
			_, err = fmt.Fprintf(w, "%s -> unassigned\n", a.Worker)
		} else {
			_, err = fmt.Fprintf(w, "%s -> %s (cost %s)\n", a.Worker, a.Job, formatFloat(a.Cost))
		}
		if err != nil {
			return err
		}
	}
	for _, j := range r.UnusedJobs {
		if _, err = fmt.Fprintf(w, "unused job: %s\n", j); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "total %s: %s\n", objectiveNoun(r.Objective), formatFloat(r.TotalCost))

	return err
}

func objectiveNoun(objective string) string {
	if objective == "max" {
		return "value"
	}
	return "cost"
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
