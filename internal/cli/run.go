// SPDX-License-Identifier: MIT

// Package cli implements the lvassign command: parse an invocation, load a
// cost matrix, solve it with hungarian and print a labelled report.
//
// Everything is driven through Run so that tests can pass their own
// arguments and streams; cmd/lvassign only wires the process to it.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvassign/hungarian"
)

func failuref(format string, args ...any) error {
	return &InvocationError{ExitCode: ExitFailure, Message: fmt.Sprintf(format, args...)}
}

// NewCommand builds the root command bound to the given streams.
func NewCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lvassign [flags] [FILE]",
		Short: "Solve a rectangular assignment problem",
		Long: "Reads a cost matrix (YAML or JSON) from FILE or stdin and prints the\n" +
			"optimal worker-to-job assignment.\n\n" +
			"Every flag can also be set through " + EnvPrefix + "_<FLAG> (dashes become\n" +
			"underscores) or a --config YAML file.",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				return usageErrorf("expected at most one input file, got %d", len(args))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := resolveInvocation(cmd.Flags(), args)
			if err != nil {
				return err
			}
			return execute(inv, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().SortFlags = false
	cmd.Flags().AddFlagSet(newFlagSet())
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageErrorf("%v", err)
	})

	return cmd
}

// Run executes one invocation and returns the process exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{} // nil makes cobra fall back to os.Args
	}
	cmd := NewCommand(stdin, stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintf(stderr, "lvassign: %v\n", err)

	var invErr *InvocationError
	if errors.As(err, &invErr) {
		return invErr.ExitCode
	}

	return ExitFailure
}

// execute loads the problem, solves it and writes the report.
func execute(inv Invocation, stdin io.Reader, stdout, stderr io.Writer) error {
	log, flush := newLogger(stderr, inv.Verbosity)
	defer flush()

	p, err := loadProblem(inv.Input, stdin)
	if err != nil {
		return failuref("%v", err)
	}
	log.V(1).Info("problem loaded", "input", inv.Input, "rows", p.Rows(), "cols", p.Cols())

	res, err := hungarian.SolveSlices(p.Costs, solverOptions(inv, log)...)
	if err != nil {
		return failuref("solve: %v", err)
	}

	if err = WriteReport(stdout, inv.Output, NewReport(p, res, inv.Maximize)); err != nil {
		return failuref("write report: %v", err)
	}

	return nil
}

// solverOptions translates the invocation into hungarian options.
func solverOptions(inv Invocation, log logr.Logger) []hungarian.Option {
	opts := []hungarian.Option{hungarian.WithLogger(log)}
	if inv.Maximize {
		opts = append(opts, hungarian.WithMaximize())
	}
	if inv.NoReduce {
		opts = append(opts, hungarian.WithoutReduction())
	}
	if inv.NoGreedy {
		opts = append(opts, hungarian.WithoutGreedySeed())
	}
	if inv.CheckInvariants {
		opts = append(opts, hungarian.WithInvariantChecks())
	}

	return opts
}
