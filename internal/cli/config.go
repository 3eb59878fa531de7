// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Exit codes returned by Run.
const (
	ExitSuccess = 0
	ExitFailure = 1 // input or solve error
	ExitUsage   = 2 // bad flags, config file or arguments
)

// EnvPrefix namespaces every environment override (LVASSIGN_MAXIMIZE, ...).
const EnvPrefix = "LVASSIGN"

// Format selects the report encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Keys shared by flags, env and config file.
const (
	keyMaximize        = "maximize"
	keyNoReduce        = "no-reduce"
	keyNoGreedy        = "no-greedy"
	keyCheckInvariants = "check-invariants"
	keyOutput          = "output"
	keyVerbose         = "verbose"
	keyConfig          = "config"
)

// Invocation is the fully resolved description of one run.
type Invocation struct {
	Input           string // file path, "-" for stdin
	Maximize        bool
	NoReduce        bool
	NoGreedy        bool
	CheckInvariants bool
	Output          Format
	Verbosity       int
}

// InvocationError carries the exit code a failed run should produce.
type InvocationError struct {
	ExitCode int
	Message  string
}

func (e *InvocationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func usageErrorf(format string, args ...any) error {
	return &InvocationError{ExitCode: ExitUsage, Message: fmt.Sprintf(format, args...)}
}

// newFlagSet declares every flag; parse errors are returned, not printed.
func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("lvassign", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.Bool(keyMaximize, false, "maximize total value instead of minimizing cost")
	fs.Bool(keyNoReduce, false, "skip row/column reduction")
	fs.Bool(keyNoGreedy, false, "skip the greedy zero-slack seed")
	fs.Bool(keyCheckInvariants, false, "verify dual feasibility and matching after every stage")
	fs.StringP(keyOutput, "o", string(FormatText), "report format: text, json or yaml")
	fs.CountP(keyVerbose, "v", "raise log verbosity (repeatable)")
	fs.String(keyConfig, "", "YAML config file with defaults for the flags above")

	return fs
}

// resolveInvocation layers LVASSIGN_* environment variables and an optional
// config file under the parsed flags in fs.
//
// Precedence: explicit flag > environment > config file > default.
func resolveInvocation(fs *pflag.FlagSet, rest []string) (Invocation, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Invocation{}, usageErrorf("bind flags: %v", err)
	}

	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Invocation{}, usageErrorf("read config %q: %v", path, err)
		}
	}

	inv := Invocation{
		Input:           "-",
		Maximize:        v.GetBool(keyMaximize),
		NoReduce:        v.GetBool(keyNoReduce),
		NoGreedy:        v.GetBool(keyNoGreedy),
		CheckInvariants: v.GetBool(keyCheckInvariants),
		Output:          Format(strings.ToLower(v.GetString(keyOutput))),
		Verbosity:       v.GetInt(keyVerbose),
	}

	switch len(rest) {
	case 0:
	case 1:
		inv.Input = rest[0]
	default:
		return Invocation{}, usageErrorf("expected at most one input file, got %d", len(rest))
	}

	switch inv.Output {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return Invocation{}, usageErrorf("unknown output format %q (want text, json or yaml)", inv.Output)
	}
	if inv.Verbosity < 0 {
		return Invocation{}, usageErrorf("verbosity must be >= 0, got %d", inv.Verbosity)
	}

	return inv, nil
}
