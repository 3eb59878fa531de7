// SPDX-License-Identifier: MIT

package cli

import (
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a console zap logger on w and exposes it as logr.
// logr V(n) maps to zap level -n, so verbosity v enables V(0)..V(v).
// The returned func flushes buffered entries.
func newLogger(w io.Writer, verbosity int) (logr.Logger, func()) {
	verbosity = min(verbosity, 127) // zapcore.Level is an int8
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = "" // stable output for diffs and tests

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(zapcore.Level(-verbosity)),
	)
	zl := zap.New(core)

	return zapr.NewLogger(zl), func() { _ = zl.Sync() }
}
