// Package logging builds the zap logger shared by the CLI commands.
package logging

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a development logger writing debug output to stderr when verbose is set,
// and a no-op logger otherwise.
func New(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// Invocation tags log entries belonging to one drill call
type Invocation struct {
	ID       string
	Function string
	started  time.Time
	logger   *zap.Logger
}

// StartInvocation logs the start of a drill call and returns a handle to finish it.
func StartInvocation(logger *zap.Logger, function string, args []string) *Invocation {
	inv := &Invocation{
		ID:       uuid.New().String(),
		Function: function,
		started:  time.Now(),
	}
	inv.logger = logger.With(zap.String("run_id", inv.ID), zap.String("function", function))
	inv.logger.Debug("invoking drill", zap.Strings("args", args))
	return inv
}

// Finish logs the outcome and the elapsed time.
func (inv *Invocation) Finish(err error) {
	elapsed := zap.Duration("elapsed", time.Since(inv.started))
	if err != nil {
		inv.logger.Debug("drill rejected input", elapsed, zap.Error(err))
		return
	}
	inv.logger.Debug("drill finished", elapsed)
}
