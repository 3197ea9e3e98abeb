// Package logger wraps a zap SugaredLogger behind a small interface so that
// packages can be handed a logger without depending on zap directly.
//
// Tests should use [Test]; [New] is for actual runtime.
package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

type Logger interface {
	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)

	Infof(format string, values ...any)
	Warnf(format string, values ...any)
	Errorf(format string, values ...any)

	// Sync flushes any buffered log entries.
	Sync() error
}

// New returns a production Logger at the given level.
func New(lvl zapcore.Level) (Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level.SetLevel(lvl)
	core, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &logger{core.Sugar()}, nil
}

// Test returns a Logger that writes through tb.
func Test(tb testing.TB) Logger {
	tb.Helper()
	return &logger{zaptest.NewLogger(tb).Sugar()}
}

// Nop returns a no-op Logger.
func Nop() Logger {
	return &logger{zap.New(zapcore.NewNopCore()).Sugar()}
}

type logger struct {
	*zap.SugaredLogger
}
