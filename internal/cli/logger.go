package cli

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// hookLogger wraps zap for verbose debugging with a per-invocation id, so
// overlapping hook runs from concurrent sessions can be told apart in a
// shared stderr capture.
type hookLogger struct {
	sugared      *zap.SugaredLogger
	invocationID string
}

func newHookLogger(verbose bool) *hookLogger {
	if !verbose {
		return &hookLogger{}
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.Encoding = "json"
	// stdout carries the hook directive; logs may only go to stderr.
	cfg.OutputPaths = []string{"stderr"}
	logger, _ := cfg.Build()
	return &hookLogger{
		sugared:      logger.Sugar(),
		invocationID: uuid.NewString(),
	}
}

func (l *hookLogger) Debug(format string, args ...interface{}) {
	if l == nil || l.sugared == nil {
		return
	}
	l.sugared.With("invocation_id", l.invocationID).Debugf(format, args...)
}

// Sugared exposes the underlying logger for components that take one
// directly. Nil when verbose logging is off.
func (l *hookLogger) Sugared() *zap.SugaredLogger {
	if l == nil || l.sugared == nil {
		return nil
	}
	return l.sugared.With("invocation_id", l.invocationID)
}
