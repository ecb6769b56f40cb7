package testutil

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// ObserveLogger points *target at an in-memory logger for the duration of
// the test and returns the captured entries.
func ObserveLogger(t testing.TB, target **zap.Logger) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	old := *target
	*target = zap.New(core)
	t.Cleanup(func() { *target = old })
	return logs
}
