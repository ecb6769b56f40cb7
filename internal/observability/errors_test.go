package observability

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRecordErrorLogsWithOperationAndRequestID(t *testing.T) {
	ctx := ContextWithRequestID(context.Background(), "req-1")
	span := trace.SpanFromContext(ctx)
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	counter, err := otel.Meter("test").Int64Counter("test.errors.total")
	if err != nil {
		t.Fatalf("creating counter: %v", err)
	}

	RecordError(
		ctx,
		span,
		logger,
		counter,
		"divide",
		"calculation failed",
		errors.New("Division by zero is not allowed"),
		zap.Float64("a", 10),
	)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}

	entry := entries[0]
	if entry.Level != zapcore.ErrorLevel {
		t.Fatalf("expected level %s, got %s", zapcore.ErrorLevel, entry.Level)
	}
	if entry.Message != "calculation failed" {
		t.Fatalf("expected message %q, got %q", "calculation failed", entry.Message)
	}

	fields := entry.ContextMap()
	if fields["operation"] != "divide" {
		t.Fatalf("expected operation %q, got %#v", "divide", fields["operation"])
	}
	if fields["request_id"] != "req-1" {
		t.Fatalf("expected request_id %q, got %#v", "req-1", fields["request_id"])
	}
	if fields["error"] != "Division by zero is not allowed" {
		t.Fatalf("expected error field, got %#v", fields["error"])
	}
	if fields["a"] != float64(10) {
		t.Fatalf("expected extra field a=10, got %#v", fields["a"])
	}
}
