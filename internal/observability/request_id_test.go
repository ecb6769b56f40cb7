package observability

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestNewRequestIDReturnsUUID(t *testing.T) {
	id := NewRequestID()
	if id == "" {
		t.Fatal("expected non-empty request id")
	}

	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected valid UUID, got %q: %v", id, err)
	}
}

func TestRequestIDContextRoundTrip(t *testing.T) {
	ctx := context.Background()
	want := "abc-123"

	ctx = ContextWithRequestID(ctx, want)
	got := RequestIDFromContext(ctx)

	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRequestIDFromContextWhenMissingOrWrongType(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		got := RequestIDFromContext(context.Background())
		if got != "" {
			t.Fatalf("expected empty string, got %q", got)
		}
	})

	t.Run("wrong type", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), RequestIDKey, 42)
		got := RequestIDFromContext(ctx)
		if got != "" {
			t.Fatalf("expected empty string, got %q", got)
		}
	})
}

func TestEnsureRequestID(t *testing.T) {
	t.Run("keeps existing", func(t *testing.T) {
		ctx := ContextWithRequestID(context.Background(), "req-7")
		got, id := EnsureRequestID(ctx)
		if id != "req-7" {
			t.Fatalf("expected %q, got %q", "req-7", id)
		}
		if got != ctx {
			t.Fatal("expected context to be returned unchanged")
		}
	})

	t.Run("generates when missing", func(t *testing.T) {
		ctx, id := EnsureRequestID(context.Background())
		if _, err := uuid.Parse(id); err != nil {
			t.Fatalf("expected valid UUID, got %q: %v", id, err)
		}
		if RequestIDFromContext(ctx) != id {
			t.Fatalf("expected context to carry %q", id)
		}
	})
}
