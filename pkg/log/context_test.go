package log_test

import (
	"context"
	"testing"

	"code-refactor-insight/pkg/log"
)

func TestTraceID(t *testing.T) {
	ctx := context.Background()
	if got := log.TraceIDFromContext(ctx); got != "" {
		t.Errorf("expected empty trace id, got %q", got)
	}

	ctx = log.WithTraceID(ctx, "abc-123")
	if got := log.TraceIDFromContext(ctx); got != "abc-123" {
		t.Errorf("expected abc-123, got %q", got)
	}

	// Logging with and without a trace id must not panic.
	l := log.Init(log.ZapConfig{Level: "debug", Mode: "debug", Encoding: "json"})
	l.Infof(ctx, "hello %s", "world")
	log.NewNop().Errorf(context.Background(), "discarded")
}
