package logging_test

import (
	"context"
	"log/slog"
	"testing"

	"elbouchra-cms/internal/handler/http/requestid"
	"elbouchra-cms/internal/observability/logging"
)

func TestNewLogger(t *testing.T) {
	if logging.NewLogger() == nil {
		t.Fatal("NewLogger() returned nil")
	}
}

func TestWithRequestID(t *testing.T) {
	t.Parallel()

	logger := logging.NewLogger()

	ctx := requestid.WithRequestID(context.Background(), "req-123")
	if got := logging.WithRequestID(ctx, logger); got == logger {
		t.Error("WithRequestID() should return a new logger when an ID is present")
	}

	if got := logging.WithRequestID(context.Background(), logger); got != logger {
		t.Error("WithRequestID() should return the same logger without an ID")
	}
}

func TestLoggerContext(t *testing.T) {
	t.Parallel()

	logger := slog.Default().With("component", "test")
	ctx := logging.WithLogger(context.Background(), logger)

	if got := logging.FromContext(ctx); got != logger {
		t.Error("FromContext() did not return the stored logger")
	}

	if got := logging.FromContext(context.Background()); got != slog.Default() {
		t.Error("FromContext() should fall back to the default logger")
	}
}
