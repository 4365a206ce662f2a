package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelDebug, Output: &buf})

	ctx := NewContext(t.Context(), logger)
	FromContext(ctx).Debug("from context")

	assert.Same(t, logger, FromContext(ctx))
	assert.Contains(t, buf.String(), "from context")
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))
	//nolint:staticcheck // nil context is handled explicitly
	assert.Same(t, slog.Default(), FromContext(nil))
}
