package ctxlog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/specialistvlad/debtemplates/internal/ctxlog"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	require.Same(t, logger, ctxlog.FromContext(ctx))
	ctxlog.FromContext(ctx).Info("hello")
	require.Contains(t, buf.String(), "msg=hello")
}

func TestFromContext_Missing(t *testing.T) {
	t.Parallel()

	logger := ctxlog.FromContext(context.Background())
	require.NotNil(t, logger)
	require.NotPanics(t, func() { logger.Error("dropped") })
}
