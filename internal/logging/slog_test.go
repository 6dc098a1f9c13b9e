package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTextLogger_WritesLevelsAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := NewTextLogger(&buf, slog.LevelInfo)
	ctx := context.Background()

	log.Info(ctx, "cart updated", "items", 3)
	log.Warn(ctx, "corrupt record", "key", "cart")
	log.Error(ctx, "store failure")

	out := buf.String()
	require.Contains(t, out, "cart updated")
	require.Contains(t, out, "items=3")
	require.Contains(t, out, "level=WARN")
	require.Contains(t, out, "level=ERROR")
}

func TestSlogLogger_With(t *testing.T) {
	var buf bytes.Buffer
	log := NewTextLogger(&buf, slog.LevelInfo)

	child := log.With("engine", "cart")
	child.Info(context.Background(), "hello")

	require.Contains(t, buf.String(), "engine=cart")
}
