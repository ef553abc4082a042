package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test errors
var (
	errHandler1 = errors.New("handler1 error")
	errHandler2 = errors.New("handler2 error")
)

// failingHandler is a slog.Handler whose Handle always fails.
type failingHandler struct {
	err error
}

func (h *failingHandler) Enabled(context.Context, slog.Level) bool  { return true }
func (h *failingHandler) Handle(context.Context, slog.Record) error { return h.err }
func (h *failingHandler) WithAttrs([]slog.Attr) slog.Handler        { return h }
func (h *failingHandler) WithGroup(string) slog.Handler             { return h }

func newTestRecord(level slog.Level, msg string) slog.Record {
	return slog.NewRecord(time.Now(), level, msg, 0)
}

func TestMultiHandler_Enabled(t *testing.T) {
	var buf bytes.Buffer
	warnHandler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})
	debugHandler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	t.Run("enabled when any child is enabled", func(t *testing.T) {
		h := NewMultiHandler(warnHandler, debugHandler)
		assert.True(t, h.Enabled(context.Background(), slog.LevelDebug))
	})

	t.Run("disabled when no child is enabled", func(t *testing.T) {
		h := NewMultiHandler(warnHandler)
		assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	})

	t.Run("disabled without children", func(t *testing.T) {
		h := NewMultiHandler()
		assert.False(t, h.Enabled(context.Background(), slog.LevelError))
	})
}

func TestMultiHandler_Handle(t *testing.T) {
	t.Run("fans out to all enabled handlers", func(t *testing.T) {
		var first, second bytes.Buffer
		h := NewMultiHandler(
			slog.NewTextHandler(&first, &slog.HandlerOptions{Level: slog.LevelDebug}),
			slog.NewTextHandler(&second, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)

		err := h.Handle(context.Background(), newTestRecord(slog.LevelInfo, "renamed clip"))
		require.NoError(t, err)

		assert.Contains(t, first.String(), "renamed clip")
		assert.Contains(t, second.String(), "renamed clip")
	})

	t.Run("skips handlers below their level", func(t *testing.T) {
		var quiet, verbose bytes.Buffer
		h := NewMultiHandler(
			slog.NewTextHandler(&quiet, &slog.HandlerOptions{Level: slog.LevelError}),
			slog.NewTextHandler(&verbose, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)

		err := h.Handle(context.Background(), newTestRecord(slog.LevelInfo, "scan started"))
		require.NoError(t, err)

		assert.Empty(t, quiet.String())
		assert.Contains(t, verbose.String(), "scan started")
	})

	t.Run("joins errors from failing handlers", func(t *testing.T) {
		h := NewMultiHandler(&failingHandler{err: errHandler1}, &failingHandler{err: errHandler2})

		err := h.Handle(context.Background(), newTestRecord(slog.LevelInfo, "x"))
		require.Error(t, err)
		assert.ErrorIs(t, err, errHandler1)
		assert.ErrorIs(t, err, errHandler2)
	})
}

func TestMultiHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := NewMultiHandler(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	enriched := h.WithAttrs([]slog.Attr{slog.String("run_id", "01ARZ3")})
	err := enriched.Handle(context.Background(), newTestRecord(slog.LevelInfo, "hello"))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "run_id=01ARZ3")
}

func TestMultiHandler_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	h := NewMultiHandler(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	grouped := h.WithGroup("scan")
	record := newTestRecord(slog.LevelInfo, "done")
	record.AddAttrs(slog.Int("files", 3))
	err := grouped.Handle(context.Background(), record)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "scan.files=3")
}
