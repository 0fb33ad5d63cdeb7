package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelWarn, ParseLevel(""))
}

func TestNewLogger(t *testing.T) {
	t.Run("warn by default without time", func(t *testing.T) {
		var buf bytes.Buffer
		log := newLogger(&buf, "", false)
		log.Info("hidden")
		log.Warn("proposal metadata unavailable", "cid", "QmX")

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "cid=QmX")
		assert.NotContains(t, out, "time=")
	})

	t.Run("debug adds source", func(t *testing.T) {
		var buf bytes.Buffer
		log := newLogger(&buf, "error", true)
		log.Debug("refresh started")

		out := buf.String()
		assert.Contains(t, out, "refresh started")
		assert.Contains(t, out, "source=")
		assert.Contains(t, out, "logger_test.go")
	})
}

func TestShortPath(t *testing.T) {
	assert.Equal(t, "internal/usecase/actions.go", shortPath("/home/u/src/memedao-cli/internal/usecase/actions.go"))
	assert.Equal(t, "usecase/actions.go", shortPath("/build/usecase/actions.go"))
	assert.Equal(t, "actions.go", shortPath("actions.go"))
}
