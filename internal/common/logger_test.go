package common

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLog points the default logger at a buffer for the test's
// duration and returns it.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	return &buf
}

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	for _, format := range []string{"console", "json", "unknown"} {
		require.NoError(t, SetupLogger(slog.LevelInfo, format), "format %q", format)
	}
}

func TestLogError(t *testing.T) {
	buf := captureLog(t)

	LogError(errors.New("disk I/O error"), "failed to save", Fields{"id": 7})

	out := buf.String()
	assert.Contains(t, out, "failed to save")
	assert.Contains(t, out, "disk I/O error")
	assert.Contains(t, out, `"id":7`)
}

func TestLogInfo(t *testing.T) {
	buf := captureLog(t)

	LogInfo("seeded sample data", Fields{"transactions": 50})

	out := buf.String()
	assert.Contains(t, out, "seeded sample data")
	assert.Contains(t, out, `"transactions":50`)
}
