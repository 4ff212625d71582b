package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(level Level) (*bytes.Buffer, Logger) {
	buf := &bytes.Buffer{}
	log := New(&Config{Level: level, Output: buf, Caller: false})
	return buf, log
}

func decodeEntry(t *testing.T, buf *bytes.Buffer) Entry {
	t.Helper()
	var entry Entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLogger_Info(t *testing.T) {
	buf, log := newTestLogger(InfoLevel)

	log.Info("request completed", String("method", "GET"), Int("status", 200))

	entry := decodeEntry(t, buf)
	assert.Equal(t, "INFO", entry.Level)
	assert.Equal(t, "request completed", entry.Message)
	assert.Equal(t, "GET", entry.Fields["method"])
	assert.EqualValues(t, 200, entry.Fields["status"])
}

func TestLogger_LevelFiltering(t *testing.T) {
	buf, log := newTestLogger(WarnLevel)

	log.Debug("dropped")
	log.Info("dropped")
	assert.Zero(t, buf.Len())

	log.Warn("kept")
	assert.NotZero(t, buf.Len())
}

func TestLogger_WithFields(t *testing.T) {
	buf, log := newTestLogger(InfoLevel)

	child := log.WithFields(String("component", "playlists"))
	child.Info("cache invalidated")

	entry := decodeEntry(t, buf)
	assert.Equal(t, "playlists", entry.Fields["component"])
}

func TestLogger_WithContext(t *testing.T) {
	buf, log := newTestLogger(InfoLevel)

	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithUserID(ctx, "user-1")
	log.WithContext(ctx).Info("handled")

	entry := decodeEntry(t, buf)
	assert.Equal(t, "req-1", entry.Fields["request_id"])
	assert.Equal(t, "user-1", entry.Fields["user_id"])
}

func TestLogger_ErrorField(t *testing.T) {
	buf, log := newTestLogger(InfoLevel)

	log.Error("write failed", Error(assert.AnError))

	entry := decodeEntry(t, buf)
	assert.Equal(t, assert.AnError.Error(), entry.Fields["error"])
}
