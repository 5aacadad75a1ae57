package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaultLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, WarnLevel)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("token skipped", Fields{"token": "b9"})

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN] token skipped")
	assert.Contains(t, out, "token:b9")
}

func TestDefaultLogger_WithFieldsDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := NewWriterLogger(&buf, DebugLevel)
	child := parent.WithFields(Fields{"key": "G"})

	parent.Info("parent")
	child.Info("child")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.NotContains(t, string(lines[0]), "key:G")
	assert.Contains(t, string(lines[1]), "key:G")
}

func TestDefaultLogger_ErrorIncludesCause(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, DebugLevel)

	logger.Error(errors.New("boom"), "convert failed")
	assert.Contains(t, buf.String(), "[ERROR] convert failed: boom")
}

func TestContextWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, DebugLevel)

	ctx := ContextWithFields(context.Background(), Fields{"session": "s1"})
	ctx = ContextWithFields(ctx, Fields{"key": "D"})
	logger.WithContext(ctx).Info("selected")

	assert.Contains(t, buf.String(), "session:s1")
	assert.Contains(t, buf.String(), "key:D")
}

func TestZapLogger_ForwardsFieldsAndLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewZapLogger(zap.New(core))

	logger.WithFields(Fields{"component": "transpose"}).Warn("unresolvable note", Fields{"token": "#9"})
	logger.Error(errors.New("no table"), "unsupported key", Fields{"key": "Z"})

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "transpose", entries[0].ContextMap()["component"])
	assert.Equal(t, "#9", entries[0].ContextMap()["token"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "no table", entries[1].ContextMap()["error"])
}

func TestZapLogger_SetLevel(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewZapLogger(zap.New(core))

	logger.SetLevel(WarnLevel)
	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("kept")

	assert.Equal(t, 1, logs.Len())
}

func TestSetGlobalLogger_NilInstallsNoOp(t *testing.T) {
	prev := GetGlobalLogger()
	defer SetGlobalLogger(prev)

	SetGlobalLogger(nil)
	_, ok := GetGlobalLogger().(*NoOpLogger)
	assert.True(t, ok)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("debug"))
	assert.Equal(t, WarnLevel, ParseLevel("warning"))
	assert.Equal(t, ErrorLevel, ParseLevel("error"))
	assert.Equal(t, InfoLevel, ParseLevel("nonsense"))
}
