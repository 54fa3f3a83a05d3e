package observability

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/mstlab/config"
)

func TestNewLogger_JSON(t *testing.T) {
	buf := new(bytes.Buffer)
	logger, err := newLogger(config.LogConfig{Level: "debug", Format: "json"}, zapcore.AddSync(buf))
	require.NoError(t, err)

	logger.Debug("edge added", zap.String("from", "A"), zap.Float64("weight", 2))
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "edge added", entry["msg"])
	assert.Equal(t, "mstlab", entry["logger"])
	assert.Equal(t, "A", entry["from"])
}

func TestNewLogger_LevelFiltering(t *testing.T) {
	buf := new(bytes.Buffer)
	logger, err := newLogger(config.LogConfig{Level: "warn", Format: "console"}, zapcore.AddSync(buf))
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")
	require.NoError(t, logger.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestNewLogger_BadLevelFallsBackToInfo(t *testing.T) {
	buf := new(bytes.Buffer)
	logger, err := newLogger(config.LogConfig{Level: "loud", Format: "json"}, zapcore.AddSync(buf))
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("shown")
	require.NoError(t, logger.Sync())
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestNewLogger_BadFormat(t *testing.T) {
	_, err := NewLogger(config.LogConfig{Level: "info", Format: "xml"})
	require.Error(t, err)
}

func TestNewLogger_FileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mstlab.log")
	buf := new(bytes.Buffer)
	logger, err := newLogger(config.LogConfig{Level: "info", Format: "console", File: path, MaxSize: 1}, zapcore.AddSync(buf))
	require.NoError(t, err)

	logger.Info("to both sinks")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"to both sinks"`)
	assert.Contains(t, buf.String(), "to both sinks")
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))
	l := zap.NewExample()
	assert.Same(t, l, OrNop(l))
}
