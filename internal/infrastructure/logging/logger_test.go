package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/studiosim-go/internal/infrastructure/config"
	"github.com/andrescamacho/studiosim-go/internal/infrastructure/logging"
)

func TestSlogLogger_WritesStructuredRecord(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	// Act
	logger.Log("WARN", "action rejected", map[string]interface{}{"action": "HireStaff"})

	// Assert
	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "action rejected", record["msg"])
	assert.Equal(t, "HireStaff", record["action"])
}

func TestSlogLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))

	logger.Log("DEBUG", "hidden", nil)

	assert.Empty(t, buf.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logging.ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, logging.ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, logging.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel("verbose"))
}

func TestNew_FileOutput(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "studio.log")
	cfg := config.LoggingConfig{Level: "info", Format: "text", Output: "file", FilePath: path}

	// Act
	logger, closer, err := logging.New(cfg)
	require.NoError(t, err)
	logger.Log("INFO", "day advanced", map[string]interface{}{"day": 2})
	require.NoError(t, closer.Close())

	// Assert
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "day advanced")
	assert.Contains(t, string(data), "day=2")
}
