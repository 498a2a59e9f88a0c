package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_WritesStartLineAndMessages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Log.txt")

	l, err := New(Options{FilePath: path, Level: "info", MaxSizeMB: 1, MaxBackups: 2})
	require.NoError(t, err)

	l.Info("Reading file", "file", "Jan.csv")
	l.Debug("hidden at info level")
	l.Warn("No new files to process")
	l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, StartMessage)
	assert.Contains(t, content, "Root")
	assert.Contains(t, content, "INFO")
	assert.Contains(t, content, "Reading file")
	assert.Contains(t, content, `"file": "Jan.csv"`)
	assert.Contains(t, content, "WARN")
	assert.NotContains(t, content, "hidden at info level")
}

func TestNew_StartLineIgnoresLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Log.txt")

	l, err := New(Options{FilePath: path, Level: "error", MaxSizeMB: 1, MaxBackups: 2})
	require.NoError(t, err)
	l.Info("suppressed")
	l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), StartMessage)
	assert.NotContains(t, string(data), "suppressed")
}

func TestNew_AppendsAcrossRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Log.txt")

	for i := 0; i < 2; i++ {
		l, err := New(Options{FilePath: path, Level: "info", MaxSizeMB: 1, MaxBackups: 2})
		require.NoError(t, err)
		l.Sync()
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), StartMessage))
}

func TestNew_InvalidOptions(t *testing.T) {
	_, err := New(Options{Level: "info"})
	assert.Error(t, err)

	_, err = New(Options{FilePath: filepath.Join(t.TempDir(), "Log.txt"), Level: "loud"})
	assert.Error(t, err)
}

func TestWith_CarriesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core)).With("run_id", "abc")

	l.Error("Path to raw data does not exist", "path", "/missing")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	assert.Equal(t, "abc", entry.ContextMap()["run_id"])
	assert.Equal(t, "/missing", entry.ContextMap()["path"])
}
