package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "Compiled Output.csv", cfg.OutputFileName)
	assert.Equal(t, "PreviousData.csv", cfg.SnapshotFileName)
	assert.Equal(t, []string{"Date", "Parts Over Due", "$ Over Due", "Total Parts", "Total $"}, cfg.OutputHeaders)
	assert.True(t, cfg.UseCRLF)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
output_file_name: "Report.csv"
log_level: debug
log_max_backups: 5
use_crlf: false
xlsx_export: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Report.csv", cfg.OutputFileName)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5, cfg.LogMaxBackups)
	assert.False(t, cfg.UseCRLF)
	assert.True(t, cfg.XLSXExport)
	// Untouched keys keep their defaults.
	assert.Equal(t, "PreviousData.csv", cfg.SnapshotFileName)
	assert.Equal(t, 1, cfg.LogMaxSizeMB)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\n"), 0644))

	t.Setenv("OVERDUE_LOG_LEVEL", "error")
	t.Setenv("OVERDUE_SNAPSHOT_FILE_NAME", "History.csv")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "History.csv", cfg.SnapshotFileName)
}

func TestLoad_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed yaml", content: "output_file_name: [unterminated"},
		{name: "unknown log level", content: "log_level: verbose"},
		{name: "wrong header count", content: "output_headers: [Date, Total]"},
		{name: "empty header", content: `output_headers: [Date, "", a, b, c]`},
		{name: "zero rotation size", content: "log_max_size_mb: -1"},
		{name: "empty snapshot name", content: `snapshot_file_name: ""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file is ignored", func(t *testing.T) {
		assert.NoError(t, LoadDotEnv(filepath.Join(dir, ".env")))
	})

	t.Run("variables feed Load", func(t *testing.T) {
		path := filepath.Join(dir, ".env")
		require.NoError(t, os.WriteFile(path, []byte("OVERDUE_BACKUP_PREFIX=Old_\n"), 0644))
		t.Cleanup(func() { os.Unsetenv("OVERDUE_BACKUP_PREFIX") })

		require.NoError(t, LoadDotEnv(path))

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "Old_", cfg.BackupPrefix)
	})
}
