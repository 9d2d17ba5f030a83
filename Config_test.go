package main

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func _env(vars map[string]string) func(string) string {
	return func(name string) string {
		return vars[name]
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults_and_env", func(t *testing.T) {
		config, err := LoadConfig(_env(map[string]string{
			"DATABASE_FILEPATH": "/tmp/sheets.db",
			"SHEET_COLS":        "8",
		}))

		require.NoError(t, err)
		assert.Equal(t, ":8080", config.ListenAddr)
		assert.Equal(t, "/tmp/sheets.db", config.DatabaseFilepath)
		assert.Equal(t, 5, config.SheetRows)
		assert.Equal(t, 8, config.SheetCols)
		assert.Equal(t, "info", config.LogLevel)
		assert.Equal(t, 5, config.WebhookWorkers)
	})

	t.Run("yaml_file_overridden_by_env", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "listen_addr: \":9090\"\ndatabase_filepath: /data/file.db\nsheet_rows: 10\nlog_level: debug\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))

		config, err := LoadConfig(_env(map[string]string{
			"CONFIG_FILEPATH": path,
			"SHEET_ROWS":      "12",
		}))

		require.NoError(t, err)
		assert.Equal(t, ":9090", config.ListenAddr)
		assert.Equal(t, "/data/file.db", config.DatabaseFilepath)
		assert.Equal(t, 12, config.SheetRows)
		assert.Equal(t, 5, config.SheetCols)
		assert.Equal(t, "debug", config.LogLevel)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := LoadConfig(_env(map[string]string{
			"CONFIG_FILEPATH": filepath.Join(t.TempDir(), "absent.yaml"),
		}))
		assert.Error(t, err)
	})

	t.Run("invalid_values", func(t *testing.T) {
		testCases := []map[string]string{
			{},
			{"DATABASE_FILEPATH": "x.db", "SHEET_ROWS": "many"},
			{"DATABASE_FILEPATH": "x.db", "SHEET_ROWS": "0"},
			{"DATABASE_FILEPATH": "x.db", "SHEET_COLS": "27"},
			{"DATABASE_FILEPATH": "x.db", "WEBHOOK_WORKERS": "-1"},
		}

		for _, vars := range testCases {
			_, err := LoadConfig(_env(vars))
			assert.ErrorIs(t, err, ConfigError, vars)
		}
	})
}
