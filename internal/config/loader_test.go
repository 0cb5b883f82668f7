package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testscout/core/internal/config"
)

func writeConfigFile(t *testing.T, rootDir, content string) {
	t.Helper()
	configDir := filepath.Join(rootDir, ".testscout")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yml"), []byte(content), 0o644))
}

func TestLoad(t *testing.T) {
	t.Run("should return defaults when no config file exists", func(t *testing.T) {
		cfg, err := config.Load(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("should load values from the config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeConfigFile(t, tmpDir, `
extract:
  pattern: "*.py"
  workers: 8
  exclude:
    - fixtures
summarizer:
  provider: openai
  endpoint: https://api.example.com/v1/chat/completions
  model: nova-lite
output:
  json: false
`)

		cfg, err := config.Load(tmpDir)
		require.NoError(t, err)
		assert.Equal(t, "*.py", cfg.Extract.Pattern)
		assert.Equal(t, 8, cfg.Extract.Workers)
		assert.Equal(t, []string{"fixtures"}, cfg.Extract.Exclude)
		assert.Equal(t, "openai", cfg.Summarizer.Provider)
		assert.Equal(t, "nova-lite", cfg.Summarizer.Model)
		assert.False(t, cfg.Output.JSON)
	})

	t.Run("should let environment variables override the file", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeConfigFile(t, tmpDir, `
extract:
  pattern: "*.py"
`)
		t.Setenv("TESTSCOUT_EXTRACT_PATTERN", "*.ts")
		t.Setenv("TESTSCOUT_EXTRACT_FILTER_PATTERN", `it\(`)
		t.Setenv("TESTSCOUT_SUMMARIZER_API_KEY", "from-env")

		cfg, err := config.Load(tmpDir)
		require.NoError(t, err)
		assert.Equal(t, "*.ts", cfg.Extract.Pattern)
		assert.Equal(t, `it\(`, cfg.Extract.FilterPattern)
		assert.Equal(t, "from-env", cfg.Summarizer.APIKey)
	})

	t.Run("should reject an invalid configuration", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeConfigFile(t, tmpDir, `
summarizer:
  provider: oracle
`)

		_, err := config.Load(tmpDir)
		assert.ErrorIs(t, err, config.ErrInvalidProvider)
	})

	t.Run("should reject a malformed config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeConfigFile(t, tmpDir, "extract: [not: valid\n")

		_, err := config.Load(tmpDir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config file")
	})
}
