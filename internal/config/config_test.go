package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"CALC_PROMPT", "CALC_HISTORY_DB", "CALC_LOG_LEVEL", "CALC_FORMAT"} {
		// Setenv restores the variable after the test.
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Type an expression to evaluate or 'exit' to exit", cfg.Prompt)
	assert.Equal(t, "", cfg.HistoryDB)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.Format)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CALC_PROMPT", "> ")
	t.Setenv("CALC_HISTORY_DB", "/tmp/calc.db")
	t.Setenv("CALC_LOG_LEVEL", "debug")
	t.Setenv("CALC_FORMAT", "yaml")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "> ", cfg.Prompt)
	assert.Equal(t, "/tmp/calc.db", cfg.HistoryDB)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Contains(t, cfg.String(), "/tmp/calc.db")
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("CALC_LOG_LEVEL", "loud")
	t.Setenv("CALC_FORMAT", "text")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CALC_LOG_LEVEL")

	t.Setenv("CALC_LOG_LEVEL", "info")
	t.Setenv("CALC_FORMAT", "xml")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CALC_FORMAT")
}

func TestValidate(t *testing.T) {
	cfg := &Config{LogLevel: "error", Format: "yaml"}
	assert.NoError(t, cfg.Validate())
	cfg.Format = ""
	assert.Error(t, cfg.Validate())
}
