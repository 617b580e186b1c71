package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("OHLC_CONFIG", "")
	// viper treats an empty variable as unset
	for k := range defaults {
		t.Setenv(strings.ToUpper(k), "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "ohlc_csv", cfg.DataDir)
	assert.Equal(t, "csv", cfg.SaveFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, ".", cfg.EnvDir)
	assert.Equal(t, "iex", cfg.AlpacaFeed)
	assert.Equal(t, "raw", cfg.AlpacaAdjustment)
	assert.Equal(t, 60*time.Second, cfg.HTTPTimeout)
	assert.True(t, cfg.WriteReport)
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestLoadConfigFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATA_DIR", "bars")
	t.Setenv("SAVE_FORMAT", "parquet")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("WRITE_REPORT", "false")
	t.Setenv("TIMEZONE", "America/New_York")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "bars", cfg.DataDir)
	assert.Equal(t, "parquet", cfg.SaveFormat)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.False(t, cfg.WriteReport)
	assert.Equal(t, "America/New_York", cfg.Location().String())
}

func TestLoadConfigFileUnderEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "ohlc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: from_file\nlog_level: warn\nalpaca_feed: sip\n"), 0o644))
	t.Setenv("OHLC_CONFIG", path)
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from_file", cfg.DataDir)
	assert.Equal(t, "sip", cfg.AlpacaFeed)
	assert.Equal(t, "debug", cfg.LogLevel, "env wins over file")
}

func TestLoadConfigRejects(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown format", "SAVE_FORMAT", "xlsx"},
		{"bad timezone", "TIMEZONE", "Mars/Olympus"},
		{"missing config file", "OHLC_CONFIG", "/nonexistent/ohlc.yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestProvideBarSaver(t *testing.T) {
	s, err := ProvideBarSaver(&Config{SaveFormat: "json"})
	require.NoError(t, err)
	assert.Equal(t, "json", s.Extension())

	_, err = ProvideBarSaver(&Config{SaveFormat: "xml"})
	assert.Error(t, err)
}
