//go:build unit

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		cfg, err := loadConfig("")
		require.NoError(t, err)
		assert.Equal(t, defaultConfig(), cfg)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "countdown.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
base_url: https://timers.example.com
product_id: prod-1
interval: 250ms
`), 0o600))

		cfg, err := loadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "https://timers.example.com", cfg.BaseURL)
		assert.Equal(t, "prod-1", cfg.ProductID)
		assert.Equal(t, 250*time.Millisecond, cfg.Interval)
		assert.Equal(t, "countdown.db", cfg.StorePath)
		require.NoError(t, cfg.validate())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("base_url: [unclosed"), 0o600))
		_, err := loadConfig(path)
		assert.Error(t, err)
	})
}

func TestConfigValidate(t *testing.T) {
	cfg := defaultConfig()
	assert.EqualError(t, cfg.validate(), "product ID is required")

	cfg.ProductID = "prod-1"
	cfg.Interval = 0
	assert.Error(t, cfg.validate())
}

func TestTerminalHost(t *testing.T) {
	var buf bytes.Buffer
	h := &terminalHost{out: &buf}

	h.SetText("🔥 Offer ends in: 00h 00m 05s")
	h.Hide()

	assert.Equal(t, "\r\033[K🔥 Offer ends in: 00h 00m 05s\r\033[K", buf.String())
}
