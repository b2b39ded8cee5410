package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(Config{})
	require.NoError(t, err)
	assert.Equal(t, ".xml", cfg.Extension)
	assert.Equal(t, 2*time.Second, cfg.SettleDelay)
	assert.Empty(t, cfg.DatabaseDSN)
}

func TestLoadEnvironmentFillsZeroFields(t *testing.T) {
	t.Setenv("XML2EXCEL_OUTPUT_DIR", "/tmp/out")
	t.Setenv("XML2EXCEL_SETTLE_DELAY", "5s")

	cfg, err := Load(Config{})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
	assert.Equal(t, 5*time.Second, cfg.SettleDelay)
}

func TestLoadExplicitValuesWin(t *testing.T) {
	t.Setenv("XML2EXCEL_OUTPUT_DIR", "/tmp/env")

	cfg, err := Load(Config{OutputDir: "/tmp/flag", SettleDelay: time.Second})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/flag", cfg.OutputDir)
	assert.Equal(t, time.Second, cfg.SettleDelay)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("XML2EXCEL_SETTLE_DELAY", "soon")

	_, err := Load(Config{})
	assert.Error(t, err)
}
