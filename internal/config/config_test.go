package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, "http://localhost:9999", cfg.Backend.BaseURL)
	assert.Equal(t, 10, cfg.Backend.Timeout)
	assert.Equal(t, "data/product_search.json", cfg.Catalog.Path)
	assert.Equal(t, "vehicle_agent", cfg.Agent.Name)
	assert.Equal(t, 2, cfg.Agent.CompareLimit)
	assert.False(t, cfg.Gemini.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MOCK_API_URL", "http://backend:8081")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_TEMPERATURE", "0.9")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "http://backend:8081", cfg.Backend.BaseURL)
	assert.True(t, cfg.Gemini.Enabled)
	assert.Equal(t, 0.9, cfg.Gemini.Temperature)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	t.Setenv("GEMINI_TEMPERATURE", "warm")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 0.4, cfg.Gemini.Temperature)
}
