package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 2.0, cfg.Engine.GeometryTolerance)
	assert.False(t, cfg.Engine.SanitizeHTML)
	assert.Equal(t, 10*1024*1024, cfg.Engine.MaxHTMLSize)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)
}

func TestLoadOrDefault(t *testing.T) {
	cfg := LoadOrDefault()
	assert.NotNil(t, cfg)
	assert.Equal(t, 2.0, cfg.Engine.GeometryTolerance)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	t.Setenv("GEOMETRY_TOLERANCE", "5")
	t.Setenv("SANITIZE_HTML", "true")
	t.Setenv("MAX_HTML_SIZE", "1024")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_DEV", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5.0, cfg.Engine.GeometryTolerance)
	assert.True(t, cfg.Engine.SanitizeHTML)
	assert.Equal(t, 1024, cfg.Engine.MaxHTMLSize)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
}
