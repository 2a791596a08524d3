package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/showcase/internal/model"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://apis.ccbp.in", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, model.CategoryAll, cfg.StartCategory())
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SHOWCASE_API_BASE_URL", "http://localhost:9000")
	t.Setenv("SHOWCASE_TIMEOUT", "250ms")
	t.Setenv("SHOWCASE_CATEGORY", "react")
	t.Setenv("SHOWCASE_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000", cfg.APIBaseURL)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
	assert.Equal(t, model.CategoryReact, cfg.StartCategory())

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("SHOWCASE_TIMEOUT", "soon")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := Config{
		APIBaseURL: "not a url",
		Timeout:    0,
		Category:   "VUE",
		Theme:      "solarized",
		LogLevel:   "loud",
	}
	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"timeout", "api base url", "VUE", "solarized", "loud"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestValidateFixtureSkipsBaseURL(t *testing.T) {
	cfg := Config{
		APIBaseURL: "",
		Fixture:    "projects.json",
		Timeout:    time.Second,
		Category:   "ALL",
		Theme:      "mono",
		LogLevel:   "info",
	}
	assert.NoError(t, cfg.Validate())
}
