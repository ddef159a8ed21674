package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, DefaultCategoryURL, cfg.CategoryURL)
	assert.Equal(t, DefaultOutputFile, cfg.OutputFile)
	assert.Equal(t, 60*time.Second, cfg.PreloadWait())
	assert.Equal(t, 3*time.Second, cfg.PageWait())
	assert.Equal(t, 15*time.Second, cfg.ElementWait())
	assert.False(t, cfg.Headless)
	require.NoError(t, cfg.Validate())
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("ONEFLARE_CATEGORY_URL", "https://www.oneflare.com.au/plumbing")
	t.Setenv("ONEFLARE_PRELOAD_DELAY", "2.5")
	t.Setenv("ONEFLARE_HEADLESS", "true")

	cfg := NewConfig()
	cfg.ApplyEnv()

	assert.Equal(t, "https://www.oneflare.com.au/plumbing", cfg.CategoryURL)
	assert.Equal(t, 2.5, cfg.PreloadDelay)
	assert.True(t, cfg.Headless)
	// Untouched keys keep their defaults.
	assert.Equal(t, DefaultOutputFile, cfg.OutputFile)
}

func TestApplyEnvIgnoresMalformedValues(t *testing.T) {
	t.Setenv("ONEFLARE_PRELOAD_DELAY", "soon")
	t.Setenv("ONEFLARE_HEADLESS", "maybe")

	cfg := NewConfig()
	cfg.ApplyEnv()

	assert.Equal(t, DefaultPreloadDelay, cfg.PreloadDelay)
	assert.False(t, cfg.Headless)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"empty category URL", func(c *Config) { c.CategoryURL = "" }, false},
		{"relative category URL", func(c *Config) { c.CategoryURL = "/air-conditioning" }, false},
		{"empty output", func(c *Config) { c.OutputFile = "" }, false},
		{"negative delay", func(c *Config) { c.PageDelay = -1 }, false},
		{"zero wait timeout", func(c *Config) { c.WaitTimeout = 0 }, false},
		{"zero delays", func(c *Config) { c.PreloadDelay = 0; c.PageDelay = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestLoadSelectorsPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selectors.yaml")
	yaml := "detail_row: \".info-line\"\nwebsite_label: \"Web:\"\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	sel, err := LoadSelectors(path, DefaultSelectors())
	require.NoError(t, err)

	assert.Equal(t, ".info-line", sel.DetailRow)
	assert.Equal(t, "Web:", sel.WebsiteLabel)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, DefaultSelectors().BusinessLinks, sel.BusinessLinks)
	assert.Equal(t, DefaultSelectors().AddressLabel, sel.AddressLabel)
}

func TestLoadSelectorsMissingFile(t *testing.T) {
	_, err := LoadSelectors(filepath.Join(t.TempDir(), "nope.yaml"), DefaultSelectors())
	assert.Error(t, err)
}

func TestLoadSelectorsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selectors.yaml")
	require.NoError(t, os.WriteFile(path, []byte("detail_row: [unclosed"), 0o644))

	_, err := LoadSelectors(path, DefaultSelectors())
	assert.Error(t, err)
}
