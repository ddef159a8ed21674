package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

const (
	DefaultCategoryURL  = "https://www.oneflare.com.au/air-conditioning"
	DefaultOutputFile   = "business_data.xlsx"
	DefaultLogFile      = "scraper.log"
	DefaultPreloadDelay = 60.0
	DefaultPageDelay    = 3.0
	DefaultWaitTimeout  = 15.0
)

type Config struct {
	CategoryURL  string
	OutputFile   string
	LogFile      string
	PreloadDelay float64 // seconds to wait after the category page loads
	PageDelay    float64 // seconds to wait after each profile page loads
	WaitTimeout  float64 // ceiling for element waits, seconds
	Headless     bool
	Verbose      bool
	Selectors    Selectors
}

func NewConfig() *Config {
	return &Config{
		CategoryURL:  DefaultCategoryURL,
		OutputFile:   DefaultOutputFile,
		LogFile:      DefaultLogFile,
		PreloadDelay: DefaultPreloadDelay,
		PageDelay:    DefaultPageDelay,
		WaitTimeout:  DefaultWaitTimeout,
		Headless:     false,
		Verbose:      false,
		Selectors:    DefaultSelectors(),
	}
}

// ApplyEnv overrides defaults from ONEFLARE_* environment variables.
// CLI flags are applied after this, so flags win over the environment.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("ONEFLARE_CATEGORY_URL"); v != "" {
		c.CategoryURL = v
	}
	if v := os.Getenv("ONEFLARE_OUTPUT"); v != "" {
		c.OutputFile = v
	}
	if v := os.Getenv("ONEFLARE_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v, ok := envFloat("ONEFLARE_PRELOAD_DELAY"); ok {
		c.PreloadDelay = v
	}
	if v, ok := envFloat("ONEFLARE_PAGE_DELAY"); ok {
		c.PageDelay = v
	}
	if v, ok := envFloat("ONEFLARE_WAIT_TIMEOUT"); ok {
		c.WaitTimeout = v
	}
	if v, ok := envBool("ONEFLARE_HEADLESS"); ok {
		c.Headless = v
	}
	if v, ok := envBool("ONEFLARE_VERBOSE"); ok {
		c.Verbose = v
	}
}

func (c *Config) Validate() error {
	if c.CategoryURL == "" {
		return fmt.Errorf("category URL must not be empty")
	}
	u, err := url.Parse(c.CategoryURL)
	if err != nil {
		return fmt.Errorf("invalid category URL: %w", err)
	}
	if !u.IsAbs() {
		return fmt.Errorf("category URL must be absolute, got %q", c.CategoryURL)
	}
	if c.OutputFile == "" {
		return fmt.Errorf("output file must not be empty")
	}
	if c.PreloadDelay < 0 || c.PageDelay < 0 {
		return fmt.Errorf("page delays must not be negative")
	}
	if c.WaitTimeout <= 0 {
		return fmt.Errorf("wait timeout must be positive")
	}
	return nil
}

func (c *Config) PreloadWait() time.Duration { return seconds(c.PreloadDelay) }
func (c *Config) PageWait() time.Duration    { return seconds(c.PageDelay) }
func (c *Config) ElementWait() time.Duration { return seconds(c.WaitTimeout) }

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func envFloat(key string) (float64, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func envBool(key string) (bool, bool) {
	v := os.Getenv(key)
	if v == "" {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}
