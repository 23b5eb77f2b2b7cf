package model

import "time"

// Config holds all fnoltriage configuration
type Config struct {
	Cache        CacheConfig       `yaml:"cache"`
	Concurrency  ConcurrencyConfig `yaml:"concurrency"`
	RateLimiting RateLimitConfig   `yaml:"rate_limiting"`
	Store        StoreConfig       `yaml:"store"`
	Lexicon      LexiconConfig     `yaml:"lexicon"`
	Output       OutputConfig      `yaml:"output"`
}

// CacheConfig controls the decision cache
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Dir     string        `yaml:"dir"`     // Disk cache directory; empty means memory only
	TTL     time.Duration `yaml:"ttl"`
}

// ConcurrencyConfig controls batch parallelism
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// RateLimitConfig throttles decision hand-off to downstream intake
type RateLimitConfig struct {
	ReportsPerSecond float64 `yaml:"reports_per_second"` // 0 disables throttling
	BurstSize        int     `yaml:"burst_size"`
}

// StoreConfig controls decision persistence
type StoreConfig struct {
	Path string `yaml:"path"` // SQLite database path; empty disables persistence
}

// LexiconConfig points at an optional keyword lexicon override
type LexiconConfig struct {
	Path string `yaml:"path"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Cache: CacheConfig{
			Enabled: false,
			TTL:     24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		RateLimiting: RateLimitConfig{
			ReportsPerSecond: 0,
			BurstSize:        5,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
