package model

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds the complete rosterscan configuration
type Config struct {
	HTTP         HTTPConfig         `yaml:"http"`
	Cache        CacheConfig        `yaml:"cache"`
	Concurrency  ConcurrencyConfig  `yaml:"concurrency"`
	RateLimiting RateLimitingConfig `yaml:"rate_limiting"`
	Submit       SubmitConfig       `yaml:"submit"`
	Output       OutputConfig       `yaml:"output"`
}

// HTTPConfig controls roster PDF fetching
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls"`
	HTTPProxy    string        `yaml:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy"`
	CheckRobots  bool          `yaml:"check_robots"`
}

// CacheConfig controls caching of downloaded roster PDFs
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// ConcurrencyConfig controls worker counts
type ConcurrencyConfig struct {
	Workers           int `yaml:"workers"`            // Batch submission workers
	ValidationWorkers int `yaml:"validation_workers"` // Record validation workers
}

// RateLimitingConfig controls per-host request pacing
type RateLimitingConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size"`
}

// SubmitConfig controls the bulk filing submission client
type SubmitConfig struct {
	Endpoint  string        `yaml:"endpoint"`
	BaseURL   string        `yaml:"base_url"` // Official URL prefix for filing PDFs
	BatchSize int           `yaml:"batch_size"`
	Timeout   time.Duration `yaml:"timeout"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	cacheDir := ".rosterscan-cache"
	if home, err := os.UserHomeDir(); err == nil {
		cacheDir = filepath.Join(home, ".rosterscan", "cache")
	}

	return &Config{
		HTTP: HTTPConfig{
			Timeout:      2 * time.Minute,
			UserAgent:    "rosterscan/0.2 (+https://github.com/lvargas/rosterscan)",
			MaxBodyBytes: 25_000_000,
			CheckRobots:  true,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       cacheDir,
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers:           4,
			ValidationWorkers: 8,
		},
		RateLimiting: RateLimitingConfig{
			RequestsPerSecond: 2,
			BurstSize:         5,
		},
		Submit: SubmitConfig{
			Endpoint:  "http://localhost:7071/api/bulk-import",
			BaseURL:   "https://disclosures-clerk.house.gov/public_disc/ptr-pdfs/2025/",
			BatchSize: 10,
			Timeout:   30 * time.Second,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
