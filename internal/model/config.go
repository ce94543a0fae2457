package model

import "time"

// Config holds the application configuration
type Config struct {
	HTTP         HTTPConfig         `yaml:"http" mapstructure:"http"`
	Cache        CacheConfig        `yaml:"cache" mapstructure:"cache"`
	Concurrency  ConcurrencyConfig  `yaml:"concurrency" mapstructure:"concurrency"`
	RateLimiting RateLimitingConfig `yaml:"rate_limiting" mapstructure:"rate_limiting"`
	Output       OutputConfig       `yaml:"output" mapstructure:"output"`
}

// HTTPConfig configures the press release fetcher
type HTTPConfig struct {
	BaseURL       string        `yaml:"base_url" mapstructure:"base_url"`
	Timeout       time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent     string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	RespectRobots bool          `yaml:"respect_robots" mapstructure:"respect_robots"`
	HTTPProxy     string        `yaml:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy    string        `yaml:"https_proxy,omitempty" mapstructure:"https_proxy"`
	NoProxy       string        `yaml:"no_proxy,omitempty" mapstructure:"no_proxy"`
}

// CacheConfig configures where raw and parsed releases are kept
type CacheConfig struct {
	Enabled    bool   `yaml:"enabled" mapstructure:"enabled"`
	Backend    string `yaml:"backend" mapstructure:"backend"` // "disk" or "sqlite"
	Dir        string `yaml:"dir" mapstructure:"dir"`
	SQLitePath string `yaml:"sqlite_path" mapstructure:"sqlite_path"`
	Memory     bool   `yaml:"memory" mapstructure:"memory"` // keep a go-cache layer in front of the backend
	Snapshot   bool   `yaml:"snapshot" mapstructure:"snapshot"`
}

// ConcurrencyConfig configures per-date fan-out
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// RateLimitingConfig paces requests to the health department site
type RateLimitingConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size" mapstructure:"burst_size"`
}

// OutputConfig configures CLI output
type OutputConfig struct {
	Verbose bool   `yaml:"verbose" mapstructure:"verbose"`
	Format  string `yaml:"format" mapstructure:"format"` // "yaml" or "json"
	LogJSON bool   `yaml:"log_json" mapstructure:"log_json"`
}

// Cache backends
const (
	BackendDisk   = "disk"
	BackendSQLite = "sqlite"
)

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			BaseURL:       "http://www.publichealth.lacounty.gov/phcommon/public/media/mediapubhpdetail.cfm?prid=",
			Timeout:       30 * time.Second,
			UserAgent:     "lacph/0.1 (+https://github.com/ppiankov/lacph)",
			MaxBodyBytes:  5_000_000,
			RespectRobots: false,
		},
		Cache: CacheConfig{
			Enabled:    true,
			Backend:    BackendDisk,
			Dir:        "memoization",
			SQLitePath: "memoization/lacph.db",
			Memory:     true,
			Snapshot:   true,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 1,
		},
		RateLimiting: RateLimitingConfig{
			RequestsPerSecond: 2,
			BurstSize:         1,
		},
		Output: OutputConfig{
			Format: "yaml",
		},
	}
}
