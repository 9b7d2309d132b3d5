package pipeline

import "time"

// Config holds the processing configuration.
type Config struct {
	// Workers is the batch concurrency level.
	Workers int `yaml:"workers"`

	Cache  CacheConfig  `yaml:"cache"`
	Output OutputConfig `yaml:"output"`
}

// CacheConfig controls the parse cache.
type CacheConfig struct {
	Enabled bool `yaml:"enabled"`

	// TTL is how long a parsed description stays cached.
	TTL time.Duration `yaml:"ttl"`

	// CleanupInterval is how often expired entries are evicted.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`

	// Dir, when set, layers a persistent disk cache under the memory
	// cache so results survive across invocations.
	Dir string `yaml:"dir"`

	// DiskTTL is how long a disk entry stays valid.
	DiskTTL time.Duration `yaml:"disk_ttl"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	// Format is one of "json", "yaml", "text".
	Format string `yaml:"format"`

	// Verbose enables progress output on stderr.
	Verbose bool `yaml:"verbose"`

	// Anomalies includes the anomaly report alongside each description.
	Anomalies bool `yaml:"anomalies"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Workers: 4,
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             15 * time.Minute,
			CleanupInterval: 5 * time.Minute,
			Dir:             "",
			DiskTTL:         24 * time.Hour,
		},
		Output: OutputConfig{
			Format:    "json",
			Verbose:   false,
			Anomalies: false,
		},
	}
}
