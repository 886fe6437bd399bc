package app

import "time"

// Defaults applied after flag, file, and env resolution.
const (
	DefaultOutputPath  = "dazai_corpus.txt"
	DefaultUserAgent   = "aozoracorpus/1.0 (+https://github.com/hyperifyio/aozoracorpus)"
	DefaultTimeout     = 30 * time.Second
	DefaultMaxAttempts = 1
)

// Config holds runtime configuration for a corpus build.
type Config struct {
	// OutputPath is where the joined corpus is written.
	OutputPath string
	// SourcesPath optionally points at a YAML manifest of works; empty
	// selects the built-in catalog.
	SourcesPath string

	// Fetching
	UserAgent   string
	Timeout     time.Duration
	MaxAttempts int

	// Cache
	CacheDir    string
	CacheMaxAge time.Duration
	CacheClear  bool

	// Behavior
	Verbose bool
}

// ApplyDefaults fills any fields still unset after flags, file config,
// and environment have been applied.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = DefaultOutputPath
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
}
