package app

import "os"

// ApplyEnvToConfig populates unset fields of cfg from environment
// variables. Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = os.Getenv("CORPUS_OUTPUT")
	}
	if cfg.SourcesPath == "" {
		cfg.SourcesPath = os.Getenv("CORPUS_SOURCES")
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = os.Getenv("CORPUS_CACHE_DIR")
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = os.Getenv("CORPUS_UA")
	}
}
