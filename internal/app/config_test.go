package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	ApplyDefaults(&cfg)
	if cfg.OutputPath != DefaultOutputPath {
		t.Fatalf("output default not applied: %q", cfg.OutputPath)
	}
	if cfg.Timeout != DefaultTimeout || cfg.MaxAttempts != DefaultMaxAttempts {
		t.Fatalf("fetch defaults not applied: %+v", cfg)
	}
	if cfg.UserAgent == "" {
		t.Fatal("user agent default not applied")
	}
}

func TestApplyDefaults_PreservesExplicit(t *testing.T) {
	cfg := Config{OutputPath: "mine.txt", Timeout: 5 * time.Second, MaxAttempts: 3}
	ApplyDefaults(&cfg)
	if cfg.OutputPath != "mine.txt" || cfg.Timeout != 5*time.Second || cfg.MaxAttempts != 3 {
		t.Fatalf("explicit values overwritten: %+v", cfg)
	}
}

func TestApplyEnvToConfig(t *testing.T) {
	t.Setenv("CORPUS_OUTPUT", "env_corpus.txt")
	t.Setenv("CORPUS_SOURCES", "env_sources.yaml")
	t.Setenv("CORPUS_CACHE_DIR", "/tmp/corpus-cache")
	t.Setenv("CORPUS_UA", "env-agent/1.0")

	var cfg Config
	ApplyEnvToConfig(&cfg)
	if cfg.OutputPath != "env_corpus.txt" || cfg.SourcesPath != "env_sources.yaml" {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.CacheDir != "/tmp/corpus-cache" || cfg.UserAgent != "env-agent/1.0" {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestApplyEnvToConfig_ExplicitWins(t *testing.T) {
	t.Setenv("CORPUS_OUTPUT", "env_corpus.txt")
	cfg := Config{OutputPath: "flag_corpus.txt"}
	ApplyEnvToConfig(&cfg)
	if cfg.OutputPath != "flag_corpus.txt" {
		t.Fatalf("explicit value lost: %q", cfg.OutputPath)
	}
}

func TestLoadConfigFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `output: works.txt
sources: works.yaml
fetch:
  ua: custom/2.0
  maxAttempts: 2
cache:
  dir: .corpus-cache
  clear: true
verbose: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if fc.Output != "works.txt" || fc.Fetch.UA != "custom/2.0" || fc.Fetch.MaxAttempts != 2 {
		t.Fatalf("unexpected config: %+v", fc)
	}
	if fc.Cache.Dir != ".corpus-cache" || !fc.Cache.Clear || !fc.Verbose {
		t.Fatalf("unexpected config: %+v", fc)
	}
}

func TestLoadConfigFile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"output": "works.txt", "fetch": {"ua": "custom/2.0"}}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if fc.Output != "works.txt" || fc.Fetch.UA != "custom/2.0" {
		t.Fatalf("unexpected config: %+v", fc)
	}
}

func TestApplyFileConfig_FlagsWin(t *testing.T) {
	cfg := Config{OutputPath: "flag.txt"}
	var fc FileConfig
	fc.Output = "file.txt"
	fc.Sources = "file_sources.yaml"
	ApplyFileConfig(&cfg, fc)
	if cfg.OutputPath != "flag.txt" {
		t.Fatalf("flag value lost: %q", cfg.OutputPath)
	}
	if cfg.SourcesPath != "file_sources.yaml" {
		t.Fatalf("unset field not filled: %q", cfg.SourcesPath)
	}
}
