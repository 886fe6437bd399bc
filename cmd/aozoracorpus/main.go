package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/aozoracorpus/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		outputPath  string
		sourcesPath string
		configPath  string
		userAgent   string
		timeout     time.Duration
		maxAttempts int
		cacheDir    string
		cacheMaxAge time.Duration
		cacheClear  bool
		verbose     bool
		showVersion bool
	)

	flag.StringVar(&outputPath, "output", "", "Path to write the corpus file (default dazai_corpus.txt)")
	flag.StringVar(&sourcesPath, "sources", "", "YAML manifest of works to download (default: built-in Dazai catalog)")
	flag.StringVar(&configPath, "config", "", "Path to YAML/JSON config file")
	flag.StringVar(&userAgent, "ua", "", "Custom User-Agent for archive requests")
	flag.DurationVar(&timeout, "timeout", 0, "Per-request timeout (default 30s)")
	flag.IntVar(&maxAttempts, "max.attempts", 0, "Fetch attempts per source including the first (default 1)")
	flag.StringVar(&cacheDir, "cache.dir", "", "HTTP cache directory (empty disables caching)")
	flag.DurationVar(&cacheMaxAge, "cache.maxAge", 0, "Max age for cache entries before purge (e.g. 24h); 0 disables")
	flag.BoolVar(&cacheClear, "cache.clear", false, "Clear cache directory before run")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.BoolVar(&showVersion, "version", false, "Print build information and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("aozoracorpus %s (commit %s, built %s)\n", app.BuildVersion, app.BuildCommit, app.BuildDate)
		return
	}

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := app.Config{
		OutputPath:  outputPath,
		SourcesPath: sourcesPath,
		UserAgent:   userAgent,
		Timeout:     timeout,
		MaxAttempts: maxAttempts,
		CacheDir:    cacheDir,
		CacheMaxAge: cacheMaxAge,
		CacheClear:  cacheClear,
		Verbose:     verbose,
	}

	// Resolution order: explicit flags, then config file, then env, then
	// built-in defaults.
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("config", configPath).Msg("load config failed")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	app.ApplyEnvToConfig(&cfg)
	app.ApplyDefaults(&cfg)

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		// Exit code policy: 2 only when every source failed and nothing
		// was written; other errors exit 1.
		if errors.Is(err, app.ErrNoData) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	ctx := context.Background()

	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	_, err = a.Run(ctx)
	return err
}
