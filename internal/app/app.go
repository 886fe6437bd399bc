package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/aozoracorpus/internal/archive"
	"github.com/hyperifyio/aozoracorpus/internal/cache"
	"github.com/hyperifyio/aozoracorpus/internal/clean"
	"github.com/hyperifyio/aozoracorpus/internal/fetch"
	"github.com/hyperifyio/aozoracorpus/internal/sources"
)

// ErrNoData is returned when every source failed and there is nothing to
// write. The CLI maps it to a distinct exit code.
var ErrNoData = errors.New("no text data extracted")

// corpusSeparator joins cleaned works in the output file.
const corpusSeparator = "\n\n"

// previewRunes is how much of each cleaned text is echoed to the console
// as a sample, newlines flattened.
const previewRunes = 50

type App struct {
	cfg       Config
	httpCache *cache.HTTPCache
}

func New(cfg Config) (*App, error) {
	a := &App{cfg: cfg}
	if cfg.CacheDir != "" {
		if cfg.CacheClear {
			_ = cache.ClearDir(cfg.CacheDir)
		}
		if cfg.CacheMaxAge > 0 {
			// Purge by age; ignore errors to avoid failing startup
			_, _ = cache.PurgeByAge(cfg.CacheDir, cfg.CacheMaxAge)
		}
		a.httpCache = &cache.HTTPCache{Dir: cfg.CacheDir}
	}
	return a, nil
}

// Summary reports the outcome of a corpus build.
type Summary struct {
	OutputPath string
	Written    bool
	TotalChars int
	Succeeded  int
	Failed     int
}

// workResult is the explicit per-source outcome: either cleaned text or
// the reason the source contributed nothing. The always-continue policy
// is a branch on this value, not an exception boundary.
type workResult struct {
	work sources.Work
	text string
	err  error
}

func (r workResult) ok() bool { return r.err == nil }

// Run executes the whole pipeline: resolve the source list, download and
// clean each work in order, and write the joined corpus plus its sidecar
// manifest. Per-source failures are logged and skipped; only a run where
// every source failed returns ErrNoData.
func (a *App) Run(ctx context.Context) (Summary, error) {
	works, err := a.resolveSources()
	if err != nil {
		return Summary{}, err
	}
	log.Info().Int("works", len(works)).Msg("starting download and processing")

	client := &fetch.Client{
		UserAgent:         a.cfg.UserAgent,
		MaxAttempts:       a.cfg.MaxAttempts,
		PerRequestTimeout: a.cfg.Timeout,
		Cache:             a.httpCache,
		RedirectMaxHops:   5,
	}
	results := harvest(ctx, &fetchClient{client: client}, works)

	summary := Summary{OutputPath: a.cfg.OutputPath}
	texts := make([]string, 0, len(results))
	for _, r := range results {
		if r.ok() {
			summary.Succeeded++
			summary.TotalChars += utf8.RuneCountInString(r.text)
			texts = append(texts, r.text)
		} else {
			summary.Failed++
		}
	}

	if len(texts) == 0 {
		log.Warn().Msg("no text data extracted")
		return summary, ErrNoData
	}

	if err := os.WriteFile(a.cfg.OutputPath, []byte(strings.Join(texts, corpusSeparator)), 0o644); err != nil {
		return summary, fmt.Errorf("write corpus: %w", err)
	}
	summary.Written = true

	meta := manifestMeta{
		GeneratedAt: time.Now().UTC(),
		SourceCount: summary.Succeeded,
		TotalChars:  summary.TotalChars,
		HTTPCache:   a.httpCache != nil,
	}
	if data, err := marshalManifestJSON(meta, buildManifestEntries(results)); err == nil {
		_ = os.WriteFile(manifestSidecarPath(a.cfg.OutputPath), data, 0o644)
	}

	log.Info().
		Str("out", a.cfg.OutputPath).
		Int("total_chars", summary.TotalChars).
		Int("failed", summary.Failed).
		Msg("corpus written")
	return summary, nil
}

func (a *App) resolveSources() ([]sources.Work, error) {
	works := sources.Default()
	if a.cfg.SourcesPath != "" {
		loaded, err := sources.Load(a.cfg.SourcesPath)
		if err != nil {
			return nil, err
		}
		works = loaded
	}
	normalized := sources.Normalize(works)
	if dropped := len(works) - len(normalized); dropped > 0 {
		log.Warn().Int("dropped", dropped).Msg("invalid or duplicate source entries ignored")
	}
	if len(normalized) == 0 {
		return nil, errors.New("source list is empty after normalization")
	}
	return normalized, nil
}

// sourceGetter abstracts the minimal fetch method so harvest can be
// tested without a live client.
type sourceGetter interface {
	get(ctx context.Context, url string) ([]byte, string, error)
}

// fetchClient adapts fetch.Client to keep this package decoupled from
// the exact fetcher API shape.
type fetchClient struct {
	client *fetch.Client
}

func (f *fetchClient) get(ctx context.Context, url string) ([]byte, string, error) {
	if f == nil || f.client == nil {
		return nil, "", fmt.Errorf("fetch client not configured")
	}
	return f.client.Get(ctx, url)
}

// harvest runs the fetch→extract→clean pipeline for each work in list
// order. One work's failure never affects another's result; the returned
// slice holds one result per work, in the same order.
func harvest(ctx context.Context, g sourceGetter, works []sources.Work) []workResult {
	results := make([]workResult, 0, len(works))
	for _, w := range works {
		log.Info().Str("file", w.FileName()).Str("title", w.Title).Msg("processing")
		r := processWork(ctx, g, w)
		if r.ok() {
			log.Info().Str("file", w.FileName()).Str("sample", preview(r.text)).Msg("done")
		} else {
			log.Warn().Err(r.err).Str("file", w.FileName()).Msg("failed; skipping source")
		}
		results = append(results, r)
	}
	return results
}

func processWork(ctx context.Context, g sourceGetter, w sources.Work) workResult {
	body, _, err := g.get(ctx, w.URL)
	if err != nil {
		return workResult{work: w, err: fmt.Errorf("fetch: %w", err)}
	}
	raw, err := archive.ExtractText(body)
	if err != nil {
		return workResult{work: w, err: err}
	}
	text := clean.Clean(raw)
	if text == "" {
		return workResult{work: w, err: errors.New("empty after cleaning")}
	}
	return workResult{work: w, text: text}
}

// preview returns the first previewRunes characters with newlines
// flattened to spaces, for console samples.
func preview(text string) string {
	flat := strings.ReplaceAll(text, "\n", " ")
	runes := []rune(flat)
	if len(runes) <= previewRunes {
		return flat
	}
	return string(runes[:previewRunes]) + "..."
}
