package app

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"
)

// manifestEntry is a compact record of a single work included in the
// corpus.
type manifestEntry struct {
	Index  int    `json:"index"`
	Title  string `json:"title"`
	URL    string `json:"url"`
	SHA256 string `json:"sha256"`
	Chars  int    `json:"chars"`
}

// manifestMeta captures run details that aid reproducibility.
type manifestMeta struct {
	GeneratedAt time.Time `json:"generated_at"`
	SourceCount int       `json:"source_count"`
	TotalChars  int       `json:"total_chars"`
	HTTPCache   bool      `json:"http_cache"`
}

type manifestDoc struct {
	manifestMeta
	Works []manifestEntry `json:"works"`
}

func computeSHA256Hex(text string) string {
	h := sha256.Sum256([]byte(text))
	return hex.EncodeToString(h[:])
}

// buildManifestEntries lists the successful works in corpus order with
// the digest and rune count of the exact cleaned text written.
func buildManifestEntries(results []workResult) []manifestEntry {
	out := make([]manifestEntry, 0, len(results))
	index := 1
	for _, r := range results {
		if !r.ok() {
			continue
		}
		out = append(out, manifestEntry{
			Index:  index,
			Title:  r.work.Title,
			URL:    r.work.URL,
			SHA256: computeSHA256Hex(r.text),
			Chars:  utf8.RuneCountInString(r.text),
		})
		index++
	}
	return out
}

func marshalManifestJSON(meta manifestMeta, entries []manifestEntry) ([]byte, error) {
	return json.MarshalIndent(manifestDoc{manifestMeta: meta, Works: entries}, "", "  ")
}

// manifestSidecarPath derives the sidecar path from the corpus path:
// dazai_corpus.txt -> dazai_corpus.manifest.json.
func manifestSidecarPath(outputPath string) string {
	ext := filepath.Ext(outputPath)
	return strings.TrimSuffix(outputPath, ext) + ".manifest.json"
}
