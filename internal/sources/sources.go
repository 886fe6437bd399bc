// Package sources defines the catalog of works to download: a built-in
// default list plus an optional YAML manifest override.
package sources

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// Work identifies one downloadable archived text.
type Work struct {
	Title string `yaml:"title" json:"title"`
	URL   string `yaml:"url" json:"url"`
}

// FileName returns the archive file name at the end of the work's URL,
// used for progress reporting.
func (w Work) FileName() string {
	u, err := url.Parse(w.URL)
	if err != nil || u.Path == "" {
		return w.URL
	}
	return path.Base(u.Path)
}

// Manifest is the on-disk schema of a sources file.
type Manifest struct {
	Works []Work `yaml:"works" json:"works"`
}

// Load reads a YAML sources manifest. An empty or work-less manifest is
// an error: a run with nothing to fetch is a configuration mistake, not
// a valid empty corpus.
func Load(path string) ([]Work, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parse sources: %w", err)
	}
	if len(m.Works) == 0 {
		return nil, fmt.Errorf("sources %s: no works listed", path)
	}
	return m.Works, nil
}

// Normalize canonicalizes URLs (lowercased host, no fragment, no common
// tracking parameters) and drops duplicates and non-HTTP(S) entries,
// preserving first-seen order.
func Normalize(works []Work) []Work {
	seen := map[string]struct{}{}
	out := make([]Work, 0, len(works))
	for _, w := range works {
		if w.URL == "" {
			continue
		}
		u, err := url.Parse(w.URL)
		if err != nil {
			continue
		}
		scheme := strings.ToLower(u.Scheme)
		if scheme != "http" && scheme != "https" {
			continue
		}
		normalizeURL(u)
		key := u.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		w.URL = key
		out = append(out, w)
	}
	return out
}

func normalizeURL(u *url.URL) {
	u.Fragment = ""
	u.Host = strings.ToLower(u.Host)
	q := u.Query()
	for _, p := range []string{"utm_source", "utm_medium", "utm_campaign", "utm_term", "utm_content", "utm_id", "gclid", "fbclid"} {
		q.Del(p)
	}
	u.RawQuery = q.Encode()
}
