package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	c := &HTTPCache{Dir: t.TempDir()}
	ctx := context.Background()
	url := "https://www.aozora.gr.jp/cards/000035/files/1567_ruby_4948.zip"
	body := []byte{0x50, 0x4b, 0x03, 0x04}

	if err := c.Save(ctx, url, "application/zip", `"etag1"`, "Mon, 01 Jan 2024 00:00:00 GMT", body); err != nil {
		t.Fatalf("save: %v", err)
	}

	meta, err := c.LoadMeta(ctx, url)
	if err != nil {
		t.Fatalf("load meta: %v", err)
	}
	if meta.ETag != `"etag1"` || meta.ContentType != "application/zip" {
		t.Fatalf("unexpected meta: %+v", meta)
	}

	got, err := c.LoadBody(ctx, url)
	if err != nil {
		t.Fatalf("load body: %v", err)
	}
	if string(got) != string(body) {
		t.Fatalf("body mismatch: %v", got)
	}
}

func TestLoadMeta_Miss(t *testing.T) {
	c := &HTTPCache{Dir: t.TempDir()}
	if _, err := c.LoadMeta(context.Background(), "https://example.com/none.zip"); err == nil {
		t.Fatal("expected error on cache miss")
	}
}

func TestUnconfiguredCache(t *testing.T) {
	c := &HTTPCache{}
	if err := c.Save(context.Background(), "u", "", "", "", nil); err == nil {
		t.Fatal("expected error for unconfigured cache dir")
	}
}

func TestClearDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "stale.body"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := ClearDir(dir); err != nil {
		t.Fatalf("clear: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("dir not recreated: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty dir, found %d entries", len(entries))
	}
}

func TestPurgeByAge(t *testing.T) {
	dir := t.TempDir()
	c := &HTTPCache{Dir: dir}
	ctx := context.Background()

	if err := c.Save(ctx, "https://example.com/fresh.zip", "application/zip", "", "", []byte("fresh")); err != nil {
		t.Fatal(err)
	}
	if err := c.Save(ctx, "https://example.com/old.zip", "application/zip", "", "", []byte("old")); err != nil {
		t.Fatal(err)
	}

	// Backdate the second entry's meta beyond the purge horizon.
	oldKey := c.key("https://example.com/old.zip")
	metaPath := filepath.Join(dir, oldKey+".meta.json")
	b, err := os.ReadFile(metaPath)
	if err != nil {
		t.Fatal(err)
	}
	var e Entry
	if err := json.Unmarshal(b, &e); err != nil {
		t.Fatal(err)
	}
	e.SavedAt = time.Now().UTC().Add(-48 * time.Hour)
	b, _ = json.Marshal(&e)
	if err := os.WriteFile(metaPath, b, 0o644); err != nil {
		t.Fatal(err)
	}

	removed, err := PurgeByAge(dir, 24*time.Hour)
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}
	entries, _ := os.ReadDir(dir)
	for _, ent := range entries {
		if strings.Contains(ent.Name(), oldKey) {
			t.Fatalf("expired entry still present: %s", ent.Name())
		}
	}
	if _, err := c.LoadBody(ctx, "https://example.com/fresh.zip"); err != nil {
		t.Fatalf("fresh entry purged: %v", err)
	}
}

func TestPurgeByAge_ZeroDisables(t *testing.T) {
	removed, err := PurgeByAge(t.TempDir(), 0)
	if err != nil || removed != 0 {
		t.Fatalf("expected no-op, got removed=%d err=%v", removed, err)
	}
}
