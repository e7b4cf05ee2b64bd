package bangs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wajeht/bang/internal/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoaderDataset(t *testing.T) {
	dir := t.TempDir()
	dataset := writeFile(t, dir, "bangs.json", `[
		{"t": "g", "u": "https://www.google.com/search?q={{{s}}}", "d": "www.google.com"},
		{"t": "gh", "u": "https://github.com/search?q={{{s}}}", "d": "github.com"},
		{"t": "", "u": "https://ignored.example", "d": "ignored.example"}
	]`)

	dict, err := NewLoader(dataset, "").Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if dict.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (empty trigger skipped)", dict.Len())
	}

	def, ok := dict.Lookup("g")
	if !ok {
		t.Fatal("Lookup(g) not found")
	}
	if def.HomeDomain != "www.google.com" {
		t.Errorf("HomeDomain = %q", def.HomeDomain)
	}
	if got, want := def.SearchURL("python"), "https://www.google.com/search?q=python"; got != want {
		t.Errorf("SearchURL = %q, want %q", got, want)
	}

	if _, ok := dict.Lookup("G"); ok {
		t.Error("Lookup is case-sensitive, Lookup(G) should miss")
	}
	if _, ok := dict.Lookup("nope"); ok {
		t.Error("Lookup(nope) should miss")
	}
}

func TestLoaderLocalOverrides(t *testing.T) {
	dir := t.TempDir()
	dataset := writeFile(t, dir, "bangs.json",
		`[{"t": "g", "u": "https://www.google.com/search?q={{{s}}}", "d": "www.google.com"}]`)
	local := writeFile(t, dir, "bangs.yaml", `
- trigger: g
  url: https://google.example/?q={{{s}}}
  domain: google.example
- trigger: wiki
  url: https://en.wikipedia.org/w/index.php?search={{{s}}}
  domain: en.wikipedia.org
`)

	dict, err := NewLoader(dataset, local).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if dict.Len() != 2 {
		t.Errorf("Len() = %d, want 2", dict.Len())
	}

	def, ok := dict.Lookup("g")
	if !ok {
		t.Fatal("Lookup(g) not found")
	}
	if def.HomeDomain != "google.example" {
		t.Errorf("local override lost: HomeDomain = %q", def.HomeDomain)
	}

	if _, ok := dict.Lookup("wiki"); !ok {
		t.Error("local-only entry missing")
	}
}

func TestLoaderMissingLocalIsFine(t *testing.T) {
	dir := t.TempDir()
	dataset := writeFile(t, dir, "bangs.json", `[]`)

	if _, err := NewLoader(dataset, filepath.Join(dir, "absent.yaml")).Load(); err != nil {
		t.Fatalf("missing local file should not error: %v", err)
	}
}

func TestLoaderErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := NewLoader(filepath.Join(dir, "absent.json"), "").Load(); err == nil {
		t.Error("missing dataset should error")
	}

	bad := writeFile(t, dir, "bad.json", `{not json`)
	if _, err := NewLoader(bad, "").Load(); err == nil {
		t.Error("malformed dataset should error")
	}
}

func TestCatalogSwap(t *testing.T) {
	c := NewCatalog()

	if c.Len() != 0 {
		t.Errorf("fresh catalog Len() = %d, want 0", c.Len())
	}
	if _, ok := c.Lookup("g"); ok {
		t.Error("fresh catalog should miss")
	}

	c.Swap(NewDict([]domain.BangDef{{Trigger: "g", URLTemplate: "u", HomeDomain: "d"}}))

	if _, ok := c.Lookup("g"); !ok {
		t.Error("Lookup(g) should hit after Swap")
	}
}
