package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ThandieOps/dirtree/internal/scanner"
	"github.com/ThandieOps/dirtree/internal/tree"
)

func TestSaveAndLoadSummary(t *testing.T) {
	c, err := NewAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}

	opts := scanner.Options{Root: "/work/project", Angular: true, IgnoreDirs: []string{"vendor"}}
	summary := tree.Summary{Total: 3, ByDepth: tree.DepthCounts{1: 2, 2: 1}}

	if c.HasCachedResult("/work/project") {
		t.Fatal("cache should start empty")
	}
	if err := c.SaveSummary("/work/project", opts, summary); err != nil {
		t.Fatalf("SaveSummary() error = %v", err)
	}
	if !c.HasCachedResult("/work/project") {
		t.Fatal("expected cached result after save")
	}

	record, err := c.LoadSummary("/work/project")
	if err != nil {
		t.Fatalf("LoadSummary() error = %v", err)
	}
	if record.Root != "/work/project" || record.ScannedAt.IsZero() {
		t.Errorf("record = %+v", record)
	}
	if !record.Options.Angular || len(record.Options.IgnoreDirs) != 1 {
		t.Errorf("Options = %+v", record.Options)
	}
	if record.Summary.Total != 3 || record.Summary.ByDepth[1] != 2 || record.Summary.ByDepth[2] != 1 {
		t.Errorf("Summary = %+v", record.Summary)
	}
}

func TestLoadSummaryMissing(t *testing.T) {
	c, err := NewAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.LoadSummary("/never/scanned"); err == nil {
		t.Error("expected error for missing summary")
	}
}

func TestCacheFilePathPerRoot(t *testing.T) {
	c, err := NewAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	a := c.GetCacheFilePath("/a")
	b := c.GetCacheFilePath("/b")
	if a == b {
		t.Errorf("different roots share cache file %s", a)
	}
	if a != c.GetCacheFilePath("/a") {
		t.Error("cache file path is not stable")
	}
	if filepath.Dir(a) != c.GetCacheDir() {
		t.Errorf("cache file %s outside %s", a, c.GetCacheDir())
	}
}

func TestClearCache(t *testing.T) {
	dir := t.TempDir()
	c, err := NewAt(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, root := range []string{"/a", "/b"} {
		if err := c.SaveSummary(root, scanner.Options{Root: root}, tree.NewSummary()); err != nil {
			t.Fatal(err)
		}
	}
	other := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(other, []byte("keep"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := c.ClearCache(); err != nil {
		t.Fatalf("ClearCache() error = %v", err)
	}
	if c.HasCachedResult("/a") || c.HasCachedResult("/b") {
		t.Error("summaries survived ClearCache")
	}
	if _, err := os.Stat(other); err != nil {
		t.Errorf("non-summary file removed: %v", err)
	}
}
