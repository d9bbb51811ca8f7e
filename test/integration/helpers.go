package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/danieljhkim/fsbatch/internal/clock"
	"github.com/danieljhkim/fsbatch/internal/engine"
	"github.com/danieljhkim/fsbatch/internal/fsops"
	"github.com/danieljhkim/fsbatch/internal/logging"
)

// setupTestEngine creates an engine over the real filesystem and a working
// directory seeded with files. Each file's content is its relative path.
func setupTestEngine(t *testing.T, files ...string) (*engine.Engine, string, *bytes.Buffer) {
	t.Helper()

	dir := t.TempDir()
	for _, f := range files {
		writeFile(t, dir, f)
	}

	var out bytes.Buffer
	clk := clock.NewStepClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), time.Second)
	eng := engine.New(fsops.NewRealFS(), clk, logging.NopLogger(), &out)
	return eng, dir, &out
}

func writeFile(t *testing.T, dir, rel string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(rel), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", rel, err)
	}
}

// tree lists every file and directory under dir as slash-separated
// relative paths. Directories end in "/".
func tree(t *testing.T, dir string) []string {
	t.Helper()
	var entries []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == dir {
			return nil
		}
		rel, _ := filepath.Rel(dir, path)
		rel = filepath.ToSlash(rel)
		if info.IsDir() {
			rel += "/"
		}
		entries = append(entries, rel)
		return nil
	})
	if err != nil {
		t.Fatalf("failed to walk %s: %v", dir, err)
	}
	sort.Strings(entries)
	return entries
}

// content returns the content of a file under dir.
func content(t *testing.T, dir, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("failed to read %s: %v", rel, err)
	}
	return string(data)
}

func equalTrees(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
