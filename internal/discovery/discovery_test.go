package discovery

import (
	"path/filepath"
	"slices"
	"testing"

	"github.com/spf13/afero"

	"github.com/danieljhkim/fsbatch/internal/fsops"
)

// newTree builds an in-memory tree under /w from slash paths.
func newTree(t *testing.T, paths ...string) fsops.FS {
	t.Helper()
	mem := afero.NewMemMapFs()
	if err := mem.MkdirAll("/w", 0755); err != nil {
		t.Fatalf("failed to create root: %v", err)
	}
	for _, p := range paths {
		full := filepath.Join("/w", filepath.FromSlash(p))
		if p[len(p)-1] == '/' {
			if err := mem.MkdirAll(full, 0755); err != nil {
				t.Fatalf("failed to create dir %s: %v", p, err)
			}
			continue
		}
		if err := mem.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", p, err)
		}
		if err := afero.WriteFile(mem, full, []byte(p), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", p, err)
		}
	}
	return fsops.New(mem)
}

func relSorted(t *testing.T, paths []string) []string {
	t.Helper()
	out := make([]string, len(paths))
	for i, p := range paths {
		rel, err := filepath.Rel("/w", p)
		if err != nil {
			t.Fatalf("Rel(%q): %v", p, err)
		}
		out[i] = filepath.ToSlash(rel)
	}
	slices.Sort(out)
	return out
}

func TestListCandidatePaths(t *testing.T) {
	fsys := newTree(t,
		"top.txt",
		"001_a.md",
		".hidden.txt",
		"a/x.txt",
		"a/y.csv",
		"a/b/deep.txt",
		"a/b/c/deeper.txt",
		".git/config",
		"empty/",
	)

	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{
			name: "everything visible",
			opts: Options{},
			want: []string{"001_a.md", "a/b/c/deeper.txt", "a/b/deep.txt", "a/x.txt", "a/y.csv", "top.txt"},
		},
		{
			name: "depth one",
			opts: Options{MaxDepth: 1},
			want: []string{"001_a.md", "top.txt"},
		},
		{
			name: "nested only within depth three",
			opts: Options{MaxDepth: 3, NestedOnly: true},
			want: []string{"a/b/deep.txt", "a/x.txt", "a/y.csv"},
		},
		{
			name: "extension filter",
			opts: Options{Extensions: []string{"txt"}},
			want: []string{"a/b/c/deeper.txt", "a/b/deep.txt", "a/x.txt", "top.txt"},
		},
		{
			name: "hidden included",
			opts: Options{MaxDepth: 2, IncludeHidden: true, Extensions: []string{"txt", ""}},
			want: []string{".git/config", ".hidden.txt", "a/x.txt", "top.txt"},
		},
		{
			name: "min name length",
			opts: Options{MaxDepth: 1, MinNameLength: 7},
			want: []string{"001_a.md"},
		},
		{
			name: "exclude glob",
			opts: Options{Exclude: []string{"a/b/**"}},
			want: []string{"001_a.md", "a/x.txt", "a/y.csv", "top.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ListCandidatePaths(fsys, "/w", tt.opts)
			if err != nil {
				t.Fatalf("ListCandidatePaths() error = %v", err)
			}
			if rel := relSorted(t, got); !slices.Equal(rel, tt.want) {
				t.Errorf("ListCandidatePaths() = %v, want %v", rel, tt.want)
			}
		})
	}
}

func TestListCandidatePaths_Errors(t *testing.T) {
	fsys := newTree(t, "a.txt")

	if _, err := ListCandidatePaths(fsys, "/missing", Options{}); err == nil {
		t.Error("expected error for missing root")
	}
	if _, err := ListCandidatePaths(fsys, "/w", Options{Exclude: []string{"a/[b"}}); err == nil {
		t.Error("expected error for malformed exclude pattern")
	}
	if _, err := ListCandidatePaths(fsys, "/w", Options{MaxDepth: -1}); err == nil {
		t.Error("expected error for negative depth")
	}
}

func TestListFiles_IncludesHidden(t *testing.T) {
	fsys := newTree(t, "a.txt", ".b.txt", "sub/c.txt")

	got, err := ListFiles(fsys, "/w", 1)
	if err != nil {
		t.Fatalf("ListFiles() error = %v", err)
	}
	want := []string{".b.txt", "a.txt"}
	if rel := relSorted(t, got); !slices.Equal(rel, want) {
		t.Errorf("ListFiles() = %v, want %v", rel, want)
	}
}

func TestListDirs(t *testing.T) {
	fsys := newTree(t, "a/b/x.txt", "c/", "top.txt")

	got, err := ListDirs(fsys, "/w")
	if err != nil {
		t.Fatalf("ListDirs() error = %v", err)
	}
	want := []string{"a", "a/b", "c"}
	if rel := relSorted(t, got); !slices.Equal(rel, want) {
		t.Errorf("ListDirs() = %v, want %v", rel, want)
	}
}

func TestIsHidden(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/w/.env", true},
		{"/w/.git/config", false},
		{"/w/file.txt", false},
		{".hidden", true},
	}
	for _, tt := range tests {
		if got := IsHidden(tt.path); got != tt.want {
			t.Errorf("IsHidden(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestNormalizeExtensions(t *testing.T) {
	got := NormalizeExtensions([]string{".txt", " md ", "", "txt", ".csv"})
	want := []string{"txt", "md", "csv"}
	if !slices.Equal(got, want) {
		t.Errorf("NormalizeExtensions() = %v, want %v", got, want)
	}
}
