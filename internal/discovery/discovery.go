// Package discovery finds the files a batch operation may act on.
//
// Discovery is read-only. It walks a root directory through fsops.FS,
// collects regular files within a depth limit, then runs the per-file
// filters (extension, hidden, nesting, name length, exclude globs) in
// parallel. No ordering is guaranteed; the planner sorts its output.
package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sourcegraph/conc/iter"

	"github.com/danieljhkim/fsbatch/internal/fsops"
	"github.com/danieljhkim/fsbatch/internal/task"
)

// Options controls which files ListCandidatePaths returns.
type Options struct {
	// MaxDepth limits the walk: root is depth 0, its children depth 1.
	// Zero means unlimited.
	MaxDepth int

	// Extensions keeps only files with one of these extensions (no dot).
	// Empty keeps everything.
	Extensions []string

	// IncludeHidden keeps dot-files and descends into dot-directories.
	IncludeHidden bool

	// NestedOnly drops files that sit directly inside root.
	NestedOnly bool

	// MinNameLength drops files whose name is MinNameLength characters
	// or shorter.
	MinNameLength int

	// Exclude drops files whose root-relative slash path matches any of
	// these doublestar patterns.
	Exclude []string
}

// Validate checks the options for malformed values.
func (o Options) Validate() error {
	if o.MaxDepth < 0 {
		return fmt.Errorf("invalid depth %d: must not be negative", o.MaxDepth)
	}
	for _, pattern := range o.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}
	return nil
}

// ListCandidatePaths returns the files under root that pass every filter in
// opts.
func ListCandidatePaths(fsys fsops.FS, root string, opts Options) ([]string, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	files, err := walkFiles(fsys, root, opts.MaxDepth, !opts.IncludeHidden)
	if err != nil {
		return nil, err
	}

	keep := iter.Map(files, func(path *string) bool {
		return opts.accept(root, *path)
	})

	candidates := make([]string, 0, len(files))
	for i, path := range files {
		if keep[i] {
			candidates = append(candidates, path)
		}
	}
	return candidates, nil
}

// ListFiles returns every regular file under root within maxDepth
// (0 = unlimited), hidden ones included.
func ListFiles(fsys fsops.FS, root string, maxDepth int) ([]string, error) {
	return walkFiles(fsys, root, maxDepth, false)
}

// ListDirs returns every directory below root, root itself excluded.
func ListDirs(fsys fsops.FS, root string) ([]string, error) {
	var dirs []string
	err := fsys.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if info.IsDir() && path != root {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list directories under %s: %w", root, err)
	}
	return dirs, nil
}

// IsHidden reports whether the last element of path starts with a dot.
func IsHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}

// Depth returns how many levels below root path is.
func Depth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return 0
	}
	return task.Components(rel)
}

func walkFiles(fsys fsops.FS, root string, maxDepth int, skipHidden bool) ([]string, error) {
	var files []string
	err := fsys.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Unreadable entries below root are skipped, as the walk is a snapshot.
			if path == root {
				return err
			}
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}

		depth := Depth(root, path)
		if info.IsDir() {
			if skipHidden && IsHidden(path) {
				return filepath.SkipDir
			}
			if maxDepth > 0 && depth >= maxDepth {
				return filepath.SkipDir
			}
			return nil
		}

		if maxDepth > 0 && depth > maxDepth {
			return nil
		}
		if info.Mode().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("directory %s does not exist: %w", root, err)
		}
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return files, nil
}

// accept applies the per-file filters. It is safe to call concurrently.
func (o Options) accept(root, path string) bool {
	if !o.IncludeHidden && IsHidden(path) {
		return false
	}
	if o.NestedOnly && Depth(root, path) < 2 {
		return false
	}
	if o.MinNameLength > 0 && utf8.RuneCountInString(filepath.Base(path)) <= o.MinNameLength {
		return false
	}
	if len(o.Extensions) > 0 && !slices.Contains(o.Extensions, extension(path)) {
		return false
	}
	if len(o.Exclude) > 0 {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return false
		}
		rel = filepath.ToSlash(rel)
		for _, pattern := range o.Exclude {
			if matched, _ := doublestar.Match(pattern, rel); matched {
				return false
			}
		}
	}
	return true
}

// extension returns the file extension without its leading dot.
func extension(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}

// NormalizeExtensions trims dots and whitespace and drops empty entries, so
// "--extensions .txt,md" and "--extensions txt --extensions md" agree.
func NormalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext != "" && !slices.Contains(out, ext) {
			out = append(out, ext)
		}
	}
	return out
}
