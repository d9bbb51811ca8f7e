// Package journal records what an executed batch actually changed.
//
// A journal is a YAML file listing every completed move and every failure of
// one run. It exists so a user can put files back by hand; fsbatch only
// reads it back to display it, never to undo anything.
package journal

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/danieljhkim/fsbatch/internal/fsops"
	"github.com/danieljhkim/fsbatch/internal/task"
	"gopkg.in/yaml.v3"
)

// timestampLayout keeps journal names sortable and free of path separators.
const timestampLayout = "20060102T150405Z"

// Move is one completed rename.
type Move struct {
	From string `yaml:"from" json:"from"`
	To   string `yaml:"to" json:"to"`
}

// Failure is one rename that did not happen.
type Failure struct {
	Path   string `yaml:"path" json:"path"`
	Reason string `yaml:"reason" json:"reason"`
}

// Record is the content of a journal file.
type Record struct {
	RunID      string    `yaml:"run_id" json:"run_id"`
	Tool       string    `yaml:"tool" json:"tool"`
	WorkingDir string    `yaml:"working_dir" json:"working_dir"`
	StartedAt  time.Time `yaml:"started_at" json:"started_at"`
	FinishedAt time.Time `yaml:"finished_at" json:"finished_at"`
	Moves      []Move    `yaml:"moves" json:"moves"`
	Failures   []Failure `yaml:"failures,omitempty" json:"failures,omitempty"`
}

// NewRecord builds a record from an executed batch.
func NewRecord(runID, tool, workingDir string, completed []task.PlannedTask, failed []task.FailedOperation) *Record {
	r := &Record{
		RunID:      runID,
		Tool:       tool,
		WorkingDir: workingDir,
		Moves:      make([]Move, 0, len(completed)),
	}
	for _, t := range completed {
		r.Moves = append(r.Moves, Move{From: t.Source, To: t.Destination})
	}
	for _, f := range failed {
		r.Failures = append(r.Failures, Failure{Path: f.Path, Reason: f.Reason})
	}
	return r
}

// Writer persists records into a directory.
type Writer struct {
	fs  fsops.FS
	dir string
}

// NewWriter creates a Writer that stores journals under dir.
func NewWriter(fs fsops.FS, dir string) *Writer {
	return &Writer{fs: fs, dir: dir}
}

// Path returns where the journal of the given run is stored.
func (w *Writer) Path(r *Record) string {
	return filepath.Join(w.dir, fileName(r))
}

func fileName(r *Record) string {
	return fmt.Sprintf("%s-%s-%s.yaml", r.Tool, r.StartedAt.UTC().Format(timestampLayout), r.RunID)
}

// Write stores r and returns the file it was written to.
func (w *Writer) Write(r *Record) (string, error) {
	// The name must stay inside dir.
	if err := w.fs.ValidateRelPath(fileName(r)); err != nil {
		return "", fmt.Errorf("invalid journal name: %w", err)
	}

	data, err := yaml.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("failed to encode journal: %w", err)
	}

	path := w.Path(r)
	if err := w.fs.AtomicWrite(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write journal %s: %w", path, err)
	}
	return path, nil
}

// Read loads a journal file.
func Read(fsys fsops.FS, path string) (*Record, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read journal %s: %w", path, err)
	}

	var r Record
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to decode journal %s: %w", path, err)
	}
	return &r, nil
}

// List returns the journal files in dir sorted by name. A missing dir has
// no journals.
func List(fsys fsops.FS, dir string) ([]string, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list journals in %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		name := e.Name()
		if !e.Mode().IsRegular() || strings.HasPrefix(name, ".") || filepath.Ext(name) != ".yaml" {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}
	sort.Strings(paths)
	return paths, nil
}
