// Package task defines the value types shared by every stage of a batch run.
//
// A PlannedTask is a proposed rename that has not happened yet. A
// FailedOperation records why a task was refused (conflict check) or why it
// failed (executor). BatchResult carries the aggregate counts of an executed
// batch. None of these types are mutated after creation; stages filter and
// sort them but never edit them in place.
package task

import (
	"cmp"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// PlannedTask is one proposed filesystem rename.
type PlannedTask struct {
	// Source is the path the file currently lives at (absolute).
	Source string `json:"source"`

	// Destination is the path the file will be renamed to (absolute).
	Destination string `json:"destination"`
}

// New creates a PlannedTask.
func New(source, destination string) PlannedTask {
	return PlannedTask{Source: source, Destination: destination}
}

// String renders the task as "<source> -> <destination>".
func (t PlannedTask) String() string {
	return fmt.Sprintf("%s -> %s", t.Source, t.Destination)
}

// Fail converts the task into a FailedOperation keyed by its source.
func (t PlannedTask) Fail(reason string) FailedOperation {
	return FailedOperation{Path: t.Source, Reason: reason}
}

// Relativize returns a copy of the task with both paths relative to base.
func (t PlannedTask) Relativize(base string) PlannedTask {
	return PlannedTask{
		Source:      Relativize(t.Source, base),
		Destination: Relativize(t.Destination, base),
	}
}

// FailedOperation records a task that was refused or failed.
type FailedOperation struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// String renders the failure as "<path> => <reason>".
func (f FailedOperation) String() string {
	return fmt.Sprintf("%s => %s", f.Path, f.Reason)
}

// Relativize returns a copy of the failure with its path relative to base.
func (f FailedOperation) Relativize(base string) FailedOperation {
	return FailedOperation{Path: Relativize(f.Path, base), Reason: f.Reason}
}

// BatchResult holds the outcome counts of an executed batch.
// Successful + Failed always equals the number of tasks attempted.
type BatchResult struct {
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// Total returns the number of tasks the batch attempted.
func (r BatchResult) Total() int {
	return r.Successful + r.Failed
}

// Components returns the number of path components in p.
// "/a/b/c.txt" and "a/b/c.txt" both have three.
func Components(p string) int {
	n := 0
	for _, part := range strings.Split(filepath.ToSlash(filepath.Clean(p)), "/") {
		if part != "" && part != "." {
			n++
		}
	}
	return n
}

// ComparePaths orders paths by component count, then lexically.
func ComparePaths(a, b string) int {
	if c := cmp.Compare(Components(a), Components(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// Compare orders tasks for reporting: shallower sources first, then
// lexically by source. Destination only breaks ties between equal sources.
func Compare(a, b PlannedTask) int {
	if c := ComparePaths(a.Source, b.Source); c != 0 {
		return c
	}
	return strings.Compare(a.Destination, b.Destination)
}

// CompareFailures orders failures with the same rule as Compare.
func CompareFailures(a, b FailedOperation) int {
	if c := ComparePaths(a.Path, b.Path); c != 0 {
		return c
	}
	return strings.Compare(a.Reason, b.Reason)
}

// Sort sorts tasks in place using Compare.
func Sort(tasks []PlannedTask) {
	slices.SortStableFunc(tasks, Compare)
}

// SortFailures sorts failures in place using CompareFailures.
func SortFailures(failures []FailedOperation) {
	slices.SortStableFunc(failures, CompareFailures)
}

// RelativizeAll relativizes every task against base.
func RelativizeAll(tasks []PlannedTask, base string) []PlannedTask {
	out := make([]PlannedTask, len(tasks))
	for i, t := range tasks {
		out[i] = t.Relativize(base)
	}
	return out
}

// RelativizeFailures relativizes every failure against base.
func RelativizeFailures(failures []FailedOperation, base string) []FailedOperation {
	out := make([]FailedOperation, len(failures))
	for i, f := range failures {
		out[i] = f.Relativize(base)
	}
	return out
}

// Relativize returns path relative to base for display. Paths that cannot be
// expressed relative to base are returned unchanged.
func Relativize(path, base string) string {
	if base == "" {
		return path
	}
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return rel
}
