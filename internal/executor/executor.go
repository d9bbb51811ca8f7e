// Package executor applies planned renames to the filesystem.
//
// Every task in a batch is attempted. A failed rename is recorded against the
// task's index and the batch carries on; nothing is rolled back. Callers must
// run the conflict checker first: the executor assumes destinations are
// pairwise distinct and free.
package executor

import (
	"slices"

	"github.com/danieljhkim/fsbatch/internal/discovery"
	"github.com/danieljhkim/fsbatch/internal/fsops"
	"github.com/danieljhkim/fsbatch/internal/logging"
	"github.com/danieljhkim/fsbatch/internal/task"
)

// failure pairs a task index with the error its rename returned.
type failure struct {
	index int
	err   error
}

// Executor runs one batch of renames and remembers what failed.
type Executor struct {
	fs     fsops.FS
	logger *logging.Logger

	tasks  []task.PlannedTask
	failed []failure
}

// New creates an Executor.
func New(fs fsops.FS, logger *logging.Logger) *Executor {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Executor{fs: fs, logger: logger}
}

// Execute renames every task in order. Failures are isolated per task and
// never stop the batch. Calling Execute again starts a fresh batch.
func (e *Executor) Execute(tasks []task.PlannedTask) task.BatchResult {
	e.tasks = tasks
	e.failed = nil

	for i, t := range tasks {
		if err := e.fs.Rename(t.Source, t.Destination); err != nil {
			e.failed = append(e.failed, failure{index: i, err: err})
			e.logger.Warn("rename failed", "source", t.Source, "destination", t.Destination, "error", err.Error())
			continue
		}
		e.logger.Debug("renamed", "source", t.Source, "destination", t.Destination)
	}

	return task.BatchResult{
		Successful: len(tasks) - len(e.failed),
		Failed:     len(e.failed),
	}
}

// Failures returns one FailedOperation per failed task, keyed by the task's
// source path, in execution order.
func (e *Executor) Failures() []task.FailedOperation {
	out := make([]task.FailedOperation, 0, len(e.failed))
	for _, f := range e.failed {
		if f.index < 0 || f.index >= len(e.tasks) {
			continue
		}
		out = append(out, e.tasks[f.index].Fail(f.err.Error()))
	}
	return out
}

// Completed returns the tasks of the last batch that succeeded.
func (e *Executor) Completed() []task.PlannedTask {
	failed := make(map[int]struct{}, len(e.failed))
	for _, f := range e.failed {
		failed[f.index] = struct{}{}
	}

	out := make([]task.PlannedTask, 0, len(e.tasks)-len(e.failed))
	for i, t := range e.tasks {
		if _, ok := failed[i]; !ok {
			out = append(out, t)
		}
	}
	return out
}

// CleanupEmptyDirs removes directories under root that are empty, deepest
// first, so a chain of directories emptied by the batch disappears in one
// pass. root itself is kept. Every failure is ignored; the removed
// directories are returned.
func (e *Executor) CleanupEmptyDirs(root string) []string {
	dirs, err := discovery.ListDirs(e.fs, root)
	if err != nil {
		e.logger.Warn("cleanup skipped", "root", root, "error", err.Error())
		return nil
	}

	slices.SortFunc(dirs, func(a, b string) int {
		return task.ComparePaths(b, a)
	})

	var removed []string
	for _, dir := range dirs {
		empty, err := e.fs.IsEmptyDir(dir)
		if err != nil || !empty {
			continue
		}
		if err := e.fs.Remove(dir); err != nil {
			e.logger.Debug("directory not removed", "dir", dir, "error", err.Error())
			continue
		}
		removed = append(removed, dir)
	}

	e.logger.Info("cleanup finished", "removed", len(removed))
	return removed
}
