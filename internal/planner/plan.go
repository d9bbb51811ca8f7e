package planner

import (
	"fmt"
	"path/filepath"

	"github.com/danieljhkim/fsbatch/internal/task"
)

// Transform computes the planned task for a single candidate path.
// It must be pure: no filesystem access and no shared state.
type Transform func(path string) task.PlannedTask

// Plan applies transform to every candidate and returns the tasks in
// reporting order (see task.Compare). Planning never fails.
func Plan(candidates []string, transform Transform) []task.PlannedTask {
	tasks := make([]task.PlannedTask, 0, len(candidates))
	for _, candidate := range candidates {
		tasks = append(tasks, transform(candidate))
	}
	task.Sort(tasks)
	return tasks
}

// ToRoot relocates a file directly into root, keeping its filename.
func ToRoot(root string) Transform {
	return func(path string) task.PlannedTask {
		return task.New(path, filepath.Join(root, fileName(path)))
	}
}

// StripPrefix removes the first n characters of the filename and keeps the
// parent directory. Callers must only pass files whose name is longer than
// n characters.
func StripPrefix(n int) Transform {
	return func(path string) task.PlannedTask {
		name := []rune(fileName(path))
		if n < 0 || n >= len(name) {
			panic(fmt.Sprintf("planner: cannot strip %d characters from %q", n, string(name)))
		}
		return task.New(path, filepath.Join(filepath.Dir(path), string(name[n:])))
	}
}

// fileName returns the last element of path and panics when there is none.
func fileName(path string) string {
	name := filepath.Base(path)
	if name == "." || name == string(filepath.Separator) || name == "" {
		panic(fmt.Sprintf("planner: path %q has no file name", path))
	}
	return name
}
