package planner

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/danieljhkim/fsbatch/internal/task"
)

// ErrWouldOverwrite is matched by every *ConflictError.
var ErrWouldOverwrite = errors.New("some files would be overwritten")

// ConflictError aggregates every overwrite hazard found in a plan.
type ConflictError struct {
	// Failures lists one record per offending task, in reporting order.
	Failures []task.FailedOperation
}

// Error implements error.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s (%d)", ErrWouldOverwrite.Error(), len(e.Failures))
}

// Is reports whether target is ErrWouldOverwrite.
func (e *ConflictError) Is(target error) bool {
	return target == ErrWouldOverwrite
}

// Relativize returns a copy with every failure path relative to base.
func (e *ConflictError) Relativize(base string) *ConflictError {
	return &ConflictError{Failures: task.RelativizeFailures(e.Failures, base)}
}

// ConflictChecker detects overwrite hazards in a plan before anything runs.
type ConflictChecker struct {
	verb string
}

// NewConflictChecker creates a ConflictChecker. verb names the operation in
// hazard descriptions ("move", "rename").
func NewConflictChecker(verb string) *ConflictChecker {
	return &ConflictChecker{verb: verb}
}

// NestedReason is the hazard text for two tasks sharing a destination.
func (c *ConflictChecker) NestedReason() string {
	return fmt.Sprintf("would overwrite another %sd file", c.verb)
}

// OuterReason is the hazard text for a destination occupied before the run.
func (c *ConflictChecker) OuterReason() string {
	return "would overwrite an existing file"
}

// Check looks for two hazard classes:
//   - nested clash: different sources planned onto the same destination
//   - outer clash: a destination that is an existing file (from existing),
//     even when that file is itself a planned source
//
// Tasks run in report order, so an occupant that is planned to move away may
// still be in place when another task lands on its path. Occupied
// destinations are therefore always hazards.
//
// Each offending task is reported once, with all of its reasons. Returns nil
// when the plan is safe to execute. Check has no side effects.
func (c *ConflictChecker) Check(tasks []task.PlannedTask, existing []string) *ConflictError {
	tasks = uniqueTasks(tasks)

	occupied := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		occupied[filepath.Clean(p)] = struct{}{}
	}

	// destination -> distinct sources targeting it
	claims := make(map[string]map[string]struct{}, len(tasks))
	for _, t := range tasks {
		dest := filepath.Clean(t.Destination)
		if claims[dest] == nil {
			claims[dest] = make(map[string]struct{}, 1)
		}
		claims[dest][filepath.Clean(t.Source)] = struct{}{}
	}

	var failures []task.FailedOperation
	for _, t := range tasks {
		dest := filepath.Clean(t.Destination)

		var reasons []string
		if len(claims[dest]) > 1 {
			reasons = append(reasons, c.NestedReason())
		}
		if _, taken := occupied[dest]; taken {
			reasons = append(reasons, c.OuterReason())
		}
		if len(reasons) > 0 {
			failures = append(failures, t.Fail(formatReasons(reasons)))
		}
	}

	if len(failures) == 0 {
		return nil
	}
	task.SortFailures(failures)
	return &ConflictError{Failures: failures}
}

// formatReasons renders reasons as a bullet list starting on a new line.
func formatReasons(reasons []string) string {
	return "\n- " + strings.Join(reasons, "\n- ")
}

// uniqueTasks drops exact duplicates, keeping first occurrences in order.
func uniqueTasks(tasks []task.PlannedTask) []task.PlannedTask {
	seen := make(map[task.PlannedTask]struct{}, len(tasks))
	out := make([]task.PlannedTask, 0, len(tasks))
	for _, t := range tasks {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
