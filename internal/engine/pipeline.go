package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/danieljhkim/fsbatch/internal/logging"
	"github.com/danieljhkim/fsbatch/internal/planner"
	"github.com/danieljhkim/fsbatch/internal/task"
)

// Outcome is what the Execute stage hands back.
type Outcome struct {
	Result    task.BatchResult
	Completed []task.PlannedTask
	Failures  []task.FailedOperation
}

// Pipeline describes one run of a tool as a set of stage functions.
// Plan, Check and Execute are required; the hooks are optional.
//
// Paths flowing between stages are absolute; Run relativizes them against
// WorkingDir for the report and the Result.
type Pipeline struct {
	RunID      string
	Tool       string
	Verb       string
	WorkingDir string
	DryRun     bool

	// Plan discovers candidates and maps them to tasks in report order.
	Plan func() ([]task.PlannedTask, error)

	// Check returns a *planner.ConflictError when the plan is unsafe. Any
	// other error means the check itself could not run.
	Check func(tasks []task.PlannedTask) error

	// BeforeExecute runs after a passing check, only when executing.
	// An error aborts the run with nothing renamed.
	BeforeExecute func(tasks []task.PlannedTask) error

	// Execute performs the batch. It must attempt every task.
	Execute func(tasks []task.PlannedTask) Outcome

	// Record persists the outcome (journal). Failures are warnings.
	Record func(out Outcome) (string, error)

	// Cleanup runs after execution and returns the directories it removed.
	Cleanup func() []string
}

// Run drives p through plan, check, and execute, reporting every step.
//
// The returned Result is nil only when planning or checking could not run.
// Conflicts, aborted hooks and failed tasks return a Result together with an
// error wrapping ErrConflict, ErrAborted or ErrExecution.
func Run(ctx context.Context, p *Pipeline, rep *Reporter, logger *logging.Logger) (*Result, error) {
	if logger == nil {
		logger = logging.NopLogger()
	}
	wd := p.WorkingDir
	res := &Result{
		RunID:      p.RunID,
		Tool:       p.Tool,
		WorkingDir: wd,
	}

	rep.Title(p.Tool)

	tasks, err := p.Plan()
	if err != nil {
		return nil, fmt.Errorf("failed to plan %ss: %w", p.Verb, err)
	}
	res.Tasks = task.RelativizeAll(tasks, wd)
	logger.WithPhase("plan").Info("planned", "tasks", len(tasks))

	if len(tasks) == 0 {
		rep.NothingToDo()
		res.State = StateNoOp
		return res, nil
	}
	rep.Plan(res.Tasks)

	rep.Checking()
	if err := p.Check(tasks); err != nil {
		var conflict *planner.ConflictError
		if !errors.As(err, &conflict) {
			return nil, fmt.Errorf("failed to check %ss: %w", p.Verb, err)
		}
		rel := conflict.Relativize(wd)
		res.Conflicts = rel.Failures
		res.State = StateAborted
		rep.Conflicts(rel.Failures)
		logger.WithPhase("check").Warn("conflicts detected", "count", len(rel.Failures))
		return res, fmt.Errorf("%w: %w", ErrConflict, conflict)
	}
	rep.ChecksPassed()

	if p.DryRun {
		rep.DryRun()
		res.State = StateReportedOnly
		return res, nil
	}

	if err := ctx.Err(); err != nil {
		res.State = StateAborted
		return res, fmt.Errorf("%w: %w", ErrAborted, err)
	}

	if p.BeforeExecute != nil {
		if err := p.BeforeExecute(tasks); err != nil {
			rep.BeforeExecute(true, err)
			res.State = StateAborted
			logger.WithPhase("before").Error("pre-execution hook failed", "error", err.Error())
			return res, fmt.Errorf("%w: %w", ErrAborted, err)
		}
		rep.BeforeExecute(true, nil)
	} else {
		rep.BeforeExecute(false, nil)
	}

	rep.Executing()
	out := p.Execute(tasks)
	res.Batch = &out.Result
	res.Failures = task.RelativizeFailures(out.Failures, wd)
	rep.Summary(out.Result, res.Failures)
	logger.WithPhase("execute").Info("batch finished", "successful", out.Result.Successful, "failed", out.Result.Failed)

	if p.Record != nil {
		path, err := p.Record(out)
		if err != nil {
			rep.Warn("%v", err)
			logger.Warn("journal not written", "error", err.Error())
		} else {
			res.Journal = path
			rep.Journal(path)
		}
	}

	if p.Cleanup != nil {
		removed := p.Cleanup()
		res.Cleanup = true
		res.Removed = make([]string, 0, len(removed))
		for _, dir := range removed {
			res.Removed = append(res.Removed, task.Relativize(dir, wd))
		}
		rep.AfterExecute(true, len(removed))
	} else {
		rep.AfterExecute(false, 0)
	}

	res.State = StateDone
	if out.Result.Failed > 0 {
		return res, fmt.Errorf("%w: %d of %d %ss failed", ErrExecution, out.Result.Failed, out.Result.Total(), p.Verb)
	}
	return res, nil
}
