// Package engine runs fsbatch tools.
//
// The engine package sits between the CLI and the lower-level packages. Each
// tool (denest, rempref) builds a Pipeline from its request: discovery and a
// transform for planning, the conflict checker, the executor, and optional
// hooks. Run drives any Pipeline through the same state machine.
//
// Key components:
//   - Engine: holds the filesystem, clock, logger and report destination
//   - Pipeline/Run: plan, check, optional pre-hook, execute, post-hooks
//   - Reporter: the line-oriented console report
//   - Denest/Rempref: the two tools
package engine

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/danieljhkim/fsbatch/internal/clock"
	"github.com/danieljhkim/fsbatch/internal/discovery"
	"github.com/danieljhkim/fsbatch/internal/executor"
	"github.com/danieljhkim/fsbatch/internal/fsops"
	"github.com/danieljhkim/fsbatch/internal/journal"
	"github.com/danieljhkim/fsbatch/internal/logging"
	"github.com/danieljhkim/fsbatch/internal/planner"
	"github.com/danieljhkim/fsbatch/internal/task"
	"github.com/google/uuid"
)

// Engine runs fsbatch tools.
// It is the main API surface called by the CLI.
type Engine struct {
	fs     fsops.FS
	clock  clock.Clock
	logger *logging.Logger
	out    io.Writer
	newID  func() string
}

// New creates a new Engine. out receives the console report; nil discards it.
func New(fs fsops.FS, clk clock.Clock, logger *logging.Logger, out io.Writer) *Engine {
	if clk == nil {
		clk = clock.RealClock{}
	}
	if logger == nil {
		logger = logging.NopLogger()
	}
	if out == nil {
		out = io.Discard
	}
	return &Engine{
		fs:     fs,
		clock:  clk,
		logger: logger,
		out:    out,
		newID:  uuid.NewString,
	}
}

// newPipeline fills the fields every tool shares.
func (e *Engine) newPipeline(tool, verb, root string, execute bool) *Pipeline {
	return &Pipeline{
		RunID:      e.newID(),
		Tool:       tool,
		Verb:       verb,
		WorkingDir: root,
		DryRun:     !execute,
	}
}

// run logs the run boundaries around Run.
func (e *Engine) run(ctx context.Context, p *Pipeline) (*Result, error) {
	logger := e.logger.WithRun(p.RunID).With("tool", p.Tool)
	start := e.clock.Now()
	logger.Info("run started", "working_dir", p.WorkingDir, "dry_run", p.DryRun)

	res, err := Run(ctx, p, NewReporter(e.out, p.Verb), logger)

	attrs := []any{"elapsed", clock.Elapsed(e.clock, start).String()}
	if res != nil {
		attrs = append(attrs, "state", string(res.State))
	}
	if err != nil {
		logger.Error("run finished with error", append(attrs, "error", err.Error())...)
	} else {
		logger.Info("run finished", attrs...)
	}
	return res, err
}

// useExecutor wires an executor into p and returns it for the hooks.
func (e *Engine) useExecutor(p *Pipeline) *executor.Executor {
	ex := executor.New(e.fs, e.logger.WithRun(p.RunID).WithPhase("execute"))
	p.Execute = func(tasks []task.PlannedTask) Outcome {
		result := ex.Execute(tasks)
		return Outcome{
			Result:    result,
			Completed: ex.Completed(),
			Failures:  ex.Failures(),
		}
	}
	return ex
}

// conflictCheck checks tasks against the files within scopeDepth of root
// (0 = the whole tree).
func (e *Engine) conflictCheck(verb, root string, scopeDepth int) func([]task.PlannedTask) error {
	checker := planner.NewConflictChecker(verb)
	return func(tasks []task.PlannedTask) error {
		existing, err := discovery.ListFiles(e.fs, root, scopeDepth)
		if err != nil {
			return fmt.Errorf("failed to list existing files: %w", err)
		}
		if conflict := checker.Check(tasks, existing); conflict != nil {
			return conflict
		}
		return nil
	}
}

// useJournal makes p prepare dir before executing and record the outcome
// there afterwards. An empty dir leaves p unchanged.
func (e *Engine) useJournal(p *Pipeline, dir string) {
	if dir == "" {
		return
	}
	w := journal.NewWriter(e.fs, dir)
	var started time.Time

	p.BeforeExecute = func([]task.PlannedTask) error {
		started = e.clock.Now()
		if err := e.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to prepare journal directory %s: %w", dir, err)
		}
		return nil
	}
	p.Record = func(out Outcome) (string, error) {
		rec := journal.NewRecord(p.RunID, p.Tool, p.WorkingDir, out.Completed, out.Failures)
		rec.StartedAt = started
		rec.FinishedAt = e.clock.Now()
		return w.Write(rec)
	}
}
