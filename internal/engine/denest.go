package engine

import (
	"context"
	"fmt"

	"github.com/danieljhkim/fsbatch/internal/discovery"
	"github.com/danieljhkim/fsbatch/internal/planner"
	"github.com/danieljhkim/fsbatch/internal/task"
)

// Denest moves every nested file up into the working directory, keeping its
// name.
//
// Candidates are files at least one directory below the working directory.
// All destinations are in the working directory itself, so only files there
// can be overwritten by a move and only they are checked as bystanders.
func (e *Engine) Denest(ctx context.Context, req *DenestRequest) (*Result, error) {
	root, err := resolveWorkingDir(e.fs, req.WorkingDir, req.CWD)
	if err != nil {
		return nil, err
	}

	opts := discovery.Options{
		MaxDepth:      req.Depth,
		Extensions:    discovery.NormalizeExtensions(req.Extensions),
		IncludeHidden: req.IncludeHidden,
		NestedOnly:    true,
		Exclude:       req.Exclude,
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if err := validateExcludes(e.fs, opts.Exclude); err != nil {
		return nil, err
	}

	p := e.newPipeline("denest", "move", root, req.Execute)
	p.Plan = func() ([]task.PlannedTask, error) {
		candidates, err := discovery.ListCandidatePaths(e.fs, root, opts)
		if err != nil {
			return nil, err
		}
		return planner.Plan(candidates, planner.ToRoot(root)), nil
	}
	p.Check = e.conflictCheck("move", root, 1)

	ex := e.useExecutor(p)
	if req.Cleanup {
		p.Cleanup = func() []string {
			return ex.CleanupEmptyDirs(root)
		}
	}
	e.useJournal(p, req.JournalDir)

	return e.run(ctx, p)
}
