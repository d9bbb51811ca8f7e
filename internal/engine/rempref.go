package engine

import (
	"context"
	"fmt"

	"github.com/danieljhkim/fsbatch/internal/config"
	"github.com/danieljhkim/fsbatch/internal/discovery"
	"github.com/danieljhkim/fsbatch/internal/planner"
	"github.com/danieljhkim/fsbatch/internal/task"
)

// Rempref strips the first PrefixLength characters from file names, keeping
// each file in its directory.
//
// Without Recursive only files directly in the working directory are renamed.
// Files whose names are not longer than the prefix are skipped.
func (e *Engine) Rempref(ctx context.Context, req *RemprefRequest) (*Result, error) {
	if req.PrefixLength < 1 {
		return nil, fmt.Errorf("%w: prefix length must be at least 1, got %d", ErrValidation, req.PrefixLength)
	}

	root, err := resolveWorkingDir(e.fs, req.WorkingDir, req.CWD)
	if err != nil {
		return nil, err
	}

	depth := 1
	if req.Recursive {
		depth = req.Depth
	}

	scopeDepth, err := outerScopeDepth(req.OuterScope, depth)
	if err != nil {
		return nil, err
	}

	opts := discovery.Options{
		MaxDepth:      depth,
		Extensions:    discovery.NormalizeExtensions(req.Extensions),
		IncludeHidden: req.IncludeHidden,
		MinNameLength: req.PrefixLength,
		Exclude:       req.Exclude,
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if err := validateExcludes(e.fs, opts.Exclude); err != nil {
		return nil, err
	}

	p := e.newPipeline("rempref", "rename", root, req.Execute)
	p.Plan = func() ([]task.PlannedTask, error) {
		candidates, err := discovery.ListCandidatePaths(e.fs, root, opts)
		if err != nil {
			return nil, err
		}
		return planner.Plan(candidates, planner.StripPrefix(req.PrefixLength)), nil
	}
	p.Check = e.conflictCheck("rename", root, scopeDepth)

	e.useExecutor(p)
	e.useJournal(p, req.JournalDir)

	return e.run(ctx, p)
}

// outerScopeDepth maps an outer scope name to the depth of the bystander
// listing. "root" only sees the working directory; "tree" sees everything
// discovery can reach.
func outerScopeDepth(scope string, depth int) (int, error) {
	switch scope {
	case "", config.OuterScopeTree:
		return depth, nil
	case config.OuterScopeRoot:
		return 1, nil
	default:
		return 0, fmt.Errorf("%w: unknown outer scope %q", ErrValidation, scope)
	}
}
