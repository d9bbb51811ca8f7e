package engine

import (
	"fmt"
	"io"

	"github.com/danieljhkim/fsbatch/internal/task"
	"github.com/fatih/color"
)

var (
	titleColor   = color.New(color.FgBlue, color.Bold)
	headingColor = color.New(color.FgCyan)
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
)

// Reporter writes the line-oriented run report. verb is the singular
// operation name ("move", "rename"); plurals and participles append "s"/"d".
type Reporter struct {
	out  io.Writer
	verb string
}

// NewReporter creates a Reporter writing to out.
func NewReporter(out io.Writer, verb string) *Reporter {
	if out == nil {
		out = io.Discard
	}
	return &Reporter{out: out, verb: verb}
}

func (r *Reporter) println(c *color.Color, format string, args ...any) {
	_, _ = c.Fprintf(r.out, format, args...)
	_, _ = fmt.Fprintln(r.out)
}

func (r *Reporter) plain(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format+"\n", args...)
}

// Title prints the tool name.
func (r *Reporter) Title(name string) {
	r.println(titleColor, "%s", name)
}

// NothingToDo reports an empty plan.
func (r *Reporter) NothingToDo() {
	r.plain("")
	r.println(warningColor, "No files found to be %sd with these arguments!", r.verb)
}

// Plan lists every planned task.
func (r *Reporter) Plan(tasks []task.PlannedTask) {
	r.plain("")
	r.println(headingColor, "File %ss to be made:", r.verb)
	for _, t := range tasks {
		r.plain("%s", t)
	}
}

// Checking announces the conflict check.
func (r *Reporter) Checking() {
	r.plain("")
	r.println(headingColor, "Running checks before execution...")
}

// ChecksPassed reports a clean conflict check.
func (r *Reporter) ChecksPassed() {
	r.println(successColor, "All checks passed!")
}

// Conflicts reports the overwrite hazards that block execution.
func (r *Reporter) Conflicts(failures []task.FailedOperation) {
	r.println(errorColor, "Failed to execute %ss:", r.verb)
	r.plain("Some files would be overwritten")
	r.plain("")
	for _, f := range failures {
		r.plain("%s", f)
	}
}

// DryRun prints the footer of a run that did not execute.
func (r *Reporter) DryRun() {
	r.println(dimColor, "Run with --execute to execute %ss", r.verb)
}

// BeforeExecute reports the pre-execution hook. ran is false when the tool
// has no hook.
func (r *Reporter) BeforeExecute(ran bool, err error) {
	r.plain("")
	r.println(headingColor, "Before execution running...")
	switch {
	case err != nil:
		r.println(errorColor, "Before execution failed: %v", err)
	case ran:
		r.println(successColor, "Before execution ran successfully!")
	default:
		r.plain("No before execution ran!")
	}
}

// Executing announces the batch.
func (r *Reporter) Executing() {
	r.plain("")
	r.println(headingColor, "Executing %ss...", r.verb)
}

// Summary reports the batch counts and lists every failed task.
func (r *Reporter) Summary(result task.BatchResult, failures []task.FailedOperation) {
	switch {
	case result.Failed == 0:
		r.println(successColor, "Execution successful, %d files %sd!", result.Successful, r.verb)
		return
	case result.Successful == 0:
		r.println(errorColor, "All %d %ss failed:", result.Failed, r.verb)
	default:
		r.println(warningColor, "%d %ss are successful, but %d %ss failed:", result.Successful, r.verb, result.Failed, r.verb)
	}
	for _, f := range failures {
		r.plain("%s", f)
	}
}

// Journal reports where the journal was written.
func (r *Reporter) Journal(path string) {
	r.println(dimColor, "Journal written to %s", path)
}

// Warn prints a non-fatal problem.
func (r *Reporter) Warn(format string, args ...any) {
	r.println(warningColor, "warning: "+format, args...)
}

// AfterExecute reports the post-execution hook. ran is false when the run
// has no hook.
func (r *Reporter) AfterExecute(ran bool, removed int) {
	r.plain("")
	r.println(headingColor, "After execution running...")
	if !ran {
		r.plain("No after execution ran!")
		return
	}
	r.println(successColor, "After execution ran successfully!")
	if removed > 0 {
		r.plain("Removed %d empty directories", removed)
	}
}
