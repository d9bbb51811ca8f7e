package engine

import "github.com/danieljhkim/fsbatch/internal/task"

// State is the terminal state of a run.
type State string

const (
	// StateNoOp means nothing matched; no check, no execution.
	StateNoOp State = "noop"

	// StateAborted means a conflict or a failed pre-execution hook stopped the run.
	StateAborted State = "aborted"

	// StateReportedOnly means the plan passed its checks and was only printed.
	StateReportedOnly State = "reported_only"

	// StateDone means the batch was executed.
	StateDone State = "done"
)

// Result represents the outcome of one run. Paths are relative to WorkingDir.
type Result struct {
	// RunID correlates logs and the journal of this run
	RunID string `json:"run_id"`

	// Tool is the name of the tool that ran
	Tool string `json:"tool"`

	// WorkingDir is the absolute directory the run operated on
	WorkingDir string `json:"working_dir"`

	// State is where the run stopped
	State State `json:"state"`

	// Tasks is the full plan in report order
	Tasks []task.PlannedTask `json:"tasks"`

	// Conflicts lists the overwrite hazards that blocked execution
	Conflicts []task.FailedOperation `json:"conflicts,omitempty"`

	// Batch is the execution summary (nil unless executed)
	Batch *task.BatchResult `json:"batch,omitempty"`

	// Failures lists the tasks that failed during execution
	Failures []task.FailedOperation `json:"failures,omitempty"`

	// Cleanup reports whether the post-execution cleanup ran
	Cleanup bool `json:"cleanup"`

	// Removed lists directories removed by cleanup
	Removed []string `json:"removed,omitempty"`

	// Journal is the path of the written journal, if any
	Journal string `json:"journal,omitempty"`
}

// Executed reports whether the batch reached execution.
func (r *Result) Executed() bool {
	return r.Batch != nil
}
