package engine

import "errors"

var (
	// ErrConflict indicates the plan would overwrite files.
	ErrConflict = errors.New("conflict detected")

	// ErrValidation indicates a validation failure.
	ErrValidation = errors.New("validation failed")

	// ErrWorkingDir indicates the working directory cannot be used.
	ErrWorkingDir = errors.New("invalid working directory")

	// ErrExecution indicates at least one task of an executed batch failed.
	ErrExecution = errors.New("execution failed")

	// ErrAborted indicates the run stopped before execution.
	ErrAborted = errors.New("aborted before execution")
)
