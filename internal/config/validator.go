package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/danieljhkim/fsbatch/internal/logging"
)

// ValidationError represents a single validation failure.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface for ValidationError.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Validate checks the Config for invalid values and returns every problem found.
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	for _, pattern := range c.Defaults.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			errors = append(errors, ValidationError{
				Field:   "defaults.exclude",
				Value:   pattern,
				Message: "invalid glob pattern",
			})
		}
	}

	if c.Conflict.OuterScope != "" && !slices.Contains(ValidOuterScopes(), c.Conflict.OuterScope) {
		errors = append(errors, ValidationError{
			Field:   "conflict.outer_scope",
			Value:   c.Conflict.OuterScope,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidOuterScopes(), ", ")),
		})
	}

	if c.Logging.Level != "" && !logging.IsValidLevel(c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(logging.ValidLevels(), ", ")),
		})
	}

	return errors
}
