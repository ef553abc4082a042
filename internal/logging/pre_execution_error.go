package logging

import (
	"fmt"
)

// ErrorType classifies errors that occur before any file is renamed.
type ErrorType string

const (
	// ErrorTypeConfig represents command line or configuration errors
	ErrorTypeConfig ErrorType = "config_invalid"
	// ErrorTypeLogSetup represents logger initialization failures
	ErrorTypeLogSetup ErrorType = "log_setup_failed"
)

// PreExecutionError is an error raised before the rename pass starts. The
// classification fields stay out of Error() so the console message matches
// what the user typed and did wrong; Type, Component and RunID are for
// structured logging.
type PreExecutionError struct {
	Type      ErrorType
	Message   string
	Component string
	RunID     string
	Err       error // Wrapped error for better error context preservation
}

// Error implements the error interface
func (e *PreExecutionError) Error() string {
	if e.Message != "" && e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Is implements error matching for errors.Is
func (e *PreExecutionError) Is(target error) bool {
	_, ok := target.(*PreExecutionError)
	return ok
}

// As implements error matching for errors.As
func (e *PreExecutionError) As(target any) bool {
	if preExecErr, ok := target.(**PreExecutionError); ok {
		*preExecErr = e
		return true
	}
	return false
}

// Unwrap implements error unwrapping for errors.Unwrap
func (e *PreExecutionError) Unwrap() error {
	return e.Err
}
