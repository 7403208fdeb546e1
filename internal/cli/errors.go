package cli

import "fmt"

// ExitError represents a command failure with a specific exit code.
//
// Cobra RunE functions return NewExitError(code) instead of calling
// os.Exit() directly, so the code propagates up to [Execute] where
// [IsExitError] extracts it. Tests can then assert on exit codes
// without process termination.
type ExitError struct {
	// Code is the exit code to return to the shell.
	// Convention: 0 = success, 1 = run failure, 2 = run blocked.
	Code int
}

// Error implements the error interface, returning "exit status N" to
// match the os/exec ExitError format.
func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// NewExitError creates an [ExitError] with the given exit code.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

// IsExitError checks if an error is an [ExitError] and extracts its
// exit code. Returns (0, false) for nil or non-ExitError errors.
func IsExitError(err error) (int, bool) {
	if exitErr, ok := err.(*ExitError); ok {
		return exitErr.Code, true
	}
	return 0, false
}
