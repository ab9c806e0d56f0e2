package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorSolver   = 3   // Indicates the external solver failed or misbehaved.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect
// user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// SolverError encapsulates a failure of the external solver process itself
// (binary missing, broken invocation, unreadable output) while preserving
// the original cause. Unlike non-convergence, a SolverError aborts the sweep.
type SolverError struct {
	// Cause is the underlying error that triggered this solver error.
	Cause error
}

// Error returns the error message from the underlying cause.
func (e SolverError) Error() string { return "solver error: " + e.Cause.Error() }

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e SolverError) Unwrap() error { return e.Cause }

// ConvergenceError reports that the solver did not converge for a single
// case. The sweep records a missing row for the case and continues; this
// error never aborts a run.
type ConvergenceError struct {
	// Airfoil is the geometry identifier of the failed case.
	Airfoil string
	// Alpha is the angle of attack of the failed case, in degrees.
	Alpha float64
}

// Error returns a formatted message identifying the non-converged case.
func (e ConvergenceError) Error() string {
	return fmt.Sprintf("no converged solution for %s at alpha %.1f", e.Airfoil, e.Alpha)
}

// IsConvergence reports whether err is (or wraps) a ConvergenceError.
func IsConvergence(err error) bool {
	var ce ConvergenceError
	return errors.As(err, &ce)
}

// TimeoutError represents a per-case or whole-run timeout. It captures the
// operation name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline
// exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// HandleSweepError reports a fatal sweep error to out and maps it to the
// appropriate process exit code.
//
// Parameters:
//   - err: The error that aborted the sweep. May be nil.
//   - out: The writer for the user-facing error message.
//
// Returns:
//   - int: The exit code corresponding to the error class.
func HandleSweepError(err error, out io.Writer) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, context.Canceled) {
		fmt.Fprintf(out, "Sweep canceled.\n")
		return ExitErrorCanceled
	}

	fmt.Fprintf(out, "Error: %v\n", err)

	var timeoutErr TimeoutError
	if errors.Is(err, context.DeadlineExceeded) || errors.As(err, &timeoutErr) {
		return ExitErrorTimeout
	}

	var configErr ConfigError
	var validationErr ValidationError
	if errors.As(err, &configErr) || errors.As(err, &validationErr) {
		return ExitErrorConfig
	}

	var solverErr SolverError
	if errors.As(err, &solverErr) {
		return ExitErrorSolver
	}

	return ExitErrorGeneric
}
