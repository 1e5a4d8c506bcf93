// Package errors provides sentinel errors and error types for the keymove
// core. It defines the three normal resolution outcomes alongside adapter
// failure conditions, as structured values that preserve context while
// allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrUnrecognized indicates input that parsed to zero move templates.
	ErrUnrecognized = errors.New("unrecognized move text")

	// ErrIllegalMove indicates input that resolved to zero legal moves.
	ErrIllegalMove = errors.New("illegal move")

	// ErrAmbiguous indicates input that resolved to more than one move.
	ErrAmbiguous = errors.New("ambiguous move")

	// ErrInvalidFEN indicates a malformed FEN string given to an adapter.
	ErrInvalidFEN = errors.New("invalid FEN string")
)

// ResolveError wraps one of the resolution sentinels with the input that
// produced it. It implements the error interface and supports unwrapping
// via errors.Is() and errors.As().
type ResolveError struct {
	Err        error  // The underlying sentinel
	Input      string // The move text or gesture that was being resolved
	Candidates int    // Number of candidates that survived resolution
}

// Error returns a formatted error message including all available context.
func (e *ResolveError) Error() string {
	var parts []string

	if e.Input != "" {
		parts = append(parts, fmt.Sprintf("input %q", e.Input))
	}
	if e.Candidates > 1 {
		parts = append(parts, fmt.Sprintf("%d candidates", e.Candidates))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context != "" {
			return fmt.Sprintf("%s: %v", context, e.Err)
		}
		return e.Err.Error()
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and
// errors.As() to work through the ResolveError wrapper.
func (e *ResolveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
