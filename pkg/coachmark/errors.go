package coachmark

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/coachmark/pkg/coachmark/sequence"
)

// Sentinel errors for common conditions.
var (
	// ErrCancelled indicates the window was closed while a tour was showing.
	// Skipping a tour is not a cancellation; it is reported as TourSkipped.
	ErrCancelled = errors.New("operation cancelled by user")

	// ErrEmptySequence is returned when a tour has no steps. No overlay is
	// shown.
	ErrEmptySequence = sequence.ErrEmptySequence

	// ErrNotInitialized is returned by Tour when Init has not succeeded.
	ErrNotInitialized = errors.New("coachmark: Init has not been called")
)

// InfrastructureError represents a host-level failure: SDL could not start,
// a font is missing, a texture could not be created. These errors are
// typically fatal for the overlay.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init", "render")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("coachmark: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("coachmark: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
