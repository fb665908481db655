package sequence

import "errors"

var (
	// ErrEmptySequence is returned by Start when there are no steps. The host
	// must not show an overlay.
	ErrEmptySequence = errors.New("coachmark: empty step sequence")

	// ErrDuplicateStepID is returned by Start when two steps share an id.
	ErrDuplicateStepID = errors.New("coachmark: duplicate step id")

	// ErrUnknownStepID marks a region or lookup for an id that is not part of
	// the current sequence. RegisterRegion recovers from it by ignoring the
	// update; it is only surfaced by lookups that have no fallback.
	ErrUnknownStepID = errors.New("coachmark: unknown step id")
)
