package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// FieldError describes one invalid Configuration field.
type FieldError struct {
	Field  string
	Value  any
	Reason string
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s=%v: %s", e.Field, e.Value, e.Reason)
}

// ValidationError is returned by Validate when one or more fields are out of
// range.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	return "coachmark config: invalid " + strings.Join(parts, "; ")
}

// IsValidationError checks if err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Validate checks the numeric ranges and the arrow direction.
func (c Configuration) Validate() error {
	var fields []FieldError

	nonNegative := func(name string, v float64) {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			fields = append(fields, FieldError{Field: name, Value: v, Reason: "must be >= 0"})
		}
	}
	positive := func(name string, v float64) {
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			fields = append(fields, FieldError{Field: name, Value: v, Reason: "must be > 0"})
		}
	}

	nonNegative("corner_radius", c.CornerRadius)
	nonNegative("shadow_radius", c.ShadowRadius)
	nonNegative("tip_horizontal_padding", c.TipHorizontalPadding)
	nonNegative("tip_vertical_padding", c.TipVerticalPadding)
	nonNegative("spotlight_border_width", c.SpotlightBorderWidth)
	nonNegative("spotlight_corner_radius", c.SpotlightCornerRadius)
	nonNegative("spotlight_padding", c.SpotlightPadding)
	nonNegative("arrow_gap", c.ArrowGap)
	positive("arrow_size", c.ArrowSize)
	positive("tip_width", c.TipWidth)
	positive("tip_height", c.TipHeight)

	if !c.ArrowDirection.Valid() {
		fields = append(fields, FieldError{Field: "arrow_direction", Value: c.ArrowDirection, Reason: "must be automatic, top or bottom"})
	}
	if c.TransitionDuration < 0 {
		fields = append(fields, FieldError{Field: "transition_duration", Value: c.TransitionDuration, Reason: "must be >= 0"})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
