// Package config defines the presentation parameters of a coachmark overlay.
//
// A Configuration is a plain value: build it with Default, adjust the fields
// you care about, and hand it to the sequence controller. Nothing in the
// module mutates a Configuration after it has been applied; replacing it is
// the host's job.
package config

import (
	"fmt"
	"strings"
	"time"
)

// ArrowDirection selects which side of the spotlight the tip box is placed
// on. DirectionAutomatic is resolved by the placement engine.
type ArrowDirection string

const (
	DirectionAutomatic ArrowDirection = "automatic"
	DirectionTop       ArrowDirection = "top"    // box above the target, arrow on its bottom edge pointing down
	DirectionBottom    ArrowDirection = "bottom" // box below the target, arrow on its top edge pointing up
)

// Valid reports whether d is one of the known directions.
func (d ArrowDirection) Valid() bool {
	switch d {
	case DirectionAutomatic, DirectionTop, DirectionBottom:
		return true
	}
	return false
}

func (d ArrowDirection) String() string {
	return string(d)
}

// UnmarshalText accepts direction names case-insensitively. An empty value
// means automatic.
func (d *ArrowDirection) UnmarshalText(text []byte) error {
	v := ArrowDirection(strings.ToLower(strings.TrimSpace(string(text))))
	if v == "" {
		v = DirectionAutomatic
	}
	if !v.Valid() {
		return fmt.Errorf("unknown arrow direction %q", string(text))
	}
	*d = v
	return nil
}

func (d ArrowDirection) MarshalText() ([]byte, error) {
	return []byte(d), nil
}

// Labels holds the button captions shown in the tip box.
type Labels struct {
	Exit   string
	Next   string
	Back   string
	Finish string
}

// EnglishLabels are used when a label is left empty and no localization
// bundle is consulted.
var EnglishLabels = Labels{
	Exit:   "Skip",
	Next:   "Next",
	Back:   "Back",
	Finish: "Done",
}

// Configuration holds every presentation parameter of the overlay.
// Empty labels mean "use the localized default".
type Configuration struct {
	ExitLabel   string `toml:"exit_label"`
	NextLabel   string `toml:"next_label"`
	BackLabel   string `toml:"back_label"`
	FinishLabel string `toml:"finish_label"`

	CornerRadius         float64 `toml:"corner_radius"`
	ShadowRadius         float64 `toml:"shadow_radius"`
	TipHorizontalPadding float64 `toml:"tip_horizontal_padding"`
	TipVerticalPadding   float64 `toml:"tip_vertical_padding"`
	TipWidth             float64 `toml:"tip_width"`
	TipHeight            float64 `toml:"tip_height"`

	SpotlightBorderWidth  float64 `toml:"spotlight_border_width"`
	SpotlightCornerRadius float64 `toml:"spotlight_corner_radius"`
	SpotlightPadding      float64 `toml:"spotlight_padding"`

	ArrowSize      float64        `toml:"arrow_size"`
	ArrowGap       float64        `toml:"arrow_gap"`
	ArrowDirection ArrowDirection `toml:"arrow_direction"`

	ShowExitButton     bool          `toml:"show_exit_button"`
	ShowBackButton     bool          `toml:"show_back_button"`
	AnimateTransitions bool          `toml:"animate_transitions"`
	TransitionDuration time.Duration `toml:"transition_duration"`

	Locale string `toml:"locale"`
}

// Default returns the stock configuration.
func Default() Configuration {
	return Configuration{
		CornerRadius:          8,
		ShadowRadius:          6,
		TipHorizontalPadding:  16,
		TipVerticalPadding:    12,
		TipWidth:              320,
		TipHeight:             120,
		SpotlightBorderWidth:  2,
		SpotlightCornerRadius: 8,
		SpotlightPadding:      8,
		ArrowSize:             10,
		ArrowGap:              4,
		ArrowDirection:        DirectionAutomatic,
		ShowExitButton:        true,
		ShowBackButton:        true,
		AnimateTransitions:    true,
		TransitionDuration:    250 * time.Millisecond,
		Locale:                "en",
	}
}

// Labels returns the configured captions, filling empty ones from fallback.
func (c Configuration) Labels(fallback Labels) Labels {
	pick := func(v, def string) string {
		if v != "" {
			return v
		}
		return def
	}
	return Labels{
		Exit:   pick(c.ExitLabel, fallback.Exit),
		Next:   pick(c.NextLabel, fallback.Next),
		Back:   pick(c.BackLabel, fallback.Back),
		Finish: pick(c.FinishLabel, fallback.Finish),
	}
}

// WithLabels returns a copy of c with the given captions applied.
func (c Configuration) WithLabels(l Labels) Configuration {
	c.ExitLabel = l.Exit
	c.NextLabel = l.Next
	c.BackLabel = l.Back
	c.FinishLabel = l.Finish
	return c
}
