package placement

import (
	"math"
	"time"

	"github.com/BrandonKowalski/coachmark/pkg/coachmark/geometry"
)

// Interpolate blends two layouts for an animated step change. t is clamped to
// [0, 1] and eased with an ease-out cubic; the arrow direction flips halfway.
func Interpolate(from, to Result, t float64) Result {
	switch {
	case t <= 0:
		return from
	case t >= 1:
		return to
	}
	t = EaseOutCubic(t)

	dir := from.Direction
	if t >= 0.5 {
		dir = to.Direction
	}

	return Result{
		Direction:   dir,
		Box:         from.Box.Lerp(to.Box, t),
		ArrowOffset: geometry.Lerp(from.ArrowOffset, to.ArrowOffset, t),
		Arrow:       from.Arrow.Lerp(to.Arrow, t),
		Spotlight:   from.Spotlight.Lerp(to.Spotlight, t),
	}
}

// EaseOutCubic maps linear progress to a decelerating curve.
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// Transition tracks an in-flight animation between two layouts.
type Transition struct {
	From     Result
	To       Result
	Start    time.Time
	Duration time.Duration
}

// NewTransition starts a transition at now. A zero duration yields a
// transition that is already done.
func NewTransition(from, to Result, now time.Time, duration time.Duration) Transition {
	return Transition{From: from, To: to, Start: now, Duration: duration}
}

// Progress returns linear progress in [0, 1] at now.
func (t Transition) Progress(now time.Time) float64 {
	if t.Duration <= 0 {
		return 1
	}
	return geometry.Clamp(float64(now.Sub(t.Start))/float64(t.Duration), 0, 1)
}

// Done reports whether the transition has reached its target at now.
func (t Transition) Done(now time.Time) bool {
	return t.Progress(now) >= 1
}

// At returns the blended layout at now.
func (t Transition) At(now time.Time) Result {
	return Interpolate(t.From, t.To, t.Progress(now))
}
