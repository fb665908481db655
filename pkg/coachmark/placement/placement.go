// Package placement computes where a coachmark's tip box and arrow go,
// relative to a highlighted target region.
//
// Everything here is a pure function of its inputs: the target rectangle, the
// overlay Configuration and the viewport bounds. Degenerate geometry never
// produces an error; the engine clamps and returns a best-effort layout.
package placement

import (
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/config"
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/geometry"
)

// Result is one computed layout. Direction is always DirectionTop or
// DirectionBottom.
type Result struct {
	Direction config.ArrowDirection
	// Box is the tip box in viewport coordinates.
	Box geometry.Rect
	// ArrowOffset is the x distance of the arrow's tip from Box's left edge.
	ArrowOffset float64
	// Arrow is the rect the arrow triangle is drawn into. It sits between
	// the box edge and the target.
	Arrow geometry.Rect
	// Spotlight is the target expanded by the spotlight padding.
	Spotlight geometry.Rect
}

// ArrowTip returns the point the arrow points at, in viewport coordinates.
func (r Result) ArrowTip() geometry.Point {
	if r.Direction == config.DirectionTop {
		return geometry.Point{X: r.Arrow.MidX(), Y: r.Arrow.MaxY()}
	}
	return geometry.Point{X: r.Arrow.MidX(), Y: r.Arrow.MinY()}
}

// Compute lays out a tip box of the configured TipWidth x TipHeight.
func Compute(target geometry.Rect, cfg config.Configuration, viewport geometry.Rect) Result {
	return ComputeSized(target, cfg, viewport, geometry.Size{W: cfg.TipWidth, H: cfg.TipHeight})
}

// ComputeSized lays out a tip box of a measured size. Hosts that size the box
// from its text content call this instead of Compute.
func ComputeSized(target geometry.Rect, cfg config.Configuration, viewport geometry.Rect, box geometry.Size) Result {
	target = target.Normalized()
	viewport = viewport.Normalized()
	if box.W < 0 {
		box.W = 0
	}
	if box.H < 0 {
		box.H = 0
	}

	dir := ResolveDirection(target, cfg, viewport)

	x := horizontalOrigin(target, viewport, box.W, cfg.TipHorizontalPadding)
	y := verticalOrigin(target, dir, box.H, cfg.ArrowSize, cfg.ArrowGap)
	boxRect := geometry.Rect{X: x, Y: y, W: box.W, H: box.H}

	offset := ArrowOffset(target, boxRect, cfg.ArrowSize)

	return Result{
		Direction:   dir,
		Box:         boxRect,
		ArrowOffset: offset,
		Arrow:       arrowRect(boxRect, dir, offset, cfg.ArrowSize),
		Spotlight:   Spotlight(target, cfg),
	}
}

// ResolveDirection turns DirectionAutomatic into a concrete direction by
// picking the side of the target with more room. Ties go to DirectionBottom.
func ResolveDirection(target geometry.Rect, cfg config.Configuration, viewport geometry.Rect) config.ArrowDirection {
	switch cfg.ArrowDirection {
	case config.DirectionTop, config.DirectionBottom:
		return cfg.ArrowDirection
	}

	above, below := VerticalSpace(target, viewport, cfg.TipVerticalPadding)
	if below >= above {
		return config.DirectionBottom
	}
	return config.DirectionTop
}

// VerticalSpace returns the room above and below the target inside the
// viewport, each reduced by padding. Values may be negative when the target
// lies outside the viewport.
func VerticalSpace(target, viewport geometry.Rect, padding float64) (above, below float64) {
	above = target.MinY() - viewport.MinY() - padding
	below = viewport.MaxY() - target.MaxY() - padding
	return above, below
}

// horizontalOrigin centers the box on the target and then shifts it by the
// minimum amount that keeps the box plus its side padding inside the viewport.
// When the viewport is too narrow the box is pinned to the left padding edge.
func horizontalOrigin(target, viewport geometry.Rect, width, padding float64) float64 {
	x := target.MidX() - width/2
	lo := viewport.MinX() + padding
	hi := viewport.MaxX() - padding - width
	return geometry.Clamp(x, lo, hi)
}

func verticalOrigin(target geometry.Rect, dir config.ArrowDirection, height, arrowSize, gap float64) float64 {
	if dir == config.DirectionTop {
		return target.MinY() - arrowSize - gap - height
	}
	return target.MaxY() + arrowSize + gap
}

// ArrowOffset aligns the arrow with the target's horizontal midpoint and keeps
// it at least half an arrow base (arrowSize) away from either end of the box.
// A box narrower than the arrow gets a centered arrow.
func ArrowOffset(target, box geometry.Rect, arrowSize float64) float64 {
	half := arrowSize
	if box.W < 2*half {
		return box.W / 2
	}
	return geometry.Clamp(target.MidX()-box.MinX(), half, box.W-half)
}

func arrowRect(box geometry.Rect, dir config.ArrowDirection, offset, arrowSize float64) geometry.Rect {
	r := geometry.Rect{
		X: box.MinX() + offset - arrowSize,
		W: 2 * arrowSize,
		H: arrowSize,
	}
	if dir == config.DirectionTop {
		r.Y = box.MaxY()
	} else {
		r.Y = box.MinY() - arrowSize
	}
	return r
}

// Spotlight expands the target by the configured spotlight padding. Corner
// radius and border width are applied by the renderer.
func Spotlight(target geometry.Rect, cfg config.Configuration) geometry.Rect {
	return target.Normalized().Outset(geometry.UniformInsets(cfg.SpotlightPadding))
}
