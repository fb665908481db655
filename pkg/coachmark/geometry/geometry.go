// Package geometry provides the small set of screen-space primitives the
// coachmark placement engine works with. Coordinates grow right and down,
// matching SDL's window space.
package geometry

import (
	"fmt"
	"math"
)

// Point is a position in screen space.
type Point struct {
	X float64
	Y float64
}

// Size is a width/height pair. Negative values are treated as zero.
type Size struct {
	W float64
	H float64
}

// Rect is an axis-aligned rectangle given by its origin (top-left) and size.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Insets are per-side distances, used to grow or shrink a Rect.
type Insets struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// UniformInsets creates Insets with the same value on all sides.
func UniformInsets(value float64) Insets {
	return Insets{Top: value, Right: value, Bottom: value, Left: value}
}

// XYWH is shorthand for building a Rect.
func XYWH(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// FromPoints builds the smallest Rect containing both points.
func FromPoints(a, b Point) Rect {
	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Normalized returns the rect with negative sizes collapsed to zero.
// A degenerate rect keeps its origin, so it behaves as a point.
func (r Rect) Normalized() Rect {
	if r.W < 0 || math.IsNaN(r.W) {
		r.W = 0
	}
	if r.H < 0 || math.IsNaN(r.H) {
		r.H = 0
	}
	return r
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxX() float64 { return r.X + r.W }
func (r Rect) MaxY() float64 { return r.Y + r.H }
func (r Rect) MidX() float64 { return r.X + r.W/2 }
func (r Rect) MidY() float64 { return r.Y + r.H/2 }

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rect's dimensions.
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// Center returns the midpoint of the rect.
func (r Rect) Center() Point {
	return Point{X: r.MidX(), Y: r.MidY()}
}

// IsEmpty reports whether the rect has no area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Outset grows the rect by the given insets. Shrinking past zero collapses
// the rect onto its center line instead of producing a negative size.
func (r Rect) Outset(in Insets) Rect {
	out := Rect{
		X: r.X - in.Left,
		Y: r.Y - in.Top,
		W: r.W + in.Left + in.Right,
		H: r.H + in.Top + in.Bottom,
	}
	if out.W < 0 {
		out.X = r.MidX()
		out.W = 0
	}
	if out.H < 0 {
		out.Y = r.MidY()
		out.H = 0
	}
	return out
}

// Inset shrinks the rect by the given insets.
func (r Rect) Inset(in Insets) Rect {
	return r.Outset(Insets{Top: -in.Top, Right: -in.Right, Bottom: -in.Bottom, Left: -in.Left})
}

// Offset moves the rect by dx, dy.
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Contains reports whether p lies inside the rect (edges inclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX() && p.X <= r.MaxX() && p.Y >= r.MinY() && p.Y <= r.MaxY()
}

// ContainsRect reports whether o lies entirely inside r (edges inclusive).
func (r Rect) ContainsRect(o Rect) bool {
	return o.MinX() >= r.MinX() && o.MaxX() <= r.MaxX() && o.MinY() >= r.MinY() && o.MaxY() <= r.MaxY()
}

// Intersect returns the overlapping area of r and o, or an empty rect at r's
// origin when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	minX := math.Max(r.MinX(), o.MinX())
	minY := math.Max(r.MinY(), o.MinY())
	maxX := math.Min(r.MaxX(), o.MaxX())
	maxY := math.Min(r.MaxY(), o.MaxY())
	if maxX < minX || maxY < minY {
		return Rect{X: r.X, Y: r.Y}
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Lerp linearly interpolates each field between r and o.
func (r Rect) Lerp(o Rect, t float64) Rect {
	return Rect{
		X: Lerp(r.X, o.X, t),
		Y: Lerp(r.Y, o.Y, t),
		W: Lerp(r.W, o.W, t),
		H: Lerp(r.H, o.H, t),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("(x:%g y:%g w:%g h:%g)", r.X, r.Y, r.W, r.H)
}

// Clamp limits v to [lo, hi]. When the range is inverted lo wins, which keeps
// callers pinned to the leading edge on undersized viewports.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Lerp interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
