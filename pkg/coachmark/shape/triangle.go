// Package shape builds and rasterizes the vector shapes of the overlay: the
// arrow triangle, the rounded tip box and icon SVGs.
package shape

import (
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/config"
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/geometry"
	"github.com/srwiley/rasterx"
)

// inset keeps anti-aliased edges inside the target rect; the total inset per
// axis stays within 1 unit.
const inset = 0.5

// Vertices returns the apex followed by the two base corners of an isosceles
// triangle inscribed in r. DirectionBottom (box below the target) points the
// apex up, anything else points it down. Degenerate rects collapse to a point
// or a line but never fail.
func Vertices(r geometry.Rect, dir config.ArrowDirection) [3]geometry.Point {
	r = r.Normalized()
	in := inset
	if r.W < 2*in || r.H < 2*in {
		in = 0
	}
	r = r.Inset(geometry.UniformInsets(in))

	if dir == config.DirectionBottom {
		return [3]geometry.Point{
			{X: r.MidX(), Y: r.MinY()},
			{X: r.MaxX(), Y: r.MaxY()},
			{X: r.MinX(), Y: r.MaxY()},
		}
	}
	return [3]geometry.Point{
		{X: r.MidX(), Y: r.MaxY()},
		{X: r.MinX(), Y: r.MinY()},
		{X: r.MaxX(), Y: r.MinY()},
	}
}

// Triangle returns a closed rasterx path for the arrow drawn into r.
func Triangle(r geometry.Rect, dir config.ArrowDirection) rasterx.Path {
	v := Vertices(r, dir)

	var p rasterx.Path
	p.Start(rasterx.ToFixedP(v[0].X, v[0].Y))
	p.Line(rasterx.ToFixedP(v[1].X, v[1].Y))
	p.Line(rasterx.ToFixedP(v[2].X, v[2].Y))
	p.Stop(true)
	return p
}

// Area returns the triangle's area, zero for degenerate input.
func Area(v [3]geometry.Point) float64 {
	a := (v[1].X-v[0].X)*(v[2].Y-v[0].Y) - (v[2].X-v[0].X)*(v[1].Y-v[0].Y)
	if a < 0 {
		a = -a
	}
	return a / 2
}
