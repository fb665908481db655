package shape

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/BrandonKowalski/coachmark/pkg/coachmark/config"
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/geometry"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Canvas is an RGBA image with a rasterx filler attached. Coordinates are
// local to the canvas.
type Canvas struct {
	Image  *image.RGBA
	filler *rasterx.Filler
	width  int
	height int
}

// NewCanvas allocates a transparent canvas. Sizes below 1 are raised to 1 so
// callers can always turn the result into a texture.
func NewCanvas(width, height int) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	return &Canvas{
		Image:  img,
		filler: rasterx.NewFiller(width, height, scanner),
		width:  width,
		height: height,
	}
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// FillPath fills a closed path with a solid color.
func (c *Canvas) FillPath(p rasterx.Path, clr color.Color) {
	c.filler.Clear()
	c.filler.SetColor(clr)
	p.AddTo(c.filler)
	c.filler.Draw()
}

// FillTriangle fills the arrow triangle inscribed in r.
func (c *Canvas) FillTriangle(r geometry.Rect, dir config.ArrowDirection, clr color.Color) {
	c.FillPath(Triangle(r, dir), clr)
}

// FillRoundRect fills r with corners of the given radius. The radius is
// capped at half the shorter side.
func (c *Canvas) FillRoundRect(r geometry.Rect, radius float64, clr color.Color) {
	r = r.Normalized()
	if r.IsEmpty() {
		return
	}
	radius = geometry.Clamp(radius, 0, min(r.W, r.H)/2)

	c.filler.Clear()
	c.filler.SetColor(clr)
	if radius == 0 {
		rasterx.AddRect(r.MinX(), r.MinY(), r.MaxX(), r.MaxY(), 0, c.filler)
	} else {
		rasterx.AddRoundRect(r.MinX(), r.MinY(), r.MaxX(), r.MaxY(), radius, radius, 0, rasterx.RoundGap, c.filler)
	}
	c.filler.Draw()
}

// StrokeRoundRect draws a border of the given width just inside r.
func (c *Canvas) StrokeRoundRect(r geometry.Rect, radius, width float64, clr color.Color) {
	if width <= 0 {
		return
	}
	outer := r.Normalized()
	inner := outer.Inset(geometry.UniformInsets(width))
	c.FillRoundRect(outer, radius, clr)
	if inner.IsEmpty() {
		return
	}
	c.ClearRoundRect(inner, max(radius-width, 0))
}

// ClearRoundRect punches a transparent hole by filling a mask and zeroing
// every covered pixel.
func (c *Canvas) ClearRoundRect(r geometry.Rect, radius float64) {
	mask := NewCanvas(c.width, c.height)
	mask.FillRoundRect(r, radius, color.White)
	for i := 3; i < len(mask.Image.Pix); i += 4 {
		a := uint32(mask.Image.Pix[i])
		if a == 0 {
			continue
		}
		for j := i - 3; j <= i; j++ {
			v := uint32(c.Image.Pix[j])
			c.Image.Pix[j] = uint8(v * (255 - a) / 255)
		}
	}
}

// RasterizeSVG renders an SVG document into a width x height canvas.
func RasterizeSVG(data []byte, width, height int) (*Canvas, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse svg: %w", err)
	}

	c := NewCanvas(width, height)
	icon.SetTarget(0, 0, float64(c.width), float64(c.height))
	scanner := rasterx.NewScannerGV(c.width, c.height, c.Image, c.Image.Bounds())
	icon.Draw(rasterx.NewDasher(c.width, c.height, scanner), 1.0)
	return c, nil
}

// Backdrop fills a width x height canvas with dim and cuts the spotlight
// hole out of it. An empty hole leaves the backdrop solid.
func Backdrop(width, height int, hole geometry.Rect, radius float64, dim color.Color) *Canvas {
	c := NewCanvas(width, height)
	c.FillRoundRect(geometry.XYWH(0, 0, float64(c.width), float64(c.height)), 0, dim)
	if !hole.Normalized().IsEmpty() {
		c.ClearRoundRect(hole, radius)
	}
	return c
}
