package shape

import (
	"image"
	"image/color"
	"math"

	"github.com/BrandonKowalski/coachmark/pkg/coachmark/geometry"
	"golang.org/x/image/draw"
)

// Shadow renders a soft silhouette of a rounded box. The returned canvas is
// larger than size by blur on every side; draw it offset by -blur so the box
// sits centered inside its shadow.
//
// The blur is approximated by scaling the silhouette down and back up with a
// bilinear filter, which is plenty for a drop shadow and far cheaper than a
// real gaussian.
func Shadow(size geometry.Size, cornerRadius, blur float64, clr color.Color) *Canvas {
	blur = math.Max(blur, 0)
	pad := int(math.Ceil(blur))
	w := int(math.Ceil(size.W)) + 2*pad
	h := int(math.Ceil(size.H)) + 2*pad

	c := NewCanvas(w, h)
	c.FillRoundRect(geometry.XYWH(float64(pad), float64(pad), size.W, size.H), cornerRadius, clr)
	if pad == 0 {
		return c
	}

	factor := max(2, pad/2)
	small := image.NewRGBA(image.Rect(0, 0, max(1, w/factor), max(1, h/factor)))
	draw.BiLinear.Scale(small, small.Bounds(), c.Image, c.Image.Bounds(), draw.Src, nil)

	out := NewCanvas(w, h)
	draw.BiLinear.Scale(out.Image, out.Image.Bounds(), small, small.Bounds(), draw.Src, nil)
	return out
}
