package internal

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/BrandonKowalski/coachmark/pkg/coachmark/geometry"
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/shape"
	"github.com/veandco/go-sdl2/sdl"
)

// Padding defines spacing on all four sides of an element, in pixels.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{Top: value, Right: value, Bottom: value, Left: value}
}

// SymmetricPadding creates a Padding from horizontal and vertical values.
func SymmetricPadding(horizontal, vertical int32) Padding {
	return Padding{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// Apply shrinks r by p.
func (p Padding) Apply(r sdl.Rect) sdl.Rect {
	return sdl.Rect{
		X: r.X + p.Left,
		Y: r.Y + p.Top,
		W: max(r.W-p.Left-p.Right, 0),
		H: max(r.H-p.Top-p.Bottom, 0),
	}
}

// ToSDLRect rounds a rect outward to whole pixels.
func ToSDLRect(r geometry.Rect) sdl.Rect {
	r = r.Normalized()
	x0, y0 := math.Floor(r.MinX()), math.Floor(r.MinY())
	x1, y1 := math.Ceil(r.MaxX()), math.Ceil(r.MaxY())
	return sdl.Rect{X: int32(x0), Y: int32(y0), W: int32(x1 - x0), H: int32(y1 - y0)}
}

// FromSDLRect converts a pixel rect to overlay coordinates.
func FromSDLRect(r sdl.Rect) geometry.Rect {
	return geometry.XYWH(float64(r.X), float64(r.Y), float64(r.W), float64(r.H))
}

// CanvasTexture uploads a rasterized canvas to a blendable texture. The
// canvas holds premultiplied alpha which is converted to straight alpha for
// SDL's default blend mode.
func CanvasTexture(renderer *sdl.Renderer, canvas *shape.Canvas) (*sdl.Texture, error) {
	w, h := int32(canvas.Width()), int32(canvas.Height())
	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STATIC, w, h)
	if err != nil {
		return nil, fmt.Errorf("create texture: %w", err)
	}

	pix := Unpremultiply(canvas.Image.Pix)
	if err := texture.Update(nil, unsafe.Pointer(&pix[0]), canvas.Image.Stride); err != nil {
		texture.Destroy()
		return nil, fmt.Errorf("upload texture: %w", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}

// Unpremultiply returns a copy of RGBA pixel data with straight alpha.
func Unpremultiply(pix []uint8) []uint8 {
	out := make([]uint8, len(pix))
	for i := 0; i+3 < len(pix); i += 4 {
		a := uint32(pix[i+3])
		switch a {
		case 0:
			continue
		case 255:
			copy(out[i:i+4], pix[i:i+4])
		default:
			out[i] = uint8(min(uint32(pix[i])*255/a, 255))
			out[i+1] = uint8(min(uint32(pix[i+1])*255/a, 255))
			out[i+2] = uint8(min(uint32(pix[i+2])*255/a, 255))
			out[i+3] = uint8(a)
		}
	}
	return out
}
