package shape

import (
	"image/color"
	"testing"

	"github.com/BrandonKowalski/coachmark/pkg/coachmark/config"
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertices_PointsUpForBoxBelow(t *testing.T) {
	t.Parallel()

	v := Vertices(geometry.XYWH(0, 0, 20, 10), config.DirectionBottom)

	assert.Equal(t, geometry.Point{X: 10, Y: 0.5}, v[0])
	assert.Equal(t, 9.5, v[1].Y)
	assert.Equal(t, 9.5, v[2].Y)
}

func TestVertices_PointsDownForBoxAbove(t *testing.T) {
	t.Parallel()

	v := Vertices(geometry.XYWH(0, 0, 20, 10), config.DirectionTop)

	assert.Equal(t, geometry.Point{X: 10, Y: 9.5}, v[0])
	assert.Equal(t, 0.5, v[1].Y)
	assert.Equal(t, 0.5, v[2].Y)
}

func TestVertices_StayWithinOneUnitOfBounds(t *testing.T) {
	t.Parallel()

	rects := []geometry.Rect{
		geometry.XYWH(3, 4, 20, 10),
		geometry.XYWH(-7, 12, 1.5, 1.5),
		geometry.XYWH(100, 100, 64, 32),
	}

	for _, r := range rects {
		for _, dir := range []config.ArrowDirection{config.DirectionTop, config.DirectionBottom} {
			for _, p := range Vertices(r, dir) {
				assert.True(t, r.Contains(p), "vertex %v outside %v", p, r)
				nearX := p.X-r.MinX() <= 1 || r.MaxX()-p.X <= 1 || p.X == r.MidX()
				nearY := p.Y-r.MinY() <= 1 || r.MaxY()-p.Y <= 1
				assert.True(t, nearX && nearY, "vertex %v not within 1 unit of %v", p, r)
			}
		}
	}
}

func TestVertices_DegenerateRectHasZeroArea(t *testing.T) {
	t.Parallel()

	v := Vertices(geometry.XYWH(5, 5, 0, 0), config.DirectionBottom)

	assert.Equal(t, 0.0, Area(v))
	for _, p := range v {
		assert.Equal(t, geometry.Point{X: 5, Y: 5}, p)
	}
}

func TestTriangle_BuildsClosedPath(t *testing.T) {
	t.Parallel()

	p := Triangle(geometry.XYWH(0, 0, 20, 10), config.DirectionTop)
	assert.NotEmpty(t, p)

	degenerate := Triangle(geometry.XYWH(0, 0, -4, 0), config.DirectionTop)
	assert.NotEmpty(t, degenerate)
}

func TestCanvas_FillTriangle(t *testing.T) {
	t.Parallel()

	c := NewCanvas(20, 10)
	c.FillTriangle(geometry.XYWH(0, 0, 20, 10), config.DirectionBottom, color.RGBA{R: 255, A: 255})

	// Near the base center is inside, the top corners are outside.
	assert.Equal(t, uint8(255), c.Image.RGBAAt(10, 8).A)
	assert.Equal(t, uint8(0), c.Image.RGBAAt(0, 0).A)
	assert.Equal(t, uint8(0), c.Image.RGBAAt(19, 0).A)
}

func TestCanvas_FillDegenerateDoesNotPanic(t *testing.T) {
	t.Parallel()

	c := NewCanvas(0, 0)

	assert.NotPanics(t, func() {
		c.FillTriangle(geometry.XYWH(0, 0, 0, 0), config.DirectionTop, color.White)
		c.FillRoundRect(geometry.XYWH(0, 0, 0, 0), 4, color.White)
	})
	assert.Equal(t, 1, c.Width())
	assert.Equal(t, 1, c.Height())
}

func TestCanvas_FillRoundRectLeavesCornersClear(t *testing.T) {
	t.Parallel()

	c := NewCanvas(40, 40)
	c.FillRoundRect(geometry.XYWH(0, 0, 40, 40), 12, color.White)

	assert.Equal(t, uint8(0), c.Image.RGBAAt(0, 0).A)
	assert.Equal(t, uint8(255), c.Image.RGBAAt(20, 20).A)
}

func TestCanvas_StrokeRoundRectHollowsInterior(t *testing.T) {
	t.Parallel()

	c := NewCanvas(40, 40)
	c.StrokeRoundRect(geometry.XYWH(0, 0, 40, 40), 0, 3, color.White)

	assert.Equal(t, uint8(255), c.Image.RGBAAt(1, 20).A)
	assert.Equal(t, uint8(0), c.Image.RGBAAt(20, 20).A)
}

func TestRasterizeSVG(t *testing.T) {
	t.Parallel()

	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><rect x="0" y="0" width="10" height="10" fill="#ffffff"/></svg>`)

	c, err := RasterizeSVG(svg, 16, 16)

	require.NoError(t, err)
	assert.Equal(t, uint8(255), c.Image.RGBAAt(8, 8).A)
}

func TestShadow_GrowsByBlurAndSoftensEdges(t *testing.T) {
	t.Parallel()

	c := Shadow(geometry.Size{W: 40, H: 20}, 4, 8, color.RGBA{A: 255})

	assert.Equal(t, 56, c.Width())
	assert.Equal(t, 36, c.Height())

	// Center stays dark, the outermost corner stays clear.
	assert.Greater(t, c.Image.RGBAAt(28, 18).A, uint8(200))
	assert.Equal(t, uint8(0), c.Image.RGBAAt(0, 0).A)
}

func TestShadow_ZeroBlurIsPlainSilhouette(t *testing.T) {
	t.Parallel()

	c := Shadow(geometry.Size{W: 10, H: 10}, 0, 0, color.RGBA{A: 255})

	assert.Equal(t, 10, c.Width())
	assert.Greater(t, c.Image.RGBAAt(5, 5).A, uint8(250))
}

func TestBackdrop_CutsSpotlightHole(t *testing.T) {
	t.Parallel()

	dim := color.RGBA{A: 160}
	c := Backdrop(100, 80, geometry.XYWH(20, 20, 40, 30), 4, dim)

	assert.InDelta(t, 160, int(c.Image.RGBAAt(5, 5).A), 2)
	assert.Equal(t, uint8(0), c.Image.RGBAAt(40, 35).A)
	assert.InDelta(t, 160, int(c.Image.RGBAAt(90, 70).A), 2)
}

func TestBackdrop_EmptyHoleIsSolid(t *testing.T) {
	t.Parallel()

	c := Backdrop(10, 10, geometry.Rect{}, 0, color.RGBA{A: 255})

	assert.Greater(t, c.Image.RGBAAt(5, 5).A, uint8(250))
}
