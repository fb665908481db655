package coachmark

import (
	"fmt"
	"math"
	"time"

	"github.com/BrandonKowalski/coachmark/pkg/coachmark/config"
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/constants"
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/geometry"
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/internal"
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/locale"
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/placement"
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/sequence"
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/shape"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const (
	blockGap      int32 = 8
	controlGap    int32 = 12
	pillPadding   int32 = 6
	shadowOffsetY       = 2.0
)

// overlay draws sequence frames into the window. It owns every texture it
// creates.
type overlay struct {
	window   *internal.Window
	renderer *sdl.Renderer
	theme    internal.Theme
	catalog  *locale.Catalog
	shapes   *internal.TextureCache
	text     *internal.TextureCache
	images   *internal.TextureCache

	displayed  placement.Result
	target     placement.Result
	transition placement.Transition
	hasLayout  bool
}

func newOverlay(window *internal.Window, theme internal.Theme, catalog *locale.Catalog) *overlay {
	return &overlay{
		window:   window,
		renderer: window.Renderer,
		theme:    theme,
		catalog:  catalog,
		shapes:   internal.NewTextureCacheWithSize(16),
		text:     internal.NewTextureCacheWithSize(64),
		images:   internal.NewTextureCacheWithSize(8),
	}
}

func (o *overlay) destroy() {
	o.shapes.Destroy()
	o.text.Destroy()
	o.images.Destroy()
}

// render draws one frame. Frames that are not positioned yet only dim the
// screen so the first measured layout does not animate in from nowhere.
func (o *overlay) render(frame sequence.Frame, viewport geometry.Rect, now time.Time) {
	o.renderer.SetDrawColor(0, 0, 0, 255)
	o.renderer.Clear()
	o.window.RenderBackground()

	if !frame.Visible {
		return
	}

	if !frame.Positioned {
		o.drawBackdrop(viewport, geometry.Rect{}, 0)
		return
	}

	cfg := frame.Config
	labels := o.catalog.Resolve(cfg)
	content := collectContent(frame.Step)
	layout := o.layoutContent(content, cfg)

	boxHeight := math.Max(cfg.TipHeight, float64(layout.height)+2*cfg.TipVerticalPadding)
	result := placement.ComputeSized(frame.Target, cfg, viewport, geometry.Size{W: cfg.TipWidth, H: boxHeight})
	shown := o.animate(result, cfg, now)

	if o.animating(now) {
		o.drawBackdropBands(viewport, shown.Spotlight)
	} else {
		o.drawBackdrop(viewport, shown.Spotlight, cfg.SpotlightCornerRadius)
	}
	o.drawSpotlightBorder(shown.Spotlight, cfg)
	o.drawShadow(shown.Box, cfg)
	o.drawBox(shown, cfg)
	o.drawContent(layout, shown.Box, cfg)
	o.drawControls(frame, labels, layout, shown.Box, cfg)
}

// animate eases from the layout on screen to result when the target layout
// changes and animation is enabled.
func (o *overlay) animate(result placement.Result, cfg config.Configuration, now time.Time) placement.Result {
	switch {
	case !o.hasLayout:
		o.displayed, o.target = result, result
		o.transition = placement.NewTransition(result, result, now, 0)
		o.hasLayout = true
	case result != o.target:
		duration := cfg.TransitionDuration
		if !cfg.AnimateTransitions {
			duration = 0
		}
		o.transition = placement.NewTransition(o.displayed, result, now, duration)
		o.target = result
	}

	o.displayed = o.transition.At(now)
	return o.displayed
}

func (o *overlay) animating(now time.Time) bool {
	return o.hasLayout && !o.transition.Done(now)
}

func (o *overlay) layoutContent(content []contentBlock, cfg config.Configuration) tipLayout {
	width := int32(cfg.TipWidth - 2*cfg.TipHorizontalPadding)
	return layoutTip(
		content,
		width,
		fontMetrics(internal.Fonts.TitleFont),
		fontMetrics(internal.Fonts.BodyFont),
		func(path string) int32 {
			_, h := o.imageSize(path, width)
			return h
		},
		o.controlsHeight(),
		blockGap,
	)
}

func fontMetrics(font *ttf.Font) textMetrics {
	return textMetrics{
		measure:    internal.FontMeasure(font),
		lineHeight: internal.LineHeight(font),
		fontHeight: int32(font.Height()),
	}
}

func (o *overlay) controlsHeight() int32 {
	return int32(internal.Fonts.SmallFont.Height()) + 2*pillPadding
}

func (o *overlay) shapeTexture(key string, build func() *shape.Canvas) *sdl.Texture {
	texture, err := o.shapes.GetOrCreate(key, func() (*sdl.Texture, error) {
		return internal.CanvasTexture(o.renderer, build())
	})
	if err != nil {
		internal.GetInternalLogger().Error("Failed to build shape texture", "key", key, "error", err)
		return nil
	}
	return texture
}

func (o *overlay) copyAt(texture *sdl.Texture, r geometry.Rect) {
	if texture == nil {
		return
	}
	dst := internal.ToSDLRect(r)
	o.renderer.Copy(texture, nil, &dst)
}

func (o *overlay) drawBackdrop(viewport, spotlight geometry.Rect, radius float64) {
	w, h := int(viewport.W), int(viewport.H)
	key := fmt.Sprintf("backdrop|%dx%d|%s|%g", w, h, spotlight, radius)
	texture := o.shapeTexture(key, func() *shape.Canvas {
		hole := spotlight.Offset(-viewport.X, -viewport.Y)
		return shape.Backdrop(w, h, hole, radius, internal.ToRGBA(o.theme.DimColor))
	})
	o.copyAt(texture, viewport)
}

// drawBackdropBands dims around a square hole with plain fills. It is used
// while the spotlight moves so no full screen raster happens per frame.
func (o *overlay) drawBackdropBands(viewport, spotlight geometry.Rect) {
	c := o.theme.DimColor
	o.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	for _, band := range backdropBands(viewport, spotlight) {
		r := internal.ToSDLRect(band)
		o.renderer.FillRect(&r)
	}
}

// backdropBands splits the viewport minus hole into up to four
// non-overlapping rects: full width above and below, then left and right of
// the hole.
func backdropBands(viewport, hole geometry.Rect) []geometry.Rect {
	hole = hole.Normalized().Intersect(viewport)
	if hole.IsEmpty() {
		return []geometry.Rect{viewport}
	}

	var bands []geometry.Rect
	add := func(r geometry.Rect) {
		if !r.IsEmpty() {
			bands = append(bands, r)
		}
	}
	add(geometry.XYWH(viewport.X, viewport.Y, viewport.W, hole.MinY()-viewport.MinY()))
	add(geometry.XYWH(viewport.X, hole.MaxY(), viewport.W, viewport.MaxY()-hole.MaxY()))
	add(geometry.XYWH(viewport.X, hole.Y, hole.MinX()-viewport.MinX(), hole.H))
	add(geometry.XYWH(hole.MaxX(), hole.Y, viewport.MaxX()-hole.MaxX(), hole.H))
	return bands
}

func (o *overlay) drawSpotlightBorder(spotlight geometry.Rect, cfg config.Configuration) {
	bw := cfg.SpotlightBorderWidth
	if bw <= 0 || spotlight.IsEmpty() {
		return
	}
	outer := spotlight.Outset(geometry.UniformInsets(bw))
	key := fmt.Sprintf("border|%gx%g|%g|%g", outer.W, outer.H, cfg.SpotlightCornerRadius, bw)
	texture := o.shapeTexture(key, func() *shape.Canvas {
		c := shape.NewCanvas(int(math.Ceil(outer.W)), int(math.Ceil(outer.H)))
		c.StrokeRoundRect(geometry.XYWH(0, 0, outer.W, outer.H), cfg.SpotlightCornerRadius+bw, bw, internal.ToRGBA(o.theme.SpotlightColor))
		return c
	})
	o.copyAt(texture, outer)
}

func (o *overlay) drawShadow(box geometry.Rect, cfg config.Configuration) {
	if cfg.ShadowRadius <= 0 {
		return
	}
	pad := math.Ceil(cfg.ShadowRadius)
	key := fmt.Sprintf("shadow|%gx%g|%g|%g", box.W, box.H, cfg.CornerRadius, cfg.ShadowRadius)
	texture := o.shapeTexture(key, func() *shape.Canvas {
		return shape.Shadow(box.Size(), cfg.CornerRadius, cfg.ShadowRadius, internal.ToRGBA(o.theme.ShadowColor))
	})
	o.copyAt(texture, box.Outset(geometry.UniformInsets(pad)).Offset(0, shadowOffsetY))
}

func (o *overlay) drawBox(layout placement.Result, cfg config.Configuration) {
	box := layout.Box
	boxKey := fmt.Sprintf("box|%gx%g|%g", box.W, box.H, cfg.CornerRadius)
	o.copyAt(o.shapeTexture(boxKey, func() *shape.Canvas {
		c := shape.NewCanvas(int(math.Ceil(box.W)), int(math.Ceil(box.H)))
		c.FillRoundRect(geometry.XYWH(0, 0, box.W, box.H), cfg.CornerRadius, internal.ToRGBA(o.theme.TipColor))
		return c
	}), box)

	arrow := layout.Arrow
	arrowKey := fmt.Sprintf("arrow|%gx%g|%s", arrow.W, arrow.H, layout.Direction)
	o.copyAt(o.shapeTexture(arrowKey, func() *shape.Canvas {
		c := shape.NewCanvas(int(math.Ceil(arrow.W)), int(math.Ceil(arrow.H)))
		c.FillTriangle(geometry.XYWH(0, 0, arrow.W, arrow.H), layout.Direction, internal.ToRGBA(o.theme.TipColor))
		return c
	}), arrow)
}

func (o *overlay) drawContent(layout tipLayout, box geometry.Rect, cfg config.Configuration) {
	inner := internal.ToSDLRect(box.Inset(geometry.Insets{
		Top:    cfg.TipVerticalPadding,
		Right:  cfg.TipHorizontalPadding,
		Bottom: cfg.TipVerticalPadding,
		Left:   cfg.TipHorizontalPadding,
	}))

	for _, b := range layout.blocks {
		y := inner.Y + b.y
		switch b.kind {
		case blockTitle:
			internal.RenderLines(o.renderer, o.text, internal.Fonts.TitleFont, b.lines, inner.X, y, inner.W, o.theme.TitleColor, constants.TextAlignLeft)
		case blockBody:
			internal.RenderLines(o.renderer, o.text, internal.Fonts.BodyFont, b.lines, inner.X, y, inner.W, o.theme.TextColor, constants.TextAlignLeft)
		case blockImage:
			texture := o.image(b.image)
			if texture == nil {
				continue
			}
			w, h := o.imageSize(b.image, inner.W)
			o.renderer.Copy(texture, nil, &sdl.Rect{X: inner.X + (inner.W-w)/2, Y: y, W: w, H: h})
		}
	}
}

// drawControls lays out the bottom row: exit on the left, then back and the
// next pill on the right. The progress counter sits in the top right corner.
func (o *overlay) drawControls(frame sequence.Frame, labels config.Labels, layout tipLayout, box geometry.Rect, cfg config.Configuration) {
	font := internal.Fonts.SmallFont
	inner := internal.ToSDLRect(box.Inset(geometry.Insets{
		Top:    cfg.TipVerticalPadding,
		Right:  cfg.TipHorizontalPadding,
		Bottom: cfg.TipVerticalPadding,
		Left:   cfg.TipHorizontalPadding,
	}))
	rowY := inner.Y + layout.controlsY
	rowH := o.controlsHeight()
	iconSize := int32(font.Height())

	if frame.Count > 1 {
		progress := o.catalog.Progress(cfg.Locale, frame.Index, frame.Count)
		o.drawLabel(font, progress, o.theme.HintColor, inner.X+inner.W, inner.Y, constants.TextAlignRight)
	}

	if cfg.ShowExitButton {
		x := inner.X
		o.drawIcon("close", constants.CloseIconSVG, x, rowY+(rowH-iconSize)/2, iconSize, o.theme.HintColor)
		o.drawLabel(font, labels.Exit, o.theme.HintColor, x+iconSize+4, rowY+pillPadding, constants.TextAlignLeft)
	}

	// Next pill, right aligned.
	next := frame.NextLabel(labels)
	nextW := o.textWidth(font, next)
	pill := sdl.Rect{
		X: inner.X + inner.W - (nextW + iconSize + 3*pillPadding),
		Y: rowY,
		W: nextW + iconSize + 3*pillPadding,
		H: rowH,
	}
	pillRect := internal.FromSDLRect(pill)
	pillKey := fmt.Sprintf("pill|%dx%d", pill.W, pill.H)
	o.copyAt(o.shapeTexture(pillKey, func() *shape.Canvas {
		c := shape.NewCanvas(int(pill.W), int(pill.H))
		c.FillRoundRect(geometry.XYWH(0, 0, float64(pill.W), float64(pill.H)), float64(pill.H)/2, internal.ToRGBA(o.theme.AccentColor))
		return c
	}), pillRect)
	o.drawLabel(font, next, o.theme.AccentTextColor, pill.X+pillPadding, rowY+pillPadding, constants.TextAlignLeft)
	o.drawIcon("next", constants.ChevronRightSVG, pill.X+pillPadding+nextW+pillPadding, rowY+(rowH-iconSize)/2, iconSize, o.theme.AccentTextColor)

	if frame.ShowBack() {
		backW := o.textWidth(font, labels.Back)
		x := pill.X - controlGap - backW
		o.drawLabel(font, labels.Back, o.theme.TextColor, x, rowY+pillPadding, constants.TextAlignLeft)
		o.drawIcon("back", constants.ChevronLeftSVG, x-iconSize, rowY+(rowH-iconSize)/2, iconSize, o.theme.TextColor)
	}
}

func (o *overlay) textWidth(font *ttf.Font, text string) int32 {
	return internal.FontMeasure(font)(text)
}

// drawLabel draws one line of text. For TextAlignRight x is the right edge.
func (o *overlay) drawLabel(font *ttf.Font, text string, color sdl.Color, x, y int32, align constants.TextAlign) {
	if text == "" {
		return
	}
	texture, w, h, err := internal.TextTexture(o.renderer, o.text, font, text, color)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to render label", "text", text, "error", err)
		return
	}
	if align == constants.TextAlignRight {
		x -= w
	}
	o.renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: w, H: h})
}

// drawIcon draws a white SVG icon tinted with color.
func (o *overlay) drawIcon(name, svg string, x, y, size int32, color sdl.Color) {
	key := fmt.Sprintf("icon|%s|%d", name, size)
	texture, err := o.shapes.GetOrCreate(key, func() (*sdl.Texture, error) {
		canvas, err := shape.RasterizeSVG([]byte(svg), int(size), int(size))
		if err != nil {
			return nil, err
		}
		return internal.CanvasTexture(o.renderer, canvas)
	})
	if err != nil {
		internal.GetInternalLogger().Error("Failed to rasterize icon", "error", err)
		return
	}
	texture.SetColorMod(color.R, color.G, color.B)
	o.renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: size, H: size})
}

func (o *overlay) image(path string) *sdl.Texture {
	texture, err := o.images.GetOrCreate(path, func() (*sdl.Texture, error) {
		return img.LoadTexture(o.renderer, path)
	})
	if err != nil {
		internal.GetInternalLogger().Warn("Failed to load step image", "path", path, "error", err)
		return nil
	}
	return texture
}

// imageSize fits an image into maxWidth and half as much height, keeping its
// aspect ratio. Missing images have zero size.
func (o *overlay) imageSize(path string, maxWidth int32) (int32, int32) {
	texture := o.image(path)
	if texture == nil {
		return 0, 0
	}
	_, _, w, h, err := texture.Query()
	if err != nil || w == 0 || h == 0 {
		return 0, 0
	}
	return fitSize(w, h, maxWidth, maxWidth/2)
}

// fitSize scales w x h down to fit inside maxW x maxH. It never scales up.
func fitSize(w, h, maxW, maxH int32) (int32, int32) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	scale := math.Min(1, math.Min(float64(maxW)/float64(w), float64(maxH)/float64(h)))
	return int32(float64(w) * scale), int32(float64(h) * scale)
}
