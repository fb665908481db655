package internal

import (
	"fmt"
	"strings"

	"github.com/BrandonKowalski/coachmark/pkg/coachmark/constants"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// WrapText breaks text into lines no wider than maxWidth according to
// measure. Explicit newlines are kept; a single word wider than maxWidth gets
// a line of its own.
func WrapText(text string, maxWidth int32, measure func(string) int32) []string {
	if text == "" {
		return nil
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := words[0]
		for _, word := range words[1:] {
			candidate := current + " " + word
			if measure(candidate) > maxWidth {
				lines = append(lines, current)
				current = word
				continue
			}
			current = candidate
		}
		lines = append(lines, current)
	}
	return lines
}

// FontMeasure adapts a ttf font to WrapText.
func FontMeasure(font *ttf.Font) func(string) int32 {
	return func(s string) int32 {
		w, _, err := font.SizeUTF8(s)
		if err != nil {
			return 0
		}
		return int32(w)
	}
}

// LineHeight returns the distance between wrapped lines for font.
func LineHeight(font *ttf.Font) int32 {
	h := int32(font.Height())
	return h + int32(float64(h)*constants.DefaultLineSpacing)
}

// TextHeight returns the height of lines set in font.
func TextHeight(font *ttf.Font, lines int) int32 {
	if lines == 0 {
		return 0
	}
	return LineHeight(font)*int32(lines-1) + int32(font.Height())
}

// TextTexture renders a single line. Textures are cached by font, color and
// text, so the cache owns them and callers must not destroy them.
func TextTexture(renderer *sdl.Renderer, cache *TextureCache, font *ttf.Font, text string, color sdl.Color) (*sdl.Texture, int32, int32, error) {
	key := fmt.Sprintf("text|%p|%08x|%s", font, colorKey(color), text)
	texture, err := cache.GetOrCreate(key, func() (*sdl.Texture, error) {
		surface, err := font.RenderUTF8Blended(text, color)
		if err != nil {
			return nil, err
		}
		defer surface.Free()
		return renderer.CreateTextureFromSurface(surface)
	})
	if err != nil {
		return nil, 0, 0, err
	}

	_, _, w, h, err := texture.Query()
	if err != nil {
		return nil, 0, 0, err
	}
	return texture, w, h, nil
}

// RenderLines draws pre-wrapped lines starting at (x, y) with the given
// alignment inside width.
func RenderLines(renderer *sdl.Renderer, cache *TextureCache, font *ttf.Font, lines []string, x, y, width int32, color sdl.Color, align constants.TextAlign) {
	lineHeight := LineHeight(font)
	for i, line := range lines {
		if line == "" {
			continue
		}
		texture, w, h, err := TextTexture(renderer, cache, font, line, color)
		if err != nil {
			GetInternalLogger().Error("Failed to render text", "text", line, "error", err)
			continue
		}

		lx := x
		switch align {
		case constants.TextAlignCenter:
			lx = x + (width-w)/2
		case constants.TextAlignRight:
			lx = x + width - w
		}
		renderer.Copy(texture, nil, &sdl.Rect{X: lx, Y: y + int32(i)*lineHeight, W: w, H: h})
	}
}

func colorKey(c sdl.Color) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}
