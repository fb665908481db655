package internal

import (
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/ttf"
)

// FontSizes are point sizes at a 480 pixel tall reference screen. They are
// scaled with the window height.
type FontSizes struct {
	Title int
	Body  int
	Small int
}

var DefaultFontSizes = FontSizes{
	Title: 20,
	Body:  16,
	Small: 13,
}

type fontsManager struct {
	TitleFont *ttf.Font
	BodyFont  *ttf.Font
	SmallFont *ttf.Font
}

var Fonts fontsManager

// fallbackFontPaths are tried in order when the theme does not name a font.
var fallbackFontPaths = []string{
	"/mnt/SDCARD/System/fonts/Cannoli.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
}

func resolveFontPath(themePath string) (string, error) {
	candidates := fallbackFontPaths
	if themePath != "" {
		candidates = append([]string{themePath}, fallbackFontPaths...)
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("no usable font found (tried %v)", candidates)
}

func scaleFontSize(size int, windowHeight int32) int {
	scaled := size * int(windowHeight) / 480
	if scaled < 8 {
		return 8
	}
	return scaled
}

func initFonts(sizes FontSizes, windowHeight int32) error {
	path, err := resolveFontPath(GetTheme().FontPath)
	if err != nil {
		return err
	}

	open := func(size int) (*ttf.Font, error) {
		f, err := ttf.OpenFont(path, scaleFontSize(size, windowHeight))
		if err != nil {
			return nil, fmt.Errorf("open font %s: %w", path, err)
		}
		return f, nil
	}

	if Fonts.TitleFont, err = open(sizes.Title); err != nil {
		return err
	}
	Fonts.TitleFont.SetStyle(ttf.STYLE_BOLD)
	if Fonts.BodyFont, err = open(sizes.Body); err != nil {
		return err
	}
	if Fonts.SmallFont, err = open(sizes.Small); err != nil {
		return err
	}

	GetInternalLogger().Debug("Loaded fonts", "path", path)
	return nil
}

func closeFonts() {
	for _, f := range []*ttf.Font{Fonts.TitleFont, Fonts.BodyFont, Fonts.SmallFont} {
		if f != nil {
			f.Close()
		}
	}
	Fonts = fontsManager{}
}
