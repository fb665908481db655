// Package cannoli provides overlay theming for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// FontPath is where Cannoli installs its UI font.
const FontPath = "/mnt/SDCARD/System/fonts/Cannoli.ttf"

// InitCannoliTheme creates an overlay theme with Cannoli's colors and the
// specified font. Cannoli draws light surfaces with a teal accent, so the tip
// box is white with dark text.
func InitCannoliTheme(fontPath string) internal.Theme {
	return internal.Theme{
		DimColor:        sdl.Color{R: 0, G: 0, B: 0, A: 150},
		SpotlightColor:  internal.HexToColor(0x008080),
		TipColor:        internal.HexToColor(0xFFFFFF),
		ShadowColor:     sdl.Color{R: 0, G: 0, B: 0, A: 90},
		TextColor:       internal.HexToColor(0x000000),
		TitleColor:      internal.HexToColor(0x000000),
		HintColor:       internal.HexToColor(0x555555),
		AccentColor:     internal.HexToColor(0x008080),
		AccentTextColor: internal.HexToColor(0xFFFFFF),
		FontPath:        fontPath,
	}
}
