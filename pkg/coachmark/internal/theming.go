package internal

import (
	"image/color"

	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the colors and font of the overlay.
type Theme struct {
	DimColor        sdl.Color // Backdrop drawn over everything outside the spotlight
	SpotlightColor  sdl.Color // Spotlight border
	TipColor        sdl.Color // Tip box and arrow fill
	ShadowColor     sdl.Color // Tip box drop shadow
	TextColor       sdl.Color // Body text
	TitleColor      sdl.Color // Step title
	HintColor       sdl.Color // Progress counter and secondary controls
	AccentColor     sdl.Color // Primary control pill
	AccentTextColor sdl.Color // Label inside the primary control pill
	FontPath        string    // Path to the UI font
}

var currentTheme = DefaultTheme("")

// DefaultTheme is a dark tip box on a dimmed backdrop.
func DefaultTheme(fontPath string) Theme {
	return Theme{
		DimColor:        sdl.Color{R: 0, G: 0, B: 0, A: 168},
		SpotlightColor:  HexToColor(0xFFFFFF),
		TipColor:        HexToColor(0x1F2933),
		ShadowColor:     sdl.Color{R: 0, G: 0, B: 0, A: 110},
		TextColor:       HexToColor(0xE4E7EB),
		TitleColor:      HexToColor(0xFFFFFF),
		HintColor:       HexToColor(0x9AA5B1),
		AccentColor:     HexToColor(0x008080),
		AccentTextColor: HexToColor(0xFFFFFF),
		FontPath:        fontPath,
	}
}

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB to an opaque color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

// ToRGBA converts an SDL color for use with image/color based rasterizers.
func ToRGBA(c sdl.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
