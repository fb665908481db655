// Package coachmark shows guided-tour overlays on SDL based handheld and
// desktop applications. A tour highlights one UI element at a time and
// explains it in a tip box with an arrow pointing at the element.
//
// The geometry, placement and navigation live in the subpackages and have no
// SDL dependency; this package wires them to a window.
package coachmark

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/BrandonKowalski/coachmark/pkg/coachmark/constants"
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/internal"
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/platform/cannoli"
)

// Options configures the overlay host.
type Options struct {
	WindowTitle          string                 // Window title displayed in windowed mode
	WindowOptions        internal.WindowOptions // SDL window flags (borderless, resizable, etc.)
	PrimaryThemeColorHex uint32                 // Custom accent color for the next control and spotlight border
	FontPath             string                 // Font for tip box text; a system font is used when empty
	IsCannoli            bool                   // Use Cannoli CFW theming and font
	InputMappingFile     string                 // Path to a TOML file overriding keyboard and controller bindings
	FlipFaceButtons      bool                   // Use direct face button mapping (A=A, B=B) instead of Nintendo-style swap
	PowerButtonDevice    string                 // evdev node for the power key; a short press dismisses the tour
	LogPath              string                 // Full path for log file including filename (creates parent directories)
}

var initialized bool

// Init starts SDL, opens the window and loads fonts. It must succeed before
// Tour is called.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if os.Getenv(constants.DebugEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	theme := internal.DefaultTheme(options.FontPath)
	if options.IsCannoli {
		fontPath := options.FontPath
		if fontPath == "" {
			fontPath = cannoli.FontPath
		}
		theme = cannoli.InitCannoliTheme(fontPath)
	}
	if options.PrimaryThemeColorHex != 0 {
		theme.AccentColor = internal.HexToColor(options.PrimaryThemeColorHex)
		theme.SpotlightColor = theme.AccentColor
	}
	internal.SetTheme(theme)

	mapping, err := loadInputMapping(options)
	if err != nil {
		return NewInfrastructureError("load_input_mapping", err)
	}

	cfg := internal.HostConfig{
		Title:         options.WindowTitle,
		WindowOptions: options.WindowOptions,
		InputMapping:  mapping,
	}
	if options.PowerButtonDevice != "" {
		cfg.PowerButton = internal.PowerButtonConfig{
			ButtonCode:    116,
			DevicePath:    options.PowerButtonDevice,
			ShortPressMax: 2 * time.Second,
			CoolDownTime:  1 * time.Second,
		}
	}

	if err := internal.Init(cfg); err != nil {
		return NewInfrastructureError("init", err)
	}

	initialized = true
	return nil
}

func loadInputMapping(options Options) (internal.InputMapping, error) {
	flip := options.FlipFaceButtons || envBool("FLIP_FACE_BUTTONS")
	mapping := internal.DefaultInputMapping(flip)
	if options.InputMappingFile == "" {
		return mapping, nil
	}

	data, err := os.ReadFile(options.InputMappingFile)
	if err != nil {
		return mapping, fmt.Errorf("failed to read input mapping %s: %w", options.InputMappingFile, err)
	}
	return internal.ParseInputMapping(mapping, data)
}

func envBool(name string) bool {
	switch strings.ToLower(os.Getenv(name)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// Close releases all SDL resources. Must be called before program exit to
// prevent resource leaks.
func Close() {
	if !initialized {
		return
	}
	internal.SDLCleanup()
	initialized = false
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetBackground sets the image drawn under the overlay, typically a
// screenshot of the screen being explained. An empty path clears it.
func SetBackground(path string) error {
	if !initialized {
		return ErrNotInitialized
	}
	if err := internal.GetWindow().LoadBackground(path); err != nil {
		return NewInfrastructureError("load_background", err)
	}
	return nil
}
