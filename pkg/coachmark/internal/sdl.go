package internal

import (
	"fmt"

	"github.com/BrandonKowalski/coachmark/pkg/coachmark/constants"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var (
	window      *Window
	powerButton *PowerButton
)

// HostConfig is everything Init needs to bring up the host.
type HostConfig struct {
	Title         string
	WindowOptions WindowOptions
	InputMapping  InputMapping
	PowerButton   PowerButtonConfig
	FontSizes     FontSizes
}

// Init starts SDL, opens the window, loads fonts and starts input handling.
// Errors name the step that failed.
func Init(cfg HostConfig) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("init sdl: %w", err)
	}

	if err := ttf.Init(); err != nil {
		return fmt.Errorf("init ttf: %w", err)
	}

	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		GetInternalLogger().Warn("Image support is limited", "error", err)
	}

	var err error
	window, err = initWindow(cfg.Title, hostWindowOptions(cfg.WindowOptions))
	if err != nil {
		return err
	}

	sizes := cfg.FontSizes
	if sizes == (FontSizes{}) {
		sizes = DefaultFontSizes
	}
	if err := initFonts(sizes, window.GetHeight()); err != nil {
		return err
	}

	inputProcessor = NewInputProcessor(cfg.InputMapping)
	inputProcessor.openAllControllers()

	if !constants.IsDevMode() && cfg.PowerButton.DevicePath != "" {
		pb, err := StartPowerButton(cfg.PowerButton)
		if err != nil {
			GetInternalLogger().Warn("Power button unavailable", "device", cfg.PowerButton.DevicePath, "error", err)
		} else {
			powerButton = pb
		}
	}

	return nil
}

// GetPowerButton returns the running watcher, or nil when there is none.
func GetPowerButton() *PowerButton {
	return powerButton
}

func SDLCleanup() {
	powerButton.Close()
	powerButton = nil

	if inputProcessor != nil {
		inputProcessor.closeControllers()
	}
	if window != nil {
		window.closeWindow()
		window = nil
	}
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}
