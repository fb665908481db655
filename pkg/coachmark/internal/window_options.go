package internal

import (
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// WindowOptions selects the SDL window flags. The zero value picks a mode for
// the environment: resizable while developing, borderless on a device.
type WindowOptions struct {
	Borderless        bool // SDL_WINDOW_BORDERLESS
	Resizable         bool // SDL_WINDOW_RESIZABLE; resizes relayout the tour
	Fullscreen        bool // SDL_WINDOW_FULLSCREEN
	FullscreenDesktop bool // SDL_WINDOW_FULLSCREEN_DESKTOP
	Hidden            bool // omit SDL_WINDOW_SHOWN, for headless captures
}

func (wo WindowOptions) IsZero() bool {
	return wo == WindowOptions{}
}

// resolve fills in the environment default for a zero value.
func (wo WindowOptions) resolve(devMode bool) WindowOptions {
	switch {
	case !wo.IsZero():
		return wo
	case devMode:
		return WindowOptions{Resizable: true}
	default:
		return WindowOptions{Borderless: true}
	}
}

func (wo WindowOptions) ToSDLFlags() uint32 {
	var flags uint32
	if !wo.Hidden {
		flags = sdl.WINDOW_SHOWN
	}
	for _, f := range []struct {
		on   bool
		flag uint32
	}{
		{wo.Resizable, sdl.WINDOW_RESIZABLE},
		{wo.Borderless, sdl.WINDOW_BORDERLESS},
		{wo.Fullscreen, sdl.WINDOW_FULLSCREEN},
		{wo.FullscreenDesktop, sdl.WINDOW_FULLSCREEN_DESKTOP},
	} {
		if f.on {
			flags |= f.flag
		}
	}
	return flags
}

func hostWindowOptions(wo WindowOptions) WindowOptions {
	return wo.resolve(constants.IsDevMode())
}
