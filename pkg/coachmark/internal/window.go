package internal

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BrandonKowalski/coachmark/pkg/coachmark/constants"
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/geometry"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	devWindowWidth  = 1024
	devWindowHeight = 768
)

// Window wraps the SDL window and renderer the overlay draws into.
type Window struct {
	Window          *sdl.Window
	Renderer        *sdl.Renderer
	Title           string
	Background      *sdl.Texture
	width           int32
	height          int32
	hasVSync        bool
	lastPresentTime uint64
}

func initWindow(title string, winOpts WindowOptions) (*Window, error) {
	displayMode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		GetInternalLogger().Error("Failed to get display mode", "error", err)
		displayMode.W, displayMode.H = devWindowWidth, devWindowHeight
	}

	return initWindowWithSize(title, displayMode.W, displayMode.H, winOpts)
}

func initWindowWithSize(title string, width, height int32, winOpts WindowOptions) (*Window, error) {
	x, y := int32(0), int32(0)

	if constants.IsDevMode() {
		winOpts.Borderless = false
		x, y = 50, 50
		width = envDimension(constants.WindowWidthEnvVar, devWindowWidth)
		height = envDimension(constants.WindowHeightEnvVar, devWindowHeight)
	}

	GetInternalLogger().Debug("Initializing SDL window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	renderer.SetLogicalSize(width, height)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   window,
		Renderer: renderer,
		Title:    title,
		width:    width,
		height:   height,
		hasVSync: vsync,
	}, nil
}

// envDimension reads a positive window dimension from the environment.
func envDimension(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		GetInternalLogger().Warn("Invalid window dimension; using default", "name", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

// LoadBackground replaces the image drawn under the overlay. An empty path
// clears it.
func (window *Window) LoadBackground(path string) error {
	if window.Background != nil {
		window.Background.Destroy()
		window.Background = nil
	}
	if path == "" {
		return nil
	}

	texture, err := img.LoadTexture(window.Renderer, path)
	if err != nil {
		return fmt.Errorf("load background %s: %w", path, err)
	}
	window.Background = texture
	return nil
}

func (window *Window) closeWindow() {
	if window.Background != nil {
		window.Background.Destroy()
	}
	window.Renderer.Destroy()
	window.Window.Destroy()
}

func GetWindow() *Window {
	return window
}

func (window *Window) GetWidth() int32 {
	return window.width
}

func (window *Window) GetHeight() int32 {
	return window.height
}

// Viewport returns the logical drawing area in overlay coordinates.
func (window *Window) Viewport() geometry.Rect {
	return geometry.XYWH(0, 0, float64(window.width), float64(window.height))
}

func (window *Window) RenderBackground() {
	if window.Background != nil {
		window.Renderer.Copy(window.Background, nil, &sdl.Rect{X: 0, Y: 0, W: window.width, H: window.height})
	}
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (window *Window) Present() {
	window.Renderer.Present()
	if !window.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - window.lastPresentTime; elapsed < constants.DefaultFrameDelay {
			sdl.Delay(uint32(constants.DefaultFrameDelay - elapsed))
		}
		window.lastPresentTime = sdl.GetTicks64()
	}
}
