package coachmark

import (
	"time"

	"github.com/BrandonKowalski/coachmark/pkg/coachmark/config"
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/constants"
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/geometry"
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/internal"
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/locale"
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/sequence"
	"github.com/veandco/go-sdl2/sdl"
)

// TourSettings configures a tour.
type TourSettings struct {
	// Config is the overlay configuration. nil uses config.Default().
	Config *config.Configuration
	// Regions are the anchors of the steps, keyed by step id. Steps without a
	// region are not drawn until RegionFunc supplies one.
	Regions map[string]geometry.Rect
	// RegionFunc is asked for the active step's region whenever the step
	// changes, for anchors that move with the screen being explained.
	RegionFunc func(stepID string) (geometry.Rect, bool)
	// Catalog localizes the control labels. nil uses the embedded catalog.
	Catalog *locale.Catalog
	// NextButton advances (default: VirtualButtonA). Right and R1 always do.
	NextButton constants.VirtualButton
	// BackButton goes back (default: VirtualButtonY). Left and L1 always do.
	// Ignored when the configuration hides the back control.
	BackButton constants.VirtualButton
	// ExitButton skips the tour (default: VirtualButtonB). Ignored when the
	// configuration hides the exit control.
	ExitButton constants.VirtualButton
}

type tourController struct {
	seq        *sequence.Controller
	steps      []sequence.Step
	cfg        config.Configuration
	regionFunc func(string) (geometry.Rect, bool)

	nextButton constants.VirtualButton
	backButton constants.VirtualButton
	exitButton constants.VirtualButton

	inputDelay    time.Duration
	lastInputTime time.Time
	cancelled     bool
	lastStepID    string
}

// Tour shows steps one at a time over the current window and blocks until the
// user finishes or skips the tour. Closing the window returns ErrCancelled.
func Tour(steps []sequence.Step, settings TourSettings) (*TourResult, error) {
	if !initialized {
		return nil, ErrNotInitialized
	}
	if len(steps) == 0 {
		return nil, ErrEmptySequence
	}

	cfg := config.Default()
	if settings.Config != nil {
		cfg = *settings.Config
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	catalog := settings.Catalog
	if catalog == nil {
		var err error
		if catalog, err = locale.New(); err != nil {
			return nil, NewInfrastructureError("load_locale", err)
		}
	}

	window := internal.GetWindow()
	logger := internal.GetInternalLogger()

	tc := &tourController{
		steps:         steps,
		cfg:           cfg,
		regionFunc:    settings.RegionFunc,
		nextButton:    settings.NextButton,
		backButton:    settings.BackButton,
		exitButton:    settings.ExitButton,
		inputDelay:    constants.DefaultInputDelay,
		lastInputTime: time.Now(),
	}
	if tc.nextButton == constants.VirtualButtonUnassigned {
		tc.nextButton = constants.VirtualButtonA
	}
	if tc.backButton == constants.VirtualButtonUnassigned {
		tc.backButton = constants.VirtualButtonY
	}
	if tc.exitButton == constants.VirtualButtonUnassigned {
		tc.exitButton = constants.VirtualButtonB
	}

	tc.seq = sequence.New(sequence.Options{
		Viewport: window.Viewport(),
		Logger:   logger,
	})
	for id, r := range settings.Regions {
		tc.seq.RegisterRegion(id, r)
	}
	if err := tc.seq.Start(steps, cfg); err != nil {
		return nil, err
	}

	ov := newOverlay(window, internal.GetTheme(), catalog)
	defer ov.destroy()

	for tc.seq.Phase() == sequence.PhaseActive {
		tc.refreshRegion()

		if !tc.handleEvents() {
			break
		}
		if internal.GetPowerButton().Pressed() {
			tc.seq.Skip()
		}
		if tc.seq.Phase() != sequence.PhaseActive {
			break
		}

		ov.render(tc.seq.Frame(), tc.seq.Viewport(), time.Now())
		window.Present()
	}

	if tc.cancelled {
		return nil, ErrCancelled
	}

	result := tourResult(tc.seq, steps)
	logger.Debug("Tour ended", "action", result.Action.String(), "step", result.LastStep)
	return result, nil
}

// refreshRegion asks RegionFunc for the active step's anchor once per step
// change.
func (tc *tourController) refreshRegion() {
	step, ok := tc.seq.ActiveStep()
	if !ok || tc.regionFunc == nil || step.ID() == tc.lastStepID {
		return
	}
	tc.lastStepID = step.ID()
	if r, found := tc.regionFunc(step.ID()); found {
		tc.seq.RegisterRegion(step.ID(), r)
	}
}

func (tc *tourController) handleEvents() bool {
	processor := internal.GetInputProcessor()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			tc.cancelled = true
			return false

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				tc.seq.SetViewport(internal.GetWindow().Viewport())
			}

		case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.ControllerDeviceEvent:
			inputEvent := processor.ProcessSDLEvent(event)
			if inputEvent == nil || !inputEvent.Pressed {
				continue
			}

			if time.Since(tc.lastInputTime) < tc.inputDelay {
				continue
			}
			tc.lastInputTime = time.Now()

			tc.apply(tourActionFor(inputEvent.Button, tc.cfg, tc.nextButton, tc.backButton, tc.exitButton))
		}
	}
	return true
}

type navigation int

const (
	navNone navigation = iota
	navNext
	navBack
	navExit
)

// tourActionFor maps a pressed button to a navigation. Back and exit are only
// honored when the configuration shows their controls.
func tourActionFor(button constants.VirtualButton, cfg config.Configuration, next, back, exit constants.VirtualButton) navigation {
	switch button {
	case next, constants.VirtualButtonRight, constants.VirtualButtonR1:
		return navNext
	case back, constants.VirtualButtonLeft, constants.VirtualButtonL1:
		if cfg.ShowBackButton {
			return navBack
		}
	case exit, constants.VirtualButtonMenu:
		if cfg.ShowExitButton {
			return navExit
		}
	}
	return navNone
}

func (tc *tourController) apply(nav navigation) {
	switch nav {
	case navNext:
		tc.seq.Advance()
	case navBack:
		tc.seq.Retreat()
	case navExit:
		tc.seq.Skip()
	}
}
