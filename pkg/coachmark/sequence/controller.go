// Package sequence owns the ordered steps of a coachmark walkthrough, the
// active index and the regions measured for each step's anchor. Every change
// re-runs the placement engine and publishes a Frame to the host.
//
// The Controller is single-threaded: call it from the UI loop only.
package sequence

import (
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/coachmark/pkg/coachmark/config"
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/geometry"
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/placement"
	"github.com/felixgeelhaar/statekit"
)

// Options configures a Controller. All fields are optional.
type Options struct {
	// ID names the walkthrough in logs.
	ID string
	// Viewport is the area the tip box must stay inside.
	Viewport geometry.Rect
	// Logger receives debug output. Defaults to a discarding logger.
	Logger *slog.Logger
	// OnFinish fires once when the walkthrough advances past its last step.
	OnFinish func()
	// OnSkip fires once when the walkthrough is dismissed with Skip.
	OnSkip func()
	// OnChange fires with every new Frame.
	OnChange func(Frame)
}

// Controller drives a linear walkthrough.
type Controller struct {
	id       string
	steps    []Step
	index    int
	cfg      config.Configuration
	viewport geometry.Rect
	regions  *Registry
	interp   *statekit.Interpreter[machineContext]
	logger   *slog.Logger

	frame       Frame
	onFinish    func()
	onSkip      func()
	subscribers map[int]func(Frame)
	nextSubID   int
}

// New creates a controller in the not-started phase.
func New(opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	id := opts.ID
	if id == "" {
		id = "tour"
	}

	c := &Controller{
		id:          id,
		cfg:         config.Default(),
		viewport:    opts.Viewport,
		regions:     NewRegistry(),
		logger:      logger,
		onFinish:    opts.OnFinish,
		onSkip:      opts.OnSkip,
		subscribers: make(map[int]func(Frame)),
	}
	if opts.OnChange != nil {
		c.Subscribe(opts.OnChange)
	}
	return c
}

// Start begins a walkthrough at the first step. Calling Start again replaces
// the sequence; regions already measured are kept since they are keyed by id.
func (c *Controller) Start(steps []Step, cfg config.Configuration) error {
	if len(steps) == 0 {
		return ErrEmptySequence
	}
	seen := make(map[string]struct{}, len(steps))
	for _, s := range steps {
		if _, dup := seen[s.ID()]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateStepID, s.ID())
		}
		seen[s.ID()] = struct{}{}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	interp, err := buildMachine(c.id, c.logger)
	if err != nil {
		return fmt.Errorf("coachmark: failed to build state machine: %w", err)
	}

	c.steps = append([]Step(nil), steps...)
	c.index = 0
	c.cfg = cfg
	c.interp = interp
	c.interp.Send(statekit.Event{Type: eventStart})

	c.logger.Debug("Starting walkthrough", "sequence", c.id, "steps", len(c.steps))
	c.recompute()
	return nil
}

// Advance moves to the next step, or finishes the walkthrough from the last
// one.
func (c *Controller) Advance() {
	if c.Phase() != PhaseActive {
		return
	}
	if c.index == len(c.steps)-1 {
		c.finish(eventFinish, c.onFinish)
		return
	}
	c.index++
	c.recompute()
}

// Retreat moves to the previous step. It is a no-op on the first step.
// Hosts only offer it when the configuration's ShowBackButton is set.
func (c *Controller) Retreat() {
	if c.Phase() != PhaseActive || c.index == 0 {
		return
	}
	c.index--
	c.recompute()
}

// Skip dismisses the walkthrough from any step.
func (c *Controller) Skip() {
	if c.Phase() != PhaseActive {
		return
	}
	c.finish(eventSkip, c.onSkip)
}

func (c *Controller) finish(event string, notify func()) {
	c.interp.Send(statekit.Event{Type: statekit.EventType(event)})
	c.logger.Debug("Walkthrough finished", "sequence", c.id, "outcome", c.Outcome().String(), "index", c.index)
	c.recompute()
	if notify != nil {
		notify()
	}
}

// ActiveStep returns the current step, or false when not active.
func (c *Controller) ActiveStep() (Step, bool) {
	if c.Phase() != PhaseActive {
		return nil, false
	}
	return c.steps[c.index], true
}

// RegisterRegion records where a step's anchor is on screen. Updates for ids
// outside the current sequence are ignored; they are expected while a view is
// being torn down. Before Start every id is accepted.
func (c *Controller) RegisterRegion(id string, rect geometry.Rect) {
	switch c.Phase() {
	case PhaseFinished:
		return
	case PhaseActive:
		if !c.hasStep(id) {
			c.logger.Debug("Ignoring region", "sequence", c.id, "step", id, "error", ErrUnknownStepID)
			return
		}
	}

	c.regions.Set(id, rect)

	if step, ok := c.ActiveStep(); ok && step.ID() == id {
		c.recompute()
	}
}

// Region returns the last region registered for id.
func (c *Controller) Region(id string) (geometry.Rect, bool) {
	return c.regions.Lookup(id)
}

// SetViewport replaces the bounds the tip box is kept inside.
func (c *Controller) SetViewport(viewport geometry.Rect) {
	c.viewport = viewport
	if c.Phase() == PhaseActive {
		c.recompute()
	}
}

// Viewport returns the current bounds.
func (c *Controller) Viewport() geometry.Rect {
	return c.viewport
}

// SetConfiguration applies a new configuration before the next render. An
// invalid configuration is rejected and the current one kept.
func (c *Controller) SetConfiguration(cfg config.Configuration) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg
	if c.Phase() == PhaseActive {
		c.recompute()
	}
	return nil
}

// Configuration returns the applied configuration.
func (c *Controller) Configuration() config.Configuration {
	return c.cfg
}

// Phase returns the walkthrough's coarse state.
func (c *Controller) Phase() Phase {
	if c.interp == nil {
		return PhaseNotStarted
	}
	phase, _ := phaseOf(string(c.interp.State().Value))
	return phase
}

// Outcome reports how a finished walkthrough ended.
func (c *Controller) Outcome() Outcome {
	if c.interp == nil {
		return OutcomeNone
	}
	_, outcome := phaseOf(string(c.interp.State().Value))
	return outcome
}

// Index returns the active index. It keeps the last index after finishing.
func (c *Controller) Index() int {
	return c.index
}

// Len returns the number of steps.
func (c *Controller) Len() int {
	return len(c.steps)
}

// IsFirst reports whether the active step is the first one.
func (c *Controller) IsFirst() bool {
	return c.index == 0
}

// IsLast reports whether the active step is the last one.
func (c *Controller) IsLast() bool {
	return len(c.steps) > 0 && c.index == len(c.steps)-1
}

// Frame returns the current layout.
func (c *Controller) Frame() Frame {
	return c.frame
}

// Subscribe registers an observer for new Frames and returns a function that
// removes it.
func (c *Controller) Subscribe(fn func(Frame)) (cancel func()) {
	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = fn
	return func() {
		delete(c.subscribers, id)
	}
}

func (c *Controller) hasStep(id string) bool {
	for _, s := range c.steps {
		if s.ID() == id {
			return true
		}
	}
	return false
}

func (c *Controller) recompute() {
	c.frame = c.buildFrame()
	for i := 0; i < c.nextSubID; i++ {
		if fn, ok := c.subscribers[i]; ok {
			fn(c.frame)
		}
	}
}

func (c *Controller) buildFrame() Frame {
	step, ok := c.ActiveStep()
	if !ok {
		return Frame{Index: c.index, Count: len(c.steps), Config: c.cfg}
	}

	f := Frame{
		Visible: true,
		Index:   c.index,
		Count:   len(c.steps),
		Step:    step,
		Config:  c.cfg,
	}

	if region, found := c.regions.Lookup(step.ID()); found {
		f.Positioned = true
		f.Target = region
		f.Layout = placement.Compute(region, c.cfg, c.viewport)
	}
	return f
}
