package sequence

import (
	"testing"

	"github.com/BrandonKowalski/coachmark/pkg/coachmark/config"
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var viewport = geometry.XYWH(0, 0, 800, 600)

func textSteps(ids ...string) []Step {
	steps := make([]Step, len(ids))
	for i, id := range ids {
		steps[i] = TextStep{Key: id, Body: "body " + id}
	}
	return steps
}

type callbacks struct {
	finished int
	skipped  int
	frames   []Frame
}

func newController(t *testing.T, cb *callbacks) *Controller {
	t.Helper()
	return New(Options{
		Viewport: viewport,
		OnFinish: func() { cb.finished++ },
		OnSkip:   func() { cb.skipped++ },
		OnChange: func(f Frame) { cb.frames = append(cb.frames, f) },
	})
}

func TestController_NewIsNotStarted(t *testing.T) {
	t.Parallel()

	c := New(Options{})

	assert.Equal(t, PhaseNotStarted, c.Phase())
	assert.Equal(t, OutcomeNone, c.Outcome())
	_, ok := c.ActiveStep()
	assert.False(t, ok)
	assert.False(t, c.Frame().Visible)
}

func TestController_StartEmptySequence(t *testing.T) {
	t.Parallel()

	var cb callbacks
	c := newController(t, &cb)

	err := c.Start(nil, config.Default())

	require.ErrorIs(t, err, ErrEmptySequence)
	assert.Equal(t, PhaseNotStarted, c.Phase())
	assert.Empty(t, cb.frames)
}

func TestController_StartDuplicateIDs(t *testing.T) {
	t.Parallel()

	c := New(Options{})

	err := c.Start(textSteps("a", "b", "a"), config.Default())

	require.ErrorIs(t, err, ErrDuplicateStepID)
	assert.Contains(t, err.Error(), `"a"`)
	assert.Equal(t, PhaseNotStarted, c.Phase())
}

func TestController_StartInvalidConfiguration(t *testing.T) {
	t.Parallel()

	c := New(Options{})
	cfg := config.Default()
	cfg.ArrowSize = 0

	err := c.Start(textSteps("a"), cfg)

	require.Error(t, err)
	assert.True(t, config.IsValidationError(err))
	assert.Equal(t, PhaseNotStarted, c.Phase())
}

func TestController_StartActivatesFirstStep(t *testing.T) {
	t.Parallel()

	c := New(Options{})
	require.NoError(t, c.Start(textSteps("a", "b", "c"), config.Default()))

	step, ok := c.ActiveStep()
	require.True(t, ok)
	assert.Equal(t, "a", step.ID())
	assert.Equal(t, PhaseActive, c.Phase())
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 3, c.Len())
}

func TestController_AdvanceVisitsStepsInOrder(t *testing.T) {
	t.Parallel()

	var cb callbacks
	c := newController(t, &cb)
	ids := []string{"a", "b", "c", "d"}
	require.NoError(t, c.Start(textSteps(ids...), config.Default()))

	var visited []string
	for c.Phase() == PhaseActive {
		step, ok := c.ActiveStep()
		require.True(t, ok)
		visited = append(visited, step.ID())
		c.Advance()
	}

	assert.Equal(t, ids, visited)
	assert.Equal(t, PhaseFinished, c.Phase())
	assert.Equal(t, OutcomeCompleted, c.Outcome())
	assert.Equal(t, 1, cb.finished)
	assert.Equal(t, 0, cb.skipped)
}

func TestController_AdvancePastFinishIsNoop(t *testing.T) {
	t.Parallel()

	var cb callbacks
	c := newController(t, &cb)
	require.NoError(t, c.Start(textSteps("a", "b", "c"), config.Default()))

	for i := 0; i < 3; i++ {
		assert.Equal(t, PhaseActive, c.Phase(), "advance %d", i)
		c.Advance()
	}
	require.Equal(t, PhaseFinished, c.Phase())
	frames := len(cb.frames)

	c.Advance()
	c.Retreat()
	c.Skip()

	assert.Equal(t, PhaseFinished, c.Phase())
	assert.Equal(t, OutcomeCompleted, c.Outcome())
	assert.Equal(t, 1, cb.finished)
	assert.Equal(t, 0, cb.skipped)
	assert.Len(t, cb.frames, frames)
	_, ok := c.ActiveStep()
	assert.False(t, ok)
}

func TestController_RetreatAtFirstStepIsNoop(t *testing.T) {
	t.Parallel()

	for _, showBack := range []bool{true, false} {
		cfg := config.Default()
		cfg.ShowBackButton = showBack

		c := New(Options{})
		require.NoError(t, c.Start(textSteps("a", "b"), cfg))

		c.Retreat()

		assert.Equal(t, 0, c.Index())
		assert.Equal(t, PhaseActive, c.Phase())
	}
}

func TestController_RetreatMovesBack(t *testing.T) {
	t.Parallel()

	c := New(Options{})
	require.NoError(t, c.Start(textSteps("a", "b", "c"), config.Default()))

	c.Advance()
	c.Advance()
	c.Retreat()

	step, ok := c.ActiveStep()
	require.True(t, ok)
	assert.Equal(t, "b", step.ID())
	assert.Equal(t, 1, c.Index())
}

func TestController_SkipFromAnyIndex(t *testing.T) {
	t.Parallel()

	for index := 0; index < 3; index++ {
		var cb callbacks
		c := newController(t, &cb)
		require.NoError(t, c.Start(textSteps("a", "b", "c"), config.Default()))
		for i := 0; i < index; i++ {
			c.Advance()
		}

		c.Skip()

		assert.Equal(t, PhaseFinished, c.Phase(), "index %d", index)
		assert.Equal(t, OutcomeSkipped, c.Outcome(), "index %d", index)
		assert.Equal(t, 1, cb.skipped, "index %d", index)
		assert.Equal(t, 0, cb.finished, "index %d", index)
		assert.False(t, c.Frame().Visible)
	}
}

func TestController_SkipTwiceNotifiesOnce(t *testing.T) {
	t.Parallel()

	var cb callbacks
	c := newController(t, &cb)
	require.NoError(t, c.Start(textSteps("a"), config.Default()))

	c.Skip()
	c.Skip()

	assert.Equal(t, 1, cb.skipped)
}

func TestController_ExampleScenario(t *testing.T) {
	t.Parallel()

	c := New(Options{Viewport: viewport})
	require.NoError(t, c.Start(textSteps("a", "b"), config.Default()))
	c.RegisterRegion("a", geometry.XYWH(100, 50, 80, 20))
	c.RegisterRegion("b", geometry.XYWH(100, 500, 80, 20))

	f := c.Frame()
	require.True(t, f.Drawable())
	assert.Equal(t, "a", f.Step.ID())
	assert.Equal(t, config.DirectionBottom, f.Layout.Direction)

	c.Advance()

	f = c.Frame()
	require.True(t, f.Drawable())
	assert.Equal(t, "b", f.Step.ID())
	assert.Equal(t, config.DirectionTop, f.Layout.Direction)
}

func TestController_RegionSurvivesNavigation(t *testing.T) {
	t.Parallel()

	c := New(Options{Viewport: viewport})
	require.NoError(t, c.Start(textSteps("a", "b"), config.Default()))
	region := geometry.XYWH(300, 200, 40, 40)
	c.RegisterRegion("a", region)
	before := c.Frame().Layout

	c.Advance()
	c.Retreat()

	got, ok := c.Region("a")
	require.True(t, ok)
	assert.Equal(t, region, got)
	assert.Equal(t, before, c.Frame().Layout)
	assert.Equal(t, region, c.Frame().Target)
}

func TestController_RegisterRegionLastWriteWins(t *testing.T) {
	t.Parallel()

	var cb callbacks
	c := newController(t, &cb)
	require.NoError(t, c.Start(textSteps("a"), config.Default()))

	c.RegisterRegion("a", geometry.XYWH(10, 10, 10, 10))
	c.RegisterRegion("a", geometry.XYWH(10, 10, 10, 10))
	c.RegisterRegion("a", geometry.XYWH(400, 300, 20, 20))

	assert.Equal(t, geometry.XYWH(400, 300, 20, 20), c.Frame().Target)
	// start + three region updates
	assert.Len(t, cb.frames, 4)
}

func TestController_RegisterRegionForInactiveStepDoesNotRelayout(t *testing.T) {
	t.Parallel()

	var cb callbacks
	c := newController(t, &cb)
	require.NoError(t, c.Start(textSteps("a", "b"), config.Default()))
	frames := len(cb.frames)

	c.RegisterRegion("b", geometry.XYWH(10, 10, 10, 10))

	assert.Len(t, cb.frames, frames)
	_, ok := c.Region("b")
	assert.True(t, ok)
}

func TestController_RegisterRegionUnknownIDIgnored(t *testing.T) {
	t.Parallel()

	c := New(Options{})
	require.NoError(t, c.Start(textSteps("a"), config.Default()))

	c.RegisterRegion("ghost", geometry.XYWH(1, 2, 3, 4))

	_, ok := c.Region("ghost")
	assert.False(t, ok)
}

func TestController_RegionBeforeStartIsKept(t *testing.T) {
	t.Parallel()

	c := New(Options{Viewport: viewport})
	c.RegisterRegion("a", geometry.XYWH(100, 50, 80, 20))

	require.NoError(t, c.Start(textSteps("a"), config.Default()))

	assert.True(t, c.Frame().Positioned)
}

func TestController_RegisterRegionAfterFinishIgnored(t *testing.T) {
	t.Parallel()

	var cb callbacks
	c := newController(t, &cb)
	require.NoError(t, c.Start(textSteps("a"), config.Default()))
	c.Skip()
	frames := len(cb.frames)

	c.RegisterRegion("a", geometry.XYWH(1, 2, 3, 4))

	_, ok := c.Region("a")
	assert.False(t, ok)
	assert.Len(t, cb.frames, frames)
}

func TestController_UnmeasuredStepIsNotPositioned(t *testing.T) {
	t.Parallel()

	c := New(Options{Viewport: viewport})
	require.NoError(t, c.Start(textSteps("a"), config.Default()))

	f := c.Frame()
	assert.True(t, f.Visible)
	assert.False(t, f.Positioned)
	assert.False(t, f.Drawable())
}

func TestController_SetViewportRelayouts(t *testing.T) {
	t.Parallel()

	c := New(Options{Viewport: viewport})
	require.NoError(t, c.Start(textSteps("a"), config.Default()))
	c.RegisterRegion("a", geometry.XYWH(100, 250, 80, 20))
	require.Equal(t, config.DirectionBottom, c.Frame().Layout.Direction)

	// Shrink the viewport so there is more room above the target.
	c.SetViewport(geometry.XYWH(0, 0, 800, 300))

	assert.Equal(t, config.DirectionTop, c.Frame().Layout.Direction)
}

func TestController_SetConfiguration(t *testing.T) {
	t.Parallel()

	c := New(Options{Viewport: viewport})
	require.NoError(t, c.Start(textSteps("a"), config.Default()))
	c.RegisterRegion("a", geometry.XYWH(100, 50, 80, 20))

	cfg := config.Default()
	cfg.ArrowDirection = config.DirectionTop
	require.NoError(t, c.SetConfiguration(cfg))
	assert.Equal(t, config.DirectionTop, c.Frame().Layout.Direction)

	bad := config.Default()
	bad.TipWidth = -1
	err := c.SetConfiguration(bad)
	require.Error(t, err)
	assert.Equal(t, cfg, c.Configuration())
}

func TestController_SubscribeCancel(t *testing.T) {
	t.Parallel()

	c := New(Options{})
	var count int
	cancel := c.Subscribe(func(Frame) { count++ })
	require.NoError(t, c.Start(textSteps("a", "b"), config.Default()))
	require.Equal(t, 1, count)

	cancel()
	c.Advance()

	assert.Equal(t, 1, count)
}

func TestController_RestartAfterFinish(t *testing.T) {
	t.Parallel()

	var cb callbacks
	c := newController(t, &cb)
	require.NoError(t, c.Start(textSteps("a"), config.Default()))
	c.Advance()
	require.Equal(t, PhaseFinished, c.Phase())

	require.NoError(t, c.Start(textSteps("x", "y"), config.Default()))

	assert.Equal(t, PhaseActive, c.Phase())
	assert.Equal(t, OutcomeNone, c.Outcome())
	step, ok := c.ActiveStep()
	require.True(t, ok)
	assert.Equal(t, "x", step.ID())
}

func TestFrame_Controls(t *testing.T) {
	t.Parallel()

	labels := config.EnglishLabels
	cfg := config.Default()

	first := Frame{Index: 0, Count: 3, Config: cfg}
	last := Frame{Index: 2, Count: 3, Config: cfg}

	assert.False(t, first.ShowBack())
	assert.True(t, last.ShowBack())
	assert.Equal(t, labels.Next, first.NextLabel(labels))
	assert.Equal(t, labels.Finish, last.NextLabel(labels))

	cfg.ShowBackButton = false
	last.Config = cfg
	assert.False(t, last.ShowBack())
}

type recorder struct {
	calls []string
}

func (r *recorder) Title(s string) { r.calls = append(r.calls, "title:"+s) }
func (r *recorder) Body(s string)  { r.calls = append(r.calls, "body:"+s) }
func (r *recorder) Image(s string) { r.calls = append(r.calls, "image:"+s) }

func TestErase_RendersTypedContent(t *testing.T) {
	t.Parallel()

	type badge struct {
		Name  string
		Count int
	}

	step := Erase("inbox", badge{Name: "Inbox", Count: 3}, func(b badge, r Renderer) {
		r.Title(b.Name)
		r.Body("unread")
	})

	var rec recorder
	step.Render(&rec)

	assert.Equal(t, "inbox", step.ID())
	assert.Equal(t, []string{"title:Inbox", "body:unread"}, rec.calls)
	assert.Equal(t, badge{Name: "Inbox", Count: 3}, step.Content())
}

func TestTextStep_SkipsEmptyParts(t *testing.T) {
	t.Parallel()

	var rec recorder
	TextStep{Key: "a", Body: "hello", Image: "icon.png"}.Render(&rec)

	assert.Equal(t, []string{"image:icon.png", "body:hello"}, rec.calls)
}
