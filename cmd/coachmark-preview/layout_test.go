package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/BrandonKowalski/coachmark/pkg/coachmark/config"
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/geometry"
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/locale"
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const previewYAML = `
id: first-run
steps:
  - id: menu
    title: Menu
    body: Open the menu here.
    region: {x: 100, y: 50, w: 80, h: 20}
  - id: play
    body: Start a game.
    region: {x: 100, y: 500, w: 80, h: 20}
  - id: later
    body: Measured at runtime.
`

func parsePreview(t *testing.T) *sequence.Definition {
	t.Helper()
	def, err := sequence.ParseDefinition([]byte(previewYAML))
	require.NoError(t, err)
	return def
}

func TestBuildReport(t *testing.T) {
	t.Parallel()

	report, err := buildReport(parsePreview(t), config.Default(), geometry.XYWH(0, 0, 800, 600), locale.MustNew())
	require.NoError(t, err)

	assert.Equal(t, "first-run", report.Tour)
	assert.Equal(t, "en", report.Locale)
	assert.Equal(t, "Skip", report.Exit)
	require.Len(t, report.Steps, 3)

	menu := report.Steps[0]
	assert.Equal(t, "menu", menu.ID)
	assert.Equal(t, "1 of 3", menu.Progress)
	assert.True(t, menu.Positioned)
	assert.Equal(t, config.DirectionBottom, menu.Direction)
	assert.Equal(t, geometry.XYWH(16, 84, 320, 120), menu.Box)
	assert.Equal(t, "Next", menu.Next)
	assert.Empty(t, menu.Back)

	play := report.Steps[1]
	assert.Equal(t, config.DirectionTop, play.Direction)
	assert.Equal(t, geometry.XYWH(16, 366, 320, 120), play.Box)
	assert.Equal(t, "Back", play.Back)

	later := report.Steps[2]
	assert.False(t, later.Positioned)
	assert.Equal(t, "Done", later.Next)
	assert.Equal(t, "3 of 3", later.Progress)
}

func TestBuildReport_LocalizesLabels(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Locale = "de-AT"
	cfg.NextLabel = "Los"

	report, err := buildReport(parsePreview(t), cfg, geometry.XYWH(0, 0, 800, 600), locale.MustNew())
	require.NoError(t, err)

	assert.Equal(t, "Überspringen", report.Exit)
	assert.Equal(t, "Los", report.Steps[0].Next)
	assert.Equal(t, "Zurück", report.Steps[1].Back)
	assert.Equal(t, "Fertig", report.Steps[2].Next)
	assert.Equal(t, "2 von 3", report.Steps[1].Progress)
}

func TestBuildReport_RejectsInvalidConfiguration(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.TipWidth = -1

	_, err := buildReport(parsePreview(t), cfg, geometry.XYWH(0, 0, 800, 600), locale.MustNew())
	assert.Error(t, err)
}

func TestRenderReport(t *testing.T) {
	t.Parallel()

	report, err := buildReport(parsePreview(t), config.Default(), geometry.XYWH(0, 0, 800, 600), locale.MustNew())
	require.NoError(t, err)

	var buf bytes.Buffer
	renderReport(&buf, report)
	out := buf.String()

	assert.Contains(t, out, "first-run on 800x600")
	assert.Contains(t, out, "box       (x:16 y:84 w:320 h:120)")
	assert.Contains(t, out, "arrow     top")
	assert.Contains(t, out, `controls  back "Back", next "Next"`)
	assert.Contains(t, out, "unpositioned: no region")
}

func TestResolveLocale(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "fr", resolveLocale("fr", "de"))
	assert.Equal(t, "de", resolveLocale("", "de"))
	assert.Empty(t, resolveLocale("", ""))
}

func TestSummary(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "first-run: 3 steps, 2 with regions", summary(parsePreview(t)))
}

func TestPrintError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printError(&buf, errors.New("boom"))

	assert.Contains(t, buf.String(), "Error:")
	assert.Contains(t, buf.String(), "boom")
}
