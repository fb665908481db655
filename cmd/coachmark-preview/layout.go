package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BrandonKowalski/coachmark/pkg/coachmark/config"
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/geometry"
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/locale"
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/sequence"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	layoutWidth  float64
	layoutHeight float64
)

var layoutCmd = &cobra.Command{
	Use:   "layout <walkthrough.yaml>",
	Short: "Print where each tip box lands",
	Long: `Layout walks through every step of a walkthrough and prints the arrow
direction, tip box, arrow and spotlight rectangles computed for a screen of
the given size.

Steps whose region is not part of the file are reported as unpositioned.

Examples:
  coachmark-preview layout tour.yaml
  coachmark-preview layout tour.yaml --width 1280 --height 720 -c overlay.toml
  coachmark-preview layout tour.yaml --locale de`,
	Args: cobra.ExactArgs(1),
	RunE: runLayout,
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	layoutCmd.Flags().Float64Var(&layoutWidth, "width", 640, "screen width")
	layoutCmd.Flags().Float64Var(&layoutHeight, "height", 480, "screen height")
}

func runLayout(_ *cobra.Command, args []string) error {
	cfg, err := loadConfiguration()
	if err != nil {
		return err
	}

	def, err := sequence.LoadDefinition(args[0])
	if err != nil {
		return err
	}

	catalog, err := locale.New()
	if err != nil {
		return err
	}

	report, err := buildReport(def, cfg, geometry.XYWH(0, 0, layoutWidth, layoutHeight), catalog)
	if err != nil {
		return err
	}

	renderReport(os.Stdout, report)
	return nil
}

// stepReport is one row of the layout report.
type stepReport struct {
	ID         string
	Progress   string
	Positioned bool
	Direction  config.ArrowDirection
	Box        geometry.Rect
	Arrow      geometry.Rect
	Spotlight  geometry.Rect
	Next       string
	Back       string
}

type layoutReport struct {
	Tour     string
	Viewport geometry.Rect
	Locale   string
	Exit     string
	Steps    []stepReport
}

// buildReport plays the walkthrough to the end with a controller and records
// every frame.
func buildReport(def *sequence.Definition, cfg config.Configuration, viewport geometry.Rect, catalog *locale.Catalog) (layoutReport, error) {
	labels := catalog.Resolve(cfg)
	report := layoutReport{
		Tour:     def.ID,
		Viewport: viewport,
		Locale:   catalog.Match(cfg.Locale).String(),
		Exit:     labels.Exit,
	}

	ctrl := sequence.New(sequence.Options{ID: def.ID, Viewport: viewport})
	for id, r := range def.Regions() {
		ctrl.RegisterRegion(id, r)
	}
	if err := ctrl.Start(def.StepList(), cfg); err != nil {
		return report, err
	}

	for ctrl.Phase() == sequence.PhaseActive {
		f := ctrl.Frame()
		row := stepReport{
			ID:         f.Step.ID(),
			Progress:   catalog.Progress(cfg.Locale, f.Index, f.Count),
			Positioned: f.Positioned,
			Next:       f.NextLabel(labels),
		}
		if f.ShowBack() {
			row.Back = labels.Back
		}
		if f.Positioned {
			row.Direction = f.Layout.Direction
			row.Box = f.Layout.Box
			row.Arrow = f.Layout.Arrow
			row.Spotlight = f.Layout.Spotlight
		}
		report.Steps = append(report.Steps, row)
		ctrl.Advance()
	}
	return report, nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#008080"))
	idStyle     = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAF00"))
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#008080")).
			Padding(0, 1)
)

func renderReport(w io.Writer, r layoutReport) {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%s on %gx%g", r.Tour, r.Viewport.W, r.Viewport.H)))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("locale %s, exit %q", r.Locale, r.Exit)))

	for _, s := range r.Steps {
		b.WriteString("\n\n")
		b.WriteString(idStyle.Render(s.ID) + " " + mutedStyle.Render(s.Progress))
		b.WriteString("\n")
		if !s.Positioned {
			b.WriteString(warnStyle.Render("  unpositioned: no region"))
			continue
		}
		b.WriteString(reportLines(s))
	}

	_, _ = fmt.Fprintln(w, panelStyle.Render(b.String()))
}

func reportLines(s stepReport) string {
	controls := fmt.Sprintf("next %q", s.Next)
	if s.Back != "" {
		controls = fmt.Sprintf("back %q, %s", s.Back, controls)
	}
	lines := []string{
		fmt.Sprintf("  arrow     %s", s.Direction),
		fmt.Sprintf("  box       %s", s.Box),
		fmt.Sprintf("  arrow at  %s", s.Arrow),
		fmt.Sprintf("  spotlight %s", s.Spotlight),
		fmt.Sprintf("  controls  %s", controls),
	}
	return strings.Join(lines, "\n")
}
