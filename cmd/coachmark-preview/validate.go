package main

import (
	"fmt"
	"os"

	"github.com/BrandonKowalski/coachmark/pkg/coachmark/sequence"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <walkthrough.yaml>",
	Short: "Check a walkthrough and overlay configuration",
	Long: `Validate parses a walkthrough definition and, when --config is given,
the overlay configuration, and reports the first problem found.

Examples:
  coachmark-preview validate tour.yaml
  coachmark-preview validate tour.yaml -c overlay.toml`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

var okStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD75F")).Bold(true)

func runValidate(_ *cobra.Command, args []string) error {
	if _, err := loadConfiguration(); err != nil {
		return err
	}

	def, err := sequence.LoadDefinition(args[0])
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(os.Stdout, okStyle.Render("OK")+" "+summary(def))
	return nil
}

func summary(def *sequence.Definition) string {
	regions := len(def.Regions())
	return fmt.Sprintf("%s: %d steps, %d with regions", def.ID, len(def.Steps), regions)
}
