package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/BrandonKowalski/coachmark/pkg/coachmark"
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/sequence"
	"github.com/spf13/cobra"
)

var (
	showBackground  string
	showCannoli     bool
	showMappingFile string
	showPowerDevice string
	showFullscreen  bool
	showLogPath     string
	showAccentHex   uint32
)

var showCmd = &cobra.Command{
	Use:   "show <walkthrough.yaml>",
	Short: "Play a walkthrough in a window",
	Long: `Show opens an SDL window, draws the background image and plays the
walkthrough over it. Only steps with a region in the file can be shown.

Window size follows the `+"`WINDOW_WIDTH`"+` and `+"`WINDOW_HEIGHT`"+` environment
variables in development mode.

Examples:
  coachmark-preview show tour.yaml --background screenshot.png
  coachmark-preview show tour.yaml --cannoli --fullscreen`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVarP(&showBackground, "background", "b", "", "image drawn under the overlay")
	showCmd.Flags().BoolVar(&showCannoli, "cannoli", false, "use Cannoli theming")
	showCmd.Flags().StringVar(&showMappingFile, "input-mapping", "", "TOML file overriding button bindings")
	showCmd.Flags().StringVar(&showPowerDevice, "power-device", "", "evdev node of the power key")
	showCmd.Flags().BoolVar(&showFullscreen, "fullscreen", false, "open a fullscreen window")
	showCmd.Flags().StringVar(&showLogPath, "log", "", "log file path")
	showCmd.Flags().Uint32Var(&showAccentHex, "accent", 0, "accent color as 0xRRGGBB")
}

func runShow(_ *cobra.Command, args []string) error {
	cfg, err := loadConfiguration()
	if err != nil {
		return err
	}

	def, err := sequence.LoadDefinition(args[0])
	if err != nil {
		return err
	}

	regions := def.Regions()
	if len(regions) == 0 {
		return fmt.Errorf("%s has no step regions to show", args[0])
	}

	opts := coachmark.Options{
		WindowTitle:          "coachmark: " + def.ID,
		PrimaryThemeColorHex: showAccentHex,
		IsCannoli:            showCannoli,
		InputMappingFile:     showMappingFile,
		PowerButtonDevice:    showPowerDevice,
		LogPath:              showLogPath,
	}
	opts.WindowOptions.Fullscreen = showFullscreen

	if err := coachmark.Init(opts); err != nil {
		return err
	}
	defer coachmark.Close()

	if showBackground != "" {
		if err := coachmark.SetBackground(showBackground); err != nil {
			return err
		}
	}

	result, err := coachmark.Tour(def.StepList(), coachmark.TourSettings{
		Config:  &cfg,
		Regions: regions,
	})
	if errors.Is(err, coachmark.ErrCancelled) {
		_, _ = fmt.Fprintln(os.Stdout, "window closed")
		return nil
	}
	if err != nil {
		return err
	}

	coachmark.GetLogger().Info("Tour ended", "tour", def.ID, "action", result.Action.String(), "step", result.LastStep)
	_, _ = fmt.Fprintf(os.Stdout, "%s at step %d/%d (%s)\n", result.Action, result.LastIndex+1, result.Steps, result.LastStep)
	return nil
}
