package main

import (
	"fmt"
	"io"
	"os"

	"github.com/BrandonKowalski/coachmark/pkg/coachmark/config"
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/constants"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	configPath string
	localeFlag string
)

var rootCmd = &cobra.Command{
	Use:   "coachmark-preview",
	Short: "Inspect and play coachmark walkthroughs",
	Long: `coachmark-preview works with walkthrough definitions (YAML) and
overlay configurations (TOML).

It can validate a walkthrough, print where every tip box lands for a given
screen size, and play the walkthrough in an SDL window over a screenshot.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(os.Stderr, err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "overlay configuration file (TOML)")
	rootCmd.PersistentFlags().StringVar(&localeFlag, "locale", "", "locale for control labels (default: $"+constants.LocaleEnvVar+" or the configuration)")
}

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")).Bold(true)

func printError(w io.Writer, err error) {
	_, _ = fmt.Fprintln(w, errorStyle.Render("Error:")+" "+err.Error())
}

// loadConfiguration reads --config when set and applies the locale override.
func loadConfiguration() (config.Configuration, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return cfg, err
		}
	}

	if loc := resolveLocale(localeFlag, os.Getenv(constants.LocaleEnvVar)); loc != "" {
		cfg.Locale = loc
	}
	return cfg, cfg.Validate()
}

// resolveLocale prefers the flag over the environment. Empty means keep the
// configured locale.
func resolveLocale(flag, env string) string {
	if flag != "" {
		return flag
	}
	return env
}
