// Package main implements the tally terminal dashboard.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"tally/internal/config"
	"tally/internal/store"
	"tally/internal/ui"
)

const version = "0.1.0"

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

var (
	flagConfig     string
	flagTheme      string
	flagBreakpoint int
)

var rootCmd = &cobra.Command{
	Use:   "tally",
	Short: "tally - a counter and todo dashboard for the terminal",
	Long: `tally keeps a counter and a todo list in an interactive terminal
dashboard, with light/dark theming and a responsive layout.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		if flagTheme != "" {
			if err := config.ValidateTheme(flagTheme); err != nil {
				return err
			}
			cfg.UI.Theme = flagTheme
		}
		if flagBreakpoint > 0 {
			cfg.Layout.Breakpoint = flagBreakpoint
		}

		st := store.New(initialState(cfg))
		return ui.Run(st, cfg)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the tally version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tally %s\n", version)
	},
}

// initialState seeds the store from configuration: the theme choice
// maps onto the dark-mode flag, everything else starts at defaults.
func initialState(cfg *config.Config) store.State {
	st := store.DefaultState()
	st.Prefs.DarkMode = cfg.UI.Theme == config.ThemeDark
	return st
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to a tally.toml config file")
	rootCmd.Flags().StringVar(&flagTheme, "theme", "", "initial theme: light or dark (overrides config)")
	rootCmd.Flags().IntVar(&flagBreakpoint, "breakpoint", 0, "wide-layout breakpoint in columns (overrides config)")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("✖ "+err.Error()))
		os.Exit(1)
	}
}
