package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath   string
	universePath string
	outputFormat string
	verbose      bool
	withMetrics  bool

	// app is built by the root pre-run hook for the running command
	app *application
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ogametools",
		Short: "OGame toolkit - mine production and upgrade calculator",
		Long: `ogametools computes OGame mine production, costs and energy usage
for a planet, given the universe ruleset, research levels, player class and
active boosts.

Configuration is loaded from multiple sources with priority:
1. Command line flags
2. Environment variables (OGT_* prefix)
3. Config file (config.yaml in ., ./configs or /etc/ogametools)
4. Default values

Examples:
  ogametools universe validate universe.json
  ogametools mine table --resource metal --from 1 --to 30 --position 8
  ogametools planet production --metal-level 20 --crystal-level 17 --deuterium-level 12
  ogametools planet next --metal-level 20 --crystal-level 17 --research plasma=8
  ogametools boost list`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApplication(cmd)
			if err != nil {
				return err
			}
			app = a
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app == nil {
				return nil
			}
			return app.close(cmd.ErrOrStderr())
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: search ., ./configs, /etc/ogametools)")
	rootCmd.PersistentFlags().StringVarP(&universePath, "universe", "u", "",
		"Path to universe JSON file (overrides universe.path)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text",
		"Output format: text, json, yaml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&withMetrics, "metrics", false,
		"Print collected metrics to stderr when the command finishes")

	// Add command groups
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewUniverseCommand())
	rootCmd.AddCommand(NewMineCommand())
	rootCmd.AddCommand(NewPlanetCommand())
	rootCmd.AddCommand(NewBoostCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
