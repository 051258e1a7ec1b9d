package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/ogametools-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration settings",
		Long: `Inspect ogametools configuration settings.

Configuration is loaded from multiple sources with priority:
1. Command line flags (--universe, --verbose, --metrics)
2. Environment variables (OGT_* prefix, e.g. OGT_UNIVERSE_PATH)
3. Config file (config.yaml)
4. Default values

Example:
  ogametools config show`,
	}

	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return render(cmd, app.cfg, func(w io.Writer) error {
				return writeConfig(w, app.cfg)
			})
		},
	}
}

func writeConfig(w io.Writer, cfg *config.Config) error {
	fmt.Fprintln(w, "ogametools Configuration")
	fmt.Fprintln(w, "========================")
	fmt.Fprintln(w)

	t := newTable(w)
	fmt.Fprintf(t, "Universe file:\t%s\n", cfg.Universe.Path)
	fmt.Fprintf(t, "Player class:\t%s\n", displayOrNone(cfg.Player.Class))
	fmt.Fprintf(t, "Trade ratio:\t%g:%g:%g\n",
		cfg.Economy.TradeRatio.Metal, cfg.Economy.TradeRatio.Crystal, cfg.Economy.TradeRatio.Deuterium)
	fmt.Fprintf(t, "Max table level:\t%d\n", cfg.Economy.MaxLevel)
	fmt.Fprintf(t, "Log level:\t%s\n", cfg.Logging.Level)
	fmt.Fprintf(t, "Log format:\t%s\n", cfg.Logging.Format)
	fmt.Fprintf(t, "Log output:\t%s\n", cfg.Logging.Output)
	if cfg.Logging.Output == "file" {
		fmt.Fprintf(t, "Log file:\t%s\n", cfg.Logging.FilePath)
	}
	fmt.Fprintf(t, "Metrics:\t%t\n", cfg.Metrics.Enabled)
	return t.Flush()
}

func displayOrNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
