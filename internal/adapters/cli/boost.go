package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/ogametools-go/internal/domain/boost"
)

// NewBoostCommand creates the boost command with subcommands
func NewBoostCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boost",
		Short: "Browse production boosts",
	}

	cmd.AddCommand(newBoostListCommand())

	return cmd
}

func newBoostListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the booster items and officers accepted by --boost",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := boost.Presets()

			return render(cmd, presets, func(w io.Writer) error {
				t := newTable(w)
				fmt.Fprintln(t, "NAME\tMETAL\tCRYSTAL\tDEUTERIUM\tENERGY")
				fmt.Fprintln(t, "----\t-----\t-------\t---------\t------")
				for _, b := range presets {
					fmt.Fprintf(t, "%s\t%s\t%s\t%s\t%s\n",
						b.Name,
						percent(b.Metal),
						percent(b.Crystal),
						percent(b.Deuterium),
						percent(b.Energy),
					)
				}
				return t.Flush()
			})
		},
	}
}
