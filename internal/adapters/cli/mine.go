package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/ogametools-go/internal/application/production"
	"github.com/andrescamacho/ogametools-go/internal/domain/shared"
)

// NewMineCommand creates the mine command with subcommands
func NewMineCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mine",
		Short: "Compute mine costs, energy and production",
	}

	cmd.AddCommand(newMineTableCommand())

	return cmd
}

// mineTable is the printable form of a mine table
type mineTable struct {
	Resource string                    `json:"resource" yaml:"resource"`
	Rows     []production.MineTableRow `json:"rows" yaml:"rows"`
}

func newMineTableCommand() *cobra.Command {
	var (
		flags     planetFlags
		resource  string
		fromLevel int
		toLevel   int
	)

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Tabulate one mine over a range of levels",
		Long: `Tabulate one mine over a range of levels.

For every level the table shows the upgrade cost, the energy consumption and
the hourly production split into its components: mine output, plasma
technology bonus, boosts, player class bonus and the total including the
planet's base production.

Examples:
  ogametools mine table --resource metal --to 30
  ogametools mine table --resource deuterium --temperature -40 --research plasma=10 --boost deuterium-gold`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := shared.ParseResource(resource)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("to") {
				toLevel = app.cfg.Economy.MaxLevel
			}

			setup, err := flags.setup(app.cfg)
			if err != nil {
				return err
			}

			u, err := app.loadUniverse(cmd.Context(), "")
			if err != nil {
				return err
			}

			response, err := app.mediator.Send(cmd.Context(), &production.GetMineTableQuery{
				Universe:  u,
				Setup:     setup,
				Resource:  kind,
				FromLevel: fromLevel,
				ToLevel:   toLevel,
			})
			if err != nil {
				return err
			}
			result := response.(*production.GetMineTableResponse)

			table := mineTable{Resource: result.Resource.String(), Rows: result.Rows}
			return render(cmd, table, func(w io.Writer) error {
				return writeMineTable(w, result)
			})
		},
	}

	flags.register(cmd, false)
	cmd.Flags().StringVarP(&resource, "resource", "r", "metal", "Mine to tabulate: metal, crystal, deuterium")
	cmd.Flags().IntVar(&fromLevel, "from", 0, "First level")
	cmd.Flags().IntVar(&toLevel, "to", 0, "Last level (default economy.max_level)")

	return cmd
}

func writeMineTable(w io.Writer, result *production.GetMineTableResponse) error {
	r := result.Resource

	fmt.Fprintf(w, "%s mine, production per hour\n\n", r)

	t := newTable(w)
	fmt.Fprintln(t, "LEVEL\tCOST (M / C / D)\tENERGY\tMINE\tPLASMA\tBOOST\tCLASS\tTOTAL")
	fmt.Fprintln(t, "-----\t----------------\t------\t----\t------\t-----\t-----\t-----")
	for _, row := range result.Rows {
		fmt.Fprintf(t, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			row.Level,
			amounts(row.Cost),
			amount(row.Energy),
			amount(row.Production.Get(r)),
			amount(row.Plasma.Get(r)),
			amount(row.Boost.Get(r)),
			amount(row.ClassBoost.Get(r)),
			amount(row.Total.Get(r)),
		)
	}
	return t.Flush()
}
