package cli

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/andrescamacho/ogametools-go/internal/application/production"
)

// NewPlanetCommand creates the planet command with subcommands
func NewPlanetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "planet",
		Short: "Evaluate the mines of a planet",
		Long: `Evaluate the mines of a planet.

Planet flags (shared by every subcommand):
  --position      position in the system, drives the metal and crystal bonus
  --temperature   maximum temperature, drives deuterium output
  --class         player class, Collector adds 25% mine and 10% energy output
  --research      research levels as name=level pairs
  --boost         active booster items and officers

Examples:
  ogametools planet production --metal-level 24 --crystal-level 20 --deuterium-level 16
  ogametools planet next --metal-level 24 --crystal-level 20 --deuterium-level 16 --trade-ratio 2.5:1.5:1`,
	}

	cmd.AddCommand(newPlanetProductionCommand())
	cmd.AddCommand(newPlanetNextCommand())

	return cmd
}

func newPlanetProductionCommand() *cobra.Command {
	var flags planetFlags

	cmd := &cobra.Command{
		Use:   "production",
		Short: "Show the hourly production of every mine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			setup, err := flags.setup(app.cfg)
			if err != nil {
				return err
			}
			u, err := app.loadUniverse(cmd.Context(), "")
			if err != nil {
				return err
			}

			response, err := app.mediator.Send(cmd.Context(), &production.GetPlanetProductionQuery{
				Universe: u,
				Setup:    setup,
			})
			if err != nil {
				return err
			}
			result := response.(*production.GetPlanetProductionResponse)

			return render(cmd, result, func(w io.Writer) error {
				return writePlanetProduction(w, result)
			})
		},
	}

	flags.register(cmd, true)
	return cmd
}

func writePlanetProduction(w io.Writer, result *production.GetPlanetProductionResponse) error {
	t := newTable(w)
	fmt.Fprintln(t, "MINE\tLEVEL\tENERGY\tMETAL\tCRYSTAL\tDEUTERIUM")
	fmt.Fprintln(t, "----\t-----\t------\t-----\t-------\t---------")
	for _, m := range result.Mines {
		fmt.Fprintf(t, "%s\t%d\t%s\t%s\t%s\t%s\n",
			m.Resource,
			m.Level,
			amount(m.Energy),
			amount(m.Total.Metal()),
			amount(m.Total.Crystal()),
			amount(m.Total.Deuterium()),
		)
	}
	fmt.Fprintf(t, "total\t\t%s\t%s\t%s\t%s\n",
		amount(result.EnergyConsumption),
		amount(result.Total.Metal()),
		amount(result.Total.Crystal()),
		amount(result.Total.Deuterium()),
	)
	if err := t.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nEnergy bonus: %s\n", percent(result.EnergyBonus))
	return err
}

func newPlanetNextCommand() *cobra.Command {
	var (
		flags      planetFlags
		tradeRatio string
	)

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Recommend the mine upgrade with the shortest payback",
		Long: `Recommend the mine upgrade with the shortest payback.

Each mine is evaluated one level above its current level. Cost and extra
production are converted to metal units with the trade ratio, and the
options are ranked by how many hours the extra production takes to repay
the upgrade. Energy is not part of the valuation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ratio := configTradeRatio(app.cfg)
			if tradeRatio != "" {
				parsed, err := parseTradeRatio(tradeRatio)
				if err != nil {
					return err
				}
				ratio = parsed
			}

			setup, err := flags.setup(app.cfg)
			if err != nil {
				return err
			}
			u, err := app.loadUniverse(cmd.Context(), "")
			if err != nil {
				return err
			}

			response, err := app.mediator.Send(cmd.Context(), &production.RecommendUpgradeQuery{
				Universe:   u,
				Setup:      setup,
				TradeRatio: ratio,
			})
			if err != nil {
				return err
			}
			result := response.(*production.RecommendUpgradeResponse)

			return render(cmd, result, func(w io.Writer) error {
				return writeRecommendation(w, result)
			})
		},
	}

	flags.register(cmd, true)
	cmd.Flags().StringVar(&tradeRatio, "trade-ratio", "", "Trade ratio metal:crystal:deuterium (default from config, 3:2:1)")

	return cmd
}

func writeRecommendation(w io.Writer, result *production.RecommendUpgradeResponse) error {
	fmt.Fprintf(w, "Trade ratio %s, values in metal units\n\n", result.TradeRatio)

	t := newTable(w)
	fmt.Fprintln(t, "MINE\tLEVEL\tCOST\tGAIN/H\tENERGY\tPAYBACK")
	fmt.Fprintln(t, "----\t-----\t----\t------\t------\t-------")
	for _, o := range result.Options {
		payback := "never"
		if o.PaybackHours != nil {
			payback = humanize.CommafWithDigits(*o.PaybackHours, 1) + " h"
		}
		fmt.Fprintf(t, "%s\t%d -> %d\t%s\t%s\t%s\t%s\n",
			o.Resource,
			o.FromLevel,
			o.ToLevel,
			amount(o.CostValue),
			amount(o.GainValue),
			amount(o.Energy),
			payback,
		)
	}
	if err := t.Flush(); err != nil {
		return err
	}

	best, ok := result.Best()
	if !ok || best.PaybackHours == nil {
		_, err := fmt.Fprintln(w, "\nNo upgrade increases production.")
		return err
	}
	_, err := fmt.Fprintf(w, "\nRecommended: %s mine to level %d\n", best.Resource, best.ToLevel)
	return err
}
