package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/ogametools-go/internal/application/production"
	"github.com/andrescamacho/ogametools-go/internal/domain/research"
	"github.com/andrescamacho/ogametools-go/internal/infrastructure/config"
)

// planetFlags collects the flags describing a planet and its modifiers
type planetFlags struct {
	position    int
	temperature int
	size        int
	class       string
	research    map[string]int
	boosts      []string

	metalLevel     int
	crystalLevel   int
	deuteriumLevel int
}

// register adds the planet flags to cmd; withLevels also adds the mine level flags
func (f *planetFlags) register(cmd *cobra.Command, withLevels bool) {
	cmd.Flags().IntVar(&f.position, "position", 8, "Planet position in its system (0-15)")
	cmd.Flags().IntVar(&f.temperature, "temperature", 20, "Planet maximum temperature in °C")
	cmd.Flags().IntVar(&f.size, "size", 163, "Planet size in fields")
	cmd.Flags().StringVar(&f.class, "class", "", "Player class (Collector, General, Discoverer; default from config)")
	cmd.Flags().StringToIntVar(&f.research, "research", nil, "Research levels, e.g. plasma=8,energy=12")
	cmd.Flags().StringSliceVar(&f.boosts, "boost", nil, "Active boosts, e.g. metal-gold,geologist (see 'boost list')")

	if withLevels {
		cmd.Flags().IntVar(&f.metalLevel, "metal-level", 0, "Metal mine level")
		cmd.Flags().IntVar(&f.crystalLevel, "crystal-level", 0, "Crystal mine level")
		cmd.Flags().IntVar(&f.deuteriumLevel, "deuterium-level", 0, "Deuterium synthesizer level")
	}
}

// setup converts the flags into a planet setup, taking the class from cfg
// when --class is not given
func (f *planetFlags) setup(cfg *config.Config) (production.PlanetSetup, error) {
	tech, err := parseResearch(f.research)
	if err != nil {
		return production.PlanetSetup{}, err
	}

	class := f.class
	if class == "" {
		class = cfg.Player.Class
	}

	return production.PlanetSetup{
		Position:    f.position,
		Temperature: f.temperature,
		Size:        f.size,
		Class:       class,
		Research:    *tech,
		Boosts:      f.boosts,
		Levels: production.MineLevels{
			Metal:     f.metalLevel,
			Crystal:   f.crystalLevel,
			Deuterium: f.deuteriumLevel,
		},
	}, nil
}

// parseResearch applies name=level pairs in name order so errors are stable
func parseResearch(levels map[string]int) (*research.Research, error) {
	tech := research.New()

	names := make([]string, 0, len(levels))
	for name := range levels {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := tech.Set(name, levels[name]); err != nil {
			return nil, fmt.Errorf("invalid --research: %w", err)
		}
	}
	if err := tech.Validate(); err != nil {
		return nil, fmt.Errorf("invalid --research: %w", err)
	}
	return tech, nil
}

// parseTradeRatio parses "metal:crystal:deuterium", e.g. "3:2:1"
func parseTradeRatio(value string) (production.TradeRatio, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 3 {
		return production.TradeRatio{}, fmt.Errorf("invalid trade ratio %q: expected metal:crystal:deuterium", value)
	}

	amounts := make([]float64, 3)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil || v <= 0 {
			return production.TradeRatio{}, fmt.Errorf("invalid trade ratio %q: %q is not a positive number", value, part)
		}
		amounts[i] = v
	}

	return production.TradeRatio{Metal: amounts[0], Crystal: amounts[1], Deuterium: amounts[2]}, nil
}

// configTradeRatio returns the trade ratio from configuration
func configTradeRatio(cfg *config.Config) production.TradeRatio {
	return production.TradeRatio{
		Metal:     cfg.Economy.TradeRatio.Metal,
		Crystal:   cfg.Economy.TradeRatio.Crystal,
		Deuterium: cfg.Economy.TradeRatio.Deuterium,
	}
}
