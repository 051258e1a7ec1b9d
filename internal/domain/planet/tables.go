package planet

import (
	"github.com/andrescamacho/ogametools-go/internal/domain/shared"
	"github.com/andrescamacho/ogametools-go/pkg/utils"
)

// Highest orbital slot a planet can occupy
const MaxPosition = 15

// Positional production bonuses by orbital slot; unlisted slots get none
var (
	metalPositionBonus = map[int]float64{
		6:  0.17,
		7:  0.23,
		8:  0.35,
		9:  0.23,
		10: 0.17,
	}
	crystalPositionBonus = map[int]float64{
		1: 0.40,
		2: 0.30,
		3: 0.20,
	}
)

// Game-balance constants. Production and energy grow by productionGrowth per
// level, cost by costGrowth.
const (
	productionGrowth = 1.1
	costGrowth       = 1.5

	// Deuterium synthesis factor: deuteriumOffset - deuteriumSlope * temperature
	deuteriumOffset = 0.68
	deuteriumSlope  = 0.002
)

// mineTable holds the per-kind constants of a mine
type mineTable struct {
	base       shared.Vector
	prodCoef   float64
	cost       shared.Vector
	energyCoef float64
	plasmaCoef float64
}

var mineTables = map[shared.Resource]mineTable{
	shared.Metal: {
		base:       shared.NewVector(30, 0, 0),
		prodCoef:   30,
		cost:       shared.NewVector(60, 15, 0),
		energyCoef: 10,
		plasmaCoef: 0.01,
	},
	shared.Crystal: {
		base:       shared.NewVector(0, 15, 0),
		prodCoef:   20,
		cost:       shared.NewVector(48, 24, 0),
		energyCoef: 10,
		plasmaCoef: 0.0066,
	},
	shared.Deuterium: {
		base:       shared.NewVector(0, 0, 0),
		prodCoef:   20,
		cost:       shared.NewVector(225, 75, 0),
		energyCoef: 20,
		plasmaCoef: 0.0033,
	},
}

// PositionBonus returns the positional production bonus a slot grants to r
func PositionBonus(position int, r shared.Resource) float64 {
	switch r {
	case shared.Metal:
		return metalPositionBonus[position]
	case shared.Crystal:
		return crystalPositionBonus[position]
	default:
		return 0
	}
}

// DeuteriumFactor returns the temperature factor of deuterium synthesis.
// Planets at or above 340 degrees produce nothing rather than a negative amount.
func DeuteriumFactor(temperature int) float64 {
	return utils.ClampMin(deuteriumOffset-deuteriumSlope*float64(temperature), 0)
}
