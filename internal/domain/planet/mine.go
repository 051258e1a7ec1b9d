package planet

import (
	"fmt"
	"math"

	"github.com/andrescamacho/ogametools-go/internal/domain/boost"
	"github.com/andrescamacho/ogametools-go/internal/domain/shared"
)

// Mine evaluates the cost, energy draw and production of one mine kind on
// its planet. Every formula takes the level to evaluate explicitly and never
// touches the stored level, so different levels can be compared freely.
type Mine struct {
	planet *Planet
	kind   shared.Resource
	level  int

	// Fixed at construction from the planet and universe
	base       shared.Vector
	baseProd   shared.Vector
	baseCost   shared.Vector
	baseEnergy float64
	plasmaCoef float64
}

func newMine(p *Planet, kind shared.Resource) (*Mine, error) {
	table, ok := mineTables[kind]
	if !ok {
		return nil, shared.NewValidationError("resource", fmt.Sprintf("no mine produces %s", kind))
	}

	speed, err := p.universe.EconomySpeed()
	if err != nil {
		return nil, err
	}

	coef := table.prodCoef * speed
	switch kind {
	case shared.Metal:
		coef *= 1 + p.metalBonus
	case shared.Crystal:
		coef *= 1 + p.crystalBonus
	case shared.Deuterium:
		coef *= DeuteriumFactor(p.attrs.Temperature)
	}

	return &Mine{
		planet:     p,
		kind:       kind,
		base:       table.base.Scale(speed),
		baseProd:   shared.UnitVector(kind, coef),
		baseCost:   table.cost,
		baseEnergy: table.energyCoef,
		plasmaCoef: table.plasmaCoef,
	}, nil
}

// Kind returns the resource this mine produces
func (m *Mine) Kind() shared.Resource { return m.kind }

// Planet returns the planet the mine is built on
func (m *Mine) Planet() *Planet { return m.planet }

// Level returns the current level
func (m *Mine) Level() int { return m.level }

// SetLevel changes the current level
func (m *Mine) SetLevel(level int) error {
	if level < 0 {
		return shared.NewInvalidLevelError(level)
	}
	m.level = level
	return nil
}

// Base returns the level-independent production every planet receives
func (m *Mine) Base() shared.Vector { return m.base }

func growth(rate float64, level int) float64 {
	return float64(level) * math.Pow(rate, float64(level))
}

func checkLevel(level int) error {
	if level < 0 {
		return shared.NewInvalidLevelError(level)
	}
	return nil
}

// Energy returns the energy consumed at level
func (m *Mine) Energy(level int) (float64, error) {
	if err := checkLevel(level); err != nil {
		return 0, err
	}
	return m.baseEnergy * growth(productionGrowth, level), nil
}

// Cost returns the price of the given level
func (m *Mine) Cost(level int) (shared.Vector, error) {
	if err := checkLevel(level); err != nil {
		return shared.Vector{}, err
	}
	return m.baseCost.Scale(growth(costGrowth, level)), nil
}

// Production returns the unbonused production at level
func (m *Mine) Production(level int) (shared.Vector, error) {
	if err := checkLevel(level); err != nil {
		return shared.Vector{}, err
	}
	return m.baseProd.Scale(growth(productionGrowth, level)), nil
}

// Plasma returns the extra production granted by plasma technology
func (m *Mine) Plasma(level int) (shared.Vector, error) {
	prod, err := m.Production(level)
	if err != nil {
		return shared.Vector{}, err
	}
	return prod.Scale(m.plasmaCoef * float64(m.planet.research.Plasma)), nil
}

// Boost returns the extra production granted by the planet's boosts
func (m *Mine) Boost(level int) (shared.Vector, error) {
	prod, err := m.Production(level)
	if err != nil {
		return shared.Vector{}, err
	}
	return prod.Scale(boost.SumFor(m.planet.boosts, m.kind)), nil
}

// ClassBoost returns the extra production granted by the player class
func (m *Mine) ClassBoost(level int) (shared.Vector, error) {
	prod, err := m.Production(level)
	if err != nil {
		return shared.Vector{}, err
	}
	return prod.Scale(m.planet.profile.MineBonus), nil
}

// Total returns the fully bonused production at level
func (m *Mine) Total(level int) (shared.Vector, error) {
	prod, err := m.Production(level)
	if err != nil {
		return shared.Vector{}, err
	}
	plasma, _ := m.Plasma(level)
	boosted, _ := m.Boost(level)
	class, _ := m.ClassBoost(level)

	return m.base.Add(prod).Add(plasma).Add(boosted).Add(class), nil
}

// CurrentTotal returns Total at the stored level
func (m *Mine) CurrentTotal() shared.Vector {
	total, _ := m.Total(m.level)
	return total
}

// CurrentCost returns Cost at the stored level
func (m *Mine) CurrentCost() shared.Vector {
	cost, _ := m.Cost(m.level)
	return cost
}

// CurrentEnergy returns Energy at the stored level
func (m *Mine) CurrentEnergy() float64 {
	energy, _ := m.Energy(m.level)
	return energy
}

func (m *Mine) String() string {
	return fmt.Sprintf("Mine(%s, level=%d)", m.kind, m.level)
}
