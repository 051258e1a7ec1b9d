package planet

import (
	"fmt"

	"github.com/andrescamacho/ogametools-go/internal/domain/boost"
	"github.com/andrescamacho/ogametools-go/internal/domain/player"
	"github.com/andrescamacho/ogametools-go/internal/domain/research"
	"github.com/andrescamacho/ogametools-go/internal/domain/shared"
	"github.com/andrescamacho/ogametools-go/internal/domain/universe"
)

// Attributes are the physical properties of a planet
type Attributes struct {
	// Orbital slot, 0 to MaxPosition
	Position    int
	Temperature int
	// Size is carried for completeness; no formula reads it
	Size int
}

// Dependencies are the collaborators a planet reads from. They are shared,
// not owned: several planets may point at the same research or boost list.
type Dependencies struct {
	Profile  *player.Profile
	Universe *universe.Universe
	Research *research.Research
	Boosts   []boost.Boost
}

// Planet composes its three mines with the state they depend on
type Planet struct {
	attrs Attributes

	profile  *player.Profile
	universe *universe.Universe
	research *research.Research
	boosts   []boost.Boost

	metalBonus   float64
	crystalBonus float64

	metal     *Mine
	crystal   *Mine
	deuterium *Mine
}

// NewPlanet validates the dependencies and builds the planet with its mines at level 0
func NewPlanet(attrs Attributes, deps Dependencies) (*Planet, error) {
	if deps.Profile == nil {
		return nil, shared.NewValidationError("profile", "player profile is required")
	}
	if deps.Research == nil {
		return nil, shared.NewValidationError("research", "research state is required")
	}
	if deps.Universe == nil {
		return nil, shared.NewValidationError("universe", "universe is required")
	}
	if !deps.Universe.IsLoaded() {
		return nil, fmt.Errorf("cannot build planet: %w", shared.ErrUniverseNotLoaded)
	}
	if attrs.Position < 0 || attrs.Position > MaxPosition {
		return nil, shared.NewValidationError("position",
			fmt.Sprintf("position must be between 0 and %d, got %d", MaxPosition, attrs.Position))
	}

	p := &Planet{
		attrs:        attrs,
		profile:      deps.Profile,
		universe:     deps.Universe,
		research:     deps.Research,
		boosts:       deps.Boosts,
		metalBonus:   PositionBonus(attrs.Position, shared.Metal),
		crystalBonus: PositionBonus(attrs.Position, shared.Crystal),
	}

	var err error
	if p.metal, err = newMine(p, shared.Metal); err != nil {
		return nil, err
	}
	if p.crystal, err = newMine(p, shared.Crystal); err != nil {
		return nil, err
	}
	if p.deuterium, err = newMine(p, shared.Deuterium); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Planet) Position() int    { return p.attrs.Position }
func (p *Planet) Temperature() int { return p.attrs.Temperature }
func (p *Planet) Size() int        { return p.attrs.Size }

// Attributes returns a copy of the planet's physical properties
func (p *Planet) Attributes() Attributes { return p.attrs }

func (p *Planet) Profile() *player.Profile     { return p.profile }
func (p *Planet) Universe() *universe.Universe { return p.universe }
func (p *Planet) Research() *research.Research { return p.research }

// Boosts returns the active boost list
func (p *Planet) Boosts() []boost.Boost { return p.boosts }

// SetBoosts replaces the active boost list
func (p *Planet) SetBoosts(boosts []boost.Boost) {
	p.boosts = boosts
}

// MetalBonus returns the positional metal bonus
func (p *Planet) MetalBonus() float64 { return p.metalBonus }

// CrystalBonus returns the positional crystal bonus
func (p *Planet) CrystalBonus() float64 { return p.crystalBonus }

func (p *Planet) MetalMine() *Mine     { return p.metal }
func (p *Planet) CrystalMine() *Mine   { return p.crystal }
func (p *Planet) DeuteriumMine() *Mine { return p.deuterium }

// Mines returns the metal, crystal and deuterium mines in that order
func (p *Planet) Mines() []*Mine {
	return []*Mine{p.metal, p.crystal, p.deuterium}
}

// Mine returns the mine producing r
func (p *Planet) Mine(r shared.Resource) (*Mine, error) {
	switch r {
	case shared.Metal:
		return p.metal, nil
	case shared.Crystal:
		return p.crystal, nil
	case shared.Deuterium:
		return p.deuterium, nil
	default:
		return nil, shared.NewValidationError("resource", fmt.Sprintf("no mine produces %s", r))
	}
}

func (p *Planet) String() string {
	return fmt.Sprintf("Planet(position=%d, temperature=%d, size=%d)",
		p.attrs.Position, p.attrs.Temperature, p.attrs.Size)
}
