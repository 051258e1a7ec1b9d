package boost

import (
	"fmt"

	"github.com/andrescamacho/ogametools-go/internal/domain/shared"
)

// Boost is a set of additive production bonuses, expressed as fractions
// (0.10 is +10 %). Energy is kept apart from the mined resources.
type Boost struct {
	Name      string  `json:"name" yaml:"name"`
	Metal     float64 `json:"metal" yaml:"metal"`
	Crystal   float64 `json:"crystal" yaml:"crystal"`
	Deuterium float64 `json:"deuterium" yaml:"deuterium"`
	Energy    float64 `json:"energy" yaml:"energy"`
}

// New creates an ad-hoc boost
func New(name string, metal, crystal, deuterium, energy float64) Boost {
	return Boost{
		Name:      name,
		Metal:     metal,
		Crystal:   crystal,
		Deuterium: deuterium,
		Energy:    energy,
	}
}

// For returns the bonus this boost grants to resource r
func (b Boost) For(r shared.Resource) float64 {
	switch r {
	case shared.Metal:
		return b.Metal
	case shared.Crystal:
		return b.Crystal
	case shared.Deuterium:
		return b.Deuterium
	case shared.Energy:
		return b.Energy
	default:
		return 0
	}
}

// Mined returns the metal, crystal and deuterium bonuses as a vector
func (b Boost) Mined() shared.Vector {
	return shared.NewVector(b.Metal, b.Crystal, b.Deuterium)
}

// Add stacks two boosts
func (b Boost) Add(other Boost) Boost {
	return Boost{
		Name:      b.Name,
		Metal:     b.Metal + other.Metal,
		Crystal:   b.Crystal + other.Crystal,
		Deuterium: b.Deuterium + other.Deuterium,
		Energy:    b.Energy + other.Energy,
	}
}

func (b Boost) String() string {
	return fmt.Sprintf("Boost(%s: metal=%+.0f%%, crystal=%+.0f%%, deuterium=%+.0f%%, energy=%+.0f%%)",
		b.Name, b.Metal*100, b.Crystal*100, b.Deuterium*100, b.Energy*100)
}

// Sum stacks a list of boosts. Bonuses add up without a cap.
func Sum(boosts []Boost) Boost {
	total := Boost{Name: "total"}
	for _, b := range boosts {
		total = total.Add(b)
	}
	return total
}

// SumFor returns the stacked bonus for a single resource
func SumFor(boosts []Boost, r shared.Resource) float64 {
	var total float64
	for _, b := range boosts {
		total += b.For(r)
	}
	return total
}
