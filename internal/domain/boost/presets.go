package boost

import (
	"fmt"
	"sort"
	"strings"

	"github.com/andrescamacho/ogametools-go/internal/domain/shared"
)

// Resource boosters (items)
var (
	MetalBoosterBronze   = New("metal-bronze", 0.10, 0, 0, 0)
	MetalBoosterSilver   = New("metal-silver", 0.20, 0, 0, 0)
	MetalBoosterGold     = New("metal-gold", 0.30, 0, 0, 0)
	MetalBoosterPlatinum = New("metal-platinum", 0.40, 0, 0, 0)

	CrystalBoosterBronze   = New("crystal-bronze", 0, 0.10, 0, 0)
	CrystalBoosterSilver   = New("crystal-silver", 0, 0.20, 0, 0)
	CrystalBoosterGold     = New("crystal-gold", 0, 0.30, 0, 0)
	CrystalBoosterPlatinum = New("crystal-platinum", 0, 0.40, 0, 0)

	DeuteriumBoosterBronze   = New("deuterium-bronze", 0, 0, 0.10, 0)
	DeuteriumBoosterSilver   = New("deuterium-silver", 0, 0, 0.15, 0)
	DeuteriumBoosterGold     = New("deuterium-gold", 0, 0, 0.20, 0)
	DeuteriumBoosterPlatinum = New("deuterium-platinum", 0, 0, 0.30, 0)

	EnergyBoosterBronze   = New("energy-bronze", 0, 0, 0, 0.20)
	EnergyBoosterSilver   = New("energy-silver", 0, 0, 0, 0.40)
	EnergyBoosterGold     = New("energy-gold", 0, 0, 0, 0.60)
	EnergyBoosterPlatinum = New("energy-platinum", 0, 0, 0, 0.80)
)

// Officers
var (
	Geologist       = New("geologist", 0.10, 0.10, 0.10, 0)
	Engineer        = New("engineer", 0, 0, 0, 0.10)
	CommandingStaff = New("commanding-staff", 0.02, 0.02, 0.02, 0.02)
)

var presets = func() map[string]Boost {
	all := []Boost{
		MetalBoosterBronze, MetalBoosterSilver, MetalBoosterGold, MetalBoosterPlatinum,
		CrystalBoosterBronze, CrystalBoosterSilver, CrystalBoosterGold, CrystalBoosterPlatinum,
		DeuteriumBoosterBronze, DeuteriumBoosterSilver, DeuteriumBoosterGold, DeuteriumBoosterPlatinum,
		EnergyBoosterBronze, EnergyBoosterSilver, EnergyBoosterGold, EnergyBoosterPlatinum,
		Geologist, Engineer, CommandingStaff,
	}
	m := make(map[string]Boost, len(all))
	for _, b := range all {
		m[b.Name] = b
	}
	return m
}()

// Lookup returns the preset with the given name
func Lookup(name string) (Boost, error) {
	b, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Boost{}, shared.NewValidationError("boost", fmt.Sprintf("unknown boost preset %q", name))
	}
	return b, nil
}

// LookupAll resolves a list of preset names, keeping duplicates
func LookupAll(names []string) ([]Boost, error) {
	boosts := make([]Boost, 0, len(names))
	for _, name := range names {
		b, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		boosts = append(boosts, b)
	}
	return boosts, nil
}

// Presets returns every preset sorted by name
func Presets() []Boost {
	list := make([]Boost, 0, len(presets))
	for _, b := range presets {
		list = append(list, b)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}
