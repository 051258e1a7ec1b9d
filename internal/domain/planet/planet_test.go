package planet_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/ogametools-go/internal/domain/boost"
	"github.com/andrescamacho/ogametools-go/internal/domain/planet"
	"github.com/andrescamacho/ogametools-go/internal/domain/player"
	"github.com/andrescamacho/ogametools-go/internal/domain/research"
	"github.com/andrescamacho/ogametools-go/internal/domain/shared"
	"github.com/andrescamacho/ogametools-go/internal/domain/universe"
	"github.com/andrescamacho/ogametools-go/test/helpers"
)

func newDeps(t *testing.T) planet.Dependencies {
	return planet.Dependencies{
		Profile:  player.NewProfile(""),
		Universe: helpers.NewTestUniverse(t, 1.0),
		Research: research.New(),
	}
}

func TestNewPlanet_OwnsThreeMinesAtLevelZero(t *testing.T) {
	p, err := planet.NewPlanet(planet.Attributes{Position: 8, Temperature: 20, Size: 163}, newDeps(t))
	require.NoError(t, err)

	mines := p.Mines()
	require.Len(t, mines, 3)
	for i, kind := range shared.MinedResources() {
		assert.Equal(t, kind, mines[i].Kind())
		assert.Zero(t, mines[i].Level())
		assert.Same(t, p, mines[i].Planet())
	}

	assert.Equal(t, 163, p.Size())
	assert.Equal(t, 0.35, p.MetalBonus())
	assert.Zero(t, p.CrystalBonus())
}

func TestNewPlanet_PositionBonusTables(t *testing.T) {
	tests := []struct {
		position int
		metal    float64
		crystal  float64
	}{
		{0, 0, 0},
		{1, 0, 0.40},
		{2, 0, 0.30},
		{3, 0, 0.20},
		{4, 0, 0},
		{6, 0.17, 0},
		{7, 0.23, 0},
		{8, 0.35, 0},
		{9, 0.23, 0},
		{10, 0.17, 0},
		{15, 0, 0},
	}

	for _, tt := range tests {
		p, err := planet.NewPlanet(planet.Attributes{Position: tt.position}, newDeps(t))
		require.NoError(t, err)
		assert.Equal(t, tt.metal, p.MetalBonus(), "position %d", tt.position)
		assert.Equal(t, tt.crystal, p.CrystalBonus(), "position %d", tt.position)
	}
}

func TestNewPlanet_RequiresDependencies(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(d *planet.Dependencies)
		field string
	}{
		{"no profile", func(d *planet.Dependencies) { d.Profile = nil }, "profile"},
		{"no research", func(d *planet.Dependencies) { d.Research = nil }, "research"},
		{"no universe", func(d *planet.Dependencies) { d.Universe = nil }, "universe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := newDeps(t)
			tt.edit(&deps)

			_, err := planet.NewPlanet(planet.Attributes{Position: 8}, deps)

			var validationErr *shared.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestNewPlanet_RejectsUnloadedUniverse(t *testing.T) {
	deps := newDeps(t)
	deps.Universe = universe.Unloaded()

	_, err := planet.NewPlanet(planet.Attributes{Position: 8}, deps)

	assert.ErrorIs(t, err, shared.ErrUniverseNotLoaded)
}

func TestNewPlanet_RejectsPositionOutOfRange(t *testing.T) {
	for _, position := range []int{-1, 16} {
		_, err := planet.NewPlanet(planet.Attributes{Position: position}, newDeps(t))

		var validationErr *shared.ValidationError
		require.True(t, errors.As(err, &validationErr), "position %d", position)
		assert.Equal(t, "position", validationErr.Field)
	}
}

func TestPlanet_MineLookup(t *testing.T) {
	p, err := planet.NewPlanet(planet.Attributes{Position: 8}, newDeps(t))
	require.NoError(t, err)

	m, err := p.Mine(shared.Crystal)
	require.NoError(t, err)
	assert.Same(t, p.CrystalMine(), m)

	_, err = p.Mine(shared.Energy)
	assert.Error(t, err)
}

func TestPlanet_SharedDependencies(t *testing.T) {
	deps := newDeps(t)
	deps.Boosts = []boost.Boost{boost.Geologist}

	a, err := planet.NewPlanet(planet.Attributes{Position: 8}, deps)
	require.NoError(t, err)
	b, err := planet.NewPlanet(planet.Attributes{Position: 4}, deps)
	require.NoError(t, err)

	deps.Research.Plasma = 5

	assert.Same(t, a.Research(), b.Research())
	assert.Equal(t, 5, a.Research().Plasma)

	b.SetBoosts(nil)
	assert.Len(t, a.Boosts(), 1)
	assert.Empty(t, b.Boosts())
}

func TestDeuteriumFactor(t *testing.T) {
	assert.InDelta(t, 0.68, planet.DeuteriumFactor(0), 1e-12)
	assert.InDelta(t, 0.72, planet.DeuteriumFactor(-20), 1e-12)
	assert.InDelta(t, 0.0, planet.DeuteriumFactor(340), 1e-12)
	assert.Zero(t, planet.DeuteriumFactor(400))
}
