package player_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/ogametools-go/internal/domain/player"
)

func TestNewProfile(t *testing.T) {
	tests := []struct {
		class       string
		mineBonus   float64
		energyBonus float64
	}{
		{player.ClassCollector, 0.25, 0.10},
		{player.ClassGeneral, 0, 0},
		{player.ClassDiscoverer, 0, 0},
		{"collector", 0, 0},
		{"", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			p := player.NewProfile(tt.class)

			assert.Equal(t, tt.class, p.Class)
			assert.Equal(t, tt.mineBonus, p.MineBonus)
			assert.Equal(t, tt.energyBonus, p.EnergyBonus)
		})
	}
}
