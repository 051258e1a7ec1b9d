package production

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/andrescamacho/ogametools-go/internal/domain/boost"
	"github.com/andrescamacho/ogametools-go/internal/domain/planet"
	"github.com/andrescamacho/ogametools-go/internal/domain/player"
	"github.com/andrescamacho/ogametools-go/internal/domain/research"
	"github.com/andrescamacho/ogametools-go/internal/domain/shared"
	"github.com/andrescamacho/ogametools-go/internal/domain/universe"
)

// MineLevels holds the current level of each mine
type MineLevels struct {
	Metal     int `json:"metal" yaml:"metal" validate:"min=0"`
	Crystal   int `json:"crystal" yaml:"crystal" validate:"min=0"`
	Deuterium int `json:"deuterium" yaml:"deuterium" validate:"min=0"`
}

// PlanetSetup describes a planet and everything its production depends on
type PlanetSetup struct {
	Position    int               `json:"position" yaml:"position" validate:"min=0,max=15"`
	Temperature int               `json:"temperature" yaml:"temperature"`
	Size        int               `json:"size" yaml:"size" validate:"min=0"`
	Class       string            `json:"class" yaml:"class"`
	Research    research.Research `json:"research" yaml:"research"`
	Boosts      []string          `json:"boosts" yaml:"boosts"`
	Levels      MineLevels        `json:"levels" yaml:"levels"`
}

// TradeRatio is the market exchange rate between resources, e.g. 3:2:1
type TradeRatio struct {
	Metal     float64 `json:"metal" yaml:"metal" validate:"gt=0"`
	Crystal   float64 `json:"crystal" yaml:"crystal" validate:"gt=0"`
	Deuterium float64 `json:"deuterium" yaml:"deuterium" validate:"gt=0"`
}

// DefaultTradeRatio is the customary 3:2:1 ratio
var DefaultTradeRatio = TradeRatio{Metal: 3, Crystal: 2, Deuterium: 1}

// MetalWeights returns how many metal units one unit of each resource is worth
func (r TradeRatio) MetalWeights() shared.Vector {
	return shared.NewVector(1, r.Metal/r.Crystal, r.Metal/r.Deuterium)
}

func (r TradeRatio) String() string {
	return fmt.Sprintf("%g:%g:%g", r.Metal, r.Crystal, r.Deuterium)
}

var setupValidator = validator.New()

func validateStruct(s interface{}) error {
	err := setupValidator.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}
	errs := make([]error, 0, len(validationErrs))
	for _, e := range validationErrs {
		errs = append(errs, shared.NewValidationError(
			e.Namespace(),
			fmt.Sprintf("failed validation: %s (value: '%v')", e.Tag(), e.Value()),
		))
	}
	return errors.Join(errs...)
}

// BuildPlanet assembles a planet from its setup, resolving boost presets and
// applying the mine levels
func BuildPlanet(u *universe.Universe, setup PlanetSetup) (*planet.Planet, error) {
	if err := validateStruct(setup); err != nil {
		return nil, fmt.Errorf("invalid planet setup: %w", err)
	}

	boosts, err := boost.LookupAll(setup.Boosts)
	if err != nil {
		return nil, fmt.Errorf("invalid planet setup: %w", err)
	}

	tech := setup.Research
	p, err := planet.NewPlanet(
		planet.Attributes{
			Position:    setup.Position,
			Temperature: setup.Temperature,
			Size:        setup.Size,
		},
		planet.Dependencies{
			Profile:  player.NewProfile(setup.Class),
			Universe: u,
			Research: &tech,
			Boosts:   boosts,
		},
	)
	if err != nil {
		return nil, err
	}

	levels := map[shared.Resource]int{
		shared.Metal:     setup.Levels.Metal,
		shared.Crystal:   setup.Levels.Crystal,
		shared.Deuterium: setup.Levels.Deuterium,
	}
	for _, m := range p.Mines() {
		if err := m.SetLevel(levels[m.Kind()]); err != nil {
			return nil, err
		}
	}

	return p, nil
}
