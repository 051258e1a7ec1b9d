package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/ogametools-go/internal/domain/boost"
	"github.com/andrescamacho/ogametools-go/internal/domain/planet"
	"github.com/andrescamacho/ogametools-go/internal/domain/player"
	"github.com/andrescamacho/ogametools-go/internal/domain/research"
	"github.com/andrescamacho/ogametools-go/internal/domain/shared"
)

type mineContext struct {
	position    int
	temperature int
	class       string
	plasma      int
	boosts      []boost.Boost
	boostErr    error
	planet      *planet.Planet
	levelErr    error
}

func (mc *mineContext) reset() {
	mc.position = 8
	mc.temperature = 20
	mc.class = ""
	mc.plasma = 0
	mc.boosts = nil
	mc.boostErr = nil
	mc.planet = nil
	mc.levelErr = nil
}

// ensurePlanet builds the planet from the settings gathered so far
func (mc *mineContext) ensurePlanet() (*planet.Planet, error) {
	if mc.planet != nil {
		return mc.planet, nil
	}
	if mc.boostErr != nil {
		return nil, mc.boostErr
	}

	u, err := activeUniverse()
	if err != nil {
		return nil, err
	}

	tech := research.New()
	if err := tech.Set("plasma", mc.plasma); err != nil {
		return nil, err
	}

	p, err := planet.NewPlanet(
		planet.Attributes{Position: mc.position, Temperature: mc.temperature},
		planet.Dependencies{
			Profile:  player.NewProfile(mc.class),
			Universe: u,
			Research: tech,
			Boosts:   mc.boosts,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build planet: %w", err)
	}
	mc.planet = p
	return p, nil
}

func (mc *mineContext) mine(name string) (*planet.Mine, error) {
	resource, err := shared.ParseResource(name)
	if err != nil {
		return nil, err
	}
	p, err := mc.ensurePlanet()
	if err != nil {
		return nil, err
	}
	return p.Mine(resource)
}

// Given steps

func (mc *mineContext) aPlanetAtPositionWithTemperature(position, temperature int) error {
	mc.position = position
	mc.temperature = temperature
	mc.planet = nil
	return nil
}

func (mc *mineContext) thePlayerClassIs(class string) error {
	mc.class = class
	mc.planet = nil
	return nil
}

func (mc *mineContext) plasmaTechnologyAtLevel(level int) error {
	mc.plasma = level
	mc.planet = nil
	return nil
}

func (mc *mineContext) theActiveBoosts(table *godog.Table) error {
	names := make([]string, 0, len(table.Rows))
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}
		names = append(names, getCellValue(table, row, "name"))
	}

	mc.boosts, mc.boostErr = boost.LookupAll(names)
	mc.planet = nil
	return nil
}

func (mc *mineContext) theMineAtLevel(name string, level int) error {
	m, err := mc.mine(name)
	if err != nil {
		return err
	}
	return m.SetLevel(level)
}

// When steps

func (mc *mineContext) iSetTheMineToLevel(name string, level int) error {
	m, err := mc.mine(name)
	if err != nil {
		return err
	}
	mc.levelErr = m.SetLevel(level)
	return nil
}

// Then steps

func (mc *mineContext) theMineShouldProducePerHour(name string, expected float64, resourceName string) error {
	m, err := mc.mine(name)
	if err != nil {
		return err
	}
	resource, err := shared.ParseResource(resourceName)
	if err != nil {
		return err
	}
	return expectApprox(resourceName+" production", expected, m.CurrentTotal().Get(resource))
}

func (mc *mineContext) theMineShouldConsumeEnergy(name string, expected float64) error {
	m, err := mc.mine(name)
	if err != nil {
		return err
	}
	return expectApprox("energy consumption", expected, m.CurrentEnergy())
}

func (mc *mineContext) upgradingTheMineShouldCost(name string, level int, metal, crystal float64) error {
	m, err := mc.mine(name)
	if err != nil {
		return err
	}
	cost, err := m.Cost(level)
	if err != nil {
		return err
	}
	if err := expectApprox("metal cost", metal, cost.Metal()); err != nil {
		return err
	}
	if err := expectApprox("crystal cost", crystal, cost.Crystal()); err != nil {
		return err
	}
	return expectApprox("deuterium cost", 0, cost.Deuterium())
}

func (mc *mineContext) theLevelChangeShouldFailWith(expected string) error {
	if mc.levelErr == nil {
		return fmt.Errorf("expected level change to fail with '%s', but it succeeded", expected)
	}
	if mc.levelErr.Error() != expected {
		return fmt.Errorf("expected error '%s', got '%s'", expected, mc.levelErr.Error())
	}
	return nil
}

func (mc *mineContext) theStackedBonusShouldBe(resourceName string, expected float64) error {
	if mc.boostErr != nil {
		return mc.boostErr
	}
	resource, err := shared.ParseResource(resourceName)
	if err != nil {
		return err
	}
	return expectApprox(resourceName+" bonus", expected, boost.SumFor(mc.boosts, resource))
}

func (mc *mineContext) theBoostsShouldBeRejected() error {
	if mc.boostErr == nil {
		return fmt.Errorf("expected boost lookup to fail, but it succeeded")
	}
	return nil
}

func InitializeMineScenario(ctx *godog.ScenarioContext) {
	mc := &mineContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		mc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a planet at position (\d+) with temperature (-?\d+)°C$`, mc.aPlanetAtPositionWithTemperature)
	ctx.Step(`^the player class is "([^"]*)"$`, mc.thePlayerClassIs)
	ctx.Step(`^plasma technology at level (\d+)$`, mc.plasmaTechnologyAtLevel)
	ctx.Step(`^the active boosts:$`, mc.theActiveBoosts)
	ctx.Step(`^the (metal|crystal|deuterium) mine at level (\d+)$`, mc.theMineAtLevel)

	// When steps
	ctx.Step(`^I set the (metal|crystal|deuterium) mine to level (-?\d+)$`, mc.iSetTheMineToLevel)

	// Then steps
	ctx.Step(`^the (metal|crystal|deuterium) mine should produce ([0-9.]+) (metal|crystal|deuterium) per hour$`, mc.theMineShouldProducePerHour)
	ctx.Step(`^the (metal|crystal|deuterium) mine should consume ([0-9.]+) energy$`, mc.theMineShouldConsumeEnergy)
	ctx.Step(`^upgrading the (metal|crystal|deuterium) mine to level (\d+) should cost ([0-9.]+) metal and ([0-9.]+) crystal$`, mc.upgradingTheMineShouldCost)
	ctx.Step(`^the level change should fail with "([^"]*)"$`, mc.theLevelChangeShouldFailWith)
	ctx.Step(`^the stacked (metal|crystal|deuterium|energy) bonus should be ([0-9.]+)$`, mc.theStackedBonusShouldBe)
	ctx.Step(`^the boosts should be rejected$`, mc.theBoostsShouldBeRejected)
}
