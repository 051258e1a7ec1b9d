package steps

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/ogametools-go/internal/application/production"
)

type recommendUpgradeContext struct {
	setup    production.PlanetSetup
	response *production.RecommendUpgradeResponse
	err      error
}

func (rc *recommendUpgradeContext) reset() {
	rc.setup = production.PlanetSetup{}
	rc.response = nil
	rc.err = nil
}

// Given steps

func (rc *recommendUpgradeContext) aPlanetSetupAtPositionWithTemperature(position, temperature int) error {
	rc.setup.Position = position
	rc.setup.Temperature = temperature
	return nil
}

func (rc *recommendUpgradeContext) mineLevels(metal, crystal, deuterium int) error {
	rc.setup.Levels = production.MineLevels{Metal: metal, Crystal: crystal, Deuterium: deuterium}
	return nil
}

// When steps

func (rc *recommendUpgradeContext) iAskForTheNextUpgradeWithTradeRatio(ratio string) error {
	parts := strings.Split(ratio, ":")
	if len(parts) != 3 {
		return fmt.Errorf("malformed trade ratio %q", ratio)
	}
	values := make([]float64, 3)
	for i, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return fmt.Errorf("malformed trade ratio %q: %w", ratio, err)
		}
		values[i] = v
	}

	u, err := activeUniverse()
	if err != nil {
		return err
	}

	handler := production.NewRecommendUpgradeHandler(nil)
	response, err := handler.Handle(context.Background(), &production.RecommendUpgradeQuery{
		Universe:   u,
		Setup:      rc.setup,
		TradeRatio: production.TradeRatio{Metal: values[0], Crystal: values[1], Deuterium: values[2]},
	})
	rc.err = err
	if err == nil {
		rc.response = response.(*production.RecommendUpgradeResponse)
	}
	return nil
}

// Then steps

func (rc *recommendUpgradeContext) theRecommendedUpgradeShouldBe(resource string) error {
	if rc.err != nil {
		return fmt.Errorf("expected a recommendation, got error: %v", rc.err)
	}
	best, ok := rc.response.Best()
	if !ok {
		return fmt.Errorf("expected a recommendation, got no options")
	}
	if best.Resource != resource {
		return fmt.Errorf("expected %s mine to be recommended, got %s", resource, best.Resource)
	}
	return nil
}

func (rc *recommendUpgradeContext) everyOptionShouldRaiseItsMineByOneLevel() error {
	if rc.response == nil {
		return fmt.Errorf("no recommendation available")
	}
	for _, o := range rc.response.Options {
		if o.ToLevel != o.FromLevel+1 {
			return fmt.Errorf("%s option goes from %d to %d", o.Resource, o.FromLevel, o.ToLevel)
		}
	}
	return nil
}

func (rc *recommendUpgradeContext) theOptionShouldNeverPayBack(resource string) error {
	if rc.response == nil {
		return fmt.Errorf("no recommendation available")
	}
	for _, o := range rc.response.Options {
		if o.Resource != resource {
			continue
		}
		if o.PaybackHours != nil {
			return fmt.Errorf("expected %s option never to pay back, got %.2f hours", resource, *o.PaybackHours)
		}
		return nil
	}
	return fmt.Errorf("no %s option in recommendation", resource)
}

func InitializeRecommendUpgradeScenario(ctx *godog.ScenarioContext) {
	rc := &recommendUpgradeContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		rc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a planet setup at position (\d+) with temperature (-?\d+)°C$`, rc.aPlanetSetupAtPositionWithTemperature)
	ctx.Step(`^mine levels metal (\d+), crystal (\d+), deuterium (\d+)$`, rc.mineLevels)

	// When steps
	ctx.Step(`^I ask for the next upgrade with trade ratio "([^"]*)"$`, rc.iAskForTheNextUpgradeWithTradeRatio)

	// Then steps
	ctx.Step(`^the recommended upgrade should be the (metal|crystal|deuterium) mine$`, rc.theRecommendedUpgradeShouldBe)
	ctx.Step(`^every option should raise its mine by one level$`, rc.everyOptionShouldRaiseItsMineByOneLevel)
	ctx.Step(`^the (metal|crystal|deuterium) option should never pay back$`, rc.theOptionShouldNeverPayBack)
}
