package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/ogametools-go/internal/domain/universe"
	"github.com/andrescamacho/ogametools-go/test/helpers"
)

// currentUniverse is shared with the mine and recommendation steps
var currentUniverse *universe.Universe

// activeUniverse returns the universe of the scenario, defaulting to speed 1
func activeUniverse() (*universe.Universe, error) {
	if currentUniverse != nil {
		return currentUniverse, nil
	}
	u, err := universeWithSpeed(1)
	if err != nil {
		return nil, err
	}
	currentUniverse = u
	return u, nil
}

func universeWithSpeed(speed float64) (*universe.Universe, error) {
	doc := helpers.UniverseDocument()
	doc["economySpeed"] = speed
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return universe.Parse(data)
}

type universeContext struct {
	document map[string]interface{}
	universe *universe.Universe
	err      error
}

func (uc *universeContext) reset() {
	uc.document = nil
	uc.universe = nil
	uc.err = nil
	currentUniverse = nil
}

// Given steps

func (uc *universeContext) aUniverseWithEconomySpeed(speed float64) error {
	u, err := universeWithSpeed(speed)
	if err != nil {
		return fmt.Errorf("failed to build universe: %w", err)
	}
	currentUniverse = u
	return nil
}

func (uc *universeContext) aValidUniverseDocument() error {
	uc.document = helpers.UniverseDocument()
	return nil
}

func (uc *universeContext) theUniverseFieldIsRemoved(field string) error {
	if _, ok := uc.document[field]; !ok {
		return fmt.Errorf("document has no field %q", field)
	}
	delete(uc.document, field)
	return nil
}

func (uc *universeContext) theUniverseFieldIsSetToString(field, value string) error {
	uc.document[field] = value
	return nil
}

func (uc *universeContext) theUniverseFieldIsSetToNumber(field string, value float64) error {
	uc.document[field] = value
	return nil
}

// When steps

func (uc *universeContext) iParseTheUniverseDocument() error {
	data, err := json.Marshal(uc.document)
	if err != nil {
		return err
	}
	uc.universe, uc.err = universe.Parse(data)
	return nil
}

// Then steps

func (uc *universeContext) theUniverseShouldBeLoaded() error {
	if uc.err != nil {
		return fmt.Errorf("expected universe to load, got error: %v", uc.err)
	}
	if !uc.universe.IsLoaded() {
		return fmt.Errorf("expected universe to be loaded")
	}
	return nil
}

func (uc *universeContext) theEconomySpeedShouldBe(expected float64) error {
	speed, err := uc.universe.EconomySpeed()
	if err != nil {
		return err
	}
	if speed != expected {
		return fmt.Errorf("expected economy speed %g, got %g", expected, speed)
	}
	return nil
}

func (uc *universeContext) parsingShouldFailNamingField(field string) error {
	if uc.err == nil {
		return fmt.Errorf("expected parsing to fail naming %q, but it succeeded", field)
	}
	if !strings.Contains(uc.err.Error(), field) {
		return fmt.Errorf("expected error to name %q, got: %v", field, uc.err)
	}
	return nil
}

func (uc *universeContext) noUniverseShouldBeReturned() error {
	if uc.universe != nil {
		return fmt.Errorf("expected no universe, got %s", uc.universe)
	}
	return nil
}

func InitializeUniverseScenario(ctx *godog.ScenarioContext) {
	uc := &universeContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		uc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a universe with economy speed ([0-9.]+)$`, uc.aUniverseWithEconomySpeed)
	ctx.Step(`^a valid universe document$`, uc.aValidUniverseDocument)
	ctx.Step(`^the universe field "([^"]*)" is removed$`, uc.theUniverseFieldIsRemoved)
	ctx.Step(`^the universe field "([^"]*)" is set to "([^"]*)"$`, uc.theUniverseFieldIsSetToString)
	ctx.Step(`^the universe field "([^"]*)" is set to (-?[0-9.]+)$`, uc.theUniverseFieldIsSetToNumber)

	// When steps
	ctx.Step(`^I parse the universe document$`, uc.iParseTheUniverseDocument)

	// Then steps
	ctx.Step(`^the universe should be loaded$`, uc.theUniverseShouldBeLoaded)
	ctx.Step(`^the economy speed should be ([0-9.]+)$`, uc.theEconomySpeedShouldBe)
	ctx.Step(`^parsing should fail naming field "([^"]*)"$`, uc.parsingShouldFailNamingField)
	ctx.Step(`^no universe should be returned$`, uc.noUniverseShouldBeReturned)
}
