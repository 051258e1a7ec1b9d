package bdd

import (
	"testing"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/ogametools-go/test/bdd/steps"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/domain", "features/application"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

func InitializeScenario(sc *godog.ScenarioContext) {
	// NOTE: first registration wins in godog, so the universe steps go first
	// for the shared "a universe with economy speed" wording
	steps.InitializeUniverseScenario(sc)
	steps.InitializeMineScenario(sc)
	steps.InitializeRecommendUpgradeScenario(sc)
}
