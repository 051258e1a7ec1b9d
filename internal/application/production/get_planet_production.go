package production

import (
	"context"
	"fmt"

	"github.com/andrescamacho/ogametools-go/internal/application/mediator"
	"github.com/andrescamacho/ogametools-go/internal/domain/boost"
	"github.com/andrescamacho/ogametools-go/internal/domain/shared"
	"github.com/andrescamacho/ogametools-go/internal/domain/universe"
)

// GetPlanetProductionQuery requests the production of every mine at its current level
type GetPlanetProductionQuery struct {
	Universe *universe.Universe
	Setup    PlanetSetup
}

// MineSummary is a mine evaluated at its current level
type MineSummary struct {
	Resource string        `json:"resource" yaml:"resource"`
	Level    int           `json:"level" yaml:"level"`
	Energy   float64       `json:"energy" yaml:"energy"`
	Total    shared.Vector `json:"total" yaml:"total"`
}

// GetPlanetProductionResponse aggregates the three mines of a planet
type GetPlanetProductionResponse struct {
	Mines []MineSummary `json:"mines" yaml:"mines"`
	// Total is the hourly production of all mines combined
	Total             shared.Vector `json:"total" yaml:"total"`
	EnergyConsumption float64       `json:"energy_consumption" yaml:"energy_consumption"`
	// EnergyBonus is the stacked energy bonus of boosts and player class
	EnergyBonus float64 `json:"energy_bonus" yaml:"energy_bonus"`
}

// GetPlanetProductionHandler handles the GetPlanetProduction query
type GetPlanetProductionHandler struct {
	recorder MetricsRecorder
}

// NewGetPlanetProductionHandler creates a new GetPlanetProductionHandler
func NewGetPlanetProductionHandler(recorder MetricsRecorder) *GetPlanetProductionHandler {
	return &GetPlanetProductionHandler{recorder: recorderOrNoOp(recorder)}
}

// Handle executes the GetPlanetProduction query
func (h *GetPlanetProductionHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetPlanetProductionQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetPlanetProductionQuery")
	}

	p, err := BuildPlanet(query.Universe, query.Setup)
	if err != nil {
		return nil, err
	}

	response := &GetPlanetProductionResponse{
		EnergyBonus: boost.SumFor(p.Boosts(), shared.Energy) + p.Profile().EnergyBonus,
	}
	for _, m := range p.Mines() {
		summary := MineSummary{
			Resource: m.Kind().String(),
			Level:    m.Level(),
			Energy:   m.CurrentEnergy(),
			Total:    m.CurrentTotal(),
		}
		response.Mines = append(response.Mines, summary)
		response.Total = response.Total.Add(summary.Total)
		response.EnergyConsumption += summary.Energy

		h.recorder.RecordMineEvaluation(m.Kind(), 1)
	}

	return response, nil
}
