package production

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/andrescamacho/ogametools-go/internal/application/logging"
	"github.com/andrescamacho/ogametools-go/internal/application/mediator"
	"github.com/andrescamacho/ogametools-go/internal/domain/shared"
	"github.com/andrescamacho/ogametools-go/internal/domain/universe"
)

// RecommendUpgradeQuery asks which mine upgrade pays for itself fastest
type RecommendUpgradeQuery struct {
	Universe   *universe.Universe
	Setup      PlanetSetup
	TradeRatio TradeRatio
}

// UpgradeOption is the next level of one mine, valued in metal units
type UpgradeOption struct {
	Resource  string        `json:"resource" yaml:"resource"`
	FromLevel int           `json:"from_level" yaml:"from_level"`
	ToLevel   int           `json:"to_level" yaml:"to_level"`
	Cost      shared.Vector `json:"cost" yaml:"cost"`
	Gain      shared.Vector `json:"gain" yaml:"gain"`
	// Extra energy the new level draws
	Energy    float64 `json:"energy" yaml:"energy"`
	CostValue float64 `json:"cost_value" yaml:"cost_value"`
	GainValue float64 `json:"gain_value" yaml:"gain_value"`
	// PaybackHours is nil when the upgrade gains nothing
	PaybackHours *float64 `json:"payback_hours" yaml:"payback_hours"`
}

func (o UpgradeOption) payback() float64 {
	if o.PaybackHours == nil {
		return math.Inf(1)
	}
	return *o.PaybackHours
}

// RecommendUpgradeResponse lists the options, best (shortest payback) first
type RecommendUpgradeResponse struct {
	TradeRatio TradeRatio      `json:"trade_ratio" yaml:"trade_ratio"`
	Options    []UpgradeOption `json:"options" yaml:"options"`
}

// Best returns the recommended option
func (r *RecommendUpgradeResponse) Best() (UpgradeOption, bool) {
	if len(r.Options) == 0 {
		return UpgradeOption{}, false
	}
	return r.Options[0], true
}

// RecommendUpgradeHandler handles the RecommendUpgrade query
type RecommendUpgradeHandler struct {
	recorder MetricsRecorder
}

// NewRecommendUpgradeHandler creates a new RecommendUpgradeHandler
func NewRecommendUpgradeHandler(recorder MetricsRecorder) *RecommendUpgradeHandler {
	return &RecommendUpgradeHandler{recorder: recorderOrNoOp(recorder)}
}

// Handle executes the RecommendUpgrade query
func (h *RecommendUpgradeHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*RecommendUpgradeQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RecommendUpgradeQuery")
	}

	ratio := query.TradeRatio
	if ratio == (TradeRatio{}) {
		ratio = DefaultTradeRatio
	}
	if err := validateStruct(ratio); err != nil {
		return nil, fmt.Errorf("invalid trade ratio: %w", err)
	}
	weights := ratio.MetalWeights()

	p, err := BuildPlanet(query.Universe, query.Setup)
	if err != nil {
		return nil, err
	}

	options := make([]UpgradeOption, 0, 3)
	for _, m := range p.Mines() {
		current := m.Level()
		next := current + 1

		cost, err := m.Cost(next)
		if err != nil {
			return nil, err
		}
		nextTotal, err := m.Total(next)
		if err != nil {
			return nil, err
		}
		nextEnergy, err := m.Energy(next)
		if err != nil {
			return nil, err
		}

		gain := nextTotal.Sub(m.CurrentTotal())
		option := UpgradeOption{
			Resource:  m.Kind().String(),
			FromLevel: current,
			ToLevel:   next,
			Cost:      cost,
			Gain:      gain,
			Energy:    nextEnergy - m.CurrentEnergy(),
			CostValue: cost.Value(weights),
			GainValue: gain.Value(weights),
		}
		if option.GainValue > 0 {
			hours := option.CostValue / option.GainValue
			option.PaybackHours = &hours
		}
		options = append(options, option)

		h.recorder.RecordMineEvaluation(m.Kind(), 2)
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].payback() < options[j].payback()
	})

	if best := options[0]; best.PaybackHours != nil {
		logging.LoggerFromContext(ctx).Debug("upgrade recommended",
			"resource", best.Resource, "to_level", best.ToLevel, "payback_hours", *best.PaybackHours)
	}

	return &RecommendUpgradeResponse{TradeRatio: ratio, Options: options}, nil
}
