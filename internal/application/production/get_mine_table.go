package production

import (
	"context"
	"fmt"

	"github.com/andrescamacho/ogametools-go/internal/application/logging"
	"github.com/andrescamacho/ogametools-go/internal/application/mediator"
	"github.com/andrescamacho/ogametools-go/internal/domain/shared"
	"github.com/andrescamacho/ogametools-go/internal/domain/universe"
)

// MaxTableLevels caps the number of rows a single table query may produce
const MaxTableLevels = 200

// GetMineTableQuery requests cost, energy and production of one mine over a level range
type GetMineTableQuery struct {
	Universe  *universe.Universe
	Setup     PlanetSetup
	Resource  shared.Resource
	FromLevel int
	ToLevel   int
}

// MineTableRow is the evaluation of a mine at one level
type MineTableRow struct {
	Level      int           `json:"level" yaml:"level"`
	Cost       shared.Vector `json:"cost" yaml:"cost"`
	Energy     float64       `json:"energy" yaml:"energy"`
	Production shared.Vector `json:"production" yaml:"production"`
	Plasma     shared.Vector `json:"plasma" yaml:"plasma"`
	Boost      shared.Vector `json:"boost" yaml:"boost"`
	ClassBoost shared.Vector `json:"class_boost" yaml:"class_boost"`
	Total      shared.Vector `json:"total" yaml:"total"`
}

// GetMineTableResponse contains one row per level, ascending
type GetMineTableResponse struct {
	Resource shared.Resource `json:"-" yaml:"-"`
	Rows     []MineTableRow  `json:"rows" yaml:"rows"`
}

// GetMineTableHandler handles the GetMineTable query
type GetMineTableHandler struct {
	recorder MetricsRecorder
}

// NewGetMineTableHandler creates a new GetMineTableHandler
func NewGetMineTableHandler(recorder MetricsRecorder) *GetMineTableHandler {
	return &GetMineTableHandler{recorder: recorderOrNoOp(recorder)}
}

// Handle executes the GetMineTable query
func (h *GetMineTableHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetMineTableQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetMineTableQuery")
	}

	if query.FromLevel < 0 {
		return nil, shared.NewInvalidLevelError(query.FromLevel)
	}
	if query.ToLevel < query.FromLevel {
		return nil, shared.NewValidationError("to_level",
			fmt.Sprintf("must be at least from_level (%d), got %d", query.FromLevel, query.ToLevel))
	}
	// Compared without the +1 so ToLevel near math.MaxInt cannot overflow
	if query.ToLevel-query.FromLevel >= MaxTableLevels {
		return nil, shared.NewValidationError("to_level",
			fmt.Sprintf("levels %d..%d exceed the limit of %d rows", query.FromLevel, query.ToLevel, MaxTableLevels))
	}

	p, err := BuildPlanet(query.Universe, query.Setup)
	if err != nil {
		return nil, err
	}
	mine, err := p.Mine(query.Resource)
	if err != nil {
		return nil, err
	}

	rows := make([]MineTableRow, 0, query.ToLevel-query.FromLevel+1)
	for level := query.FromLevel; level <= query.ToLevel; level++ {
		row, err := evaluate(mine, level)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	h.recorder.RecordMineEvaluation(query.Resource, len(rows))
	logging.LoggerFromContext(ctx).Debug("mine table computed",
		"resource", query.Resource.String(), "from", query.FromLevel, "to", query.ToLevel)

	return &GetMineTableResponse{Resource: query.Resource, Rows: rows}, nil
}

// mineFormulas is the subset of planet.Mine used for evaluation
type mineFormulas interface {
	Cost(level int) (shared.Vector, error)
	Energy(level int) (float64, error)
	Production(level int) (shared.Vector, error)
	Plasma(level int) (shared.Vector, error)
	Boost(level int) (shared.Vector, error)
	ClassBoost(level int) (shared.Vector, error)
	Total(level int) (shared.Vector, error)
}

func evaluate(m mineFormulas, level int) (MineTableRow, error) {
	row := MineTableRow{Level: level}
	var err error

	if row.Cost, err = m.Cost(level); err != nil {
		return row, err
	}
	if row.Energy, err = m.Energy(level); err != nil {
		return row, err
	}
	if row.Production, err = m.Production(level); err != nil {
		return row, err
	}
	if row.Plasma, err = m.Plasma(level); err != nil {
		return row, err
	}
	if row.Boost, err = m.Boost(level); err != nil {
		return row, err
	}
	if row.ClassBoost, err = m.ClassBoost(level); err != nil {
		return row, err
	}
	if row.Total, err = m.Total(level); err != nil {
		return row, err
	}
	return row, nil
}
