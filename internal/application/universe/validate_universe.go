package universe

import (
	"context"
	"fmt"

	"github.com/andrescamacho/ogametools-go/internal/application/logging"
	"github.com/andrescamacho/ogametools-go/internal/application/mediator"
	domain "github.com/andrescamacho/ogametools-go/internal/domain/universe"
)

// LoadUniverseQuery loads and validates a universe document from disk
type LoadUniverseQuery struct {
	Path string
}

// LoadUniverseResponse carries the loaded universe
type LoadUniverseResponse struct {
	Universe *domain.Universe
}

// LoadUniverseHandler handles the LoadUniverse query
type LoadUniverseHandler struct{}

// NewLoadUniverseHandler creates a new LoadUniverseHandler
func NewLoadUniverseHandler() *LoadUniverseHandler {
	return &LoadUniverseHandler{}
}

// Handle executes the LoadUniverse query
func (h *LoadUniverseHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*LoadUniverseQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *LoadUniverseQuery")
	}

	if query.Path == "" {
		return nil, fmt.Errorf("universe path is required")
	}

	u, err := domain.Load(query.Path)
	if err != nil {
		return nil, err
	}

	settings := u.Settings()
	logging.LoggerFromContext(ctx).Info("universe loaded",
		"path", query.Path, "name", settings.Name, "economy_speed", settings.EconomySpeed)

	return &LoadUniverseResponse{Universe: u}, nil
}
