package universe_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appUniverse "github.com/andrescamacho/ogametools-go/internal/application/universe"
	"github.com/andrescamacho/ogametools-go/internal/domain/shared"
	"github.com/andrescamacho/ogametools-go/test/helpers"
)

func TestLoadUniverseHandler(t *testing.T) {
	path := helpers.WriteUniverseFile(t, helpers.UniverseDocument())
	handler := appUniverse.NewLoadUniverseHandler()

	response, err := handler.Handle(context.Background(), &appUniverse.LoadUniverseQuery{Path: path})

	require.NoError(t, err)
	result := response.(*appUniverse.LoadUniverseResponse)
	assert.True(t, result.Universe.IsLoaded())
	assert.Equal(t, "Andromeda", result.Universe.Settings().Name)
}

func TestLoadUniverseHandler_SchemaError(t *testing.T) {
	doc := helpers.UniverseDocument()
	delete(doc, "researchSpeed")
	path := helpers.WriteUniverseFile(t, doc)

	_, err := appUniverse.NewLoadUniverseHandler().Handle(context.Background(), &appUniverse.LoadUniverseQuery{Path: path})

	var schemaErr *shared.SchemaValidationError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "researchSpeed", schemaErr.Field)
}

func TestLoadUniverseHandler_RejectsBadRequests(t *testing.T) {
	handler := appUniverse.NewLoadUniverseHandler()

	_, err := handler.Handle(context.Background(), &appUniverse.LoadUniverseQuery{})
	assert.EqualError(t, err, "universe path is required")

	_, err = handler.Handle(context.Background(), "not a query")
	assert.ErrorContains(t, err, "invalid request type")
}
