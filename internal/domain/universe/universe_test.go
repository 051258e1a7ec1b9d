package universe_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/ogametools-go/internal/domain/shared"
	"github.com/andrescamacho/ogametools-go/internal/domain/universe"
	"github.com/andrescamacho/ogametools-go/test/helpers"
)

func TestLoad_ValidDocument(t *testing.T) {
	path := helpers.WriteUniverseFile(t, helpers.UniverseDocument())

	u, err := universe.Load(path)

	require.NoError(t, err)
	assert.True(t, u.IsLoaded())
	assert.Equal(t, path, u.Source())

	s := u.Settings()
	assert.Equal(t, "Andromeda", s.Name)
	assert.Equal(t, 9, s.Galaxies)
	assert.Equal(t, 0.3, s.Fleet2Debris)
	assert.True(t, s.ACS)

	speed, err := u.EconomySpeed()
	require.NoError(t, err)
	assert.Equal(t, 1.0, speed)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := universe.Load("/nonexistent/universe.json")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read universe file")
}

func TestParse_MissingFieldIsNamed(t *testing.T) {
	doc := helpers.UniverseDocument()
	delete(doc, "economySpeed")

	u, err := universe.Parse(helpers.UniverseJSON(t, doc))

	require.Error(t, err)
	assert.Nil(t, u)

	var schemaErr *shared.SchemaValidationError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "economySpeed", schemaErr.Field)
	assert.True(t, schemaErr.Missing())
}

func TestParse_MistypedFieldIsNamed(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    interface{}
		expected string
		actual   string
	}{
		{"string for number", "economySpeed", "fast", "number", "string"},
		{"number for string", "name", 42, "string", "integer"},
		{"fraction for integer", "galaxies", 9.5, "integer", "number"},
		{"string for boolean", "ACS", "yes", "boolean", "string"},
		{"null for integer", "probeStorage", nil, "integer", "null"},
		{"object for string", "galaxy", map[string]interface{}{}, "string", "object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := helpers.UniverseDocument()
			doc[tt.field] = tt.value

			_, err := universe.Parse(helpers.UniverseJSON(t, doc))

			var schemaErr *shared.SchemaValidationError
			require.True(t, errors.As(err, &schemaErr), "expected schema error, got %v", err)
			assert.Equal(t, tt.field, schemaErr.Field)
			assert.Equal(t, tt.expected, schemaErr.Expected)
			assert.Equal(t, tt.actual, schemaErr.Actual)
		})
	}
}

func TestParse_ReportsEveryViolation(t *testing.T) {
	doc := helpers.UniverseDocument()
	delete(doc, "name")
	doc["ACS"] = 1

	_, err := universe.Parse(helpers.UniverseJSON(t, doc))

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"name"`)
	assert.Contains(t, err.Error(), `"ACS"`)
}

func TestParse_IntegralFloatIsInteger(t *testing.T) {
	u, err := universe.Parse([]byte(`{
		"name": "Zibal", "galaxy": "1", "system": "1",
		"warFleetSpeed": 2, "peacefulFleetSpeed": 2, "holdingFleetSpeed": 1,
		"galaxies": 6.0, "fleet2debris": 0.5, "def2debris": 0, "deutCosts": 0.5,
		"startDM": 0, "bonusFields": 25, "economySpeed": 4, "researchSpeed": 4,
		"ACS": false, "probeStorage": 1
	}`))

	require.NoError(t, err)
	assert.Equal(t, 6, u.Settings().Galaxies)
	assert.Equal(t, 4.0, u.Settings().EconomySpeed)
}

func TestParse_IgnoresUnknownFields(t *testing.T) {
	doc := helpers.UniverseDocument()
	doc["language"] = "en"

	u, err := universe.Parse(helpers.UniverseJSON(t, doc))

	require.NoError(t, err)
	assert.True(t, u.IsLoaded())
}

func TestParse_RejectsNonObject(t *testing.T) {
	for _, input := range []string{`[]`, `null`, `"universe"`, `{`} {
		_, err := universe.Parse([]byte(input))
		assert.Error(t, err, input)
	}
}

func TestParse_RejectsTrailingData(t *testing.T) {
	valid := helpers.UniverseJSON(t, helpers.UniverseDocument())

	for _, trailer := range []string{` {"oops": ]`, ` {}`, ` }`, `x`} {
		data := append(append([]byte{}, valid...), trailer...)
		_, err := universe.Parse(data)
		require.Error(t, err, trailer)
		assert.Contains(t, err.Error(), "trailing data", trailer)
	}

	_, err := universe.Parse(append(append([]byte{}, valid...), " \n\t"...))
	assert.NoError(t, err, "trailing whitespace is allowed")
}

func TestSchemaDocument_RequiresEveryField(t *testing.T) {
	doc := universe.SchemaDocument()
	assert.Equal(t, "object", doc["type"])

	required, ok := doc["required"].([]interface{})
	require.True(t, ok)
	properties, ok := doc["properties"].(map[string]interface{})
	require.True(t, ok)

	fields := universe.Schema()
	require.Len(t, required, len(fields))
	for i, field := range fields {
		assert.Equal(t, field.Name, required[i])
		prop, ok := properties[field.Name].(map[string]interface{})
		require.True(t, ok, field.Name)
		assert.Equal(t, string(field.Kind), prop["type"], field.Name)
	}
}

func TestParse_ValueConstraints(t *testing.T) {
	doc := helpers.UniverseDocument()
	doc["economySpeed"] = 0
	doc["fleet2debris"] = 1.5

	_, err := universe.Parse(helpers.UniverseJSON(t, doc))

	var validationErr *shared.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, err.Error(), "economySpeed")
	assert.Contains(t, err.Error(), "fleet2debris")
}

func TestUniverse_RoundTrip(t *testing.T) {
	doc := helpers.UniverseDocument()
	u, err := universe.Parse(helpers.UniverseJSON(t, doc))
	require.NoError(t, err)

	data, err := json.Marshal(u)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Len(t, decoded, len(universe.Schema()))
	for _, field := range universe.Schema() {
		assert.EqualValues(t, doc[field.Name], decoded[field.Name], field.Name)
	}

	again, err := universe.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, u.Settings(), again.Settings())
}

func TestUnloaded_IsUnusable(t *testing.T) {
	u := universe.Unloaded()

	assert.False(t, u.IsLoaded())
	_, err := u.EconomySpeed()
	assert.ErrorIs(t, err, shared.ErrUniverseNotLoaded)
	_, err = json.Marshal(u)
	assert.ErrorIs(t, err, shared.ErrUniverseNotLoaded)

	var zero universe.Universe
	assert.False(t, zero.IsLoaded())
}
