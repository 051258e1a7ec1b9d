package universe

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"

	"github.com/andrescamacho/ogametools-go/internal/domain/shared"
)

// FieldKind is the JSON Schema type a universe field must have
type FieldKind string

const (
	KindString  FieldKind = "string"
	KindNumber  FieldKind = "number"
	KindInteger FieldKind = "integer"
	KindBoolean FieldKind = "boolean"
)

// Field describes one required entry of the universe document
type Field struct {
	Name   string
	Kind   FieldKind
	assign func(s *Settings, value json.Number)
}

var schema = []Field{
	{"name", KindString, nil},
	{"galaxy", KindString, nil},
	{"system", KindString, nil},
	{"warFleetSpeed", KindNumber, func(s *Settings, v json.Number) { s.WarFleetSpeed = toFloat(v) }},
	{"peacefulFleetSpeed", KindNumber, func(s *Settings, v json.Number) { s.PeacefulFleetSpeed = toFloat(v) }},
	{"holdingFleetSpeed", KindNumber, func(s *Settings, v json.Number) { s.HoldingFleetSpeed = toFloat(v) }},
	{"galaxies", KindInteger, func(s *Settings, v json.Number) { s.Galaxies = toInt(v) }},
	{"fleet2debris", KindNumber, func(s *Settings, v json.Number) { s.Fleet2Debris = toFloat(v) }},
	{"def2debris", KindNumber, func(s *Settings, v json.Number) { s.Def2Debris = toFloat(v) }},
	{"deutCosts", KindNumber, func(s *Settings, v json.Number) { s.DeutCosts = toFloat(v) }},
	{"startDM", KindInteger, func(s *Settings, v json.Number) { s.StartDM = toInt(v) }},
	{"bonusFields", KindInteger, func(s *Settings, v json.Number) { s.BonusFields = toInt(v) }},
	{"economySpeed", KindNumber, func(s *Settings, v json.Number) { s.EconomySpeed = toFloat(v) }},
	{"researchSpeed", KindNumber, func(s *Settings, v json.Number) { s.ResearchSpeed = toFloat(v) }},
	{"ACS", KindBoolean, nil},
	{"probeStorage", KindInteger, func(s *Settings, v json.Number) { s.ProbeStorage = toInt(v) }},
}

// Schema returns the required universe fields in document order
func Schema() []Field {
	fields := make([]Field, len(schema))
	copy(fields, schema)
	return fields
}

// SchemaDocument returns the universe JSON Schema built from the field table
func SchemaDocument() map[string]interface{} {
	required := make([]interface{}, 0, len(schema))
	properties := make(map[string]interface{}, len(schema))
	for _, f := range schema {
		required = append(required, f.Name)
		properties[f.Name] = map[string]interface{}{"type": string(f.Kind)}
	}
	return map[string]interface{}{
		"$schema":    "https://json-schema.org/draft/2020-12/schema",
		"title":      "OGame universe settings",
		"type":       "object",
		"required":   required,
		"properties": properties,
	}
}

const schemaURL = "https://ogametools.local/universe.schema.json"

var compiledSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, SchemaDocument()); err != nil {
		panic(fmt.Sprintf("universe schema: %v", err))
	}
	sch, err := c.Compile(schemaURL)
	if err != nil {
		panic(fmt.Sprintf("universe schema: %v", err))
	}
	return sch
}

// decodeDocument decodes exactly one JSON object, numbers kept as json.Number
func decodeDocument(data []byte) (map[string]interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("universe document is not valid JSON: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("universe document has trailing data after offset %d", dec.InputOffset())
	}

	obj, ok := doc.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("universe document must be a JSON object, got %s", jsonTypeName(doc))
	}
	return obj, nil
}

// checkSchema validates doc against the universe schema and converts every
// violation into a SchemaValidationError, in schema order
func checkSchema(doc map[string]interface{}) error {
	err := compiledSchema.Validate(doc)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("universe schema: %w", err)
	}

	kinds := make(map[string]FieldKind, len(schema))
	order := make(map[string]int, len(schema))
	for i, f := range schema {
		kinds[f.Name] = f.Kind
		order[f.Name] = i
	}

	found := make(map[string]*shared.SchemaValidationError)
	var other []error
	for _, leaf := range leaves(ve) {
		if len(leaf.InstanceLocation) > 0 {
			name := leaf.InstanceLocation[0]
			if _, known := kinds[name]; known {
				found[name] = shared.NewMistypedFieldError(name, string(kinds[name]), jsonTypeName(doc[name]))
				continue
			}
		}
		if required, ok := leaf.ErrorKind.(*kind.Required); ok {
			for _, name := range required.Missing {
				found[name] = shared.NewMissingFieldError(name, string(kinds[name]))
			}
			continue
		}
		other = append(other, fmt.Errorf("universe schema: %s", leaf.Error()))
	}

	names := make([]string, 0, len(found))
	for name := range found {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return order[names[i]] < order[names[j]] })

	errs := make([]error, 0, len(names)+len(other))
	for _, name := range names {
		errs = append(errs, found[name])
	}
	return errors.Join(append(errs, other...)...)
}

func leaves(e *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(e.Causes) == 0 {
		return []*jsonschema.ValidationError{e}
	}
	var out []*jsonschema.ValidationError
	for _, c := range e.Causes {
		out = append(out, leaves(c)...)
	}
	return out
}

// assignFields copies a schema-valid document into settings
func assignFields(doc map[string]interface{}) Settings {
	var s Settings
	s.Name, _ = doc["name"].(string)
	s.Galaxy, _ = doc["galaxy"].(string)
	s.System, _ = doc["system"].(string)
	s.ACS, _ = doc["ACS"].(bool)

	for _, f := range schema {
		if f.assign == nil {
			continue
		}
		if n, ok := doc[f.Name].(json.Number); ok {
			f.assign(&s, n)
		}
	}
	return s
}

func toFloat(n json.Number) float64 {
	v, _ := n.Float64()
	return v
}

// toInt accepts 3 and 3.0; the schema already rejected fractions
func toInt(n json.Number) int {
	if v, err := n.Int64(); err == nil {
		return int(v)
	}
	v, _ := n.Float64()
	return int(v)
}

func jsonTypeName(raw interface{}) string {
	switch v := raw.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		if _, err := v.Int64(); err == nil {
			return "integer"
		}
		return "number"
	case map[string]interface{}:
		return "object"
	case []interface{}:
		return "array"
	default:
		return "unknown"
	}
}
