package universe

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/andrescamacho/ogametools-go/internal/domain/shared"
)

// Universe is an immutable, loaded universe ruleset.
//
// The zero value is the unloaded state: it carries no settings and must not
// be used to compute production.
type Universe struct {
	settings Settings
	loaded   bool
	source   string
}

// Unloaded returns a universe in the explicit unloaded state
func Unloaded() *Universe {
	return &Universe{}
}

// New creates a loaded universe from already validated settings.
// Value constraints are still checked.
func New(settings Settings) (*Universe, error) {
	if err := validateValues(&settings); err != nil {
		return nil, err
	}
	return &Universe{settings: settings, loaded: true}, nil
}

// Load reads and validates a universe JSON document from disk
func Load(path string) (*Universe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read universe file: %w", err)
	}

	u, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid universe file %s: %w", path, err)
	}
	u.source = path
	return u, nil
}

// Parse validates a universe JSON document against the universe JSON Schema,
// then checks value ranges. Every missing or mistyped field is reported and
// nothing is returned on failure. Data after the document is rejected.
func Parse(data []byte) (*Universe, error) {
	doc, err := decodeDocument(data)
	if err != nil {
		return nil, err
	}
	if err := checkSchema(doc); err != nil {
		return nil, err
	}
	return New(assignFields(doc))
}

// IsLoaded reports whether the universe holds validated settings
func (u *Universe) IsLoaded() bool {
	return u != nil && u.loaded
}

// Settings returns a copy of the ruleset
func (u *Universe) Settings() Settings {
	return u.settings
}

// Source returns the file the universe was loaded from, if any
func (u *Universe) Source() string {
	return u.source
}

// EconomySpeed returns the production speed multiplier, or ErrUniverseNotLoaded
func (u *Universe) EconomySpeed() (float64, error) {
	if !u.IsLoaded() {
		return 0, shared.ErrUniverseNotLoaded
	}
	return u.settings.EconomySpeed, nil
}

// MarshalJSON emits exactly the schema fields
func (u *Universe) MarshalJSON() ([]byte, error) {
	if !u.IsLoaded() {
		return nil, shared.ErrUniverseNotLoaded
	}
	return json.Marshal(u.settings)
}

func (u *Universe) String() string {
	if !u.IsLoaded() {
		return "Universe(unloaded)"
	}
	return fmt.Sprintf("Universe(%s, economy x%g)", u.settings.Name, u.settings.EconomySpeed)
}

var valueValidator = newValueValidator()

func newValueValidator() *validator.Validate {
	v := validator.New()
	// Report JSON names so errors match the document
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validateValues(s *Settings) error {
	err := valueValidator.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	errs := make([]error, 0, len(validationErrs))
	for _, e := range validationErrs {
		errs = append(errs, shared.NewValidationError(
			e.Field(),
			fmt.Sprintf("failed validation: %s=%s (value: '%v')", e.Tag(), e.Param(), e.Value()),
		))
	}
	return errors.Join(errs...)
}
