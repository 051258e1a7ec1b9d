package research

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/andrescamacho/ogametools-go/internal/domain/shared"
)

// Research holds a player's technology levels.
// Only Plasma currently feeds into mine production.
type Research struct {
	Energy                       int `json:"energy" yaml:"energy" validate:"min=0"`
	Laser                        int `json:"laser" yaml:"laser" validate:"min=0"`
	Ion                          int `json:"ion" yaml:"ion" validate:"min=0"`
	Hyperspace                   int `json:"hyperspace" yaml:"hyperspace" validate:"min=0"`
	Plasma                       int `json:"plasma" yaml:"plasma" validate:"min=0"`
	CombustionDrive              int `json:"combustionDrive" yaml:"combustionDrive" validate:"min=0"`
	ImpulseDrive                 int `json:"impulseDrive" yaml:"impulseDrive" validate:"min=0"`
	HyperspaceDrive              int `json:"hyperspaceDrive" yaml:"hyperspaceDrive" validate:"min=0"`
	Espionage                    int `json:"espionage" yaml:"espionage" validate:"min=0"`
	Computer                     int `json:"computer" yaml:"computer" validate:"min=0"`
	Astrophysics                 int `json:"astrophysics" yaml:"astrophysics" validate:"min=0"`
	IntergalacticResearchNetwork int `json:"intergalacticResearchNetwork" yaml:"intergalacticResearchNetwork" validate:"min=0"`
	Graviton                     int `json:"graviton" yaml:"graviton" validate:"min=0"`
	Weapons                      int `json:"weapons" yaml:"weapons" validate:"min=0"`
	Shielding                    int `json:"shielding" yaml:"shielding" validate:"min=0"`
	Armour                       int `json:"armour" yaml:"armour" validate:"min=0"`
}

// New returns a research state with every technology at level 0
func New() *Research {
	return &Research{}
}

// fieldIndex maps lower-cased JSON names to struct field indexes
var fieldIndex = buildFieldIndex()

func buildFieldIndex() map[string]int {
	t := reflect.TypeOf(Research{})
	index := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		index[strings.ToLower(t.Field(i).Tag.Get("json"))] = i
	}
	return index
}

// Names returns the technology names accepted by Level and Set, sorted
func Names() []string {
	names := make([]string, 0, len(fieldIndex))
	t := reflect.TypeOf(Research{})
	for _, i := range fieldIndex {
		names = append(names, t.Field(i).Tag.Get("json"))
	}
	sort.Strings(names)
	return names
}

// Level returns the level of the named technology
func (r *Research) Level(name string) (int, error) {
	i, ok := fieldIndex[strings.ToLower(name)]
	if !ok {
		return 0, shared.NewValidationError("research", fmt.Sprintf("unknown technology %q", name))
	}
	return int(reflect.ValueOf(r).Elem().Field(i).Int()), nil
}

// Set changes the level of the named technology
func (r *Research) Set(name string, level int) error {
	i, ok := fieldIndex[strings.ToLower(name)]
	if !ok {
		return shared.NewValidationError("research", fmt.Sprintf("unknown technology %q", name))
	}
	if level < 0 {
		return shared.NewInvalidLevelError(level)
	}
	reflect.ValueOf(r).Elem().Field(i).SetInt(int64(level))
	return nil
}

var levelValidator = validator.New()

// Validate checks that no technology level is negative
func (r *Research) Validate() error {
	err := levelValidator.Struct(r)
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
			fmt.Sprintf("level cannot be negative (value: '%v')", e.Value()),
		))
	}
	return errors.Join(errs...)
}
