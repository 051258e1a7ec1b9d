package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/andrescamacho/ogametools-go/internal/domain/player"
)

// Validator is a wrapper around go-playground/validator
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator with the config-specific rules registered
func NewValidator() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("playerclass", validatePlayerClass)

	return &Validator{
		validate: v,
	}
}

// validatePlayerClass accepts an empty class or one of the known class tags
func validatePlayerClass(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", player.ClassCollector, player.ClassGeneral, player.ClassDiscoverer:
		return true
	default:
		return false
	}
}

// Validate validates a struct using validation tags
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return v.formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors into readable messages,
// one line per failing field, keyed by the dotted path below Config
func (v *Validator) formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	messages := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		field := strings.TrimPrefix(e.Namespace(), "Config.")
		messages = append(messages, fmt.Sprintf(
			"field '%s' failed validation: %s (value: '%v')",
			field,
			e.Tag(),
			e.Value(),
		))
	}
	return fmt.Errorf("validation failed:\n  %s", strings.Join(messages, "\n  "))
}

// ValidateConfig validates the entire configuration
func ValidateConfig(cfg *Config) error {
	v := NewValidator()
	return v.Validate(cfg)
}
