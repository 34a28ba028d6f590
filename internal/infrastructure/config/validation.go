package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator checks a loaded Config against its struct tags and the game's
// own rules.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator with the focus_sum rule registered
func NewValidator() *Validator {
	v := validator.New()

	// Struct level so the rule sees all three parts at once
	v.RegisterStructValidation(validateFocusSum, FocusConfig{})

	return &Validator{validate: v}
}

func validateFocusSum(sl validator.StructLevel) {
	focus := sl.Current().Interface().(FocusConfig)
	if focus.Sum() != 100 {
		sl.ReportError(focus.Sum(), "StartingFocus", "StartingFocus", "focus_sum", "100")
	}
}

// Validate validates a struct using validation tags
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError lists every failing field with the rule it broke
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	messages := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		messages = append(messages, fmt.Sprintf("%s: %s [%s] (value: '%v')",
			strings.TrimPrefix(e.Namespace(), "Config."), explain(e), e.Tag(), e.Value()))
	}
	return fmt.Errorf("invalid configuration:\n  %s", strings.Join(messages, "\n  "))
}

func explain(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(e.Param(), " ", ", ")
	case "min":
		return "must be at least " + e.Param()
	case "max":
		return "must be at most " + e.Param()
	case "focus_sum":
		return "performance, sound capture and layering must add up to " + e.Param()
	default:
		return "failed " + e.Tag()
	}
}

// ValidateConfig validates the entire configuration
func ValidateConfig(cfg *Config) error {
	return NewValidator().Validate(cfg)
}
