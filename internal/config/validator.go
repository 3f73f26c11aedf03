package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators registers accord-specific validation rules.
// Must be called before validating Config.
func RegisterCustomValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("build_mode", validateBuildMode); err != nil {
		return fmt.Errorf("failed to register build_mode validator: %w", err)
	}
	return nil
}

// validateBuildMode validates the build_mode field. Valid values: "strict"
// or "lenient" (spec.md §4.5, §7).
func validateBuildMode(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "strict", "lenient":
		return true
	default:
		return false
	}
}

// Validate validates the Config using struct tags and registered custom
// rules. Returns an error with actionable messages.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := RegisterCustomValidators(v); err != nil {
		return err
	}
	if err := v.Struct(c); err != nil {
		return formatValidationErrors(err)
	}
	if c.Input.Constraints == "" {
		return errors.New("input.constraints is required")
	}
	if c.Input.Events == "" {
		return errors.New("input.events is required")
	}
	return nil
}

// formatValidationErrors converts validator.ValidationErrors to
// user-friendly messages.
func formatValidationErrors(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, e := range validationErrors {
			messages = append(messages, formatSingleValidationError(e))
		}
		return errors.New(strings.Join(messages, "; "))
	}
	return err
}

// formatSingleValidationError creates a user-friendly message for a single
// validation error.
func formatSingleValidationError(e validator.FieldError) string {
	field := e.Namespace()
	tag := e.Tag()

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gte":
		return fmt.Sprintf("%s must be >= %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "hostname_port":
		return fmt.Sprintf("%s must be a valid host:port", field)
	case "build_mode":
		return fmt.Sprintf("%s must be 'strict' or 'lenient'", field)
	default:
		return fmt.Sprintf("%s failed validation: %s", field, tag)
	}
}
