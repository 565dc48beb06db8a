package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors flattens gin's binding error into per-field messages keyed by
// the JSON-ish snake_case field name. Non-validator errors produce an empty
// map; callers fall back to a generic payload message then.
func FieldErrors(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fieldError := range validationErrors {
		name := snakeCase(fieldError.Field())
		fields[name] = fieldMessage(name, fieldError)
	}
	return fields
}

func fieldMessage(name string, fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", name)
	case "required_with":
		return fmt.Sprintf("The %s field is required with %s", name, snakeCase(fieldError.Param()))
	case "email":
		return fmt.Sprintf("The %s must be a valid email address", name)
	case "max":
		return fmt.Sprintf("The %s may not be greater than %s characters", name, fieldError.Param())
	case "min":
		return fmt.Sprintf("The %s must be at least %s characters", name, fieldError.Param())
	case "oneof":
		return fmt.Sprintf("The %s must be one of: %s", name, strings.ReplaceAll(fieldError.Param(), " ", ", "))
	case "datetime":
		return fmt.Sprintf("The %s must be a date in %s format", name, fieldError.Param())
	case "gt":
		return fmt.Sprintf("The %s must be greater than %s", name, fieldError.Param())
	}
	return fmt.Sprintf("The %s field is invalid", name)
}

func snakeCase(name string) string {
	var b strings.Builder
	prevUpper := true
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			// Runs of capitals (CategoryID) collapse into one word.
			if !prevUpper {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			prevUpper = true
			continue
		}
		b.WriteRune(r)
		prevUpper = false
	}
	return b.String()
}
