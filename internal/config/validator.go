package config

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their environment variable name
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		if name := field.Tag.Get("env"); name != "" {
			return name
		}
		return field.Name
	})
	return v
}

// Validate checks cfg against its struct tags and reports every invalid variable
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	problems := FormatValidationError(validationErrors)
	lines := make([]string, 0, len(problems))
	for name, problem := range problems {
		lines = append(lines, fmt.Sprintf("%s %s", name, problem))
	}
	sort.Strings(lines)
	return fmt.Errorf("invalid configuration: %s", strings.Join(lines, "; "))
}

// FormatValidationError maps each failing variable to a readable problem
func FormatValidationError(errs validator.ValidationErrors) map[string]string {
	problems := make(map[string]string, len(errs))
	for _, e := range errs {
		switch e.Tag() {
		case "required":
			problems[e.Field()] = "must be set"
		case "oneof":
			problems[e.Field()] = fmt.Sprintf("must be one of [%s]", e.Param())
		case "min", "gte":
			problems[e.Field()] = fmt.Sprintf("must be at least %s", e.Param())
		case "max", "lte":
			problems[e.Field()] = fmt.Sprintf("must be at most %s", e.Param())
		case "file":
			problems[e.Field()] = "must name an existing file"
		default:
			problems[e.Field()] = "is invalid"
		}
	}
	return problems
}
