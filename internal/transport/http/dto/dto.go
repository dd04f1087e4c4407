// Package dto declares the validated input shapes of the API and the rule
// table each one is checked against. Binding never reaches storage: a DTO
// either comes back fully typed or with the field-level violation list.
package dto

import (
	"strconv"

	"go-user-post-api/internal/validate"
)

func asString(src map[string]any, key string) string {
	s, _ := src[key].(string)
	return s
}

func asStringPtr(src map[string]any, key string) *string {
	if v, ok := src[key]; ok && v != nil {
		if s, ok := v.(string); ok {
			return &s
		}
	}
	return nil
}

func asUint(src map[string]any, key string) uint {
	f, _ := src[key].(float64)
	return uint(f)
}

// BindIDParam validates a numeric path parameter (required numeric string)
// and converts it. The field name appears verbatim in validation errors.
func BindIDParam(field, value string) (uint, []validate.FieldError) {
	schema := validate.Schema{
		{Name: field, Constraints: []validate.Constraint{
			validate.NotEmpty(),
			validate.NumberString(),
		}},
	}
	src := validate.FromParams(map[string]string{field: value})
	if value == "" {
		delete(src, field)
	}
	if errs := schema.Validate(src); errs != nil {
		return 0, errs
	}
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, []validate.FieldError{{
			Field:   field,
			Message: map[string]string{"isNumberString": field + " must be a number string"},
		}}
	}
	return uint(n), nil
}
