package validate

import "regexp"

// Constraint names and message texts follow the class-validator wire format
// clients of this API already parse.

var (
	emailRe     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)
	numStringRe = regexp.MustCompile(`^[0-9]+$`)
)

func NotEmpty() Constraint {
	return Constraint{
		Name: "isNotEmpty",
		Check: func(v any, present bool) bool {
			if !present {
				return false
			}
			s, isStr := v.(string)
			return !isStr || s != ""
		},
		Message: func(field string) string { return field + " should not be empty" },
	}
}

func String() Constraint {
	return Constraint{
		Name: "isString",
		Check: func(v any, present bool) bool {
			if !present {
				return false
			}
			_, ok := v.(string)
			return ok
		},
		Message: func(field string) string { return field + " must be a string" },
	}
}

// Number accepts JSON numbers. encoding/json decodes every number into
// float64, so that is the only shape checked on body input.
func Number() Constraint {
	return Constraint{
		Name: "isNumber",
		Check: func(v any, present bool) bool {
			if !present {
				return false
			}
			_, ok := v.(float64)
			return ok
		},
		Message: func(field string) string {
			return field + " must be a number conforming to the specified constraints"
		},
	}
}

// NumberString accepts strings of decimal digits, the shape of numeric path
// parameters.
func NumberString() Constraint {
	return Constraint{
		Name: "isNumberString",
		Check: func(v any, present bool) bool {
			if !present {
				return false
			}
			s, ok := v.(string)
			return ok && numStringRe.MatchString(s)
		},
		Message: func(field string) string { return field + " must be a number string" },
	}
}

func Email() Constraint {
	return Constraint{
		Name: "isEmail",
		Check: func(v any, present bool) bool {
			if !present {
				return false
			}
			s, ok := v.(string)
			return ok && emailRe.MatchString(s)
		},
		Message: func(field string) string { return field + " must be an email" },
	}
}
