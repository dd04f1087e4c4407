// Package validate evaluates declarative per-field rule tables against raw
// request input (a decoded JSON body, or path/query parameters promoted to
// an object). It is pure: it never touches storage and never panics on any
// input shape.
package validate

// Constraint is a single named predicate on one field value. present is
// false when the key is absent from the source or its value is JSON null.
type Constraint struct {
	Name    string
	Check   func(v any, present bool) bool
	Message func(field string) string
}

// Field binds a field name to an ordered constraint list. Optional fields
// skip all constraints when absent.
type Field struct {
	Name        string
	Optional    bool
	Constraints []Constraint
}

// Schema is the ordered rule table for one DTO.
type Schema []Field

// FieldError collects every violated constraint for one field, keyed by
// constraint name.
type FieldError struct {
	Field   string            `json:"field"`
	Message map[string]string `json:"message"`
}

// Validate runs the schema against src and returns one FieldError per
// failing field, in schema order. A nil return means the input is valid.
func (s Schema) Validate(src map[string]any) []FieldError {
	var errs []FieldError
	for _, f := range s {
		v, ok := src[f.Name]
		present := ok && v != nil
		if f.Optional && !present {
			continue
		}
		var violations map[string]string
		for _, c := range f.Constraints {
			if c.Check(v, present) {
				continue
			}
			if violations == nil {
				violations = make(map[string]string)
			}
			violations[c.Name] = c.Message(f.Name)
		}
		if violations != nil {
			errs = append(errs, FieldError{Field: f.Name, Message: violations})
		}
	}
	return errs
}

// FromParams promotes a string map (path or query parameters) into the
// object shape Validate expects. Empty strings stay present; missing keys
// do not.
func FromParams(params map[string]string) map[string]any {
	src := make(map[string]any, len(params))
	for k, v := range params {
		src[k] = v
	}
	return src
}
