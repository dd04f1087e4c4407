package dto

import "go-user-post-api/internal/validate"

type CreateAddress struct {
	UserID      uint
	HouseNumber string
	Street      string
	City        string
	State       string
}

// UpdateAddress carries only the fields the client supplied; nil means
// "leave unchanged".
type UpdateAddress struct {
	HouseNumber *string
	Street      *string
	City        *string
	State       *string
}

var createAddressSchema = validate.Schema{
	{Name: "userId", Constraints: []validate.Constraint{
		validate.NotEmpty(),
		validate.Number(),
	}},
	{Name: "houseNumber", Constraints: []validate.Constraint{
		validate.NotEmpty(),
		validate.String(),
	}},
	{Name: "street", Constraints: []validate.Constraint{
		validate.NotEmpty(),
		validate.String(),
	}},
	{Name: "city", Constraints: []validate.Constraint{
		validate.NotEmpty(),
		validate.String(),
	}},
	{Name: "state", Constraints: []validate.Constraint{
		validate.NotEmpty(),
		validate.String(),
	}},
}

var updateAddressSchema = validate.Schema{
	{Name: "houseNumber", Optional: true, Constraints: []validate.Constraint{validate.String()}},
	{Name: "street", Optional: true, Constraints: []validate.Constraint{validate.String()}},
	{Name: "city", Optional: true, Constraints: []validate.Constraint{validate.String()}},
	{Name: "state", Optional: true, Constraints: []validate.Constraint{validate.String()}},
}

func BindCreateAddress(body map[string]any) (*CreateAddress, []validate.FieldError) {
	if errs := createAddressSchema.Validate(body); errs != nil {
		return nil, errs
	}
	return &CreateAddress{
		UserID:      asUint(body, "userId"),
		HouseNumber: asString(body, "houseNumber"),
		Street:      asString(body, "street"),
		City:        asString(body, "city"),
		State:       asString(body, "state"),
	}, nil
}

func BindUpdateAddress(body map[string]any) (*UpdateAddress, []validate.FieldError) {
	if errs := updateAddressSchema.Validate(body); errs != nil {
		return nil, errs
	}
	return &UpdateAddress{
		HouseNumber: asStringPtr(body, "houseNumber"),
		Street:      asStringPtr(body, "street"),
		City:        asStringPtr(body, "city"),
		State:       asStringPtr(body, "state"),
	}, nil
}
