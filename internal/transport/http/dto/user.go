package dto

import "go-user-post-api/internal/validate"

type CreateUser struct {
	Firstname string
	Lastname  string
	Email     string
}

var createUserSchema = validate.Schema{
	{Name: "firstname", Constraints: []validate.Constraint{validate.NotEmpty()}},
	{Name: "lastname", Constraints: []validate.Constraint{validate.NotEmpty()}},
	{Name: "email", Constraints: []validate.Constraint{
		validate.NotEmpty(),
		validate.Email(),
	}},
}

func BindCreateUser(body map[string]any) (*CreateUser, []validate.FieldError) {
	if errs := createUserSchema.Validate(body); errs != nil {
		return nil, errs
	}
	return &CreateUser{
		Firstname: asString(body, "firstname"),
		Lastname:  asString(body, "lastname"),
		Email:     asString(body, "email"),
	}, nil
}
