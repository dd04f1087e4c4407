package dto

import "go-user-post-api/internal/validate"

type CreatePost struct {
	Title  string
	Body   string
	UserID uint
}

var createPostSchema = validate.Schema{
	{Name: "title", Constraints: []validate.Constraint{
		validate.NotEmpty(),
		validate.String(),
	}},
	{Name: "body", Constraints: []validate.Constraint{
		validate.NotEmpty(),
		validate.String(),
	}},
	{Name: "userId", Constraints: []validate.Constraint{
		validate.NotEmpty(),
		validate.Number(),
	}},
}

func BindCreatePost(body map[string]any) (*CreatePost, []validate.FieldError) {
	if errs := createPostSchema.Validate(body); errs != nil {
		return nil, errs
	}
	return &CreatePost{
		Title:  asString(body, "title"),
		Body:   asString(body, "body"),
		UserID: asUint(body, "userId"),
	}, nil
}
