package models

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate checks a model or request struct against its validate tags.
func Validate(v interface{}) error {
	return validate.Struct(v)
}
