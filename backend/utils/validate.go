package utils

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New()

	// Use JSON tag names for errors instead of Go struct names.
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateStruct runs the validator and flattens failures into a
// field → message map for the 422 response body.
func ValidateStruct(s interface{}) map[string]string {
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		switch fe.Tag() {
		case "required":
			fields[fe.Field()] = "This field is required"
		case "url":
			fields[fe.Field()] = "Must be a valid URL"
		case "email":
			fields[fe.Field()] = "Must be a valid email address"
		case "oneof":
			fields[fe.Field()] = "Must be one of: " + fe.Param()
		case "min", "gte":
			fields[fe.Field()] = "Value is too small"
		case "max", "lte":
			fields[fe.Field()] = "Value is too large"
		default:
			fields[fe.Field()] = "Invalid value"
		}
	}
	return fields
}
