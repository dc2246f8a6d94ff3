package resource

import (
	"errors"
	"reflect"
	"strings"

	"travel-booking/types"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their JSON names so errors match the request body
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks a request struct and flattens any failures into field errors
func Validate(req interface{}) []types.FieldError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []types.FieldError{{Field: "", Rule: err.Error()}}
	}
	out := make([]types.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, types.FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}
