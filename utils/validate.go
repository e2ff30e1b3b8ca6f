package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ray-remotestate/bistro/models"
)

var validate = newValidator()

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

// DecodeAndValidate unmarshals the request body into dst and checks it against the
// schema's validate tags. Returns nil when the body is valid, otherwise the
// per-field error list for the 400 envelope.
func DecodeAndValidate(r *http.Request, dst interface{}) []models.FieldError {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			field := typeErr.Field
			if field == "" {
				field = "body"
			}
			return []models.FieldError{{
				Field: field,
				Error: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
			}}
		}
		return []models.FieldError{{Field: "body", Error: "invalid JSON body"}}
	}

	err := validate.Struct(dst)
	if err == nil {
		return nil
	}

	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return []models.FieldError{{Field: "body", Error: err.Error()}}
	}

	fieldErrs := make([]models.FieldError, 0, len(valErrs))
	for _, fe := range valErrs {
		fieldErrs = append(fieldErrs, models.FieldError{
			Field: fe.Field(),
			Error: describe(fe),
		})
	}
	return fieldErrs
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "oneof":
		return "must be one of [" + fe.Param() + "]"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
