package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/harjas-romana/cs-projects-api/internal/projects/domain"
)

func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// Report violations under the wire field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("proglang", func(fl validator.FieldLevel) bool {
		return domain.Language(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("difficulty", func(fl validator.FieldLevel) bool {
		return domain.Difficulty(fl.Field().String()).Valid()
	})
}

// fieldErrors translates a binding failure into a field → reason map.
// Non-validator errors (malformed JSON, wrong types) get a single
// body-level entry.
func fieldErrors(err error) map[string]string {
	out := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["body"] = "invalid request body"
		return out
	}

	for _, fe := range verrs {
		out[fe.Field()] = fieldReason(fe)
	}
	return out
}

func fieldReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "proglang":
		return fmt.Sprintf("must be one of: %v", domain.Languages())
	case "difficulty":
		return fmt.Sprintf("must be one of: %v", domain.Difficulties())
	default:
		return fmt.Sprintf("failed on the %q constraint", fe.Tag())
	}
}
