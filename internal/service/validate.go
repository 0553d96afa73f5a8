package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/GlitchedDuck/Manager-hub/internal/apperr"
	"github.com/GlitchedDuck/Manager-hub/internal/model"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// report JSON names so messages match the payload the caller sent
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// enum=<set> checks membership in model.Enums[set]
	if err := validate.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		return model.InEnum(fl.Param(), fl.Field().String())
	}); err != nil {
		panic(err)
	}
}

// validateStruct runs the struct tags and converts failures into joined
// *apperr.ValidationError values, one per field.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, apperr.Validation(fieldName(fe), fieldMessage(fe)))
	}
	return errors.Join(errs...)
}

// fieldName drops the top-level struct name from the namespace, keeping
// element indexes such as tags[1].
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	param := fe.Param()
	switch fe.Tag() {
	case "required":
		return "is required"
	case "enum":
		return fmt.Sprintf("must be one of [%s]", strings.Join(model.Enums[param], ", "))
	case "min", "gte":
		return fmt.Sprintf("must be at least %s", param)
	case "max", "lte":
		return fmt.Sprintf("must be at most %s", param)
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", param)
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
