package models

import (
	"errors"
	"reflect"
	"strings"

	"github.com/campuslink/campuslink/backend/go-services/internal/apperror"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report json names so errors match what clients sent
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Prepare applies field defaults to rec and validates it. A failure is an
// apperror validation error listing every offending field.
func Prepare(rec Record) error {
	if rec == nil || reflect.ValueOf(rec).IsNil() {
		return apperror.InvalidField("record", "required")
	}
	if d, ok := rec.(defaulter); ok {
		d.applyDefaults()
	}
	err := validate.Struct(rec)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.InvalidField("record", err.Error())
	}
	fields := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		fields = append(fields, apperror.FieldError{Field: fe.Field(), Rule: rule})
	}
	return apperror.Validation(fields...)
}
