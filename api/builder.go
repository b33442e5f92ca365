package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their query or path name rather than the Go name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"param", "json"} {
			name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(interface{ Valid() bool })
		return !ok || e.Valid()
	})
	return v
}

// InvalidFieldError is returned by endpoint builders when a field holds a
// value outside its closed vocabulary.
type InvalidFieldError struct {
	Endpoint string
	Field    string
	Value    any
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("%s: invalid value %q for `%s`", e.Endpoint, fmt.Sprint(e.Value), e.Field)
}

// CheckFields validates a builder's field set. fields must be a pointer to
// a struct whose required fields are pointers tagged `validate:"required"`.
// The first failing field in declaration order is reported.
func CheckFields(endpoint string, fields any) error {
	err := validate.Struct(fields)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("api: %s: %w", endpoint, err)
	}

	fe := verrs[0]
	if fe.Tag() == "required" {
		return &MissingFieldError{Endpoint: endpoint, Field: fe.Field()}
	}
	return &InvalidFieldError{Endpoint: endpoint, Field: fe.Field(), Value: fe.Value()}
}

// validateShape runs `validate` tags on a decoded response. Values that hold
// no structs are accepted as is.
func validateShape(v any) error {
	return validateValue(reflect.ValueOf(v))
}

func validateValue(rv reflect.Value) error {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		if !rv.CanInterface() {
			return nil
		}
		return validate.Struct(rv.Interface())
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if err := validateValue(rv.Index(i)); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
	}
	return nil
}
