// Package validator adapts go-playground/validator to echo and registers the
// tags used by the request bodies of this API.
package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"apparel/internal/domain/entity"
	domainerrors "apparel/internal/domain/errors"
	"apparel/internal/errors"

	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ()-]{5,19}$`)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator with the apparel_size and phone tags registered.
// Field errors are reported under their JSON names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return lowerCamel(field.Name)
		}

		return name
	})

	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("apparel_size", func(fl validator.FieldLevel) bool {
		return entity.Size(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	return &Validator{validate: v}
}

// Validate checks i and returns ErrValidationFailed listing every failed field.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	details := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		details = append(details, describe(fieldError))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}

func describe(fieldError validator.FieldError) string {
	field := fieldError.Field()
	switch fieldError.Tag() {
	case "required", "required_without", "required_if":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid e-mail address", field)
	case "phone":
		return fmt.Sprintf("%s must be a valid phone number", field)
	case "apparel_size":
		return fmt.Sprintf("%s must be one of S, M, L, XL or XXL", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fieldError.Param())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fieldError.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, fieldError.Param())
	case "eqfield":
		return fmt.Sprintf("%s must match %s", field, lowerCamel(fieldError.Param()))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func lowerCamel(field string) string {
	if field == "" {
		return field
	}

	return strings.ToLower(field[:1]) + field[1:]
}
