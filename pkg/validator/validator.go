package validator

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateTimeLayouts are the accepted shapes of a date-time form field, most
// specific browser format first.
var DateTimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Field errors are reported under the human label of the field.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		return fld.Name
	})

	// Registration cannot fail: the tag is new and the func is non-nil.
	_ = v.RegisterValidation("datetime_local", func(fl validator.FieldLevel) bool {
		_, ok := ParseDateTime(fl.Field().String())
		return ok
	})

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FormatValidationErrors maps each failing struct field name to a message.
func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	messages := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return messages
	}

	for _, e := range validationErrors {
		field := e.Field()
		key := e.StructField()
		switch e.Tag() {
		case "required", "required_if":
			messages[key] = field + " is required"
		case "email":
			messages[key] = field + " must be a valid email address"
		case "oneof":
			messages[key] = field + " must be one of: " + strings.ReplaceAll(e.Param(), " ", ", ")
		case "datetime_local":
			messages[key] = field + " must be a valid date and time"
		case "min":
			messages[key] = field + " must be at least " + e.Param() + " characters"
		case "max":
			messages[key] = field + " must be at most " + e.Param() + " characters"
		default:
			messages[key] = field + " is invalid"
		}
	}

	return messages
}

// ParseDateTime parses value with the first matching layout.
func ParseDateTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range DateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
