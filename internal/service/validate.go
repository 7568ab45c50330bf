package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Shared date and time layouts of the persisted records.
const (
	dateLayout      = "2006-01-02"
	clockLayout     = "15:04"
	timestampLayout = "2006-01-02 15:04:05"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// checkInput validates a service input struct against its tags and turns
// the first violation into a display-ready Validation error.
func checkInput(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return Validationf("%s", describe(verrs[0]))
	}
	return Validationf("invalid input")
}

// describe renders one field violation as a plain sentence fragment.
func describe(fe validator.FieldError) string {
	field := fieldName(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(strings.Fields(fe.Param()), ", "))
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
	case "numeric":
		return field + " must contain digits only"
	case "email":
		return field + " must be a valid email address"
	case "datetime":
		return fmt.Sprintf("%s must use the %s format", field, layoutName(fe.Param()))
	default:
		return field + " is invalid"
	}
}

// fieldName turns a Go field name into a lower-case label for messages,
// e.g. StudentInfoID -> "student info id".
func fieldName(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if i > 0 && r >= 'A' && r <= 'Z' && runes[i-1] >= 'a' && runes[i-1] <= 'z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

// layoutName maps Go reference layouts to the names users recognize.
func layoutName(layout string) string {
	switch layout {
	case dateLayout:
		return "YYYY-MM-DD"
	case clockLayout:
		return "HH:MM"
	case timestampLayout:
		return "YYYY-MM-DD HH:MM:SS"
	default:
		return layout
	}
}
