package validator

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	playground "github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	structValidator *playground.Validate
	structOnce      sync.Once
)

func engine() *playground.Validate {
	structOnce.Do(func() {
		v := playground.New(playground.WithRequiredStructEnabled())
		// Report json names so details line up with request bodies.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		structValidator = v
	})
	return structValidator
}

// Struct runs the `validate` tags of s and converts failures into
// ValidationErrors keyed by json field name.
func Struct(s interface{}) ValidationErrors {
	err := engine().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return ValidationErrors{{Field: "body", Message: "invalid input"}}
	}

	errs := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, ValidationError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return errs
}

func humanize(field string) string {
	caser := cases.Title(language.English)
	return caser.String(strings.ReplaceAll(field, "_", " "))
}

func messageFor(fe playground.FieldError) string {
	name := humanize(fe.Field())
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "min":
		if fe.Kind() == reflect.String {
			return name + " must be at least " + fe.Param() + " characters long"
		}
		return name + " must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return name + " must not exceed " + fe.Param() + " characters"
		}
		return name + " must not exceed " + fe.Param()
	case "gt":
		return name + " must be greater than " + fe.Param()
	case "gte":
		return name + " must be greater than or equal to " + fe.Param()
	case "lte":
		return name + " must be less than or equal to " + fe.Param()
	case "oneof":
		return name + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "email":
		return name + " must be a valid email address"
	case "eqfield":
		return name + " must match " + humanize(toSnake(fe.Param()))
	default:
		return name + " is invalid"
	}
}

// toSnake converts a Go field name such as NewPassword to new_password.
func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
