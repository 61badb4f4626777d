package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// bcrypt rejects longer passwords.
const maxPasswordBytes = 72

var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ()\-]*$`)

var validate = newValidator()

// Errors collects every field violation of a single request.
type Errors struct {
	Messages []string
}

func (e *Errors) Error() string {
	return strings.Join(e.Messages, "; ")
}

// New builds an Errors value from ready-made messages.
func New(messages ...string) *Errors {
	return &Errors{Messages: messages}
}

// Normalizer is implemented by request types that clean their fields before validation.
type Normalizer interface {
	Normalize()
}

// Struct normalizes req when it supports it and checks its validate tags.
// A failing request yields *Errors holding one message per violated field.
func Struct(req any) error {
	if n, ok := req.(Normalizer); ok {
		n.Normalize()
	}

	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate request: %w", err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, message(fe))
	}
	return &Errors{Messages: messages}
}

// PathID parses a positive numeric path parameter.
func PathID(name, raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, New(name + " must be a positive number")
	}
	return uint(id), nil
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})

	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("bcryptlen", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= maxPasswordBytes
	})

	return v
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "email":
		return field + " must be a valid email address"
	case "phone":
		return field + " must be a valid phone number"
	case "bcryptlen":
		return fmt.Sprintf("%s must be at most %d bytes", field, maxPasswordBytes)
	default:
		return field + " is invalid"
	}
}
