package api

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/dmitrijs2005/usermanager/internal/common"
	"github.com/go-playground/validator/v10"
)

var personNameRe = regexp.MustCompile(`^[a-zA-Zа-яА-ЯёЁ]+$`)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// engine returns the shared validator. It reads the same `binding` tags gin
// uses, and reports fields by their JSON names.
func engine() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.SetTagName("binding")
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		if err := v.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
			return personNameRe.MatchString(fl.Field().String())
		}); err != nil {
			panic(err)
		}
		validate = v
	})
	return validate
}

// Engine exposes the shared validator so gin binding can use it.
func Engine() *validator.Validate {
	return engine()
}

// Validate checks a request struct. Failures wrap common.ErrorValidation and
// name the offending fields.
func Validate(req any) error {
	err := engine().Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", common.ErrorValidation, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", common.ErrorValidation, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "alphanum":
		return fmt.Sprintf("%s must contain only latin letters and digits", fe.Field())
	case "personname":
		return fmt.Sprintf("%s must contain only latin or cyrillic letters", fe.Field())
	case "min", "max":
		return fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date in %s format", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
	}
}
