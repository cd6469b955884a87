package server

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"

	"github.com/rabitt1ove/ethiocal"
)

// requestValidator wraps go-playground validator with the locale rule
type requestValidator struct {
	validate *validator.Validate
}

// newValidator registers "known_locale", which accepts BCP 47 tags that
// match one of conv's name tables.
func newValidator(conv *ethiocal.Converter) *requestValidator {
	v := validator.New()
	mustRegister(v, "known_locale", func(fl validator.FieldLevel) bool {
		tag, err := language.Parse(fl.Field().String())
		if err != nil {
			return false
		}
		_, ok := conv.Names(tag)
		return ok
	})
	return &requestValidator{validate: v}
}

// mustRegister panics if the rule cannot be registered. Tags are constants,
// so a failure is a programming error.
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("registering %q validation: %v", tag, err))
	}
}

// Validate validates a struct
func (rv *requestValidator) Validate(i interface{}) error {
	return rv.validate.Struct(i)
}
