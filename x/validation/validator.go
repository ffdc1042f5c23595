// Package validation plugs struct-tag validation into echo
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/totegamma/charsheet/core"
)

// Validator implements echo.Validator
type Validator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their json name
// and knows the domain tags "alignment", "hitdie", "itemcategory" and "spellschool"
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	_ = v.RegisterValidation("alignment", func(fl validator.FieldLevel) bool {
		return core.Alignment(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("hitdie", func(fl validator.FieldLevel) bool {
		return core.HitDie(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("itemcategory", func(fl validator.FieldLevel) bool {
		return core.ItemCategory(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("spellschool", func(fl validator.FieldLevel) bool {
		return core.SpellSchool(fl.Field().String()).Valid()
	})

	return &Validator{validate: v}
}

// Validate satisfies echo.Validator
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// Details flattens a validation error into per-field entries.
// ok is false when err did not come from the validator.
func Details(err error) (details []core.ErrorDetail, ok bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	details = make([]core.ErrorDetail, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, core.ErrorDetail{
			Field: fieldPath(fe.Namespace()),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return details, true
}

// fieldPath drops the root struct name: "createRequest.abilityScores.dexterity" -> "abilityScores.dexterity"
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
