package content

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/prestige/internal/bignum"
)

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("bignum", validateLiteral)
	_ = v.RegisterValidation("positive", validatePositive)
	_ = v.RegisterValidation("growth", validateGrowth)
	return v
}

func validateLiteral(fl validator.FieldLevel) bool {
	_, err := bignum.Parse(fl.Field().String())
	return err == nil
}

func validatePositive(fl validator.FieldLevel) bool {
	v, err := bignum.Parse(fl.Field().String())
	return err == nil && v.Sign() > 0
}

// Increments must exceed one so each purchase strictly raises the cost.
func validateGrowth(fl validator.FieldLevel) bool {
	v, err := bignum.Parse(fl.Field().String())
	return err == nil && v.Gt(bignum.One)
}

// formatValidationError flattens validator errors into one line per field.
func formatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := e.Namespace()
		switch e.Tag() {
		case "bignum":
			msgs = append(msgs, fmt.Sprintf("%s: %q is not a numeric literal", field, e.Value()))
		case "positive":
			msgs = append(msgs, fmt.Sprintf("%s: must be greater than zero", field))
		case "growth":
			msgs = append(msgs, fmt.Sprintf("%s: must be greater than one", field))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s: must be at least %s", field, e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s: invalid value", field))
		}
	}
	sort.Strings(msgs)
	return strings.Join(msgs, "; ")
}
