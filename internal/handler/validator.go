package handler

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/prestige/internal/bignum"
	"github.com/osse101/prestige/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// InitValidator builds the shared validator with the request-specific tags.
func InitValidator() {
	v := validator.New()
	_ = v.RegisterValidation("currency", validateCurrency)
	_ = v.RegisterValidation("amount", validateAmount)
	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	validateOnce.Do(InitValidator)
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// keyed by lower-cased field name.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "currency":
			errs[field] = "Unknown currency"
		case "amount":
			errs[field] = "Must be a positive number literal such as 1e400"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}
	return errs
}

func validateCurrency(fl validator.FieldLevel) bool {
	return domain.Currency(fl.Field().String()).Valid()
}

func validateAmount(fl validator.FieldLevel) bool {
	v, err := bignum.Parse(fl.Field().String())
	return err == nil && v.Sign() > 0
}
