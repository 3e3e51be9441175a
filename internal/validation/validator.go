package validation

import (
	"reflect"
	"regexp"
	"strings"

	"granazap/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("spending_category", validateSpendingCategory)
	_ = v.RegisterValidation("limit_amount", validateLimitAmount)
	_ = v.RegisterValidation("br_phone", validateBRPhone)
	_ = v.RegisterValidation("date_only", validateDateOnly)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateSpendingCategory validates that a category belongs to the closed category set
func validateSpendingCategory(fl validator.FieldLevel) bool {
	return models.IsValidCategory(fl.Field().String())
}

// validateLimitAmount validates a limit draft value: digits with at most one
// decimal separator, e.g. "350" or "350.50". Empty is allowed; an empty draft
// means no limit for that category.
func validateLimitAmount(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	matched, _ := regexp.MatchString(`^\d+(\.\d+)?$`, value)
	return matched
}

// validateBRPhone validates a Brazilian phone in local form: digits only after
// stripping formatting, long enough to carry area code plus number
func validateBRPhone(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	if phone == "" {
		return false
	}

	digits := regexp.MustCompile(`\D`).ReplaceAllString(phone, "")
	return len(digits) >= 10 && len(digits) <= 13
}

// validateDateOnly validates a calendar date in YYYY-MM-DD form
func validateDateOnly(fl validator.FieldLevel) bool {
	matched, _ := regexp.MatchString(`^\d{4}-\d{2}-\d{2}$`, fl.Field().String())
	return matched
}
