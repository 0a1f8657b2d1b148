package validator

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/go-playground/validator/v10"
	"github.com/ttacon/libphonenumber"
)

var ErrInvalidPhone = errors.New("invalid phone number")

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = validator.New()

var defaultRegion atomic.Value

func init() {
	defaultRegion.Store("IN")

	// phone accepts anything libphonenumber considers a valid number in the default region
	validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		_, err := NormalizePhone(fl.Field().String(), DefaultRegion())
		return err == nil
	})
}

// SetDefaultRegion sets the ISO 3166 region used for numbers written without
// a country code.
func SetDefaultRegion(region string) {
	defaultRegion.Store(region)
}

func DefaultRegion() string {
	return defaultRegion.Load().(string)
}

func ValidateStruct(data interface{}) []*ErrorResponse {
	var errs []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			return []*ErrorResponse{{FailedField: "", Tag: "struct", Value: err.Error()}}
		}
		for _, err := range validationErrs {
			var element ErrorResponse
			element.FailedField = err.StructNamespace()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errs = append(errs, &element)
		}
	}
	return errs
}

// Message renders the first validation failure for an API error body.
func Message(errs []*ErrorResponse) string {
	if len(errs) == 0 {
		return ""
	}
	return fmt.Sprintf("Validation failed: Field '%s' failed on tag '%s'", errs[0].FailedField, errs[0].Tag)
}

// NormalizePhone parses phone in region and returns it in international
// format, e.g. "+91 98765 43210".
func NormalizePhone(phone, region string) (string, error) {
	num, err := libphonenumber.Parse(phone, region)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidPhone, err)
	}
	if !libphonenumber.IsValidNumber(num) {
		return "", ErrInvalidPhone
	}
	return libphonenumber.Format(num, libphonenumber.INTERNATIONAL), nil
}
