package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Phone: optional +, then digits/spaces/dashes/parens, 7-20 chars total
	phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 ()-]{5,18}[0-9)]$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_phone", ValidPhone)
	_ = v.RegisterValidation("http_url_opt", HTTPURLOptional)
}

// ValidPhone validates a phone number structure. Empty passes; pair with
// required when the field is mandatory.
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return phoneRegex.MatchString(val)
}

// HTTPURLOptional accepts empty strings or URLs beginning with http:// or
// https://. Used for company websites and certificate links.
func HTTPURLOptional(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return httpURLRegex.MatchString(val)
}

var httpURLRegex = regexp.MustCompile(`^https?://[^\s]+$`)
