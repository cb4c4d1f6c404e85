package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// ContactEmailTag is the struct tag name for the contact email format rule.
const ContactEmailTag = "contact_email"

// emailRegex is deliberately narrower than RFC 5322: local@domain.tld with a
// letters-only TLD of two or more characters.
var emailRegex = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)

// IsEmail reports whether s matches the contact email pattern.
func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) error {
	return v.RegisterValidation(ContactEmailTag, ContactEmail)
}

// ContactEmail validates the email format. Empty values pass; pair with
// required when the field is mandatory.
func ContactEmail(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return IsEmail(val)
}

