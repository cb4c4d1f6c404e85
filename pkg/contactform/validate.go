package contactform

import (
	"github.com/sohagbhuiyan/portfolio-api/pkg/validation"
)

// Field names a form input
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldMessage Field = "message"
)

// Field error messages shown next to the inputs
const (
	NameRequiredMessage    = "Name is required"
	EmailRequiredMessage   = "Email is required"
	EmailInvalidMessage    = "Invalid email address"
	MessageRequiredMessage = "Message is required"
)

// Fields holds the form inputs
type Fields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// FieldErrors maps a field to its message. Empty means valid.
type FieldErrors map[Field]string

// Validate checks the inputs locally. Only the empty string is missing.
func Validate(name, email, message string) FieldErrors {
	errs := FieldErrors{}

	if name == "" {
		errs[FieldName] = NameRequiredMessage
	}

	switch {
	case email == "":
		errs[FieldEmail] = EmailRequiredMessage
	case !validation.IsEmail(email):
		errs[FieldEmail] = EmailInvalidMessage
	}

	if message == "" {
		errs[FieldMessage] = MessageRequiredMessage
	}

	return errs
}

func (e FieldErrors) clone() FieldErrors {
	out := make(FieldErrors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}
