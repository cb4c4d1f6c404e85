package handlers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/sohagbhuiyan/portfolio-api/internal/models"
	"github.com/sohagbhuiyan/portfolio-api/pkg/validation"
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RegisterBindingValidators installs the custom tags on gin's validator so
// `binding:"..."` struct tags can use them.
func RegisterBindingValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	return validation.RegisterValidators(v)
}

// ParseValidationErrors converts validator errors to user-friendly format
func ParseValidationErrors(err error) []ValidationError {
	var result []ValidationError

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldError := range validationErrors {
			result = append(result, ValidationError{
				Field:   fieldError.Field(),
				Message: getErrorMessage(fieldError),
			})
		}
	}

	return result
}

// contactBindMessage picks the single user-facing message for a failed
// contact binding. Missing fields win over a malformed email; anything that
// is not a validation error means the body itself was unusable.
func contactBindMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return models.ContactInvalidBody
	}

	msg := models.ContactInvalidBody
	for _, fe := range validationErrors {
		switch fe.Tag() {
		case "required":
			return models.ContactMissingFields
		case validation.ContactEmailTag:
			msg = models.ContactInvalidEmail
		}
	}
	return msg
}

func getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case validation.ContactEmailTag, "email":
		return "Invalid email address"
	case "max":
		return fe.Field() + " must not exceed " + fe.Param() + " characters"
	default:
		return fe.Field() + " is invalid"
	}
}
