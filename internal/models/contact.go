package models

// ContactRequest represents a contact form submission as posted by the browser.
// Binding tags mirror the Form Controller rules; the service checks them again.
type ContactRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,contact_email"`
	Message        string `json:"message" binding:"required"`
	RecaptchaToken string `json:"recaptchaToken,omitempty"`
}

// ContactResponse is the uniform body of POST /api/contact.
// Exactly one of Message (success) or Error (failure) is set.
type ContactResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// User-facing messages of the contact endpoint
const (
	ContactSentMessage       = "Email sent successfully"
	ContactInvalidBody       = "Invalid request body"
	ContactMissingFields     = "All fields are required"
	ContactInvalidEmail      = "Invalid email address"
	ContactCaptchaFailed     = "Captcha verification failed"
	ContactRelayFallback     = "Failed to send email"
	ContactSendFailedMessage = "Failed to send message"
)
