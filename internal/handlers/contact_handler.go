package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sohagbhuiyan/portfolio-api/internal/models"
	"github.com/sohagbhuiyan/portfolio-api/internal/services"
	apperrors "github.com/sohagbhuiyan/portfolio-api/pkg/errors"
	"github.com/sohagbhuiyan/portfolio-api/pkg/logger"
	"github.com/sohagbhuiyan/portfolio-api/pkg/metrics"
	"go.uber.org/zap"
)

type ContactHandler struct {
	service services.ContactServiceInterface
}

func NewContactHandler(service services.ContactServiceInterface) *ContactHandler {
	return &ContactHandler{service: service}
}

// SubmitContact handles POST /api/contact
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.ContactFormSubmissions.WithLabelValues("invalid").Inc()
		if fields := ParseValidationErrors(err); len(fields) > 0 {
			logger.Debug("Contact form validation failed", zap.Any("fields", fields))
		}
		respondError(c, http.StatusBadRequest, contactBindMessage(err), err)
		return
	}

	resp, err := h.service.SubmitContactForm(c.Request.Context(), &req)
	if err != nil {
		status, message := contactErrorResponse(err)
		respondError(c, status, message, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// contactErrorResponse maps a submission error to its HTTP status and message.
func contactErrorResponse(err error) (int, string) {
	switch {
	case apperrors.Is(err, apperrors.ErrMissingFields):
		return http.StatusBadRequest, models.ContactMissingFields
	case apperrors.Is(err, apperrors.ErrInvalidEmail):
		return http.StatusBadRequest, models.ContactInvalidEmail
	case apperrors.Is(err, apperrors.ErrCaptcha):
		return http.StatusBadRequest, models.ContactCaptchaFailed
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		return http.StatusBadRequest, models.ContactInvalidBody
	}

	var providerErr *apperrors.ProviderError
	if apperrors.As(err, &providerErr) {
		message := providerErr.Message
		if message == "" {
			message = models.ContactRelayFallback
		}
		if providerErr.StatusCode >= 500 {
			return http.StatusInternalServerError, message
		}
		return http.StatusBadRequest, message
	}

	return http.StatusInternalServerError, models.ContactSendFailedMessage
}
