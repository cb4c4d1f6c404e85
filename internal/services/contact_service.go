package services

import (
	"context"
	"net/url"

	"github.com/sohagbhuiyan/portfolio-api/config"
	"github.com/sohagbhuiyan/portfolio-api/internal/models"
	"github.com/sohagbhuiyan/portfolio-api/pkg/circuitbreaker"
	apperrors "github.com/sohagbhuiyan/portfolio-api/pkg/errors"
	"github.com/sohagbhuiyan/portfolio-api/pkg/httpclient"
	"github.com/sohagbhuiyan/portfolio-api/pkg/logger"
	"github.com/sohagbhuiyan/portfolio-api/pkg/metrics"
	"github.com/sohagbhuiyan/portfolio-api/pkg/tracing"
	"github.com/sohagbhuiyan/portfolio-api/pkg/trigger"
	"github.com/sohagbhuiyan/portfolio-api/pkg/validation"
	"github.com/sohagbhuiyan/portfolio-api/pkg/web3forms"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ContactService relays contact form submissions to the email provider
type ContactService struct {
	config     *config.Config
	relay      EmailRelay
	captcha    CaptchaVerifier
	breaker    *gobreaker.CircuitBreaker
	httpClient httpclient.Client
}

// NewContactService creates a new contact service instance. captcha may be
// nil (or a disabled verifier) to skip captcha checks.
func NewContactService(
	cfg *config.Config,
	relay EmailRelay,
	captcha CaptchaVerifier,
	httpClient httpclient.Client,
) *ContactService {
	var breaker *gobreaker.CircuitBreaker
	if cfg.Provider.BreakerEnabled {
		breaker = circuitbreaker.NewCircuitBreaker(circuitbreaker.DefaultConfig("web3forms"))
	}

	return &ContactService{
		config:     cfg,
		relay:      relay,
		captcha:    captcha,
		breaker:    breaker,
		httpClient: httpClient,
	}
}

// SubmitContactForm validates req and relays it once. Failures are returned
// as errors from pkg/errors; the caller maps them to HTTP statuses.
func (s *ContactService) SubmitContactForm(ctx context.Context, req *models.ContactRequest) (*models.ContactResponse, error) {
	ctx, span := tracing.StartSpan(ctx, "contact.submit")
	var err error
	defer func() { tracing.EndSpan(span, err) }()

	if err = validateContactRequest(req); err != nil {
		metrics.ContactFormSubmissions.WithLabelValues("invalid").Inc()
		logger.Warn("Contact form rejected", zap.Error(err))
		return nil, err
	}

	if s.captcha != nil && s.captcha.Enabled() {
		if verifyErr := s.captcha.Verify(ctx, req.RecaptchaToken); verifyErr != nil {
			err = apperrors.ErrCaptcha
			metrics.ContactFormSubmissions.WithLabelValues("captcha_failed").Inc()
			logger.Warn("ReCAPTCHA verification failed", zap.Error(verifyErr))
			return nil, err
		}
	}

	msg := s.buildMessage(req)
	span.SetAttributes(attribute.String("contact.subject", msg.Subject))

	// Once started, the relay runs to completion even if the client leaves
	relayCtx := context.WithoutCancel(ctx)
	_, err = circuitbreaker.Execute(s.breaker, func() (any, error) {
		return s.relay.Submit(relayCtx, msg)
	})
	if err != nil {
		s.logRelayFailure(err)
		return nil, err
	}

	metrics.ContactFormSubmissions.WithLabelValues("success").Inc()
	logger.Info("Contact message relayed", zap.String("breaker_state", circuitbreaker.GetState(s.breaker)))

	// Notify the owner's hook (non-blocking)
	trigger.CallAsync(s.config.Contact.SubmittedTriggerURL, url.Values{
		"event": {"contact_submitted"},
		"name":  {req.Name},
	}, s.httpClient)

	return &models.ContactResponse{Message: models.ContactSentMessage}, nil
}

func (s *ContactService) buildMessage(req *models.ContactRequest) web3forms.Message {
	subject := req.Name
	if prefix := s.config.Contact.SubjectPrefix; prefix != "" {
		subject = prefix + " - " + req.Name
	}
	return web3forms.Message{
		Name:     req.Name,
		Email:    req.Email,
		Body:     req.Message,
		Subject:  subject,
		FromName: s.config.Contact.FromName,
	}
}

func (s *ContactService) logRelayFailure(err error) {
	var providerErr *apperrors.ProviderError
	if apperrors.As(err, &providerErr) {
		metrics.ContactFormSubmissions.WithLabelValues("rejected").Inc()
		logger.Error("Email provider rejected contact message",
			zap.Int("provider_status", providerErr.StatusCode),
			zap.String("provider_message", providerErr.Message))
		return
	}

	metrics.ContactFormSubmissions.WithLabelValues("error").Inc()
	logger.Error("Failed to relay contact message",
		zap.Error(err),
		zap.String("breaker_state", circuitbreaker.GetState(s.breaker)))
}

// validateContactRequest repeats the browser-side checks; the endpoint is
// reachable without the form.
func validateContactRequest(req *models.ContactRequest) error {
	if req == nil || req.Name == "" || req.Email == "" || req.Message == "" {
		return apperrors.ErrMissingFields
	}
	if !validation.IsEmail(req.Email) {
		return apperrors.ErrInvalidEmail
	}
	return nil
}
