package recaptcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sohagbhuiyan/portfolio-api/pkg/httpclient"
	"github.com/sohagbhuiyan/portfolio-api/pkg/metrics"
)

// VerifyURL is Google's siteverify endpoint
const VerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// Response represents the response from Google's reCAPTCHA verification API
type Response struct {
	Success     bool     `json:"success"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes"`
}

// Verifier handles reCAPTCHA verification
type Verifier struct {
	secretKey  string
	httpClient httpclient.Client
}

// NewVerifier creates a verifier. It returns nil when secretKey is empty,
// which callers treat as "captcha disabled".
func NewVerifier(secretKey string, httpClient httpclient.Client) *Verifier {
	if secretKey == "" {
		return nil
	}
	return &Verifier{
		secretKey:  secretKey,
		httpClient: httpClient,
	}
}

// Enabled reports whether verification is configured
func (v *Verifier) Enabled() bool {
	return v != nil
}

// Verify verifies a reCAPTCHA token with Google's API
func (v *Verifier) Verify(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("recaptcha token missing")
	}

	start := time.Now()
	status := "error"
	defer func() {
		metrics.ProviderRequestTotal.WithLabelValues("recaptcha", status).Inc()
		metrics.ProviderRequestDuration.WithLabelValues("recaptcha", status).Observe(metrics.MeasureDuration(start))
	}()

	data := url.Values{}
	data.Set("secret", v.secretKey)
	data.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, VerifyURL, strings.NewReader(data.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build recaptcha request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to verify recaptcha: %w", err)
	}
	defer resp.Body.Close()

	var result Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode recaptcha response: %w", err)
	}

	if !result.Success {
		status = "rejected"
		return fmt.Errorf("recaptcha verification failed: %v", result.ErrorCodes)
	}

	status = "success"
	return nil
}
