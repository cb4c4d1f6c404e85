// Package web3forms talks to the Web3Forms email relay.
package web3forms

import (
	"context"
	"encoding/json"
	"time"

	apperrors "github.com/sohagbhuiyan/portfolio-api/pkg/errors"
	"github.com/sohagbhuiyan/portfolio-api/pkg/httpclient"
	"github.com/sohagbhuiyan/portfolio-api/pkg/logger"
	"github.com/sohagbhuiyan/portfolio-api/pkg/metrics"
	"go.uber.org/zap"
)

// DefaultEndpoint is the public submit URL.
const DefaultEndpoint = "https://api.web3forms.com/submit"

// Message is one contact message to relay.
type Message struct {
	Name     string
	Email    string
	Body     string
	Subject  string
	FromName string
}

// payload is the JSON document the provider expects.
type payload struct {
	AccessKey string `json:"access_key"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	Subject   string `json:"subject"`
	FromName  string `json:"from_name"`
}

// Response is the part of the provider answer we consume.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Client relays messages to Web3Forms
type Client struct {
	endpoint   string
	accessKey  string
	httpClient httpclient.Client
}

// NewClient creates a relay client. An empty endpoint selects DefaultEndpoint.
func NewClient(endpoint, accessKey string, httpClient httpclient.Client) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint:   endpoint,
		accessKey:  accessKey,
		httpClient: httpClient,
	}
}

// Submit sends msg in a single POST. It never retries.
//
// A transport failure or an unreadable answer yields an error wrapping
// ErrUpstreamUnavailable. An answer with success=false or a non-2xx status
// yields a *ProviderError (which matches ErrUpstreamRejected).
func (c *Client) Submit(ctx context.Context, msg Message) (*Response, error) {
	start := time.Now()

	req, err := httpclient.NewJSONRequest(ctx, c.endpoint, payload{
		AccessKey: c.accessKey,
		Name:      msg.Name,
		Email:     msg.Email,
		Message:   msg.Body,
		Subject:   msg.Subject,
		FromName:  msg.FromName,
	})
	if err != nil {
		return nil, apperrors.UnavailableError("failed to prepare web3forms request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe("error", start)
		return nil, apperrors.UnavailableError("failed to reach web3forms", err)
	}
	defer resp.Body.Close()

	var result Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.observe("error", start, zap.Int("http_status", resp.StatusCode))
		return nil, apperrors.UnavailableError("failed to decode web3forms response", err)
	}

	if !result.Success || resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.observe("rejected", start,
			zap.Int("http_status", resp.StatusCode),
			zap.String("provider_message", result.Message))
		return &result, &apperrors.ProviderError{
			StatusCode: resp.StatusCode,
			Message:    result.Message,
		}
	}

	c.observe("success", start)
	return &result, nil
}

func (c *Client) observe(status string, start time.Time, fields ...zap.Field) {
	duration := metrics.MeasureDuration(start)
	metrics.ProviderRequestDuration.WithLabelValues("web3forms", status).Observe(duration)
	metrics.ProviderRequestTotal.WithLabelValues("web3forms", status).Inc()
	logger.LogAPICall("web3forms", "submit", status, duration, fields...)
}
