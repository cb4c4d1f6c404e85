package circuitbreaker

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/sohagbhuiyan/portfolio-api/pkg/errors"
	"github.com/sohagbhuiyan/portfolio-api/pkg/logger"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// Config holds circuit breaker configuration
type Config struct {
	Name          string
	MaxRequests   uint32        // Max requests allowed in half-open state
	Interval      time.Duration // Interval for resetting failure counts
	Timeout       time.Duration // Duration of open state before trying again
	ReadyToTrip   func(counts gobreaker.Counts) bool
	IsSuccessful  func(err error) bool
	OnStateChange func(name string, from gobreaker.State, to gobreaker.State)
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig(name string) Config {
	return Config{
		Name:        name,
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// A provider that answers "no" is healthy; only unreachable counts.
		// A cancelled caller says nothing about the provider.
		IsSuccessful: func(err error) bool {
			if err == nil || errors.Is(err, context.Canceled) {
				return true
			}
			return !errors.Is(err, apperrors.ErrUpstreamUnavailable)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	}
}

// NewCircuitBreaker creates a new circuit breaker with the given config
func NewCircuitBreaker(cfg Config) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:          cfg.Name,
		MaxRequests:   cfg.MaxRequests,
		Interval:      cfg.Interval,
		Timeout:       cfg.Timeout,
		ReadyToTrip:   cfg.ReadyToTrip,
		IsSuccessful:  cfg.IsSuccessful,
		OnStateChange: cfg.OnStateChange,
	})
}

// Execute wraps a function call with circuit breaker logic. A nil breaker
// calls fn directly. Rejections by an open breaker are reported as
// ErrUpstreamUnavailable so callers need no gobreaker knowledge.
func Execute[T any](cb *gobreaker.CircuitBreaker, fn func() (T, error)) (T, error) {
	if cb == nil {
		return fn()
	}

	var out T
	result, err := cb.Execute(func() (interface{}, error) {
		res, fnErr := fn()
		out = res
		return res, fnErr
	})
	if err != nil {
		if IsRejection(err) {
			var zero T
			return zero, FormatError(cb.Name(), err)
		}
		return out, err
	}

	typedResult, ok := result.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("type assertion failed in circuit breaker")
	}

	return typedResult, nil
}

// IsRejection reports whether err came from the breaker rather than the call
func IsRejection(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

// GetState returns the current state of the circuit breaker
func GetState(cb *gobreaker.CircuitBreaker) string {
	if cb == nil {
		return "disabled"
	}
	return cb.State().String()
}

// FormatError names the breaker in a rejection and marks it as
// ErrUpstreamUnavailable. Other errors are returned unchanged.
func FormatError(breakerName string, err error) error {
	if IsRejection(err) {
		return fmt.Errorf("%s %w: %w", breakerName, err, apperrors.ErrUpstreamUnavailable)
	}
	return err
}
