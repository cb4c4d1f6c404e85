package services_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sohagbhuiyan/portfolio-api/internal/services"
	apperrors "github.com/sohagbhuiyan/portfolio-api/pkg/errors"
	"github.com/sohagbhuiyan/portfolio-api/pkg/httpclient"
	"github.com/sohagbhuiyan/portfolio-api/pkg/logger"
	"github.com/sohagbhuiyan/portfolio-api/pkg/web3forms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const testAccessKey = "test-access-key-5f1c"

// observeLogs routes the global logger into memory for the test
func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = prev })
	return logs
}

func assertNoAccessKey(t *testing.T, logs *observer.ObservedLogs) {
	t.Helper()
	for _, entry := range logs.All() {
		assert.NotContains(t, entry.Message, testAccessKey)
		assert.NotContains(t, fmt.Sprint(entry.ContextMap()), testAccessKey)
	}
}

func newRelayService(t *testing.T, providerURL string, breaker bool) *services.ContactService {
	t.Helper()
	relay := web3forms.NewClient(providerURL, testAccessKey, httpclient.NewStandardClient(5*time.Second))
	return services.NewContactService(testContactConfig(breaker), relay, nil, nil)
}

func TestContactService_SubmitContactForm_RelayOutlivesCaller(t *testing.T) {
	var hits int32
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) <= 5 {
			time.Sleep(200 * time.Millisecond)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"Email sent"}`)) //nolint:errcheck
	}))
	defer provider.Close()

	service := newRelayService(t, provider.URL, true)

	// Callers that give up early must neither abort the relay nor trip the breaker
	for i := 0; i < 5; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		_, err := service.SubmitContactForm(ctx, validContactRequest())
		cancel()
		require.NoError(t, err)
	}

	resp, err := service.SubmitContactForm(context.Background(), validContactRequest())

	require.NoError(t, err)
	assert.Equal(t, "Email sent successfully", resp.Message)
	assert.Equal(t, int32(6), atomic.LoadInt32(&hits))
}

func TestContactService_SubmitContactForm_LogsProviderRejection(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"message":"Invalid access key"}`)) //nolint:errcheck
	}))
	defer provider.Close()

	logs := observeLogs(t)
	service := newRelayService(t, provider.URL, false)

	_, err := service.SubmitContactForm(context.Background(), validContactRequest())

	require.ErrorIs(t, err, apperrors.ErrUpstreamRejected)
	entries := logs.FilterMessage("Email provider rejected contact message").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(http.StatusBadRequest), fields["provider_status"])
	assert.Equal(t, "Invalid access key", fields["provider_message"])
	assertNoAccessKey(t, logs)
}

func TestContactService_SubmitContactForm_LogsTransportFailure(t *testing.T) {
	provider := httptest.NewServer(http.NotFoundHandler())
	providerURL := provider.URL
	provider.Close()

	logs := observeLogs(t)
	service := newRelayService(t, providerURL, false)

	_, err := service.SubmitContactForm(context.Background(), validContactRequest())

	require.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
	entries := logs.FilterMessage("Failed to relay contact message").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Contains(t, entries[0].ContextMap()["error"], "failed to reach web3forms")
	assertNoAccessKey(t, logs)
}
