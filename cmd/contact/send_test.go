package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sohagbhuiyan/portfolio-api/pkg/contactform"
	"github.com/sohagbhuiyan/portfolio-api/pkg/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSend_Success(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Email sent successfully"}`)) //nolint:errcheck
	}))
	defer srv.Close()

	var buf bytes.Buffer
	form := contactform.NewController(srv.URL, httpclient.NewStandardClient(5*time.Second))

	err := runSend(context.Background(), &buf, form, contactform.Fields{
		Name: "Jane", Email: "jane@example.com", Message: "Hi",
	})

	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Contains(t, buf.String(), "Sending...")
	assert.Contains(t, buf.String(), "Message sent successfully!")
}

func TestRunSend_InvalidFields(t *testing.T) {
	var buf bytes.Buffer
	form := contactform.NewController("http://127.0.0.1:1/api/contact", httpclient.NewStandardClient(time.Second))

	err := runSend(context.Background(), &buf, form, contactform.Fields{Name: "Jane", Email: "nope"})

	assert.ErrorIs(t, err, contactform.ErrInvalid)
	assert.Contains(t, buf.String(), "email: Invalid email address")
	assert.Contains(t, buf.String(), "message: Message is required")
}

func TestRunSend_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to send message"}`)) //nolint:errcheck
	}))
	defer srv.Close()

	var buf bytes.Buffer
	form := contactform.NewController(srv.URL, httpclient.NewStandardClient(5*time.Second),
		contactform.WithFallbackEmail("me@example.com"))

	err := runSend(context.Background(), &buf, form, contactform.Fields{
		Name: "Jane", Email: "jane@example.com", Message: "Hi",
	})

	assert.ErrorIs(t, err, contactform.ErrSubmitFailed)
	assert.Contains(t, buf.String(), "mailto:me@example.com")
}
