package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sohagbhuiyan/portfolio-api/config"
	"github.com/sohagbhuiyan/portfolio-api/internal/content"
	"github.com/sohagbhuiyan/portfolio-api/internal/handlers"
	"github.com/sohagbhuiyan/portfolio-api/internal/services"
	"github.com/sohagbhuiyan/portfolio-api/pkg/httpclient"
	"github.com/sohagbhuiyan/portfolio-api/pkg/logger"
	"github.com/sohagbhuiyan/portfolio-api/pkg/web3forms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.InitNop()
}

func testRouter(t *testing.T, providerURL string) *gin.Engine {
	t.Helper()
	require.NoError(t, handlers.RegisterBindingValidators())

	cfg := &config.Config{
		Server:  config.ServerConfig{AllowedOrigins: []string{"https://portfolio.example"}},
		Contact: config.ContactConfig{MaxBodyBytes: 4096, FromName: "Portfolio Contact Form"},
		Observability: config.ObservabilityConfig{
			ServiceName: "portfolio-api-test",
		},
	}

	store := content.NewStore("")
	require.NoError(t, store.Initialize())
	contentService := services.NewContentService(store)

	httpClient := httpclient.NewStandardClient(0)
	relay := web3forms.NewClient(providerURL, "key", httpClient)

	return newRouter(cfg, routeHandlers{
		contact: handlers.NewContactHandler(services.NewContactService(cfg, relay, nil, httpClient)),
		content: handlers.NewContentHandler(contentService),
		health:  handlers.NewHealthHandler(contentService.IsReady),
	})
}

func TestRouter_ContactRoutes(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`)) //nolint:errcheck
	}))
	defer provider.Close()

	router := testRouter(t, provider.URL)

	for _, path := range []string{"/api/contact", "/api/v1/contact"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, path,
				strings.NewReader(`{"name":"Jane","email":"jane@example.com","message":"Hi"}`))
			req.Header.Set("Content-Type", "application/json")

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `{"message":"Email sent successfully"}`, w.Body.String())
			assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		})
	}
}

func TestRouter_OperationalRoutes(t *testing.T) {
	router := testRouter(t, "http://127.0.0.1:1")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/healthcheck", http.NoBody))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/metrics", http.NoBody))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_server_request_total")
}

func TestRouter_CORSPreflight(t *testing.T) {
	router := testRouter(t, "http://127.0.0.1:1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/contact", http.NoBody)
	req.Header.Set("Origin", "https://portfolio.example")
	req.Header.Set("Access-Control-Request-Method", "POST")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://portfolio.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewRouter_LeavesConfiguredOriginsUntouched(t *testing.T) {
	backing := make([]string, 1, 4)
	backing[0] = "https://portfolio.example"
	cfg := &config.Config{
		Server: config.ServerConfig{AppEnv: "development", AllowedOrigins: backing},
	}
	store := content.NewStore("")
	contentService := services.NewContentService(store)

	newRouter(cfg, routeHandlers{
		contact: handlers.NewContactHandler(services.NewContactService(cfg, nil, nil, nil)),
		content: handlers.NewContentHandler(contentService),
		health:  handlers.NewHealthHandler(contentService.IsReady),
	})

	assert.Equal(t, []string{"https://portfolio.example"}, cfg.Server.AllowedOrigins)
	assert.Empty(t, backing[1:cap(backing)][0])
}
