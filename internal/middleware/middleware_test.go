package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sohagbhuiyan/portfolio-api/pkg/logger"
	"github.com/sohagbhuiyan/portfolio-api/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.InitNop()
}

// requestCount reads http_server_request_total for one label set
func requestCount(t *testing.T, method, route, status string) float64 {
	t.Helper()
	families, err := metrics.Registry.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != "http_server_request_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["http_request_method"] == method &&
				labels["http_route"] == route &&
				labels["http_response_status_code"] == status {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestObservabilityMiddleware_RecordsRouteTemplate(t *testing.T) {
	router := gin.New()
	router.Use(ObservabilityMiddleware())
	router.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	before := requestCount(t, "GET", "/items/:id", "204")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/42", http.NoBody))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, before+1, requestCount(t, "GET", "/items/:id", "204"))
}

func TestObservabilityMiddleware_UnmatchedRoute(t *testing.T) {
	router := gin.New()
	router.Use(ObservabilityMiddleware())

	before := requestCount(t, "GET", "unmatched", "404")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere?token=abc", http.NoBody))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, before+1, requestCount(t, "GET", "unmatched", "404"))
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(SecurityHeadersMiddleware())
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", http.NoBody))

	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "no-store, no-cache, must-revalidate, private", w.Header().Get("Cache-Control"))
}

func TestBodySizeLimitMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(BodySizeLimitMiddleware(8))
	router.POST("/echo", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.String(http.StatusBadRequest, "too large")
			return
		}
		c.String(http.StatusOK, string(body))
	})

	t.Run("within limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("short")))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "short", w.Body.String())
	})

	t.Run("over limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("much too long")))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
