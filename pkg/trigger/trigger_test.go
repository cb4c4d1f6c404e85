package trigger

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/sohagbhuiyan/portfolio-api/pkg/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallAsync_EmptyURLIsNoop(t *testing.T) {
	done := CallAsync("", url.Values{"a": {"b"}}, httpclient.NewStandardClient(time.Second))

	select {
	case <-done:
	default:
		t.Fatal("expected closed channel for empty trigger URL")
	}
}

func TestCallAsync_SendsQueryParams(t *testing.T) {
	received := make(chan url.Values, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received <- r.URL.Query()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	done := CallAsync(srv.URL+"/hook?source=portfolio", url.Values{"email": {"jane@example.com"}}, httpclient.NewStandardClient(time.Second))

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("trigger did not finish")
	}

	require.Len(t, received, 1)
	q := <-received
	assert.Equal(t, "portfolio", q.Get("source"))
	assert.Equal(t, "jane@example.com", q.Get("email"))
}
