package trigger

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/sohagbhuiyan/portfolio-api/pkg/httpclient"
	"github.com/sohagbhuiyan/portfolio-api/pkg/logger"
	"go.uber.org/zap"
)

// notifyTimeout bounds the background call; it runs detached from the
// request that caused it.
const notifyTimeout = 10 * time.Second

// CallAsync fires a GET at triggerURL with the given query parameters.
// It returns immediately; failures are logged but don't block the operation.
// The returned channel is closed once the call has finished (useful in tests).
func CallAsync(triggerURL string, params url.Values, httpClient httpclient.Client) <-chan struct{} {
	done := make(chan struct{})
	if triggerURL == "" {
		close(done)
		return done
	}

	go func() {
		defer close(done)

		target, err := url.Parse(triggerURL)
		if err != nil {
			logger.Error("Invalid trigger URL", zap.Error(err))
			return
		}
		query := target.Query()
		for k, vs := range params {
			for _, v := range vs {
				query.Add(k, v)
			}
		}
		target.RawQuery = query.Encode()

		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), http.NoBody)
		if err != nil {
			logger.Error("Failed to build trigger request", zap.Error(err))
			return
		}

		resp, err := httpClient.Do(req)
		if err != nil {
			logger.Error("Failed to call trigger URL",
				zap.Error(err),
				zap.String("host", target.Host))
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			logger.Info("Trigger URL called successfully",
				zap.String("host", target.Host),
				zap.Int("status_code", resp.StatusCode))
		} else {
			logger.Warn("Trigger URL returned non-success status",
				zap.String("host", target.Host),
				zap.Int("status_code", resp.StatusCode))
		}
	}()

	return done
}
