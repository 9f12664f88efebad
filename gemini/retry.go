package gemini

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"google.golang.org/genai"
)

// GenerateFunc performs one model call.
type GenerateFunc func(ctx context.Context) (*genai.GenerateContentResponse, error)

// DefaultRetryDelays returns the backoff delays for API retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Transient reports whether err is a rate limit or server error from the API.
func Transient(err error) bool {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError
}

// GenerateWithRetry calls generate, retrying transient errors once per delay.
// Other errors are returned immediately. The logger, if provided, records
// each retry.
func GenerateWithRetry(ctx context.Context, generate GenerateFunc, delays []time.Duration, logger *slog.Logger) (*genai.GenerateContentResponse, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		result, err := generate(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !Transient(err) || attempt >= maxAttempts-1 {
			break
		}

		if logger != nil {
			logger.Warn("retry gemini request", "attempt", attempt+2, "err", err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}
