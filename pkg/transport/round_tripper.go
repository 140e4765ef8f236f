package transport

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/samandr77/microservices/amocrm/pkg/logger"
)

// BearerRoundTripper signs requests with a static bearer token and logs them.
type BearerRoundTripper struct {
	Transport http.RoundTripper
	token     string
}

func NewBearerRoundTripper(transport http.RoundTripper, token string) *BearerRoundTripper {
	return &BearerRoundTripper{Transport: transport, token: token}
}

func (b *BearerRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	// RoundTrip must not modify the caller's request.
	r = r.Clone(ctx)

	r.Header.Set("Accept", "application/json")
	r.Header.Set("Authorization", "Bearer "+b.token)

	reqID := logger.RequestIDFromCtx(ctx)
	if reqID != "" {
		r.Header.Set("X-Request-Id", reqID)
	}

	slog.DebugContext(ctx, "outgoing request", "request", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()))

	resp, err := b.Transport.RoundTrip(r)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}

	slog.DebugContext(ctx, "incoming response",
		"response", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()),
		"status", resp.StatusCode,
	)

	return resp, nil
}
