package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// IPRateLimiter caps inbound requests per client IP over the configured window.
func (m *Middlewares) IPRateLimiter() func(next http.Handler) http.Handler {
	window := time.Duration(m.InternalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	if window <= 0 {
		window = time.Second
	}
	return httprate.LimitByIP(m.InternalConfig.App.MaxRequests, window)
}
