package middleware

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/baharkarakas/trade-ledger/internal/api/httpx"
	"github.com/baharkarakas/trade-ledger/internal/metrics"
)

// newLimiter is shared by every caller; it guards the store from bursts,
// not individual clients from each other.
func newLimiter(rps int) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(rps), rps)
}

// RateLimit admits up to rps requests per second. rps <= 0 disables it.
func RateLimit(rps int) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	lim := newLimiter(rps)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !lim.Allow() {
				metrics.RequestsRejected.WithLabelValues("rate_limited").Inc()
				httpx.WriteError(w, http.StatusTooManyRequests, "rate_limited", "too many requests", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
