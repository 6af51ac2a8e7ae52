package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/baharkarakas/trade-ledger/internal/api/httpx"
	"github.com/baharkarakas/trade-ledger/internal/metrics"
)

// Recover turns a panic in a resolver or handler into a 500 with the
// request id, so the failing call can be found in the logs.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			id := RequestIDFrom(r.Context())
			metrics.RequestsRejected.WithLabelValues("panic").Inc()
			slog.Error("panic", "err", rec, "request_id", id, "path", r.URL.Path, "stack", string(debug.Stack()))
			httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error", map[string]string{"request_id": id})
		}()
		next.ServeHTTP(w, r)
	})
}
