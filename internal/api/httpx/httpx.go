// Package httpx writes responses in the GraphQL response shape, so clients
// parse transport failures the same way as resolver errors.
package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorResponse is a GraphQL response carrying only errors.
type ErrorResponse struct {
	Data   any          `json:"data"`
	Errors []ErrorEntry `json:"errors"`
}

type ErrorEntry struct {
	Message    string         `json:"message"`
	Extensions ErrorExtension `json:"extensions"`
}

type ErrorExtension struct {
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("write response", "err", err)
	}
}

// WriteError rejects a request before execution; data is always null.
func WriteError(w http.ResponseWriter, status int, code, msg string, details any) {
	WriteJSON(w, status, ErrorResponse{
		Errors: []ErrorEntry{{
			Message:    msg,
			Extensions: ErrorExtension{Code: code, Details: details},
		}},
	})
}
