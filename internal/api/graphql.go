package api

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/baharkarakas/trade-ledger/internal/api/httpx"
	"github.com/baharkarakas/trade-ledger/internal/api/validate"
)

const maxQueryBytes = 64 << 10

type gqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// graphqlHandler decodes a GraphQL request from a JSON body (POST) or the
// query string (GET) and executes it against schema.
func graphqlHandler(schema graphql.Schema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req gqlRequest
		switch r.Method {
		case http.MethodGet:
			q := r.URL.Query()
			req.Query = q.Get("query")
			req.OperationName = q.Get("operationName")
			if v := q.Get("variables"); v != "" {
				if err := json.Unmarshal([]byte(v), &req.Variables); err != nil {
					httpx.WriteError(w, http.StatusBadRequest, "bad_request", "variables must be a JSON object", nil)
					return
				}
			}
		default:
			if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxQueryBytes)).Decode(&req); err != nil {
				httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid JSON body", nil)
				return
			}
		}

		if errs := validate.Request(req.Query, req.OperationName, maxQueryBytes); len(errs) > 0 {
			httpx.WriteError(w, http.StatusBadRequest, "validation_failed", errs.Error(), errs)
			return
		}

		res := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			VariableValues: req.Variables,
			OperationName:  req.OperationName,
			Context:        r.Context(),
		})
		httpx.WriteJSON(w, http.StatusOK, res)
	}
}
