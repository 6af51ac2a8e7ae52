package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/graphql-go/graphql"

	"github.com/baharkarakas/trade-ledger/internal/config"
	"github.com/baharkarakas/trade-ledger/internal/metrics"
	"github.com/baharkarakas/trade-ledger/internal/middleware"
)

func NewRouter(cfg config.Config, schema graphql.Schema) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.HTTPMetrics, middleware.RateLimit(cfg.RateRPS))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	gql := graphqlHandler(schema)
	r.Get("/graphql", gql)
	r.Post("/graphql", gql)

	return r
}
