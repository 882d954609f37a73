// Package http provides HTTP routing and middleware configuration
// for the paquetes API.
package http

import (
	"net/http"

	"github.com/atinyakov/paquetes/internal/metrics"
	"github.com/atinyakov/paquetes/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves
// the paquetes API and the metrics endpoint.
//
// Routes:
//
//	GET    /api/paquetes/      → packageHandler.List
//	POST   /api/paquetes/      → packageHandler.Create
//	GET    /api/paquetes/{id}  → packageHandler.Get
//	PUT    /api/paquetes/{id}  → packageHandler.Update
//	DELETE /api/paquetes/{id}  → packageHandler.Delete
//	GET    /metrics            → prometheus exposition
//
// Middleware chain (applied in order):
//  1. Recoverer                          — turns handler panics into 500s
//  2. WithRequestLogging(logger)         — logs incoming requests
//  3. m.Middleware                       — records request metrics
//  4. AllowContentType("application/json") on /api — rejects non-JSON bodies
func NewRouter(
	packageHandler *PackageHandler,
	m *metrics.Metrics,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.WithRequestLogging(logger))
	r.Use(m.Middleware)

	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Route("/api/paquetes", func(r chi.Router) {
		r.Use(chiMiddleware.AllowContentType("application/json"))

		r.Get("/", packageHandler.List)
		r.Post("/", packageHandler.Create)
		r.Get("/{id}", packageHandler.Get)
		r.Put("/{id}", packageHandler.Update)
		r.Delete("/{id}", packageHandler.Delete)
	})

	return r
}
