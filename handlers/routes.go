package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"tripx/config"
	_ "tripx/docs" // swagger annotations
)

// RegisterRoutes wires every endpoint onto the router.
func RegisterRoutes(r *chi.Mux, cfg *config.Config) {
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Get("/health", HealthHandler)

	r.Get("/api/destinations", ListDestinationsHandler)

	r.Post("/api/catalog/refresh", func(w http.ResponseWriter, r *http.Request) {
		RefreshCatalogHandler(w, r, cfg)
	})

	r.Post("/api/recommendations", func(w http.ResponseWriter, r *http.Request) {
		RecommendHandler(w, r, cfg)
	})

	r.Post("/api/recommendations/enhanced", func(w http.ResponseWriter, r *http.Request) {
		EnhancedRecommendHandler(w, r, cfg)
	})

	r.Post("/api/recommendations/compare", func(w http.ResponseWriter, r *http.Request) {
		CompareHandler(w, r, cfg)
	})

	r.Get("/api/evaluation", EvaluationHandler)
}
