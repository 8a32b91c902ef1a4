package handlers

import (
	"net/http"

	"tripx/config"
	"tripx/models"
	"tripx/services"
	"tripx/utils"
)

// ListDestinationsHandler godoc
// @Summary List the destination catalog
// @Description Returns every processed catalog row with its derived features
// @Tags catalog
// @Produce json
// @Success 200 {object} models.APIResponse "catalog rows"
// @Failure 500 {object} models.APIResponse "catalog not loaded"
// @Router /api/destinations [get]
func ListDestinationsHandler(w http.ResponseWriter, r *http.Request) {
	destinations, err := services.ListDestinations()
	if err != nil {
		handleServiceError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, map[string]interface{}{
		"count":        len(destinations),
		"destinations": destinations,
	})
}

// RefreshCatalogHandler godoc
// @Summary Rebuild the catalog snapshot from its source
// @Description Reloads and re-preprocesses the catalog; the previous snapshot stays in service if the reload fails
// @Tags catalog
// @Produce json
// @Success 200 {object} models.APIResponse "new snapshot info"
// @Failure 500 {object} models.APIResponse "reload failure"
// @Router /api/catalog/refresh [post]
func RefreshCatalogHandler(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	if err := services.LoadCatalog(cfg); err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeCatalogError, err.Error(), map[string]interface{}{})
		return
	}

	snap, err := services.CurrentSnapshot()
	if err != nil {
		handleServiceError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, map[string]interface{}{
		"source":       snap.Source,
		"destinations": len(snap.Destinations),
		"loaded_at":    snap.LoadedAt,
	})
}

// EvaluationHandler godoc
// @Summary Run the fixed evaluation suite
// @Description Runs ten deterministic personas against both engines and reports coverage, score and diversity metrics
// @Tags evaluation
// @Produce json
// @Success 200 {object} models.APIResponse "evaluation report"
// @Failure 500 {object} models.APIResponse "catalog not loaded"
// @Router /api/evaluation [get]
func EvaluationHandler(w http.ResponseWriter, r *http.Request) {
	report, err := services.RunEvaluation()
	if err != nil {
		handleServiceError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, report)
}

// HealthHandler godoc
// @Summary Liveness and catalog status
// @Tags health
// @Produce json
// @Success 200 {object} models.APIResponse "status"
// @Router /health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"status": "ok",
	}
	if snap, err := services.CurrentSnapshot(); err == nil {
		data["catalog_source"] = snap.Source
		data["catalog_size"] = len(snap.Destinations)
		data["catalog_loaded_at"] = snap.LoadedAt
	} else {
		data["catalog_size"] = 0
	}
	utils.WriteSuccessResponse(w, data)
}
