package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"tripx/config"
	"tripx/models"
	"tripx/services"
	"tripx/utils"
)

func decodeRecommendRequest(w http.ResponseWriter, r *http.Request, cfg *config.Config) (*utils.RecommendRequest, bool) {
	var req utils.RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeInvalidParams, "invalid JSON body", map[string]interface{}{})
		return nil, false
	}
	if !utils.ValidateRecommendRequest(w, &req) {
		return nil, false
	}
	if req.TopN <= 0 {
		req.TopN = cfg.Engine.DefaultTopN
	}
	return &req, true
}

func handleServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrCatalogNotLoaded) {
		utils.WriteErrorResponse(w, models.CodeCatalogEmpty, map[string]interface{}{})
		return
	}
	utils.WriteCustomErrorResponse(w, models.CodeServerError, err.Error(), map[string]interface{}{})
}

// RecommendHandler godoc
// @Summary Rank destinations for a user profile
// @Description Scores and ranks the catalog against the given budget, duration, trip type and season
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body utils.RecommendRequest true "User profile"
// @Success 200 {object} models.APIResponse "ranked recommendations; empty list carries no_results_reason"
// @Failure 400 {object} models.APIResponse "validation error"
// @Failure 500 {object} models.APIResponse "server error"
// @Router /api/recommendations [post]
func RecommendHandler(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	req, ok := decodeRecommendRequest(w, r, cfg)
	if !ok {
		return
	}

	profile := services.BuildProfile(req.Budget, req.Duration, req.TripType, req.Season)
	recommendations, reason, err := services.GetRecommendations(profile, req.TopN)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	data := map[string]interface{}{
		"profile":         profile,
		"recommendations": recommendations,
	}
	if len(recommendations) == 0 {
		data["no_results_reason"] = reason
	}
	utils.WriteSuccessResponse(w, data)
}

// EnhancedRecommendHandler godoc
// @Summary Rank destinations with the diversity-aware algorithm
// @Description Greedy iterative selection rewarding value for money and cross-selection diversity
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body utils.RecommendRequest true "User profile"
// @Success 200 {object} models.APIResponse "ranked recommendations; empty list carries no_results_reason"
// @Failure 400 {object} models.APIResponse "validation error"
// @Failure 500 {object} models.APIResponse "server error"
// @Router /api/recommendations/enhanced [post]
func EnhancedRecommendHandler(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	req, ok := decodeRecommendRequest(w, r, cfg)
	if !ok {
		return
	}

	profile := services.BuildProfile(req.Budget, req.Duration, req.TripType, req.Season)
	recommendations, reason, err := services.GetEnhancedRecommendations(profile, req.TopN)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	data := map[string]interface{}{
		"profile":         profile,
		"recommendations": recommendations,
	}
	if len(recommendations) == 0 {
		data["no_results_reason"] = reason
	}
	utils.WriteSuccessResponse(w, data)
}

// CompareHandler godoc
// @Summary Compare baseline and diversity-aware rankings
// @Description Runs both algorithms over one profile and returns the rankings side by side
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body utils.RecommendRequest true "User profile"
// @Success 200 {object} models.APIResponse "both rankings"
// @Failure 400 {object} models.APIResponse "validation error"
// @Failure 500 {object} models.APIResponse "server error"
// @Router /api/recommendations/compare [post]
func CompareHandler(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	req, ok := decodeRecommendRequest(w, r, cfg)
	if !ok {
		return
	}

	profile := services.BuildProfile(req.Budget, req.Duration, req.TripType, req.Season)
	result, err := services.CompareAlgorithms(profile, req.TopN)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, result)
}
