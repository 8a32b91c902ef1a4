package utils

import (
	"fmt"
	"net/http"

	"tripx/models"
)

// RecommendRequest is the body of every recommendation endpoint.
type RecommendRequest struct {
	Budget   float64 `json:"budget" example:"100"`
	Duration int     `json:"duration" example:"7"`
	TripType string  `json:"trip_type" example:"culture"`
	Season   string  `json:"season" example:"spring"`
	TopN     int     `json:"top_n,omitempty" example:"5"`
}

// ValidateRecommendRequest checks the four profile fields against their
// allowed ranges and closed sets, writing a code-bearing error response
// and returning false on the first violation.
func ValidateRecommendRequest(w http.ResponseWriter, req *RecommendRequest) bool {
	if req.Budget <= 0 {
		WriteCustomErrorResponse(w, models.CodeInvalidParams, "budget must be positive", map[string]interface{}{
			"param": "budget",
		})
		return false
	}
	if req.Duration < 1 {
		WriteCustomErrorResponse(w, models.CodeInvalidParams, "duration must be at least 1 day", map[string]interface{}{
			"param": "duration",
		})
		return false
	}
	if req.TripType == "" || req.Season == "" {
		WriteErrorResponse(w, models.CodeMissingParams, map[string]interface{}{
			"required": []string{"budget", "duration", "trip_type", "season"},
		})
		return false
	}
	if !models.IsKnownTripType(req.TripType) {
		WriteCustomErrorResponse(w, models.CodeUnknownTripType,
			fmt.Sprintf("unknown trip type %q", req.TripType), map[string]interface{}{
				"allowed": models.TripTypes,
			})
		return false
	}
	if !models.IsKnownSeason(req.Season) {
		WriteCustomErrorResponse(w, models.CodeUnknownSeason,
			fmt.Sprintf("unknown season %q", req.Season), map[string]interface{}{
				"allowed": models.Seasons,
			})
		return false
	}
	return true
}
