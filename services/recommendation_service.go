package services

import (
	"tripx/engine"
	"tripx/logger"
	"tripx/models"
)

// ComparisonResult holds both engines' rankings for one profile.
type ComparisonResult struct {
	Profile  models.UserProfile      `json:"profile"`
	Baseline []models.Recommendation `json:"baseline"`
	Enhanced []models.Recommendation `json:"enhanced"`
}

// BuildProfile constructs the ephemeral per-request profile.
func BuildProfile(budget float64, duration int, tripType, season string) models.UserProfile {
	return preprocessor.CreateUserProfile(budget, duration, tripType, season)
}

func baselineEngine() (*engine.Engine, error) {
	snap, err := CurrentSnapshot()
	if err != nil {
		return nil, err
	}
	return engine.NewEngine(snap.Destinations, preprocessor, engine.DefaultWeights())
}

func enhancedEngine() (*engine.EnhancedEngine, error) {
	snap, err := CurrentSnapshot()
	if err != nil {
		return nil, err
	}
	return engine.NewEnhancedEngine(snap.Destinations, preprocessor)
}

// GetRecommendations runs the baseline ranking. When the result is empty
// the second return value carries the no-results diagnostic.
func GetRecommendations(profile models.UserProfile, topN int) ([]models.Recommendation, string, error) {
	e, err := baselineEngine()
	if err != nil {
		return nil, "", err
	}

	recommendations := e.GetRecommendations(profile, topN)
	if len(recommendations) == 0 {
		reason := e.ExplainNoResults(profile)
		logger.Info("No recommendations for profile",
			"budget", profile.Budget, "duration", profile.Duration,
			"trip_type", profile.PreferredTripType, "season", profile.PreferredSeason,
			"reason", reason)
		return recommendations, reason, nil
	}

	logger.Debug("Recommendations generated",
		"count", len(recommendations), "top", recommendations[0].Destination,
		"top_score", recommendations[0].OverallScore)
	return recommendations, "", nil
}

// GetEnhancedRecommendations runs the diversity-aware ranking.
func GetEnhancedRecommendations(profile models.UserProfile, topN int) ([]models.Recommendation, string, error) {
	e, err := enhancedEngine()
	if err != nil {
		return nil, "", err
	}

	recommendations := e.GetRecommendations(profile, topN)
	if len(recommendations) == 0 {
		reason := e.ExplainNoResults(profile)
		return recommendations, reason, nil
	}

	logger.Debug("Enhanced recommendations generated",
		"count", len(recommendations), "top", recommendations[0].Destination)
	return recommendations, "", nil
}

// CompareAlgorithms runs both engines over the same profile so callers
// can inspect how the diversity-aware selection diverges from the
// baseline ranking.
func CompareAlgorithms(profile models.UserProfile, topN int) (*ComparisonResult, error) {
	baseline, _, err := GetRecommendations(profile, topN)
	if err != nil {
		return nil, err
	}
	enhanced, _, err := GetEnhancedRecommendations(profile, topN)
	if err != nil {
		return nil, err
	}
	return &ComparisonResult{
		Profile:  profile,
		Baseline: baseline,
		Enhanced: enhanced,
	}, nil
}

// ListDestinations returns the processed catalog rows.
func ListDestinations() ([]models.Destination, error) {
	snap, err := CurrentSnapshot()
	if err != nil {
		return nil, err
	}
	return snap.Destinations, nil
}
