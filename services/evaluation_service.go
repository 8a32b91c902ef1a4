package services

import (
	"tripx/models"
)

// Scenario is one fixed evaluation persona.
type Scenario struct {
	Name     string  `json:"name"`
	Budget   float64 `json:"budget"`
	Duration int     `json:"duration"`
	TripType string  `json:"trip_type"`
	Season   string  `json:"season"`
}

// evaluationScenarios is the fixed persona suite used to gauge
// recommendation quality. Deterministic by design: identical runs over
// an unchanged catalog produce identical reports.
var evaluationScenarios = []Scenario{
	{"Budget Backpacker", 40, 14, "culture", "spring"},
	{"Family Vacation", 120, 7, "beach", "summer"},
	{"Business Traveler", 180, 3, "urban", "fall"},
	{"Luxury Couple", 250, 8, "luxury", "winter"},
	{"Adventure Seeker", 90, 12, "nature", "summer"},
	{"Weekend Getaway", 150, 2, "urban", "spring"},
	{"Cultural Explorer", 70, 10, "culture", "fall"},
	{"Beach Lover", 85, 9, "beach", "winter"},
	{"Nature Photographer", 110, 15, "nature", "fall"},
	{"Honeymoon Special", 200, 6, "luxury", "spring"},
}

// ScenarioResult is the outcome of one persona run.
type ScenarioResult struct {
	Scenario       string  `json:"scenario"`
	Success        bool    `json:"success"`
	Count          int     `json:"num_recommendations,omitempty"`
	AvgScore       float64 `json:"avg_score,omitempty"`
	TopDestination string  `json:"top_destination,omitempty"`
	TopScore       float64 `json:"top_score,omitempty"`
	Reason         string  `json:"reason,omitempty"`
}

// EngineReport aggregates one engine's quality metrics over the suite.
type EngineReport struct {
	Coverage        float64          `json:"coverage"`          // share of scenarios with at least one result
	AvgScore        float64          `json:"avg_score"`         // mean overall score across all results
	HighQualityRate float64          `json:"high_quality_rate"` // share of results scoring above 0.8
	DiversityScore  float64          `json:"diversity_score"`   // distinct recommended destinations / catalog size
	RegionDiversity int              `json:"region_diversity"`  // distinct recommended regions
	Scenarios       []ScenarioResult `json:"scenario_results"`
}

// EvaluationReport compares both engines over the fixed suite.
type EvaluationReport struct {
	CatalogSize int          `json:"catalog_size"`
	Baseline    EngineReport `json:"baseline"`
	Enhanced    EngineReport `json:"enhanced"`
}

const evaluationTopN = 3

// RunEvaluation executes the persona suite against both engines.
func RunEvaluation() (*EvaluationReport, error) {
	snap, err := CurrentSnapshot()
	if err != nil {
		return nil, err
	}

	baseline, err := evaluateEngine(func(p models.UserProfile) ([]models.Recommendation, string, error) {
		return GetRecommendations(p, evaluationTopN)
	}, len(snap.Destinations))
	if err != nil {
		return nil, err
	}

	enhanced, err := evaluateEngine(func(p models.UserProfile) ([]models.Recommendation, string, error) {
		return GetEnhancedRecommendations(p, evaluationTopN)
	}, len(snap.Destinations))
	if err != nil {
		return nil, err
	}

	return &EvaluationReport{
		CatalogSize: len(snap.Destinations),
		Baseline:    *baseline,
		Enhanced:    *enhanced,
	}, nil
}

func evaluateEngine(recommend func(models.UserProfile) ([]models.Recommendation, string, error), catalogSize int) (*EngineReport, error) {
	report := &EngineReport{
		Scenarios: make([]ScenarioResult, 0, len(evaluationScenarios)),
	}

	var allScores []float64
	successful := 0
	seenDestinations := make(map[string]struct{})
	seenRegions := make(map[string]struct{})

	for _, scenario := range evaluationScenarios {
		profile := BuildProfile(scenario.Budget, scenario.Duration, scenario.TripType, scenario.Season)
		recommendations, reason, err := recommend(profile)
		if err != nil {
			return nil, err
		}

		if len(recommendations) == 0 {
			report.Scenarios = append(report.Scenarios, ScenarioResult{
				Scenario: scenario.Name,
				Reason:   reason,
			})
			continue
		}

		successful++
		sum := 0.0
		for _, rec := range recommendations {
			sum += rec.OverallScore
			allScores = append(allScores, rec.OverallScore)
			seenDestinations[rec.Destination] = struct{}{}
			seenRegions[rec.Region] = struct{}{}
		}

		report.Scenarios = append(report.Scenarios, ScenarioResult{
			Scenario:       scenario.Name,
			Success:        true,
			Count:          len(recommendations),
			AvgScore:       sum / float64(len(recommendations)),
			TopDestination: recommendations[0].Destination,
			TopScore:       recommendations[0].OverallScore,
		})
	}

	report.Coverage = float64(successful) / float64(len(evaluationScenarios))
	if len(allScores) > 0 {
		total := 0.0
		high := 0
		for _, s := range allScores {
			total += s
			if s > 0.8 {
				high++
			}
		}
		report.AvgScore = total / float64(len(allScores))
		report.HighQualityRate = float64(high) / float64(len(allScores))
	}
	if catalogSize > 0 {
		report.DiversityScore = float64(len(seenDestinations)) / float64(catalogSize)
	}
	report.RegionDiversity = len(seenRegions)

	return report, nil
}
