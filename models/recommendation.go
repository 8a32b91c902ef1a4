package models

// ScoreBreakdown records every sub-score that contributed to a total
// match score. ValueBonus and DiversityBonus are only populated by the
// diversity-aware engine.
type ScoreBreakdown struct {
	BudgetFit      float64 `json:"budget_fit"`
	DurationFit    float64 `json:"duration_fit"`
	TripTypeMatch  float64 `json:"trip_type_match"`
	SeasonMatch    float64 `json:"season_match"`
	QualityBonus   float64 `json:"quality_bonus"`
	ValueBonus     float64 `json:"value_bonus,omitempty"`
	DiversityBonus float64 `json:"diversity_bonus,omitempty"`
	TotalScore     float64 `json:"total_score"`
}

// Recommendation is one ranked result. The engine keeps no reference to
// it after returning; ownership passes to the caller.
type Recommendation struct {
	Destination     string         `json:"destination"`
	Country         string         `json:"country"`
	Region          string         `json:"region"`
	CostPerDay      float64        `json:"cost_per_day"`
	TripType        string         `json:"trip_type"`
	DurationRange   string         `json:"duration_range"`
	BestSeason      string         `json:"best_season"`
	Climate         string         `json:"climate,omitempty"`
	PopularityScore float64        `json:"popularity_score"`
	SafetyScore     float64        `json:"safety_score"`
	OverallScore    float64        `json:"overall_score"`
	Explanation     string         `json:"explanation"`
	ScoreBreakdown  ScoreBreakdown `json:"score_breakdown"`
}
