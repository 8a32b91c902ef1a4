package models

// Closed categorical sets the engine understands. Unknown values are not
// errors at the scoring level: trip types encode to all-zero flags and
// seasons fall through to the lowest match score.
var (
	TripTypes = []string{"beach", "culture", "urban", "luxury", "nature"}
	Seasons   = []string{"spring", "summer", "fall", "winter", "dry_season", "cool_season"}
)

// IsKnownTripType reports whether t is one of the five catalog trip types.
func IsKnownTripType(t string) bool {
	for _, known := range TripTypes {
		if t == known {
			return true
		}
	}
	return false
}

// IsKnownSeason reports whether s is one of the six catalog seasons.
func IsKnownSeason(s string) bool {
	for _, known := range Seasons {
		if s == known {
			return true
		}
	}
	return false
}

// NormalizedFeatures holds the min-max scaled variants of the numeric
// destination features, computed once over the whole catalog at load time.
type NormalizedFeatures struct {
	AvgCostPerDay   float64 `json:"avg_cost_per_day_norm"`
	PopularityScore float64 `json:"popularity_score_norm"`
	SafetyScore     float64 `json:"safety_score_norm"`
	QualityScore    float64 `json:"quality_score_norm"`
	MinDays         float64 `json:"min_days_norm"`
	MaxDays         float64 `json:"max_days_norm"`
}

// Destination is one catalog row. The raw columns come from the data
// source; everything under "derived" is attached by the preprocessor and
// is immutable for the lifetime of the catalog snapshot.
type Destination struct {
	Name            string  `json:"destination"`
	Country         string  `json:"country"`
	Region          string  `json:"region"`
	AvgCostPerDay   float64 `json:"avg_cost_per_day"`
	TripType        string  `json:"trip_type"`
	MinDays         int     `json:"min_days"`
	MaxDays         int     `json:"max_days"`
	SeasonBest      string  `json:"season_best"`
	Climate         string  `json:"climate,omitempty"`
	PopularityScore float64 `json:"popularity_score"`
	SafetyScore     float64 `json:"safety_score"`

	// derived
	CostCategory        string             `json:"cost_category,omitempty"`
	QualityScore        float64            `json:"quality_score,omitempty"`
	TypeFlags           map[string]int     `json:"type_flags,omitempty"`
	DurationRange       int                `json:"duration_range,omitempty"`
	DurationFlexibility float64            `json:"duration_flexibility,omitempty"`
	Norm                NormalizedFeatures `json:"norm,omitempty"`
}
