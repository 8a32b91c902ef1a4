package engine

import (
	"fmt"
	"math"
)

// Weights is the scoring weight vector. It is passed to an engine at
// construction and never mutated afterwards; the five components must
// sum to 1.0.
type Weights struct {
	BudgetFit     float64 `json:"budget_fit"`
	DurationFit   float64 `json:"duration_fit"`
	TripTypeMatch float64 `json:"trip_type_match"`
	SeasonMatch   float64 `json:"season_match"`
	QualityBonus  float64 `json:"quality_bonus"`
}

// DefaultWeights is the hand-tuned baseline vector.
func DefaultWeights() Weights {
	return Weights{
		BudgetFit:     0.30,
		DurationFit:   0.20,
		TripTypeMatch: 0.25,
		SeasonMatch:   0.15,
		QualityBonus:  0.10,
	}
}

// EnhancedWeights is the vector used by the diversity-aware engine,
// retuned to lean slightly more on duration fit.
func EnhancedWeights() Weights {
	return Weights{
		BudgetFit:     0.28,
		DurationFit:   0.22,
		TripTypeMatch: 0.25,
		SeasonMatch:   0.15,
		QualityBonus:  0.10,
	}
}

// Validate checks that the components sum to 1.0 within floating point
// tolerance and that none is negative.
func (w Weights) Validate() error {
	components := []float64{w.BudgetFit, w.DurationFit, w.TripTypeMatch, w.SeasonMatch, w.QualityBonus}
	sum := 0.0
	for _, c := range components {
		if c < 0 {
			return fmt.Errorf("negative scoring weight: %+v", w)
		}
		sum += c
	}
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("scoring weights sum to %v, want 1.0", sum)
	}
	return nil
}
