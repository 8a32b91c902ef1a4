package engine

import (
	"fmt"
	"math"
	"strings"

	"tripx/models"
)

const (
	valueWeight     = 0.1  // multiplier on the value-for-money score
	diversityWeight = 0.05 // multiplier on the diversity bonus
)

// climateBonuses maps a destination climate to per-season score bonuses,
// rewarding travel in the climate's pleasant window.
var climateBonuses = map[string]map[string]float64{
	"tropical":      {"winter": 0.2, "dry_season": 0.3},
	"temperate":     {"spring": 0.2, "summer": 0.2, "fall": 0.1},
	"mediterranean": {"spring": 0.3, "summer": 0.2, "fall": 0.1},
	"desert":        {"winter": 0.3, "spring": 0.2, "fall": 0.2},
	"arctic":        {"summer": 0.4, "spring": 0.1},
}

// EnhancedEngine layers value-for-money and cross-selection diversity on
// top of the base scoring primitives. Selection is greedy and iterative:
// candidate scores are recomputed at every pick because the diversity
// term depends on what has already been chosen in the same call.
type EnhancedEngine struct {
	*Engine
}

// NewEnhancedEngine builds the diversity-aware engine over the same
// preprocessed catalog, with the retuned weight vector.
func NewEnhancedEngine(destinations []models.Destination, prep *Preprocessor) (*EnhancedEngine, error) {
	base, err := NewEngine(destinations, prep, EnhancedWeights())
	if err != nil {
		return nil, err
	}
	return &EnhancedEngine{Engine: base}, nil
}

// ValueScore rates quality per dollar: quality is the popularity/safety
// midpoint and cost is normalized to a 0-3 range by dividing by 100.
// Within budget the ratio counts at 0.3 (capped at 1.0), over budget at
// 0.1 (floored at 0.1). A zero-cost destination scores 0.
func (e *EnhancedEngine) ValueScore(userBudget, destCost, popularity, safety float64) float64 {
	if destCost == 0 {
		return 0
	}

	qualityScore := (popularity + safety) / 2
	valueRatio := qualityScore / (destCost / 100)

	if destCost <= userBudget {
		return math.Min(valueRatio*0.3, 1.0)
	}
	return math.Max(valueRatio*0.1, 0.1)
}

// SeasonalBonus is the base season match plus a climate-specific bonus,
// capped at 1.0. Unknown or empty climates add nothing.
func (e *EnhancedEngine) SeasonalBonus(userSeason, destSeason, destClimate string) float64 {
	baseScore := e.prep.SeasonMatch(userSeason, destSeason)
	bonus := climateBonuses[destClimate][userSeason]
	return math.Min(baseScore+bonus, 1.0)
}

// DiversityBonus rewards a candidate that broadens the already-selected
// set: +0.3 for a new region, +0.2 for a new trip type, capped at 0.5.
func (e *EnhancedEngine) DiversityBonus(selected []models.Recommendation, candidate models.Destination) float64 {
	if len(selected) == 0 {
		return 0
	}

	newRegion := true
	newType := true
	for _, rec := range selected {
		if rec.Region == candidate.Region {
			newRegion = false
		}
		if rec.TripType == candidate.TripType {
			newType = false
		}
	}

	diversityScore := 0.0
	if newRegion {
		diversityScore += 0.3
	}
	if newType {
		diversityScore += 0.2
	}
	return math.Min(diversityScore, 0.5)
}

// EnhancedScore computes the full diversity-aware score for a candidate
// given the recommendations already selected in this call. The weighted
// base sum plus the value and diversity bonuses is capped at 1.0.
func (e *EnhancedEngine) EnhancedScore(profile models.UserProfile, dest models.Destination, selected []models.Recommendation) (float64, models.ScoreBreakdown) {
	budgetScore := e.BudgetFitScore(profile.Budget, dest.AvgCostPerDay)
	durationScore := e.prep.DurationCompatibility(profile.Duration, dest.MinDays, dest.MaxDays)
	tripTypeScore := e.TripTypeScore(profile, dest)
	seasonScore := e.SeasonalBonus(profile.PreferredSeason, dest.SeasonBest, dest.Climate)
	qualityScore := dest.Norm.QualityScore

	valueScore := e.ValueScore(profile.Budget, dest.AvgCostPerDay, dest.PopularityScore, dest.SafetyScore)
	diversityScore := e.DiversityBonus(selected, dest)

	baseTotal := e.weights.BudgetFit*budgetScore +
		e.weights.DurationFit*durationScore +
		e.weights.TripTypeMatch*tripTypeScore +
		e.weights.SeasonMatch*seasonScore +
		e.weights.QualityBonus*qualityScore

	totalScore := math.Min(baseTotal+valueScore*valueWeight+diversityScore*diversityWeight, 1.0)

	breakdown := models.ScoreBreakdown{
		BudgetFit:      budgetScore,
		DurationFit:    durationScore,
		TripTypeMatch:  tripTypeScore,
		SeasonMatch:    seasonScore,
		QualityBonus:   qualityScore,
		ValueBonus:     valueScore,
		DiversityBonus: diversityScore,
		TotalScore:     totalScore,
	}

	return totalScore, breakdown
}

// GetRecommendations greedily builds the result list: at each step every
// remaining candidate is rescored against the current selection and the
// single best is appended and removed from the pool. An order-sensitive,
// diversity-biased top-N rather than a one-shot sort.
func (e *EnhancedEngine) GetRecommendations(profile models.UserProfile, topN int) []models.Recommendation {
	filtered := e.FilterDestinations(profile)
	if len(filtered) == 0 {
		return []models.Recommendation{}
	}

	recommendations := make([]models.Recommendation, 0, topN)
	remaining := make([]models.Destination, len(filtered))
	copy(remaining, filtered)

	rounds := topN
	if rounds > len(remaining) {
		rounds = len(remaining)
	}

	for i := 0; i < rounds; i++ {
		bestScore := -1.0
		bestIdx := -1
		var bestBreakdown models.ScoreBreakdown

		for idx, d := range remaining {
			totalScore, breakdown := e.EnhancedScore(profile, d, recommendations)
			if totalScore > bestScore {
				bestScore = totalScore
				bestIdx = idx
				bestBreakdown = breakdown
			}
		}

		if bestIdx < 0 {
			break
		}

		d := remaining[bestIdx]
		explanation := e.generateEnhancedExplanation(d, bestBreakdown, profile)
		recommendations = append(recommendations, buildRecommendation(d, round3(bestScore), explanation, bestBreakdown))
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return recommendations
}

// generateEnhancedExplanation extends the base explanation with value and
// diversity phrasing.
func (e *EnhancedEngine) generateEnhancedExplanation(dest models.Destination, breakdown models.ScoreBreakdown, profile models.UserProfile) string {
	var explanations []string
	cost := dest.AvgCostPerDay
	userBudget := profile.Budget

	if breakdown.BudgetFit >= 0.8 {
		if cost <= userBudget {
			if breakdown.ValueBonus > 0.2 {
				explanations = append(explanations, fmt.Sprintf("Excellent value at $%s/day (within your $%s budget)", fmtAmount(cost), fmtAmount(userBudget)))
			} else {
				explanations = append(explanations, fmt.Sprintf("Great value at $%s/day (within your $%s budget)", fmtAmount(cost), fmtAmount(userBudget)))
			}
		} else {
			explanations = append(explanations, fmt.Sprintf("Slightly over budget at $%s/day but worth it", fmtAmount(cost)))
		}
	}

	if breakdown.TripTypeMatch >= 0.8 {
		explanations = append(explanations, fmt.Sprintf("Perfect match for %s travel", profile.PreferredTripType))
	} else if breakdown.TripTypeMatch >= 0.5 {
		explanations = append(explanations, fmt.Sprintf("Great alternative to %s travel", profile.PreferredTripType))
	}

	if breakdown.DurationFit >= 0.8 {
		explanations = append(explanations, fmt.Sprintf("Ideal for your %d-day trip", profile.Duration))
	}

	if breakdown.SeasonMatch >= 0.8 {
		explanations = append(explanations, fmt.Sprintf("Perfect timing for %s travel", profile.PreferredSeason))
	} else if breakdown.SeasonMatch >= 0.6 {
		explanations = append(explanations, fmt.Sprintf("Good season for travel (%s climate)", dest.Climate))
	}

	if dest.QualityScore >= 8.5 {
		explanations = append(explanations, fmt.Sprintf("High quality destination (popularity: %.1f, safety: %.1f)", dest.PopularityScore, dest.SafetyScore))
	} else if dest.QualityScore >= 7.5 {
		explanations = append(explanations, "Well-rated destination")
	}

	if breakdown.DiversityBonus > 0.2 {
		explanations = append(explanations, fmt.Sprintf("Adds great variety to your options (%s region)", dest.Region))
	}

	return strings.Join(explanations, " • ")
}
