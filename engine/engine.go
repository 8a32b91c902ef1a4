package engine

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"tripx/models"
)

// budgetSlack is the multiplier applied to the user's budget when
// filtering candidates: destinations up to 30% over budget stay in.
const budgetSlack = 1.3

// tripTypeCompatibility maps the user's preferred type to destination
// types that earn partial credit. Hand-authored, not symmetric.
var tripTypeCompatibility = map[string][]string{
	"culture": {"urban", "nature"},
	"beach":   {"nature", "luxury"},
	"urban":   {"culture", "luxury"},
	"luxury":  {"beach", "urban"},
	"nature":  {"beach", "culture"},
}

// Engine ranks a processed catalog snapshot against user profiles. The
// snapshot and weight vector are fixed at construction; every call is a
// pure read.
type Engine struct {
	destinations []models.Destination
	prep         *Preprocessor
	weights      Weights
}

// NewEngine builds an engine over a preprocessed catalog. The weight
// vector is validated once here and never mutated afterwards.
func NewEngine(destinations []models.Destination, prep *Preprocessor, weights Weights) (*Engine, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		destinations: destinations,
		prep:         prep,
		weights:      weights,
	}, nil
}

// Destinations returns the catalog snapshot the engine serves.
func (e *Engine) Destinations() []models.Destination {
	return e.destinations
}

// BudgetFitScore scores a destination's daily cost against the user's
// budget: at or under budget 1.0, then a decreasing step function on the
// cost/budget ratio (≤1.2 → 0.8, ≤1.5 → 0.5, else 0.1).
func (e *Engine) BudgetFitScore(userBudget, destCost float64) float64 {
	if userBudget >= destCost {
		return 1.0
	}

	budgetRatio := destCost / userBudget
	switch {
	case budgetRatio <= 1.2:
		return 0.8
	case budgetRatio <= 1.5:
		return 0.5
	default:
		return 0.1
	}
}

// TripTypeScore scores the destination's trip type against the user's
// preference: exact 1.0, compatible per the fixed table 0.6, else 0.2.
func (e *Engine) TripTypeScore(profile models.UserProfile, dest models.Destination) float64 {
	if profile.PreferredTripType == dest.TripType {
		return 1.0
	}
	for _, t := range tripTypeCompatibility[profile.PreferredTripType] {
		if t == dest.TripType {
			return 0.6
		}
	}
	return 0.2
}

// OverallScore computes the weighted total match score for one
// (profile, destination) pair along with its full breakdown.
func (e *Engine) OverallScore(profile models.UserProfile, dest models.Destination) (float64, models.ScoreBreakdown) {
	budgetScore := e.BudgetFitScore(profile.Budget, dest.AvgCostPerDay)
	durationScore := e.prep.DurationCompatibility(profile.Duration, dest.MinDays, dest.MaxDays)
	tripTypeScore := e.TripTypeScore(profile, dest)
	seasonScore := e.prep.SeasonMatch(profile.PreferredSeason, dest.SeasonBest)
	qualityScore := dest.Norm.QualityScore

	totalScore := e.weights.BudgetFit*budgetScore +
		e.weights.DurationFit*durationScore +
		e.weights.TripTypeMatch*tripTypeScore +
		e.weights.SeasonMatch*seasonScore +
		e.weights.QualityBonus*qualityScore

	breakdown := models.ScoreBreakdown{
		BudgetFit:     budgetScore,
		DurationFit:   durationScore,
		TripTypeMatch: tripTypeScore,
		SeasonMatch:   seasonScore,
		QualityBonus:  qualityScore,
		TotalScore:    totalScore,
	}

	return totalScore, breakdown
}

// FilterDestinations narrows the catalog to plausible candidates: cost
// within 1.3x budget and duration score at least 0.2. The duration leg
// never excludes anything in practice (the score floor is exactly 0.2);
// kept to match the observed behavior of the scoring pipeline.
func (e *Engine) FilterDestinations(profile models.UserProfile) []models.Destination {
	maxBudget := profile.Budget * budgetSlack

	var filtered []models.Destination
	for _, d := range e.destinations {
		if d.AvgCostPerDay > maxBudget {
			continue
		}
		if e.prep.DurationCompatibility(profile.Duration, d.MinDays, d.MaxDays) < 0.2 {
			continue
		}
		filtered = append(filtered, d)
	}
	return filtered
}

// GetRecommendations scores every filtered candidate, sorts descending
// by overall score (stable, so catalog order breaks ties) and returns
// the first topN. An empty candidate set yields an empty list, not an
// error.
func (e *Engine) GetRecommendations(profile models.UserProfile, topN int) []models.Recommendation {
	filtered := e.FilterDestinations(profile)
	if len(filtered) == 0 {
		return []models.Recommendation{}
	}

	recommendations := make([]models.Recommendation, 0, len(filtered))
	for _, d := range filtered {
		totalScore, breakdown := e.OverallScore(profile, d)
		explanation := e.generateExplanation(d, breakdown, profile)
		recommendations = append(recommendations, buildRecommendation(d, round3(totalScore), explanation, breakdown))
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].OverallScore > recommendations[j].OverallScore
	})

	if topN > 0 && len(recommendations) > topN {
		recommendations = recommendations[:topN]
	}
	return recommendations
}

// generateExplanation joins canned phrases for every sub-score that
// clears its threshold: ≥0.8 reads as a strong match, ≥0.5 as moderate,
// below that the factor is omitted.
func (e *Engine) generateExplanation(dest models.Destination, breakdown models.ScoreBreakdown, profile models.UserProfile) string {
	var explanations []string
	cost := dest.AvgCostPerDay
	userBudget := profile.Budget

	if breakdown.BudgetFit >= 0.8 {
		if cost <= userBudget {
			explanations = append(explanations, fmt.Sprintf("Great value at $%s/day (within your $%s budget)", fmtAmount(cost), fmtAmount(userBudget)))
		} else {
			explanations = append(explanations, fmt.Sprintf("Slightly over budget at $%s/day but worth it", fmtAmount(cost)))
		}
	} else if breakdown.BudgetFit >= 0.5 {
		explanations = append(explanations, fmt.Sprintf("Moderate fit for $%s budget ($%s/day)", fmtAmount(userBudget), fmtAmount(cost)))
	}

	if breakdown.TripTypeMatch >= 0.8 {
		explanations = append(explanations, fmt.Sprintf("Perfect match for %s travel", profile.PreferredTripType))
	} else if breakdown.TripTypeMatch >= 0.5 {
		explanations = append(explanations, fmt.Sprintf("Great alternative to %s travel", profile.PreferredTripType))
	}

	if breakdown.DurationFit >= 0.8 {
		explanations = append(explanations, fmt.Sprintf("Ideal for your %d-day trip", profile.Duration))
	} else if breakdown.DurationFit >= 0.5 {
		explanations = append(explanations, fmt.Sprintf("Works for %d days", profile.Duration))
	}

	if breakdown.SeasonMatch >= 0.8 {
		explanations = append(explanations, fmt.Sprintf("Perfect timing for %s travel", profile.PreferredSeason))
	} else if breakdown.SeasonMatch >= 0.5 {
		explanations = append(explanations, "Good season for travel")
	}

	if dest.QualityScore >= 8.5 {
		explanations = append(explanations, fmt.Sprintf("High quality destination (popularity: %.1f, safety: %.1f)", dest.PopularityScore, dest.SafetyScore))
	} else if dest.QualityScore >= 7.5 {
		explanations = append(explanations, "Well-rated destination")
	}

	return strings.Join(explanations, " • ")
}

// ExplainNoResults diagnoses an empty recommendation list: budget too
// low for the whole catalog, no duration-compatible destination, or a
// generic nudge when neither single check explains the empty intersection.
func (e *Engine) ExplainNoResults(profile models.UserProfile) string {
	var explanations []string

	maxBudget := profile.Budget * budgetSlack
	anyAffordable := false
	minCost := math.Inf(1)
	for _, d := range e.destinations {
		if d.AvgCostPerDay < minCost {
			minCost = d.AvgCostPerDay
		}
		if d.AvgCostPerDay <= maxBudget {
			anyAffordable = true
		}
	}
	if !anyAffordable && len(e.destinations) > 0 {
		explanations = append(explanations, fmt.Sprintf("Budget too low - minimum destination cost is $%s/day", fmtAmount(minCost)))
	}

	anyDurationCompatible := false
	for _, d := range e.destinations {
		if e.prep.DurationCompatibility(profile.Duration, d.MinDays, d.MaxDays) >= 0.2 {
			anyDurationCompatible = true
			break
		}
	}
	if !anyDurationCompatible {
		explanations = append(explanations, fmt.Sprintf("No destinations suitable for %d-day trips", profile.Duration))
	}

	if len(explanations) == 0 {
		explanations = append(explanations, "Try adjusting your preferences for more options")
	}

	return strings.Join(explanations, " • ")
}

func buildRecommendation(d models.Destination, score float64, explanation string, breakdown models.ScoreBreakdown) models.Recommendation {
	return models.Recommendation{
		Destination:     d.Name,
		Country:         d.Country,
		Region:          d.Region,
		CostPerDay:      d.AvgCostPerDay,
		TripType:        d.TripType,
		DurationRange:   fmt.Sprintf("%d-%d days", d.MinDays, d.MaxDays),
		BestSeason:      d.SeasonBest,
		Climate:         d.Climate,
		PopularityScore: d.PopularityScore,
		SafetyScore:     d.SafetyScore,
		OverallScore:    score,
		Explanation:     explanation,
		ScoreBreakdown:  breakdown,
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// fmtAmount renders a dollar amount without trailing zeros (50, 85.5).
func fmtAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
