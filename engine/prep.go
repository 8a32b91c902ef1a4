package engine

import (
	"tripx/models"
)

// costBound is one half-open cost bucket [Min, Max).
type costBound struct {
	Category string
	Min      float64
	Max      float64
}

// Preprocessor turns raw catalog rows and raw user inputs into the
// feature-complete forms the scoring engines work on. It holds only
// fixed lookup tables and is safe for concurrent use.
type Preprocessor struct {
	costBounds       []costBound
	seasonSimilarity map[string][]string
	qualityWeights   struct {
		Popularity float64
		Safety     float64
	}
}

// NewPreprocessor builds a preprocessor with the fixed category bounds
// and similarity tables.
func NewPreprocessor() *Preprocessor {
	p := &Preprocessor{
		costBounds: []costBound{
			{"budget", 0, 60},
			{"mid", 60, 120},
			{"premium", 120, 200},
			{"luxury", 200, -1}, // open-ended
		},
		// Hand-authored adjacency, deliberately not symmetric. Keyed by
		// the user's season; values are destination seasons that earn
		// partial credit.
		seasonSimilarity: map[string][]string{
			"spring":      {"summer", "fall"},
			"summer":      {"spring", "dry_season"},
			"fall":        {"spring", "winter"},
			"winter":      {"fall", "cool_season"},
			"dry_season":  {"summer", "spring"},
			"cool_season": {"winter", "fall"},
		},
	}
	p.qualityWeights.Popularity = 0.6
	p.qualityWeights.Safety = 0.4
	return p
}

// CategorizeCost maps a non-negative daily cost to one of the four fixed
// buckets. Boundary values belong to the upper bucket.
func (p *Preprocessor) CategorizeCost(cost float64) string {
	for _, b := range p.costBounds {
		if b.Max < 0 {
			if cost >= b.Min {
				return b.Category
			}
			continue
		}
		if cost >= b.Min && cost < b.Max {
			return b.Category
		}
	}
	return "luxury"
}

// DurationCompatibility scores how well a trip length fits a
// destination's recommended [minDays, maxDays] interval. Step function:
// inside the interval 1.0, one day outside 0.8, two or three days 0.5,
// further 0.2.
func (p *Preprocessor) DurationCompatibility(userDays, minDays, maxDays int) float64 {
	if userDays >= minDays && userDays <= maxDays {
		return 1.0
	}

	var distance int
	if userDays < minDays {
		distance = minDays - userDays
	} else {
		distance = userDays - maxDays
	}

	switch {
	case distance == 1:
		return 0.8
	case distance <= 3:
		return 0.5
	default:
		return 0.2
	}
}

// SeasonMatch scores a destination's best season against the user's
// preferred one: exact 1.0, adjacent per the fixed table 0.6, else 0.3.
func (p *Preprocessor) SeasonMatch(userSeason, destSeason string) float64 {
	if userSeason == destSeason {
		return 1.0
	}
	for _, s := range p.seasonSimilarity[userSeason] {
		if s == destSeason {
			return 0.6
		}
	}
	return 0.3
}

// QualityScore blends popularity and safety with fixed weights.
func (p *Preprocessor) QualityScore(popularity, safety float64) float64 {
	return popularity*p.qualityWeights.Popularity + safety*p.qualityWeights.Safety
}

// EncodeTripType one-hot encodes a trip type over the five known types.
// Unknown types produce an all-zero encoding.
func (p *Preprocessor) EncodeTripType(tripType string) map[string]int {
	encoding := make(map[string]int, len(models.TripTypes))
	for _, t := range models.TripTypes {
		encoding["type_"+t] = 0
	}
	if models.IsKnownTripType(tripType) {
		encoding["type_"+tripType] = 1
	}
	return encoding
}

// minMax scales v into [0,1] given catalog-wide bounds. A zero-variance
// feature (max == min) would divide by zero; every row then sits at the
// shared maximum, so the scaled value is 1.
func minMax(v, min, max float64) float64 {
	if max == min {
		return 1.0
	}
	return (v - min) / (max - min)
}

// NormalizeNumericalFeatures attaches min-max scaled variants of the six
// numeric features, with bounds taken over the entire catalog. Bounds are
// fixed at this point and never move while the snapshot is served.
func (p *Preprocessor) NormalizeNumericalFeatures(destinations []models.Destination) {
	if len(destinations) == 0 {
		return
	}

	type bounds struct{ min, max float64 }
	track := func(b *bounds, v float64, first bool) {
		if first || v < b.min {
			b.min = v
		}
		if first || v > b.max {
			b.max = v
		}
	}

	var cost, pop, safety, quality, minD, maxD bounds
	for i, d := range destinations {
		first := i == 0
		track(&cost, d.AvgCostPerDay, first)
		track(&pop, d.PopularityScore, first)
		track(&safety, d.SafetyScore, first)
		track(&quality, d.QualityScore, first)
		track(&minD, float64(d.MinDays), first)
		track(&maxD, float64(d.MaxDays), first)
	}

	for i := range destinations {
		d := &destinations[i]
		d.Norm = models.NormalizedFeatures{
			AvgCostPerDay:   minMax(d.AvgCostPerDay, cost.min, cost.max),
			PopularityScore: minMax(d.PopularityScore, pop.min, pop.max),
			SafetyScore:     minMax(d.SafetyScore, safety.min, safety.max),
			QualityScore:    minMax(d.QualityScore, quality.min, quality.max),
			MinDays:         minMax(float64(d.MinDays), minD.min, minD.max),
			MaxDays:         minMax(float64(d.MaxDays), maxD.min, maxD.max),
		}
	}
}

// PreprocessDestinations attaches every derived feature to the raw rows:
// cost category, quality score, one-hot type flags, duration range and
// flexibility, then catalog-wide normalization. Run once per snapshot.
func (p *Preprocessor) PreprocessDestinations(destinations []models.Destination) []models.Destination {
	processed := make([]models.Destination, len(destinations))
	copy(processed, destinations)

	for i := range processed {
		d := &processed[i]
		d.CostCategory = p.CategorizeCost(d.AvgCostPerDay)
		d.QualityScore = p.QualityScore(d.PopularityScore, d.SafetyScore)
		d.TypeFlags = p.EncodeTripType(d.TripType)
		d.DurationRange = d.MaxDays - d.MinDays
		if d.MaxDays > 0 {
			d.DurationFlexibility = float64(d.DurationRange) / float64(d.MaxDays)
		}
	}

	p.NormalizeNumericalFeatures(processed)

	return processed
}

// CreateUserProfile builds the ephemeral per-request profile from the
// four raw inputs.
func (p *Preprocessor) CreateUserProfile(budget float64, duration int, tripType, season string) models.UserProfile {
	return models.UserProfile{
		Budget:            budget,
		Duration:          duration,
		PreferredTripType: tripType,
		PreferredSeason:   season,
		CostCategory:      p.CategorizeCost(budget),
		TypeFlags:         p.EncodeTripType(tripType),
	}
}
