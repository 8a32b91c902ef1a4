package engine

import (
	"testing"

	"tripx/models"
)

func newTestEnhancedEngine(t *testing.T, raw []models.Destination) *EnhancedEngine {
	t.Helper()
	p := NewPreprocessor()
	e, err := NewEnhancedEngine(p.PreprocessDestinations(raw), p)
	if err != nil {
		t.Fatalf("NewEnhancedEngine: %v", err)
	}
	return e
}

func TestValueScore(t *testing.T) {
	e := newTestEnhancedEngine(t, []models.Destination{{Name: "X", AvgCostPerDay: 1, MaxDays: 1}})

	tests := []struct {
		name                             string
		budget, cost, popularity, safety float64
		want                             float64
	}{
		// zero cost guards the division
		{"zero cost", 100, 0, 8, 9, 0},
		// quality 8.5 / (50/100) = 17, 17*0.3 capped at 1.0
		{"capped within budget", 100, 50, 8, 9, 1.0},
		// quality 2 / (100/100) = 2, 2*0.3 = 0.6
		{"uncapped within budget", 100, 100, 2, 2, 0.6},
		// over budget: quality 5 / 1 = 5, 5*0.1 = 0.5
		{"over budget", 50, 100, 5, 5, 0.5},
		// over budget floor: quality 0.5 / 3 ≈ 0.167, *0.1 floored at 0.1
		{"over budget floor", 50, 300, 0.5, 0.5, 0.1},
	}

	for _, tt := range tests {
		if got := e.ValueScore(tt.budget, tt.cost, tt.popularity, tt.safety); !almostEqual(got, tt.want) {
			t.Errorf("%s: ValueScore(%v, %v, %v, %v) = %v, want %v",
				tt.name, tt.budget, tt.cost, tt.popularity, tt.safety, got, tt.want)
		}
	}
}

func TestSeasonalBonus(t *testing.T) {
	e := newTestEnhancedEngine(t, []models.Destination{{Name: "X", AvgCostPerDay: 1, MaxDays: 1}})

	tests := []struct {
		userSeason, destSeason, climate string
		want                            float64
	}{
		// base 0.3 + tropical winter bonus 0.2
		{"winter", "summer", "tropical", 0.5},
		// exact match capped at 1.0 despite the 0.3 bonus
		{"dry_season", "dry_season", "tropical", 1.0},
		// mediterranean spring bonus 0.3 on a 0.6 base
		{"spring", "summer", "mediterranean", 0.9},
		// unknown climate adds nothing
		{"winter", "summer", "steppe", 0.3},
		// empty climate adds nothing
		{"winter", "summer", "", 0.3},
	}

	for _, tt := range tests {
		if got := e.SeasonalBonus(tt.userSeason, tt.destSeason, tt.climate); !almostEqual(got, tt.want) {
			t.Errorf("SeasonalBonus(%q, %q, %q) = %v, want %v", tt.userSeason, tt.destSeason, tt.climate, got, tt.want)
		}
	}
}

func TestDiversityBonus(t *testing.T) {
	e := newTestEnhancedEngine(t, []models.Destination{{Name: "X", AvgCostPerDay: 1, MaxDays: 1}})

	selected := []models.Recommendation{
		{Destination: "A", Region: "Southeast Asia", TripType: "beach"},
	}

	tests := []struct {
		name      string
		selected  []models.Recommendation
		candidate models.Destination
		want      float64
	}{
		{"empty selection", nil, models.Destination{Region: "East Asia", TripType: "culture"}, 0},
		{"new region and type", selected, models.Destination{Region: "East Asia", TripType: "culture"}, 0.5},
		{"new region only", selected, models.Destination{Region: "East Asia", TripType: "beach"}, 0.3},
		{"new type only", selected, models.Destination{Region: "Southeast Asia", TripType: "culture"}, 0.2},
		{"nothing new", selected, models.Destination{Region: "Southeast Asia", TripType: "beach"}, 0},
	}

	for _, tt := range tests {
		if got := e.DiversityBonus(tt.selected, tt.candidate); !almostEqual(got, tt.want) {
			t.Errorf("%s: DiversityBonus = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestEnhancedScoreCappedAtOne(t *testing.T) {
	raw := []models.Destination{
		{Name: "Perfect", Region: "R1", AvgCostPerDay: 40, TripType: "culture", MinDays: 3, MaxDays: 10, SeasonBest: "spring", Climate: "mediterranean", PopularityScore: 10, SafetyScore: 10},
	}
	e := newTestEnhancedEngine(t, raw)

	profile := e.prep.CreateUserProfile(100, 5, "culture", "spring")
	total, breakdown := e.EnhancedScore(profile, e.Destinations()[0], nil)
	if total > 1.0 {
		t.Errorf("total %v exceeds the 1.0 cap", total)
	}
	if breakdown.TotalScore != total {
		t.Errorf("breakdown total %v != returned total %v", breakdown.TotalScore, total)
	}
	if breakdown.ValueBonus == 0 {
		t.Error("value bonus missing from breakdown")
	}
}

func TestEnhancedRecommendationsDistinct(t *testing.T) {
	raw := []models.Destination{
		{Name: "A", Region: "R1", AvgCostPerDay: 50, TripType: "culture", MinDays: 3, MaxDays: 10, SeasonBest: "spring", PopularityScore: 9, SafetyScore: 9},
		{Name: "B", Region: "R2", AvgCostPerDay: 55, TripType: "culture", MinDays: 3, MaxDays: 10, SeasonBest: "spring", PopularityScore: 8, SafetyScore: 8},
		{Name: "C", Region: "R3", AvgCostPerDay: 60, TripType: "urban", MinDays: 3, MaxDays: 10, SeasonBest: "spring", PopularityScore: 7, SafetyScore: 7},
		{Name: "D", Region: "R1", AvgCostPerDay: 65, TripType: "nature", MinDays: 3, MaxDays: 10, SeasonBest: "summer", PopularityScore: 6, SafetyScore: 6},
	}
	e := newTestEnhancedEngine(t, raw)

	profile := e.prep.CreateUserProfile(100, 5, "culture", "spring")
	recs := e.GetRecommendations(profile, 3)
	if len(recs) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(recs))
	}

	seen := make(map[string]bool)
	for _, rec := range recs {
		if seen[rec.Destination] {
			t.Errorf("destination %q selected twice", rec.Destination)
		}
		seen[rec.Destination] = true
	}
}

func TestEnhancedSelectionPrefersNewRegion(t *testing.T) {
	// A wins the first pick outright. B and C are identical apart from
	// region: B repeats A's region, C introduces a new one. The second
	// pick must be C on the diversity bonus alone.
	raw := []models.Destination{
		{Name: "A", Region: "R1", AvgCostPerDay: 50, TripType: "culture", MinDays: 3, MaxDays: 10, SeasonBest: "spring", PopularityScore: 9, SafetyScore: 9},
		{Name: "B", Region: "R1", AvgCostPerDay: 80, TripType: "urban", MinDays: 3, MaxDays: 10, SeasonBest: "summer", PopularityScore: 7, SafetyScore: 7},
		{Name: "C", Region: "R2", AvgCostPerDay: 80, TripType: "urban", MinDays: 3, MaxDays: 10, SeasonBest: "summer", PopularityScore: 7, SafetyScore: 7},
	}
	e := newTestEnhancedEngine(t, raw)

	profile := e.prep.CreateUserProfile(100, 5, "culture", "spring")
	recs := e.GetRecommendations(profile, 3)
	if len(recs) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(recs))
	}
	if recs[0].Destination != "A" {
		t.Fatalf("first pick = %q, want A", recs[0].Destination)
	}
	if recs[1].Destination != "C" {
		t.Errorf("second pick = %q, want C (new region)", recs[1].Destination)
	}
	if recs[1].ScoreBreakdown.DiversityBonus <= recs[2].ScoreBreakdown.DiversityBonus-0.001 {
		t.Errorf("second pick diversity %v not above third %v",
			recs[1].ScoreBreakdown.DiversityBonus, recs[2].ScoreBreakdown.DiversityBonus)
	}
}

func TestEnhancedEmptyFilter(t *testing.T) {
	raw := []models.Destination{
		{Name: "Expensive", Region: "R1", AvgCostPerDay: 300, TripType: "luxury", MinDays: 3, MaxDays: 10, SeasonBest: "winter", PopularityScore: 9, SafetyScore: 9},
	}
	e := newTestEnhancedEngine(t, raw)

	profile := e.prep.CreateUserProfile(50, 5, "culture", "spring")
	recs := e.GetRecommendations(profile, 3)
	if len(recs) != 0 {
		t.Errorf("got %d recommendations, want 0", len(recs))
	}
}
