package engine

import (
	"reflect"
	"strings"
	"testing"

	"tripx/models"
)

// testCatalog builds a small preprocessed catalog for ranking tests.
func testCatalog(t *testing.T) ([]models.Destination, *Preprocessor) {
	t.Helper()
	p := NewPreprocessor()
	raw := []models.Destination{
		{Name: "Hanoi", Country: "Vietnam", Region: "Southeast Asia", AvgCostPerDay: 35, TripType: "culture", MinDays: 4, MaxDays: 10, SeasonBest: "fall", PopularityScore: 8.0, SafetyScore: 7.8},
		{Name: "Kyoto", Country: "Japan", Region: "East Asia", AvgCostPerDay: 110, TripType: "culture", MinDays: 3, MaxDays: 8, SeasonBest: "spring", PopularityScore: 9.4, SafetyScore: 9.6},
		{Name: "Paris", Country: "France", Region: "Western Europe", AvgCostPerDay: 150, TripType: "urban", MinDays: 3, MaxDays: 7, SeasonBest: "spring", PopularityScore: 9.6, SafetyScore: 7.9},
		{Name: "Santorini", Country: "Greece", Region: "Southern Europe", AvgCostPerDay: 160, TripType: "beach", MinDays: 3, MaxDays: 6, SeasonBest: "summer", PopularityScore: 9.3, SafetyScore: 8.9},
		{Name: "Maldives", Country: "Maldives", Region: "South Asia", AvgCostPerDay: 350, TripType: "luxury", MinDays: 4, MaxDays: 8, SeasonBest: "dry_season", PopularityScore: 9.5, SafetyScore: 9.4},
	}
	return p.PreprocessDestinations(raw), p
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	dests, p := testCatalog(t)
	e, err := NewEngine(dests, p, DefaultWeights())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func TestNewEngineRejectsBadWeights(t *testing.T) {
	dests, p := testCatalog(t)

	bad := Weights{BudgetFit: 0.5, DurationFit: 0.5, TripTypeMatch: 0.5}
	if _, err := NewEngine(dests, p, bad); err == nil {
		t.Fatal("expected error for weights not summing to 1.0")
	}

	negative := Weights{BudgetFit: 1.2, DurationFit: -0.2}
	if _, err := NewEngine(dests, p, negative); err == nil {
		t.Fatal("expected error for negative weight")
	}
}

func TestBudgetFitScore(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		budget, cost float64
		want         float64
	}{
		{100, 50, 1.0},
		{100, 100, 1.0}, // exactly at budget
		{100, 110, 0.8},
		{100, 120, 0.8}, // ratio 1.2 inclusive
		{100, 121, 0.5},
		{100, 150, 0.5}, // ratio 1.5 inclusive
		{100, 151, 0.1},
		{100, 200, 0.1},
	}

	for _, tt := range tests {
		if got := e.BudgetFitScore(tt.budget, tt.cost); got != tt.want {
			t.Errorf("BudgetFitScore(%v, %v) = %v, want %v", tt.budget, tt.cost, got, tt.want)
		}
	}
}

func TestTripTypeScore(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		userType, destType string
		want               float64
	}{
		{"culture", "culture", 1.0},
		{"culture", "urban", 0.6},
		{"culture", "nature", 0.6},
		{"culture", "beach", 0.2},
		{"beach", "luxury", 0.6},
		{"luxury", "nature", 0.2},
	}

	for _, tt := range tests {
		profile := models.UserProfile{PreferredTripType: tt.userType}
		dest := models.Destination{TripType: tt.destType}
		if got := e.TripTypeScore(profile, dest); got != tt.want {
			t.Errorf("TripTypeScore(%q, %q) = %v, want %v", tt.userType, tt.destType, got, tt.want)
		}
	}
}

func TestOverallScoreWeightedSum(t *testing.T) {
	e := newTestEngine(t)
	w := DefaultWeights()

	profile := e.prep.CreateUserProfile(100, 7, "culture", "spring")

	for _, dest := range e.Destinations() {
		total, breakdown := e.OverallScore(profile, dest)

		subScores := []float64{
			breakdown.BudgetFit, breakdown.DurationFit, breakdown.TripTypeMatch,
			breakdown.SeasonMatch, breakdown.QualityBonus,
		}
		for i, s := range subScores {
			if s < 0 || s > 1 {
				t.Errorf("%s: sub-score %d = %v outside [0,1]", dest.Name, i, s)
			}
		}

		want := w.BudgetFit*breakdown.BudgetFit +
			w.DurationFit*breakdown.DurationFit +
			w.TripTypeMatch*breakdown.TripTypeMatch +
			w.SeasonMatch*breakdown.SeasonMatch +
			w.QualityBonus*breakdown.QualityBonus
		if !almostEqual(total, want) {
			t.Errorf("%s: total %v != weighted sum %v", dest.Name, total, want)
		}
		if total != breakdown.TotalScore {
			t.Errorf("%s: breakdown total %v != returned total %v", dest.Name, breakdown.TotalScore, total)
		}
		if total < 0 || total > 1 {
			t.Errorf("%s: total %v outside [0,1]", dest.Name, total)
		}
	}
}

func TestFilterDestinations(t *testing.T) {
	e := newTestEngine(t)

	// budget 100: slack allows cost up to 130, excluding Paris (150),
	// Santorini (160) and Maldives (350)
	profile := e.prep.CreateUserProfile(100, 7, "culture", "spring")
	filtered := e.FilterDestinations(profile)

	names := make([]string, 0, len(filtered))
	for _, d := range filtered {
		names = append(names, d.Name)
	}
	if !reflect.DeepEqual(names, []string{"Hanoi", "Kyoto"}) {
		t.Errorf("filtered = %v, want [Hanoi Kyoto]", names)
	}

	// the duration leg never excludes: a 1-day trip against min 3 keeps
	// every affordable destination
	short := e.prep.CreateUserProfile(1000, 1, "culture", "spring")
	if got := len(e.FilterDestinations(short)); got != len(e.Destinations()) {
		t.Errorf("duration filter excluded destinations: got %d of %d", got, len(e.Destinations()))
	}
}

func TestGetRecommendationsSortedAndBounded(t *testing.T) {
	e := newTestEngine(t)
	profile := e.prep.CreateUserProfile(150, 5, "culture", "spring")

	recs := e.GetRecommendations(profile, 2)
	if len(recs) > 2 {
		t.Fatalf("got %d recommendations, want at most 2", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].OverallScore > recs[i-1].OverallScore {
			t.Errorf("not sorted: %v before %v", recs[i-1].OverallScore, recs[i].OverallScore)
		}
	}
	for _, rec := range recs {
		if rec.CostPerDay > profile.Budget*1.3 {
			t.Errorf("%s costs %v, over the slack limit %v", rec.Destination, rec.CostPerDay, profile.Budget*1.3)
		}
	}
}

func TestGetRecommendationsIdempotent(t *testing.T) {
	e := newTestEngine(t)
	profile := e.prep.CreateUserProfile(120, 6, "beach", "summer")

	first := e.GetRecommendations(profile, 3)
	second := e.GetRecommendations(profile, 3)
	if !reflect.DeepEqual(first, second) {
		t.Error("identical calls returned different results")
	}
}

func TestSingleDestinationEndToEnd(t *testing.T) {
	p := NewPreprocessor()
	raw := []models.Destination{
		{Name: "Only", Country: "X", Region: "R", AvgCostPerDay: 50, TripType: "culture", MinDays: 3, MaxDays: 10, SeasonBest: "spring", PopularityScore: 8, SafetyScore: 9},
	}
	e, err := NewEngine(p.PreprocessDestinations(raw), p, DefaultWeights())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	profile := p.CreateUserProfile(60, 5, "culture", "spring")
	recs := e.GetRecommendations(profile, 1)
	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recs))
	}

	b := recs[0].ScoreBreakdown
	if b.BudgetFit != 1.0 || b.DurationFit != 1.0 || b.TripTypeMatch != 1.0 || b.SeasonMatch != 1.0 {
		t.Errorf("breakdown = %+v, want all 1.0", b)
	}
	// one-row catalog: min == max, guarded normalization puts the quality
	// norm at 1.0, so the weighted sum is exactly 1.0
	if b.QualityBonus != 1.0 {
		t.Errorf("quality bonus = %v, want 1.0", b.QualityBonus)
	}
	if recs[0].OverallScore != 1.0 {
		t.Errorf("overall score = %v, want 1.0", recs[0].OverallScore)
	}
	if recs[0].Explanation == "" {
		t.Error("explanation is empty")
	}
}

func TestEmptyResultAndExplainNoResults(t *testing.T) {
	e := newTestEngine(t)

	// cheapest destination costs 35; budget 10 allows at most 13
	profile := e.prep.CreateUserProfile(10, 5, "culture", "spring")
	recs := e.GetRecommendations(profile, 5)
	if len(recs) != 0 {
		t.Fatalf("got %d recommendations, want 0", len(recs))
	}

	reason := e.ExplainNoResults(profile)
	if !strings.Contains(reason, "minimum destination cost is $35") {
		t.Errorf("reason %q does not mention the minimum destination cost", reason)
	}
}

func TestExplainNoResultsFallback(t *testing.T) {
	e := newTestEngine(t)

	// affordable and duration-compatible: both single checks pass, so the
	// generic nudge comes back
	profile := e.prep.CreateUserProfile(500, 5, "culture", "spring")
	reason := e.ExplainNoResults(profile)
	if !strings.Contains(reason, "Try adjusting your preferences") {
		t.Errorf("reason = %q, want the generic fallback", reason)
	}
}

func TestGenerateExplanationContent(t *testing.T) {
	e := newTestEngine(t)
	profile := e.prep.CreateUserProfile(150, 5, "culture", "spring")

	recs := e.GetRecommendations(profile, 5)
	if len(recs) == 0 {
		t.Fatal("expected recommendations")
	}

	var kyoto *models.Recommendation
	for i := range recs {
		if recs[i].Destination == "Kyoto" {
			kyoto = &recs[i]
		}
	}
	if kyoto == nil {
		t.Fatal("Kyoto not recommended")
	}

	for _, want := range []string{
		"Great value at $110/day (within your $150 budget)",
		"Perfect match for culture travel",
		"Ideal for your 5-day trip",
		"Perfect timing for spring travel",
		"High quality destination (popularity: 9.4, safety: 9.6)",
	} {
		if !strings.Contains(kyoto.Explanation, want) {
			t.Errorf("explanation %q missing %q", kyoto.Explanation, want)
		}
	}
	if !strings.Contains(kyoto.Explanation, " • ") {
		t.Errorf("explanation %q not bullet-joined", kyoto.Explanation)
	}
}
