package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "destinations.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp csv: %v", err)
	}
	return path
}

const validCSV = `destination,country,region,avg_cost_per_day,trip_type,min_days,max_days,season_best,climate,popularity_score,safety_score
Bali,Indonesia,Southeast Asia,55,beach,5,14,dry_season,tropical,9.2,7.5
Kyoto,Japan,East Asia,110,culture,3,8,spring,temperate,9.4,9.6
`

func TestCSVSourceLoad(t *testing.T) {
	source := NewCSVSource(writeTempCSV(t, validCSV))

	destinations, err := source.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(destinations) != 2 {
		t.Fatalf("got %d destinations, want 2", len(destinations))
	}

	bali := destinations[0]
	if bali.Name != "Bali" || bali.Country != "Indonesia" || bali.Region != "Southeast Asia" {
		t.Errorf("identity fields = %+v", bali)
	}
	if bali.AvgCostPerDay != 55 || bali.MinDays != 5 || bali.MaxDays != 14 {
		t.Errorf("numeric fields = %+v", bali)
	}
	if bali.TripType != "beach" || bali.SeasonBest != "dry_season" || bali.Climate != "tropical" {
		t.Errorf("categorical fields = %+v", bali)
	}
	if bali.PopularityScore != 9.2 || bali.SafetyScore != 7.5 {
		t.Errorf("score fields = %+v", bali)
	}
}

func TestCSVSourceMissingColumn(t *testing.T) {
	csv := `destination,country,avg_cost_per_day
Bali,Indonesia,55
`
	source := NewCSVSource(writeTempCSV(t, csv))

	_, err := source.Load()
	if err == nil {
		t.Fatal("expected error for missing columns")
	}
	if !strings.Contains(err.Error(), "region") {
		t.Errorf("error %q does not name a missing column", err)
	}
}

func TestCSVSourceNoClimateColumn(t *testing.T) {
	// climate is optional: rows load with an empty climate
	csv := `destination,country,region,avg_cost_per_day,trip_type,min_days,max_days,season_best,popularity_score,safety_score
Bali,Indonesia,Southeast Asia,55,beach,5,14,dry_season,9.2,7.5
`
	source := NewCSVSource(writeTempCSV(t, csv))

	destinations, err := source.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if destinations[0].Climate != "" {
		t.Errorf("climate = %q, want empty", destinations[0].Climate)
	}
}

func TestCSVSourceHeaderOnly(t *testing.T) {
	csv := "destination,country,region,avg_cost_per_day,trip_type,min_days,max_days,season_best,popularity_score,safety_score\n"
	source := NewCSVSource(writeTempCSV(t, csv))

	if _, err := source.Load(); err == nil {
		t.Fatal("expected error for catalog with no rows")
	}
}

func TestCSVSourceBadNumber(t *testing.T) {
	csv := `destination,country,region,avg_cost_per_day,trip_type,min_days,max_days,season_best,popularity_score,safety_score
Bali,Indonesia,Southeast Asia,cheap,beach,5,14,dry_season,9.2,7.5
`
	source := NewCSVSource(writeTempCSV(t, csv))

	_, err := source.Load()
	if err == nil {
		t.Fatal("expected error for non-numeric cost")
	}
	if !strings.Contains(err.Error(), "avg_cost_per_day") {
		t.Errorf("error %q does not name the bad field", err)
	}
}

func TestCSVSourceMissingFile(t *testing.T) {
	source := NewCSVSource(filepath.Join(t.TempDir(), "nope.csv"))
	if _, err := source.Load(); err == nil {
		t.Fatal("expected error for missing file")
	}
}
