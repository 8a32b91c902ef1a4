package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"tripx/models"
)

// requiredColumns are the header names every catalog source must provide.
// climate is optional: only the diversity-aware engine uses it.
var requiredColumns = []string{
	"destination",
	"country",
	"region",
	"avg_cost_per_day",
	"trip_type",
	"min_days",
	"max_days",
	"season_best",
	"popularity_score",
	"safety_score",
}

// CSVSource reads the destination catalog from a headered CSV file.
type CSVSource struct {
	path string
}

// NewCSVSource returns a source reading from the given file path.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

// Name identifies the source in logs and health output.
func (s *CSVSource) Name() string {
	return "csv:" + s.path
}

// Load parses the file, validates the header against the required
// columns, and returns the raw rows. Missing columns or an empty data
// section are data-integrity errors and abort the load.
func (s *CSVSource) Load() ([]models.Destination, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse catalog csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("catalog file %s is empty", s.path)
	}

	colIdx := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		colIdx[name] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := colIdx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("catalog file %s is missing required columns: %v", s.path, missing)
	}

	if len(records) == 1 {
		return nil, fmt.Errorf("catalog file %s contains no destinations", s.path)
	}

	climateIdx, hasClimate := colIdx["climate"]

	destinations := make([]models.Destination, 0, len(records)-1)
	for rowNum, record := range records[1:] {
		field := func(col string) string { return record[colIdx[col]] }

		cost, err := strconv.ParseFloat(field("avg_cost_per_day"), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: avg_cost_per_day: %w", rowNum+2, err)
		}
		minDays, err := strconv.Atoi(field("min_days"))
		if err != nil {
			return nil, fmt.Errorf("row %d: min_days: %w", rowNum+2, err)
		}
		maxDays, err := strconv.Atoi(field("max_days"))
		if err != nil {
			return nil, fmt.Errorf("row %d: max_days: %w", rowNum+2, err)
		}
		popularity, err := strconv.ParseFloat(field("popularity_score"), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: popularity_score: %w", rowNum+2, err)
		}
		safety, err := strconv.ParseFloat(field("safety_score"), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: safety_score: %w", rowNum+2, err)
		}

		d := models.Destination{
			Name:            field("destination"),
			Country:         field("country"),
			Region:          field("region"),
			AvgCostPerDay:   cost,
			TripType:        field("trip_type"),
			MinDays:         minDays,
			MaxDays:         maxDays,
			SeasonBest:      field("season_best"),
			PopularityScore: popularity,
			SafetyScore:     safety,
		}
		if hasClimate {
			d.Climate = record[climateIdx]
		}

		destinations = append(destinations, d)
	}

	return destinations, nil
}
