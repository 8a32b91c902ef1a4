package catalog

import (
	"database/sql"
	"fmt"

	"tripx/models"
)

// MySQLSource reads the destination catalog from a MySQL table with the
// same columns as the CSV layout.
type MySQLSource struct {
	db    *sql.DB
	table string
}

// NewMySQLSource returns a source reading from the given table through
// an already-initialized pool.
func NewMySQLSource(db *sql.DB, table string) *MySQLSource {
	return &MySQLSource{db: db, table: table}
}

// Name identifies the source in logs and health output.
func (s *MySQLSource) Name() string {
	return "mysql:" + s.table
}

// Load selects every destination row. An empty table is a data-integrity
// error, the same as an empty catalog file.
func (s *MySQLSource) Load() ([]models.Destination, error) {
	query := fmt.Sprintf(`
		SELECT destination, country, region, avg_cost_per_day, trip_type,
		       min_days, max_days, season_best, climate,
		       popularity_score, safety_score
		FROM %s`, s.table)

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query catalog table %s: %w", s.table, err)
	}
	defer rows.Close()

	var destinations []models.Destination
	for rows.Next() {
		var d models.Destination
		var climate sql.NullString
		if err := rows.Scan(
			&d.Name, &d.Country, &d.Region, &d.AvgCostPerDay, &d.TripType,
			&d.MinDays, &d.MaxDays, &d.SeasonBest, &climate,
			&d.PopularityScore, &d.SafetyScore,
		); err != nil {
			return nil, fmt.Errorf("scan catalog row: %w", err)
		}
		if climate.Valid {
			d.Climate = climate.String
		}
		destinations = append(destinations, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read catalog rows: %w", err)
	}

	if len(destinations) == 0 {
		return nil, fmt.Errorf("catalog table %s contains no destinations", s.table)
	}

	return destinations, nil
}
