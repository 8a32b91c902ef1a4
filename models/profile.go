package models

// UserProfile is the per-request feature vector built from the four raw
// user inputs. It is never persisted and carries no state across requests.
type UserProfile struct {
	Budget            float64        `json:"budget"`
	Duration          int            `json:"duration"`
	PreferredTripType string         `json:"preferred_trip_type"`
	PreferredSeason   string         `json:"preferred_season"`
	CostCategory      string         `json:"cost_category"`
	TypeFlags         map[string]int `json:"type_flags"`
}
