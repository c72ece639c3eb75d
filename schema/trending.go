package schema

import "time"

type Trend string

const (
	TrendUp     Trend = "up"
	TrendStable Trend = "stable"
	TrendDown   Trend = "down"
)

// TrendingMahalle is one entry of the trending ranking. It is recomputed
// on demand and never persisted.
type TrendingMahalle struct {
	LocationData  `bson:",inline"`
	Score         float64   `json:"score"`
	PreviousScore float64   `json:"previous_score"`
	Trend         Trend     `json:"trend"`
	LastUpdated   time.Time `json:"last_updated"`
}
