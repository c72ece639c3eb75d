package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AnalyticsCollection = "analytics"
)

// RatingHistoryEntry is one append-only entry of a location's rating
// history. Entries are never mutated or pruned.
type RatingHistoryEntry struct {
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
	Rating    float64   `json:"rating" bson:"rating"`
	Count     int       `json:"count" bson:"count"`
}

// MahalleAnalytics is the running aggregate state of one neighborhood.
// It is created lazily on the first event and never deleted.
type MahalleAnalytics struct {
	ID                   primitive.ObjectID   `json:"-" bson:"_id,omitempty"`
	LocationData         `bson:",inline"`
	Views                int64                `json:"views" bson:"views"`
	UniqueVisitors       int64                `json:"unique_visitors" bson:"unique_visitors"`
	CommentCount         int64                `json:"comment_count" bson:"comment_count"`
	FavoriteCount        int64                `json:"favorite_count" bson:"favorite_count"`
	PositiveCommentCount int64                `json:"positive_comment_count" bson:"positive_comment_count"`
	NegativeCommentCount int64                `json:"negative_comment_count" bson:"negative_comment_count"`
	AverageRating        float64              `json:"average_rating" bson:"average_rating"`
	PreviousScore        float64              `json:"-" bson:"previous_score"`
	RatingHistory        []RatingHistoryEntry `json:"rating_history" bson:"rating_history"`
	LastUpdated          time.Time            `json:"last_updated" bson:"last_updated"`
}

// AnalyticsEvent is one incremental event applied to a location's
// analytics record. Flags act independently; a single event may trigger
// several counters. IsFavorite is a tri-state: nil means not applicable,
// otherwise true adds and false removes a favorite.
type AnalyticsEvent struct {
	IsView            bool    `json:"is_view"`
	IsComment         bool    `json:"is_comment"`
	IsFavorite        *bool   `json:"is_favorite,omitempty"`
	Rating            float64 `json:"rating,omitempty"`
	IsPositiveComment bool    `json:"is_positive_comment"`
	IsNegativeComment bool    `json:"is_negative_comment"`
	SessionID         string  `json:"session_id,omitempty"`
	DeviceType        string  `json:"device_type,omitempty"`
	Duration          int64   `json:"duration,omitempty"`
}
