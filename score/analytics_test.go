package score

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/DenethorandEddie/Mahalle/schema"
)

func commentEvent(rating float64) schema.AnalyticsEvent {
	return schema.AnalyticsEvent{
		IsComment: true,
		Rating:    rating,
	}
}

// The incremental mean must match the batch mean of the same ratings.
func TestApplyAnalyticsEventIncrementalAverage(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	var record schema.MahalleAnalytics
	record = ApplyAnalyticsEvent(record, commentEvent(4), now)
	record = ApplyAnalyticsEvent(record, commentEvent(2), now.Add(time.Hour))
	record = ApplyAnalyticsEvent(record, commentEvent(3), now.Add(2*time.Hour))

	assert.Equal(t, 3.0, record.AverageRating)
	assert.Equal(t, int64(3), record.CommentCount)
	assert.Len(t, record.RatingHistory, 3)
	assert.Equal(t, 4.0, record.RatingHistory[0].Rating)
	assert.Equal(t, 1, record.RatingHistory[0].Count)
	assert.Equal(t, now.Add(2*time.Hour), record.LastUpdated)
}

func TestApplyAnalyticsEventView(t *testing.T) {
	now := time.Now().UTC()

	record := ApplyAnalyticsEvent(schema.MahalleAnalytics{}, schema.AnalyticsEvent{IsView: true}, now)

	assert.Equal(t, int64(1), record.Views)
	assert.Equal(t, int64(0), record.CommentCount)
	assert.Empty(t, record.RatingHistory)
	assert.Equal(t, now, record.LastUpdated)
}

func TestApplyAnalyticsEventFavorite(t *testing.T) {
	now := time.Now().UTC()
	add := true
	remove := false

	record := ApplyAnalyticsEvent(schema.MahalleAnalytics{}, schema.AnalyticsEvent{IsFavorite: &add}, now)
	assert.Equal(t, int64(1), record.FavoriteCount)

	record = ApplyAnalyticsEvent(record, schema.AnalyticsEvent{IsFavorite: &remove}, now)
	assert.Equal(t, int64(0), record.FavoriteCount)

	// removing a favorite from a zeroed record must not go negative
	record = ApplyAnalyticsEvent(record, schema.AnalyticsEvent{IsFavorite: &remove}, now)
	assert.Equal(t, int64(0), record.FavoriteCount)
}

func TestApplyAnalyticsEventCommentSentiment(t *testing.T) {
	now := time.Now().UTC()

	record := ApplyAnalyticsEvent(schema.MahalleAnalytics{}, schema.AnalyticsEvent{
		IsComment:         true,
		Rating:            5,
		IsPositiveComment: true,
	}, now)
	record = ApplyAnalyticsEvent(record, schema.AnalyticsEvent{
		IsComment:         true,
		Rating:            1,
		IsNegativeComment: true,
	}, now)

	assert.Equal(t, int64(2), record.CommentCount)
	assert.Equal(t, int64(1), record.PositiveCommentCount)
	assert.Equal(t, int64(1), record.NegativeCommentCount)
	assert.Equal(t, 3.0, record.AverageRating)
}

func TestNextAverage(t *testing.T) {
	assert.Equal(t, 4.0, NextAverage(0, 0, 4))
	assert.Equal(t, 3.0, NextAverage(4, 1, 2))
	assert.Equal(t, 3.0, NextAverage(3, 2, 3))
}
