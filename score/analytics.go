package score

import (
	"time"

	"github.com/DenethorandEddie/Mahalle/schema"
)

// NextAverage recomputes a running mean after one more rating. oldCount
// is the number of ratings folded into oldAverage so far.
func NextAverage(oldAverage float64, oldCount int64, rating float64) float64 {
	return (oldAverage*float64(oldCount) + rating) / float64(oldCount+1)
}

// ApplyAnalyticsEvent returns the analytics record after one event. It
// is the reference state transition: the store expresses the same
// transition through mongo update operators, and any change here must be
// mirrored there. Persistence and its retry discipline are the store's
// concern.
//
// The running average must be recomputed from the comment count as it
// was before this event's own comment increment, so the rating branch
// runs ahead of the counter branch.
func ApplyAnalyticsEvent(record schema.MahalleAnalytics, event schema.AnalyticsEvent, now time.Time) schema.MahalleAnalytics {
	if event.Rating > 0 {
		record.RatingHistory = append(record.RatingHistory, schema.RatingHistoryEntry{
			Timestamp: now,
			Rating:    event.Rating,
			Count:     1,
		})
		record.AverageRating = NextAverage(record.AverageRating, record.CommentCount, event.Rating)
	}

	if event.IsView {
		record.Views++
	}

	if event.IsComment {
		record.CommentCount++
	}

	if event.IsFavorite != nil {
		if *event.IsFavorite {
			record.FavoriteCount++
		} else if record.FavoriteCount > 0 {
			record.FavoriteCount--
		}
	}

	if event.IsPositiveComment {
		record.PositiveCommentCount++
	}

	if event.IsNegativeComment {
		record.NegativeCommentCount++
	}

	record.LastUpdated = now

	return record
}
