package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/DenethorandEddie/Mahalle/schema"
	"github.com/DenethorandEddie/Mahalle/score"
)

var (
	ErrAnalyticsNotFound = fmt.Errorf("analytics record not found")
	ErrAnalyticsConflict = fmt.Errorf("analytics record modified concurrently")
)

// casMaxRetries bounds the compare-and-swap loop of the rating update.
const casMaxRetries = 5

type Analytics interface {
	GetMahalleAnalytics(location schema.LocationData) (*schema.MahalleAnalytics, error)
	ListMahalleAnalytics() ([]schema.MahalleAnalytics, error)
	UpdateMahalleAnalytics(location schema.LocationData, event schema.AnalyticsEvent) error
}

func (m *mongoDB) GetMahalleAnalytics(location schema.LocationData) (*schema.MahalleAnalytics, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.AnalyticsCollection)

	var record schema.MahalleAnalytics
	err := c.FindOne(ctx, locationFilter(location)).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, ErrAnalyticsNotFound
	} else if err != nil {
		log.WithFields(log.Fields{
			"prefix":   mongoLogPrefix,
			"location": location.Key(),
			"error":    err,
		}).Error("get analytics record")
		return nil, err
	}
	return &record, nil
}

func (m *mongoDB) ListMahalleAnalytics() ([]schema.MahalleAnalytics, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.AnalyticsCollection)

	cursor, err := c.Find(ctx, bson.M{})
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("list analytics records")
		return nil, err
	}

	records := make([]schema.MahalleAnalytics, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// UpdateMahalleAnalytics applies one event to a location's analytics
// record, creating it with zeroed counters on first contact.
//
// Plain counters go through atomic $inc. The running average and the
// rating-history append are a read-modify-write, serialized per location
// by a compare-and-swap on the pre-update comment count and average. For
// a rated comment the comment-count increment rides inside the same
// guarded write, so average and count advance together and a reader of a
// mid-transition document cannot pass the guard.
func (m *mongoDB) UpdateMahalleAnalytics(location schema.LocationData, event schema.AnalyticsEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.AnalyticsCollection)

	now := time.Now().UTC()
	filter := locationFilter(location)

	if _, err := c.UpdateOne(ctx, filter, bson.M{
		"$setOnInsert": newAnalyticsDocument(now),
	}, options.Update().SetUpsert(true)); err != nil {
		log.WithFields(log.Fields{
			"prefix":   mongoLogPrefix,
			"location": location.Key(),
			"error":    err,
		}).Error("ensure analytics record")
		return err
	}

	if event.Rating > 0 {
		if err := m.applyRating(ctx, filter, event, now); err != nil {
			return err
		}
	}

	inc := bson.M{}
	if event.IsView {
		inc["views"] = 1
	}
	// a rated comment's count increment already landed inside applyRating
	if event.IsComment && event.Rating <= 0 {
		inc["comment_count"] = 1
	}
	if event.IsPositiveComment {
		inc["positive_comment_count"] = 1
	}
	if event.IsNegativeComment {
		inc["negative_comment_count"] = 1
	}
	if event.IsFavorite != nil && *event.IsFavorite {
		inc["favorite_count"] = 1
	}

	update := bson.M{"$set": bson.M{"last_updated": now}}
	if len(inc) > 0 {
		update["$inc"] = inc
	}
	if _, err := c.UpdateOne(ctx, filter, update); err != nil {
		log.WithFields(log.Fields{
			"prefix":   mongoLogPrefix,
			"location": location.Key(),
			"error":    err,
		}).Error("update analytics counters")
		return err
	}

	// a favorite removal only decrements while the counter is positive
	if event.IsFavorite != nil && !*event.IsFavorite {
		guarded := bson.M{"favorite_count": bson.M{"$gt": 0}}
		for k, v := range filter {
			guarded[k] = v
		}
		if _, err := c.UpdateOne(ctx, guarded, bson.M{
			"$inc": bson.M{"favorite_count": -1},
			"$set": bson.M{"last_updated": now},
		}); err != nil {
			return err
		}
	}

	if event.SessionID != "" && event.DeviceType != "" {
		if err := m.AddVisitLog(schema.VisitLog{
			LocationData: location,
			Timestamp:    now,
			SessionID:    event.SessionID,
			DeviceType:   event.DeviceType,
			Duration:     event.Duration,
		}); err != nil {
			return err
		}
	}

	return nil
}

// applyRating appends a rating-history entry and rolls the running
// average forward, retrying on concurrent modification. When the event
// is a comment its comment-count increment is part of the same guarded
// write, keeping average and count in lockstep.
func (m *mongoDB) applyRating(ctx context.Context, filter bson.M, event schema.AnalyticsEvent, now time.Time) error {
	c := m.client.Database(m.database).Collection(schema.AnalyticsCollection)

	for attempt := 0; attempt < casMaxRetries; attempt++ {
		var record schema.MahalleAnalytics
		if err := c.FindOne(ctx, filter).Decode(&record); err != nil {
			return err
		}

		newAverage := score.NextAverage(record.AverageRating, record.CommentCount, event.Rating)

		guard := bson.M{
			"comment_count":  record.CommentCount,
			"average_rating": record.AverageRating,
		}
		for k, v := range filter {
			guard[k] = v
		}

		update := bson.M{
			"$set": bson.M{
				"average_rating": newAverage,
				"last_updated":   now,
			},
			"$push": bson.M{
				"rating_history": schema.RatingHistoryEntry{
					Timestamp: now,
					Rating:    event.Rating,
					Count:     1,
				},
			},
		}
		if event.IsComment {
			update["$inc"] = bson.M{"comment_count": 1}
		}

		result, err := c.UpdateOne(ctx, guard, update)
		if err != nil {
			return err
		}
		if result.MatchedCount == 1 {
			return nil
		}

		log.WithFields(log.Fields{
			"prefix":  mongoLogPrefix,
			"attempt": attempt + 1,
		}).Warn("retry analytics rating update")
	}

	return ErrAnalyticsConflict
}

func locationFilter(location schema.LocationData) bson.M {
	return bson.M{
		"il":      location.Il,
		"ilce":    location.Ilce,
		"mahalle": location.Mahalle,
	}
}

// newAnalyticsDocument zeroes every counter of a fresh record. The
// location triple itself is inferred from the upsert's equality filter.
func newAnalyticsDocument(now time.Time) bson.M {
	return bson.M{
		"views":                  0,
		"unique_visitors":        0,
		"comment_count":          0,
		"favorite_count":         0,
		"positive_comment_count": 0,
		"negative_comment_count": 0,
		"average_rating":         0.0,
		"previous_score":         0.0,
		"rating_history":         bson.A{},
		"last_updated":           now,
	}
}
