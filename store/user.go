package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/DenethorandEddie/Mahalle/schema"
)

var (
	ErrUserNotFound = fmt.Errorf("user not found")
)

type User interface {
	GetUser(userID string) (*schema.User, error)
	TouchLastLogin(userID string) error
	AddFavoriteMahalle(userID string, location schema.LocationData) error
	RemoveFavoriteMahalle(userID string, location schema.LocationData) error
	CountActiveUsersSince(t time.Time) (int64, error)
	ListUserFavoriteCounts() ([]int64, error)
}

func (m *mongoDB) GetUser(userID string) (*schema.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.UserCollection)

	var user schema.User
	err := c.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrUserNotFound
	} else if err != nil {
		return nil, err
	}
	return &user, nil
}

func (m *mongoDB) TouchLastLogin(userID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.UserCollection)

	r, err := c.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{
		"$set": bson.M{"last_login_at": time.Now().UTC()},
	})
	if err != nil {
		return err
	}
	if r.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (m *mongoDB) AddFavoriteMahalle(userID string, location schema.LocationData) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.UserCollection)

	r, err := c.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{
		"$addToSet": bson.M{"favorite_mahalleler": location},
	})
	if err != nil {
		return err
	}
	if r.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (m *mongoDB) RemoveFavoriteMahalle(userID string, location schema.LocationData) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.UserCollection)

	r, err := c.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{
		"$pull": bson.M{"favorite_mahalleler": location},
	})
	if err != nil {
		return err
	}
	if r.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (m *mongoDB) CountActiveUsersSince(t time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.UserCollection)

	return c.CountDocuments(ctx, bson.M{"last_login_at": bson.M{"$gte": t}})
}

// ListUserFavoriteCounts returns the size of every user's favorites
// list; the dashboard sums them into its all-time favorite figure.
func (m *mongoDB) ListUserFavoriteCounts() ([]int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.UserCollection)

	pipeline := []bson.D{
		AggregationProject(bson.M{
			"count": bson.M{
				"$size": bson.M{"$ifNull": bson.A{"$favorite_mahalleler", bson.A{}}},
			},
		}),
	}

	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("aggregate user favorite counts")
		return nil, err
	}

	var rows []struct {
		Count int64 `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := make([]int64, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, row.Count)
	}
	return counts, nil
}
