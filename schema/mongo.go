package schema

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDBIndexer creates the indexes the query paths rely on.
type MongoDBIndexer struct {
	connURI  string
	database string
}

func NewMongoDBIndexer(connURI, database string) *MongoDBIndexer {
	return &MongoDBIndexer{
		connURI:  connURI,
		database: database,
	}
}

// IndexAll ensures every collection index. It is safe to run repeatedly.
func (m *MongoDBIndexer) IndexAll() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(m.connURI))
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.WithError(err).Error("fail to disconnect the indexing client")
		}
	}()

	db := client.Database(m.database)

	indexes := map[string][]mongo.IndexModel{
		CommentCollection: {
			{
				Keys: bson.D{
					{Key: "il", Value: 1},
					{Key: "ilce", Value: 1},
					{Key: "mahalle", Value: 1},
					{Key: "created_at", Value: -1},
				},
			},
			{
				Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
			},
		},
		ReplyCollection: {
			{
				Keys: bson.D{{Key: "parent_comment_id", Value: 1}},
			},
		},
		CommentVoteCollection: {
			{
				Keys:    bson.D{{Key: "comment_id", Value: 1}, {Key: "user_id", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		AnalyticsCollection: {
			{
				Keys: bson.D{
					{Key: "il", Value: 1},
					{Key: "ilce", Value: 1},
					{Key: "mahalle", Value: 1},
				},
				Options: options.Index().SetUnique(true),
			},
		},
		UserCollection: {
			{
				Keys: bson.D{{Key: "last_login_at", Value: -1}},
			},
		},
		VisitLogCollection: {
			{
				Keys: bson.D{{Key: "timestamp", Value: -1}},
			},
		},
		NotificationCollection: {
			{
				Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "read", Value: 1}, {Key: "created_at", Value: -1}},
			},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			log.WithFields(log.Fields{
				"prefix":     "schema",
				"collection": collection,
				"error":      err,
			}).Error("fail to create indexes")
			return err
		}
	}

	return nil
}
