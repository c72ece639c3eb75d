package store

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second
)

// MahalleStore combines all mongo-backed data access of the service.
type MahalleStore interface {
	Comment
	Analytics
	User
	VisitLog
	Notification
	Feedback
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

// NewMongoStore creates a MahalleStore over an established mongo client.
func NewMongoStore(client *mongo.Client, database string) MahalleStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}
