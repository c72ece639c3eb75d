package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/DenethorandEddie/Mahalle/schema"
)

type Feedback interface {
	CreateFeedback(feedback schema.Feedback) (string, error)
}

// CreateFeedback stores one user feedback entry.
func (m *mongoDB) CreateFeedback(feedback schema.Feedback) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.FeedbackCollection)

	if feedback.CreatedAt.IsZero() {
		feedback.CreatedAt = time.Now().UTC()
	}

	r, err := c.InsertOne(ctx, &feedback)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("insert feedback")
		return "", err
	}

	id, ok := r.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("incorrect inserted id")
	}
	return id.Hex(), nil
}
