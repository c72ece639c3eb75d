package store

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/DenethorandEddie/Mahalle/schema"
)

type VisitLog interface {
	AddVisitLog(visit schema.VisitLog) error
	CountVisitLogs() (int64, error)
}

func (m *mongoDB) AddVisitLog(visit schema.VisitLog) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.VisitLogCollection)

	if _, err := c.InsertOne(ctx, &visit); err != nil {
		log.WithFields(log.Fields{
			"prefix":   mongoLogPrefix,
			"location": visit.LocationData.Key(),
			"error":    err,
		}).Error("insert visit log")
		return err
	}
	return nil
}

func (m *mongoDB) CountVisitLogs() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.VisitLogCollection)

	return c.CountDocuments(ctx, bson.M{})
}
