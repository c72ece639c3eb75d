package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	VisitLogCollection = "visitLogs"
)

// VisitLog is one logged page visit of a neighborhood. The dashboard
// counts these for its all-time total views figure.
type VisitLog struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	LocationData `bson:",inline"`
	Timestamp    time.Time `json:"timestamp" bson:"timestamp"`
	SessionID    string    `json:"session_id" bson:"session_id"`
	DeviceType   string    `json:"device_type" bson:"device_type"`
	Duration     int64     `json:"duration" bson:"duration"`
}
