package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	NotificationCollection = "notifications"
)

type NotificationType string

const (
	NotificationTypeReply NotificationType = "reply"
)

type Notification struct {
	ID                   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Type                 NotificationType   `json:"type" bson:"type"`
	UserID               string             `json:"user_id" bson:"user_id"`
	Read                 bool               `json:"read" bson:"read"`
	CommentID            primitive.ObjectID `json:"comment_id" bson:"comment_id"`
	ReplyID              primitive.ObjectID `json:"reply_id" bson:"reply_id"`
	ReplyText            string             `json:"reply_text" bson:"reply_text"`
	ReplyUserDisplayName string             `json:"reply_user_display_name" bson:"reply_user_display_name"`
	LocationData         LocationData       `json:"location_data" bson:"location_data"`
	CreatedAt            time.Time          `json:"created_at" bson:"created_at"`
}
