package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/DenethorandEddie/Mahalle/schema"
)

var (
	ErrNotificationNotFound = fmt.Errorf("notification not found")
)

type Notification interface {
	AddReply(commentID primitive.ObjectID, reply schema.Reply) (string, error)
	ListUnreadNotifications(userID string) ([]schema.Notification, error)
	MarkNotificationRead(notificationID primitive.ObjectID) error
}

// AddReply stores a reply under its parent comment and leaves an unread
// notification for the comment author.
func (m *mongoDB) AddReply(commentID primitive.ObjectID, reply schema.Reply) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	db := m.client.Database(m.database)

	var comment schema.Comment
	err := db.Collection(schema.CommentCollection).
		FindOne(ctx, bson.M{"_id": commentID}).
		Decode(&comment)
	if err == mongo.ErrNoDocuments {
		return "", ErrCommentNotFound
	} else if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	reply.ParentCommentID = commentID
	reply.ParentCommentUserID = comment.UserID
	if reply.CreatedAt.IsZero() {
		reply.CreatedAt = now
	}

	r, err := db.Collection(schema.ReplyCollection).InsertOne(ctx, &reply)
	if err != nil {
		return "", err
	}
	replyID, ok := r.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("incorrect inserted id")
	}

	// replying to one's own comment raises no notification
	if comment.UserID == reply.UserID {
		return replyID.Hex(), nil
	}

	notification := schema.Notification{
		Type:                 schema.NotificationTypeReply,
		UserID:               comment.UserID,
		Read:                 false,
		CommentID:            commentID,
		ReplyID:              replyID,
		ReplyText:            reply.Text,
		ReplyUserDisplayName: reply.DisplayName,
		LocationData:         comment.LocationData,
		CreatedAt:            now,
	}
	if _, err := db.Collection(schema.NotificationCollection).InsertOne(ctx, &notification); err != nil {
		return "", err
	}

	return replyID.Hex(), nil
}

func (m *mongoDB) ListUnreadNotifications(userID string) ([]schema.Notification, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.NotificationCollection)

	cursor, err := c.Find(ctx,
		bson.M{"user_id": userID, "read": false},
		options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, err
	}

	notifications := make([]schema.Notification, 0)
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (m *mongoDB) MarkNotificationRead(notificationID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.NotificationCollection)

	r, err := c.UpdateOne(ctx,
		bson.M{"_id": notificationID},
		bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return err
	}
	if r.MatchedCount == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
