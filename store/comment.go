package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/DenethorandEddie/Mahalle/schema"
)

var (
	ErrCommentNotFound = fmt.Errorf("comment not found")
)

type Comment interface {
	AddComment(comment schema.Comment) (string, error)
	ListCommentsByLocation(location schema.LocationData) ([]schema.Comment, error)
	ListCommentsByUser(userID string) ([]schema.Comment, error)
	DeleteComment(commentID primitive.ObjectID) error
	VoteComment(commentID primitive.ObjectID, userID string, vote int) (schema.CommentVotes, int, error)
	GetCommentWindowStats(location schema.LocationData, start, end time.Time) (schema.CommentWindowStats, error)
	CountComments() (int64, error)
}

func (m *mongoDB) AddComment(comment schema.Comment) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.CommentCollection)

	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC()
	}

	r, err := c.InsertOne(ctx, &comment)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":   mongoLogPrefix,
			"location": comment.LocationData.Key(),
			"error":    err,
		}).Error("insert comment")
		return "", err
	}

	id, ok := r.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("incorrect inserted id")
	}
	return id.Hex(), nil
}

func (m *mongoDB) ListCommentsByLocation(location schema.LocationData) ([]schema.Comment, error) {
	query := bson.M{
		"il":      location.Il,
		"ilce":    location.Ilce,
		"mahalle": location.Mahalle,
	}
	return m.listComments(query)
}

func (m *mongoDB) ListCommentsByUser(userID string) ([]schema.Comment, error) {
	return m.listComments(bson.M{"user_id": userID})
}

func (m *mongoDB) listComments(query bson.M) ([]schema.Comment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	db := m.client.Database(m.database)

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := db.Collection(schema.CommentCollection).Find(ctx, query, opts)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"query":  query,
			"error":  err,
		}).Error("query comments")
		return nil, err
	}

	comments := make([]schema.Comment, 0)
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}

	for i, comment := range comments {
		replyCursor, err := db.Collection(schema.ReplyCollection).Find(ctx,
			bson.M{"parent_comment_id": comment.ID},
			options.Find().SetSort(bson.M{"created_at": 1}))
		if err != nil {
			return nil, err
		}
		replies := make([]schema.Reply, 0)
		if err := replyCursor.All(ctx, &replies); err != nil {
			return nil, err
		}
		comments[i].Replies = replies
	}

	return comments, nil
}

func (m *mongoDB) DeleteComment(commentID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.CommentCollection)

	r, err := c.DeleteOne(ctx, bson.M{"_id": commentID})
	if err != nil {
		return err
	}
	if r.DeletedCount == 0 {
		return ErrCommentNotFound
	}
	return nil
}

// VoteComment records one vote per (comment, user) pair and adjusts the
// comment's counters by the delta between the previous vote and the new
// one. vote is 1, 0 or -1; 0 withdraws the vote.
func (m *mongoDB) VoteComment(commentID primitive.ObjectID, userID string, vote int) (schema.CommentVotes, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	db := m.client.Database(m.database)
	votes := db.Collection(schema.CommentVoteCollection)
	comments := db.Collection(schema.CommentCollection)

	voteQuery := bson.M{"comment_id": commentID, "user_id": userID}

	var previous schema.CommentVote
	err := votes.FindOne(ctx, voteQuery).Decode(&previous)
	if err != nil && err != mongo.ErrNoDocuments {
		return schema.CommentVotes{}, 0, err
	}

	upDelta := boolToInt(vote == 1) - boolToInt(previous.Vote == 1)
	downDelta := boolToInt(vote == -1) - boolToInt(previous.Vote == -1)

	var comment schema.Comment
	err = comments.FindOneAndUpdate(ctx,
		bson.M{"_id": commentID},
		bson.M{
			"$inc": bson.M{
				"votes.upvotes":   upDelta,
				"votes.downvotes": downDelta,
				"total_score":     upDelta - downDelta,
			},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&comment)
	if err == mongo.ErrNoDocuments {
		return schema.CommentVotes{}, 0, ErrCommentNotFound
	} else if err != nil {
		log.WithFields(log.Fields{
			"prefix":     mongoLogPrefix,
			"comment ID": commentID.Hex(),
			"error":      err,
		}).Error("update comment votes")
		return schema.CommentVotes{}, 0, err
	}

	if vote == 0 {
		_, err = votes.DeleteOne(ctx, voteQuery)
	} else {
		_, err = votes.UpdateOne(ctx, voteQuery, bson.M{
			"$set": bson.M{
				"vote":      vote,
				"timestamp": time.Now().UTC(),
			},
			"$setOnInsert": voteQuery,
		}, options.Update().SetUpsert(true))
	}
	if err != nil {
		return schema.CommentVotes{}, 0, err
	}

	return comment.Votes, comment.TotalScore, nil
}

// GetCommentWindowStats folds the comments of one window into count,
// rated count and rating sum. A zero-value location folds over all
// locations.
func (m *mongoDB) GetCommentWindowStats(location schema.LocationData, start, end time.Time) (schema.CommentWindowStats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.CommentCollection)

	match := bson.M{
		"created_at": bson.M{"$gte": start, "$lte": end},
	}
	if location.IsComplete() {
		match["il"] = location.Il
		match["ilce"] = location.Ilce
		match["mahalle"] = location.Mahalle
	}

	pipeline := []bson.D{
		AggregationMatch(match),
		AggregationGroup(nil, bson.D{
			bson.E{Key: "count", Value: bson.M{"$sum": 1}},
			bson.E{Key: "rating_sum", Value: bson.M{
				"$sum": bson.M{"$ifNull": bson.A{"$rating", 0}},
			}},
			bson.E{Key: "rated_count", Value: bson.M{
				"$sum": bson.M{"$cond": bson.A{bson.M{"$gt": bson.A{"$rating", 0}}, 1, 0}},
			}},
		}),
	}

	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":   mongoLogPrefix,
			"location": location.Key(),
			"error":    err,
		}).Error("aggregate comment window")
		return schema.CommentWindowStats{}, err
	}

	var results []schema.CommentWindowStats
	if err := cursor.All(ctx, &results); err != nil {
		return schema.CommentWindowStats{}, err
	}
	if len(results) == 0 {
		return schema.CommentWindowStats{}, nil
	}
	return results[0], nil
}

func (m *mongoDB) CountComments() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.CommentCollection)

	return c.CountDocuments(ctx, bson.M{})
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
