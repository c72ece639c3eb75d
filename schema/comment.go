package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CommentCollection     = "comments"
	ReplyCollection       = "commentReplies"
	CommentVoteCollection = "commentVotes"
)

// RatingCategories is the closed set of quality-of-life dimensions a
// comment may rate, keyed the way the documents store them. A category
// value of 0 means "not rated", not "worst".
var RatingCategories = []string{
	"guvenlik",  // safety
	"ulasim",    // transport
	"temizlik",  // cleanliness
	"sessizlik", // quietness
	"komsu",     // neighborliness
	"yesil",     // green space
}

type CommentVotes struct {
	Upvotes   int `json:"upvotes" bson:"upvotes"`
	Downvotes int `json:"downvotes" bson:"downvotes"`
	Helpful   int `json:"helpful" bson:"helpful"`
}

type Comment struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Text            string             `json:"text" bson:"text"`
	UserID          string             `json:"user_id" bson:"user_id"`
	DisplayName     string             `json:"display_name" bson:"display_name"`
	PhotoURL        string             `json:"photo_url,omitempty" bson:"photo_url,omitempty"`
	Rating          float64            `json:"rating" bson:"rating"`
	CategoryRatings map[string]int     `json:"category_ratings" bson:"category_ratings"`
	YearsLived      string             `json:"years_lived" bson:"years_lived"`
	Votes           CommentVotes       `json:"votes" bson:"votes"`
	TotalScore      int                `json:"total_score" bson:"total_score"`
	LocationData    `bson:",inline"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
	Replies         []Reply   `json:"replies,omitempty" bson:"-"`
}

type Reply struct {
	ID                  primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Text                string             `json:"text" bson:"text"`
	UserID              string             `json:"user_id" bson:"user_id"`
	DisplayName         string             `json:"display_name" bson:"display_name"`
	PhotoURL            string             `json:"photo_url,omitempty" bson:"photo_url,omitempty"`
	ParentCommentID     primitive.ObjectID `json:"parent_comment_id" bson:"parent_comment_id"`
	ParentCommentUserID string             `json:"parent_comment_user_id" bson:"parent_comment_user_id"`
	CreatedAt           time.Time          `json:"created_at" bson:"created_at"`
}

type CommentVote struct {
	CommentID primitive.ObjectID `bson:"comment_id"`
	UserID    string             `bson:"user_id"`
	Vote      int                `bson:"vote"`
	Timestamp time.Time          `bson:"timestamp"`
}

// RatingData summarizes every rating submitted for one location.
type RatingData struct {
	Average          float64            `json:"average"`
	Count            int                `json:"count"`
	Distribution     map[string]int     `json:"distribution"`
	CategoryAverages map[string]float64 `json:"category_averages"`
}

// CommentWindowStats is the per-window fold the trend and dashboard
// computations share. AverageRating over the window differs between the
// two consumers (per comment vs. per rated comment), so the fold keeps
// the raw sum and both counts.
type CommentWindowStats struct {
	Count      int64   `bson:"count"`
	RatedCount int64   `bson:"rated_count"`
	RatingSum  float64 `bson:"rating_sum"`
}
