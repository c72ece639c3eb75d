package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/DenethorandEddie/Mahalle/schema"
)

type CommentTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewCommentTestSuite(connURI, dbName string) *CommentTestSuite {
	return &CommentTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *CommentTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}

	if err := schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll(); err != nil {
		s.T().Fatal(err)
	}
}

func (s *CommentTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *CommentTestSuite) TestAddAndListComments() {
	store := NewMongoStore(s.mongoClient, s.testDBName)
	location := schema.LocationData{Il: "İstanbul", Ilce: "Üsküdar", Mahalle: "Kuzguncuk"}

	id, err := store.AddComment(schema.Comment{
		Text:         "Sakin ve yeşil bir mahalle.",
		UserID:       "userA",
		DisplayName:  "Deniz",
		Rating:       5,
		LocationData: location,
		CategoryRatings: map[string]int{
			"guvenlik": 5,
			"yesil":    4,
		},
		YearsLived: "3-5",
	})
	s.NoError(err)
	s.NotEmpty(id)

	commentID, err := primitive.ObjectIDFromHex(id)
	s.NoError(err)

	replyID, err := store.AddReply(commentID, schema.Reply{
		Text:        "Katılıyorum.",
		UserID:      "userB",
		DisplayName: "Ece",
	})
	s.NoError(err)
	s.NotEmpty(replyID)

	comments, err := store.ListCommentsByLocation(location)
	s.NoError(err)
	s.Len(comments, 1)
	s.Equal("Deniz", comments[0].DisplayName)
	s.Len(comments[0].Replies, 1)
	s.Equal("userA", comments[0].Replies[0].ParentCommentUserID)

	// the reply left an unread notification for the comment author
	notifications, err := store.ListUnreadNotifications("userA")
	s.NoError(err)
	s.Len(notifications, 1)
	s.Equal(schema.NotificationTypeReply, notifications[0].Type)

	s.NoError(store.MarkNotificationRead(notifications[0].ID))
	notifications, err = store.ListUnreadNotifications("userA")
	s.NoError(err)
	s.Empty(notifications)
}

func (s *CommentTestSuite) TestVoteComment() {
	store := NewMongoStore(s.mongoClient, s.testDBName)
	location := schema.LocationData{Il: "İstanbul", Ilce: "Şişli", Mahalle: "Nişantaşı"}

	id, err := store.AddComment(schema.Comment{
		Text:         "Pahalı ama merkezi.",
		UserID:       "userC",
		Rating:       3,
		LocationData: location,
	})
	s.NoError(err)
	commentID, err := primitive.ObjectIDFromHex(id)
	s.NoError(err)

	votes, totalScore, err := store.VoteComment(commentID, "voter1", 1)
	s.NoError(err)
	s.Equal(1, votes.Upvotes)
	s.Equal(1, totalScore)

	// switching the same user's vote moves both counters
	votes, totalScore, err = store.VoteComment(commentID, "voter1", -1)
	s.NoError(err)
	s.Equal(0, votes.Upvotes)
	s.Equal(1, votes.Downvotes)
	s.Equal(-1, totalScore)

	// withdrawing restores the baseline
	votes, totalScore, err = store.VoteComment(commentID, "voter1", 0)
	s.NoError(err)
	s.Equal(0, votes.Upvotes)
	s.Equal(0, votes.Downvotes)
	s.Equal(0, totalScore)
}

func (s *CommentTestSuite) TestGetCommentWindowStats() {
	store := NewMongoStore(s.mongoClient, s.testDBName)
	location := schema.LocationData{Il: "Ankara", Ilce: "Keçiören", Mahalle: "Etlik"}

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	fixtures := []schema.Comment{
		{LocationData: location, Rating: 5, CreatedAt: now.AddDate(0, 0, -3)},
		{LocationData: location, Rating: 3, CreatedAt: now.AddDate(0, 0, -10)},
		{LocationData: location, CreatedAt: now.AddDate(0, 0, -12)},
		{LocationData: location, Rating: 4, CreatedAt: now.AddDate(0, -1, -5)},
	}
	for _, comment := range fixtures {
		_, err := store.AddComment(comment)
		s.NoError(err)
	}

	stats, err := store.GetCommentWindowStats(location, now.AddDate(0, -1, 0), now)
	s.NoError(err)
	s.Equal(int64(3), stats.Count)
	s.Equal(int64(2), stats.RatedCount)
	s.Equal(8.0, stats.RatingSum)

	stats, err = store.GetCommentWindowStats(location, now.AddDate(0, -2, 0), now.AddDate(0, -1, 0))
	s.NoError(err)
	s.Equal(int64(1), stats.Count)
	s.Equal(4.0, stats.RatingSum)

	// an empty window folds to zeroes, not an error
	stats, err = store.GetCommentWindowStats(location, now.AddDate(-1, 0, 0), now.AddDate(0, -11, 0))
	s.NoError(err)
	s.Equal(int64(0), stats.Count)
	s.Equal(0.0, stats.RatingSum)
}

func TestCommentTestSuite(t *testing.T) {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("test")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	connURI := viper.GetString("mongo.conn")
	if connURI == "" {
		t.Skip("mongo is not configured for store tests")
	}

	suite.Run(t, NewCommentTestSuite(connURI, "mahalle-comment-test-db"))
}
