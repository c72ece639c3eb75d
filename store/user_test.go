package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/DenethorandEddie/Mahalle/schema"
)

type UserTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewUserTestSuite(connURI, dbName string) *UserTestSuite {
	return &UserTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *UserTestSuite) SetupSuite() {
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

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}

	if err := schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll(); err != nil {
		s.T().Fatal(err)
	}

	if _, err := s.testDatabase.Collection(schema.UserCollection).InsertOne(
		context.Background(),
		schema.User{
			ID:          "userA",
			DisplayName: "Deniz",
			Email:       "deniz@example.com",
			CreatedAt:   time.Now().UTC().Add(-24 * time.Hour),
		},
	); err != nil {
		s.T().Fatal(err)
	}
}

func (s *UserTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *UserTestSuite) TestTouchLastLogin() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	before := time.Now().UTC().Add(-time.Minute)
	s.NoError(store.TouchLastLogin("userA"))

	user, err := store.GetUser("userA")
	s.NoError(err)
	s.True(user.LastLoginAt.After(before))

	count, err := store.CountActiveUsersSince(before)
	s.NoError(err)
	s.Equal(int64(1), count)
}

func (s *UserTestSuite) TestTouchLastLoginUnknownUser() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	err := store.TouchLastLogin("no-such-user")
	s.EqualError(err, ErrUserNotFound.Error())
}

func (s *UserTestSuite) TestFavoriteMahalleler() {
	store := NewMongoStore(s.mongoClient, s.testDBName)
	location := schema.LocationData{Il: "İstanbul", Ilce: "Kadıköy", Mahalle: "Moda"}

	s.NoError(store.AddFavoriteMahalle("userA", location))
	// adding the same favorite twice keeps the set unchanged
	s.NoError(store.AddFavoriteMahalle("userA", location))

	user, err := store.GetUser("userA")
	s.NoError(err)
	s.Len(user.FavoriteMahalleler, 1)

	s.NoError(store.RemoveFavoriteMahalle("userA", location))
	user, err = store.GetUser("userA")
	s.NoError(err)
	s.Empty(user.FavoriteMahalleler)

	err = store.AddFavoriteMahalle("no-such-user", location)
	s.EqualError(err, ErrUserNotFound.Error())
}

// In order for 'go test' to run this suite, we need to create
// a normal test function and pass our suite to suite.Run
func TestUserTestSuite(t *testing.T) {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("test")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	connURI := viper.GetString("mongo.conn")
	if connURI == "" {
		t.Skip("mongo is not configured for store tests")
	}

	suite.Run(t, NewUserTestSuite(connURI, "mahalle-user-test-db"))
}
