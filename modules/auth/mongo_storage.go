package auth

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/gamedock/gamedock/core"
)

const usersCollection = "users"

// MongoStorage implements UserStorage over a MongoDB collection.
type MongoStorage struct {
	coll *mongo.Collection
}

// NewMongoStorage creates user storage over the given database.
func NewMongoStorage(db *mongo.Database) *MongoStorage {
	return &MongoStorage{coll: db.Collection(usersCollection)}
}

// EnsureIndexes creates the unique, case-insensitive username index.
// Uniqueness is enforced by the database, not just by the registration
// flow's lookup.
func (s *MongoStorage) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "username", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetCollation(&options.Collation{Locale: "en", Strength: 1}),
	})
	if err != nil {
		return fmt.Errorf("create username index: %w", errors.Join(core.ErrStoreUnavailable, err))
	}
	return nil
}

// FindUserByUsername returns the user or ErrUserNotFound. Driver
// failures are reported as store unavailability, never as a missing
// user.
func (s *MongoStorage) FindUserByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	err := s.coll.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", errors.Join(core.ErrStoreUnavailable, err))
	}
	return &user, nil
}

// CreateUser persists a new credential record.
func (s *MongoStorage) CreateUser(ctx context.Context, user *User) error {
	if _, err := s.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", errors.Join(core.ErrStoreUnavailable, err))
	}
	return nil
}
