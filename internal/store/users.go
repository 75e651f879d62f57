package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bhanujongit4/Rise.Foundation.Connect/internal/models"
)

const usersCollection = "users"

// GetUserByID looks a user up by document id.
func (s *RecordStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.db.Collection(usersCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindUserByUID looks a user up by the uid alias field. When several
// documents carry the same uid the first one the store returns wins.
func (s *RecordStore) FindUserByUID(ctx context.Context, uid string) (*models.User, error) {
	var user models.User
	err := s.db.Collection(usersCollection).FindOne(ctx, bson.M{"uid": uid}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail is used by signin.
func (s *RecordStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.Collection(usersCollection).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a new user document.
func (s *RecordStore) CreateUser(ctx context.Context, user *models.User) error {
	_, err := s.db.Collection(usersCollection).InsertOne(ctx, user)
	return err
}

// UpdateUserProfilePicture sets the only user field this service is allowed
// to mutate.
func (s *RecordStore) UpdateUserProfilePicture(ctx context.Context, userID, url string) error {
	res, err := s.db.Collection(usersCollection).UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"profilePictureUrl": url}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
