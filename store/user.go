package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hofix-app/hofix-api/schema"
)

var (
	ErrUserNotFound = fmt.Errorf("user not found")
	ErrEmailTaken   = fmt.Errorf("email has been taken")
)

type UserAccount interface {
	CreateUser(user schema.User) (*schema.User, error)
	GetUser(id primitive.ObjectID) (*schema.User, error)
	GetUserByEmail(email string) (*schema.User, error)
	UpdateUserCredits(id primitive.ObjectID, credits float64) error
	UpdateUserReferralCode(id primitive.ObjectID, code string) error
}

// CreateUser inserts a new account document
func (m *mongoDB) CreateUser(user schema.User) (*schema.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.UserCollection)

	user.CreatedAt = time.Now().UTC()
	if user.Rating == 0 {
		user.Rating = 5.0
	}

	result, err := c.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	user.ID = result.InsertedID.(primitive.ObjectID)

	return &user, nil
}

func (m *mongoDB) GetUser(id primitive.ObjectID) (*schema.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.UserCollection)

	var user schema.User
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (m *mongoDB) GetUserByEmail(email string) (*schema.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.UserCollection)

	var user schema.User
	if err := c.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// UpdateUserCredits writes the denormalized wallet running balance on the
// account document. The authoritative history is the wallet ledger.
func (m *mongoDB) UpdateUserCredits(id primitive.ObjectID, credits float64) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.UserCollection)

	result, err := c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"credits": credits}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (m *mongoDB) UpdateUserReferralCode(id primitive.ObjectID, code string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.UserCollection)

	result, err := c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"referral_code": code}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrUserNotFound
	}

	return nil
}
