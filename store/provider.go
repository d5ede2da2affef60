package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hofix-app/hofix-api/geo"
	"github.com/hofix-app/hofix-api/schema"
)

var (
	ErrProviderNotFound = fmt.Errorf("provider profile not found")
)

type ProviderProfile interface {
	CreateProvider(provider schema.Provider) (*schema.Provider, error)
	GetProvider(id primitive.ObjectID) (*schema.Provider, error)
	GetProviderByUserID(userID primitive.ObjectID) (*schema.Provider, error)
	EligibleProviders(location geo.Point, radiusKm float64) ([]schema.ProviderCandidate, error)
	UpdateProviderDepositBalance(id primitive.ObjectID, balance float64) error
}

func (m *mongoDB) CreateProvider(provider schema.Provider) (*schema.Provider, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProviderCollection)

	provider.CreatedAt = time.Now().UTC()
	if provider.VerificationStatus == "" {
		provider.VerificationStatus = schema.VerificationPending
	}
	if provider.Skills == nil {
		provider.Skills = []string{}
	}

	result, err := c.InsertOne(ctx, provider)
	if err != nil {
		return nil, err
	}
	provider.ID = result.InsertedID.(primitive.ObjectID)

	return &provider, nil
}

func (m *mongoDB) GetProvider(id primitive.ObjectID) (*schema.Provider, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProviderCollection)

	var provider schema.Provider
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&provider); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProviderNotFound
		}
		return nil, err
	}

	return &provider, nil
}

func (m *mongoDB) GetProviderByUserID(userID primitive.ObjectID) (*schema.Provider, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProviderCollection)

	var provider schema.Provider
	if err := c.FindOne(ctx, bson.M{"user_id": userID}).Decode(&provider); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProviderNotFound
		}
		return nil, err
	}

	return &provider, nil
}

// EligibleProviders returns the providers to notify about a request at the
// given location: every available provider with a known position within
// radiusKm. When the radius filter matches nobody the whole available pool
// is returned instead, the system prefers over-notification to a request
// nobody ever sees.
func (m *mongoDB) EligibleProviders(location geo.Point, radiusKm float64) ([]schema.ProviderCandidate, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProviderCollection)

	pipeline := []bson.M{
		{"$match": bson.M{"availability": true}},
		{"$lookup": bson.M{
			"from":         schema.UserCollection,
			"localField":   "user_id",
			"foreignField": "_id",
			"as":           "user",
		}},
		{"$unwind": "$user"},
	}

	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var joined []struct {
		schema.Provider `bson:",inline"`
		User            schema.User `bson:"user"`
	}
	if err := cursor.All(ctx, &joined); err != nil {
		return nil, err
	}

	available := make([]schema.ProviderCandidate, 0, len(joined))
	nearby := make([]schema.ProviderCandidate, 0, len(joined))
	for _, p := range joined {
		candidate := schema.ProviderCandidate{
			Provider: p.Provider,
			User:     p.User,
		}
		if p.User.HasLocation() {
			candidate.Distance = geo.Distance(location, geo.Point{
				Latitude:  p.User.Latitude,
				Longitude: p.User.Longitude,
			})
			if candidate.Distance <= radiusKm {
				nearby = append(nearby, candidate)
			}
		}
		available = append(available, candidate)
	}

	if len(nearby) > 0 {
		return nearby, nil
	}

	return available, nil
}

// UpdateProviderDepositBalance writes the denormalized deposit running
// balance on the provider document. The authoritative history is the
// deposit ledger.
func (m *mongoDB) UpdateProviderDepositBalance(id primitive.ObjectID, balance float64) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProviderCollection)

	result, err := c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"deposit_balance": balance}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrProviderNotFound
	}

	return nil
}
