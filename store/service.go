package store

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hofix-app/hofix-api/schema"
)

type ServiceCatalog interface {
	GetOrCreateService(category string, basePrice float64) (*schema.Service, error)
}

// GetOrCreateService resolves the generic catalog entry for a category,
// creating it on first use with the given base price.
func (m *mongoDB) GetOrCreateService(category string, basePrice float64) (*schema.Service, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ServiceCollection)

	var service schema.Service
	err := c.FindOne(ctx, bson.M{"category": category}).Decode(&service)
	if err == nil {
		return &service, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	service = schema.Service{
		Name:      strings.Title(category) + " Service",
		Category:  category,
		BasePrice: basePrice,
	}
	result, err := c.InsertOne(ctx, service)
	if err != nil {
		return nil, err
	}
	service.ID = result.InsertedID.(primitive.ObjectID)

	return &service, nil
}
