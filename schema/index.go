package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexUserCollection())
	panicIfError(m.IndexProviderCollection())
	panicIfError(m.IndexServiceCollection())
	panicIfError(m.IndexBookingCollection())
	panicIfError(m.IndexServiceRequestCollection())
	panicIfError(m.IndexProviderQuoteCollection())
	panicIfError(m.IndexProviderNotificationCollection())
}

func (m *MongoDBIndexer) IndexUserCollection() error {
	if err := m.createIndex(UserCollection, mongo.IndexModel{
		Keys: bson.M{
			"email": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(UserCollection, mongo.IndexModel{
		Keys: bson.M{
			"role": 1,
		},
	})
}

func (m *MongoDBIndexer) IndexProviderCollection() error {
	if err := m.createIndex(ProviderCollection, mongo.IndexModel{
		Keys: bson.M{
			"user_id": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(ProviderCollection, mongo.IndexModel{
		Keys: bson.M{
			"availability": 1,
		},
	})
}

func (m *MongoDBIndexer) IndexServiceCollection() error {
	return m.createIndex(ServiceCollection, mongo.IndexModel{
		Keys: bson.M{
			"category": 1,
		},
	})
}

func (m *MongoDBIndexer) IndexBookingCollection() error {
	return m.createIndex(BookingCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "provider_id", Value: 1},
			{Key: "status", Value: 1},
		},
	})
}

func (m *MongoDBIndexer) IndexServiceRequestCollection() error {
	if err := m.createIndex(ServiceRequestCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "created_at", Value: -1},
		},
	}); err != nil {
		return err
	}

	return m.createIndex(ServiceRequestCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "expires_at", Value: 1},
		},
	})
}

func (m *MongoDBIndexer) IndexProviderQuoteCollection() error {
	// the uniqueness of a (request, provider) pair is enforced at the
	// application level, the index only serves the lookups
	return m.createIndex(ProviderQuoteCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "service_request_id", Value: 1},
			{Key: "provider_id", Value: 1},
		},
	})
}

func (m *MongoDBIndexer) IndexProviderNotificationCollection() error {
	if err := m.createIndex(ProviderNotificationCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "provider_id", Value: 1},
			{Key: "created_at", Value: -1},
		},
	}); err != nil {
		return err
	}

	return m.createIndex(ProviderNotificationCollection, mongo.IndexModel{
		Keys: bson.M{
			"service_request_id": 1,
		},
	})
}
