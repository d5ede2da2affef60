package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hofix-app/hofix-api/schema"
)

var (
	ErrNotificationNotFound = fmt.Errorf("notification not found")
)

type NotificationStore interface {
	CreateProviderNotification(notification schema.ProviderNotification) (*schema.ProviderNotification, error)
	ListProviderNotifications(providerID primitive.ObjectID, types []string, limit int64) ([]schema.ProviderNotification, error)
	MarkNotificationRead(providerID, notificationID primitive.ObjectID) error
	MarkRequestNotificationsRead(providerID, requestID primitive.ObjectID, notificationType string) error
	DeleteRequestNotifications(requestID primitive.ObjectID, exceptProvider *primitive.ObjectID) error
	DeleteProviderRequestNotifications(providerID, requestID primitive.ObjectID) error
	NotifiedProviderIDs(requestID primitive.ObjectID) ([]primitive.ObjectID, error)
	CountRequestNotifications(requestID primitive.ObjectID) (int64, error)
}

func (m *mongoDB) CreateProviderNotification(notification schema.ProviderNotification) (*schema.ProviderNotification, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProviderNotificationCollection)

	notification.CreatedAt = time.Now().UTC()
	result, err := c.InsertOne(ctx, notification)
	if err != nil {
		return nil, err
	}
	notification.ID = result.InsertedID.(primitive.ObjectID)

	return &notification, nil
}

func (m *mongoDB) ListProviderNotifications(providerID primitive.ObjectID, types []string, limit int64) ([]schema.ProviderNotification, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProviderNotificationCollection)

	match := bson.M{"provider_id": providerID}
	if len(types) > 0 {
		match["notification_type"] = bson.M{"$in": types}
	}

	pipeline := []bson.M{
		{"$match": match},
		{"$sort": bson.M{"created_at": -1}},
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.M{"$limit": limit})
	}

	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	notifications := []schema.ProviderNotification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}

	return notifications, nil
}

func (m *mongoDB) MarkNotificationRead(providerID, notificationID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProviderNotificationCollection)

	now := time.Now().UTC()
	result, err := c.UpdateOne(ctx,
		bson.M{"_id": notificationID, "provider_id": providerID},
		bson.M{"$set": bson.M{"is_read": true, "read_at": now}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// MarkRequestNotificationsRead marks a provider's notifications of one
// type for one request as read, used when the provider acts on them.
func (m *mongoDB) MarkRequestNotificationsRead(providerID, requestID primitive.ObjectID, notificationType string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProviderNotificationCollection)

	now := time.Now().UTC()
	_, err := c.UpdateMany(ctx,
		bson.M{
			"provider_id":        providerID,
			"service_request_id": requestID,
			"notification_type":  notificationType,
		},
		bson.M{"$set": bson.M{"is_read": true, "read_at": now}},
	)
	return err
}

// DeleteRequestNotifications prunes every inbox entry for a request,
// optionally sparing one provider's entries.
func (m *mongoDB) DeleteRequestNotifications(requestID primitive.ObjectID, exceptProvider *primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProviderNotificationCollection)

	filter := bson.M{"service_request_id": requestID}
	if exceptProvider != nil {
		filter["provider_id"] = bson.M{"$ne": *exceptProvider}
	}

	_, err := c.DeleteMany(ctx, filter)
	return err
}

func (m *mongoDB) DeleteProviderRequestNotifications(providerID, requestID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProviderNotificationCollection)

	_, err := c.DeleteMany(ctx, bson.M{
		"provider_id":        providerID,
		"service_request_id": requestID,
	})
	return err
}

// NotifiedProviderIDs returns the distinct providers holding any inbox
// entry for the request.
func (m *mongoDB) NotifiedProviderIDs(requestID primitive.ObjectID) ([]primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProviderNotificationCollection)

	values, err := c.Distinct(ctx, "provider_id", bson.M{"service_request_id": requestID})
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(values))
	for _, v := range values {
		if id, ok := v.(primitive.ObjectID); ok {
			ids = append(ids, id)
		}
	}

	return ids, nil
}

func (m *mongoDB) CountRequestNotifications(requestID primitive.ObjectID) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProviderNotificationCollection)

	return c.CountDocuments(ctx, bson.M{"service_request_id": requestID})
}
