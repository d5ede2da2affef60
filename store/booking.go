package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hofix-app/hofix-api/schema"
)

var (
	ErrBookingNotFound     = fmt.Errorf("booking not found")
	ErrBookingNotCompleted = fmt.Errorf("booking is not completed")
	ErrBookingAlreadyPaid  = fmt.Errorf("booking is already paid")
	ErrNotBookingProvider  = fmt.Errorf("not the provider of this booking")
)

type BookingStore interface {
	CreateBooking(booking schema.Booking) (*schema.Booking, error)
	GetBooking(id primitive.ObjectID) (*schema.Booking, error)
	ProviderHasBookingInStatus(providerID primitive.ObjectID, statuses []string) (bool, error)
	FirstUnpaidCompletedBooking(userID primitive.ObjectID) (*schema.Booking, error)
	MarkBookingPaid(id primitive.ObjectID) (*schema.Booking, error)
}

func (m *mongoDB) CreateBooking(booking schema.Booking) (*schema.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.BookingCollection)

	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}

	result, err := c.InsertOne(ctx, booking)
	if err != nil {
		return nil, err
	}
	if booking.ID.IsZero() {
		booking.ID = result.InsertedID.(primitive.ObjectID)
	}

	return &booking, nil
}

func (m *mongoDB) GetBooking(id primitive.ObjectID) (*schema.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.BookingCollection)

	var booking schema.Booking
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	return &booking, nil
}

// ProviderHasBookingInStatus reports whether the provider currently holds a
// booking in any of the given statuses. The workflow uses it as the
// busy-check before quote submission and selection.
func (m *mongoDB) ProviderHasBookingInStatus(providerID primitive.ObjectID, statuses []string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.BookingCollection)

	count, err := c.CountDocuments(ctx, bson.M{
		"provider_id": providerID,
		"status":      bson.M{"$in": statuses},
	}, nil)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// MarkBookingPaid flips a completed booking to paid. The update is
// conditional on the current payment state so a replayed settlement
// cannot record the payment twice.
func (m *mongoDB) MarkBookingPaid(id primitive.ObjectID) (*schema.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.BookingCollection)

	var booking schema.Booking
	err := c.FindOneAndUpdate(ctx,
		bson.M{
			"_id":            id,
			"status":         schema.BookingCompleted,
			"payment_status": bson.M{"$ne": schema.PaymentPaid},
		},
		bson.M{"$set": bson.M{
			"payment_status": schema.PaymentPaid,
			"has_payment":    true,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, m.classifyBookingConflict(ctx, id)
		}
		return nil, err
	}

	return &booking, nil
}

func (m *mongoDB) classifyBookingConflict(ctx context.Context, id primitive.ObjectID) error {
	c := m.client.Database(m.database).Collection(schema.BookingCollection)

	var booking schema.Booking
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrBookingNotFound
		}
		return err
	}
	if booking.Status != schema.BookingCompleted {
		return ErrBookingNotCompleted
	}
	return ErrBookingAlreadyPaid
}

// FirstUnpaidCompletedBooking returns the oldest completed booking of the
// user that still awaits payment, or nil when there is none. A request
// creation is blocked while one exists.
func (m *mongoDB) FirstUnpaidCompletedBooking(userID primitive.ObjectID) (*schema.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.BookingCollection)

	var booking schema.Booking
	err := c.FindOne(ctx, bson.M{
		"user_id":        userID,
		"status":         schema.BookingCompleted,
		"payment_status": bson.M{"$ne": schema.PaymentPaid},
	}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &booking, nil
}
