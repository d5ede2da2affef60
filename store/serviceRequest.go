package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hofix-app/hofix-api/consts"
	"github.com/hofix-app/hofix-api/geo"
	"github.com/hofix-app/hofix-api/schema"
)

var (
	ErrRequestNotFound      = fmt.Errorf("service request not found")
	ErrNotRequestOwner      = fmt.Errorf("not the owner of the service request")
	ErrRequestClosed        = fmt.Errorf("service request is no longer accepting quotes")
	ErrMissingRequestFields = fmt.Errorf("missing required fields")
)

// ErrOutstandingPayment rejects a request creation while the requester
// still owes payment for a completed booking. The booking id is surfaced
// so the client can prompt payment first.
type ErrOutstandingPayment struct {
	BookingID primitive.ObjectID
}

func (e *ErrOutstandingPayment) Error() string {
	return fmt.Sprintf("outstanding payment for booking %s", e.BookingID.Hex())
}

// CancellationResult carries what the cancellation flow needs for its
// notification fan-out: the cancelled request and every quote that was
// standing against it.
type CancellationResult struct {
	Request *schema.ServiceRequest
	Quotes  []schema.ProviderQuote
}

type ServiceRequestStore interface {
	CreateServiceRequest(request schema.ServiceRequest) (*schema.ServiceRequest, error)
	GetServiceRequest(id primitive.ObjectID) (*schema.ServiceRequest, error)
	ListUserServiceRequests(userID primitive.ObjectID, limit int64) ([]schema.ServiceRequest, error)
	ListOpenRequestsForProvider(provider *schema.Provider, user *schema.User, radiusKm float64) ([]schema.OpenRequestItem, error)
	CancelServiceRequest(id, userID primitive.ObjectID) (*CancellationResult, error)
	ExpireServiceRequests(now time.Time) ([]schema.ServiceRequest, error)
}

// CreateServiceRequest opens a new request and stamps its quote-collection
// window and overall expiry. Creation is refused while the requester has a
// completed booking with an outstanding balance.
func (m *mongoDB) CreateServiceRequest(request schema.ServiceRequest) (*schema.ServiceRequest, error) {
	if strings.TrimSpace(request.ServiceCategory) == "" ||
		strings.TrimSpace(request.Description) == "" ||
		strings.TrimSpace(request.LocationAddress) == "" {
		return nil, ErrMissingRequestFields
	}

	unpaid, err := m.FirstUnpaidCompletedBooking(request.UserID)
	if err != nil {
		return nil, err
	}
	if unpaid != nil {
		return nil, &ErrOutstandingPayment{BookingID: unpaid.ID}
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ServiceRequestCollection)

	now := time.Now().UTC()
	request.Status = schema.RequestOpen
	request.CreatedAt = now
	request.QuoteDeadline = now.Add(consts.QuoteWindow())
	request.ExpiresAt = now.Add(consts.RequestExpiry())
	if request.Urgency == "" {
		request.Urgency = schema.UrgencyNormal
	}

	result, err := c.InsertOne(ctx, request)
	if err != nil {
		return nil, err
	}
	request.ID = result.InsertedID.(primitive.ObjectID)

	return &request, nil
}

func (m *mongoDB) GetServiceRequest(id primitive.ObjectID) (*schema.ServiceRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ServiceRequestCollection)

	var request schema.ServiceRequest
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&request); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	return &request, nil
}

func (m *mongoDB) ListUserServiceRequests(userID primitive.ObjectID, limit int64) ([]schema.ServiceRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ServiceRequestCollection)

	pipeline := []bson.M{
		{"$match": bson.M{"user_id": userID}},
		{"$sort": bson.M{"created_at": -1}},
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.M{"$limit": limit})
	}

	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	requests := []schema.ServiceRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}

	return requests, nil
}

// ListOpenRequestsForProvider returns the requests the provider may still
// act on: open or collecting quotes, within the browse radius, each item
// annotated with the provider's own quote state and sorted by distance.
func (m *mongoDB) ListOpenRequestsForProvider(provider *schema.Provider, user *schema.User, radiusKm float64) ([]schema.OpenRequestItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ServiceRequestCollection)

	cursor, err := c.Find(ctx, bson.M{
		"status": bson.M{"$in": []string{schema.RequestOpen, schema.RequestQuotesReceived}},
	})
	if err != nil {
		return nil, err
	}

	var requests []schema.ServiceRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}

	items := make([]schema.OpenRequestItem, 0, len(requests))
	requestIDs := make([]primitive.ObjectID, 0, len(requests))
	for _, req := range requests {
		var distance float64
		if user.HasLocation() {
			distance = geo.Distance(
				geo.Point{Latitude: req.LocationLat, Longitude: req.LocationLon},
				geo.Point{Latitude: user.Latitude, Longitude: user.Longitude},
			)
			if distance > radiusKm {
				continue
			}
		}
		items = append(items, schema.OpenRequestItem{
			Request:  req,
			Distance: distance,
		})
		requestIDs = append(requestIDs, req.ID)
	}

	if len(requestIDs) > 0 {
		qc := m.client.Database(m.database).Collection(schema.ProviderQuoteCollection)
		quoteCursor, err := qc.Find(ctx, bson.M{
			"provider_id":        provider.ID,
			"service_request_id": bson.M{"$in": requestIDs},
		})
		if err != nil {
			return nil, err
		}
		var quotes []schema.ProviderQuote
		if err := quoteCursor.All(ctx, &quotes); err != nil {
			return nil, err
		}

		quoteByRequest := make(map[primitive.ObjectID]schema.ProviderQuote, len(quotes))
		for _, q := range quotes {
			quoteByRequest[q.ServiceRequestID] = q
		}
		for i := range items {
			if q, ok := quoteByRequest[items[i].Request.ID]; ok {
				items[i].HasQuoted = true
				items[i].QuoteStatus = q.Status
			}
		}
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Distance < items[j].Distance
	})

	return items, nil
}

// CancelServiceRequest cancels a request on behalf of its owner. The
// status update is a conditional single-document write so a request that
// already reached a terminal or selected state is never cancelled twice.
// All standing quotes are cancelled and every notification for the request
// is pruned.
func (m *mongoDB) CancelServiceRequest(id, userID primitive.ObjectID) (*CancellationResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ServiceRequestCollection)

	var request schema.ServiceRequest
	err := c.FindOneAndUpdate(ctx,
		bson.M{
			"_id":     id,
			"user_id": userID,
			"status": bson.M{"$nin": []string{
				schema.RequestCompleted,
				schema.RequestCancelled,
				schema.RequestQuoteSelected,
			}},
		},
		bson.M{"$set": bson.M{"status": schema.RequestCancelled}},
	).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, m.classifyRequestConflict(ctx, id, userID)
		}
		return nil, err
	}
	request.Status = schema.RequestCancelled

	qc := m.client.Database(m.database).Collection(schema.ProviderQuoteCollection)
	quoteCursor, err := qc.Find(ctx, bson.M{"service_request_id": id})
	if err != nil {
		return nil, err
	}
	var quotes []schema.ProviderQuote
	if err := quoteCursor.All(ctx, &quotes); err != nil {
		return nil, err
	}

	if _, err := qc.UpdateMany(ctx,
		bson.M{"service_request_id": id, "status": schema.QuoteSubmitted},
		bson.M{"$set": bson.M{"status": schema.QuoteCancelled}},
	); err != nil {
		return nil, err
	}

	if err := m.DeleteRequestNotifications(id, nil); err != nil {
		return nil, err
	}

	return &CancellationResult{
		Request: &request,
		Quotes:  quotes,
	}, nil
}

// classifyRequestConflict turns a failed conditional update into the
// specific rejection the client branches on.
func (m *mongoDB) classifyRequestConflict(ctx context.Context, id, userID primitive.ObjectID) error {
	c := m.client.Database(m.database).Collection(schema.ServiceRequestCollection)

	var request schema.ServiceRequest
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&request); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrRequestNotFound
		}
		return err
	}
	if request.UserID != userID {
		return ErrNotRequestOwner
	}
	return ErrRequestClosed
}

// ExpireServiceRequests closes every request which outlived its expiry
// while still collecting quotes. The request status enum has no expired
// member, an overdue request is cancelled. Returns the closed requests so
// the caller can broadcast them.
func (m *mongoDB) ExpireServiceRequests(now time.Time) ([]schema.ServiceRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ServiceRequestCollection)

	cursor, err := c.Find(ctx, bson.M{
		"status":     bson.M{"$in": []string{schema.RequestOpen, schema.RequestQuotesReceived}},
		"expires_at": bson.M{"$lte": now},
	})
	if err != nil {
		return nil, err
	}
	var overdue []schema.ServiceRequest
	if err := cursor.All(ctx, &overdue); err != nil {
		return nil, err
	}

	expired := make([]schema.ServiceRequest, 0, len(overdue))
	qc := m.client.Database(m.database).Collection(schema.ProviderQuoteCollection)
	for _, request := range overdue {
		// conditional update, the request may have progressed since the find
		result, err := c.UpdateOne(ctx,
			bson.M{
				"_id":    request.ID,
				"status": bson.M{"$in": []string{schema.RequestOpen, schema.RequestQuotesReceived}},
			},
			bson.M{"$set": bson.M{"status": schema.RequestCancelled}},
		)
		if err != nil {
			return nil, err
		}
		if result.ModifiedCount == 0 {
			continue
		}

		if _, err := qc.UpdateMany(ctx,
			bson.M{"service_request_id": request.ID, "status": schema.QuoteSubmitted},
			bson.M{"$set": bson.M{"status": schema.QuoteExpired}},
		); err != nil {
			return nil, err
		}
		if err := m.DeleteRequestNotifications(request.ID, nil); err != nil {
			return nil, err
		}

		request.Status = schema.RequestCancelled
		expired = append(expired, request)
	}

	return expired, nil
}
