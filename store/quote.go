package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hofix-app/hofix-api/schema"
)

var (
	ErrProviderNotVerified   = fmt.Errorf("provider is not verified")
	ErrQuoteAlreadySubmitted = fmt.Errorf("a quote has already been submitted for this request")
	ErrProviderBusy          = fmt.Errorf("provider already has an active booking")
	ErrQuoteDeadlinePassed   = fmt.Errorf("the quote deadline has passed")
	ErrInvalidPrice          = fmt.Errorf("price must be greater than zero")
	ErrEmptyDuration         = fmt.Errorf("estimated duration is required")
	ErrQuoteNotFound         = fmt.Errorf("quote not found")
	ErrQuoteNotAvailable     = fmt.Errorf("quote is no longer available")
	ErrQuoteNotWithdrawable  = fmt.Errorf("quote can no longer be withdrawn")
)

// SelectionResult carries everything the selection flow needs for its
// push fan-out after the document effects have landed.
type SelectionResult struct {
	Request  *schema.ServiceRequest
	Booking  *schema.Booking
	Winner   *schema.ProviderQuote
	Provider *schema.Provider

	// providers whose submitted quotes were rejected
	LoserProviderIDs []primitive.ObjectID
	// every provider that held a new_request notification before pruning
	NotifiedProviderIDs []primitive.ObjectID
}

type QuoteStore interface {
	SubmitQuote(requestID primitive.ObjectID, provider *schema.Provider, user *schema.User, price float64, estimatedDuration, notes string, images []string) (*schema.ProviderQuote, *schema.ServiceRequest, error)
	SelectQuote(requestID, quoteID, userID primitive.ObjectID) (*SelectionResult, error)
	WithdrawQuote(requestID primitive.ObjectID, provider *schema.Provider) (*schema.ProviderQuote, *schema.ServiceRequest, error)
	ListQuotesForRequest(requestID primitive.ObjectID) ([]schema.ProviderQuote, error)
	ExpireQuotes(now time.Time) (int64, error)
}

// SubmitQuote attaches a provider's bid to an open request. The
// preconditions are checked in a fixed order so each rejection carries its
// own reason. The provider's name, rating and phone are snapshotted onto
// the quote at submission time.
func (m *mongoDB) SubmitQuote(requestID primitive.ObjectID, provider *schema.Provider, user *schema.User, price float64, estimatedDuration, notes string, images []string) (*schema.ProviderQuote, *schema.ServiceRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if provider.VerificationStatus != schema.VerificationVerified {
		return nil, nil, ErrProviderNotVerified
	}

	request, err := m.GetServiceRequest(requestID)
	if err != nil {
		return nil, nil, err
	}
	if request.Status != schema.RequestOpen && request.Status != schema.RequestQuotesReceived {
		return nil, nil, ErrRequestClosed
	}

	qc := m.client.Database(m.database).Collection(schema.ProviderQuoteCollection)

	// at most one non-cancelled quote per (request, provider) pair
	count, err := qc.CountDocuments(ctx, bson.M{
		"service_request_id": requestID,
		"provider_id":        provider.ID,
		"status":             bson.M{"$ne": schema.QuoteCancelled},
	})
	if err != nil {
		return nil, nil, err
	}
	if count > 0 {
		return nil, nil, ErrQuoteAlreadySubmitted
	}

	busy, err := m.ProviderHasBookingInStatus(provider.ID, []string{schema.BookingInProgress})
	if err != nil {
		return nil, nil, err
	}
	if busy {
		return nil, nil, ErrProviderBusy
	}

	if time.Now().UTC().After(request.QuoteDeadline) {
		return nil, nil, ErrQuoteDeadlinePassed
	}

	if price <= 0 {
		return nil, nil, ErrInvalidPrice
	}
	if strings.TrimSpace(estimatedDuration) == "" {
		return nil, nil, ErrEmptyDuration
	}

	quote := schema.ProviderQuote{
		ServiceRequestID:  requestID,
		ProviderID:        provider.ID,
		Price:             price,
		Currency:          "INR",
		EstimatedDuration: estimatedDuration,
		QuoteNotes:        notes,
		QuoteImages:       images,
		Status:            schema.QuoteSubmitted,
		SubmittedAt:       time.Now().UTC(),
		ExpiresAt:         request.ExpiresAt,
		ProviderName:      user.Name,
		ProviderRating:    user.Rating,
		ProviderPhone:     user.Phone,
	}
	result, err := qc.InsertOne(ctx, quote)
	if err != nil {
		return nil, nil, err
	}
	quote.ID = result.InsertedID.(primitive.ObjectID)

	// the provider has acted on the fan-out notification; the read-mark is
	// inbox hygiene and must not fail the persisted quote
	if err := m.MarkRequestNotificationsRead(provider.ID, requestID, schema.NotificationNewRequest); err != nil {
		log.WithField("prefix", mongoLogPrefix).WithError(err).Warn("fail to mark fan-out notification read")
	}

	rc := m.client.Database(m.database).Collection(schema.ServiceRequestCollection)
	if _, err := rc.UpdateOne(ctx,
		bson.M{"_id": requestID, "status": schema.RequestOpen},
		bson.M{"$set": bson.M{"status": schema.RequestQuotesReceived}},
	); err != nil {
		return nil, nil, err
	}
	if request.Status == schema.RequestOpen {
		request.Status = schema.RequestQuotesReceived
	}

	return &quote, request, nil
}

// SelectQuote makes one quote win a request and produces the booking. The
// request transition is a single-document compare-and-swap keyed on the
// current status, so only one of two racing selection calls can win; the
// loser observes the request as already closed. The remaining writes are
// authorized by winning the swap.
func (m *mongoDB) SelectQuote(requestID, quoteID, userID primitive.ObjectID) (*SelectionResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	request, err := m.GetServiceRequest(requestID)
	if err != nil {
		return nil, err
	}
	if request.UserID != userID {
		return nil, ErrNotRequestOwner
	}

	qc := m.client.Database(m.database).Collection(schema.ProviderQuoteCollection)

	var quote schema.ProviderQuote
	if err := qc.FindOne(ctx, bson.M{"_id": quoteID, "service_request_id": requestID}).Decode(&quote); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrQuoteNotFound
		}
		return nil, err
	}
	if quote.Status != schema.QuoteSubmitted {
		return nil, ErrQuoteNotAvailable
	}

	provider, err := m.GetProvider(quote.ProviderID)
	if err != nil {
		return nil, err
	}
	if provider.VerificationStatus != schema.VerificationVerified {
		return nil, ErrProviderNotVerified
	}

	busy, err := m.ProviderHasBookingInStatus(provider.ID, []string{schema.BookingAccepted, schema.BookingInProgress})
	if err != nil {
		return nil, err
	}
	if busy {
		return nil, ErrProviderBusy
	}

	service, err := m.GetOrCreateService(request.ServiceCategory, quote.Price)
	if err != nil {
		return nil, err
	}

	providerUser, err := m.GetUser(provider.UserID)
	if err != nil {
		return nil, err
	}

	// the booking id is allocated up front so the compare-and-swap can
	// reference it; the document itself is only written by the swap winner
	bookingID := primitive.NewObjectID()

	rc := m.client.Database(m.database).Collection(schema.ServiceRequestCollection)
	result, err := rc.UpdateOne(ctx,
		bson.M{
			"_id":    requestID,
			"status": bson.M{"$in": []string{schema.RequestOpen, schema.RequestQuotesReceived}},
		},
		bson.M{"$set": bson.M{
			"status":         schema.RequestQuoteSelected,
			"selected_quote": quoteID,
			"final_booking":  bookingID,
		}},
	)
	if err != nil {
		return nil, err
	}
	if result.ModifiedCount == 0 {
		return nil, ErrQuoteNotAvailable
	}
	request.Status = schema.RequestQuoteSelected
	request.SelectedQuote = &quoteID
	request.FinalBooking = &bookingID

	booking, err := m.CreateBooking(schema.Booking{
		ID:             bookingID,
		UserID:         userID,
		ProviderID:     provider.ID,
		ServiceID:      service.ID,
		Status:         schema.BookingAccepted,
		ScheduledTime:  request.PreferredDate,
		Price:          quote.Price,
		LocationLat:    request.LocationLat,
		LocationLon:    request.LocationLon,
		Notes:          request.Description,
		ServiceName:    service.Name,
		ProviderUserID: providerUser.ID.Hex(),
		ProviderName:   quote.ProviderName,
		HasPayment:     false,
		PaymentStatus:  schema.PaymentPending,
	})
	if err != nil {
		return nil, err
	}

	if _, err := qc.UpdateOne(ctx,
		bson.M{"_id": quoteID},
		bson.M{"$set": bson.M{"status": schema.QuoteSelected}},
	); err != nil {
		return nil, err
	}
	quote.Status = schema.QuoteSelected

	// who lost before the sibling rejection lands
	loserCursor, err := qc.Find(ctx, bson.M{
		"service_request_id": requestID,
		"status":             schema.QuoteSubmitted,
	})
	if err != nil {
		return nil, err
	}
	var losers []schema.ProviderQuote
	if err := loserCursor.All(ctx, &losers); err != nil {
		return nil, err
	}
	loserProviderIDs := make([]primitive.ObjectID, 0, len(losers))
	for _, l := range losers {
		loserProviderIDs = append(loserProviderIDs, l.ProviderID)
	}

	if _, err := qc.UpdateMany(ctx,
		bson.M{"service_request_id": requestID, "status": schema.QuoteSubmitted},
		bson.M{"$set": bson.M{"status": schema.QuoteRejected}},
	); err != nil {
		return nil, err
	}

	notifiedProviderIDs, err := m.NotifiedProviderIDs(requestID)
	if err != nil {
		return nil, err
	}

	// prune every other provider's inbox entries for this request, they
	// reference a now-closed opportunity
	if err := m.DeleteRequestNotifications(requestID, &provider.ID); err != nil {
		return nil, err
	}

	return &SelectionResult{
		Request:             request,
		Booking:             booking,
		Winner:              &quote,
		Provider:            provider,
		LoserProviderIDs:    loserProviderIDs,
		NotifiedProviderIDs: notifiedProviderIDs,
	}, nil
}

// WithdrawQuote cancels the provider's own quote on a request. Only that
// provider's notifications for the request are pruned.
func (m *mongoDB) WithdrawQuote(requestID primitive.ObjectID, provider *schema.Provider) (*schema.ProviderQuote, *schema.ServiceRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	request, err := m.GetServiceRequest(requestID)
	if err != nil {
		return nil, nil, err
	}

	qc := m.client.Database(m.database).Collection(schema.ProviderQuoteCollection)

	var quote schema.ProviderQuote
	err = qc.FindOneAndUpdate(ctx,
		bson.M{
			"service_request_id": requestID,
			"provider_id":        provider.ID,
			"status": bson.M{"$nin": []string{
				schema.QuoteSelected,
				schema.QuoteRejected,
				schema.QuoteExpired,
				schema.QuoteCancelled,
			}},
		},
		bson.M{"$set": bson.M{"status": schema.QuoteCancelled}},
	).Decode(&quote)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil, m.classifyQuoteConflict(ctx, requestID, provider.ID)
		}
		return nil, nil, err
	}
	quote.Status = schema.QuoteCancelled

	if err := m.DeleteProviderRequestNotifications(provider.ID, requestID); err != nil {
		return nil, nil, err
	}

	return &quote, request, nil
}

func (m *mongoDB) classifyQuoteConflict(ctx context.Context, requestID, providerID primitive.ObjectID) error {
	qc := m.client.Database(m.database).Collection(schema.ProviderQuoteCollection)

	count, err := qc.CountDocuments(ctx, bson.M{
		"service_request_id": requestID,
		"provider_id":        providerID,
	})
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrQuoteNotFound
	}
	return ErrQuoteNotWithdrawable
}

func (m *mongoDB) ListQuotesForRequest(requestID primitive.ObjectID) ([]schema.ProviderQuote, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProviderQuoteCollection)

	pipeline := []bson.M{
		{"$match": bson.M{"service_request_id": requestID}},
		{"$sort": bson.M{"submitted_at": 1}},
	}
	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	quotes := []schema.ProviderQuote{}
	if err := cursor.All(ctx, &quotes); err != nil {
		return nil, err
	}

	return quotes, nil
}

// ExpireQuotes marks every submitted quote past its expiry as expired.
func (m *mongoDB) ExpireQuotes(now time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProviderQuoteCollection)

	result, err := c.UpdateMany(ctx,
		bson.M{
			"status":     schema.QuoteSubmitted,
			"expires_at": bson.M{"$lte": now},
		},
		bson.M{"$set": bson.M{"status": schema.QuoteExpired}},
	)
	if err != nil {
		return 0, err
	}

	return result.ModifiedCount, nil
}
