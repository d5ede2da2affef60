package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hofix-app/hofix-api/api/mocks"
	"github.com/hofix-app/hofix-api/messaging"
	"github.com/hofix-app/hofix-api/schema"
	"github.com/hofix-app/hofix-api/store"
)

func TestCreateServiceRequestFanOut(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	p := mocks.NewMockPushCenter(ctl)

	s := Server{
		mongoStore: m,
		push:       p,
	}

	userID := primitive.NewObjectID()
	requestID := primitive.NewObjectID()

	m.EXPECT().GetUser(userID).Return(&schema.User{
		ID:        userID,
		Role:      schema.RoleUser,
		Latitude:  28.6315,
		Longitude: 77.2167,
	}, nil).Times(1)

	m.EXPECT().CreateServiceRequest(gomock.Any()).DoAndReturn(
		func(request schema.ServiceRequest) (*schema.ServiceRequest, error) {
			assert.Equal(t, userID, request.UserID, "wrong requester")
			assert.Equal(t, "plumbing", request.ServiceCategory, "wrong category")
			request.ID = requestID
			request.Status = schema.RequestOpen
			return &request, nil
		}).Times(1)

	nearProvider := primitive.NewObjectID()
	farProvider := primitive.NewObjectID()
	m.EXPECT().EligibleProviders(gomock.Any(), gomock.Any()).Return([]schema.ProviderCandidate{
		{Provider: schema.Provider{ID: nearProvider}, Distance: 2.4},
		{Provider: schema.Provider{ID: farProvider}, Distance: 11.7},
	}, nil).Times(1)

	m.EXPECT().CreateProviderNotification(gomock.Any()).DoAndReturn(
		func(n schema.ProviderNotification) (*schema.ProviderNotification, error) {
			assert.Equal(t, requestID, n.ServiceRequestID, "wrong request id")
			assert.Equal(t, schema.NotificationNewRequest, n.NotificationType, "wrong type")
			assert.NotEmpty(t, n.Title, "empty title")
			return &n, nil
		}).Times(2)

	p.EXPECT().NotifyNewRequest(nearProvider.Hex(), gomock.Any()).Times(1)
	p.EXPECT().NotifyNewRequest(farProvider.Hex(), gomock.Any()).Times(1)

	router := gin.New()
	router.Use(identify(userID.Hex()))
	router.Use(s.recognizeAccountMiddleware())
	router.POST("/", s.createServiceRequest)

	body := `{"service_category": "plumbing", "title": "Leaking tap", "description": "Kitchen tap leaks"}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		ProvidersNotified int `json:"providers_notified"`
	}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp), "wrong json unmarshal")
	assert.Equal(t, 2, resp.ProvidersNotified, "wrong fan-out count")
}

func TestCreateServiceRequestOutstandingPayment(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	p := mocks.NewMockPushCenter(ctl)

	s := Server{
		mongoStore: m,
		push:       p,
	}

	userID := primitive.NewObjectID()

	m.EXPECT().GetUser(userID).Return(&schema.User{ID: userID}, nil).Times(1)
	m.EXPECT().CreateServiceRequest(gomock.Any()).Return(nil, &store.ErrOutstandingPayment{
		BookingID: primitive.NewObjectID(),
	}).Times(1)

	router := gin.New()
	router.Use(identify(userID.Hex()))
	router.Use(s.recognizeAccountMiddleware())
	router.POST("/", s.createServiceRequest)

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"service_category": "plumbing"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")

	var resp ErrorResponse
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp), "wrong json unmarshal")
	assert.Equal(t, int64(1203), resp.Code, "wrong error code")
}

func TestCreateServiceRequestMissingFields(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	p := mocks.NewMockPushCenter(ctl)

	s := Server{
		mongoStore: m,
		push:       p,
	}

	userID := primitive.NewObjectID()

	m.EXPECT().GetUser(userID).Return(&schema.User{ID: userID}, nil).Times(1)
	m.EXPECT().CreateServiceRequest(gomock.Any()).DoAndReturn(
		func(request schema.ServiceRequest) (*schema.ServiceRequest, error) {
			assert.Empty(t, request.Description, "wrong description")
			return nil, store.ErrMissingRequestFields
		}).Times(1)

	router := gin.New()
	router.Use(identify(userID.Hex()))
	router.Use(s.recognizeAccountMiddleware())
	router.POST("/", s.createServiceRequest)

	// no description or address anywhere, nothing fans out
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"service_category": "plumbing"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var resp ErrorResponse
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp), "wrong json unmarshal")
	assert.Equal(t, int64(1208), resp.Code, "wrong error code")
}

func TestCancelServiceRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	p := mocks.NewMockPushCenter(ctl)

	s := Server{
		mongoStore: m,
		push:       p,
	}

	userID := primitive.NewObjectID()
	requestID := primitive.NewObjectID()
	providerA := primitive.NewObjectID()
	providerB := primitive.NewObjectID()

	m.EXPECT().GetUser(userID).Return(&schema.User{ID: userID}, nil).Times(1)
	m.EXPECT().CancelServiceRequest(requestID, userID).Return(&store.CancellationResult{
		Request: &schema.ServiceRequest{
			ID:     requestID,
			UserID: userID,
			Title:  "Leaking tap",
			Status: schema.RequestCancelled,
		},
		Quotes: []schema.ProviderQuote{
			{ProviderID: providerA, Status: schema.QuoteSubmitted},
			{ProviderID: providerB, Status: schema.QuoteSubmitted},
		},
	}, nil).Times(1)

	m.EXPECT().CreateProviderNotification(gomock.Any()).DoAndReturn(
		func(n schema.ProviderNotification) (*schema.ProviderNotification, error) {
			assert.Equal(t, schema.NotificationRequestCancelled, n.NotificationType, "wrong type")
			return &n, nil
		}).Times(2)

	// one per quoting provider, one broadcast, one owner confirmation
	p.EXPECT().NotifyRequestCancelled(gomock.Any(), gomock.Any()).Times(4)

	router := gin.New()
	router.Use(identify(userID.Hex()))
	router.Use(s.recognizeAccountMiddleware())
	router.POST("/:requestID/cancel", s.cancelServiceRequest)

	req := httptest.NewRequest("POST", fmt.Sprintf("/%s/cancel", requestID.Hex()), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestCancelServiceRequestClosed(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		mongoStore: m,
	}

	userID := primitive.NewObjectID()
	requestID := primitive.NewObjectID()

	m.EXPECT().GetUser(userID).Return(&schema.User{ID: userID}, nil).Times(1)
	m.EXPECT().CancelServiceRequest(requestID, userID).Return(nil, store.ErrRequestClosed).Times(1)

	router := gin.New()
	router.Use(identify(userID.Hex()))
	router.Use(s.recognizeAccountMiddleware())
	router.POST("/:requestID/cancel", s.cancelServiceRequest)

	req := httptest.NewRequest("POST", fmt.Sprintf("/%s/cancel", requestID.Hex()), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")

	var resp ErrorResponse
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp), "wrong json unmarshal")
	assert.Equal(t, int64(1202), resp.Code, "wrong error code")
}

func TestSelectQuote(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	p := mocks.NewMockPushCenter(ctl)

	s := Server{
		mongoStore: m,
		push:       p,
	}

	userID := primitive.NewObjectID()
	requestID := primitive.NewObjectID()
	quoteID := primitive.NewObjectID()
	bookingID := primitive.NewObjectID()
	winner := primitive.NewObjectID()
	loser := primitive.NewObjectID()
	bystander := primitive.NewObjectID()

	m.EXPECT().GetUser(userID).Return(&schema.User{ID: userID}, nil).Times(1)
	m.EXPECT().SelectQuote(requestID, quoteID, userID).Return(&store.SelectionResult{
		Request: &schema.ServiceRequest{
			ID:            requestID,
			UserID:        userID,
			Title:         "Leaking tap",
			Status:        schema.RequestQuoteSelected,
			SelectedQuote: &quoteID,
			FinalBooking:  &bookingID,
		},
		Booking: &schema.Booking{
			ID:     bookingID,
			UserID: userID,
			Status: schema.BookingAccepted,
		},
		Winner: &schema.ProviderQuote{
			ID:         quoteID,
			ProviderID: winner,
			Status:     schema.QuoteSelected,
		},
		Provider:            &schema.Provider{ID: winner},
		LoserProviderIDs:    []primitive.ObjectID{loser},
		NotifiedProviderIDs: []primitive.ObjectID{winner, loser, bystander},
	}, nil).Times(1)

	m.EXPECT().CreateProviderNotification(gomock.Any()).DoAndReturn(
		func(n schema.ProviderNotification) (*schema.ProviderNotification, error) {
			assert.Equal(t, winner, n.ProviderID, "wrong winner")
			assert.Equal(t, schema.NotificationQuoteSelected, n.NotificationType, "wrong type")
			return &n, nil
		}).Times(1)

	p.EXPECT().NotifyQuoteSelected(winner.Hex(), gomock.Any()).Times(1)
	p.EXPECT().NotifyUserQuoteSelected(userID.Hex(), gomock.Any()).Times(1)
	// the loser and the merely-notified provider each hear it once, the
	// winner never does
	p.EXPECT().NotifyRequestAssignedToOther(loser.Hex(), gomock.Any()).Times(1)
	p.EXPECT().NotifyRequestAssignedToOther(bystander.Hex(), gomock.Any()).Times(1)
	// every open feed drops the request
	p.EXPECT().NotifyRequestCancelled(messaging.AllProvidersTopic{}, gomock.Any()).DoAndReturn(
		func(topic messaging.Topic, event messaging.RequestCancelledEvent) {
			assert.Equal(t, requestID.Hex(), event.RequestID, "wrong request in broadcast")
		}).Times(1)

	router := gin.New()
	router.Use(identify(userID.Hex()))
	router.Use(s.recognizeAccountMiddleware())
	router.POST("/:requestID/select-quote", s.selectQuote)

	body := fmt.Sprintf(`{"quote_id": "%s"}`, quoteID.Hex())
	req := httptest.NewRequest("POST", fmt.Sprintf("/%s/select-quote", requestID.Hex()), strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Booking schema.Booking `json:"booking"`
	}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp), "wrong json unmarshal")
	assert.Equal(t, bookingID, resp.Booking.ID, "wrong booking")
	assert.Equal(t, schema.BookingAccepted, resp.Booking.Status, "wrong booking status")
}

func TestSelectQuoteNotAvailable(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		mongoStore: m,
	}

	userID := primitive.NewObjectID()
	requestID := primitive.NewObjectID()
	quoteID := primitive.NewObjectID()

	m.EXPECT().GetUser(userID).Return(&schema.User{ID: userID}, nil).Times(1)
	m.EXPECT().SelectQuote(requestID, quoteID, userID).Return(nil, store.ErrQuoteNotAvailable).Times(1)

	router := gin.New()
	router.Use(identify(userID.Hex()))
	router.Use(s.recognizeAccountMiddleware())
	router.POST("/:requestID/select-quote", s.selectQuote)

	body := fmt.Sprintf(`{"quote_id": "%s"}`, quoteID.Hex())
	req := httptest.NewRequest("POST", fmt.Sprintf("/%s/select-quote", requestID.Hex()), strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")

	var resp ErrorResponse
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp), "wrong json unmarshal")
	assert.Equal(t, int64(1307), resp.Code, "wrong error code")
}

func TestServiceRequestDetailOwnerQuotes(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		mongoStore: m,
	}

	userID := primitive.NewObjectID()
	otherUser := primitive.NewObjectID()
	requestID := primitive.NewObjectID()

	m.EXPECT().GetUser(gomock.Any()).DoAndReturn(
		func(id primitive.ObjectID) (*schema.User, error) {
			return &schema.User{ID: id}, nil
		}).Times(2)
	m.EXPECT().GetServiceRequest(requestID).Return(&schema.ServiceRequest{
		ID:     requestID,
		UserID: userID,
		Status: schema.RequestQuotesReceived,
	}, nil).Times(2)
	m.EXPECT().ListQuotesForRequest(requestID).Return([]schema.ProviderQuote{
		{ServiceRequestID: requestID, Status: schema.QuoteSubmitted},
	}, nil).Times(1)

	get := func(as primitive.ObjectID) map[string]json.RawMessage {
		router := gin.New()
		router.Use(identify(as.Hex()))
		router.Use(s.recognizeAccountMiddleware())
		router.GET("/:requestID", s.serviceRequestDetail)

		req := httptest.NewRequest("GET", "/"+requestID.Hex(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

		var resp map[string]json.RawMessage
		assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp), "wrong json unmarshal")
		return resp
	}

	ownerResp := get(userID)
	assert.Contains(t, ownerResp, "quotes", "owner should see quotes")

	otherResp := get(otherUser)
	assert.NotContains(t, otherResp, "quotes", "non-owner should not see quotes")
}
