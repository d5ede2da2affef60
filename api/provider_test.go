package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hofix-app/hofix-api/api/mocks"
	"github.com/hofix-app/hofix-api/schema"
	"github.com/hofix-app/hofix-api/store"
)

func TestOpenServiceRequests(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	userID := primitive.NewObjectID()
	providerID := primitive.NewObjectID()

	s, m, _ := newProviderTestServer(t, ctl, userID, providerID)
	core := mocks.NewMockMarketplaceCore(ctl)
	s.store = core

	core.EXPECT().CheckMinimumDeposit(gomock.Any(), gomock.Any()).Return(0.0, true).Times(1)
	m.EXPECT().ListOpenRequestsForProvider(gomock.Any(), gomock.Any(), gomock.Any()).Return([]schema.OpenRequestItem{
		{
			Request:  schema.ServiceRequest{ID: primitive.NewObjectID(), Status: schema.RequestOpen},
			Distance: 3.2,
		},
		{
			Request:     schema.ServiceRequest{ID: primitive.NewObjectID(), Status: schema.RequestQuotesReceived},
			Distance:    8.9,
			HasQuoted:   true,
			QuoteStatus: schema.QuoteSubmitted,
		},
	}, nil).Times(1)

	router := gin.New()
	router.Use(identify(userID.Hex()))
	router.Use(s.recognizeAccountMiddleware())
	router.Use(s.recognizeProviderMiddleware())
	router.GET("/", s.openServiceRequests)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Requests []schema.OpenRequestItem `json:"requests"`
	}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp), "wrong json unmarshal")
	assert.Len(t, resp.Requests, 2, "wrong feed length")
	assert.True(t, resp.Requests[1].HasQuoted, "wrong quote annotation")
}

func TestOpenServiceRequestsDepositGate(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	userID := primitive.NewObjectID()
	providerID := primitive.NewObjectID()

	s, _, _ := newProviderTestServer(t, ctl, userID, providerID)
	core := mocks.NewMockMarketplaceCore(ctl)
	s.store = core

	core.EXPECT().CheckMinimumDeposit(gomock.Any(), gomock.Any()).Return(200.0, false).Times(1)

	router := gin.New()
	router.Use(identify(userID.Hex()))
	router.Use(s.recognizeAccountMiddleware())
	router.Use(s.recognizeProviderMiddleware())
	router.GET("/", s.openServiceRequests)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")

	var resp struct {
		Code      int64   `json:"code"`
		Shortfall float64 `json:"shortfall"`
	}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp), "wrong json unmarshal")
	assert.Equal(t, int64(1400), resp.Code, "wrong error code")
	assert.Equal(t, 200.0, resp.Shortfall, "wrong shortfall")
}

func TestMarkNotificationRead(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	userID := primitive.NewObjectID()
	providerID := primitive.NewObjectID()
	notificationID := primitive.NewObjectID()

	s, m, _ := newProviderTestServer(t, ctl, userID, providerID)

	m.EXPECT().MarkNotificationRead(providerID, notificationID).Return(nil).Times(1)

	router := gin.New()
	router.Use(identify(userID.Hex()))
	router.Use(s.recognizeAccountMiddleware())
	router.Use(s.recognizeProviderMiddleware())
	router.POST("/notifications/:notificationID/read", s.markNotificationRead)

	req := httptest.NewRequest("POST", "/notifications/"+notificationID.Hex()+"/read", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestSettleBookingCash(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	userID := primitive.NewObjectID()
	providerID := primitive.NewObjectID()
	bookingID := primitive.NewObjectID()

	s, m, _ := newProviderTestServer(t, ctl, userID, providerID)
	core := mocks.NewMockMarketplaceCore(ctl)
	s.store = core

	booking := &schema.Booking{
		ID:            bookingID,
		ProviderID:    providerID,
		Status:        schema.BookingCompleted,
		PaymentStatus: schema.PaymentPending,
		Price:         1200,
	}

	m.EXPECT().GetBooking(bookingID).Return(booking, nil).Times(1)
	core.EXPECT().DeductCommission(gomock.Any(), booking, 10.0, "cash-"+bookingID.Hex()).
		Return(&store.CommissionResult{
			CommissionAmount: 120,
			CommissionRate:   10,
			BookingPrice:     1200,
			NewBalance:       880,
		}, nil).Times(1)
	m.EXPECT().MarkBookingPaid(bookingID).DoAndReturn(func(id primitive.ObjectID) (*schema.Booking, error) {
		paid := *booking
		paid.PaymentStatus = schema.PaymentPaid
		paid.HasPayment = true
		return &paid, nil
	}).Times(1)

	router := gin.New()
	router.Use(identify(userID.Hex()))
	router.Use(s.recognizeAccountMiddleware())
	router.Use(s.recognizeProviderMiddleware())
	router.POST("/bookings/:bookingID/settle-cash", s.settleBookingCash)

	req := httptest.NewRequest("POST", "/bookings/"+bookingID.Hex()+"/settle-cash", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Result     schema.Booking         `json:"result"`
		Commission store.CommissionResult `json:"commission"`
	}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp), "wrong json unmarshal")
	assert.Equal(t, schema.PaymentPaid, resp.Result.PaymentStatus, "wrong payment status")
	assert.Equal(t, 120.0, resp.Commission.CommissionAmount, "wrong commission amount")
}

func TestSettleBookingCashNotOwnBooking(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	userID := primitive.NewObjectID()
	providerID := primitive.NewObjectID()
	bookingID := primitive.NewObjectID()

	s, m, _ := newProviderTestServer(t, ctl, userID, providerID)

	m.EXPECT().GetBooking(bookingID).Return(&schema.Booking{
		ID:            bookingID,
		ProviderID:    primitive.NewObjectID(),
		Status:        schema.BookingCompleted,
		PaymentStatus: schema.PaymentPending,
		Price:         1200,
	}, nil).Times(1)

	router := gin.New()
	router.Use(identify(userID.Hex()))
	router.Use(s.recognizeAccountMiddleware())
	router.Use(s.recognizeProviderMiddleware())
	router.POST("/bookings/:bookingID/settle-cash", s.settleBookingCash)

	req := httptest.NewRequest("POST", "/bookings/"+bookingID.Hex()+"/settle-cash", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")

	var resp ErrorResponse
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp), "wrong json unmarshal")
	assert.Equal(t, int64(1205), resp.Code, "wrong error code")
}
