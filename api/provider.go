package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hofix-app/hofix-api/consts"
	"github.com/hofix-app/hofix-api/schema"
	"github.com/hofix-app/hofix-api/store"
)

// openServiceRequests is the API for the provider's actionable feed. A
// provider below the minimum deposit balance is locked out until topped up.
func (s *Server) openServiceRequests(c *gin.Context) {
	account := c.MustGet("account").(*schema.User)
	provider := c.MustGet("provider").(*schema.Provider)

	minimum := consts.MinimumDepositBalance()
	if shortfall, ok := s.store.CheckMinimumDeposit(provider, minimum); !ok {
		c.JSON(http.StatusForbidden, gin.H{
			"code":             errorInsufficientDeposit.Code,
			"message":          errorInsufficientDeposit.Message,
			"deposit_balance":  provider.DepositBalance,
			"minimum_required": minimum,
			"shortfall":        shortfall,
		})
		c.Abort()
		return
	}

	items, err := s.mongoStore.ListOpenRequestsForProvider(provider, account, consts.BrowseRadiusKm())
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": items})
}

// providerNotifications is the API for the provider inbox
func (s *Server) providerNotifications(c *gin.Context) {
	provider := c.MustGet("provider").(*schema.Provider)

	types := c.QueryArray("types")
	if len(types) == 0 {
		types = []string{schema.NotificationNewRequest, schema.NotificationQuoteSelected}
	}

	notifications, err := s.mongoStore.ListProviderNotifications(provider.ID, types, 50)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// markNotificationRead is the API to stamp one inbox entry as read
func (s *Server) markNotificationRead(c *gin.Context) {
	provider := c.MustGet("provider").(*schema.Provider)

	notificationID, err := primitive.ObjectIDFromHex(c.Param("notificationID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	err = s.mongoStore.MarkNotificationRead(provider.ID, notificationID)
	if err == store.ErrNotificationNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorNotificationNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// settleBookingCash records a cash payment collected by the provider for a
// completed booking. The marketplace commission comes out of the security
// deposit, keyed on the booking so a replayed call cannot deduct twice.
func (s *Server) settleBookingCash(c *gin.Context) {
	provider := c.MustGet("provider").(*schema.Provider)

	bookingID, err := primitive.ObjectIDFromHex(c.Param("bookingID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	booking, err := s.mongoStore.GetBooking(bookingID)
	if err == store.ErrBookingNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorBookingNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}
	if booking.ProviderID != provider.ID {
		abortWithEncoding(c, http.StatusForbidden, errorNotBookingProvider)
		return
	}
	if booking.Status != schema.BookingCompleted {
		abortWithEncoding(c, http.StatusConflict, errorBookingNotDone)
		return
	}
	if booking.PaymentStatus == schema.PaymentPaid {
		abortWithEncoding(c, http.StatusConflict, errorBookingAlreadyPaid)
		return
	}

	commission, err := s.store.DeductCommission(provider, booking, consts.CommissionRate(), "cash-"+booking.ID.Hex())
	switch err {
	case nil, store.ErrTransactionProcessed:
		// a replay that deducted the commission but failed before the
		// payment landed may proceed to record it
	case store.ErrInsufficientDeposit:
		abortWithEncoding(c, http.StatusForbidden, errorInsufficientDeposit)
		return
	case store.ErrInvalidBookingPrice, store.ErrInvalidAmount:
		abortWithEncoding(c, http.StatusConflict, errorInvalidAmount)
		return
	default:
		shouldInterupt(err, c)
		return
	}

	updated, err := s.mongoStore.MarkBookingPaid(bookingID)
	switch err {
	case nil:
	case store.ErrBookingNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorBookingNotFound)
		return
	case store.ErrBookingNotCompleted:
		abortWithEncoding(c, http.StatusConflict, errorBookingNotDone)
		return
	case store.ErrBookingAlreadyPaid:
		abortWithEncoding(c, http.StatusConflict, errorBookingAlreadyPaid)
		return
	default:
		shouldInterupt(err, c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":     updated,
		"commission": commission,
	})
}

// depositSummary is the API for the provider's deposit ledger and
// eligibility state.
func (s *Server) depositSummary(c *gin.Context) {
	provider := c.MustGet("provider").(*schema.Provider)

	summary, err := s.store.DepositSummary(provider, consts.MinimumDepositBalance(), 50)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": summary})
}

// addDeposit is the API for a provider to top up the security deposit
func (s *Server) addDeposit(c *gin.Context) {
	provider := c.MustGet("provider").(*schema.Provider)

	var params struct {
		Amount            float64 `json:"amount"`
		ExternalReference string  `json:"external_reference"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	balance, err := s.store.RecordDepositTransaction(provider, store.DepositTransactionArgs{
		Amount:            params.Amount,
		TransactionType:   schema.TransactionCredit,
		Source:            schema.SourceTopup,
		Description:       "Deposit top-up",
		ExternalReference: params.ExternalReference,
	})
	switch err {
	case nil:
	case store.ErrInvalidAmount:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidAmount)
		return
	case store.ErrInvalidTransactionType:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidTransactionType)
		return
	case store.ErrTransactionProcessed:
		abortWithEncoding(c, http.StatusConflict, errorTransactionProcessed)
		return
	default:
		shouldInterupt(err, c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":          "OK",
		"deposit_balance": balance,
	})
}
