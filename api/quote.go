package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hofix-app/hofix-api/messaging"
	"github.com/hofix-app/hofix-api/schema"
	"github.com/hofix-app/hofix-api/store"
)

// submitQuote is the API for a provider to bid on an open request
func (s *Server) submitQuote(c *gin.Context) {
	account := c.MustGet("account").(*schema.User)
	provider := c.MustGet("provider").(*schema.Provider)

	id, ok := requestIDParam(c)
	if !ok {
		return
	}

	var params struct {
		Price             float64  `json:"price"`
		EstimatedDuration string   `json:"estimated_duration"`
		QuoteNotes        string   `json:"quote_notes"`
		QuoteImages       []string `json:"quote_images"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	quote, request, err := s.mongoStore.SubmitQuote(id, provider, account,
		params.Price, params.EstimatedDuration, params.QuoteNotes, params.QuoteImages)
	switch err {
	case nil:
	case store.ErrRequestNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		return
	case store.ErrRequestClosed:
		abortWithEncoding(c, http.StatusConflict, errorRequestClosed)
		return
	case store.ErrProviderNotVerified:
		abortWithEncoding(c, http.StatusForbidden, errorProviderNotVerified)
		return
	case store.ErrQuoteAlreadySubmitted:
		abortWithEncoding(c, http.StatusConflict, errorQuoteAlreadySubmitted)
		return
	case store.ErrProviderBusy:
		abortWithEncoding(c, http.StatusConflict, errorProviderBusy)
		return
	case store.ErrQuoteDeadlinePassed:
		abortWithEncoding(c, http.StatusConflict, errorQuoteDeadlinePassed)
		return
	case store.ErrInvalidPrice:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidPrice)
		return
	case store.ErrEmptyDuration:
		abortWithEncoding(c, http.StatusBadRequest, errorEmptyDuration)
		return
	default:
		shouldInterupt(err, c)
		return
	}

	loc := localizerForRequest(c)
	title, message := newQuoteCopy(loc, request.Title)

	s.push.NotifyNewQuote(request.UserID.Hex(), messaging.NewQuoteReceivedEvent{
		Type:      "new_quote",
		Title:     title,
		Message:   message,
		RequestID: request.ID.Hex(),
		QuoteID:   quote.ID.Hex(),
	})

	c.JSON(http.StatusOK, gin.H{"result": quote})
}

// cancelQuote is the API for a provider to withdraw a quote that has not
// been decided yet.
func (s *Server) cancelQuote(c *gin.Context) {
	provider := c.MustGet("provider").(*schema.Provider)

	id, ok := requestIDParam(c)
	if !ok {
		return
	}

	quote, request, err := s.mongoStore.WithdrawQuote(id, provider)
	switch err {
	case nil:
	case store.ErrRequestNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		return
	case store.ErrQuoteNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorQuoteNotFound)
		return
	case store.ErrQuoteNotWithdrawable:
		abortWithEncoding(c, http.StatusConflict, errorQuoteNotWithdrawable)
		return
	default:
		shouldInterupt(err, c)
		return
	}

	loc := localizerForRequest(c)
	logger := log.WithField("api", "cancelQuote")

	// the withdrawal replaces the pruned fan-out entries in the inbox
	title, message := quoteCancelledCopy(loc, quote.ProviderName, request.Title)
	if _, err := s.mongoStore.CreateProviderNotification(schema.ProviderNotification{
		ProviderID:       provider.ID,
		ServiceRequestID: request.ID,
		NotificationType: schema.NotificationQuoteCancelled,
		Title:            title,
		Message:          message,
		IsSent:           true,
	}); err != nil {
		logger.WithError(err).Error("fail to record quote withdrawal")
	}

	s.push.NotifyQuoteCancelled(request.UserID.Hex(), messaging.QuoteCancelledEvent{
		RequestID:    request.ID.Hex(),
		QuoteID:      quote.ID.Hex(),
		ProviderName: quote.ProviderName,
		Message:      pushLine(loc, "quote_withdrawn"),
	})

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
