package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hofix-app/hofix-api/consts"
	"github.com/hofix-app/hofix-api/geo"
	"github.com/hofix-app/hofix-api/messaging"
	"github.com/hofix-app/hofix-api/schema"
	"github.com/hofix-app/hofix-api/store"
)

func requestIDParam(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("requestID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return primitive.NilObjectID, false
	}
	return id, true
}

// createServiceRequest is the API for a customer to post a new job. The
// fan-out to nearby available providers happens synchronously, but a
// notification or push failure never fails the already-persisted request.
func (s *Server) createServiceRequest(c *gin.Context) {
	account := c.MustGet("account").(*schema.User)

	var params struct {
		ServiceCategory   string   `json:"service_category" binding:"required"`
		Title             string   `json:"title"`
		Description       string   `json:"description"`
		Urgency           string   `json:"urgency"`
		Latitude          float64  `json:"latitude"`
		Longitude         float64  `json:"longitude"`
		Address           string   `json:"address"`
		Images            []string `json:"images"`
		VoiceNoteURL      string   `json:"voice_note_url"`
		PreferredTimeSlot string   `json:"preferred_time_slot"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	urgency := params.Urgency
	switch urgency {
	case "":
		urgency = schema.UrgencyNormal
	case schema.UrgencyEmergency, schema.UrgencyUrgent, schema.UrgencyNormal, schema.UrgencyFlexible:
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	// fall back to the account's registered position
	lat, lon, address := params.Latitude, params.Longitude, params.Address
	if lat == 0 && lon == 0 {
		lat, lon, address = account.Latitude, account.Longitude, account.Address
	}

	request, err := s.mongoStore.CreateServiceRequest(schema.ServiceRequest{
		UserID:            account.ID,
		ServiceCategory:   params.ServiceCategory,
		Title:             params.Title,
		Description:       params.Description,
		Images:            params.Images,
		VoiceNoteURL:      params.VoiceNoteURL,
		LocationLat:       lat,
		LocationLon:       lon,
		LocationAddress:   address,
		Urgency:           urgency,
		PreferredTimeSlot: params.PreferredTimeSlot,
	})
	if err != nil {
		var outstanding *store.ErrOutstandingPayment
		switch {
		case err == store.ErrMissingRequestFields:
			abortWithEncoding(c, http.StatusBadRequest, errorMissingFields)
			return
		case errors.As(err, &outstanding):
			abortWithEncoding(c, http.StatusForbidden, errorOutstandingPayment, err)
			return
		default:
			shouldInterupt(err, c)
			return
		}
	}

	notified := s.fanOutServiceRequest(c, request)

	c.JSON(http.StatusOK, gin.H{
		"result":             request,
		"providers_notified": notified,
	})
}

// fanOutServiceRequest notifies every eligible provider about a freshly
// created request and returns how many were reached.
func (s *Server) fanOutServiceRequest(c *gin.Context, request *schema.ServiceRequest) int {
	logger := log.WithField("api", "fanOutServiceRequest")
	loc := localizerForRequest(c)

	candidates, err := s.mongoStore.EligibleProviders(geo.Point{
		Latitude:  request.LocationLat,
		Longitude: request.LocationLon,
	}, consts.FanOutRadiusKm())
	if err != nil {
		logger.WithError(err).Error("fail to query eligible providers")
		return 0
	}

	title, message := newRequestCopy(loc, request.ServiceCategory, request.Description)

	notified := 0
	for _, candidate := range candidates {
		if _, err := s.mongoStore.CreateProviderNotification(schema.ProviderNotification{
			ProviderID:       candidate.Provider.ID,
			ServiceRequestID: request.ID,
			NotificationType: schema.NotificationNewRequest,
			Title:            title,
			Message:          message,
		}); err != nil {
			logger.WithError(err).WithField("provider_id", candidate.Provider.ID.Hex()).
				Error("fail to create provider notification")
			continue
		}

		s.push.NotifyNewRequest(candidate.Provider.ID.Hex(), messaging.NewServiceRequestEvent{
			RequestID:       request.ID.Hex(),
			ServiceCategory: request.ServiceCategory,
			Title:           request.Title,
			Description:     request.Description,
			Urgency:         request.Urgency,
			Location:        request.LocationAddress,
			Distance:        candidate.Distance,
		})
		notified++
	}

	return notified
}

// listServiceRequests is the API for a customer to list their own requests
func (s *Server) listServiceRequests(c *gin.Context) {
	account := c.MustGet("account").(*schema.User)

	requests, err := s.mongoStore.ListUserServiceRequests(account.ID, 100)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// serviceRequestDetail is the API to query one request. Submitted quotes
// are embedded only for the request owner.
func (s *Server) serviceRequestDetail(c *gin.Context) {
	account := c.MustGet("account").(*schema.User)

	id, ok := requestIDParam(c)
	if !ok {
		return
	}

	request, err := s.mongoStore.GetServiceRequest(id)
	if err == store.ErrRequestNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	result := gin.H{"result": request}

	if request.UserID == account.ID {
		quotes, err := s.mongoStore.ListQuotesForRequest(id)
		if shouldInterupt(err, c) {
			return
		}
		result["quotes"] = quotes
	}

	c.JSON(http.StatusOK, result)
}

// cancelServiceRequest is the API for the request owner to withdraw a job
// before a quote is selected.
func (s *Server) cancelServiceRequest(c *gin.Context) {
	account := c.MustGet("account").(*schema.User)

	id, ok := requestIDParam(c)
	if !ok {
		return
	}

	result, err := s.mongoStore.CancelServiceRequest(id, account.ID)
	switch err {
	case nil:
	case store.ErrRequestNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		return
	case store.ErrNotRequestOwner:
		abortWithEncoding(c, http.StatusForbidden, errorNotRequestOwner)
		return
	case store.ErrRequestClosed:
		abortWithEncoding(c, http.StatusConflict, errorRequestClosed)
		return
	default:
		shouldInterupt(err, c)
		return
	}

	loc := localizerForRequest(c)
	logger := log.WithField("api", "cancelServiceRequest")

	title, message := requestCancelledCopy(loc, result.Request.Title)
	cancelEvent := messaging.RequestCancelledEvent{
		RequestID: result.Request.ID.Hex(),
		Title:     title,
		Reason:    pushLine(loc, "cancelled_by_customer"),
	}

	for _, quote := range result.Quotes {
		if quote.Status != schema.QuoteSubmitted {
			continue
		}
		if _, err := s.mongoStore.CreateProviderNotification(schema.ProviderNotification{
			ProviderID:       quote.ProviderID,
			ServiceRequestID: result.Request.ID,
			NotificationType: schema.NotificationRequestCancelled,
			Title:            title,
			Message:          message,
		}); err != nil {
			logger.WithError(err).WithField("provider_id", quote.ProviderID.Hex()).
				Error("fail to create provider notification")
		}

		s.push.NotifyRequestCancelled(messaging.ProviderTopic(quote.ProviderID.Hex()), cancelEvent)
	}

	// open feeds everywhere drop the request
	s.push.NotifyRequestCancelled(messaging.AllProvidersTopic{}, cancelEvent)

	s.push.NotifyRequestCancelled(messaging.UserTopic(account.ID.Hex()), messaging.RequestCancelledEvent{
		RequestID: result.Request.ID.Hex(),
		Title:     title,
		Reason:    pushLine(loc, "cancelled_by_you"),
	})

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// selectQuote is the API for the request owner to accept one quote, which
// creates the booking and closes the bidding.
func (s *Server) selectQuote(c *gin.Context) {
	account := c.MustGet("account").(*schema.User)

	id, ok := requestIDParam(c)
	if !ok {
		return
	}

	var params struct {
		QuoteID string `json:"quote_id" binding:"required"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	quoteID, err := primitive.ObjectIDFromHex(params.QuoteID)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	result, err := s.mongoStore.SelectQuote(id, quoteID, account.ID)
	switch err {
	case nil:
	case store.ErrRequestNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		return
	case store.ErrNotRequestOwner:
		abortWithEncoding(c, http.StatusForbidden, errorNotRequestOwner)
		return
	case store.ErrQuoteNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorQuoteNotFound)
		return
	case store.ErrQuoteNotAvailable:
		abortWithEncoding(c, http.StatusConflict, errorQuoteNotAvailable)
		return
	case store.ErrProviderNotVerified:
		abortWithEncoding(c, http.StatusConflict, errorProviderNotVerified)
		return
	case store.ErrProviderBusy:
		abortWithEncoding(c, http.StatusConflict, errorProviderBusy)
		return
	default:
		shouldInterupt(err, c)
		return
	}

	loc := localizerForRequest(c)
	logger := log.WithField("api", "selectQuote")

	title, message := quoteSelectedCopy(loc, result.Request.Title)
	if _, err := s.mongoStore.CreateProviderNotification(schema.ProviderNotification{
		ProviderID:       result.Winner.ProviderID,
		ServiceRequestID: result.Request.ID,
		NotificationType: schema.NotificationQuoteSelected,
		Title:            title,
		Message:          message,
	}); err != nil {
		logger.WithError(err).Error("fail to create winner notification")
	}

	selectedEvent := messaging.QuoteSelectedEvent{
		RequestID:  result.Request.ID.Hex(),
		BookingID:  result.Booking.ID.Hex(),
		ProviderID: result.Winner.ProviderID.Hex(),
		Title:      title,
		Message:    pushLine(loc, "quote_selected"),
	}
	s.push.NotifyQuoteSelected(result.Winner.ProviderID.Hex(), selectedEvent)
	s.push.NotifyUserQuoteSelected(account.ID.Hex(), selectedEvent)

	assignedEvent := messaging.RequestAssignedToOtherEvent{
		RequestID: result.Request.ID.Hex(),
		Message:   pushLine(loc, "request_assigned"),
	}

	told := map[primitive.ObjectID]struct{}{
		result.Winner.ProviderID: {},
	}
	for _, providerID := range result.LoserProviderIDs {
		if _, done := told[providerID]; done {
			continue
		}
		told[providerID] = struct{}{}
		s.push.NotifyRequestAssignedToOther(providerID.Hex(), assignedEvent)
	}
	for _, providerID := range result.NotifiedProviderIDs {
		if _, done := told[providerID]; done {
			continue
		}
		told[providerID] = struct{}{}
		s.push.NotifyRequestAssignedToOther(providerID.Hex(), assignedEvent)
	}

	// open feeds everywhere drop the now-assigned request
	s.push.NotifyRequestCancelled(messaging.AllProvidersTopic{}, messaging.RequestCancelledEvent{
		RequestID: result.Request.ID.Hex(),
		Title:     result.Request.Title,
		Reason:    pushLine(loc, "request_assigned"),
	})

	c.JSON(http.StatusOK, gin.H{
		"result":  result.Request,
		"booking": result.Booking,
	})
}
