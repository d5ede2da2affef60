package messaging

// Event names emitted by the service request workflow.
const (
	EventNewServiceRequest      = "new_service_request"
	EventNewQuoteReceived       = "new_quote_received"
	EventQuoteSelected          = "quote_selected"
	EventRequestAssignedToOther = "request_assigned_to_other"
	EventRequestCancelled       = "request_cancelled"
	EventQuoteCancelled         = "quote_cancelled"
)

// The field names below are part of the client contract.

type NewServiceRequestEvent struct {
	RequestID       string  `json:"request_id"`
	ServiceCategory string  `json:"service_category"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Urgency         string  `json:"urgency"`
	Location        string  `json:"location"`
	Distance        float64 `json:"distance"`
}

type NewQuoteReceivedEvent struct {
	Type      string `json:"type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	QuoteID   string `json:"quote_id"`
}

type QuoteSelectedEvent struct {
	RequestID  string `json:"request_id"`
	BookingID  string `json:"booking_id"`
	ProviderID string `json:"provider_id"`
	Message    string `json:"message"`
	Title      string `json:"title"`
}

type RequestAssignedToOtherEvent struct {
	RequestID string `json:"request_id"`
	Message   string `json:"message"`
}

type RequestCancelledEvent struct {
	RequestID string `json:"request_id"`
	Title     string `json:"title"`
	Reason    string `json:"reason"`
}

type QuoteCancelledEvent struct {
	RequestID    string `json:"request_id"`
	QuoteID      string `json:"quote_id"`
	ProviderName string `json:"provider_name"`
	Message      string `json:"message"`
}
