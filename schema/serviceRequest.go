package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ServiceRequestCollection = "service_requests"
)

// Service request states. Transitions only move forward through
// open → quotes_received → quote_selected → in_progress → completed;
// cancelled is reachable from any non-terminal state.
const (
	RequestOpen           = "open"
	RequestQuotesReceived = "quotes_received"
	RequestQuoteSelected  = "quote_selected"
	RequestInProgress     = "in_progress"
	RequestCompleted      = "completed"
	RequestCancelled      = "cancelled"
)

// Urgency levels
const (
	UrgencyEmergency = "emergency"
	UrgencyUrgent    = "urgent"
	UrgencyNormal    = "normal"
	UrgencyFlexible  = "flexible"
)

// ServiceRequest is a customer's posted job that providers bid on.
// SelectedQuote and FinalBooking are populated together, exactly once,
// on the quote_selected transition.
type ServiceRequest struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"user_id" json:"user_id"`
	ServiceCategory string             `bson:"service_category" json:"service_category"`
	Title           string             `bson:"title" json:"title"`
	Description     string             `bson:"description" json:"description"`
	Images          []string           `bson:"images,omitempty" json:"images,omitempty"`
	VoiceNoteURL    string             `bson:"voice_note_url,omitempty" json:"voice_note_url,omitempty"`
	LocationLat     float64            `bson:"location_lat" json:"location_lat"`
	LocationLon     float64            `bson:"location_lon" json:"location_lon"`
	LocationAddress string             `bson:"location_address" json:"location_address"`

	Urgency           string     `bson:"urgency" json:"urgency"`
	PreferredDate     *time.Time `bson:"preferred_date,omitempty" json:"preferred_date,omitempty"`
	PreferredTimeSlot string     `bson:"preferred_time_slot,omitempty" json:"preferred_time_slot,omitempty"`

	Status        string              `bson:"status" json:"status"`
	SelectedQuote *primitive.ObjectID `bson:"selected_quote,omitempty" json:"selected_quote,omitempty"`
	FinalBooking  *primitive.ObjectID `bson:"final_booking,omitempty" json:"final_booking,omitempty"`

	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	QuoteDeadline time.Time `bson:"quote_deadline" json:"quote_deadline"`
	ExpiresAt     time.Time `bson:"expires_at" json:"expires_at"`
}

// OpenRequestItem is one entry of the provider-facing actionable feed,
// annotated with the provider's own quote on it so the client can render
// the "already bid" state without a second round trip.
type OpenRequestItem struct {
	Request     ServiceRequest `json:"request"`
	Distance    float64        `json:"distance"`
	HasQuoted   bool           `json:"has_quoted"`
	QuoteStatus string         `json:"quote_status,omitempty"`
}
