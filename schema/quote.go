package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ProviderQuoteCollection = "provider_quotes"
)

// Quote states
const (
	QuoteSubmitted = "submitted"
	QuoteSelected  = "selected"
	QuoteRejected  = "rejected"
	QuoteExpired   = "expired"
	QuoteCancelled = "cancelled"
)

// ProviderQuote is one provider's bid against a service request. At most one
// non-cancelled quote may exist per (request, provider) pair.
//
// ProviderName, ProviderRating and ProviderPhone are snapshots captured at
// submission time. They intentionally drift from the live provider account
// so the requester sees the quote as it was offered.
type ProviderQuote struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ServiceRequestID  primitive.ObjectID `bson:"service_request_id" json:"service_request_id"`
	ProviderID        primitive.ObjectID `bson:"provider_id" json:"provider_id"`
	Price             float64            `bson:"price" json:"price"`
	Currency          string             `bson:"currency" json:"currency"`
	EstimatedDuration string             `bson:"estimated_duration" json:"estimated_duration"`
	QuoteNotes        string             `bson:"quote_notes,omitempty" json:"quote_notes,omitempty"`
	QuoteImages       []string           `bson:"quote_images,omitempty" json:"quote_images,omitempty"`
	Status            string             `bson:"status" json:"status"`
	SubmittedAt       time.Time          `bson:"submitted_at" json:"submitted_at"`
	ExpiresAt         time.Time          `bson:"expires_at" json:"expires_at"`

	ProviderName   string  `bson:"provider_name" json:"provider_name"`
	ProviderRating float64 `bson:"provider_rating" json:"provider_rating"`
	ProviderPhone  string  `bson:"provider_phone,omitempty" json:"provider_phone,omitempty"`
}
