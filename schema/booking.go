package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	BookingCollection = "bookings"
)

// Booking states. The marketplace clients branch on the exact strings.
const (
	BookingPending    = "Pending"
	BookingAccepted   = "Accepted"
	BookingRejected   = "Rejected"
	BookingInProgress = "In Progress"
	BookingCompleted  = "Completed"
	BookingCancelled  = "Cancelled"
)

// Booking payment states
const (
	PaymentPending = "Pending"
	PaymentPaid    = "Paid"
)

// Booking is the durable contract between a requester and a provider. The
// quote-selection flow creates one directly in the Accepted state.
type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"user_id" json:"user_id"`
	ProviderID    primitive.ObjectID `bson:"provider_id" json:"provider_id"`
	ServiceID     primitive.ObjectID `bson:"service_id" json:"service_id"`
	Status        string             `bson:"status" json:"status"`
	ScheduledTime *time.Time         `bson:"scheduled_time,omitempty" json:"scheduled_time,omitempty"`
	Price         float64            `bson:"price" json:"price"`
	LocationLat   float64            `bson:"location_lat" json:"location_lat"`
	LocationLon   float64            `bson:"location_lon" json:"location_lon"`
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Rating        float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	Review        string             `bson:"review,omitempty" json:"review,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`

	// denormalized for list views
	ServiceName      string `bson:"service_name" json:"service_name"`
	ProviderUserID   string `bson:"provider_user_id" json:"provider_user_id"`
	ProviderName     string `bson:"provider_name" json:"provider_name"`

	HasPayment    bool   `bson:"has_payment" json:"has_payment"`
	PaymentStatus string `bson:"payment_status" json:"payment_status"`

	CompletionNotes  string     `bson:"completion_notes,omitempty" json:"completion_notes,omitempty"`
	CompletionImages []string   `bson:"completion_images,omitempty" json:"completion_images,omitempty"`
	CompletedAt      *time.Time `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
}
