package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ProviderNotificationCollection = "provider_notifications"
)

// Notification types
const (
	NotificationNewRequest       = "new_request"
	NotificationQuoteSelected    = "quote_selected"
	NotificationQuoteRejected    = "quote_rejected"
	NotificationRequestCancelled = "request_cancelled"
	NotificationQuoteCancelled   = "quote_cancelled"
)

// ProviderNotification is an inbox entry for one provider about one request.
// It is a read model only: mutating or deleting it never feeds back into
// request or quote state.
type ProviderNotification struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProviderID       primitive.ObjectID `bson:"provider_id" json:"provider_id"`
	ServiceRequestID primitive.ObjectID `bson:"service_request_id" json:"service_request_id"`
	NotificationType string             `bson:"notification_type" json:"notification_type"`
	Title            string             `bson:"title" json:"title"`
	Message          string             `bson:"message" json:"message"`
	IsRead           bool               `bson:"is_read" json:"is_read"`
	IsSent           bool               `bson:"is_sent" json:"is_sent"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
	ReadAt           *time.Time         `bson:"read_at,omitempty" json:"read_at,omitempty"`
}
