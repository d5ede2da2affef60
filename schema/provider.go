package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ProviderCollection = "providers"
)

// Provider verification states
const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

// Provider is the marketplace profile of a provider account.
type Provider struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID             primitive.ObjectID `bson:"user_id" json:"user_id"`
	Skills             []string           `bson:"skills" json:"skills"`
	Availability       bool               `bson:"availability" json:"availability"`
	VerificationStatus string             `bson:"verification_status" json:"verification_status"`
	DepositBalance     float64            `bson:"deposit_balance" json:"deposit_balance"`
	CreatedAt          time.Time          `bson:"created_at" json:"created_at"`
}

// ProviderCandidate is a provider paired with its distance to a request
// location, produced by the fan-out eligibility query. Distance is zero
// when the provider account has no geo position.
type ProviderCandidate struct {
	Provider Provider
	User     User
	Distance float64
}
