package schema

import (
	"time"

	"github.com/google/uuid"
)

// Ledger transaction types and sources
const (
	TransactionCredit = "credit"
	TransactionDebit  = "debit"

	SourceTopup      = "topup"
	SourceReferral   = "referral"
	SourcePayment    = "payment"
	SourceRecharge   = "recharge"
	SourceCommission = "commission_deduction"
)

// WalletTransaction is one append-only entry of a user's wallet ledger.
// BalanceAfter snapshots the denormalized running balance kept on the
// user document at the moment the entry was written.
type WalletTransaction struct {
	ID                uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	UserID            string    `json:"user_id" gorm:"index;not null"`
	Amount            float64   `json:"amount"`
	TransactionType   string    `json:"transaction_type"`
	Source            string    `json:"source"`
	Description       string    `json:"description"`
	BalanceAfter      float64   `json:"balance_after"`
	ExternalReference *string   `json:"external_reference,omitempty" gorm:"unique_index"`
	CreatedAt         time.Time `json:"created_at"`
}

// DepositTransaction is one append-only entry of a provider's deposit
// ledger. Commission deductions reference the booking they settle.
type DepositTransaction struct {
	ID                uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	ProviderID        string    `json:"provider_id" gorm:"index;not null"`
	Amount            float64   `json:"amount"`
	TransactionType   string    `json:"transaction_type"`
	Source            string    `json:"source"`
	Description       string    `json:"description"`
	BalanceAfter      float64   `json:"balance_after"`
	BookingID         string    `json:"booking_id,omitempty"`
	CommissionRate    float64   `json:"commission_rate,omitempty"`
	CommissionAmount  float64   `json:"commission_amount,omitempty"`
	ExternalReference *string   `json:"external_reference,omitempty" gorm:"unique_index"`
	CreatedAt         time.Time `json:"created_at"`
}
