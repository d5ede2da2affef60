package store

import (
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/hofix-app/hofix-api/schema"
)

var (
	ErrInsufficientDeposit = fmt.Errorf("insufficient deposit balance")
	ErrInvalidBookingPrice = fmt.Errorf("invalid booking price")
)

// DepositTransactionArgs describes one deposit ledger entry.
type DepositTransactionArgs struct {
	Amount            float64
	TransactionType   string
	Source            string
	Description       string
	BookingID         string
	CommissionRate    float64
	CommissionAmount  float64
	ExternalReference string
}

// CommissionResult reports a commission deduction.
type CommissionResult struct {
	CommissionAmount float64 `json:"commission_amount"`
	CommissionRate   float64 `json:"commission_rate"`
	BookingPrice     float64 `json:"booking_price"`
	NewBalance       float64 `json:"new_balance"`
}

// DepositSummaryResult is the deposit view returned to providers.
type DepositSummaryResult struct {
	DepositBalance  float64                     `json:"deposit_balance"`
	MinimumRequired float64                     `json:"minimum_required"`
	IsEligible      bool                        `json:"is_eligible"`
	Transactions    []schema.DepositTransaction `json:"transactions"`
}

// RecordDepositTransaction appends one entry to the provider's deposit
// ledger and updates the denormalized balance on the provider document.
func (s *MarketplaceStore) RecordDepositTransaction(provider *schema.Provider, args DepositTransactionArgs) (float64, error) {
	if args.Amount <= 0 {
		return 0, ErrInvalidAmount
	}
	if args.TransactionType != schema.TransactionCredit && args.TransactionType != schema.TransactionDebit {
		return 0, ErrInvalidTransactionType
	}

	current, err := s.mongo.GetProvider(provider.ID)
	if err != nil {
		return 0, err
	}

	balance := current.DepositBalance
	if args.TransactionType == schema.TransactionCredit {
		balance = roundMoney(balance + args.Amount)
	} else {
		if balance < args.Amount {
			return 0, ErrInsufficientDeposit
		}
		balance = roundMoney(balance - args.Amount)
	}

	entry := schema.DepositTransaction{
		ProviderID:        provider.ID.Hex(),
		Amount:            roundMoney(args.Amount),
		TransactionType:   args.TransactionType,
		Source:            args.Source,
		Description:       args.Description,
		BalanceAfter:      balance,
		BookingID:         args.BookingID,
		CommissionRate:    args.CommissionRate,
		CommissionAmount:  args.CommissionAmount,
		ExternalReference: nullableReference(args.ExternalReference),
		CreatedAt:         time.Now().UTC(),
	}
	if err := s.ormDB.Create(&entry).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return 0, ErrTransactionProcessed
		}
		return 0, err
	}

	if err := s.mongo.UpdateProviderDepositBalance(provider.ID, balance); err != nil {
		return 0, err
	}
	provider.DepositBalance = balance

	return balance, nil
}

// DeductCommission takes the marketplace commission out of the provider's
// deposit when the provider settles a booking in cash. The external
// reference makes a replayed settlement fail with ErrTransactionProcessed
// instead of deducting twice.
func (s *MarketplaceStore) DeductCommission(provider *schema.Provider, booking *schema.Booking, commissionRate float64, externalReference string) (*CommissionResult, error) {
	if booking.Price <= 0 {
		return nil, ErrInvalidBookingPrice
	}

	commission := roundMoney(booking.Price * commissionRate / 100)
	if commission <= 0 {
		return nil, ErrInvalidAmount
	}

	description := fmt.Sprintf("commission (%.1f%%) for booking %s (%s)",
		commissionRate, booking.ServiceName, booking.ID.Hex())

	balance, err := s.RecordDepositTransaction(provider, DepositTransactionArgs{
		Amount:            commission,
		TransactionType:   schema.TransactionDebit,
		Source:            schema.SourceCommission,
		Description:       description,
		BookingID:         booking.ID.Hex(),
		CommissionRate:    commissionRate,
		CommissionAmount:  commission,
		ExternalReference: externalReference,
	})
	if err != nil {
		return nil, err
	}

	return &CommissionResult{
		CommissionAmount: commission,
		CommissionRate:   commissionRate,
		BookingPrice:     booking.Price,
		NewBalance:       balance,
	}, nil
}

// CheckMinimumDeposit reports whether the provider holds the minimum
// deposit, and the shortfall when not.
func (s *MarketplaceStore) CheckMinimumDeposit(provider *schema.Provider, minimum float64) (float64, bool) {
	if provider.DepositBalance >= minimum {
		return 0, true
	}
	return roundMoney(minimum - provider.DepositBalance), false
}

// DepositSummary returns the deposit balance with recent transactions.
func (s *MarketplaceStore) DepositSummary(provider *schema.Provider, minimum float64, limit int) (*DepositSummaryResult, error) {
	current, err := s.mongo.GetProvider(provider.ID)
	if err != nil {
		return nil, err
	}

	transactions := []schema.DepositTransaction{}
	if err := s.ormDB.
		Where("provider_id = ?", current.ID.Hex()).
		Order("created_at desc").
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, err
	}

	return &DepositSummaryResult{
		DepositBalance:  roundMoney(current.DepositBalance),
		MinimumRequired: minimum,
		IsEligible:      current.DepositBalance >= minimum,
		Transactions:    transactions,
	}, nil
}
