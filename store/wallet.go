package store

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/hofix-app/hofix-api/schema"
)

var (
	ErrInvalidAmount             = fmt.Errorf("amount must be greater than zero")
	ErrInvalidTransactionType    = fmt.Errorf("invalid transaction type")
	ErrInsufficientWalletBalance = fmt.Errorf("insufficient wallet balance")
	ErrTransactionProcessed      = fmt.Errorf("transaction already processed")
)

// WalletSummaryResult is the wallet view returned to clients: the running
// balance, the referral code and the most recent ledger entries.
type WalletSummaryResult struct {
	Balance      float64                    `json:"balance"`
	ReferralCode string                     `json:"referral_code"`
	Transactions []schema.WalletTransaction `json:"transactions"`
}

// RecordWalletTransaction appends one entry to the user's wallet ledger
// and updates the denormalized balance on the account document. An entry
// with an already-seen external reference is rejected, which makes
// gateway callbacks safe to replay.
func (s *MarketplaceStore) RecordWalletTransaction(user *schema.User, amount float64, transactionType, source, description, externalReference string) (float64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	if transactionType != schema.TransactionCredit && transactionType != schema.TransactionDebit {
		return 0, ErrInvalidTransactionType
	}

	current, err := s.mongo.GetUser(user.ID)
	if err != nil {
		return 0, err
	}

	balance := current.Credits
	if transactionType == schema.TransactionCredit {
		balance = roundMoney(balance + amount)
	} else {
		if balance < amount {
			return 0, ErrInsufficientWalletBalance
		}
		balance = roundMoney(balance - amount)
	}

	entry := schema.WalletTransaction{
		UserID:            user.ID.Hex(),
		Amount:            roundMoney(amount),
		TransactionType:   transactionType,
		Source:            source,
		Description:       description,
		BalanceAfter:      balance,
		ExternalReference: nullableReference(externalReference),
		CreatedAt:         time.Now().UTC(),
	}
	if err := s.ormDB.Create(&entry).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return 0, ErrTransactionProcessed
		}
		return 0, err
	}

	if err := s.mongo.UpdateUserCredits(user.ID, balance); err != nil {
		return 0, err
	}
	user.Credits = balance

	return balance, nil
}

// WalletSummary returns the wallet balance with recent transactions,
// generating the referral code on first use.
func (s *MarketplaceStore) WalletSummary(user *schema.User, limit int) (*WalletSummaryResult, error) {
	current, err := s.mongo.GetUser(user.ID)
	if err != nil {
		return nil, err
	}

	if current.ReferralCode == "" {
		id := current.ID.Hex()
		code := strings.ToUpper("HX" + id[len(id)-6:])
		if err := s.mongo.UpdateUserReferralCode(current.ID, code); err != nil {
			return nil, err
		}
		current.ReferralCode = code
	}

	transactions := []schema.WalletTransaction{}
	if err := s.ormDB.
		Where("user_id = ?", current.ID.Hex()).
		Order("created_at desc").
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, err
	}

	return &WalletSummaryResult{
		Balance:      roundMoney(current.Credits),
		ReferralCode: current.ReferralCode,
		Transactions: transactions,
	}, nil
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// nullableReference keeps the unique index on external references from
// tripping over entries that carry none.
func nullableReference(ref string) *string {
	if ref == "" {
		return nil
	}
	return &ref
}
