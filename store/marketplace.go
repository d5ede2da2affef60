package store

import (
	"github.com/jinzhu/gorm"

	"github.com/hofix-app/hofix-api/schema"
)

// MarketplaceCore is the relational side of the datastore: the append-only
// wallet and deposit ledgers.
type MarketplaceCore interface {
	Ping() error

	// Wallet
	RecordWalletTransaction(user *schema.User, amount float64, transactionType, source, description, externalReference string) (float64, error)
	WalletSummary(user *schema.User, limit int) (*WalletSummaryResult, error)

	// Provider deposit
	RecordDepositTransaction(provider *schema.Provider, args DepositTransactionArgs) (float64, error)
	DeductCommission(provider *schema.Provider, booking *schema.Booking, commissionRate float64, externalReference string) (*CommissionResult, error)
	CheckMinimumDeposit(provider *schema.Provider, minimum float64) (float64, bool)
	DepositSummary(provider *schema.Provider, minimum float64, limit int) (*DepositSummaryResult, error)
}

// MarketplaceStore is an implementation of MarketplaceCore
type MarketplaceStore struct {
	ormDB *gorm.DB
	mongo MongoStore
}

func NewMarketplaceStore(ormDB *gorm.DB, mongo MongoStore) *MarketplaceStore {
	return &MarketplaceStore{
		ormDB: ormDB,
		mongo: mongo,
	}
}

// Ping is to check the storage health status
func (s *MarketplaceStore) Ping() error {
	return s.ormDB.DB().Ping()
}
