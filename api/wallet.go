package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hofix-app/hofix-api/schema"
	"github.com/hofix-app/hofix-api/store"
)

// walletSummary is the API for the account's credit balance, referral code
// and recent ledger entries.
func (s *Server) walletSummary(c *gin.Context) {
	account := c.MustGet("account").(*schema.User)

	summary, err := s.store.WalletSummary(account, 50)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": summary})
}

// walletTopup is the API to credit the account wallet after an external
// payment. The external reference makes retries idempotent.
func (s *Server) walletTopup(c *gin.Context) {
	account := c.MustGet("account").(*schema.User)

	var params struct {
		Amount            float64 `json:"amount"`
		ExternalReference string  `json:"external_reference"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	balance, err := s.store.RecordWalletTransaction(account, params.Amount,
		schema.TransactionCredit, schema.SourceRecharge, "Wallet recharge", params.ExternalReference)
	switch err {
	case nil:
	case store.ErrInvalidAmount:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidAmount)
		return
	case store.ErrInvalidTransactionType:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidTransactionType)
		return
	case store.ErrTransactionProcessed:
		abortWithEncoding(c, http.StatusConflict, errorTransactionProcessed)
		return
	default:
		shouldInterupt(err, c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":  "OK",
		"balance": balance,
	})
}
