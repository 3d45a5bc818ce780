package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tradeloot/goapi/base/ctx"
)

type BalanceTxType string

const (
	BalanceTxDebit  BalanceTxType = "debit"
	BalanceTxCredit BalanceTxType = "credit"
)

// BalanceTransaction is one bookkeeping entry of the mock settlement
// ledger. Real on-chain flows never touch this ledger.
type BalanceTransaction struct {
	Id        string          `json:"id" bson:"id"`
	Username  Username        `json:"username" bson:"username"`
	Type      BalanceTxType   `json:"type" bson:"type"`
	Amount    decimal.Decimal `json:"amount" bson:"-"`
	Reference string          `json:"reference,omitempty" bson:"reference,omitempty"`
	Timestamp time.Time       `json:"timestamp" bson:"timestamp"`
}

type BalanceTxFindAllOptions struct {
	Username *Username
	SortDir  *SortDir
	Offset   *int
	Limit    *int
}

type BalanceTxFindAllOptionsFunc func(*BalanceTxFindAllOptions) error

func GetBalanceTxFindAllOptions(opts ...BalanceTxFindAllOptionsFunc) (BalanceTxFindAllOptions, error) {
	res := BalanceTxFindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func BalanceTxWithUsername(username Username) BalanceTxFindAllOptionsFunc {
	return func(options *BalanceTxFindAllOptions) error {
		options.Username = &username
		return nil
	}
}

func BalanceTxWithSortDir(dir SortDir) BalanceTxFindAllOptionsFunc {
	return func(options *BalanceTxFindAllOptions) error {
		options.SortDir = &dir
		return nil
	}
}

func BalanceTxWithPagination(offset, limit int) BalanceTxFindAllOptionsFunc {
	return func(options *BalanceTxFindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

// CurrencyAdapter is the balance-based settlement path used only by
// mock-mode currency flows. Real flows settle on-ledger and bypass it.
type CurrencyAdapter interface {
	GetBalance(c ctx.Ctx, username Username) (decimal.Decimal, error)

	// Deduct removes amount from username's balance. Amount must be
	// positive; returns ErrInsufficientBalance when balance < amount.
	Deduct(c ctx.Ctx, username Username, amount decimal.Decimal, reference string) error

	Add(c ctx.Ctx, username Username, amount decimal.Decimal, reference string) error

	// InitiatePurchase deducts immediately and returns a purchase id.
	InitiatePurchase(c ctx.Ctx, username Username, amount decimal.Decimal, reference string) (string, error)

	// VerifyPurchase is a no-op success for purchases made through
	// InitiatePurchase.
	VerifyPurchase(c ctx.Ctx, purchaseId string) error

	GetTransactions(c ctx.Ctx, opts ...BalanceTxFindAllOptionsFunc) ([]*BalanceTransaction, error)

	RecordTransaction(c ctx.Ctx, tx *BalanceTransaction) error
}
