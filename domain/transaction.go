package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tradeloot/goapi/base/ctx"
)

type TransactionType string

const (
	TransactionTypeListingPurchase    TransactionType = "listing_purchase"
	TransactionTypeMysteryBoxPurchase TransactionType = "mystery_box_purchase"
)

// Transaction is the immutable record of a completed trade. It is
// created exactly once, inside the same atomic commit as the listing
// status update, and never mutated afterwards.
type Transaction struct {
	Id             string          `json:"id" bson:"id"`
	Type           TransactionType `json:"type" bson:"type"`
	BuyerUsername  Username        `json:"buyerUsername" bson:"buyerUsername"`
	SellerUsername Username        `json:"sellerUsername,omitempty" bson:"sellerUsername,omitempty"`
	BuyerWallet    WalletAddress   `json:"buyerWallet,omitempty" bson:"buyerWallet,omitempty"`
	SellerWallet   WalletAddress   `json:"sellerWallet,omitempty" bson:"sellerWallet,omitempty"`
	PriceUSDC      decimal.Decimal `json:"priceUSDC" bson:"priceUSDC"`
	Items          []Item          `json:"items" bson:"items"`
	TxHash         TxHash          `json:"txHash" bson:"txHash"`
	Timestamp      time.Time       `json:"timestamp" bson:"timestamp"`
}

type TransactionFindAllOptions struct {
	Type    *TransactionType
	Buyer   *Username
	Seller  *Username
	SortDir *SortDir
	Offset  *int
	Limit   *int
}

type TransactionFindAllOptionsFunc func(*TransactionFindAllOptions) error

func GetTransactionFindAllOptions(opts ...TransactionFindAllOptionsFunc) (TransactionFindAllOptions, error) {
	res := TransactionFindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func TransactionWithType(t TransactionType) TransactionFindAllOptionsFunc {
	return func(options *TransactionFindAllOptions) error {
		options.Type = &t
		return nil
	}
}

func TransactionWithBuyer(buyer Username) TransactionFindAllOptionsFunc {
	return func(options *TransactionFindAllOptions) error {
		options.Buyer = &buyer
		return nil
	}
}

func TransactionWithSeller(seller Username) TransactionFindAllOptionsFunc {
	return func(options *TransactionFindAllOptions) error {
		options.Seller = &seller
		return nil
	}
}

func TransactionWithSortDir(dir SortDir) TransactionFindAllOptionsFunc {
	return func(options *TransactionFindAllOptions) error {
		options.SortDir = &dir
		return nil
	}
}

func TransactionWithPagination(offset, limit int) TransactionFindAllOptionsFunc {
	return func(options *TransactionFindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

// TransactionRepo is append-only by contract: no update or delete.
type TransactionRepo interface {
	Create(c ctx.Ctx, tx *Transaction) error
	FindOne(c ctx.Ctx, id string) (*Transaction, error)
	FindAll(c ctx.Ctx, opts ...TransactionFindAllOptionsFunc) ([]*Transaction, error)
}
