package domain

import (
	"github.com/shopspring/decimal"

	"github.com/tradeloot/goapi/base/ctx"
)

type TradeOperationType string

const (
	TradeOpUpdateListing     TradeOperationType = "update_listing"
	TradeOpTransferItem      TradeOperationType = "transfer_item"
	TradeOpGrantItem         TradeOperationType = "grant_item"
	TradeOpUpdateBalance     TradeOperationType = "update_balance"
	TradeOpRecordTransaction TradeOperationType = "record_transaction"
)

// UpdateListingOp moves a listing out of the active state. The executor
// must check the listing is still active inside the commit boundary;
// this check is the double-sell guard.
type UpdateListingOp struct {
	ListingId string
	NewStatus ListingStatus
}

// TransferItemOp delegates ownership transfer to the ItemAdapter.
type TransferItemOp struct {
	ItemId string
	From   Username
	To     Username
}

// GrantItemOp assigns a freshly generated item to Username. Rolling back
// revokes the grant, so a mystery box drop never survives a failed trade.
type GrantItemOp struct {
	Username Username
	Item     *Item
}

// UpdateBalanceOp delegates to the CurrencyAdapter. Amount is debited
// from From and credited to To; either side may be empty.
type UpdateBalanceOp struct {
	From      Username
	To        Username
	Amount    decimal.Decimal
	Reference string
}

// RecordTransactionOp appends an immutable trade record.
type RecordTransactionOp struct {
	Transaction *Transaction
}

// TradeOperation is a typed variant; exactly one of the op pointers
// matching Type is set.
type TradeOperation struct {
	Type              TradeOperationType
	UpdateListing     *UpdateListingOp
	TransferItem      *TransferItemOp
	GrantItem         *GrantItemOp
	UpdateBalance     *UpdateBalanceOp
	RecordTransaction *RecordTransactionOp
}

func NewUpdateListingOp(listingId string, status ListingStatus) TradeOperation {
	return TradeOperation{Type: TradeOpUpdateListing, UpdateListing: &UpdateListingOp{ListingId: listingId, NewStatus: status}}
}

func NewTransferItemOp(itemId string, from, to Username) TradeOperation {
	return TradeOperation{Type: TradeOpTransferItem, TransferItem: &TransferItemOp{ItemId: itemId, From: from, To: to}}
}

func NewGrantItemOp(username Username, item *Item) TradeOperation {
	return TradeOperation{Type: TradeOpGrantItem, GrantItem: &GrantItemOp{Username: username, Item: item}}
}

func NewUpdateBalanceOp(from, to Username, amount decimal.Decimal, reference string) TradeOperation {
	return TradeOperation{Type: TradeOpUpdateBalance, UpdateBalance: &UpdateBalanceOp{From: from, To: to, Amount: amount, Reference: reference}}
}

func NewRecordTransactionOp(tx *Transaction) TradeOperation {
	return TradeOperation{Type: TradeOpRecordTransaction, RecordTransaction: &RecordTransactionOp{Transaction: tx}}
}

// TradeExecutor is the single commit boundary for purchase completion:
// either every operation is applied or none is observably applied.
// Partial application must not be visible to subsequent reads.
type TradeExecutor interface {
	ExecuteAtomicTrade(c ctx.Ctx, ops []TradeOperation) error
}
