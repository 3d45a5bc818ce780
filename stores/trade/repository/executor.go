package repository

import (
	bCtx "github.com/tradeloot/goapi/base/ctx"
	"github.com/tradeloot/goapi/base/log"
	"github.com/tradeloot/goapi/domain"
	"github.com/tradeloot/goapi/domain/listing"
)

// statusReverter is the rollback hook listing repos expose so a failed
// trade can put a listing back into the state the compare-and-set took
// it out of. It bypasses the one-way lifecycle guard.
type statusReverter interface {
	RevertStatus(c bCtx.Ctx, id string, from, to domain.ListingStatus) error
}

type undoFunc func(c bCtx.Ctx)

// impl applies trade operations in order and compensates in reverse on
// failure, so partial application is never visible to later reads.
type impl struct {
	listingRepo listing.Repo
	items       domain.ItemAdapter
	currency    domain.CurrencyAdapter
	txRepo      domain.TransactionRepo
}

func New(listingRepo listing.Repo, items domain.ItemAdapter, currency domain.CurrencyAdapter, txRepo domain.TransactionRepo) domain.TradeExecutor {
	return &impl{
		listingRepo: listingRepo,
		items:       items,
		currency:    currency,
		txRepo:      txRepo,
	}
}

func (im *impl) ExecuteAtomicTrade(c bCtx.Ctx, ops []domain.TradeOperation) error {
	undos := []undoFunc{}

	rollback := func() {
		for i := len(undos) - 1; i >= 0; i-- {
			undos[i](c)
		}
	}

	for i, op := range ops {
		undo, err := im.apply(c, op)
		if err != nil {
			c.WithFields(log.Fields{
				"err":  err,
				"op":   op.Type,
				"step": i,
			}).Warn("trade operation failed, rolling back")
			rollback()
			if _, ok := domain.AsAppError(err); ok {
				return err
			}
			return domain.ErrTradeFailed.WithCause(err)
		}
		if undo != nil {
			undos = append(undos, undo)
		}
	}
	return nil
}

func (im *impl) apply(c bCtx.Ctx, op domain.TradeOperation) (undoFunc, error) {
	switch op.Type {
	case domain.TradeOpUpdateListing:
		if op.UpdateListing == nil {
			return nil, domain.ErrInvalidParam.WithMessagef("update_listing op payload is missing")
		}
		return im.applyUpdateListing(c, op.UpdateListing)
	case domain.TradeOpTransferItem:
		if op.TransferItem == nil {
			return nil, domain.ErrInvalidParam.WithMessagef("transfer_item op payload is missing")
		}
		return im.applyTransferItem(c, op.TransferItem)
	case domain.TradeOpGrantItem:
		if op.GrantItem == nil || op.GrantItem.Item == nil {
			return nil, domain.ErrInvalidParam.WithMessagef("grant_item op payload is missing")
		}
		return im.applyGrantItem(c, op.GrantItem)
	case domain.TradeOpUpdateBalance:
		if op.UpdateBalance == nil {
			return nil, domain.ErrInvalidParam.WithMessagef("update_balance op payload is missing")
		}
		return im.applyUpdateBalance(c, op.UpdateBalance)
	case domain.TradeOpRecordTransaction:
		if op.RecordTransaction == nil || op.RecordTransaction.Transaction == nil {
			return nil, domain.ErrInvalidParam.WithMessagef("record_transaction op payload is missing")
		}
		return im.applyRecordTransaction(c, op.RecordTransaction)
	default:
		return nil, domain.ErrInvalidParam.WithMessagef("unknown trade operation %q", op.Type)
	}
}

// applyUpdateListing performs the compare-and-set out of active. This is
// the double-sell guard: of two concurrent trades for one listing,
// exactly one sees the active state.
func (im *impl) applyUpdateListing(c bCtx.Ctx, op *domain.UpdateListingOp) (undoFunc, error) {
	if err := im.listingRepo.UpdateStatus(c, op.ListingId, domain.ListingStatusActive, op.NewStatus); err != nil {
		return nil, err
	}

	return func(c bCtx.Ctx) {
		reverter, ok := im.listingRepo.(statusReverter)
		if !ok {
			c.WithField("listing", op.ListingId).Error("listing repo cannot revert status")
			return
		}
		if err := reverter.RevertStatus(c, op.ListingId, op.NewStatus, domain.ListingStatusActive); err != nil {
			c.WithFields(log.Fields{
				"err":     err,
				"listing": op.ListingId,
			}).Error("failed to RevertStatus")
		}
	}, nil
}

func (im *impl) applyTransferItem(c bCtx.Ctx, op *domain.TransferItemOp) (undoFunc, error) {
	if err := im.items.TransferItem(c, op.ItemId, op.From, op.To); err != nil {
		return nil, err
	}

	return func(c bCtx.Ctx) {
		if err := im.items.TransferItem(c, op.ItemId, op.To, op.From); err != nil {
			c.WithFields(log.Fields{
				"err":  err,
				"item": op.ItemId,
			}).Error("failed to reverse TransferItem")
			return
		}
		// the forward transfer released the seller's listing hold
		if err := im.items.LockItem(c, op.From, op.ItemId); err != nil {
			c.WithFields(log.Fields{
				"err":  err,
				"item": op.ItemId,
			}).Error("failed to re-lock item")
		}
	}, nil
}

// applyGrantItem hands a generated drop to the buyer. The undo revokes
// it, so a failed trade never leaves the drop in the buyer's inventory.
func (im *impl) applyGrantItem(c bCtx.Ctx, op *domain.GrantItemOp) (undoFunc, error) {
	if err := im.items.GrantItemToUser(c, op.Username, op.Item); err != nil {
		return nil, err
	}

	return func(c bCtx.Ctx) {
		if err := im.items.RevokeItemFromUser(c, op.Username, op.Item); err != nil {
			c.WithFields(log.Fields{
				"err":  err,
				"item": op.Item.Id,
			}).Error("failed to revoke granted item")
		}
	}, nil
}

func (im *impl) applyUpdateBalance(c bCtx.Ctx, op *domain.UpdateBalanceOp) (undoFunc, error) {
	if !op.From.IsEmpty() {
		if err := im.currency.Deduct(c, op.From, op.Amount, op.Reference); err != nil {
			return nil, err
		}
	}
	if !op.To.IsEmpty() {
		if err := im.currency.Add(c, op.To, op.Amount, op.Reference); err != nil {
			if !op.From.IsEmpty() {
				if addErr := im.currency.Add(c, op.From, op.Amount, op.Reference); addErr != nil {
					c.WithField("err", addErr).Error("failed to refund after credit failure")
				}
			}
			return nil, err
		}
	}

	return func(c bCtx.Ctx) {
		if !op.To.IsEmpty() {
			if err := im.currency.Deduct(c, op.To, op.Amount, op.Reference); err != nil {
				c.WithField("err", err).Error("failed to reverse credit")
			}
		}
		if !op.From.IsEmpty() {
			if err := im.currency.Add(c, op.From, op.Amount, op.Reference); err != nil {
				c.WithField("err", err).Error("failed to reverse debit")
			}
		}
	}, nil
}

// applyRecordTransaction appends the immutable trade record. Callers
// order it last, so there is nothing to compensate.
func (im *impl) applyRecordTransaction(c bCtx.Ctx, op *domain.RecordTransactionOp) (undoFunc, error) {
	if err := im.txRepo.Create(c, op.Transaction); err != nil {
		return nil, err
	}
	return nil, nil
}
