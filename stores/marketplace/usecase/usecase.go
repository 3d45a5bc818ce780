package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	bCtx "github.com/tradeloot/goapi/base/ctx"
	"github.com/tradeloot/goapi/base/goroutine"
	"github.com/tradeloot/goapi/base/log"
	"github.com/tradeloot/goapi/domain"
	"github.com/tradeloot/goapi/domain/listing"
	"github.com/tradeloot/goapi/domain/marketplace"
	"github.com/tradeloot/goapi/domain/mysterybox"
	"github.com/tradeloot/goapi/service/notify"
)

// Config selects the settlement behavior of the orchestrator.
type Config struct {
	// MockMode settles purchases immediately without the x402 handshake.
	MockMode bool

	// ResourceBase prefixes the x402 resource URLs, e.g.
	// "https://api.tradeloot.gg".
	ResourceBase string

	// TreasuryWallet receives mystery box payments.
	TreasuryWallet domain.WalletAddress

	// UseBalanceLedger moves mock-mode funds through the balance ledger
	// as part of the atomic trade. Requires seeded buyer balances.
	UseBalanceLedger bool
}

type impl struct {
	cfg      Config
	listings listing.UseCase
	boxes    mysterybox.UseCase
	items    domain.ItemAdapter
	payments domain.PaymentAdapter
	executor domain.TradeExecutor
	notifier notify.Service
}

func New(
	cfg Config,
	listings listing.UseCase,
	boxes mysterybox.UseCase,
	items domain.ItemAdapter,
	payments domain.PaymentAdapter,
	executor domain.TradeExecutor,
	notifier notify.Service,
) marketplace.UseCase {
	cfg.ResourceBase = strings.TrimRight(cfg.ResourceBase, "/")
	return &impl{
		cfg:      cfg,
		listings: listings,
		boxes:    boxes,
		items:    items,
		payments: payments,
		executor: executor,
		notifier: notifier,
	}
}

func (im *impl) CreateListing(ctx bCtx.Ctx, params listing.CreateListingParams) (*listing.Listing, error) {
	return im.listings.CreateListing(ctx, params)
}

func (im *impl) CancelListing(ctx bCtx.Ctx, id string, username domain.Username) (*listing.Listing, error) {
	return im.listings.CancelListing(ctx, id, username)
}

func (im *impl) GetActiveListings(ctx bCtx.Ctx, opts ...listing.FindAllOptionsFunc) (*listing.Page, error) {
	return im.listings.GetActiveListings(ctx, opts...)
}

func (im *impl) GetListingsByUser(ctx bCtx.Ctx, username domain.Username) ([]*listing.Listing, error) {
	return im.listings.GetListingsByUser(ctx, username)
}

func (im *impl) GetListing(ctx bCtx.Ctx, id string) (*listing.Listing, error) {
	return im.listings.GetListing(ctx, id)
}

func (im *impl) HandlePurchaseRequest(ctx bCtx.Ctx, listingId string, buyer marketplace.BuyerInfo) (*marketplace.PurchaseResponse, error) {
	l, err := im.listings.GetListing(ctx, listingId)
	if err != nil {
		return nil, err
	}
	if !l.IsActive() {
		return nil, domain.ErrListingNotActive
	}

	if im.cfg.MockMode {
		result, err := im.settlePurchase(ctx, l, buyer, "", "purchase completed in mock mode")
		if err != nil {
			return nil, err
		}
		return &marketplace.PurchaseResponse{PurchaseResult: result}, nil
	}

	requirements, err := im.payments.CreatePaymentRequirements(ctx, &domain.CreatePaymentRequirementsParams{
		PriceUSDC:    l.PriceUSDC,
		SellerWallet: l.SellerWallet,
		Resource:     fmt.Sprintf("%s/marketplace/listings/%s/purchase", im.cfg.ResourceBase, l.Id),
		Description:  fmt.Sprintf("Purchase of item %s from %s", l.ItemId, l.SellerUsername),
	})
	if err != nil {
		ctx.WithField("err", err).Error("failed to CreatePaymentRequirements")
		return nil, err
	}
	return &marketplace.PurchaseResponse{
		RequiresPayment:     true,
		PaymentRequirements: requirements,
	}, nil
}

func (im *impl) VerifyAndCompletePurchase(ctx bCtx.Ctx, listingId, paymentHeader string, buyer marketplace.BuyerInfo) (*marketplace.PurchaseResult, error) {
	// re-validate: the listing may have moved on since the 402 response
	l, err := im.listings.GetListing(ctx, listingId)
	if err != nil {
		return nil, err
	}
	if !l.IsActive() {
		return nil, domain.ErrListingNotActive
	}

	return im.settlePurchase(ctx, l, buyer, paymentHeader, "purchase completed")
}

// settlePurchase verifies the payment proof and commits the trade.
// Verification happens before any mutation, so a failed proof leaves
// the listing active and the purchase retryable. Buyer identity is only
// required here; the 402-issuance phase serves anonymous requests.
func (im *impl) settlePurchase(ctx bCtx.Ctx, l *listing.Listing, buyer marketplace.BuyerInfo, paymentHeader, message string) (*marketplace.PurchaseResult, error) {
	if buyer.IsEmpty() {
		return nil, domain.ErrMissingBuyerInfo
	}

	verified, err := im.payments.VerifyPayment(ctx, &domain.VerifyPaymentParams{
		PaymentHeader:     paymentHeader,
		ExpectedAmount:    l.PriceUSDC,
		ExpectedRecipient: l.SellerWallet,
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"listing": l.Id,
		}).Warn("payment verification failed")
		return nil, err
	}

	item := l.Item()
	tx := &domain.Transaction{
		Id:             uuid.NewString(),
		Type:           domain.TransactionTypeListingPurchase,
		BuyerUsername:  buyer.Username,
		SellerUsername: l.SellerUsername,
		BuyerWallet:    buyer.Wallet,
		SellerWallet:   l.SellerWallet,
		PriceUSDC:      l.PriceUSDC,
		Items:          []domain.Item{item},
		TxHash:         verified.TxHash,
		Timestamp:      time.Now(),
	}

	ops := []domain.TradeOperation{
		domain.NewUpdateListingOp(l.Id, domain.ListingStatusSold),
		domain.NewTransferItemOp(l.ItemId, l.SellerUsername, buyer.Username),
	}
	if im.cfg.MockMode && im.cfg.UseBalanceLedger {
		ops = append(ops, domain.NewUpdateBalanceOp(buyer.Username, l.SellerUsername, l.PriceUSDC, l.Id))
	}
	ops = append(ops, domain.NewRecordTransactionOp(tx))
	if err := im.executor.ExecuteAtomicTrade(ctx, ops); err != nil {
		return nil, err
	}

	im.notifySale(ctx, tx)

	return &marketplace.PurchaseResult{
		Success: true,
		Message: message,
		TxHash:  verified.TxHash,
		Item:    &item,
	}, nil
}

func (im *impl) HandleMysteryBoxRequest(ctx bCtx.Ctx, tierId string, buyer marketplace.BuyerInfo) (*marketplace.PurchaseResponse, error) {
	tier, err := im.boxes.GetTier(ctx, tierId)
	if err != nil {
		return nil, err
	}

	if im.cfg.MockMode {
		result, err := im.settleMysteryBox(ctx, tier, buyer, "", "mystery box opened in mock mode")
		if err != nil {
			return nil, err
		}
		return &marketplace.PurchaseResponse{PurchaseResult: result}, nil
	}

	requirements, err := im.payments.CreatePaymentRequirements(ctx, &domain.CreatePaymentRequirementsParams{
		PriceUSDC:    tier.PriceUSDC,
		SellerWallet: im.cfg.TreasuryWallet,
		Resource:     fmt.Sprintf("%s/marketplace/mysterybox/tiers/%s/purchase", im.cfg.ResourceBase, tier.Id),
		Description:  fmt.Sprintf("Mystery box: %s", tier.Name),
	})
	if err != nil {
		ctx.WithField("err", err).Error("failed to CreatePaymentRequirements")
		return nil, err
	}
	return &marketplace.PurchaseResponse{
		RequiresPayment:     true,
		PaymentRequirements: requirements,
	}, nil
}

func (im *impl) VerifyAndCompleteMysteryBox(ctx bCtx.Ctx, tierId, paymentHeader string, buyer marketplace.BuyerInfo) (*marketplace.PurchaseResult, error) {
	tier, err := im.boxes.GetTier(ctx, tierId)
	if err != nil {
		return nil, err
	}

	return im.settleMysteryBox(ctx, tier, buyer, paymentHeader, "mystery box opened")
}

// settleMysteryBox verifies payment, rolls the drop and grants it. The
// roll happens only after verification succeeds, so an unpaid request
// never consumes randomness or mints an item. The grant rides inside the
// atomic trade; a failed trade revokes the drop.
func (im *impl) settleMysteryBox(ctx bCtx.Ctx, tier *mysterybox.Tier, buyer marketplace.BuyerInfo, paymentHeader, message string) (*marketplace.PurchaseResult, error) {
	if buyer.IsEmpty() {
		return nil, domain.ErrMissingBuyerInfo
	}

	verified, err := im.payments.VerifyPayment(ctx, &domain.VerifyPaymentParams{
		PaymentHeader:     paymentHeader,
		ExpectedAmount:    tier.PriceUSDC,
		ExpectedRecipient: im.cfg.TreasuryWallet,
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"tier": tier.Id,
		}).Warn("payment verification failed")
		return nil, err
	}

	item, err := im.items.GenerateRandomItem(ctx, tier.Id, tier.RarityWeights)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"tier": tier.Id,
		}).Error("failed to GenerateRandomItem")
		return nil, err
	}
	tx := &domain.Transaction{
		Id:            uuid.NewString(),
		Type:          domain.TransactionTypeMysteryBoxPurchase,
		BuyerUsername: buyer.Username,
		BuyerWallet:   buyer.Wallet,
		PriceUSDC:     tier.PriceUSDC,
		Items:         []domain.Item{*item},
		TxHash:        verified.TxHash,
		Timestamp:     time.Now(),
	}
	boxOps := []domain.TradeOperation{
		domain.NewGrantItemOp(buyer.Username, item),
	}
	if im.cfg.MockMode && im.cfg.UseBalanceLedger {
		// no seller side, the box price leaves the ledger
		boxOps = append(boxOps, domain.NewUpdateBalanceOp(buyer.Username, "", tier.PriceUSDC, tier.Id))
	}
	boxOps = append(boxOps, domain.NewRecordTransactionOp(tx))
	if err := im.executor.ExecuteAtomicTrade(ctx, boxOps); err != nil {
		return nil, err
	}

	if err := im.boxes.RecordPurchase(ctx, &mysterybox.Purchase{
		TierId:        tier.Id,
		BuyerUsername: buyer.Username,
		BuyerWallet:   buyer.Wallet,
		PriceUSDC:     tier.PriceUSDC,
		Item:          *item,
		TxHash:        verified.TxHash,
		Timestamp:     tx.Timestamp,
	}); err != nil {
		// the grant already committed; the audit trail failure must not
		// take the item back
		ctx.WithFields(log.Fields{
			"err":  err,
			"tier": tier.Id,
		}).Warn("failed to RecordPurchase")
	}

	im.notifySale(ctx, tx)

	return &marketplace.PurchaseResult{
		Success: true,
		Message: message,
		TxHash:  verified.TxHash,
		Item:    item,
	}, nil
}

func (im *impl) GetMysteryBoxTiers(ctx bCtx.Ctx) ([]*mysterybox.Tier, error) {
	return im.boxes.GetTiers(ctx)
}

// notifySale announces off the request path. The settlement response
// never waits on the notification channel.
func (im *impl) notifySale(ctx bCtx.Ctx, tx *domain.Transaction) {
	if im.notifier == nil {
		return
	}
	goroutine.RecoverableGo(func() {
		im.notifier.NotifySale(ctx, tx)
	})
}
