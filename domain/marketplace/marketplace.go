package marketplace

import (
	"github.com/tradeloot/goapi/base/ctx"
	"github.com/tradeloot/goapi/domain"
	"github.com/tradeloot/goapi/domain/listing"
	"github.com/tradeloot/goapi/domain/mysterybox"
)

// BuyerInfo identifies the purchasing party. Wallet may be empty for
// mock-mode settlement.
type BuyerInfo struct {
	Username domain.Username      `json:"username" validate:"required"`
	Wallet   domain.WalletAddress `json:"wallet"`
}

func (b BuyerInfo) IsEmpty() bool {
	return b.Username.IsEmpty()
}

// PurchaseResult is the outcome of a settled purchase.
type PurchaseResult struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	TxHash  domain.TxHash `json:"txHash,omitempty"`
	Item    *domain.Item  `json:"item,omitempty"`
}

// PurchaseResponse is the two-phase purchase answer: either the
// purchase completed (mock mode) or payment is still required and
// PaymentRequirements tells the caller how to pay.
type PurchaseResponse struct {
	RequiresPayment     bool                        `json:"requiresPayment"`
	PaymentRequirements *domain.PaymentRequirements `json:"paymentRequirements,omitempty"`
	PurchaseResult      *PurchaseResult             `json:"purchaseResult,omitempty"`
}

// UseCase is the top-level orchestrator: it decides 402-vs-complete,
// drives payment verification and commits settlement atomically. It
// holds no durable state of its own; listing reads and writes are
// passed through to the listing manager.
type UseCase interface {
	CreateListing(c ctx.Ctx, params listing.CreateListingParams) (*listing.Listing, error)
	CancelListing(c ctx.Ctx, id string, username domain.Username) (*listing.Listing, error)
	GetActiveListings(c ctx.Ctx, opts ...listing.FindAllOptionsFunc) (*listing.Page, error)
	GetListingsByUser(c ctx.Ctx, username domain.Username) ([]*listing.Listing, error)
	GetListing(c ctx.Ctx, id string) (*listing.Listing, error)

	// HandlePurchaseRequest loads the listing and either settles
	// immediately (mock mode) or returns payment requirements with no
	// state mutation.
	HandlePurchaseRequest(c ctx.Ctx, listingId string, buyer BuyerInfo) (*PurchaseResponse, error)

	// VerifyAndCompletePurchase re-validates the listing, verifies the
	// payment proof and executes the atomic trade. A verification
	// failure leaves the listing active and retryable.
	VerifyAndCompletePurchase(c ctx.Ctx, listingId, paymentHeader string, buyer BuyerInfo) (*PurchaseResult, error)

	// Mystery box mirror of the two-phase purchase flow.
	HandleMysteryBoxRequest(c ctx.Ctx, tierId string, buyer BuyerInfo) (*PurchaseResponse, error)
	VerifyAndCompleteMysteryBox(c ctx.Ctx, tierId, paymentHeader string, buyer BuyerInfo) (*PurchaseResult, error)

	GetMysteryBoxTiers(c ctx.Ctx) ([]*mysterybox.Tier, error)
}
