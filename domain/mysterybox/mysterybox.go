package mysterybox

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tradeloot/goapi/base/ctx"
	"github.com/tradeloot/goapi/domain"
)

// Tier is a fixed-price catalog entry yielding a randomly generated
// item drawn from a weighted rarity distribution. Read-mostly; seeded
// at startup, never mutated by the purchase flow.
type Tier struct {
	Id            string               `json:"id" bson:"id"`
	Name          string               `json:"name" bson:"name"`
	PriceUSDC     decimal.Decimal      `json:"priceUSDC" bson:"priceUSDC"`
	Description   string               `json:"description" bson:"description"`
	RarityWeights domain.RarityWeights `json:"rarityWeights" bson:"rarityWeights"`
}

// Purchase is the audit record of a tier purchase.
type Purchase struct {
	Id            string               `json:"id" bson:"id"`
	TierId        string               `json:"tierId" bson:"tierId"`
	BuyerUsername domain.Username      `json:"buyerUsername" bson:"buyerUsername"`
	BuyerWallet   domain.WalletAddress `json:"buyerWallet,omitempty" bson:"buyerWallet,omitempty"`
	PriceUSDC     decimal.Decimal      `json:"priceUSDC" bson:"priceUSDC"`
	Item          domain.Item          `json:"item" bson:"item"`
	TxHash        domain.TxHash        `json:"txHash" bson:"txHash"`
	Timestamp     time.Time            `json:"timestamp" bson:"timestamp"`
}

type TierRepo interface {
	// FindOne returns domain.ErrNotFound when the tier id is unknown.
	FindOne(c ctx.Ctx, id string) (*Tier, error)
	FindAll(c ctx.Ctx) ([]*Tier, error)
	Upsert(c ctx.Ctx, tier *Tier) error
}

type PurchaseRepo interface {
	Create(c ctx.Ctx, purchase *Purchase) error
	FindByBuyer(c ctx.Ctx, username domain.Username) ([]*Purchase, error)
}

// UseCase manages the tier catalog.
type UseCase interface {
	// GetTier fails with domain.ErrTierNotFound when absent.
	GetTier(c ctx.Ctx, id string) (*Tier, error)
	GetTiers(c ctx.Ctx) ([]*Tier, error)

	// SeedTiers upserts the configured catalog.
	SeedTiers(c ctx.Ctx, tiers []Tier) error

	RecordPurchase(c ctx.Ctx, purchase *Purchase) error
	GetPurchasesByBuyer(c ctx.Ctx, username domain.Username) ([]*Purchase, error)
}
