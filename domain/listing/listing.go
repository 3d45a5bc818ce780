package listing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tradeloot/goapi/base/ctx"
	"github.com/tradeloot/goapi/domain"
)

// Listing is a seller's standing offer to sell one item at a fixed
// price. The underlying item is lock-held by the seller for the entire
// active lifetime and released exactly once, on exit from active.
type Listing struct {
	Id             string                 `json:"id" bson:"id"`
	ItemId         string                 `json:"itemId" bson:"itemId"`
	ItemType       string                 `json:"itemType" bson:"itemType"`
	ItemData       map[string]interface{} `json:"itemData,omitempty" bson:"itemData,omitempty"`
	SellerUsername domain.Username        `json:"sellerUsername" bson:"sellerUsername"`
	SellerWallet   domain.WalletAddress   `json:"sellerWallet" bson:"sellerWallet"`
	PriceUSDC      decimal.Decimal        `json:"priceUSDC" bson:"priceUSDC"`
	Status         domain.ListingStatus   `json:"status" bson:"status"`
	CreatedAt      time.Time              `json:"createdAt" bson:"createdAt"`
	ExpiresAt      *time.Time             `json:"expiresAt,omitempty" bson:"expiresAt,omitempty"`
}

func (l *Listing) IsActive() bool {
	return l.Status == domain.ListingStatusActive
}

// Item renders the listed good in the shape carried by transactions.
func (l *Listing) Item() domain.Item {
	return domain.Item{
		Id:   l.ItemId,
		Type: l.ItemType,
		Data: l.ItemData,
	}
}

type CreateListingParams struct {
	ItemId         string                 `json:"itemId" validate:"required"`
	ItemType       string                 `json:"itemType" validate:"required"`
	ItemData       map[string]interface{} `json:"itemData"`
	SellerUsername domain.Username        `json:"sellerUsername" validate:"required"`
	SellerWallet   domain.WalletAddress   `json:"sellerWallet"`
	PriceUSDC      decimal.Decimal        `json:"priceUSDC" validate:"gte=0"`
	ExpiresAt      *time.Time             `json:"expiresAt"`
}

type SortBy string

const (
	SortByNewest    SortBy = "newest"
	SortByPriceLow  SortBy = "price_low"
	SortByPriceHigh SortBy = "price_high"
)

func (s SortBy) IsValid() bool {
	switch s {
	case SortByNewest, SortByPriceLow, SortByPriceHigh:
		return true
	}
	return false
}

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type FindAllOptions struct {
	SortBy         *SortBy
	Limit          *int
	Cursor         *string
	SellerUsername *domain.Username
	Status         *domain.ListingStatus
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithSortBy(sortBy SortBy) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		if !sortBy.IsValid() {
			return domain.ErrInvalidParam.WithMessagef("unknown sortBy %q", sortBy)
		}
		options.SortBy = &sortBy
		return nil
	}
}

func WithLimit(limit int) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		if limit <= 0 {
			limit = DefaultLimit
		}
		if limit > MaxLimit {
			limit = MaxLimit
		}
		options.Limit = &limit
		return nil
	}
}

func WithCursor(cursor string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Cursor = &cursor
		return nil
	}
}

func WithSeller(username domain.Username) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.SellerUsername = &username
		return nil
	}
}

func WithStatus(status domain.ListingStatus) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Status = &status
		return nil
	}
}

// Page is one page of the sorted active set. NextCursor is empty when
// the scan is exhausted.
type Page struct {
	Items      []*Listing `json:"items"`
	NextCursor string     `json:"nextCursor,omitempty"`
	Total      int        `json:"total"`
}

type Repo interface {
	// FindOne returns domain.ErrNotFound when the id is unknown.
	FindOne(c ctx.Ctx, id string) (*Listing, error)

	Create(c ctx.Ctx, listing *Listing) error

	// UpdateStatus transitions id from `from` to `to` as one atomic
	// compare-and-set. Returns domain.ErrListingNotActive when the
	// listing is no longer in `from`, domain.ErrNotFound when absent.
	// The derived active index is maintained with the same write.
	UpdateStatus(c ctx.Ctx, id string, from, to domain.ListingStatus) error

	// FindActive pages through the active set in the requested order.
	FindActive(c ctx.Ctx, opts ...FindAllOptionsFunc) (*Page, error)

	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
}

// UseCase is the listing manager: CRUD plus the lock/unlock discipline
// tied to the listing lifecycle.
type UseCase interface {
	CreateListing(c ctx.Ctx, params CreateListingParams) (*Listing, error)
	CancelListing(c ctx.Ctx, id string, username domain.Username) (*Listing, error)
	GetActiveListings(c ctx.Ctx, opts ...FindAllOptionsFunc) (*Page, error)
	GetListingsByUser(c ctx.Ctx, username domain.Username) ([]*Listing, error)
	GetListing(c ctx.Ctx, id string) (*Listing, error)
}
