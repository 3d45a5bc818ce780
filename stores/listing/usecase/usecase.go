package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"

	bCtx "github.com/tradeloot/goapi/base/ctx"
	"github.com/tradeloot/goapi/base/log"
	"github.com/tradeloot/goapi/domain"
	"github.com/tradeloot/goapi/domain/listing"
)

type impl struct {
	listingRepo listing.Repo
	items       domain.ItemAdapter
}

func New(listingRepo listing.Repo, items domain.ItemAdapter) listing.UseCase {
	return &impl{
		listingRepo: listingRepo,
		items:       items,
	}
}

func (im *impl) CreateListing(ctx bCtx.Ctx, params listing.CreateListingParams) (*listing.Listing, error) {
	if params.SellerUsername.IsEmpty() {
		return nil, domain.ErrMissingUsername
	}

	exists, err := im.items.ItemExists(ctx, params.ItemId)
	if err != nil {
		ctx.WithField("err", err).Error("failed to ItemExists")
		return nil, err
	}
	if !exists {
		return nil, domain.ErrItemNotOwned
	}

	owns, err := im.items.OwnsItem(ctx, params.SellerUsername, params.ItemId)
	if err != nil {
		ctx.WithField("err", err).Error("failed to OwnsItem")
		return nil, err
	}
	if !owns {
		return nil, domain.ErrItemNotOwned
	}

	// the hold is taken before the listing exists, so a concurrent
	// create for the same item loses here, not at persistence
	if err := im.items.LockItem(ctx, params.SellerUsername, params.ItemId); err != nil {
		return nil, err
	}

	id, err := uuid.NewRandom()
	if err != nil {
		ctx.WithField("err", err).Error("failed to uuid.NewRandom")
		im.unlockItem(ctx, params.SellerUsername, params.ItemId)
		return nil, err
	}

	l := &listing.Listing{
		Id:             id.String(),
		ItemId:         params.ItemId,
		ItemType:       params.ItemType,
		ItemData:       params.ItemData,
		SellerUsername: params.SellerUsername,
		SellerWallet:   params.SellerWallet,
		PriceUSDC:      params.PriceUSDC,
		Status:         domain.ListingStatusActive,
		CreatedAt:      time.Now(),
		ExpiresAt:      params.ExpiresAt,
	}
	if err := im.listingRepo.Create(ctx, l); err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"itemId": params.ItemId,
		}).Error("failed to listingRepo.Create")
		im.unlockItem(ctx, params.SellerUsername, params.ItemId)
		return nil, domain.ErrListingCreate.WithCause(err)
	}
	return l, nil
}

func (im *impl) CancelListing(ctx bCtx.Ctx, id string, username domain.Username) (*listing.Listing, error) {
	if username.IsEmpty() {
		return nil, domain.ErrMissingUsername
	}

	l, err := im.listingRepo.FindOne(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrListingNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("failed to listingRepo.FindOne")
		return nil, err
	}

	if !l.SellerUsername.Equals(username) {
		return nil, domain.ErrNotTheSeller
	}

	if err := im.listingRepo.UpdateStatus(ctx, id, domain.ListingStatusActive, domain.ListingStatusCancelled); err != nil {
		return nil, err
	}

	// releasing the hold is best effort, cancellation already committed
	im.unlockItem(ctx, l.SellerUsername, l.ItemId)

	l.Status = domain.ListingStatusCancelled
	return l, nil
}

func (im *impl) GetActiveListings(ctx bCtx.Ctx, opts ...listing.FindAllOptionsFunc) (*listing.Page, error) {
	page, err := im.listingRepo.FindActive(ctx, opts...)
	if err != nil {
		ctx.WithField("err", err).Error("failed to listingRepo.FindActive")
		return nil, err
	}
	return page, nil
}

func (im *impl) GetListingsByUser(ctx bCtx.Ctx, username domain.Username) ([]*listing.Listing, error) {
	if username.IsEmpty() {
		return nil, domain.ErrMissingUsername
	}

	res, err := im.listingRepo.FindAll(ctx, listing.WithSeller(username))
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"seller": username,
		}).Error("failed to listingRepo.FindAll")
		return nil, err
	}
	return res, nil
}

func (im *impl) GetListing(ctx bCtx.Ctx, id string) (*listing.Listing, error) {
	l, err := im.listingRepo.FindOne(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrListingNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("failed to listingRepo.FindOne")
		return nil, err
	}
	return l, nil
}

func (im *impl) unlockItem(ctx bCtx.Ctx, username domain.Username, itemId string) {
	if err := im.items.UnlockItem(ctx, username, itemId); err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"itemId": itemId,
		}).Warn("failed to UnlockItem")
	}
}
