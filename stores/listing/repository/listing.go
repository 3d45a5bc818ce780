package repository

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/tradeloot/goapi/base/ctx"
	"github.com/tradeloot/goapi/base/log"
	"github.com/tradeloot/goapi/domain"
	"github.com/tradeloot/goapi/domain/listing"
	"github.com/tradeloot/goapi/service/query"
)

type listingMongoRepo struct {
	q query.Mongo
}

func NewListingRepo(q query.Mongo) listing.Repo {
	return &listingMongoRepo{
		q: q,
	}
}

func (r *listingMongoRepo) FindOne(ctx bCtx.Ctx, id string) (*listing.Listing, error) {
	l := &listing.Listing{}
	if err := r.q.FindOne(ctx, domain.TableListings, bson.M{"id": id}, l); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return l, nil
}

func (r *listingMongoRepo) Create(ctx bCtx.Ctx, l *listing.Listing) error {
	if err := r.q.Insert(ctx, domain.TableListings, l); err != nil {
		ctx.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

// UpdateStatus patches with the previous status in the selector, so the
// matched-document check doubles as the compare-and-set.
func (r *listingMongoRepo) UpdateStatus(ctx bCtx.Ctx, id string, from, to domain.ListingStatus) error {
	if !from.CanTransitionTo(to) {
		return domain.ErrInvalidParam.WithMessagef("cannot transition listing from %s to %s", from, to)
	}

	selector := bson.M{"id": id, "status": from}
	if err := r.q.Patch(ctx, domain.TableListings, selector, bson.M{"status": to}); err == query.ErrNotFound {
		// either the listing is gone or its status moved on
		if _, err := r.FindOne(ctx, id); err != nil {
			return err
		}
		return domain.ErrListingNotActive
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}

// RevertStatus undoes a lifecycle transition during trade rollback,
// bypassing the one-way transition guard.
func (r *listingMongoRepo) RevertStatus(ctx bCtx.Ctx, id string, from, to domain.ListingStatus) error {
	selector := bson.M{"id": id, "status": from}
	if err := r.q.Patch(ctx, domain.TableListings, selector, bson.M{"status": to}); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}

func (r *listingMongoRepo) FindActive(ctx bCtx.Ctx, optFns ...listing.FindAllOptionsFunc) (*listing.Page, error) {
	opts, err := listing.GetFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}

	sortBy := listing.SortByNewest
	if opts.SortBy != nil {
		sortBy = *opts.SortBy
	}
	limit := listing.DefaultLimit
	if opts.Limit != nil {
		limit = *opts.Limit
	}

	selector := bson.M{"status": domain.ListingStatusActive}
	if opts.SellerUsername != nil {
		selector["sellerUsername"] = *opts.SellerUsername
	}

	total, err := r.q.Count(ctx, domain.TableListings, selector)
	if err != nil {
		ctx.WithField("err", err).Error("q.Count failed")
		return nil, err
	}

	qry := bson.M{}
	for k, v := range selector {
		qry[k] = v
	}
	if opts.Cursor != nil && *opts.Cursor != "" {
		cond, err := mongoCursorCondition(sortBy, *opts.Cursor)
		if err != nil {
			return nil, err
		}
		qry["$or"] = cond
	}

	res := []*listing.Listing{}
	if err := r.q.SearchNSorts(ctx, domain.TableListings, 0, limit, mongoSortFields(sortBy), qry, &res); err != nil {
		ctx.WithField("err", err).Error("q.SearchNSorts failed")
		return nil, err
	}

	page := &listing.Page{Items: res, Total: total}
	if len(res) == limit {
		page.NextCursor = encodeCursor(sortBy, res[len(res)-1])
	}
	return page, nil
}

func (r *listingMongoRepo) FindAll(ctx bCtx.Ctx, optFns ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	opts, err := listing.GetFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}

	sortBy := listing.SortByNewest
	if opts.SortBy != nil {
		sortBy = *opts.SortBy
	}

	selector := bson.M{}
	if opts.SellerUsername != nil {
		selector["sellerUsername"] = *opts.SellerUsername
	}
	if opts.Status != nil {
		selector["status"] = *opts.Status
	}

	res := []*listing.Listing{}
	if err := r.q.SearchNSorts(ctx, domain.TableListings, 0, 0, mongoSortFields(sortBy), selector, &res); err != nil {
		ctx.WithField("err", err).Error("q.SearchNSorts failed")
		return nil, err
	}
	return res, nil
}

func mongoSortFields(sortBy listing.SortBy) []string {
	switch sortBy {
	case listing.SortByPriceLow:
		return []string{"priceUSDC", "id"}
	case listing.SortByPriceHigh:
		return []string{"-priceUSDC", "id"}
	default:
		return []string{"-createdAt", "id"}
	}
}

// mongoCursorCondition translates the key-set cursor into the
// strictly-after predicate for the sort order.
func mongoCursorCondition(sortBy listing.SortBy, raw string) ([]bson.M, error) {
	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, domain.ErrInvalidParam.WithMessagef("malformed cursor").WithCause(err)
	}
	parts := strings.SplitN(string(decoded), ":", 2)
	if len(parts) != 2 {
		return nil, domain.ErrInvalidParam.WithMessagef("malformed cursor")
	}

	switch sortBy {
	case listing.SortByPriceLow, listing.SortByPriceHigh:
		price, err := decimal.NewFromString(parts[0])
		if err != nil {
			return nil, domain.ErrInvalidParam.WithMessagef("malformed cursor").WithCause(err)
		}
		op := "$gt"
		if sortBy == listing.SortByPriceHigh {
			op = "$lt"
		}
		return []bson.M{
			{"priceUSDC": bson.M{op: price}},
			{"priceUSDC": price, "id": bson.M{"$gt": parts[1]}},
		}, nil
	default:
		nanos, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return nil, domain.ErrInvalidParam.WithMessagef("malformed cursor").WithCause(err)
		}
		createdAt := time.Unix(0, nanos)
		return []bson.M{
			{"createdAt": bson.M{"$lt": createdAt}},
			{"createdAt": createdAt, "id": bson.M{"$gt": parts[1]}},
		}, nil
	}
}
