package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/tradeloot/goapi/base/ctx"
	"github.com/tradeloot/goapi/base/log"
	"github.com/tradeloot/goapi/domain"
	"github.com/tradeloot/goapi/domain/mysterybox"
	"github.com/tradeloot/goapi/service/query"
)

type tierMongoRepo struct {
	q query.Mongo
}

func NewTierRepo(q query.Mongo) mysterybox.TierRepo {
	return &tierMongoRepo{
		q: q,
	}
}

func (r *tierMongoRepo) FindOne(ctx bCtx.Ctx, id string) (*mysterybox.Tier, error) {
	tier := &mysterybox.Tier{}
	if err := r.q.FindOne(ctx, domain.TableMysteryBoxTiers, bson.M{"id": id}, tier); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return tier, nil
}

func (r *tierMongoRepo) FindAll(ctx bCtx.Ctx) ([]*mysterybox.Tier, error) {
	res := []*mysterybox.Tier{}
	if err := r.q.Search(ctx, domain.TableMysteryBoxTiers, 0, 0, "priceUSDC", bson.M{}, &res); err != nil {
		ctx.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (r *tierMongoRepo) Upsert(ctx bCtx.Ctx, tier *mysterybox.Tier) error {
	if err := r.q.Upsert(ctx, domain.TableMysteryBoxTiers, bson.M{"id": tier.Id}, tier); err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"tier": tier.Id,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

type purchaseMongoRepo struct {
	q query.Mongo
}

func NewPurchaseRepo(q query.Mongo) mysterybox.PurchaseRepo {
	return &purchaseMongoRepo{
		q: q,
	}
}

func (r *purchaseMongoRepo) Create(ctx bCtx.Ctx, purchase *mysterybox.Purchase) error {
	if err := r.q.Insert(ctx, domain.TableMysteryBoxPurchases, purchase); err != nil {
		ctx.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *purchaseMongoRepo) FindByBuyer(ctx bCtx.Ctx, username domain.Username) ([]*mysterybox.Purchase, error) {
	res := []*mysterybox.Purchase{}
	if err := r.q.Search(ctx, domain.TableMysteryBoxPurchases, 0, 0, "-timestamp", bson.M{"buyerUsername": username}, &res); err != nil {
		ctx.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}
