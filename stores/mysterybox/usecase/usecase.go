package usecase

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/viney-shih/goroutines"

	bCtx "github.com/tradeloot/goapi/base/ctx"
	"github.com/tradeloot/goapi/base/log"
	"github.com/tradeloot/goapi/domain"
	"github.com/tradeloot/goapi/domain/keys"
	"github.com/tradeloot/goapi/domain/mysterybox"
	"github.com/tradeloot/goapi/service/cache"
	"github.com/tradeloot/goapi/service/cache/provider/primitive"
	redisCache "github.com/tradeloot/goapi/service/cache/provider/redis"
	"github.com/tradeloot/goapi/service/redis"
)

const allTiersCacheKey = "all"

type impl struct {
	tierRepo     mysterybox.TierRepo
	purchaseRepo mysterybox.PurchaseRepo
	tierCache    cache.Service

	workerPool *goroutines.Pool
}

// New builds the tier catalog usecase. redis is optional, without it
// the tier cache falls back to an in-process one.
func New(tierRepo mysterybox.TierRepo, purchaseRepo mysterybox.PurchaseRepo, redis redis.Service) mysterybox.UseCase {
	cacheCfg := cache.ServiceConfig{
		Ttl:   time.Hour,
		Pfx:   keys.PfxMysteryBoxTier,
		Cache: primitive.NewPrimitive(keys.PfxMysteryBoxTier, 128),
	}
	if redis != nil {
		cacheCfg.Cache = redisCache.NewRedis(redis)
	}

	return &impl{
		tierRepo:     tierRepo,
		purchaseRepo: purchaseRepo,
		tierCache:    cache.New(cacheCfg),

		workerPool: goroutines.NewPool(32, goroutines.WithTaskQueueLength(1024), goroutines.WithPreAllocWorkers(8)),
	}
}

func (im *impl) GetTier(ctx bCtx.Ctx, id string) (*mysterybox.Tier, error) {
	tier := &mysterybox.Tier{}
	err := im.tierCache.GetByFunc(ctx, id, tier, func() (interface{}, error) {
		res, err := im.tierRepo.FindOne(ctx, id)
		if err != nil {
			return nil, err
		}
		return res, nil
	})
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrTierNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"tierId": id,
		}).Error("failed to tierRepo.FindOne")
		return nil, err
	}
	return tier, nil
}

func (im *impl) GetTiers(ctx bCtx.Ctx) ([]*mysterybox.Tier, error) {
	tiers := []*mysterybox.Tier{}
	err := im.tierCache.GetByFunc(ctx, allTiersCacheKey, &tiers, func() (interface{}, error) {
		res, err := im.tierRepo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		return &res, nil
	})
	if err != nil {
		ctx.WithField("err", err).Error("failed to tierRepo.FindAll")
		return nil, err
	}
	return tiers, nil
}

func (im *impl) SeedTiers(ctx bCtx.Ctx, tiers []mysterybox.Tier) error {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for i := range tiers {
		tier := tiers[i]
		wg.Add(1)
		if err := im.workerPool.ScheduleWithTimeout(3*time.Second, func() {
			defer wg.Done()
			if err := im.tierRepo.Upsert(ctx, &tier); err != nil {
				ctx.WithFields(log.Fields{
					"err":    err,
					"tierId": tier.Id,
				}).Error("failed to tierRepo.Upsert")
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}); err != nil {
			wg.Done()
			ctx.WithFields(log.Fields{
				"err":    err,
				"tierId": tier.Id,
			}).Error("failed to ScheduleWithTimeout")
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
		}
	}
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}

	// stale catalog entries must not outlive a reseed
	if err := im.tierCache.Del(ctx, allTiersCacheKey); err != nil {
		ctx.WithField("err", err).Warn("failed to tierCache.Del")
	}
	for i := range tiers {
		if err := im.tierCache.Del(ctx, tiers[i].Id); err != nil {
			ctx.WithField("err", err).Warn("failed to tierCache.Del")
		}
	}
	return nil
}

func (im *impl) RecordPurchase(ctx bCtx.Ctx, purchase *mysterybox.Purchase) error {
	if purchase.Id == "" {
		id, err := uuid.NewRandom()
		if err != nil {
			ctx.WithField("err", err).Error("failed to uuid.NewRandom")
			return err
		}
		purchase.Id = id.String()
	}
	if purchase.Timestamp.IsZero() {
		purchase.Timestamp = time.Now()
	}

	if err := im.purchaseRepo.Create(ctx, purchase); err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"tierId": purchase.TierId,
			"buyer":  purchase.BuyerUsername,
		}).Error("failed to purchaseRepo.Create")
		return err
	}
	return nil
}

func (im *impl) GetPurchasesByBuyer(ctx bCtx.Ctx, username domain.Username) ([]*mysterybox.Purchase, error) {
	res, err := im.purchaseRepo.FindByBuyer(ctx, username)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"buyer": username,
		}).Error("failed to purchaseRepo.FindByBuyer")
		return nil, err
	}
	return res, nil
}
