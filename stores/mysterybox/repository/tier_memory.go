package repository

import (
	"sort"
	"sync"

	"github.com/tradeloot/goapi/base/ctx"
	"github.com/tradeloot/goapi/domain"
	"github.com/tradeloot/goapi/domain/mysterybox"
)

type tierMemoryRepo struct {
	mu    sync.RWMutex
	tiers map[string]*mysterybox.Tier
}

func NewTierMemory() mysterybox.TierRepo {
	return &tierMemoryRepo{
		tiers: map[string]*mysterybox.Tier{},
	}
}

func (r *tierMemoryRepo) FindOne(c ctx.Ctx, id string) (*mysterybox.Tier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tier, ok := r.tiers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *tier
	return &cp, nil
}

func (r *tierMemoryRepo) FindAll(c ctx.Ctx) ([]*mysterybox.Tier, error) {
	r.mu.RLock()
	res := make([]*mysterybox.Tier, 0, len(r.tiers))
	for _, tier := range r.tiers {
		cp := *tier
		res = append(res, &cp)
	}
	r.mu.RUnlock()

	sort.Slice(res, func(i, j int) bool {
		if cmp := res[i].PriceUSDC.Cmp(res[j].PriceUSDC); cmp != 0 {
			return cmp < 0
		}
		return res[i].Id < res[j].Id
	})
	return res, nil
}

func (r *tierMemoryRepo) Upsert(c ctx.Ctx, tier *mysterybox.Tier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *tier
	r.tiers[cp.Id] = &cp
	return nil
}
