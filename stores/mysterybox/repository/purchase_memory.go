package repository

import (
	"sort"
	"sync"

	"github.com/tradeloot/goapi/base/ctx"
	"github.com/tradeloot/goapi/domain"
	"github.com/tradeloot/goapi/domain/mysterybox"
)

type purchaseMemoryRepo struct {
	mu        sync.RWMutex
	purchases []*mysterybox.Purchase
}

func NewPurchaseMemory() mysterybox.PurchaseRepo {
	return &purchaseMemoryRepo{}
}

func (r *purchaseMemoryRepo) Create(c ctx.Ctx, purchase *mysterybox.Purchase) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *purchase
	r.purchases = append(r.purchases, &cp)
	return nil
}

func (r *purchaseMemoryRepo) FindByBuyer(c ctx.Ctx, username domain.Username) ([]*mysterybox.Purchase, error) {
	r.mu.RLock()
	res := []*mysterybox.Purchase{}
	for _, purchase := range r.purchases {
		if purchase.BuyerUsername.Equals(username) {
			cp := *purchase
			res = append(res, &cp)
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(res, func(i, j int) bool { return res[i].Timestamp.After(res[j].Timestamp) })
	return res, nil
}
