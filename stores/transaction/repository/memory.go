package repository

import (
	"sort"
	"sync"

	"github.com/tradeloot/goapi/base/ctx"
	"github.com/tradeloot/goapi/domain"
)

// memoryRepo is an append-only in-memory transaction log.
type memoryRepo struct {
	mu  sync.RWMutex
	txs []*domain.Transaction
}

func NewMemory() domain.TransactionRepo {
	return &memoryRepo{}
}

func (r *memoryRepo) Create(c ctx.Ctx, tx *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *tx
	r.txs = append(r.txs, &cp)
	return nil
}

func (r *memoryRepo) FindOne(c ctx.Ctx, id string) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, tx := range r.txs {
		if tx.Id == id {
			cp := *tx
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) FindAll(c ctx.Ctx, optFns ...domain.TransactionFindAllOptionsFunc) ([]*domain.Transaction, error) {
	opts, err := domain.GetTransactionFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	matched := make([]*domain.Transaction, 0, len(r.txs))
	for _, tx := range r.txs {
		if opts.Type != nil && tx.Type != *opts.Type {
			continue
		}
		if opts.Buyer != nil && !tx.BuyerUsername.Equals(*opts.Buyer) {
			continue
		}
		if opts.Seller != nil && !tx.SellerUsername.Equals(*opts.Seller) {
			continue
		}
		cp := *tx
		matched = append(matched, &cp)
	}
	r.mu.RUnlock()

	dir := domain.SortDirDesc
	if opts.SortDir != nil {
		dir = *opts.SortDir
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if dir == domain.SortDirAsc {
			return matched[i].Timestamp.Before(matched[j].Timestamp)
		}
		return matched[i].Timestamp.After(matched[j].Timestamp)
	})

	offset := 0
	if opts.Offset != nil {
		offset = *opts.Offset
	}
	if offset > len(matched) {
		offset = len(matched)
	}
	matched = matched[offset:]
	if opts.Limit != nil && *opts.Limit < len(matched) {
		matched = matched[:*opts.Limit]
	}
	return matched, nil
}
