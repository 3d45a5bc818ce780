package currency

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	bCtx "github.com/tradeloot/goapi/base/ctx"
	"github.com/tradeloot/goapi/base/log"
	"github.com/tradeloot/goapi/domain"
)

type impl struct {
	mu        sync.Mutex
	balances  map[domain.Username]decimal.Decimal
	ledger    []*domain.BalanceTransaction
	purchases map[string]struct{}
}

// New builds the in-memory balance ledger backing mock-mode settlement.
func New() domain.CurrencyAdapter {
	return &impl{
		balances:  map[domain.Username]decimal.Decimal{},
		purchases: map[string]struct{}{},
	}
}

// Fund seeds a balance for tests and demo deployments.
func Fund(adapter domain.CurrencyAdapter, username domain.Username, amount decimal.Decimal) {
	im := adapter.(*impl)
	im.mu.Lock()
	defer im.mu.Unlock()
	im.balances[username] = im.balances[username].Add(amount)
}

func (im *impl) GetBalance(c bCtx.Ctx, username domain.Username) (decimal.Decimal, error) {
	im.mu.Lock()
	defer im.mu.Unlock()
	return im.balances[username], nil
}

func (im *impl) Deduct(c bCtx.Ctx, username domain.Username, amount decimal.Decimal, reference string) error {
	if !amount.IsPositive() {
		return domain.ErrInvalidParam.WithMessagef("deduct amount must be positive, got %s", amount)
	}

	im.mu.Lock()
	defer im.mu.Unlock()

	balance := im.balances[username]
	if balance.LessThan(amount) {
		return domain.ErrInsufficientBalance.WithMessagef("balance %s is less than %s", balance, amount)
	}
	im.balances[username] = balance.Sub(amount)
	im.record(username, domain.BalanceTxDebit, amount, reference)
	return nil
}

func (im *impl) Add(c bCtx.Ctx, username domain.Username, amount decimal.Decimal, reference string) error {
	if !amount.IsPositive() {
		return domain.ErrInvalidParam.WithMessagef("add amount must be positive, got %s", amount)
	}

	im.mu.Lock()
	defer im.mu.Unlock()

	im.balances[username] = im.balances[username].Add(amount)
	im.record(username, domain.BalanceTxCredit, amount, reference)
	return nil
}

func (im *impl) InitiatePurchase(c bCtx.Ctx, username domain.Username, amount decimal.Decimal, reference string) (string, error) {
	if err := im.Deduct(c, username, amount, reference); err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"username": username,
		}).Warn("failed to Deduct")
		return "", err
	}

	purchaseId := uuid.NewString()
	im.mu.Lock()
	im.purchases[purchaseId] = struct{}{}
	im.mu.Unlock()
	return purchaseId, nil
}

func (im *impl) VerifyPurchase(c bCtx.Ctx, purchaseId string) error {
	im.mu.Lock()
	defer im.mu.Unlock()
	if _, ok := im.purchases[purchaseId]; !ok {
		return domain.ErrPaymentFailed.WithMessagef("unknown purchase %s", purchaseId)
	}
	return nil
}

func (im *impl) GetTransactions(c bCtx.Ctx, optFns ...domain.BalanceTxFindAllOptionsFunc) ([]*domain.BalanceTransaction, error) {
	opts, err := domain.GetBalanceTxFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}

	im.mu.Lock()
	res := []*domain.BalanceTransaction{}
	for _, tx := range im.ledger {
		if opts.Username != nil && !tx.Username.Equals(*opts.Username) {
			continue
		}
		cp := *tx
		res = append(res, &cp)
	}
	im.mu.Unlock()

	asc := opts.SortDir != nil && *opts.SortDir == domain.SortDirAsc
	sort.SliceStable(res, func(i, j int) bool {
		if asc {
			return res[i].Timestamp.Before(res[j].Timestamp)
		}
		return res[i].Timestamp.After(res[j].Timestamp)
	})

	if opts.Offset != nil {
		if *opts.Offset >= len(res) {
			return []*domain.BalanceTransaction{}, nil
		}
		res = res[*opts.Offset:]
	}
	if opts.Limit != nil && *opts.Limit > 0 && *opts.Limit < len(res) {
		res = res[:*opts.Limit]
	}
	return res, nil
}

func (im *impl) RecordTransaction(c bCtx.Ctx, tx *domain.BalanceTransaction) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	cp := *tx
	if cp.Id == "" {
		cp.Id = uuid.NewString()
	}
	if cp.Timestamp.IsZero() {
		cp.Timestamp = time.Now()
	}
	im.ledger = append(im.ledger, &cp)
	return nil
}

// record appends a ledger entry. Caller must hold im.mu.
func (im *impl) record(username domain.Username, txType domain.BalanceTxType, amount decimal.Decimal, reference string) {
	im.ledger = append(im.ledger, &domain.BalanceTransaction{
		Id:        uuid.NewString(),
		Username:  username,
		Type:      txType,
		Amount:    amount,
		Reference: reference,
		Timestamp: time.Now(),
	})
}
