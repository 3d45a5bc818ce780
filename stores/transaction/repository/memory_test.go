package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tradeloot/goapi/base/ctx"
	"github.com/tradeloot/goapi/domain"
)

var mockCtx = ctx.Background()

func seedTxs(t *testing.T, repo domain.TransactionRepo) {
	base := time.Now()
	txs := []*domain.Transaction{
		{Id: "t1", Type: domain.TransactionTypeListingPurchase, BuyerUsername: "bob", SellerUsername: "alice", Timestamp: base},
		{Id: "t2", Type: domain.TransactionTypeMysteryBoxPurchase, BuyerUsername: "bob", Timestamp: base.Add(time.Second)},
		{Id: "t3", Type: domain.TransactionTypeListingPurchase, BuyerUsername: "carol", SellerUsername: "alice", Timestamp: base.Add(2 * time.Second)},
	}
	for _, tx := range txs {
		require.NoError(t, repo.Create(mockCtx, tx))
	}
}

func TestMemoryFindOne(t *testing.T) {
	repo := NewMemory()
	seedTxs(t, repo)

	tx, err := repo.FindOne(mockCtx, "t2")
	require.NoError(t, err)
	require.Equal(t, domain.TransactionTypeMysteryBoxPurchase, tx.Type)

	_, err = repo.FindOne(mockCtx, "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryFindAll(t *testing.T) {
	repo := NewMemory()
	seedTxs(t, repo)

	// newest first by default
	res, err := repo.FindAll(mockCtx)
	require.NoError(t, err)
	require.Len(t, res, 3)
	require.Equal(t, "t3", res[0].Id)

	res, err = repo.FindAll(mockCtx, domain.TransactionWithBuyer("bob"))
	require.NoError(t, err)
	require.Len(t, res, 2)

	res, err = repo.FindAll(mockCtx, domain.TransactionWithSeller("alice"), domain.TransactionWithSortDir(domain.SortDirAsc))
	require.NoError(t, err)
	require.Len(t, res, 2)
	require.Equal(t, "t1", res[0].Id)

	res, err = repo.FindAll(mockCtx, domain.TransactionWithType(domain.TransactionTypeListingPurchase), domain.TransactionWithPagination(1, 5))
	require.NoError(t, err)
	require.Len(t, res, 1)
}

func TestMemoryRecordsAreCopies(t *testing.T) {
	repo := NewMemory()
	tx := &domain.Transaction{Id: "t1", BuyerUsername: "bob", Timestamp: time.Now()}
	require.NoError(t, repo.Create(mockCtx, tx))

	// mutating the caller's struct must not alter the stored record
	tx.BuyerUsername = "mallory"
	got, err := repo.FindOne(mockCtx, "t1")
	require.NoError(t, err)
	require.Equal(t, domain.Username("bob"), got.BuyerUsername)
}
