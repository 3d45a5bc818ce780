package repository

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/tradeloot/goapi/base/ctx"
	"github.com/tradeloot/goapi/domain"
	"github.com/tradeloot/goapi/domain/listing"
	"github.com/tradeloot/goapi/service/currency"
	"github.com/tradeloot/goapi/service/inventory"
	listingRepo "github.com/tradeloot/goapi/stores/listing/repository"
	transactionRepo "github.com/tradeloot/goapi/stores/transaction/repository"
)

var mockCtx = ctx.Background()

func TestExecutorSuite(t *testing.T) {
	suite.Run(t, new(testSuite))
}

type testSuite struct {
	suite.Suite

	listingRepo listing.Repo
	items       domain.ItemAdapter
	currency    domain.CurrencyAdapter
	txRepo      domain.TransactionRepo
	im          domain.TradeExecutor
}

func (s *testSuite) SetupTest() {
	s.listingRepo = listingRepo.NewMemory()
	s.items = inventory.New(inventory.WithSeed(1))
	s.currency = currency.New()
	s.txRepo = transactionRepo.NewMemory()
	s.im = New(s.listingRepo, s.items, s.currency, s.txRepo)
}

func (s *testSuite) seedListing(id string) *listing.Listing {
	inventory.AddItem(s.items, "alice", &domain.Item{Id: "sword-" + id, Type: "weapon"})
	s.Nil(s.items.LockItem(mockCtx, "alice", "sword-"+id))

	l := &listing.Listing{
		Id:             id,
		ItemId:         "sword-" + id,
		ItemType:       "weapon",
		SellerUsername: "alice",
		PriceUSDC:      decimal.NewFromInt(10),
		Status:         domain.ListingStatusActive,
		CreatedAt:      time.Now(),
	}
	s.Nil(s.listingRepo.Create(mockCtx, l))
	return l
}

func (s *testSuite) TestExecuteAppliesAllOps() {
	l := s.seedListing("l1")
	currency.Fund(s.currency, "bob", decimal.NewFromInt(50))

	ops := []domain.TradeOperation{
		domain.NewUpdateListingOp(l.Id, domain.ListingStatusSold),
		domain.NewTransferItemOp(l.ItemId, "alice", "bob"),
		domain.NewUpdateBalanceOp("bob", "alice", decimal.NewFromInt(10), l.Id),
		domain.NewRecordTransactionOp(&domain.Transaction{
			Id:             "tx1",
			Type:           domain.TransactionTypeListingPurchase,
			BuyerUsername:  "bob",
			SellerUsername: "alice",
			PriceUSDC:      decimal.NewFromInt(10),
			Items:          []domain.Item{l.Item()},
			Timestamp:      time.Now(),
		}),
	}
	s.Nil(s.im.ExecuteAtomicTrade(mockCtx, ops))

	got, err := s.listingRepo.FindOne(mockCtx, l.Id)
	s.Nil(err)
	s.Equal(domain.ListingStatusSold, got.Status)

	owns, err := s.items.OwnsItem(mockCtx, "bob", l.ItemId)
	s.Nil(err)
	s.True(owns)

	bobBalance, err := s.currency.GetBalance(mockCtx, "bob")
	s.Nil(err)
	s.True(bobBalance.Equal(decimal.NewFromInt(40)))
	aliceBalance, err := s.currency.GetBalance(mockCtx, "alice")
	s.Nil(err)
	s.True(aliceBalance.Equal(decimal.NewFromInt(10)))

	tx, err := s.txRepo.FindOne(mockCtx, "tx1")
	s.Nil(err)
	s.Equal(domain.Username("bob"), tx.BuyerUsername)
}

func (s *testSuite) TestSecondTradeLosesTheRace() {
	l := s.seedListing("l1")
	currency.Fund(s.currency, "bob", decimal.NewFromInt(50))
	currency.Fund(s.currency, "carol", decimal.NewFromInt(50))

	winner := []domain.TradeOperation{
		domain.NewUpdateListingOp(l.Id, domain.ListingStatusSold),
		domain.NewTransferItemOp(l.ItemId, "alice", "bob"),
		domain.NewUpdateBalanceOp("bob", "alice", decimal.NewFromInt(10), l.Id),
	}
	s.Nil(s.im.ExecuteAtomicTrade(mockCtx, winner))

	loser := []domain.TradeOperation{
		domain.NewUpdateListingOp(l.Id, domain.ListingStatusSold),
		domain.NewTransferItemOp(l.ItemId, "alice", "carol"),
		domain.NewUpdateBalanceOp("carol", "alice", decimal.NewFromInt(10), l.Id),
	}
	s.ErrorIs(s.im.ExecuteAtomicTrade(mockCtx, loser), domain.ErrListingNotActive)

	// the losing trade left no trace
	owns, err := s.items.OwnsItem(mockCtx, "bob", l.ItemId)
	s.Nil(err)
	s.True(owns)
	carolBalance, err := s.currency.GetBalance(mockCtx, "carol")
	s.Nil(err)
	s.True(carolBalance.Equal(decimal.NewFromInt(50)))
}

func (s *testSuite) TestFailureRollsBackEarlierOps() {
	l := s.seedListing("l1")
	// bob cannot afford the listing, so update_balance fails after the
	// listing flip and the item transfer already happened
	currency.Fund(s.currency, "bob", decimal.NewFromInt(1))

	ops := []domain.TradeOperation{
		domain.NewUpdateListingOp(l.Id, domain.ListingStatusSold),
		domain.NewTransferItemOp(l.ItemId, "alice", "bob"),
		domain.NewUpdateBalanceOp("bob", "alice", decimal.NewFromInt(10), l.Id),
		domain.NewRecordTransactionOp(&domain.Transaction{Id: "tx1"}),
	}
	s.ErrorIs(s.im.ExecuteAtomicTrade(mockCtx, ops), domain.ErrInsufficientBalance)

	got, err := s.listingRepo.FindOne(mockCtx, l.Id)
	s.Nil(err)
	s.Equal(domain.ListingStatusActive, got.Status)

	owns, err := s.items.OwnsItem(mockCtx, "alice", l.ItemId)
	s.Nil(err)
	s.True(owns)

	// the rollback restored the listing hold on the item
	s.ErrorIs(s.items.LockItem(mockCtx, "alice", l.ItemId), domain.ErrItemLocked)

	txs, err := s.txRepo.FindAll(mockCtx)
	s.Nil(err)
	s.Empty(txs)
}

func (s *testSuite) TestGrantAppliesInsideTrade() {
	item := &domain.Item{Id: "drop-1", Type: "mystery_box_drop", Rarity: "rare"}
	currency.Fund(s.currency, "bob", decimal.NewFromInt(50))

	ops := []domain.TradeOperation{
		domain.NewGrantItemOp("bob", item),
		domain.NewUpdateBalanceOp("bob", "", decimal.NewFromInt(25), "gold"),
		domain.NewRecordTransactionOp(&domain.Transaction{Id: "tx1", Type: domain.TransactionTypeMysteryBoxPurchase}),
	}
	s.Nil(s.im.ExecuteAtomicTrade(mockCtx, ops))

	owns, err := s.items.OwnsItem(mockCtx, "bob", item.Id)
	s.Nil(err)
	s.True(owns)
}

func (s *testSuite) TestFailedTradeRevokesGrantedItem() {
	item := &domain.Item{Id: "drop-1", Type: "mystery_box_drop", Rarity: "rare"}
	// bob cannot afford the box, so update_balance fails after the grant
	currency.Fund(s.currency, "bob", decimal.NewFromInt(1))

	ops := []domain.TradeOperation{
		domain.NewGrantItemOp("bob", item),
		domain.NewUpdateBalanceOp("bob", "", decimal.NewFromInt(25), "gold"),
		domain.NewRecordTransactionOp(&domain.Transaction{Id: "tx1", Type: domain.TransactionTypeMysteryBoxPurchase}),
	}
	s.ErrorIs(s.im.ExecuteAtomicTrade(mockCtx, ops), domain.ErrInsufficientBalance)

	// the rollback took the drop back
	owns, err := s.items.OwnsItem(mockCtx, "bob", item.Id)
	s.Nil(err)
	s.False(owns)
	exists, err := s.items.ItemExists(mockCtx, item.Id)
	s.Nil(err)
	s.False(exists)

	txs, err := s.txRepo.FindAll(mockCtx)
	s.Nil(err)
	s.Empty(txs)
}

func (s *testSuite) TestRecordFailurePropagates() {
	l := s.seedListing("l1")

	ops := []domain.TradeOperation{
		domain.NewUpdateListingOp(l.Id, domain.ListingStatusSold),
		{Type: domain.TradeOpRecordTransaction},
	}
	s.ErrorIs(s.im.ExecuteAtomicTrade(mockCtx, ops), domain.ErrInvalidParam)

	got, err := s.listingRepo.FindOne(mockCtx, l.Id)
	s.Nil(err)
	s.Equal(domain.ListingStatusActive, got.Status)
}

func (s *testSuite) TestUnknownOpRejected() {
	err := s.im.ExecuteAtomicTrade(mockCtx, []domain.TradeOperation{{Type: "burn_item"}})
	s.ErrorIs(err, domain.ErrInvalidParam)
}
