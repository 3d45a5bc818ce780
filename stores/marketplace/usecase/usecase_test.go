package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tradeloot/goapi/base/ctx"
	"github.com/tradeloot/goapi/domain"
	"github.com/tradeloot/goapi/domain/listing"
	mListing "github.com/tradeloot/goapi/domain/listing/mocks"
	"github.com/tradeloot/goapi/domain/marketplace"
	mDomain "github.com/tradeloot/goapi/domain/mocks"
	"github.com/tradeloot/goapi/domain/mysterybox"
	mMysterybox "github.com/tradeloot/goapi/domain/mysterybox/mocks"
	"github.com/tradeloot/goapi/service/notify"
)

var mockCtx = ctx.Background()

type testSuite struct {
	suite.Suite

	listings *mListing.UseCase
	boxes    *mMysterybox.UseCase
	items    *mDomain.ItemAdapter
	payments *mDomain.PaymentAdapter
	executor *mDomain.TradeExecutor
}

func TestSuite(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) SetupTest() {
	s.listings = &mListing.UseCase{}
	s.boxes = &mMysterybox.UseCase{}
	s.items = &mDomain.ItemAdapter{}
	s.payments = &mDomain.PaymentAdapter{}
	s.executor = &mDomain.TradeExecutor{}
}

func (s *testSuite) build(cfg Config) marketplace.UseCase {
	return New(cfg, s.listings, s.boxes, s.items, s.payments, s.executor, notify.NewNoop())
}

func (s *testSuite) activeListing() *listing.Listing {
	return &listing.Listing{
		Id:             "l1",
		ItemId:         "sword-1",
		ItemType:       "weapon",
		SellerUsername: "alice",
		SellerWallet:   "0xseller",
		PriceUSDC:      decimal.NewFromFloat(10.25),
		Status:         domain.ListingStatusActive,
	}
}

func (s *testSuite) buyer() marketplace.BuyerInfo {
	return marketplace.BuyerInfo{Username: "bob", Wallet: "0xbuyer"}
}

func (s *testSuite) TestHandlePurchaseRequestReturnsRequirements() {
	im := s.build(Config{ResourceBase: "https://api.example.com/"})
	s.listings.On("GetListing", mock.Anything, "l1").Return(s.activeListing(), nil)

	requirements := &domain.PaymentRequirements{Scheme: domain.PaymentSchemeExact, MaxAmountRequired: "10250000"}
	s.payments.On("CreatePaymentRequirements", mock.Anything, mock.MatchedBy(func(p *domain.CreatePaymentRequirementsParams) bool {
		return p.Resource == "https://api.example.com/marketplace/listings/l1/purchase" &&
			p.SellerWallet == domain.WalletAddress("0xseller")
	})).Return(requirements, nil)

	res, err := im.HandlePurchaseRequest(mockCtx, "l1", s.buyer())
	s.Nil(err)
	s.True(res.RequiresPayment)
	s.Equal(requirements, res.PaymentRequirements)
	s.Nil(res.PurchaseResult)

	// a 402 response mutates nothing
	s.executor.AssertNotCalled(s.T(), "ExecuteAtomicTrade", mock.Anything, mock.Anything)
}

func (s *testSuite) TestHandlePurchaseRequestMockMode() {
	im := s.build(Config{MockMode: true})
	s.listings.On("GetListing", mock.Anything, "l1").Return(s.activeListing(), nil)
	s.payments.On("VerifyPayment", mock.Anything, mock.Anything).
		Return(&domain.VerifyPaymentResult{TxHash: "mock-tx-1"}, nil)
	s.executor.On("ExecuteAtomicTrade", mock.Anything, mock.MatchedBy(func(ops []domain.TradeOperation) bool {
		return len(ops) == 3 &&
			ops[0].Type == domain.TradeOpUpdateListing &&
			ops[1].Type == domain.TradeOpTransferItem &&
			ops[2].Type == domain.TradeOpRecordTransaction
	})).Return(nil)

	res, err := im.HandlePurchaseRequest(mockCtx, "l1", s.buyer())
	s.Nil(err)
	s.False(res.RequiresPayment)
	s.True(res.PurchaseResult.Success)
	s.Equal(domain.TxHash("mock-tx-1"), res.PurchaseResult.TxHash)
	s.Equal("sword-1", res.PurchaseResult.Item.Id)

	s.executor.AssertExpectations(s.T())
}

func (s *testSuite) TestHandlePurchaseRequestMockModeWithLedger() {
	im := s.build(Config{MockMode: true, UseBalanceLedger: true})
	s.listings.On("GetListing", mock.Anything, "l1").Return(s.activeListing(), nil)
	s.payments.On("VerifyPayment", mock.Anything, mock.Anything).
		Return(&domain.VerifyPaymentResult{TxHash: "mock-tx-1"}, nil)
	s.executor.On("ExecuteAtomicTrade", mock.Anything, mock.MatchedBy(func(ops []domain.TradeOperation) bool {
		return len(ops) == 4 &&
			ops[2].Type == domain.TradeOpUpdateBalance &&
			ops[2].UpdateBalance.From == domain.Username("bob") &&
			ops[2].UpdateBalance.To == domain.Username("alice")
	})).Return(nil)

	_, err := im.HandlePurchaseRequest(mockCtx, "l1", s.buyer())
	s.Nil(err)
	s.executor.AssertExpectations(s.T())
}

func (s *testSuite) TestHandlePurchaseRequestMissingBuyerInMockMode() {
	im := s.build(Config{MockMode: true})
	s.listings.On("GetListing", mock.Anything, "l1").Return(s.activeListing(), nil)

	_, err := im.HandlePurchaseRequest(mockCtx, "l1", marketplace.BuyerInfo{})
	s.ErrorIs(err, domain.ErrMissingBuyerInfo)

	s.payments.AssertNotCalled(s.T(), "VerifyPayment", mock.Anything, mock.Anything)
}

// the 402-issuance phase serves anonymous requests; identity is only
// required at settlement
func (s *testSuite) TestHandlePurchaseRequestWithoutBuyerStillIssues402() {
	im := s.build(Config{ResourceBase: "https://api.example.com"})
	s.listings.On("GetListing", mock.Anything, "l1").Return(s.activeListing(), nil)
	s.payments.On("CreatePaymentRequirements", mock.Anything, mock.Anything).
		Return(&domain.PaymentRequirements{Scheme: domain.PaymentSchemeExact}, nil)

	res, err := im.HandlePurchaseRequest(mockCtx, "l1", marketplace.BuyerInfo{})
	s.Nil(err)
	s.True(res.RequiresPayment)
}

func (s *testSuite) TestVerifyAndCompletePurchaseMissingBuyer() {
	im := s.build(Config{})
	s.listings.On("GetListing", mock.Anything, "l1").Return(s.activeListing(), nil)

	_, err := im.VerifyAndCompletePurchase(mockCtx, "l1", "header", marketplace.BuyerInfo{})
	s.ErrorIs(err, domain.ErrMissingBuyerInfo)

	s.payments.AssertNotCalled(s.T(), "VerifyPayment", mock.Anything, mock.Anything)
}

func (s *testSuite) TestHandlePurchaseRequestInactiveListing() {
	im := s.build(Config{})
	l := s.activeListing()
	l.Status = domain.ListingStatusSold
	s.listings.On("GetListing", mock.Anything, "l1").Return(l, nil)

	_, err := im.HandlePurchaseRequest(mockCtx, "l1", s.buyer())
	s.ErrorIs(err, domain.ErrListingNotActive)
}

func (s *testSuite) TestVerifyAndCompletePurchase() {
	im := s.build(Config{})
	s.listings.On("GetListing", mock.Anything, "l1").Return(s.activeListing(), nil)
	s.payments.On("VerifyPayment", mock.Anything, mock.MatchedBy(func(p *domain.VerifyPaymentParams) bool {
		return p.PaymentHeader == "header" && p.ExpectedRecipient == domain.WalletAddress("0xseller")
	})).Return(&domain.VerifyPaymentResult{TxHash: "0xdeadbeef"}, nil)
	s.executor.On("ExecuteAtomicTrade", mock.Anything, mock.Anything).Return(nil)

	res, err := im.VerifyAndCompletePurchase(mockCtx, "l1", "header", s.buyer())
	s.Nil(err)
	s.True(res.Success)
	s.Equal(domain.TxHash("0xdeadbeef"), res.TxHash)
}

func (s *testSuite) TestVerifyAndCompletePurchaseBadProof() {
	im := s.build(Config{})
	s.listings.On("GetListing", mock.Anything, "l1").Return(s.activeListing(), nil)
	s.payments.On("VerifyPayment", mock.Anything, mock.Anything).Return(nil, domain.ErrPaymentFailed)

	_, err := im.VerifyAndCompletePurchase(mockCtx, "l1", "header", s.buyer())
	s.ErrorIs(err, domain.ErrPaymentFailed)

	// the listing stays untouched and retryable
	s.executor.AssertNotCalled(s.T(), "ExecuteAtomicTrade", mock.Anything, mock.Anything)
}

func (s *testSuite) TestVerifyAndCompletePurchaseLosesRace() {
	im := s.build(Config{})
	s.listings.On("GetListing", mock.Anything, "l1").Return(s.activeListing(), nil)
	s.payments.On("VerifyPayment", mock.Anything, mock.Anything).
		Return(&domain.VerifyPaymentResult{TxHash: "0xdeadbeef"}, nil)
	s.executor.On("ExecuteAtomicTrade", mock.Anything, mock.Anything).Return(domain.ErrListingNotActive)

	_, err := im.VerifyAndCompletePurchase(mockCtx, "l1", "header", s.buyer())
	s.ErrorIs(err, domain.ErrListingNotActive)
}

func (s *testSuite) TestHandleMysteryBoxRequestReturnsRequirements() {
	im := s.build(Config{ResourceBase: "https://api.example.com", TreasuryWallet: "0xtreasury"})
	tier := &mysterybox.Tier{Id: "gold", Name: "Gold Box", PriceUSDC: decimal.NewFromInt(25)}
	s.boxes.On("GetTier", mock.Anything, "gold").Return(tier, nil)

	requirements := &domain.PaymentRequirements{Scheme: domain.PaymentSchemeExact}
	s.payments.On("CreatePaymentRequirements", mock.Anything, mock.MatchedBy(func(p *domain.CreatePaymentRequirementsParams) bool {
		return p.SellerWallet == domain.WalletAddress("0xtreasury") &&
			p.Resource == "https://api.example.com/marketplace/mysterybox/tiers/gold/purchase"
	})).Return(requirements, nil)

	res, err := im.HandleMysteryBoxRequest(mockCtx, "gold", s.buyer())
	s.Nil(err)
	s.True(res.RequiresPayment)
}

func (s *testSuite) TestHandleMysteryBoxRequestUnknownTier() {
	im := s.build(Config{})
	s.boxes.On("GetTier", mock.Anything, "diamond").Return(nil, domain.ErrTierNotFound)

	_, err := im.HandleMysteryBoxRequest(mockCtx, "diamond", s.buyer())
	s.ErrorIs(err, domain.ErrTierNotFound)
}

func (s *testSuite) TestVerifyAndCompleteMysteryBox() {
	im := s.build(Config{TreasuryWallet: "0xtreasury"})
	tier := &mysterybox.Tier{Id: "gold", Name: "Gold Box", PriceUSDC: decimal.NewFromInt(25), RarityWeights: domain.RarityWeights{"rare": 1}}
	drop := &domain.Item{Id: "item-1", Type: "mystery_box_drop", Rarity: "rare"}

	s.boxes.On("GetTier", mock.Anything, "gold").Return(tier, nil)
	s.payments.On("VerifyPayment", mock.Anything, mock.Anything).
		Return(&domain.VerifyPaymentResult{TxHash: "0xdeadbeef"}, nil)
	s.items.On("GenerateRandomItem", mock.Anything, "gold", tier.RarityWeights).Return(drop, nil)
	// the grant rides inside the trade, ordered before the record
	s.executor.On("ExecuteAtomicTrade", mock.Anything, mock.MatchedBy(func(ops []domain.TradeOperation) bool {
		return len(ops) == 2 &&
			ops[0].Type == domain.TradeOpGrantItem &&
			ops[0].GrantItem.Username == domain.Username("bob") &&
			ops[0].GrantItem.Item == drop &&
			ops[1].Type == domain.TradeOpRecordTransaction
	})).Return(nil)
	s.boxes.On("RecordPurchase", mock.Anything, mock.MatchedBy(func(p *mysterybox.Purchase) bool {
		return p.TierId == "gold" && p.BuyerUsername == domain.Username("bob") && p.Item.Id == "item-1"
	})).Return(nil)

	res, err := im.VerifyAndCompleteMysteryBox(mockCtx, "gold", "header", s.buyer())
	s.Nil(err)
	s.True(res.Success)
	s.Equal("item-1", res.Item.Id)

	s.items.AssertExpectations(s.T())
	s.boxes.AssertExpectations(s.T())
	s.items.AssertNotCalled(s.T(), "GrantItemToUser", mock.Anything, mock.Anything, mock.Anything)
	s.executor.AssertExpectations(s.T())
}

func (s *testSuite) TestVerifyAndCompleteMysteryBoxTradeFailure() {
	im := s.build(Config{TreasuryWallet: "0xtreasury"})
	tier := &mysterybox.Tier{Id: "gold", PriceUSDC: decimal.NewFromInt(25), RarityWeights: domain.RarityWeights{"rare": 1}}
	drop := &domain.Item{Id: "item-1", Type: "mystery_box_drop", Rarity: "rare"}

	s.boxes.On("GetTier", mock.Anything, "gold").Return(tier, nil)
	s.payments.On("VerifyPayment", mock.Anything, mock.Anything).
		Return(&domain.VerifyPaymentResult{TxHash: "0xdeadbeef"}, nil)
	s.items.On("GenerateRandomItem", mock.Anything, "gold", tier.RarityWeights).Return(drop, nil)
	s.executor.On("ExecuteAtomicTrade", mock.Anything, mock.Anything).Return(domain.ErrTradeFailed)

	_, err := im.VerifyAndCompleteMysteryBox(mockCtx, "gold", "header", s.buyer())
	s.ErrorIs(err, domain.ErrTradeFailed)

	// the executor owns the grant and its rollback; nothing is handed
	// out around it and no audit record is written
	s.items.AssertNotCalled(s.T(), "GrantItemToUser", mock.Anything, mock.Anything, mock.Anything)
	s.boxes.AssertNotCalled(s.T(), "RecordPurchase", mock.Anything, mock.Anything)
}

func (s *testSuite) TestVerifyAndCompleteMysteryBoxBadProofRollsNothing() {
	im := s.build(Config{})
	tier := &mysterybox.Tier{Id: "gold", PriceUSDC: decimal.NewFromInt(25)}
	s.boxes.On("GetTier", mock.Anything, "gold").Return(tier, nil)
	s.payments.On("VerifyPayment", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidPayment)

	_, err := im.VerifyAndCompleteMysteryBox(mockCtx, "gold", "bad", s.buyer())
	s.ErrorIs(err, domain.ErrInvalidPayment)

	s.items.AssertNotCalled(s.T(), "GenerateRandomItem", mock.Anything, mock.Anything, mock.Anything)
}

func (s *testSuite) TestGetMysteryBoxTiers() {
	im := s.build(Config{})
	tiers := []*mysterybox.Tier{{Id: "bronze"}, {Id: "gold"}}
	s.boxes.On("GetTiers", mock.Anything).Return(tiers, nil)

	res, err := im.GetMysteryBoxTiers(mockCtx)
	s.Nil(err)
	s.Len(res, 2)
}
