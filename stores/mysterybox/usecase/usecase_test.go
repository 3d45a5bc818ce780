package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tradeloot/goapi/base/ctx"
	"github.com/tradeloot/goapi/domain"
	"github.com/tradeloot/goapi/domain/mysterybox"
	mMysterybox "github.com/tradeloot/goapi/domain/mysterybox/mocks"
)

var mockCtx = ctx.Background()

type testSuite struct {
	suite.Suite

	tierRepo     *mMysterybox.TierRepo
	purchaseRepo *mMysterybox.PurchaseRepo
	im           mysterybox.UseCase
}

func TestSuite(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) SetupTest() {
	s.tierRepo = &mMysterybox.TierRepo{}
	s.purchaseRepo = &mMysterybox.PurchaseRepo{}
	s.im = New(s.tierRepo, s.purchaseRepo, nil)
}

func (s *testSuite) TestGetTier() {
	tier := &mysterybox.Tier{Id: "gold", Name: "Gold Box", PriceUSDC: decimal.NewFromInt(25)}
	s.tierRepo.On("FindOne", mock.Anything, "gold").Return(tier, nil).Once()

	res, err := s.im.GetTier(mockCtx, "gold")
	s.Nil(err)
	s.Equal("Gold Box", res.Name)

	// second read is served from cache
	res, err = s.im.GetTier(mockCtx, "gold")
	s.Nil(err)
	s.Equal("Gold Box", res.Name)

	s.tierRepo.AssertExpectations(s.T())
}

func (s *testSuite) TestGetTierNotFound() {
	s.tierRepo.On("FindOne", mock.Anything, "diamond").Return(nil, domain.ErrNotFound)

	_, err := s.im.GetTier(mockCtx, "diamond")
	s.ErrorIs(err, domain.ErrTierNotFound)
}

func (s *testSuite) TestGetTiers() {
	tiers := []*mysterybox.Tier{
		{Id: "bronze", PriceUSDC: decimal.NewFromInt(5)},
		{Id: "gold", PriceUSDC: decimal.NewFromInt(25)},
	}
	s.tierRepo.On("FindAll", mock.Anything).Return(tiers, nil).Once()

	res, err := s.im.GetTiers(mockCtx)
	s.Nil(err)
	s.Len(res, 2)

	res, err = s.im.GetTiers(mockCtx)
	s.Nil(err)
	s.Len(res, 2)

	s.tierRepo.AssertExpectations(s.T())
}

func (s *testSuite) TestSeedTiers() {
	tiers := []mysterybox.Tier{
		{Id: "bronze", PriceUSDC: decimal.NewFromInt(5)},
		{Id: "silver", PriceUSDC: decimal.NewFromInt(10)},
		{Id: "gold", PriceUSDC: decimal.NewFromInt(25)},
	}
	for i := range tiers {
		s.tierRepo.On("Upsert", mock.Anything, &tiers[i]).Return(nil).Once()
	}

	s.Nil(s.im.SeedTiers(mockCtx, tiers))
	s.tierRepo.AssertExpectations(s.T())
}

func (s *testSuite) TestSeedTiersInvalidatesCache() {
	stale := []*mysterybox.Tier{{Id: "bronze", PriceUSDC: decimal.NewFromInt(5)}}
	fresh := []*mysterybox.Tier{{Id: "bronze", PriceUSDC: decimal.NewFromInt(5)}, {Id: "gold", PriceUSDC: decimal.NewFromInt(25)}}

	s.tierRepo.On("FindAll", mock.Anything).Return(stale, nil).Once()
	res, err := s.im.GetTiers(mockCtx)
	s.Nil(err)
	s.Len(res, 1)

	s.tierRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	s.Nil(s.im.SeedTiers(mockCtx, []mysterybox.Tier{{Id: "gold", PriceUSDC: decimal.NewFromInt(25)}}))

	s.tierRepo.On("FindAll", mock.Anything).Return(fresh, nil).Once()
	res, err = s.im.GetTiers(mockCtx)
	s.Nil(err)
	s.Len(res, 2)

	s.tierRepo.AssertExpectations(s.T())
}

func (s *testSuite) TestRecordPurchase() {
	purchase := &mysterybox.Purchase{TierId: "gold", BuyerUsername: "bob", PriceUSDC: decimal.NewFromInt(25)}
	s.purchaseRepo.On("Create", mock.Anything, purchase).Return(nil).Once()

	s.Nil(s.im.RecordPurchase(mockCtx, purchase))
	s.NotEmpty(purchase.Id)
	s.False(purchase.Timestamp.IsZero())

	s.purchaseRepo.AssertExpectations(s.T())
}

func (s *testSuite) TestGetPurchasesByBuyer() {
	purchases := []*mysterybox.Purchase{{Id: "p1", BuyerUsername: "bob"}}
	s.purchaseRepo.On("FindByBuyer", mock.Anything, domain.Username("bob")).Return(purchases, nil).Once()

	res, err := s.im.GetPurchasesByBuyer(mockCtx, "bob")
	s.Nil(err)
	s.Len(res, 1)
}
