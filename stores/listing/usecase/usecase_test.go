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
	mDomain "github.com/tradeloot/goapi/domain/mocks"
)

var mockCtx = ctx.Background()

type testSuite struct {
	suite.Suite

	listingRepo *mListing.Repo
	items       *mDomain.ItemAdapter
	im          listing.UseCase
}

func TestSuite(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) SetupTest() {
	s.listingRepo = &mListing.Repo{}
	s.items = &mDomain.ItemAdapter{}
	s.im = New(s.listingRepo, s.items)
}

func (s *testSuite) validParams() listing.CreateListingParams {
	return listing.CreateListingParams{
		ItemId:         "sword-1",
		ItemType:       "weapon",
		SellerUsername: "alice",
		SellerWallet:   "0xabc",
		PriceUSDC:      decimal.NewFromFloat(12.5),
	}
}

func (s *testSuite) TestCreateListing() {
	s.items.On("ItemExists", mock.Anything, "sword-1").Return(true, nil)
	s.items.On("OwnsItem", mock.Anything, domain.Username("alice"), "sword-1").Return(true, nil)
	s.items.On("LockItem", mock.Anything, domain.Username("alice"), "sword-1").Return(nil)
	s.listingRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	l, err := s.im.CreateListing(mockCtx, s.validParams())
	s.Nil(err)
	s.NotEmpty(l.Id)
	s.Equal(domain.ListingStatusActive, l.Status)
	s.False(l.CreatedAt.IsZero())

	s.items.AssertExpectations(s.T())
	s.listingRepo.AssertExpectations(s.T())
}

func (s *testSuite) TestCreateListingMissingUsername() {
	params := s.validParams()
	params.SellerUsername = " "

	_, err := s.im.CreateListing(mockCtx, params)
	s.ErrorIs(err, domain.ErrMissingUsername)
}

func (s *testSuite) TestCreateListingNotOwned() {
	s.items.On("ItemExists", mock.Anything, "sword-1").Return(true, nil)
	s.items.On("OwnsItem", mock.Anything, domain.Username("alice"), "sword-1").Return(false, nil)

	_, err := s.im.CreateListing(mockCtx, s.validParams())
	s.ErrorIs(err, domain.ErrItemNotOwned)
	s.items.AssertNotCalled(s.T(), "LockItem", mock.Anything, mock.Anything, mock.Anything)
}

func (s *testSuite) TestCreateListingUnknownItem() {
	s.items.On("ItemExists", mock.Anything, "sword-1").Return(false, nil)

	_, err := s.im.CreateListing(mockCtx, s.validParams())
	s.ErrorIs(err, domain.ErrItemNotOwned)
}

func (s *testSuite) TestCreateListingItemLocked() {
	s.items.On("ItemExists", mock.Anything, "sword-1").Return(true, nil)
	s.items.On("OwnsItem", mock.Anything, domain.Username("alice"), "sword-1").Return(true, nil)
	s.items.On("LockItem", mock.Anything, domain.Username("alice"), "sword-1").Return(domain.ErrItemLocked)

	_, err := s.im.CreateListing(mockCtx, s.validParams())
	s.ErrorIs(err, domain.ErrItemLocked)
	s.listingRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *testSuite) TestCreateListingPersistFailureReleasesLock() {
	s.items.On("ItemExists", mock.Anything, "sword-1").Return(true, nil)
	s.items.On("OwnsItem", mock.Anything, domain.Username("alice"), "sword-1").Return(true, nil)
	s.items.On("LockItem", mock.Anything, domain.Username("alice"), "sword-1").Return(nil)
	s.listingRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrInternal)
	s.items.On("UnlockItem", mock.Anything, domain.Username("alice"), "sword-1").Return(nil).Once()

	_, err := s.im.CreateListing(mockCtx, s.validParams())
	s.ErrorIs(err, domain.ErrListingCreate)
	s.items.AssertExpectations(s.T())
}

func (s *testSuite) TestCancelListing() {
	l := &listing.Listing{Id: "l1", ItemId: "sword-1", SellerUsername: "alice", Status: domain.ListingStatusActive}
	s.listingRepo.On("FindOne", mock.Anything, "l1").Return(l, nil)
	s.listingRepo.On("UpdateStatus", mock.Anything, "l1", domain.ListingStatusActive, domain.ListingStatusCancelled).Return(nil)
	s.items.On("UnlockItem", mock.Anything, domain.Username("alice"), "sword-1").Return(nil).Once()

	res, err := s.im.CancelListing(mockCtx, "l1", "alice")
	s.Nil(err)
	s.Equal(domain.ListingStatusCancelled, res.Status)
	s.items.AssertExpectations(s.T())
}

func (s *testSuite) TestCancelListingNotFound() {
	s.listingRepo.On("FindOne", mock.Anything, "l1").Return(nil, domain.ErrNotFound)

	_, err := s.im.CancelListing(mockCtx, "l1", "alice")
	s.ErrorIs(err, domain.ErrListingNotFound)
}

func (s *testSuite) TestCancelListingWrongSeller() {
	l := &listing.Listing{Id: "l1", ItemId: "sword-1", SellerUsername: "alice", Status: domain.ListingStatusActive}
	s.listingRepo.On("FindOne", mock.Anything, "l1").Return(l, nil)

	_, err := s.im.CancelListing(mockCtx, "l1", "mallory")
	s.ErrorIs(err, domain.ErrNotTheSeller)
	s.listingRepo.AssertNotCalled(s.T(), "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *testSuite) TestCancelListingAlreadyTerminal() {
	l := &listing.Listing{Id: "l1", ItemId: "sword-1", SellerUsername: "alice", Status: domain.ListingStatusSold}
	s.listingRepo.On("FindOne", mock.Anything, "l1").Return(l, nil)
	s.listingRepo.On("UpdateStatus", mock.Anything, "l1", domain.ListingStatusActive, domain.ListingStatusCancelled).Return(domain.ErrListingNotActive)

	_, err := s.im.CancelListing(mockCtx, "l1", "alice")
	s.ErrorIs(err, domain.ErrListingNotActive)
	s.items.AssertNotCalled(s.T(), "UnlockItem", mock.Anything, mock.Anything, mock.Anything)
}

func (s *testSuite) TestCancelListingUnlockFailureIsSwallowed() {
	l := &listing.Listing{Id: "l1", ItemId: "sword-1", SellerUsername: "alice", Status: domain.ListingStatusActive}
	s.listingRepo.On("FindOne", mock.Anything, "l1").Return(l, nil)
	s.listingRepo.On("UpdateStatus", mock.Anything, "l1", domain.ListingStatusActive, domain.ListingStatusCancelled).Return(nil)
	s.items.On("UnlockItem", mock.Anything, domain.Username("alice"), "sword-1").Return(domain.ErrItemNotFound)

	res, err := s.im.CancelListing(mockCtx, "l1", "alice")
	s.Nil(err)
	s.Equal(domain.ListingStatusCancelled, res.Status)
}

func (s *testSuite) TestGetActiveListings() {
	page := &listing.Page{Items: []*listing.Listing{{Id: "l1"}}, Total: 1}
	s.listingRepo.On("FindActive", mock.Anything, mock.Anything).Return(page, nil)

	res, err := s.im.GetActiveListings(mockCtx, listing.WithLimit(20))
	s.Nil(err)
	s.Equal(1, res.Total)
}

func (s *testSuite) TestGetListingsByUser() {
	s.listingRepo.On("FindAll", mock.Anything, mock.Anything).Return([]*listing.Listing{{Id: "l1"}}, nil)

	res, err := s.im.GetListingsByUser(mockCtx, "alice")
	s.Nil(err)
	s.Len(res, 1)

	_, err = s.im.GetListingsByUser(mockCtx, "")
	s.ErrorIs(err, domain.ErrMissingUsername)
}

func (s *testSuite) TestGetListing() {
	s.listingRepo.On("FindOne", mock.Anything, "l1").Return(&listing.Listing{Id: "l1"}, nil)
	s.listingRepo.On("FindOne", mock.Anything, "nope").Return(nil, domain.ErrNotFound)

	res, err := s.im.GetListing(mockCtx, "l1")
	s.Nil(err)
	s.Equal("l1", res.Id)

	_, err = s.im.GetListing(mockCtx, "nope")
	s.ErrorIs(err, domain.ErrListingNotFound)
}
