package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/tradeloot/goapi/base/ctx"
	"github.com/tradeloot/goapi/domain"
	"github.com/tradeloot/goapi/domain/listing"
)

var mockCtx = ctx.Background()

type memorySuite struct {
	suite.Suite
	im listing.Repo
}

func (s *memorySuite) SetupTest() {
	s.im = NewMemory()
}

func TestMemorySuite(t *testing.T) {
	suite.Run(t, new(memorySuite))
}

func (s *memorySuite) addListing(id string, price int64, createdAt time.Time) *listing.Listing {
	l := &listing.Listing{
		Id:             id,
		ItemId:         "item-" + id,
		ItemType:       "weapon",
		SellerUsername: "alice",
		PriceUSDC:      decimal.NewFromInt(price),
		Status:         domain.ListingStatusActive,
		CreatedAt:      createdAt,
	}
	s.Require().NoError(s.im.Create(mockCtx, l))
	return l
}

func (s *memorySuite) TestFindOne() {
	base := time.Now()
	s.addListing("a", 10, base)

	l, err := s.im.FindOne(mockCtx, "a")
	s.Require().NoError(err)
	s.Equal("a", l.Id)

	_, err = s.im.FindOne(mockCtx, "missing")
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *memorySuite) TestUpdateStatus() {
	s.addListing("a", 10, time.Now())

	s.NoError(s.im.UpdateStatus(mockCtx, "a", domain.ListingStatusActive, domain.ListingStatusSold))

	l, err := s.im.FindOne(mockCtx, "a")
	s.Require().NoError(err)
	s.Equal(domain.ListingStatusSold, l.Status)

	// second settlement loses the compare-and-set
	s.ErrorIs(
		s.im.UpdateStatus(mockCtx, "a", domain.ListingStatusActive, domain.ListingStatusSold),
		domain.ErrListingNotActive,
	)

	s.ErrorIs(
		s.im.UpdateStatus(mockCtx, "missing", domain.ListingStatusActive, domain.ListingStatusSold),
		domain.ErrNotFound,
	)
}

func (s *memorySuite) TestUpdateStatusRejectsReverseTransition() {
	s.addListing("a", 10, time.Now())
	s.NoError(s.im.UpdateStatus(mockCtx, "a", domain.ListingStatusActive, domain.ListingStatusCancelled))
	s.Error(s.im.UpdateStatus(mockCtx, "a", domain.ListingStatusCancelled, domain.ListingStatusActive))
}

func (s *memorySuite) TestFindActiveSorting() {
	base := time.Now()
	s.addListing("a", 10, base)
	s.addListing("b", 5, base.Add(time.Second))
	s.addListing("c", 15, base.Add(2*time.Second))

	page, err := s.im.FindActive(mockCtx, listing.WithSortBy(listing.SortByPriceLow))
	s.Require().NoError(err)
	s.Require().Len(page.Items, 3)
	s.Equal([]string{"5", "10", "15"}, []string{page.Items[0].PriceUSDC.String(), page.Items[1].PriceUSDC.String(), page.Items[2].PriceUSDC.String()})

	page, err = s.im.FindActive(mockCtx, listing.WithSortBy(listing.SortByPriceHigh))
	s.Require().NoError(err)
	s.Equal("c", page.Items[0].Id)
	s.Equal("b", page.Items[2].Id)

	page, err = s.im.FindActive(mockCtx, listing.WithSortBy(listing.SortByNewest))
	s.Require().NoError(err)
	s.Equal("c", page.Items[0].Id)
	s.Equal("a", page.Items[2].Id)
}

func (s *memorySuite) TestFindActiveExcludesTerminal() {
	base := time.Now()
	s.addListing("a", 10, base)
	s.addListing("b", 20, base.Add(time.Second))
	s.Require().NoError(s.im.UpdateStatus(mockCtx, "a", domain.ListingStatusActive, domain.ListingStatusSold))

	page, err := s.im.FindActive(mockCtx)
	s.Require().NoError(err)
	s.Require().Len(page.Items, 1)
	s.Equal("b", page.Items[0].Id)
	s.Equal(1, page.Total)
}

// The active views are maintained by the status writes themselves, so a
// lifecycle transition is visible to every sort order without a rescan.
func (s *memorySuite) TestActiveIndexFollowsStatusWrites() {
	base := time.Now()
	s.addListing("a", 10, base)
	s.addListing("b", 5, base.Add(time.Second))
	s.addListing("c", 15, base.Add(2*time.Second))

	viewIds := func(sortBy listing.SortBy) []string {
		r := s.im.(*memoryRepo)
		r.mu.RLock()
		defer r.mu.RUnlock()
		ids := []string{}
		for _, l := range r.active[sortBy] {
			ids = append(ids, l.Id)
		}
		return ids
	}

	s.Equal([]string{"b", "a", "c"}, viewIds(listing.SortByPriceLow))
	s.Equal([]string{"c", "a", "b"}, viewIds(listing.SortByPriceHigh))
	s.Equal([]string{"c", "b", "a"}, viewIds(listing.SortByNewest))

	s.Require().NoError(s.im.UpdateStatus(mockCtx, "a", domain.ListingStatusActive, domain.ListingStatusSold))
	s.Equal([]string{"b", "c"}, viewIds(listing.SortByPriceLow))
	s.Equal([]string{"c", "b"}, viewIds(listing.SortByPriceHigh))
	s.Equal([]string{"c", "b"}, viewIds(listing.SortByNewest))

	page, err := s.im.FindActive(mockCtx, listing.WithSortBy(listing.SortByPriceLow))
	s.Require().NoError(err)
	s.Require().Len(page.Items, 2)
	s.Equal("b", page.Items[0].Id)
	s.Equal("c", page.Items[1].Id)

	// rollback puts the listing back at its sorted position
	reverter := s.im.(*memoryRepo)
	s.Require().NoError(reverter.RevertStatus(mockCtx, "a", domain.ListingStatusSold, domain.ListingStatusActive))
	s.Equal([]string{"b", "a", "c"}, viewIds(listing.SortByPriceLow))
	s.Equal([]string{"c", "b", "a"}, viewIds(listing.SortByNewest))
}

func (s *memorySuite) TestFindActivePagination() {
	base := time.Now()
	for i := 0; i < 5; i++ {
		s.addListing(fmt.Sprintf("l-%d", i), int64(i), base.Add(time.Duration(i)*time.Second))
	}

	seen := map[string]bool{}
	cursor := ""
	pages := 0
	for {
		opts := []listing.FindAllOptionsFunc{
			listing.WithSortBy(listing.SortByNewest),
			listing.WithLimit(2),
		}
		if cursor != "" {
			opts = append(opts, listing.WithCursor(cursor))
		}
		page, err := s.im.FindActive(mockCtx, opts...)
		s.Require().NoError(err)
		s.Equal(5, page.Total)
		for _, l := range page.Items {
			s.False(seen[l.Id], "listing %s repeated across pages", l.Id)
			seen[l.Id] = true
		}
		pages++
		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}

	s.Equal(3, pages)
	s.Len(seen, 5)
}

func (s *memorySuite) TestFindActivePaginationWithEqualPrices() {
	base := time.Now()
	for i := 0; i < 4; i++ {
		s.addListing(fmt.Sprintf("l-%d", i), 10, base.Add(time.Duration(i)*time.Second))
	}

	page1, err := s.im.FindActive(mockCtx, listing.WithSortBy(listing.SortByPriceLow), listing.WithLimit(2))
	s.Require().NoError(err)
	s.Require().Len(page1.Items, 2)
	s.Require().NotEmpty(page1.NextCursor)

	page2, err := s.im.FindActive(mockCtx, listing.WithSortBy(listing.SortByPriceLow), listing.WithLimit(2), listing.WithCursor(page1.NextCursor))
	s.Require().NoError(err)
	s.Require().Len(page2.Items, 2)
	s.NotEqual(page1.Items[0].Id, page2.Items[0].Id)
	s.NotEqual(page1.Items[1].Id, page2.Items[1].Id)
}

func (s *memorySuite) TestFindActiveBadCursor() {
	_, err := s.im.FindActive(mockCtx, listing.WithCursor("%%%not-base64%%%"))
	s.ErrorIs(err, domain.ErrInvalidParam)
}

func (s *memorySuite) TestFindAllBySeller() {
	base := time.Now()
	s.addListing("a", 10, base)
	l := &listing.Listing{
		Id:             "b",
		SellerUsername: "bob",
		PriceUSDC:      decimal.NewFromInt(5),
		Status:         domain.ListingStatusActive,
		CreatedAt:      base.Add(time.Second),
	}
	s.Require().NoError(s.im.Create(mockCtx, l))

	res, err := s.im.FindAll(mockCtx, listing.WithSeller("bob"))
	s.Require().NoError(err)
	s.Require().Len(res, 1)
	s.Equal("b", res[0].Id)
}
