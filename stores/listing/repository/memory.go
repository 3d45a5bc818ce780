package repository

import (
	"encoding/base64"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/tradeloot/goapi/base/ctx"
	"github.com/tradeloot/goapi/domain"
	"github.com/tradeloot/goapi/domain/listing"
)

var activeSortOrders = []listing.SortBy{
	listing.SortByNewest,
	listing.SortByPriceLow,
	listing.SortByPriceHigh,
}

// memoryRepo is the reference listing store. Writes go through a single
// mutex, so UpdateStatus is a true compare-and-set: concurrent
// settlements of the same listing serialize and exactly one observes
// the active state.
//
// The active set is kept as one pre-sorted slice per sort order,
// updated under the same lock as every status write. Reads page
// straight off the index and never rescan the full listing map.
type memoryRepo struct {
	mu       sync.RWMutex
	listings map[string]*listing.Listing
	active   map[listing.SortBy][]*listing.Listing
}

func NewMemory() listing.Repo {
	r := &memoryRepo{
		listings: map[string]*listing.Listing{},
		active:   map[listing.SortBy][]*listing.Listing{},
	}
	for _, sortBy := range activeSortOrders {
		r.active[sortBy] = []*listing.Listing{}
	}
	return r
}

func (r *memoryRepo) FindOne(c ctx.Ctx, id string) (*listing.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.listings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (r *memoryRepo) Create(c ctx.Ctx, l *listing.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *l
	r.listings[cp.Id] = &cp
	if cp.IsActive() {
		r.indexInsert(&cp)
	}
	return nil
}

func (r *memoryRepo) UpdateStatus(c ctx.Ctx, id string, from, to domain.ListingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.listings[id]
	if !ok {
		return domain.ErrNotFound
	}
	if l.Status != from {
		return domain.ErrListingNotActive
	}
	if !from.CanTransitionTo(to) {
		return domain.ErrInvalidParam.WithMessagef("cannot transition listing from %s to %s", from, to)
	}
	l.Status = to
	if from == domain.ListingStatusActive {
		r.indexRemove(l)
	}
	return nil
}

// RevertStatus undoes a lifecycle transition during trade rollback. It
// bypasses the one-way transition guard and must not be reachable from
// the API surface.
func (r *memoryRepo) RevertStatus(c ctx.Ctx, id string, from, to domain.ListingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.listings[id]
	if !ok {
		return domain.ErrNotFound
	}
	if l.Status != from {
		return domain.ErrInvalidParam.WithMessagef("listing %s is %s, not %s", id, l.Status, from)
	}
	l.Status = to
	if to == domain.ListingStatusActive {
		r.indexInsert(l)
	}
	return nil
}

// indexInsert places l into every sorted view at its order position.
// Caller must hold r.mu.
func (r *memoryRepo) indexInsert(l *listing.Listing) {
	for _, sortBy := range activeSortOrders {
		view := r.active[sortBy]
		at := sort.Search(len(view), func(i int) bool { return less(sortBy, l, view[i]) })
		view = append(view, nil)
		copy(view[at+1:], view[at:])
		view[at] = l
		r.active[sortBy] = view
	}
}

// indexRemove drops l from every sorted view. Caller must hold r.mu.
func (r *memoryRepo) indexRemove(l *listing.Listing) {
	for _, sortBy := range activeSortOrders {
		view := r.active[sortBy]
		for i, entry := range view {
			if entry.Id == l.Id {
				r.active[sortBy] = append(view[:i], view[i+1:]...)
				break
			}
		}
	}
}

func (r *memoryRepo) FindActive(c ctx.Ctx, optFns ...listing.FindAllOptionsFunc) (*listing.Page, error) {
	opts, err := listing.GetFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}

	sortBy := listing.SortByNewest
	if opts.SortBy != nil {
		sortBy = *opts.SortBy
	}
	limit := listing.DefaultLimit
	if opts.Limit != nil {
		limit = *opts.Limit
	}

	r.mu.RLock()
	view := r.active[sortBy]
	matched := make([]*listing.Listing, 0, len(view))
	for _, l := range view {
		if opts.SellerUsername != nil && !l.SellerUsername.Equals(*opts.SellerUsername) {
			continue
		}
		cp := *l
		matched = append(matched, &cp)
	}
	r.mu.RUnlock()

	start := 0
	if opts.Cursor != nil && *opts.Cursor != "" {
		anchor, err := decodeCursor(*opts.Cursor)
		if err != nil {
			return nil, err
		}
		for start < len(matched) && !anchor.before(sortBy, matched[start]) {
			start++
		}
	}

	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	page := &listing.Page{
		Items: matched[start:end],
		Total: len(matched),
	}
	if end < len(matched) {
		page.NextCursor = encodeCursor(sortBy, matched[end-1])
	}
	return page, nil
}

func (r *memoryRepo) FindAll(c ctx.Ctx, optFns ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	opts, err := listing.GetFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	matched := make([]*listing.Listing, 0, len(r.listings))
	for _, l := range r.listings {
		if opts.SellerUsername != nil && !l.SellerUsername.Equals(*opts.SellerUsername) {
			continue
		}
		if opts.Status != nil && l.Status != *opts.Status {
			continue
		}
		cp := *l
		matched = append(matched, &cp)
	}
	r.mu.RUnlock()

	sortBy := listing.SortByNewest
	if opts.SortBy != nil {
		sortBy = *opts.SortBy
	}
	sort.Slice(matched, func(i, j int) bool { return less(sortBy, matched[i], matched[j]) })
	return matched, nil
}

// less orders listings for a sort mode with the listing id as the
// deterministic tie break, so paging never skips or repeats entries.
func less(sortBy listing.SortBy, a, b *listing.Listing) bool {
	switch sortBy {
	case listing.SortByPriceLow:
		if cmp := a.PriceUSDC.Cmp(b.PriceUSDC); cmp != 0 {
			return cmp < 0
		}
	case listing.SortByPriceHigh:
		if cmp := a.PriceUSDC.Cmp(b.PriceUSDC); cmp != 0 {
			return cmp > 0
		}
	default:
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
	}
	return a.Id < b.Id
}

// cursor is the key-set paging anchor: the sort key and id of the last
// listing of the previous page. It stays valid when that listing is
// sold or cancelled between requests.
type cursor struct {
	key string
	id  string
}

func encodeCursor(sortBy listing.SortBy, l *listing.Listing) string {
	var key string
	switch sortBy {
	case listing.SortByPriceLow, listing.SortByPriceHigh:
		key = l.PriceUSDC.String()
	default:
		key = strconv.FormatInt(l.CreatedAt.UnixNano(), 10)
	}
	return base64.StdEncoding.EncodeToString([]byte(key + ":" + l.Id))
}

func decodeCursor(raw string) (*cursor, error) {
	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, domain.ErrInvalidParam.WithMessagef("malformed cursor").WithCause(err)
	}
	parts := strings.SplitN(string(decoded), ":", 2)
	if len(parts) != 2 {
		return nil, domain.ErrInvalidParam.WithMessagef("malformed cursor")
	}
	return &cursor{key: parts[0], id: parts[1]}, nil
}

// before reports whether the anchor strictly precedes l in the sort
// order, i.e. l belongs to the next page.
func (cur *cursor) before(sortBy listing.SortBy, l *listing.Listing) bool {
	switch sortBy {
	case listing.SortByPriceLow:
		k, err := decimal.NewFromString(cur.key)
		if err != nil {
			return true
		}
		if cmp := l.PriceUSDC.Cmp(k); cmp != 0 {
			return cmp > 0
		}
	case listing.SortByPriceHigh:
		k, err := decimal.NewFromString(cur.key)
		if err != nil {
			return true
		}
		if cmp := l.PriceUSDC.Cmp(k); cmp != 0 {
			return cmp < 0
		}
	default:
		k, err := strconv.ParseInt(cur.key, 10, 64)
		if err != nil {
			return true
		}
		if n := l.CreatedAt.UnixNano(); n != k {
			return n < k
		}
	}
	return l.Id > cur.id
}
