package inventory

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tradeloot/goapi/base/ctx"
	"github.com/tradeloot/goapi/base/log"
	"github.com/tradeloot/goapi/domain"
)

// impl is a memory-backed domain.ItemAdapter. It stands in for the game
// backend that owns real item state. All operations are safe for
// concurrent use; lock state is held per item and at most one holder.
type impl struct {
	mu     sync.RWMutex
	items  map[string]*domain.Item
	owners map[string]domain.Username
	locks  map[string]domain.Username
	rnd    *rand.Rand
	rndMu  sync.Mutex
}

type Option func(*impl)

// WithSeed fixes the random source, making item generation
// deterministic.
func WithSeed(seed int64) Option {
	return func(im *impl) {
		im.rnd = rand.New(rand.NewSource(seed))
	}
}

func New(opts ...Option) domain.ItemAdapter {
	im := &impl{
		items:  map[string]*domain.Item{},
		owners: map[string]domain.Username{},
		locks:  map[string]domain.Username{},
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(im)
	}
	return im
}

// AddItem seeds an owned item. Intended for startup fixtures and tests.
func AddItem(adapter domain.ItemAdapter, owner domain.Username, item *domain.Item) {
	im := adapter.(*impl)
	im.mu.Lock()
	defer im.mu.Unlock()
	im.items[item.Id] = item
	im.owners[item.Id] = owner
}

func (im *impl) ItemExists(c ctx.Ctx, itemId string) (bool, error) {
	im.mu.RLock()
	defer im.mu.RUnlock()
	_, ok := im.items[itemId]
	return ok, nil
}

func (im *impl) OwnsItem(c ctx.Ctx, username domain.Username, itemId string) (bool, error) {
	im.mu.RLock()
	defer im.mu.RUnlock()
	owner, ok := im.owners[itemId]
	return ok && owner.Equals(username), nil
}

func (im *impl) GetItem(c ctx.Ctx, itemId string) (*domain.Item, error) {
	im.mu.RLock()
	defer im.mu.RUnlock()
	item, ok := im.items[itemId]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	cp := *item
	return &cp, nil
}

func (im *impl) LockItem(c ctx.Ctx, username domain.Username, itemId string) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	if _, ok := im.items[itemId]; !ok {
		return domain.ErrItemNotFound
	}
	if holder, ok := im.locks[itemId]; ok {
		c.WithFields(log.Fields{
			"itemId": itemId,
			"holder": holder,
		}).Warn("item already locked")
		return domain.ErrItemLocked
	}
	im.locks[itemId] = username
	return nil
}

func (im *impl) UnlockItem(c ctx.Ctx, username domain.Username, itemId string) error {
	im.mu.Lock()
	defer im.mu.Unlock()
	delete(im.locks, itemId)
	return nil
}

// TransferItem moves ownership and releases the lock in the same
// critical section, so the item is never observable as both locked and
// owned by the buyer.
func (im *impl) TransferItem(c ctx.Ctx, itemId string, from, to domain.Username) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	owner, ok := im.owners[itemId]
	if !ok {
		return domain.ErrItemNotFound
	}
	if !owner.Equals(from) {
		return domain.ErrItemNotOwned.WithMessagef("item %s is not owned by %s", itemId, from)
	}
	im.owners[itemId] = to
	delete(im.locks, itemId)
	return nil
}

func (im *impl) GenerateRandomItem(c ctx.Ctx, tierId string, weights domain.RarityWeights) (*domain.Item, error) {
	rarity, err := im.rollRarity(weights)
	if err != nil {
		return nil, err
	}
	return &domain.Item{
		Id:     uuid.New().String(),
		Type:   "mystery_box_drop",
		Rarity: rarity,
		Data: map[string]interface{}{
			"tierId": tierId,
		},
	}, nil
}

func (im *impl) GrantItemToUser(c ctx.Ctx, username domain.Username, item *domain.Item) error {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.items[item.Id] = item
	im.owners[item.Id] = username
	return nil
}

func (im *impl) RevokeItemFromUser(c ctx.Ctx, username domain.Username, item *domain.Item) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	owner, ok := im.owners[item.Id]
	if !ok {
		return domain.ErrItemNotFound
	}
	if !owner.Equals(username) {
		return domain.ErrItemNotOwned.WithMessagef("item %s is not owned by %s", item.Id, username)
	}
	delete(im.items, item.Id)
	delete(im.owners, item.Id)
	delete(im.locks, item.Id)
	return nil
}

// rollRarity draws one rarity proportionally to its relative weight.
// Rarities are visited in sorted order so a seeded source replays the
// same sequence.
func (im *impl) rollRarity(weights domain.RarityWeights) (domain.Rarity, error) {
	total := 0
	rarities := make([]domain.Rarity, 0, len(weights))
	for rarity, weight := range weights {
		if weight <= 0 {
			continue
		}
		total += weight
		rarities = append(rarities, rarity)
	}
	if total == 0 {
		return "", domain.ErrInvalidParam.WithMessagef("rarity weights are empty")
	}
	sort.Slice(rarities, func(i, j int) bool { return rarities[i] < rarities[j] })

	im.rndMu.Lock()
	roll := im.rnd.Intn(total)
	im.rndMu.Unlock()

	for _, rarity := range rarities {
		roll -= weights[rarity]
		if roll < 0 {
			return rarity, nil
		}
	}
	return rarities[len(rarities)-1], nil
}
