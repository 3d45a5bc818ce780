package domain

import (
	"github.com/tradeloot/goapi/base/ctx"
)

// Rarity is a loot rarity label, e.g. "common" or "legendary".
type Rarity string

// RarityWeights maps rarity label to a positive relative weight. Weights
// do not need to sum to 100.
type RarityWeights map[Rarity]int

// Item is the traded good. Data is an opaque payload owned by the game
// backend; the engine stores and forwards it untouched.
type Item struct {
	Id     string                 `json:"id" bson:"id"`
	Type   string                 `json:"type" bson:"type"`
	Rarity Rarity                 `json:"rarity,omitempty" bson:"rarity,omitempty"`
	Data   map[string]interface{} `json:"data,omitempty" bson:"data,omitempty"`
}

// ItemAdapter is the contract the surrounding game backend satisfies.
// It owns item existence, ownership and lock state exclusively; the
// marketplace never mutates item state except through it.
type ItemAdapter interface {
	// ItemExists reports whether itemId refers to a known item.
	ItemExists(c ctx.Ctx, itemId string) (bool, error)

	// OwnsItem reports whether username currently owns itemId.
	OwnsItem(c ctx.Ctx, username Username, itemId string) (bool, error)

	// GetItem loads the item payload. Returns ErrItemNotFound when absent.
	GetItem(c ctx.Ctx, itemId string) (*Item, error)

	// LockItem takes an exclusive hold on the item, preventing
	// concurrent listing or transfer. Returns ErrItemLocked when the
	// item is already held.
	LockItem(c ctx.Ctx, username Username, itemId string) error

	// UnlockItem releases the hold taken by LockItem.
	UnlockItem(c ctx.Ctx, username Username, itemId string) error

	// TransferItem moves ownership from -> to and releases the lock held
	// on the item.
	TransferItem(c ctx.Ctx, itemId string, from, to Username) error

	// GenerateRandomItem rolls a new item for a mystery box tier using
	// the tier's relative rarity weights.
	GenerateRandomItem(c ctx.Ctx, tierId string, weights RarityWeights) (*Item, error)

	// GrantItemToUser assigns a freshly generated item to username.
	GrantItemToUser(c ctx.Ctx, username Username, item *Item) error

	// RevokeItemFromUser removes a previously granted item. Used only to
	// compensate a grant whose enclosing trade failed.
	RevokeItemFromUser(c ctx.Ctx, username Username, item *Item) error
}
