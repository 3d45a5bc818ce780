package domain

import (
	"strings"
)

// Table names a storage collection.
type Table string

const (
	TableListings            Table = "listings"
	TableTransactions        Table = "transactions"
	TableMysteryBoxTiers     Table = "mystery_box_tiers"
	TableMysteryBoxPurchases Table = "mystery_box_purchases"
)

type SortDir int8

const (
	SortDirAsc  SortDir = 1
	SortDirDesc SortDir = -1
)

// Username identifies a player account in the surrounding game backend.
type Username string

func (u Username) IsEmpty() bool {
	return len(strings.TrimSpace(string(u))) == 0
}

func (u Username) Equals(o Username) bool {
	return string(u) == string(o)
}

// WalletAddress is an on-chain receiving address. The engine treats it
// as opaque except for case-insensitive comparison.
type WalletAddress string

func (a WalletAddress) ToLower() WalletAddress {
	return WalletAddress(strings.ToLower(string(a)))
}

func (a WalletAddress) IsEmpty() bool {
	return len(a) == 0
}

func (a WalletAddress) Equals(b WalletAddress) bool {
	return strings.EqualFold(string(a), string(b))
}

type TxHash string

func (h TxHash) String() string {
	return string(h)
}

// ListingStatus is the listing lifecycle state. Transitions are one-way:
// active -> sold, active -> cancelled.
type ListingStatus string

const (
	ListingStatusActive    ListingStatus = "active"
	ListingStatusSold      ListingStatus = "sold"
	ListingStatusCancelled ListingStatus = "cancelled"
)

func (s ListingStatus) IsTerminal() bool {
	return s == ListingStatusSold || s == ListingStatusCancelled
}

func (s ListingStatus) IsValid() bool {
	switch s {
	case ListingStatusActive, ListingStatusSold, ListingStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the one-way lifecycle permits s -> to.
func (s ListingStatus) CanTransitionTo(to ListingStatus) bool {
	return s == ListingStatusActive && to.IsTerminal()
}
