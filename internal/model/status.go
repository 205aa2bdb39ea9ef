package model

import "fmt"

// PurchaseStatus is the outcome of a purchase attempt.
type PurchaseStatus int

const (
	StatusOK PurchaseStatus = iota
	StatusUnknownItem
	StatusUserHasLowBalance
	StatusInsufficientItemsStock
)

var statusNames = map[PurchaseStatus]string{
	StatusOK:                     "OK",
	StatusUnknownItem:            "UNKNOWN_ITEM",
	StatusUserHasLowBalance:      "USER_HAS_LOW_BALANCE",
	StatusInsufficientItemsStock: "INSUFFICIENT_ITEMS_STOCK",
}

func (s PurchaseStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("PurchaseStatus(%d)", int(s))
}

func (s PurchaseStatus) MarshalText() ([]byte, error) {
	name, ok := statusNames[s]
	if !ok {
		return nil, fmt.Errorf("unknown purchase status %d", int(s))
	}
	return []byte(name), nil
}
