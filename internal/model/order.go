package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is one purchase attempt: a user plus the items they want, one
// element per unit.
type Order struct {
	ID   uuid.UUID
	User *User

	items []Item
}

// NewOrder panics on a nil user: an order without a buyer is a caller bug,
// not a purchase outcome.
func NewOrder(user *User, items ...Item) *Order {
	if user == nil {
		panic("model: order without user")
	}
	return &Order{
		ID:    uuid.New(),
		User:  user,
		items: append([]Item(nil), items...),
	}
}

func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// Total sums the item costs, once per occurrence.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Cost)
	}
	return total
}

// Quantities groups the order by item id.
func (o *Order) Quantities() map[int64]int64 {
	quantities := make(map[int64]int64, len(o.items))
	for _, item := range o.items {
		quantities[item.ID]++
	}
	return quantities
}
