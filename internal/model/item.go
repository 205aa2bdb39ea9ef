package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Item is a catalog entry. Two items with the same ID are the same entry.
type Item struct {
	ID   int64           `json:"id"`
	Name string          `json:"name,omitempty"`
	Cost decimal.Decimal `json:"cost"`
}

func NewItem(id int64, name string, cost decimal.Decimal) Item {
	if cost.IsNegative() {
		panic(fmt.Sprintf("model: item %d has negative cost %s", id, cost))
	}
	return Item{ID: id, Name: name, Cost: cost}
}
