package model

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseStatus_String(t *testing.T) {
	assert.Equal(t, "OK", StatusOK.String())
	assert.Equal(t, "UNKNOWN_ITEM", StatusUnknownItem.String())
	assert.Equal(t, "USER_HAS_LOW_BALANCE", StatusUserHasLowBalance.String())
	assert.Equal(t, "INSUFFICIENT_ITEMS_STOCK", StatusInsufficientItemsStock.String())
	assert.Equal(t, "PurchaseStatus(9)", PurchaseStatus(9).String())
}

func TestPurchaseStatus_JSON(t *testing.T) {
	data, err := json.Marshal(map[string]PurchaseStatus{"status": StatusUserHasLowBalance})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"USER_HAS_LOW_BALANCE"}`, string(data))

	_, err = json.Marshal(PurchaseStatus(9))
	assert.Error(t, err)
}

func TestOrder_TotalAndQuantities(t *testing.T) {
	pen := NewItem(1, "pen", decimal.RequireFromString("1.25"))
	book := NewItem(2, "book", decimal.NewFromInt(10))
	order := NewOrder(NewUser("Tom", decimal.Zero), pen, book, pen)

	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Equal(t, "12.5", order.Total().String())
	assert.Equal(t, map[int64]int64{1: 2, 2: 1}, order.Quantities())
}

func TestOrder_ItemsIsACopy(t *testing.T) {
	pen := NewItem(1, "pen", decimal.NewFromInt(1))
	items := []Item{pen}
	order := NewOrder(NewUser("Tom", decimal.Zero), items...)

	items[0] = NewItem(2, "book", decimal.NewFromInt(10))
	got := order.Items()
	got[0].ID = 99

	assert.Equal(t, int64(1), order.Items()[0].ID)
}

func TestEmptyOrder(t *testing.T) {
	order := NewOrder(NewUser("Tom", decimal.Zero))

	assert.True(t, order.Total().IsZero())
	assert.Empty(t, order.Quantities())
}

func TestPreconditions(t *testing.T) {
	assert.Panics(t, func() { NewOrder(nil) })
	assert.Panics(t, func() { NewItem(1, "refund", decimal.NewFromInt(-1)) })
}

func TestUser_UpdateBalance(t *testing.T) {
	user := NewUser("Tom", decimal.NewFromInt(10))

	user.UpdateBalance(func(current decimal.Decimal) (decimal.Decimal, bool) {
		return current.Sub(decimal.NewFromInt(4)), false
	})
	assert.Equal(t, "10", user.Balance().String())

	user.UpdateBalance(func(current decimal.Decimal) (decimal.Decimal, bool) {
		return current.Sub(decimal.NewFromInt(4)), true
	})
	assert.Equal(t, "6", user.Balance().String())
}
