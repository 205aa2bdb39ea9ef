package model

import (
	"sync"

	"github.com/shopspring/decimal"
)

// User is a customer. The balance is only changed through UpdateBalance.
type User struct {
	ID   int64
	Name string

	mu      sync.Mutex
	balance decimal.Decimal
}

func NewUser(name string, balance decimal.Decimal) *User {
	return &User{Name: name, balance: balance}
}

func (u *User) Balance() decimal.Decimal {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.balance
}

// UpdateBalance runs fn with the user locked. The value returned by fn is
// stored only when fn reports commit.
func (u *User) UpdateBalance(fn func(current decimal.Decimal) (next decimal.Decimal, commit bool)) {
	u.mu.Lock()
	defer u.mu.Unlock()

	next, commit := fn(u.balance)
	if commit {
		u.balance = next
	}
}
