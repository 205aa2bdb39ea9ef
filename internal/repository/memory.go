package repository

import (
	"errors"
	"sort"
	"sync"

	"fsanano/go-shop/internal/model"
)

var ErrUserNotFound = errors.New("user not found")

// UserRegistry keeps customers in memory by id.
type UserRegistry struct {
	mu    sync.RWMutex
	users map[int64]*model.User
}

func NewUserRegistry(users ...*model.User) *UserRegistry {
	r := &UserRegistry{users: make(map[int64]*model.User, len(users))}
	for _, u := range users {
		r.add(u)
	}
	return r
}

func (r *UserRegistry) add(u *model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
}

func (r *UserRegistry) Get(id int64) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// ItemCatalog resolves item ids to catalog entries. It is read-only after
// construction.
type ItemCatalog struct {
	items map[int64]model.Item
}

func NewItemCatalog(items ...model.Item) *ItemCatalog {
	c := &ItemCatalog{items: make(map[int64]model.Item, len(items))}
	for _, item := range items {
		c.items[item.ID] = item
	}
	return c
}

// Resolve maps ids to catalog entries. ok is false when any id is not in the
// catalog; the returned items then hold only the ids that were found.
func (c *ItemCatalog) Resolve(ids []int64) (items []model.Item, ok bool) {
	items = make([]model.Item, 0, len(ids))
	ok = true
	for _, id := range ids {
		item, found := c.items[id]
		if !found {
			ok = false
			continue
		}
		items = append(items, item)
	}
	return items, ok
}

// All returns the catalog ordered by id.
func (c *ItemCatalog) All() []model.Item {
	items := make([]model.Item, 0, len(c.items))
	for _, item := range c.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}
