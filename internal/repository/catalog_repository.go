package repository

import (
	"context"
	"fmt"

	"fsanano/go-shop/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// CatalogRepository reads the starting state of the shop. It never writes:
// purchases only change the in-memory copy.
type CatalogRepository struct {
	db Querier
}

func NewCatalogRepository(db Querier) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Catalog is everything needed to start serving purchases.
type Catalog struct {
	Items []model.Item
	Stock map[int64]int64
	Users []*model.User
}

// LoadCatalog loads items with their stock levels and users concurrently.
func (r *CatalogRepository) LoadCatalog(ctx context.Context) (*Catalog, error) {
	g, ctx := errgroup.WithContext(ctx)
	var catalog Catalog

	g.Go(func() error {
		var err error
		catalog.Items, catalog.Stock, err = r.LoadItems(ctx)
		return err
	})

	g.Go(func() error {
		var err error
		catalog.Users, err = r.LoadUsers(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// LoadItems returns every catalog entry with its cost, plus the available
// quantity by item id. Both come from the same rows so every stocked id has a
// catalog entry.
func (r *CatalogRepository) LoadItems(ctx context.Context) ([]model.Item, map[int64]int64, error) {
	rows, err := r.db.Query(ctx, "SELECT id, name, price::text, stock FROM items ORDER BY id")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	stock := make(map[int64]int64)
	for rows.Next() {
		var (
			id    int64
			name  string
			price string
			qty   int64
		)
		if err := rows.Scan(&id, &name, &price, &qty); err != nil {
			return nil, nil, fmt.Errorf("failed to scan item: %w", err)
		}
		cost, err := decimal.NewFromString(price)
		if err != nil {
			return nil, nil, fmt.Errorf("item %d: bad price %q: %w", id, price, err)
		}
		if cost.IsNegative() {
			return nil, nil, fmt.Errorf("item %d: negative price %s", id, cost)
		}
		if qty < 0 {
			return nil, nil, fmt.Errorf("item %d: negative stock %d", id, qty)
		}
		items = append(items, model.NewItem(id, name, cost))
		stock[id] = qty
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read items: %w", err)
	}
	return items, stock, nil
}

// LoadUsers returns every customer with their current balance.
func (r *CatalogRepository) LoadUsers(ctx context.Context) ([]*model.User, error) {
	rows, err := r.db.Query(ctx, "SELECT id, first_name, balance::text FROM users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		var (
			id      int64
			name    string
			balance string
		)
		if err := rows.Scan(&id, &name, &balance); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		amount, err := decimal.NewFromString(balance)
		if err != nil {
			return nil, fmt.Errorf("user %d: bad balance %q: %w", id, balance, err)
		}
		user := model.NewUser(name, amount)
		user.ID = id
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}
	return users, nil
}
