package service

import (
	"fmt"
	"io"
	"sync"

	"fsanano/go-shop/internal/model"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Balances are kept to cents after every purchase.
const balancePlaces = 2

// Recorder receives the outcome of every purchase attempt.
type Recorder interface {
	Observe(status model.PurchaseStatus)
}

type nopRecorder struct{}

func (nopRecorder) Observe(model.PurchaseStatus) {}

type Option func(*ShopService)

func WithLogger(log logrus.FieldLogger) Option {
	return func(s *ShopService) {
		s.log = log
	}
}

func WithRecorder(r Recorder) Option {
	return func(s *ShopService) {
		s.recorder = r
	}
}

// ShopService owns the stock levels and executes purchases against them.
// Safe for concurrent use: one purchase at a time runs per service.
type ShopService struct {
	mu    sync.Mutex
	stock map[int64]int64

	log      logrus.FieldLogger
	recorder Recorder
}

func NewShopService(stock map[int64]int64, opts ...Option) *ShopService {
	owned := make(map[int64]int64, len(stock))
	for id, qty := range stock {
		if qty < 0 {
			panic(fmt.Sprintf("service: negative stock %d for item %d", qty, id))
		}
		owned[id] = qty
	}

	discard := logrus.New()
	discard.SetOutput(io.Discard)

	s := &ShopService{
		stock:    owned,
		log:      discard,
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MakePurchase validates the order and, when every check passes, takes the
// items out of stock and charges the user. Checks run in a fixed order and
// the first failure is returned with nothing changed.
func (s *ShopService) MakePurchase(order *model.Order) model.PurchaseStatus {
	if order == nil || order.User == nil {
		panic("service: purchase without order or user")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	status := s.purchase(order)

	s.recorder.Observe(status)
	entry := s.log.WithFields(logrus.Fields{
		"order_id": order.ID.String(),
		"user":     order.User.Name,
		"items":    len(order.Items()),
		"status":   status.String(),
	})
	if status == model.StatusOK {
		entry.Info("purchase completed")
	} else {
		entry.Debug("purchase rejected")
	}

	return status
}

func (s *ShopService) purchase(order *model.Order) model.PurchaseStatus {
	quantities := order.Quantities()

	for id := range quantities {
		if _, known := s.stock[id]; !known {
			return model.StatusUnknownItem
		}
	}

	total := order.Total()
	status := model.StatusOK

	order.User.UpdateBalance(func(balance decimal.Decimal) (decimal.Decimal, bool) {
		if balance.LessThan(total) {
			status = model.StatusUserHasLowBalance
			return balance, false
		}

		for id, requested := range quantities {
			if requested > s.stock[id] {
				status = model.StatusInsufficientItemsStock
				return balance, false
			}
		}

		for id, requested := range quantities {
			s.stock[id] -= requested
		}
		return balance.Sub(total).Round(balancePlaces), true
	})

	return status
}

// Stock reports the available quantity of an item and whether it is known.
func (s *ShopService) Stock(id int64) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	qty, ok := s.stock[id]
	return qty, ok
}

// Snapshot returns a copy of all stock levels.
func (s *ShopService) Snapshot() map[int64]int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[int64]int64, len(s.stock))
	for id, qty := range s.stock {
		snapshot[id] = qty
	}
	return snapshot
}
