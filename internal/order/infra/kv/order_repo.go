// Package kv persists the order list in the session key-value store as one
// JSON array under the "orders" key, the same shape the marketplace front
// end keeps in browser storage.
package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/tanvirfarhan/krishibazar/internal/order/app"
	"github.com/tanvirfarhan/krishibazar/internal/order/domain"
	"github.com/tanvirfarhan/krishibazar/pkg/kvstore"
)

// StoreKey is the key the serialized order list lives under.
const StoreKey = "orders"

type OrderRepo struct {
	mu    sync.Mutex
	store kvstore.Store
}

func NewOrderRepo(store kvstore.Store) *OrderRepo {
	return &OrderRepo{store: store}
}

// load deserializes the persisted list. Malformed data counts as an empty
// list rather than an error.
func (r *OrderRepo) load() []domain.Order {
	data, ok, err := r.store.Get(StoreKey)
	if err != nil || !ok {
		return nil
	}

	var orders []domain.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil
	}
	return orders
}

func (r *OrderRepo) Append(ctx context.Context, o domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders := append(r.load(), o)
	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("serialize orders: %w", err)
	}
	if err := r.store.Set(StoreKey, data); err != nil {
		return fmt.Errorf("persist orders: %w", err)
	}
	return nil
}

func (r *OrderRepo) GetByID(ctx context.Context, orderID string) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range r.load() {
		if o.OrderID == orderID {
			return o, nil
		}
	}
	return domain.Order{}, app.ErrNotFound
}

func (r *OrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(), nil
}

func (r *OrderRepo) Exists(ctx context.Context, orderID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range r.load() {
		if o.OrderID == orderID {
			return true, nil
		}
	}
	return false, nil
}
