package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/tanvirfarhan/krishibazar/internal/cart/domain"
	"github.com/tanvirfarhan/krishibazar/pkg/kvstore"
)

// StoreKey is the key-value store key the serialized cart lives under.
const StoreKey = "cart"

var ErrOutOfStock = errors.New("product is out of stock")

// Service owns the session cart. All mutations apply in call order under one
// mutex and re-serialize the whole cart to the store before returning.
type Service struct {
	mu      sync.Mutex
	store   kvstore.Store
	catalog CatalogGateway

	items []domain.LineItem
}

// NewService hydrates the cart from the store. Absent or malformed persisted
// data yields an empty cart, never an error. catalog may be nil when
// AddFromCatalog is not used.
func NewService(store kvstore.Store, catalog CatalogGateway) *Service {
	s := &Service{store: store, catalog: catalog}
	s.items = s.hydrate()
	return s
}

func (s *Service) hydrate() []domain.LineItem {
	data, ok, err := s.store.Get(StoreKey)
	if err != nil || !ok {
		return nil
	}

	var items []domain.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}

	seen := make(map[int64]bool, len(items))
	for _, li := range items {
		if !li.Valid() || seen[li.ProductID] {
			return nil
		}
		seen[li.ProductID] = true
	}
	return items
}

// Load re-reads the persisted cart and returns the resulting snapshot.
func (s *Service) Load() []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = s.hydrate()
	return s.snapshot()
}

// Items returns a copy of the current cart contents.
func (s *Service) Items() []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Service) snapshot() []domain.LineItem {
	out := make([]domain.LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// AddItem merges a product into the cart. An already-present product has its
// quantity incremented; either way the result is clamped to [1, MaxQuantity].
func (s *Service) AddItem(p Product, quantity int) error {
	if p.Stock < 1 {
		return ErrOutOfStock
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == p.ID {
			s.items[i].Quantity = domain.ClampQuantity(s.items[i].Quantity+quantity, s.items[i].MaxQuantity)
			return s.persist()
		}
	}

	s.items = append(s.items, domain.LineItem{
		ProductID:   p.ID,
		Name:        p.Name,
		UnitPrice:   p.Price,
		Image:       p.Image,
		Seller:      p.Seller,
		Quantity:    domain.ClampQuantity(quantity, p.Stock),
		MaxQuantity: p.Stock,
	})
	return s.persist()
}

// AddFromCatalog resolves the product through the catalog gateway and adds
// it. A missing product aborts the add with no cart mutation.
func (s *Service) AddFromCatalog(ctx context.Context, productID int64, quantity int) error {
	if s.catalog == nil {
		return errors.New("no catalog gateway configured")
	}

	p, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return fmt.Errorf("look up product %d: %w", productID, err)
	}
	return s.AddItem(p, quantity)
}

// SetQuantity clamps the requested quantity into [1, MaxQuantity] and stores
// it. Unknown product ids are a no-op.
func (s *Service) SetQuantity(productID int64, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = domain.ClampQuantity(quantity, s.items[i].MaxQuantity)
			return s.persist()
		}
	}
	return nil
}

// IncrementQuantity applies delta only when the result stays inside
// [1, MaxQuantity]; a request that would cross either bound is rejected as a
// no-op. This is the plus/minus button behavior, deliberately different from
// SetQuantity's clamping.
func (s *Service) IncrementQuantity(productID int64, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			next := s.items[i].Quantity + delta
			if next < 1 || next > s.items[i].MaxQuantity {
				return nil
			}
			s.items[i].Quantity = next
			return s.persist()
		}
	}
	return nil
}

// RemoveItem deletes the line item unconditionally.
func (s *Service) RemoveItem(productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	changed := false
	for _, li := range s.items {
		if li.ProductID == productID {
			changed = true
			continue
		}
		kept = append(kept, li)
	}
	s.items = kept

	if !changed {
		return nil
	}
	return s.persist()
}

// Clear empties the cart and persists the empty state.
func (s *Service) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	return s.persist()
}

func (s *Service) Totals() domain.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.ComputeTotals(s.items)
}

// ItemCount is the badge count: the sum of quantities across all lines.
func (s *Service) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, li := range s.items {
		n += li.Quantity
	}
	return n
}

func (s *Service) persist() error {
	items := s.items
	if items == nil {
		items = []domain.LineItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("serialize cart: %w", err)
	}
	if err := s.store.Set(StoreKey, data); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}
