// Package memory is a static in-process product source. It stands in for the
// real catalog service and is good enough for a single marketplace session.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/tanvirfarhan/krishibazar/internal/catalog/app"
	"github.com/tanvirfarhan/krishibazar/internal/catalog/domain"
)

type ProductRepo struct {
	mu       sync.RWMutex
	products map[int64]domain.Product
	nextID   int64
}

func NewProductRepo(seed []domain.Product) *ProductRepo {
	r := &ProductRepo{products: make(map[int64]domain.Product), nextID: 1}
	for _, p := range seed {
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
		r.products[p.ID] = p
	}
	return r
}

func (r *ProductRepo) Get(ctx context.Context, id int64) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return domain.Product{}, app.ErrNotFound
	}
	return p, nil
}

func (r *ProductRepo) List(ctx context.Context, f domain.Filter) ([]domain.Product, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		if matches(p, f) {
			matched = append(matched, p)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := len(matched)
	start := (f.Page - 1) * f.PerPage
	if start >= total {
		return []domain.Product{}, total, nil
	}
	end := start + f.PerPage
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (r *ProductRepo) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID
	r.nextID++
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	r.products[p.ID] = p
	return p, nil
}

func matches(p domain.Product, f domain.Filter) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.District != "" && p.District != f.District {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}
	return true
}
