package app

import (
	"context"
	"errors"
	"strings"

	"github.com/tanvirfarhan/krishibazar/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{
		repo: repo,
	}
}

// GetProduct is a read-only lookup; the cart copies price and stock out of
// the returned product and never writes back.
func (s *Service) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	if id <= 0 {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) ListProducts(ctx context.Context, f domain.Filter) ([]domain.Product, int, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PerPage <= 0 {
		f.PerPage = 9
	}
	if f.PerPage > 100 {
		f.PerPage = 100
	}
	return s.repo.List(ctx, f)
}

func (s *Service) CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Seller = strings.TrimSpace(p.Seller)

	if p.Name == "" || p.Seller == "" {
		return domain.Product{}, ErrInvalidInput
	}
	if p.Price.IsNegative() || p.Price.IsZero() {
		return domain.Product{}, ErrInvalidInput
	}
	if p.Stock < 0 {
		return domain.Product{}, ErrInvalidInput
	}

	return s.repo.Create(ctx, p)
}
