package app

import (
	"context"

	"github.com/tanvirfarhan/krishibazar/internal/catalog/domain"
)

type ProductRepo interface {
	Get(ctx context.Context, id int64) (domain.Product, error)
	List(ctx context.Context, f domain.Filter) ([]domain.Product, int, error)
	Create(ctx context.Context, p domain.Product) (domain.Product, error)
}
