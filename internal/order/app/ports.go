package app

import (
	"context"

	"github.com/tanvirfarhan/krishibazar/internal/order/domain"
)

type OrderRepo interface {
	// Append adds the order to the persisted list in one write.
	Append(ctx context.Context, o domain.Order) error
	GetByID(ctx context.Context, orderID string) (domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	Exists(ctx context.Context, orderID string) (bool, error)
}
