package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tanvirfarhan/krishibazar/internal/order/domain"
)

var ErrNotFound = errors.New("order not found")

const idAttempts = 5

type Service struct {
	repo OrderRepo

	now func() time.Time
}

func NewService(repo OrderRepo) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Create stamps the order with a unique id and creation time, sets its
// status to pending and appends it to the persisted order list.
func (s *Service) Create(ctx context.Context, o domain.Order) (domain.Order, error) {
	id, err := s.newOrderID(ctx)
	if err != nil {
		return domain.Order{}, err
	}

	o.OrderID = id
	o.CreatedAt = s.now().UTC()
	o.Status = domain.StatusPending

	if err := s.repo.Append(ctx, o); err != nil {
		return domain.Order{}, fmt.Errorf("persist order %s: %w", id, err)
	}
	return o, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (domain.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return domain.Order{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, orderID)
}

// ListOrders returns all placed orders, newest first.
func (s *Service) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

// newOrderID combines a millisecond timestamp with a random suffix and
// verifies the result against the persisted orders, so two placements in the
// same instant cannot share an id.
func (s *Service) newOrderID(ctx context.Context) (string, error) {
	for i := 0; i < idAttempts; i++ {
		id := fmt.Sprintf("ORD-%d-%s", s.now().UnixMilli(), uuid.NewString()[:8])

		taken, err := s.repo.Exists(ctx, id)
		if err != nil {
			return "", fmt.Errorf("check order id: %w", err)
		}
		if !taken {
			return id, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique order id after %d attempts", idAttempts)
}
