package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tanvirfarhan/krishibazar/internal/order/domain"
)

type memRepo struct {
	orders []domain.Order
}

func (m *memRepo) Append(ctx context.Context, o domain.Order) error {
	m.orders = append(m.orders, o)
	return nil
}

func (m *memRepo) GetByID(ctx context.Context, orderID string) (domain.Order, error) {
	for _, o := range m.orders {
		if o.OrderID == orderID {
			return o, nil
		}
	}
	return domain.Order{}, ErrNotFound
}

func (m *memRepo) List(ctx context.Context) ([]domain.Order, error) {
	return append([]domain.Order(nil), m.orders...), nil
}

func (m *memRepo) Exists(ctx context.Context, orderID string) (bool, error) {
	_, err := m.GetByID(ctx, orderID)
	return err == nil, nil
}

func TestCreateStampsOrder(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), domain.Order{
		Customer: domain.Customer{FirstName: "Abdul", LastName: "Karim"},
		Items:    []domain.Item{{ProductID: 1, Name: "Rice", UnitPrice: decimal.NewFromInt(120), Quantity: 2, MaxQuantity: 150}},
		Subtotal: decimal.NewFromInt(240),
		Total:    decimal.NewFromInt(290),
		Payment:  domain.Payment{Method: domain.PaymentCashOnDelivery, Details: map[string]string{}},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if !strings.HasPrefix(created.OrderID, "ORD-") {
		t.Errorf("OrderID %q lacks ORD- prefix", created.OrderID)
	}
	if created.Status != domain.StatusPending {
		t.Errorf("Status = %q, want pending", created.Status)
	}
	if created.CreatedAt.IsZero() {
		t.Error("CreatedAt not stamped")
	}

	got, err := svc.GetOrder(context.Background(), created.OrderID)
	if err != nil {
		t.Fatalf("GetOrder failed: %v", err)
	}
	if got.OrderID != created.OrderID {
		t.Errorf("retrieved %q, want %q", got.OrderID, created.OrderID)
	}
}

func TestCreateGeneratesUniqueIDsInSameInstant(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo)

	// Freeze the clock so every id shares the timestamp component.
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		o, err := svc.Create(context.Background(), domain.Order{})
		if err != nil {
			t.Fatalf("Create %d failed: %v", i, err)
		}
		if seen[o.OrderID] {
			t.Fatalf("duplicate order id %q", o.OrderID)
		}
		seen[o.OrderID] = true
	}
}

func TestGetOrderMissing(t *testing.T) {
	svc := NewService(&memRepo{})

	if _, err := svc.GetOrder(context.Background(), "ORD-nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.GetOrder(context.Background(), "  "); !errors.Is(err, ErrNotFound) {
		t.Fatalf("blank id: expected ErrNotFound, got %v", err)
	}
}

func TestListOrdersNewestFirst(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo)

	times := []time.Time{
		time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	for _, ts := range times {
		ts := ts
		svc.now = func() time.Time { return ts }
		if _, err := svc.Create(context.Background(), domain.Order{}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	orders, err := svc.ListOrders(context.Background())
	if err != nil {
		t.Fatalf("ListOrders failed: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("got %d orders, want 3", len(orders))
	}
	for i := 1; i < len(orders); i++ {
		if orders[i].CreatedAt.After(orders[i-1].CreatedAt) {
			t.Fatalf("orders not newest-first: %v before %v", orders[i-1].CreatedAt, orders[i].CreatedAt)
		}
	}
}
