package kv

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tanvirfarhan/krishibazar/internal/order/app"
	"github.com/tanvirfarhan/krishibazar/internal/order/domain"
	"github.com/tanvirfarhan/krishibazar/pkg/kvstore"
)

func sampleOrder(id string) domain.Order {
	return domain.Order{
		OrderID:   id,
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Customer:  domain.Customer{FirstName: "Rahima", LastName: "Begum", District: "rajshahi"},
		Items: []domain.Item{
			{ProductID: 2, Name: "Mango (Himsagar)", UnitPrice: decimal.RequireFromString("250.00"), Quantity: 3, MaxQuantity: 75},
		},
		Subtotal:    decimal.RequireFromString("750.00"),
		DeliveryFee: decimal.RequireFromString("50.00"),
		Total:       decimal.RequireFromString("800.00"),
		Payment:     domain.Payment{Method: domain.PaymentMobileWallet, Details: map[string]string{"number": "01712345678", "trxId": "TX123"}},
		Status:      domain.StatusPending,
	}
}

func TestAppendAndGet(t *testing.T) {
	store := kvstore.NewMemory()
	repo := NewOrderRepo(store)
	ctx := context.Background()

	if err := repo.Append(ctx, sampleOrder("ORD-1")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := repo.Append(ctx, sampleOrder("ORD-2")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	got, err := repo.GetByID(ctx, "ORD-2")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Customer.District != "rajshahi" {
		t.Errorf("district = %q", got.Customer.District)
	}
	if !got.Total.Equal(decimal.RequireFromString("800.00")) {
		t.Errorf("total = %s, want 800.00", got.Total)
	}
	if got.Payment.Details["trxId"] != "TX123" {
		t.Errorf("payment details lost: %+v", got.Payment.Details)
	}

	// A fresh repo over the same store sees both orders.
	reopened := NewOrderRepo(store)
	orders, err := reopened.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("got %d orders, want 2", len(orders))
	}
}

func TestGetMissingOrder(t *testing.T) {
	repo := NewOrderRepo(kvstore.NewMemory())

	_, err := repo.GetByID(context.Background(), "ORD-absent")
	if !errors.Is(err, app.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestExists(t *testing.T) {
	repo := NewOrderRepo(kvstore.NewMemory())
	ctx := context.Background()

	ok, err := repo.Exists(ctx, "ORD-1")
	if err != nil || ok {
		t.Fatalf("Exists on empty store: ok=%v err=%v", ok, err)
	}

	if err := repo.Append(ctx, sampleOrder("ORD-1")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	ok, err = repo.Exists(ctx, "ORD-1")
	if err != nil || !ok {
		t.Fatalf("Exists after Append: ok=%v err=%v", ok, err)
	}
}

func TestMalformedListTreatedAsEmpty(t *testing.T) {
	store := kvstore.NewMemory()
	if err := store.Set(StoreKey, []byte(`{broken`)); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	repo := NewOrderRepo(store)
	orders, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected empty list, got %d", len(orders))
	}

	// Appending over the broken value starts a fresh list.
	if err := repo.Append(context.Background(), sampleOrder("ORD-1")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	orders, _ = repo.List(context.Background())
	if len(orders) != 1 {
		t.Fatalf("got %d orders, want 1", len(orders))
	}
}
