package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cod"
	PaymentMobileWallet   PaymentMethod = "bkash"
	PaymentBankTransfer   PaymentMethod = "bank"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

type Customer struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Address    string `json:"address"`
	District   string `json:"district"`
	PostalCode string `json:"postalCode"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Notes      string `json:"notes"`
}

type Payment struct {
	Method PaymentMethod `json:"method"`
	// Details carries the method-specific fields, e.g. the wallet number
	// and transaction id for mobile wallet payments.
	Details map[string]string `json:"details"`
}

// Item is a purchased line, copied out of the cart at placement time.
type Item struct {
	ProductID   int64           `json:"id"`
	Name        string          `json:"name"`
	UnitPrice   decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Seller      string          `json:"seller"`
	Quantity    int             `json:"quantity"`
	MaxQuantity int             `json:"maxQuantity"`
}

// Order is the immutable record of a finalized purchase. Nothing in the cart
// subsystem touches it after creation.
type Order struct {
	OrderID     string          `json:"orderId"`
	CreatedAt   time.Time       `json:"date"`
	Customer    Customer        `json:"customer"`
	Items       []Item          `json:"items"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"delivery"`
	Total       decimal.Decimal `json:"total"`
	Payment     Payment         `json:"payment"`
	Status      Status          `json:"status"`
}
