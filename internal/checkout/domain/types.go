package domain

import (
	"github.com/shopspring/decimal"

	orderdomain "github.com/tanvirfarhan/krishibazar/internal/order/domain"
)

// DeliveryDetails is the checkout form as filled in by the buyer.
// Notes is the only optional field.
type DeliveryDetails struct {
	FirstName  string
	LastName   string
	Address    string
	District   string
	PostalCode string
	Phone      string
	Email      string
	Notes      string

	AgreedToTerms bool
}

// PaymentSelection is the chosen method plus its method-specific fields.
// WalletNumber applies to mobile wallet payments only; TransactionID to both
// mobile wallet and bank transfer.
type PaymentSelection struct {
	Method        orderdomain.PaymentMethod
	WalletNumber  string
	TransactionID string
}

// QuoteLine is a cart line re-priced against the live catalog.
type QuoteLine struct {
	ProductID int64
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal

	// InStock reports whether the catalog still covers the requested
	// quantity at quote time.
	InStock bool
}

type Quote struct {
	Lines       []QuoteLine
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	Total       decimal.Decimal
}
