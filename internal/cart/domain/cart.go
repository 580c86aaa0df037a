package domain

import "github.com/shopspring/decimal"

// DeliveryFee is the flat delivery charge added to every order, independent
// of weight, distance and item count.
var DeliveryFee = decimal.NewFromInt(50)

// LineItem is one product entry in the cart. MaxQuantity is the product's
// stock copied at add-time; it does not track later stock changes. The JSON
// shape matches the persisted session cart.
type LineItem struct {
	ProductID   int64           `json:"id"`
	Name        string          `json:"name"`
	UnitPrice   decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Seller      string          `json:"seller"`
	Quantity    int             `json:"quantity"`
	MaxQuantity int             `json:"maxQuantity"`
}

// Valid reports whether the item satisfies 1 <= Quantity <= MaxQuantity and
// carries a usable identity and price.
func (li LineItem) Valid() bool {
	return li.ProductID > 0 &&
		li.MaxQuantity >= 1 &&
		li.Quantity >= 1 &&
		li.Quantity <= li.MaxQuantity &&
		!li.UnitPrice.IsNegative()
}

// LineTotal is UnitPrice times Quantity.
func (li LineItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

type Totals struct {
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	Total       decimal.Decimal
}

// ComputeTotals sums the line totals and adds the flat delivery fee.
func ComputeTotals(items []LineItem) Totals {
	subtotal := decimal.Zero
	for _, li := range items {
		subtotal = subtotal.Add(li.LineTotal())
	}
	return Totals{
		Subtotal:    subtotal,
		DeliveryFee: DeliveryFee,
		Total:       subtotal.Add(DeliveryFee),
	}
}

// ClampQuantity coerces q into [1, max].
func ClampQuantity(q, max int) int {
	if q < 1 {
		return 1
	}
	if q > max {
		return max
	}
	return q
}
