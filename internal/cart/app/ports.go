package app

import (
	"context"

	"github.com/shopspring/decimal"
)

// Product is the slice of a catalog listing the cart needs when adding an
// item. Stock becomes the line item's quantity ceiling.
type Product struct {
	ID     int64
	Name   string
	Price  decimal.Decimal
	Stock  int
	Image  string
	Seller string
}

// CatalogGateway is the read-only product lookup consulted on add-to-cart.
// The cart never mutates catalog data through it.
type CatalogGateway interface {
	GetProduct(ctx context.Context, id int64) (Product, error)
}
