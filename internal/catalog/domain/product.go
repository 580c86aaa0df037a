package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a marketplace listing as sold by a farmer. Price is in Taka,
// Stock is the sellable unit count on the listing.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	District    string
	Seller      string
	SellerID    int64
	Rating      int
	Stock       int
	Image       string
	Organic     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Filter narrows a product listing. Zero values mean no constraint.
type Filter struct {
	Query    string
	Category string
	District string

	// Page is 1-based, PerPage is the page size.
	Page    int
	PerPage int
}
