package adapter

import (
	"github.com/shopspring/decimal"

	cartapp "github.com/tanvirfarhan/krishibazar/internal/cart/app"
	"github.com/tanvirfarhan/krishibazar/internal/checkout/app"
)

// CartServiceSource adapts the cart service to the assembler's CartSource.
type CartServiceSource struct {
	svc *cartapp.Service
}

func NewCartServiceSource(svc *cartapp.Service) *CartServiceSource {
	return &CartServiceSource{svc: svc}
}

func (a *CartServiceSource) Lines() []app.Line {
	items := a.svc.Items()
	lines := make([]app.Line, len(items))
	for i, li := range items {
		lines[i] = app.Line{
			ProductID:   li.ProductID,
			Name:        li.Name,
			UnitPrice:   li.UnitPrice,
			Image:       li.Image,
			Seller:      li.Seller,
			Quantity:    li.Quantity,
			MaxQuantity: li.MaxQuantity,
		}
	}
	return lines
}

func (a *CartServiceSource) Totals() (subtotal, deliveryFee, total decimal.Decimal) {
	t := a.svc.Totals()
	return t.Subtotal, t.DeliveryFee, t.Total
}

func (a *CartServiceSource) Clear() error {
	return a.svc.Clear()
}
