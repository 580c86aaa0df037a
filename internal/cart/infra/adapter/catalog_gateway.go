package adapter

import (
	"context"

	cartapp "github.com/tanvirfarhan/krishibazar/internal/cart/app"
	catalogapp "github.com/tanvirfarhan/krishibazar/internal/catalog/app"
)

// CatalogServiceGateway adapts the catalog service to the cart's
// CatalogGateway port.
type CatalogServiceGateway struct {
	svc *catalogapp.Service
}

func NewCatalogServiceGateway(svc *catalogapp.Service) *CatalogServiceGateway {
	return &CatalogServiceGateway{svc: svc}
}

func (a *CatalogServiceGateway) GetProduct(ctx context.Context, id int64) (cartapp.Product, error) {
	p, err := a.svc.GetProduct(ctx, id)
	if err != nil {
		return cartapp.Product{}, err
	}
	return cartapp.Product{
		ID:     p.ID,
		Name:   p.Name,
		Price:  p.Price,
		Stock:  p.Stock,
		Image:  p.Image,
		Seller: p.Seller,
	}, nil
}
