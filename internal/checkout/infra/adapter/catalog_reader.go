package adapter

import (
	"context"

	catalogapp "github.com/tanvirfarhan/krishibazar/internal/catalog/app"
	"github.com/tanvirfarhan/krishibazar/internal/checkout/app"
)

// CatalogServiceReader adapts the catalog service to the assembler's
// CatalogReader.
type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (a *CatalogServiceReader) GetProduct(ctx context.Context, id int64) (app.Product, error) {
	p, err := a.svc.GetProduct(ctx, id)
	if err != nil {
		return app.Product{}, err
	}
	return app.Product{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Stock: p.Stock,
	}, nil
}
