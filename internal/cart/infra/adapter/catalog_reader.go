package adapter

import (
	"context"

	cartapp "github.com/adityarama/shopfront/internal/cart/app"
	catalogapp "github.com/adityarama/shopfront/internal/catalog/app"
)

type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) GetBySlug(ctx context.Context, slug string) (cartapp.CatalogItem, error) {
	item, err := r.svc.GetBySlug(ctx, slug)
	if err != nil {
		return cartapp.CatalogItem{}, err
	}

	return cartapp.CatalogItem{
		ID:         item.ID,
		Slug:       item.Slug,
		Title:      item.Title,
		UnitAmount: item.Price.Amount,
		Currency:   item.Price.Currency,
	}, nil
}
