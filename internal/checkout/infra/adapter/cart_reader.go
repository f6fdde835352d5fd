package adapter

import (
	"context"

	cartapp "github.com/adityarama/shopfront/internal/cart/app"
	"github.com/adityarama/shopfront/internal/checkout/domain"
)

type CartServiceReader struct {
	svc *cartapp.Service
}

func NewCartServiceReader(svc *cartapp.Service) *CartServiceReader {
	return &CartServiceReader{svc: svc}
}

func (r *CartServiceReader) ActiveCart(ctx context.Context, userID string) (domain.Summary, error) {
	order, err := r.svc.GetCart(ctx, userID)
	if err != nil {
		return domain.Summary{}, err
	}

	summary := domain.Summary{
		OrderID:     order.ID,
		Lines:       make([]domain.SummaryLine, 0, len(order.Items)),
		TotalAmount: order.TotalAmount(),
	}
	for _, it := range order.Items {
		summary.Lines = append(summary.Lines, domain.SummaryLine{
			Slug:       it.Slug,
			Title:      it.Title,
			Quantity:   it.Quantity,
			UnitAmount: it.UnitAmount,
			LineTotal:  it.LineTotal(),
		})
		summary.Currency = it.Currency
	}
	return summary, nil
}
