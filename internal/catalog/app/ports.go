package app

import (
	"context"

	"github.com/adityarama/shopfront/internal/catalog/domain"
)

type ItemRepo interface {
	GetBySlug(ctx context.Context, slug string) (domain.Item, error)
	List(ctx context.Context, limit int, cursor string) ([]domain.Item, string, error)
}
