package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/adityarama/shopfront/internal/catalog/app"
	"github.com/adityarama/shopfront/internal/catalog/domain"
	"github.com/adityarama/shopfront/internal/storage"
	"gorm.io/gorm"
)

type ItemRepo struct {
	db *gorm.DB
}

func NewItemRepo(db *gorm.DB) *ItemRepo {
	return &ItemRepo{db: db}
}

func (r *ItemRepo) GetBySlug(ctx context.Context, slug string) (domain.Item, error) {
	var row storage.Item
	err := r.db.WithContext(ctx).First(&row, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Item{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Item{}, err
	}
	return toDomain(row), nil
}

func (r *ItemRepo) List(ctx context.Context, limit int, cursor string) ([]domain.Item, string, error) {
	q := r.db.WithContext(ctx).Order("id").Limit(limit)
	if strings.TrimSpace(cursor) != "" {
		q = q.Where("id > ?", strings.TrimSpace(cursor))
	}

	var rows []storage.Item
	if err := q.Find(&rows).Error; err != nil {
		return nil, "", err
	}

	out := make([]domain.Item, 0, len(rows))
	var nextCursor string
	for _, row := range rows {
		out = append(out, toDomain(row))
		nextCursor = row.ID
	}
	if len(out) < limit {
		nextCursor = ""
	}

	return out, nextCursor, nil
}

func toDomain(row storage.Item) domain.Item {
	return domain.Item{
		ID:          row.ID,
		Title:       row.Title,
		Slug:        row.Slug,
		Price:       domain.Money{Currency: row.Currency, Amount: row.PriceAmount},
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
