package app

import (
	"context"
	"errors"
	"strings"

	"github.com/adityarama/shopfront/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo ItemRepo
}

func NewService(repo ItemRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (domain.Item, error) {
	if strings.TrimSpace(slug) == "" {
		return domain.Item{}, ErrInvalidInput
	}
	return s.repo.GetBySlug(ctx, slug)
}

func (s *Service) ListItems(ctx context.Context, limit int, cursor string) ([]domain.Item, string, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return s.repo.List(ctx, limit, cursor)
}
