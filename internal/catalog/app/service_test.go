package app

import (
	"context"
	"testing"

	"github.com/adityarama/shopfront/internal/catalog/domain"
)

type fakeRepo struct {
	gotLimit int
}

func (f *fakeRepo) GetBySlug(ctx context.Context, slug string) (domain.Item, error) {
	return domain.Item{Slug: slug}, nil
}

func (f *fakeRepo) List(ctx context.Context, limit int, cursor string) ([]domain.Item, string, error) {
	f.gotLimit = limit
	return nil, "", nil
}

func TestGetBySlugValidation(t *testing.T) {
	svc := NewService(&fakeRepo{})

	t.Run("blank slug -> invalid", func(t *testing.T) {
		_, err := svc.GetBySlug(context.Background(), "   ")
		if err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("slug passes through", func(t *testing.T) {
		item, err := svc.GetBySlug(context.Background(), "blue-shirt")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Slug != "blue-shirt" {
			t.Fatalf("expected slug blue-shirt, got %q", item.Slug)
		}
	})
}

func TestListItemsClampsLimit(t *testing.T) {
	t.Run("zero limit -> default 20", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewService(repo)
		if _, _, err := svc.ListItems(context.Background(), 0, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.gotLimit != 20 {
			t.Fatalf("expected limit 20, got %d", repo.gotLimit)
		}
	})

	t.Run("huge limit -> capped at 100", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewService(repo)
		if _, _, err := svc.ListItems(context.Background(), 5000, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.gotLimit != 100 {
			t.Fatalf("expected limit 100, got %d", repo.gotLimit)
		}
	})
}
