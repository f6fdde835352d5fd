package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adityarama/shopfront/internal/cart/domain"
)

type Service struct {
	orders  OrderRepo
	catalog CatalogReader
	now     func() time.Time
}

func NewService(orders OrderRepo, catalog CatalogReader) *Service {
	return &Service{
		orders:  orders,
		catalog: catalog,
		now:     time.Now,
	}
}

// GetCart returns the user's active order.
func (s *Service) GetCart(ctx context.Context, userID string) (domain.Order, error) {
	return s.orders.FindActiveOrder(ctx, userID)
}

// Mutate applies one cart operation for (user, item slug) in a single
// transaction. Unknown slugs fail with the catalog's not-found error
// on every path.
func (s *Service) Mutate(ctx context.Context, userID, slug string, op domain.Operation) (domain.Mutation, error) {
	item, err := s.catalog.GetBySlug(ctx, slug)
	if err != nil {
		return domain.Mutation{}, fmt.Errorf("resolve slug %q: %w", slug, err)
	}

	var m domain.Mutation
	err = s.orders.WithinTx(ctx, func(r OrderRepo) error {
		var txErr error
		switch op {
		case domain.OpAdd:
			m, txErr = s.add(ctx, r, userID, item)
		case domain.OpRemoveAll:
			m, txErr = s.removeAll(ctx, r, userID, item)
		case domain.OpRemoveSingle:
			m, txErr = s.removeSingle(ctx, r, userID, item)
		default:
			txErr = fmt.Errorf("unknown cart operation %d", op)
		}
		return txErr
	})
	if err != nil {
		return domain.Mutation{}, err
	}
	return m, nil
}

func (s *Service) add(ctx context.Context, r OrderRepo, userID string, item CatalogItem) (domain.Mutation, error) {
	order, err := r.FindActiveOrder(ctx, userID)
	if err == nil {
		if line, ok := order.Line(item.Slug); ok {
			qty, err := r.IncrementQuantity(ctx, line.ID)
			if err != nil {
				return domain.Mutation{}, err
			}
			return domain.Mutation{Result: domain.ResultQuantityChanged, Quantity: qty}, nil
		}

		line, err := r.GetOrCreateOrderItem(ctx, userID, item.ID)
		if err != nil {
			return domain.Mutation{}, err
		}
		if err := r.AttachLine(ctx, order.ID, line.ID); err != nil {
			return domain.Mutation{}, err
		}
		return domain.Mutation{Result: domain.ResultAdded, Quantity: line.Quantity}, nil
	}
	if !errors.Is(err, domain.ErrNoActiveOrder) {
		return domain.Mutation{}, err
	}

	// first add: create the cart lazily, stamped now
	line, err := r.GetOrCreateOrderItem(ctx, userID, item.ID)
	if err != nil {
		return domain.Mutation{}, err
	}
	order, err = r.CreateActiveOrder(ctx, userID, s.now())
	if err != nil {
		return domain.Mutation{}, err
	}
	if err := r.AttachLine(ctx, order.ID, line.ID); err != nil {
		return domain.Mutation{}, err
	}
	return domain.Mutation{Result: domain.ResultAdded, Quantity: line.Quantity}, nil
}

func (s *Service) removeAll(ctx context.Context, r OrderRepo, userID string, item CatalogItem) (domain.Mutation, error) {
	order, err := r.FindActiveOrder(ctx, userID)
	if errors.Is(err, domain.ErrNoActiveOrder) {
		return domain.Mutation{Result: domain.ResultNoActiveOrder}, nil
	}
	if err != nil {
		return domain.Mutation{}, err
	}

	line, ok := order.Line(item.Slug)
	if !ok {
		return domain.Mutation{Result: domain.ResultNotInCart}, nil
	}

	// the line leaves the cart regardless of its quantity
	if err := r.DetachLine(ctx, order.ID, line.ID); err != nil {
		return domain.Mutation{}, err
	}
	return domain.Mutation{Result: domain.ResultRemoved}, nil
}

func (s *Service) removeSingle(ctx context.Context, r OrderRepo, userID string, item CatalogItem) (domain.Mutation, error) {
	order, err := r.FindActiveOrder(ctx, userID)
	if errors.Is(err, domain.ErrNoActiveOrder) {
		return domain.Mutation{Result: domain.ResultNoActiveOrder}, nil
	}
	if err != nil {
		return domain.Mutation{}, err
	}

	line, ok := order.Line(item.Slug)
	if !ok {
		return domain.Mutation{Result: domain.ResultNotInCart}, nil
	}

	if line.Quantity > 1 {
		qty, err := r.DecrementQuantity(ctx, line.ID)
		if err != nil {
			return domain.Mutation{}, err
		}
		return domain.Mutation{Result: domain.ResultQuantityChanged, Quantity: qty}, nil
	}

	if err := r.DetachLine(ctx, order.ID, line.ID); err != nil {
		return domain.Mutation{}, err
	}
	return domain.Mutation{Result: domain.ResultRemoved}, nil
}
