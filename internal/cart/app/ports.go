package app

import (
	"context"
	"time"

	"github.com/adityarama/shopfront/internal/cart/domain"
)

type OrderRepo interface {
	// WithinTx runs fn against a repo bound to one transaction. The
	// active order row is locked for update inside the transaction, so
	// concurrent mutations of the same cart serialize instead of
	// losing writes.
	WithinTx(ctx context.Context, fn func(OrderRepo) error) error
	// FindActiveOrder returns the user's ordered=false order with its
	// lines, or domain.ErrNoActiveOrder.
	FindActiveOrder(ctx context.Context, userID string) (domain.Order, error)
	// CreateActiveOrder creates the active order stamped with now. If a
	// concurrent request already created one, the existing order is
	// returned instead.
	CreateActiveOrder(ctx context.Context, userID string, now time.Time) (domain.Order, error)
	// GetOrCreateOrderItem returns the user's open line for the item,
	// creating a detached quantity-1 line when none exists.
	GetOrCreateOrderItem(ctx context.Context, userID, itemID string) (domain.OrderItem, error)
	// AttachLine sets the line's order. Idempotent.
	AttachLine(ctx context.Context, orderID, lineID string) error
	// DetachLine resets the line quantity to 1 and clears its order.
	DetachLine(ctx context.Context, orderID, lineID string) error
	// IncrementQuantity atomically adds 1 and returns the new quantity.
	IncrementQuantity(ctx context.Context, lineID string) (int, error)
	// DecrementQuantity atomically subtracts 1, guarded so quantity
	// never drops below 1. Returns the resulting quantity.
	DecrementQuantity(ctx context.Context, lineID string) (int, error)
}

// CatalogReader resolves item slugs; implemented by an adapter over the
// catalog service.
type CatalogReader interface {
	GetBySlug(ctx context.Context, slug string) (CatalogItem, error)
}

type CatalogItem struct {
	ID         string
	Slug       string
	Title      string
	UnitAmount int64
	Currency   string
}
