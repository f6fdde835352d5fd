package app

import (
	"context"

	"github.com/adityarama/shopfront/internal/checkout/domain"
)

// CartReader exposes the active order to checkout; implemented by an
// adapter over the cart service. Errors pass through unchanged, so a
// missing cart surfaces as the cart domain's no-active-order error.
type CartReader interface {
	ActiveCart(ctx context.Context, userID string) (domain.Summary, error)
}

type CheckoutStore interface {
	// AttachBillingAddress persists the address and links it to the
	// order in one transaction.
	AttachBillingAddress(ctx context.Context, orderID string, addr domain.BillingAddress) (domain.BillingAddress, error)
}
