package app

import (
	"context"

	"github.com/adityarama/shopfront/internal/payment/domain"
)

// ActiveOrder is the payment view of the user's open order. Amount is
// the order total in minor currency units.
type ActiveOrder struct {
	ID              string
	UserID          string
	Amount          int64
	Currency        string
	BillingAttached bool
}

type OrderStore interface {
	// FindActiveOrder returns the cart domain's no-active-order error
	// when the user has nothing to pay for.
	FindActiveOrder(ctx context.Context, userID string) (ActiveOrder, error)
	// MarkPaid persists the payment and completes the order in one
	// transaction. Fails if the order is no longer open.
	MarkPaid(ctx context.Context, orderID string, p domain.Payment) (domain.Payment, error)
}

type ChargeRequest struct {
	Amount   int64
	Currency string
	Token    string
}

type Charge struct {
	ID string
}

// Gateway is one external payment processor. Failures come back as
// *domain.GatewayError.
type Gateway interface {
	Name() string
	CreateCharge(ctx context.Context, req ChargeRequest) (Charge, error)
}

type OrderPlaced struct {
	OrderID   string `json:"order_id"`
	UserID    string `json:"user_id"`
	PaymentID string `json:"payment_id"`
	Gateway   string `json:"gateway"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
}

// Events receives post-purchase notifications. Publishing is
// best-effort; failures are logged, never surfaced to the buyer.
type Events interface {
	OrderPlaced(ctx context.Context, evt OrderPlaced) error
}
