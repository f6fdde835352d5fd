package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnknownGateway = errors.New("unknown payment gateway")
	// ErrBillingRequired means the order has no billing address yet,
	// so it is not in the awaiting-payment state.
	ErrBillingRequired = errors.New("billing address required before payment")
	ErrEmptyOrder      = errors.New("order has no items")
)

// Payment records one successful external charge. Immutable.
type Payment struct {
	ID        string
	Gateway   string
	ChargeID  string
	UserID    string
	Amount    int64
	Currency  string
	CreatedAt time.Time
}

// FailureKind classifies a gateway failure. Failures are surfaced to
// the user and never retried automatically.
type FailureKind int

const (
	FailureUnknown FailureKind = iota
	FailureCardDeclined
	FailureRateLimited
	FailureInvalidRequest
	FailureAuthFailed
	FailureConnection
	FailureGateway
)

// Message is the user-facing warning for the failure.
func (k FailureKind) Message() string {
	switch k {
	case FailureCardDeclined:
		return "Your card was declined"
	case FailureRateLimited:
		return "Rate limit error"
	case FailureInvalidRequest:
		return "Invalid payment request"
	case FailureAuthFailed:
		return "Payment authentication failed"
	case FailureConnection:
		return "Could not reach the payment provider"
	case FailureGateway:
		return "The payment provider reported an error"
	default:
		return "A serious error occurred"
	}
}

// GatewayError wraps a gateway failure with its classification. The
// order is left untouched when one of these comes back.
type GatewayError struct {
	Kind    FailureKind
	Gateway string
	Err     error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s charge failed (%s): %v", e.Gateway, e.Kind.Message(), e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}
