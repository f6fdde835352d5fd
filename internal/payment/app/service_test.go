package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	cartdomain "github.com/adityarama/shopfront/internal/cart/domain"
	"github.com/adityarama/shopfront/internal/payment/domain"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	order    ActiveOrder
	findErr  error
	payments []domain.Payment
	paid     bool
}

func (f *fakeStore) FindActiveOrder(ctx context.Context, userID string) (ActiveOrder, error) {
	if f.findErr != nil {
		return ActiveOrder{}, f.findErr
	}
	return f.order, nil
}

func (f *fakeStore) MarkPaid(ctx context.Context, orderID string, p domain.Payment) (domain.Payment, error) {
	p.ID = "payment-1"
	f.payments = append(f.payments, p)
	f.paid = true
	return p, nil
}

type fakeGateway struct {
	name    string
	charge  Charge
	err     error
	gotReq  ChargeRequest
	charged bool
}

func (f *fakeGateway) Name() string { return f.name }

func (f *fakeGateway) CreateCharge(ctx context.Context, req ChargeRequest) (Charge, error) {
	f.gotReq = req
	if f.err != nil {
		return Charge{}, f.err
	}
	f.charged = true
	return f.charge, nil
}

type fakeEvents struct {
	published []OrderPlaced
	err       error
}

func (f *fakeEvents) OrderPlaced(ctx context.Context, evt OrderPlaced) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, evt)
	return nil
}

func testOrder() ActiveOrder {
	return ActiveOrder{ID: "order-1", UserID: "user-1", Amount: 4748, Currency: "usd", BillingAttached: true}
}

func TestPaySuccess(t *testing.T) {
	store := &fakeStore{order: testOrder()}
	gw := &fakeGateway{name: "stripe", charge: Charge{ID: "ch_123"}}
	events := &fakeEvents{}
	svc := NewService(store, events, slog.Default(), gw)

	p, err := svc.Pay(context.Background(), "user-1", "stripe", "tok_visa")
	require.NoError(t, err)

	require.Equal(t, int64(4748), gw.gotReq.Amount, "amount must be the order total in minor units")
	require.Equal(t, "usd", gw.gotReq.Currency)
	require.Equal(t, "tok_visa", gw.gotReq.Token)

	require.True(t, store.paid)
	require.Len(t, store.payments, 1, "exactly one payment per capture")
	require.Equal(t, "ch_123", p.ChargeID)
	require.Equal(t, "stripe", p.Gateway)
	require.Equal(t, int64(4748), p.Amount)

	require.Len(t, events.published, 1)
	require.Equal(t, "order-1", events.published[0].OrderID)
	require.Equal(t, "payment-1", events.published[0].PaymentID)
}

func TestPayGatewayFailureLeavesOrderOpen(t *testing.T) {
	kinds := []domain.FailureKind{
		domain.FailureCardDeclined,
		domain.FailureRateLimited,
		domain.FailureInvalidRequest,
		domain.FailureAuthFailed,
		domain.FailureConnection,
		domain.FailureGateway,
		domain.FailureUnknown,
	}

	for _, kind := range kinds {
		t.Run(kind.Message(), func(t *testing.T) {
			store := &fakeStore{order: testOrder()}
			gw := &fakeGateway{
				name: "stripe",
				err:  &domain.GatewayError{Kind: kind, Gateway: "stripe", Err: errors.New("gateway said no")},
			}
			svc := NewService(store, nil, slog.Default(), gw)

			_, err := svc.Pay(context.Background(), "user-1", "stripe", "tok_bad")
			var gwErr *domain.GatewayError
			require.ErrorAs(t, err, &gwErr)
			require.Equal(t, kind, gwErr.Kind)

			require.False(t, store.paid, "order must stay open on gateway failure")
			require.Empty(t, store.payments, "no payment may be recorded on failure")
		})
	}
}

func TestPayWrapsUnclassifiedGatewayErrors(t *testing.T) {
	store := &fakeStore{order: testOrder()}
	gw := &fakeGateway{name: "stripe", err: errors.New("boom")}
	svc := NewService(store, nil, slog.Default(), gw)

	_, err := svc.Pay(context.Background(), "user-1", "stripe", "tok")
	var gwErr *domain.GatewayError
	require.ErrorAs(t, err, &gwErr)
	require.Equal(t, domain.FailureUnknown, gwErr.Kind)
	require.False(t, store.paid)
}

func TestPayGuards(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown gateway", func(t *testing.T) {
		svc := NewService(&fakeStore{order: testOrder()}, nil, slog.Default())
		_, err := svc.Pay(ctx, "user-1", "stripe", "tok")
		require.ErrorIs(t, err, domain.ErrUnknownGateway)
	})

	t.Run("no active order", func(t *testing.T) {
		store := &fakeStore{findErr: cartdomain.ErrNoActiveOrder}
		svc := NewService(store, nil, slog.Default(), &fakeGateway{name: "stripe"})
		_, err := svc.Pay(ctx, "user-1", "stripe", "tok")
		require.ErrorIs(t, err, cartdomain.ErrNoActiveOrder)
	})

	t.Run("billing address required", func(t *testing.T) {
		order := testOrder()
		order.BillingAttached = false
		gw := &fakeGateway{name: "stripe"}
		svc := NewService(&fakeStore{order: order}, nil, slog.Default(), gw)
		_, err := svc.Pay(ctx, "user-1", "stripe", "tok")
		require.ErrorIs(t, err, domain.ErrBillingRequired)
		require.False(t, gw.charged, "must not charge before billing info exists")
	})

	t.Run("empty order", func(t *testing.T) {
		order := testOrder()
		order.Amount = 0
		gw := &fakeGateway{name: "stripe"}
		svc := NewService(&fakeStore{order: order}, nil, slog.Default(), gw)
		_, err := svc.Pay(ctx, "user-1", "stripe", "tok")
		require.ErrorIs(t, err, domain.ErrEmptyOrder)
		require.False(t, gw.charged)
	})
}

func TestPayEventPublishFailureIsNotFatal(t *testing.T) {
	store := &fakeStore{order: testOrder()}
	gw := &fakeGateway{name: "paypal", charge: Charge{ID: "cap_1"}}
	events := &fakeEvents{err: errors.New("broker down")}
	svc := NewService(store, events, slog.Default(), gw)

	_, err := svc.Pay(context.Background(), "user-1", "paypal", "paypal-order-id")
	require.NoError(t, err, "event publishing is best-effort")
	require.True(t, store.paid)
}
