package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/adityarama/shopfront/internal/payment/domain"
)

type Service struct {
	orders   OrderStore
	gateways map[string]Gateway
	events   Events
	log      *slog.Logger
}

func NewService(orders OrderStore, events Events, log *slog.Logger, gateways ...Gateway) *Service {
	byName := make(map[string]Gateway, len(gateways))
	for _, g := range gateways {
		byName[g.Name()] = g
	}
	return &Service{
		orders:   orders,
		gateways: byName,
		events:   events,
		log:      log,
	}
}

// Summary returns what is about to be charged for the payment page.
func (s *Service) Summary(ctx context.Context, userID string) (ActiveOrder, error) {
	return s.orders.FindActiveOrder(ctx, userID)
}

// Pay charges the active order through the named gateway and, on
// success, records the Payment and completes the order. On any gateway
// failure the order is left open so the user can retry checkout.
func (s *Service) Pay(ctx context.Context, userID, gatewayName, token string) (domain.Payment, error) {
	gw, ok := s.gateways[gatewayName]
	if !ok {
		return domain.Payment{}, fmt.Errorf("%w: %q", domain.ErrUnknownGateway, gatewayName)
	}

	order, err := s.orders.FindActiveOrder(ctx, userID)
	if err != nil {
		return domain.Payment{}, err
	}
	if order.Amount <= 0 {
		return domain.Payment{}, domain.ErrEmptyOrder
	}
	if !order.BillingAttached {
		return domain.Payment{}, domain.ErrBillingRequired
	}

	charge, err := gw.CreateCharge(ctx, ChargeRequest{
		Amount:   order.Amount,
		Currency: order.Currency,
		Token:    token,
	})
	if err != nil {
		var gwErr *domain.GatewayError
		if !errors.As(err, &gwErr) {
			err = &domain.GatewayError{Kind: domain.FailureUnknown, Gateway: gw.Name(), Err: err}
		}
		return domain.Payment{}, err
	}

	payment, err := s.orders.MarkPaid(ctx, order.ID, domain.Payment{
		Gateway:  gw.Name(),
		ChargeID: charge.ID,
		UserID:   userID,
		Amount:   order.Amount,
		Currency: order.Currency,
	})
	if err != nil {
		// charge went through but the order could not be closed; this
		// needs operator attention, not a silent retry
		s.log.Error("payment captured but order finalize failed",
			slog.String("order_id", order.ID),
			slog.String("charge_id", charge.ID),
			slog.Any("err", err))
		return domain.Payment{}, err
	}

	if s.events != nil {
		evt := OrderPlaced{
			OrderID:   order.ID,
			UserID:    userID,
			PaymentID: payment.ID,
			Gateway:   payment.Gateway,
			Amount:    payment.Amount,
			Currency:  payment.Currency,
		}
		if err := s.events.OrderPlaced(ctx, evt); err != nil {
			s.log.Warn("order placed event publish failed",
				slog.String("order_id", order.ID), slog.Any("err", err))
		}
	}

	return payment, nil
}
