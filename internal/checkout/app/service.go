package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/adityarama/shopfront/internal/checkout/domain"
)

type Service struct {
	cart  CartReader
	store CheckoutStore
}

func NewService(cart CartReader, store CheckoutStore) *Service {
	return &Service{
		cart:  cart,
		store: store,
	}
}

// BillingForm is the checkout submission. PaymentOption is "S" for the
// stripe step or "P" for the paypal step.
type BillingForm struct {
	StreetAddress    string
	ApartmentAddress string
	Country          string
	Zip              string
	PaymentOption    string
}

// Summary returns the active order's lines and total for the checkout
// and payment pages.
func (s *Service) Summary(ctx context.Context, userID string) (domain.Summary, error) {
	return s.cart.ActiveCart(ctx, userID)
}

// SubmitBillingInfo validates the form, persists a new BillingAddress
// attached to the active order, and returns the gateway route selected
// by the payment option. An invalid form is an explicit error, never a
// silent drop.
func (s *Service) SubmitBillingInfo(ctx context.Context, userID string, form BillingForm) (string, error) {
	cart, err := s.cart.ActiveCart(ctx, userID)
	if err != nil {
		return "", err
	}

	if err := validateForm(form); err != nil {
		return "", err
	}

	gateway, ok := domain.PaymentOption(form.PaymentOption).Gateway()
	if !ok {
		return "", domain.ErrInvalidPaymentOption
	}

	addr := domain.BillingAddress{
		UserID:           userID,
		StreetAddress:    strings.TrimSpace(form.StreetAddress),
		ApartmentAddress: strings.TrimSpace(form.ApartmentAddress),
		Country:          strings.TrimSpace(form.Country),
		Zip:              strings.TrimSpace(form.Zip),
	}
	if _, err := s.store.AttachBillingAddress(ctx, cart.OrderID, addr); err != nil {
		return "", err
	}

	return gateway, nil
}

func validateForm(form BillingForm) error {
	for _, field := range []struct {
		name, value string
	}{
		{"street_address", form.StreetAddress},
		{"country", form.Country},
		{"zip", form.Zip},
	} {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("%w: %s is required", domain.ErrInvalidForm, field.name)
		}
	}
	return nil
}
