package rest

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	cartdomain "github.com/adityarama/shopfront/internal/cart/domain"
	catalogapp "github.com/adityarama/shopfront/internal/catalog/app"
	checkoutdomain "github.com/adityarama/shopfront/internal/checkout/domain"
	paymentdomain "github.com/adityarama/shopfront/internal/payment/domain"
)

func TestClassifyError(t *testing.T) {
	t.Run("unknown slug -> 404", func(t *testing.T) {
		err := fmt.Errorf("resolve slug %q: %w", "ghost", catalogapp.ErrNotFound)
		gotStatus, resp := classifyError(err)
		if gotStatus != http.StatusNotFound || resp.Code != "NOT_FOUND" {
			t.Fatalf("got (%d,%s)", gotStatus, resp.Code)
		}
	})

	t.Run("bad input -> 400", func(t *testing.T) {
		gotStatus, resp := classifyError(catalogapp.ErrInvalidInput)
		if gotStatus != http.StatusBadRequest || resp.Code != "INVALID_ARGUMENT" {
			t.Fatalf("got (%d,%s)", gotStatus, resp.Code)
		}
	})

	t.Run("no active order -> 409 with redirect home", func(t *testing.T) {
		gotStatus, resp := classifyError(cartdomain.ErrNoActiveOrder)
		if gotStatus != http.StatusConflict || resp.Code != "NO_ACTIVE_ORDER" {
			t.Fatalf("got (%d,%s)", gotStatus, resp.Code)
		}
		if resp.Redirect != "/" {
			t.Fatalf("redirect = %q", resp.Redirect)
		}
	})

	t.Run("invalid billing form -> 422", func(t *testing.T) {
		err := fmt.Errorf("%w: zip is required", checkoutdomain.ErrInvalidForm)
		gotStatus, resp := classifyError(err)
		if gotStatus != http.StatusUnprocessableEntity || resp.Code != "INVALID_FORM" {
			t.Fatalf("got (%d,%s)", gotStatus, resp.Code)
		}
	})

	t.Run("invalid payment option -> 400 back to checkout", func(t *testing.T) {
		gotStatus, resp := classifyError(checkoutdomain.ErrInvalidPaymentOption)
		if gotStatus != http.StatusBadRequest || resp.Code != "INVALID_PAYMENT_OPTION" {
			t.Fatalf("got (%d,%s)", gotStatus, resp.Code)
		}
		if resp.Redirect != "/checkout" {
			t.Fatalf("redirect = %q", resp.Redirect)
		}
	})

	t.Run("declined card -> 402 with user message", func(t *testing.T) {
		err := &paymentdomain.GatewayError{
			Kind:    paymentdomain.FailureCardDeclined,
			Gateway: "stripe",
			Err:     errors.New("card_declined"),
		}
		gotStatus, resp := classifyError(err)
		if gotStatus != http.StatusPaymentRequired || resp.Code != "PAYMENT_FAILED" {
			t.Fatalf("got (%d,%s)", gotStatus, resp.Code)
		}
		if resp.Notice == nil || resp.Notice.Message != paymentdomain.FailureCardDeclined.Message() {
			t.Fatalf("notice = %+v", resp.Notice)
		}
		if resp.Redirect != "/payment/stripe" {
			t.Fatalf("redirect = %q", resp.Redirect)
		}
	})

	t.Run("billing missing -> 409 back to checkout", func(t *testing.T) {
		gotStatus, resp := classifyError(paymentdomain.ErrBillingRequired)
		if gotStatus != http.StatusConflict || resp.Code != "BILLING_REQUIRED" {
			t.Fatalf("got (%d,%s)", gotStatus, resp.Code)
		}
	})

	t.Run("anything else -> 500 with vague notice", func(t *testing.T) {
		gotStatus, resp := classifyError(errors.New("boom"))
		if gotStatus != http.StatusInternalServerError || resp.Code != "INTERNAL" {
			t.Fatalf("got (%d,%s)", gotStatus, resp.Code)
		}
		if resp.Notice == nil || resp.Notice.Message == "boom" {
			t.Fatalf("internal detail leaked: %+v", resp.Notice)
		}
	})
}
