package rest

import (
	"errors"
	"net/http"

	cartdomain "github.com/adityarama/shopfront/internal/cart/domain"
	catalogapp "github.com/adityarama/shopfront/internal/catalog/app"
	checkoutdomain "github.com/adityarama/shopfront/internal/checkout/domain"
	paymentdomain "github.com/adityarama/shopfront/internal/payment/domain"
)

type errorResponse struct {
	Code     string  `json:"code"`
	Notice   *notice `json:"notice,omitempty"`
	Redirect string  `json:"redirect,omitempty"`
}

// renderError translates domain errors into an HTTP status, a stable
// machine code and a user-facing notice. Anything unclassified is a 500
// with a deliberately vague message.
func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := classifyError(err)
	s.writeError(w, r, err, status, resp)
}

// renderOrderError is renderError for the checkout and payment pages:
// a missing active order sends the user to their cart, not to the
// storefront.
func (s *Server) renderOrderError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := classifyError(err)
	if errors.Is(err, cartdomain.ErrNoActiveOrder) {
		resp.Redirect = "/cart"
	}
	s.writeError(w, r, err, status, resp)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error, status int, resp errorResponse) {
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	} else {
		s.log.Info("request rejected", "method", r.Method, "path", r.URL.Path, "code", resp.Code, "error", err)
	}
	s.writeJSON(w, status, resp)
}

func classifyError(err error) (int, errorResponse) {
	var gwErr *paymentdomain.GatewayError

	switch {
	case errors.Is(err, catalogapp.ErrInvalidInput):
		return http.StatusBadRequest, errorResponse{
			Code:   "INVALID_ARGUMENT",
			Notice: errorNotice("The request was not valid"),
		}
	case errors.Is(err, catalogapp.ErrNotFound):
		return http.StatusNotFound, errorResponse{
			Code:   "NOT_FOUND",
			Notice: errorNotice("The item you requested does not exist"),
		}
	case errors.Is(err, cartdomain.ErrNoActiveOrder):
		return http.StatusConflict, errorResponse{
			Code:     "NO_ACTIVE_ORDER",
			Notice:   errorNotice("You do not have an active order"),
			Redirect: "/",
		}
	case errors.Is(err, checkoutdomain.ErrInvalidForm):
		return http.StatusUnprocessableEntity, errorResponse{
			Code:   "INVALID_FORM",
			Notice: warnNotice("Failed checkout: " + err.Error()),
		}
	case errors.Is(err, checkoutdomain.ErrInvalidPaymentOption):
		return http.StatusBadRequest, errorResponse{
			Code:     "INVALID_PAYMENT_OPTION",
			Notice:   warnNotice("Invalid payment option selected"),
			Redirect: "/checkout",
		}
	case errors.Is(err, paymentdomain.ErrUnknownGateway):
		return http.StatusNotFound, errorResponse{
			Code:   "UNKNOWN_GATEWAY",
			Notice: errorNotice("The selected payment method is not available"),
		}
	case errors.Is(err, paymentdomain.ErrBillingRequired):
		return http.StatusConflict, errorResponse{
			Code:     "BILLING_REQUIRED",
			Notice:   warnNotice("You have not added a billing address"),
			Redirect: "/checkout",
		}
	case errors.Is(err, paymentdomain.ErrEmptyOrder):
		return http.StatusConflict, errorResponse{
			Code:     "EMPTY_ORDER",
			Notice:   warnNotice("Your cart is empty"),
			Redirect: "/",
		}
	case errors.As(err, &gwErr):
		return http.StatusPaymentRequired, errorResponse{
			Code:     "PAYMENT_FAILED",
			Notice:   warnNotice(gwErr.Kind.Message()),
			Redirect: "/payment/" + gwErr.Gateway,
		}
	default:
		return http.StatusInternalServerError, errorResponse{
			Code:   "INTERNAL",
			Notice: errorNotice("A serious error occurred. We have been notified."),
		}
	}
}
