package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handlePaymentSummary(w http.ResponseWriter, r *http.Request) {
	gateway := chi.URLParam(r, "gateway")

	order, err := s.payment.Summary(r.Context(), UserID(r.Context()))
	if err != nil {
		s.renderOrderError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, struct {
		Gateway         string `json:"gateway"`
		OrderID         string `json:"order_id"`
		Amount          int64  `json:"amount"`
		Currency        string `json:"currency"`
		BillingAttached bool   `json:"billing_attached"`
	}{
		Gateway:         gateway,
		OrderID:         order.ID,
		Amount:          order.Amount,
		Currency:        order.Currency,
		BillingAttached: order.BillingAttached,
	})
}

type payBody struct {
	Token string `json:"token"`
}

func (s *Server) handlePay(w http.ResponseWriter, r *http.Request) {
	gateway := chi.URLParam(r, "gateway")

	var body payBody
	if !s.decodeJSON(w, r, &body) {
		return
	}

	payment, err := s.payment.Pay(r.Context(), UserID(r.Context()), gateway, body.Token)
	if err != nil {
		s.renderOrderError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, struct {
		PaymentID string  `json:"payment_id"`
		ChargeID  string  `json:"charge_id"`
		Amount    int64   `json:"amount"`
		Currency  string  `json:"currency"`
		Notice    *notice `json:"notice"`
		Redirect  string  `json:"redirect"`
	}{
		PaymentID: payment.ID,
		ChargeID:  payment.ChargeID,
		Amount:    payment.Amount,
		Currency:  payment.Currency,
		Notice:    successNotice("Your order was successful!"),
		Redirect:  "/",
	})
}
