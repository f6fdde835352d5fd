package rest

import (
	"net/http"

	checkoutapp "github.com/adityarama/shopfront/internal/checkout/app"
	checkoutdomain "github.com/adityarama/shopfront/internal/checkout/domain"
)

type summaryLinePayload struct {
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	Quantity   int    `json:"quantity"`
	UnitAmount int64  `json:"unit_amount"`
	LineTotal  int64  `json:"line_total"`
}

type summaryPayload struct {
	OrderID     string               `json:"order_id"`
	Lines       []summaryLinePayload `json:"lines"`
	Currency    string               `json:"currency"`
	TotalAmount int64                `json:"total_amount"`
}

func toSummaryPayload(sum checkoutdomain.Summary) summaryPayload {
	resp := summaryPayload{
		OrderID:     sum.OrderID,
		Lines:       make([]summaryLinePayload, 0, len(sum.Lines)),
		Currency:    sum.Currency,
		TotalAmount: sum.TotalAmount,
	}
	for _, line := range sum.Lines {
		resp.Lines = append(resp.Lines, summaryLinePayload{
			Slug:       line.Slug,
			Title:      line.Title,
			Quantity:   line.Quantity,
			UnitAmount: line.UnitAmount,
			LineTotal:  line.LineTotal,
		})
	}
	return resp
}

func (s *Server) handleCheckoutSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := s.checkout.Summary(r.Context(), UserID(r.Context()))
	if err != nil {
		s.renderOrderError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toSummaryPayload(sum))
}

type billingFormBody struct {
	StreetAddress    string `json:"street_address"`
	ApartmentAddress string `json:"apartment_address"`
	Country          string `json:"country"`
	Zip              string `json:"zip"`
	PaymentOption    string `json:"payment_option"`
}

func (s *Server) handleCheckoutSubmit(w http.ResponseWriter, r *http.Request) {
	var body billingFormBody
	if !s.decodeJSON(w, r, &body) {
		return
	}

	gateway, err := s.checkout.SubmitBillingInfo(r.Context(), UserID(r.Context()), checkoutapp.BillingForm{
		StreetAddress:    body.StreetAddress,
		ApartmentAddress: body.ApartmentAddress,
		Country:          body.Country,
		Zip:              body.Zip,
		PaymentOption:    body.PaymentOption,
	})
	if err != nil {
		s.renderOrderError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, struct {
		Gateway  string  `json:"gateway"`
		Redirect string  `json:"redirect"`
		Notice   *notice `json:"notice"`
	}{
		Gateway:  gateway,
		Redirect: "/payment/" + gateway,
		Notice:   infoNotice("Billing information saved"),
	})
}
