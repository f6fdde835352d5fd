package rest

import (
	"net/http"

	cartdomain "github.com/adityarama/shopfront/internal/cart/domain"
	"github.com/go-chi/chi/v5"
)

type cartLinePayload struct {
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	Quantity   int    `json:"quantity"`
	UnitAmount int64  `json:"unit_amount"`
	LineTotal  int64  `json:"line_total"`
	Currency   string `json:"currency"`
}

type cartPayload struct {
	OrderID     string            `json:"order_id"`
	Lines       []cartLinePayload `json:"lines"`
	TotalAmount int64             `json:"total_amount"`
}

type mutationResponse struct {
	Result   string  `json:"result"`
	Quantity int     `json:"quantity"`
	Notice   *notice `json:"notice,omitempty"`
	Redirect string  `json:"redirect,omitempty"`
}

func (s *Server) handleCartView(w http.ResponseWriter, r *http.Request) {
	order, err := s.cart.GetCart(r.Context(), UserID(r.Context()))
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	resp := cartPayload{
		OrderID:     order.ID,
		Lines:       make([]cartLinePayload, 0, len(order.Items)),
		TotalAmount: order.TotalAmount(),
	}
	for _, line := range order.Items {
		resp.Lines = append(resp.Lines, cartLinePayload{
			Slug:       line.Slug,
			Title:      line.Title,
			Quantity:   line.Quantity,
			UnitAmount: line.UnitAmount,
			LineTotal:  line.LineTotal(),
			Currency:   line.Currency,
		})
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// mutateCart builds the handler for every add/remove endpoint. The
// operation and the page the client lands on afterwards are the only
// things that differ between them.
func (s *Server) mutateCart(op cartdomain.Operation, successRedirect func(slug string) string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		m, err := s.cart.Mutate(r.Context(), UserID(r.Context()), slug, op)
		if err != nil {
			s.renderError(w, r, err)
			return
		}

		resp := mutationResponse{
			Result:   m.Result.String(),
			Quantity: m.Quantity,
		}
		switch m.Result {
		case cartdomain.ResultAdded:
			resp.Notice = successNotice("This item was added to your cart")
			resp.Redirect = successRedirect(slug)
		case cartdomain.ResultQuantityChanged:
			resp.Notice = successNotice("This item quantity was updated")
			resp.Redirect = successRedirect(slug)
		case cartdomain.ResultRemoved:
			resp.Notice = successNotice("This item was removed from your cart")
			resp.Redirect = successRedirect(slug)
		case cartdomain.ResultNotInCart:
			resp.Notice = infoNotice("This item was not in your cart")
			resp.Redirect = productPath(slug)
		case cartdomain.ResultNoActiveOrder:
			resp.Notice = infoNotice("You do not have an active order")
			resp.Redirect = productPath(slug)
		}
		s.writeJSON(w, http.StatusOK, resp)
	}
}
