package rest

import (
	"net/http"
	"strconv"

	catalogdomain "github.com/adityarama/shopfront/internal/catalog/domain"
	"github.com/go-chi/chi/v5"
)

type itemPayload struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	PriceAmount int64  `json:"price_amount"`
	Currency    string `json:"currency"`
	Description string `json:"description,omitempty"`
}

func toItemPayload(it catalogdomain.Item) itemPayload {
	return itemPayload{
		ID:          it.ID,
		Title:       it.Title,
		Slug:        it.Slug,
		PriceAmount: it.Price.Amount,
		Currency:    it.Price.Currency,
		Description: it.Description,
	}
}

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	cursor := r.URL.Query().Get("cursor")

	items, next, err := s.catalog.ListItems(r.Context(), limit, cursor)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	payload := make([]itemPayload, 0, len(items))
	for _, it := range items {
		payload = append(payload, toItemPayload(it))
	}

	s.writeJSON(w, http.StatusOK, struct {
		Items      []itemPayload `json:"items"`
		NextCursor string        `json:"next_cursor,omitempty"`
	}{Items: payload, NextCursor: next})
}

func (s *Server) handleProductDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	item, err := s.catalog.GetBySlug(r.Context(), slug)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	resp := struct {
		Item         itemPayload `json:"item"`
		CartQuantity int         `json:"cart_quantity"`
	}{Item: toItemPayload(item)}

	// Signed-in visitors see how many of this item their cart holds.
	if userID := UserID(r.Context()); userID != "" {
		if order, err := s.cart.GetCart(r.Context(), userID); err == nil {
			if line, ok := order.Line(slug); ok {
				resp.CartQuantity = line.Quantity
			}
		}
	}

	s.writeJSON(w, http.StatusOK, resp)
}
