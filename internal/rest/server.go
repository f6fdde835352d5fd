package rest

import (
	"context"
	"log/slog"
	"net/http"

	cartdomain "github.com/adityarama/shopfront/internal/cart/domain"
	catalogdomain "github.com/adityarama/shopfront/internal/catalog/domain"
	checkoutapp "github.com/adityarama/shopfront/internal/checkout/app"
	checkoutdomain "github.com/adityarama/shopfront/internal/checkout/domain"
	paymentapp "github.com/adityarama/shopfront/internal/payment/app"
	paymentdomain "github.com/adityarama/shopfront/internal/payment/domain"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

type CatalogService interface {
	GetBySlug(ctx context.Context, slug string) (catalogdomain.Item, error)
	ListItems(ctx context.Context, limit int, cursor string) ([]catalogdomain.Item, string, error)
}

type CartService interface {
	GetCart(ctx context.Context, userID string) (cartdomain.Order, error)
	Mutate(ctx context.Context, userID, slug string, op cartdomain.Operation) (cartdomain.Mutation, error)
}

type CheckoutService interface {
	Summary(ctx context.Context, userID string) (checkoutdomain.Summary, error)
	SubmitBillingInfo(ctx context.Context, userID string, form checkoutapp.BillingForm) (string, error)
}

type PaymentService interface {
	Summary(ctx context.Context, userID string) (paymentapp.ActiveOrder, error)
	Pay(ctx context.Context, userID, gateway, token string) (paymentdomain.Payment, error)
}

type Server struct {
	catalog  CatalogService
	cart     CartService
	checkout CheckoutService
	payment  PaymentService
	tokenKey []byte
	log      *slog.Logger
}

func NewServer(catalog CatalogService, cart CartService, checkout CheckoutService, payment PaymentService, tokenKey []byte, log *slog.Logger) *Server {
	return &Server{
		catalog:  catalog,
		cart:     cart,
		checkout: checkout,
		payment:  payment,
		tokenKey: tokenKey,
		log:      log,
	}
}

// Router wires the storefront routes. The add/remove endpoints exist in
// cart-page and product-page variants; they differ only in where the
// client is sent afterwards.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Get("/", s.handleListItems)
	r.With(s.optionalUser).Get("/product/{slug}", s.handleProductDetail)

	r.Group(func(r chi.Router) {
		r.Use(s.requireUser)

		r.Get("/cart", s.handleCartView)

		r.Post("/add-to-cart/{slug}", s.mutateCart(cartdomain.OpAdd, productPath))
		r.Post("/add-item-to-cart/{slug}", s.mutateCart(cartdomain.OpAdd, cartPath))
		r.Post("/add-item-from-product/{slug}", s.mutateCart(cartdomain.OpAdd, productPath))
		r.Post("/remove-from-cart/{slug}", s.mutateCart(cartdomain.OpRemoveAll, cartPath))
		r.Post("/remove-item-from-cart/{slug}", s.mutateCart(cartdomain.OpRemoveSingle, cartPath))
		r.Post("/remove-item-from-product/{slug}", s.mutateCart(cartdomain.OpRemoveSingle, productPath))

		r.Get("/checkout", s.handleCheckoutSummary)
		r.Post("/checkout", s.handleCheckoutSubmit)

		r.Get("/payment/{gateway}", s.handlePaymentSummary)
		r.Post("/payment/{gateway}", s.handlePay)
	})

	return r
}

func productPath(slug string) string { return "/product/" + slug }

func cartPath(string) string { return "/cart" }
