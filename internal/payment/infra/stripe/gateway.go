package stripe

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"

	"github.com/adityarama/shopfront/internal/payment/app"
	"github.com/adityarama/shopfront/internal/payment/domain"
	stripego "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

type Gateway struct {
	api *client.API
}

func New(secretKey string) *Gateway {
	return &Gateway{api: client.New(secretKey, nil)}
}

func (g *Gateway) Name() string { return "stripe" }

// CreateCharge charges the token via the Charges API. Amount is in
// minor currency units already; no conversion happens here.
func (g *Gateway) CreateCharge(ctx context.Context, req app.ChargeRequest) (app.Charge, error) {
	params := &stripego.ChargeParams{
		Params:   stripego.Params{Context: ctx},
		Amount:   stripego.Int64(req.Amount),
		Currency: stripego.String(req.Currency),
	}
	if err := params.SetSource(req.Token); err != nil {
		return app.Charge{}, &domain.GatewayError{Kind: domain.FailureInvalidRequest, Gateway: g.Name(), Err: err}
	}

	ch, err := g.api.Charges.New(params)
	if err != nil {
		return app.Charge{}, &domain.GatewayError{Kind: Classify(err), Gateway: g.Name(), Err: err}
	}
	return app.Charge{ID: ch.ID}, nil
}

// Classify maps a stripe-go error onto the payment failure taxonomy.
func Classify(err error) domain.FailureKind {
	var sErr *stripego.Error
	if errors.As(err, &sErr) {
		switch {
		case sErr.Type == stripego.ErrorTypeCard:
			return domain.FailureCardDeclined
		case sErr.Code == stripego.ErrorCodeRateLimit ||
			sErr.HTTPStatusCode == http.StatusTooManyRequests:
			return domain.FailureRateLimited
		case sErr.HTTPStatusCode == http.StatusUnauthorized ||
			sErr.HTTPStatusCode == http.StatusForbidden:
			return domain.FailureAuthFailed
		case sErr.Type == stripego.ErrorTypeInvalidRequest:
			return domain.FailureInvalidRequest
		default:
			return domain.FailureGateway
		}
	}

	var netErr net.Error
	var urlErr *url.Error
	if errors.As(err, &netErr) || errors.As(err, &urlErr) {
		return domain.FailureConnection
	}
	return domain.FailureUnknown
}
