package paypal

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"

	"github.com/adityarama/shopfront/internal/payment/app"
	"github.com/adityarama/shopfront/internal/payment/domain"
	paypalsdk "github.com/plutov/paypal/v4"
)

type Gateway struct {
	client *paypalsdk.Client
}

func New(clientID, secret string, live bool) (*Gateway, error) {
	base := paypalsdk.APIBaseSandBox
	if live {
		base = paypalsdk.APIBaseLive
	}
	c, err := paypalsdk.NewClient(clientID, secret, base)
	if err != nil {
		return nil, err
	}
	return &Gateway{client: c}, nil
}

func (g *Gateway) Name() string { return "paypal" }

// CreateCharge captures a buyer-approved PayPal order. The token is
// the PayPal order id produced by the client-side approval flow.
func (g *Gateway) CreateCharge(ctx context.Context, req app.ChargeRequest) (app.Charge, error) {
	if g.client.Token == nil {
		if _, err := g.client.GetAccessToken(ctx); err != nil {
			return app.Charge{}, &domain.GatewayError{Kind: classify(err), Gateway: g.Name(), Err: err}
		}
	}

	res, err := g.client.CaptureOrder(ctx, req.Token, paypalsdk.CaptureOrderRequest{})
	if err != nil {
		return app.Charge{}, &domain.GatewayError{Kind: classify(err), Gateway: g.Name(), Err: err}
	}
	return app.Charge{ID: res.ID}, nil
}

func classify(err error) domain.FailureKind {
	var pErr *paypalsdk.ErrorResponse
	if errors.As(err, &pErr) {
		status := 0
		if pErr.Response != nil {
			status = pErr.Response.StatusCode
		}
		switch {
		case status == http.StatusTooManyRequests:
			return domain.FailureRateLimited
		case status == http.StatusUnauthorized || status == http.StatusForbidden:
			return domain.FailureAuthFailed
		case hasIssue(pErr, "INSTRUMENT_DECLINED"):
			return domain.FailureCardDeclined
		case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
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

func hasIssue(err *paypalsdk.ErrorResponse, issue string) bool {
	for _, d := range err.Details {
		if d.Issue == issue {
			return true
		}
	}
	return false
}
