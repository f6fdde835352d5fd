package stripe

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/adityarama/shopfront/internal/payment/domain"
	stripego "github.com/stripe/stripe-go/v76"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want domain.FailureKind
	}{
		{
			name: "card error -> declined",
			err:  &stripego.Error{Type: stripego.ErrorTypeCard},
			want: domain.FailureCardDeclined,
		},
		{
			name: "rate limit code -> rate limited",
			err:  &stripego.Error{Type: stripego.ErrorTypeAPI, Code: stripego.ErrorCodeRateLimit},
			want: domain.FailureRateLimited,
		},
		{
			name: "429 status -> rate limited",
			err:  &stripego.Error{Type: stripego.ErrorTypeAPI, HTTPStatusCode: http.StatusTooManyRequests},
			want: domain.FailureRateLimited,
		},
		{
			name: "401 -> auth failed",
			err:  &stripego.Error{Type: stripego.ErrorTypeInvalidRequest, HTTPStatusCode: http.StatusUnauthorized},
			want: domain.FailureAuthFailed,
		},
		{
			name: "invalid request -> invalid",
			err:  &stripego.Error{Type: stripego.ErrorTypeInvalidRequest, HTTPStatusCode: http.StatusBadRequest},
			want: domain.FailureInvalidRequest,
		},
		{
			name: "api error -> gateway",
			err:  &stripego.Error{Type: stripego.ErrorTypeAPI},
			want: domain.FailureGateway,
		},
		{
			name: "transport error -> connection",
			err:  &url.Error{Op: "Post", URL: "https://api.stripe.com", Err: errors.New("dial timeout")},
			want: domain.FailureConnection,
		},
		{
			name: "anything else -> unknown",
			err:  errors.New("boom"),
			want: domain.FailureUnknown,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.err); got != tc.want {
				t.Fatalf("Classify() = %v, want %v", got, tc.want)
			}
		})
	}
}
