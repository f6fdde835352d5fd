package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidForm          = errors.New("invalid billing form")
	ErrInvalidPaymentOption = errors.New("invalid payment option selected")
)

// PaymentOption is the selector submitted with the billing form.
type PaymentOption string

const (
	OptionStripe PaymentOption = "S"
	OptionPayPal PaymentOption = "P"
)

// Gateway maps the form selector to a payment gateway name.
func (o PaymentOption) Gateway() (string, bool) {
	switch o {
	case OptionStripe:
		return "stripe", true
	case OptionPayPal:
		return "paypal", true
	default:
		return "", false
	}
}

// BillingAddress is immutable once created; every checkout submission
// creates a new one.
type BillingAddress struct {
	ID               string
	UserID           string
	StreetAddress    string
	ApartmentAddress string
	Country          string
	Zip              string
	CreatedAt        time.Time
}

type SummaryLine struct {
	Slug       string
	Title      string
	Quantity   int
	UnitAmount int64
	LineTotal  int64
}

// Summary is what the checkout and payment pages show: the active
// order's lines and total, in minor currency units.
type Summary struct {
	OrderID     string
	Lines       []SummaryLine
	Currency    string
	TotalAmount int64
}
