package domain

import (
	"errors"
	"time"
)

var (
	// ErrNoActiveOrder means the user has no order with ordered=false.
	ErrNoActiveOrder = errors.New("no active order")
)

// Order with Ordered=false is the user's cart. At most one such order
// exists per user at any time.
type Order struct {
	ID               string
	UserID           string
	Ordered          bool
	OrderedDate      time.Time
	BillingAddressID string
	PaymentID        string
	Items            []OrderItem
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// OrderItem is one (item, quantity) line. A line is created detached
// (OrderID empty) and attached to the active order on add.
type OrderItem struct {
	ID       string
	UserID   string
	ItemID   string
	OrderID  string
	Quantity int

	// item snapshot for display and totals
	Slug       string
	Title      string
	UnitAmount int64
	Currency   string
}

func (i OrderItem) LineTotal() int64 {
	return i.UnitAmount * int64(i.Quantity)
}

// TotalAmount is the order total in minor currency units.
func (o Order) TotalAmount() int64 {
	var total int64
	for _, it := range o.Items {
		total += it.LineTotal()
	}
	return total
}

// Line returns the order line for the given item slug, if present.
func (o Order) Line(slug string) (OrderItem, bool) {
	for _, it := range o.Items {
		if it.Slug == slug {
			return it, true
		}
	}
	return OrderItem{}, false
}

// Operation is a cart mutation kind. The HTTP layer exposes several
// near-identical endpoints; they all funnel into these three.
type Operation int

const (
	OpAdd Operation = iota
	OpRemoveAll
	OpRemoveSingle
)

func (op Operation) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpRemoveAll:
		return "remove_all"
	case OpRemoveSingle:
		return "remove_single"
	default:
		return "unknown"
	}
}

// Result describes what a cart mutation did.
type Result int

const (
	ResultAdded Result = iota
	ResultQuantityChanged
	ResultRemoved
	ResultNotInCart
	ResultNoActiveOrder
)

func (r Result) String() string {
	switch r {
	case ResultAdded:
		return "added"
	case ResultQuantityChanged:
		return "quantity_changed"
	case ResultRemoved:
		return "removed"
	case ResultNotInCart:
		return "not_in_cart"
	case ResultNoActiveOrder:
		return "no_active_order"
	default:
		return "unknown"
	}
}

// Mutation is the outcome of a cart operation. Quantity is the line
// quantity after the mutation, 0 when the line is gone.
type Mutation struct {
	Result   Result
	Quantity int
}
