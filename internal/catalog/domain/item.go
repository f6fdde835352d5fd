package domain

import "time"

type Money struct {
	Currency string
	Amount   int64
}

// Item is a purchasable catalog entry. The shop treats items as
// read-only; they are maintained by an external catalog process.
type Item struct {
	ID          string
	Title       string
	Slug        string
	Price       Money
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
