package storage

import (
	"time"

	"gorm.io/gorm"
)

// Row types shared by the per-context postgres repositories. Money is
// always integer minor units.

type Item struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	Title       string `gorm:"size:255;not null"`
	Slug        string `gorm:"size:255;uniqueIndex;not null"`
	PriceAmount int64  `gorm:"not null"`
	Currency    string `gorm:"size:8;not null"`
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Order struct {
	ID string `gorm:"type:uuid;primaryKey"`
	// one active (ordered=false) order per user
	UserID           string `gorm:"type:uuid;not null;index:uniq_active_order,unique,where:ordered = false"`
	Ordered          bool   `gorm:"not null;default:false;index"`
	OrderedDate      time.Time
	BillingAddressID *string     `gorm:"type:uuid"`
	PaymentID        *string     `gorm:"type:uuid"`
	Items            []OrderItem `gorm:"foreignKey:OrderID"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type OrderItem struct {
	ID     string `gorm:"type:uuid;primaryKey"`
	UserID string `gorm:"type:uuid;not null;index:uniq_open_line,unique,where:ordered = false"`
	ItemID string `gorm:"type:uuid;not null;index:uniq_open_line,unique,where:ordered = false"`
	// null until the line is attached to an order
	OrderID   *string `gorm:"type:uuid;index"`
	Quantity  int     `gorm:"not null;default:1"`
	Ordered   bool    `gorm:"not null;default:false"`
	Item      Item    `gorm:"foreignKey:ItemID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type BillingAddress struct {
	ID               string `gorm:"type:uuid;primaryKey"`
	UserID           string `gorm:"type:uuid;not null;index"`
	StreetAddress    string `gorm:"size:255;not null"`
	ApartmentAddress string `gorm:"size:255"`
	Country          string `gorm:"size:64;not null"`
	Zip              string `gorm:"size:32;not null"`
	CreatedAt        time.Time
}

type Payment struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Gateway   string `gorm:"size:16;not null"`
	ChargeID  string `gorm:"size:128;uniqueIndex;not null"`
	UserID    string `gorm:"type:uuid;not null;index"`
	Amount    int64  `gorm:"not null"`
	Currency  string `gorm:"size:8;not null"`
	CreatedAt time.Time
}

// Migrate creates or updates the schema. Idempotent.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Item{},
		&Order{},
		&OrderItem{},
		&BillingAddress{},
		&Payment{},
	)
}
