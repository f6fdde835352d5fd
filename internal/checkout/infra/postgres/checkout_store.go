package postgres

import (
	"context"
	"fmt"

	"github.com/adityarama/shopfront/internal/checkout/domain"
	"github.com/adityarama/shopfront/internal/storage"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CheckoutStore struct {
	db *gorm.DB
}

func NewCheckoutStore(db *gorm.DB) *CheckoutStore {
	return &CheckoutStore{db: db}
}

func (s *CheckoutStore) AttachBillingAddress(ctx context.Context, orderID string, addr domain.BillingAddress) (domain.BillingAddress, error) {
	row := storage.BillingAddress{
		ID:               uuid.NewString(),
		UserID:           addr.UserID,
		StreetAddress:    addr.StreetAddress,
		ApartmentAddress: addr.ApartmentAddress,
		Country:          addr.Country,
		Zip:              addr.Zip,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		res := tx.Model(&storage.Order{}).
			Where("id = ? AND ordered = ?", orderID, false).
			Update("billing_address_id", row.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("order %s is not open", orderID)
		}
		return nil
	})
	if err != nil {
		return domain.BillingAddress{}, err
	}

	addr.ID = row.ID
	addr.CreatedAt = row.CreatedAt
	return addr, nil
}
