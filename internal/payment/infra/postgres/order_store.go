package postgres

import (
	"context"
	"errors"
	"fmt"

	cartdomain "github.com/adityarama/shopfront/internal/cart/domain"
	"github.com/adityarama/shopfront/internal/payment/app"
	"github.com/adityarama/shopfront/internal/payment/domain"
	"github.com/adityarama/shopfront/internal/storage"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStore struct {
	db *gorm.DB
}

func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{db: db}
}

func (s *OrderStore) FindActiveOrder(ctx context.Context, userID string) (app.ActiveOrder, error) {
	var row storage.Order
	err := s.db.WithContext(ctx).
		Preload("Items", "ordered = ?", false).
		Preload("Items.Item").
		First(&row, "user_id = ? AND ordered = ?", userID, false).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return app.ActiveOrder{}, cartdomain.ErrNoActiveOrder
	}
	if err != nil {
		return app.ActiveOrder{}, err
	}

	out := app.ActiveOrder{
		ID:              row.ID,
		UserID:          row.UserID,
		BillingAttached: row.BillingAddressID != nil,
	}
	for _, it := range row.Items {
		out.Amount += it.Item.PriceAmount * int64(it.Quantity)
		out.Currency = it.Item.Currency
	}
	return out, nil
}

func (s *OrderStore) MarkPaid(ctx context.Context, orderID string, p domain.Payment) (domain.Payment, error) {
	row := storage.Payment{
		ID:       uuid.NewString(),
		Gateway:  p.Gateway,
		ChargeID: p.ChargeID,
		UserID:   p.UserID,
		Amount:   p.Amount,
		Currency: p.Currency,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}

		res := tx.Model(&storage.Order{}).
			Where("id = ? AND ordered = ?", orderID, false).
			Updates(map[string]interface{}{"ordered": true, "payment_id": row.ID})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("order %s is no longer open", orderID)
		}

		// close the lines too, so future get-or-create starts fresh
		return tx.Model(&storage.OrderItem{}).
			Where("order_id = ?", orderID).
			Update("ordered", true).Error
	})
	if err != nil {
		return domain.Payment{}, err
	}

	p.ID = row.ID
	p.CreatedAt = row.CreatedAt
	return p, nil
}
