package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/adityarama/shopfront/internal/cart/app"
	"github.com/adityarama/shopfront/internal/cart/domain"
	"github.com/adityarama/shopfront/internal/storage"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepo struct {
	db   *gorm.DB
	inTx bool
}

func NewOrderRepo(db *gorm.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) WithinTx(ctx context.Context, fn func(app.OrderRepo) error) error {
	if r.inTx {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&OrderRepo{db: tx, inTx: true})
	})
}

func (r *OrderRepo) FindActiveOrder(ctx context.Context, userID string) (domain.Order, error) {
	q := r.db.WithContext(ctx).
		Preload("Items", "ordered = ?", false).
		Preload("Items.Item")
	if r.inTx {
		// serialize concurrent mutations of the same cart
		q = q.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "orders"}})
	}

	var row storage.Order
	err := q.First(&row, "user_id = ? AND ordered = ?", userID, false).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Order{}, domain.ErrNoActiveOrder
	}
	if err != nil {
		return domain.Order{}, err
	}
	return toDomainOrder(row), nil
}

func (r *OrderRepo) CreateActiveOrder(ctx context.Context, userID string, now time.Time) (domain.Order, error) {
	row := storage.Order{
		ID:          uuid.NewString(),
		UserID:      userID,
		Ordered:     false,
		OrderedDate: now,
	}

	// ON CONFLICT DO NOTHING instead of catching the unique violation:
	// a failed insert would abort the surrounding transaction and make
	// the re-read fail too.
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
	if res.Error != nil {
		return domain.Order{}, res.Error
	}
	if res.RowsAffected == 0 {
		// concurrent request created the cart first; use theirs
		return r.FindActiveOrder(ctx, userID)
	}
	return toDomainOrder(row), nil
}

func (r *OrderRepo) GetOrCreateOrderItem(ctx context.Context, userID, itemID string) (domain.OrderItem, error) {
	row := storage.OrderItem{
		ID:       uuid.NewString(),
		UserID:   userID,
		ItemID:   itemID,
		Quantity: 1,
	}
	// insert-or-skip: the partial unique index on open lines makes the
	// insert a no-op when the line already exists, without aborting the
	// surrounding transaction.
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
	if err != nil {
		return domain.OrderItem{}, err
	}
	return r.findOpenLine(ctx, userID, itemID)
}

func (r *OrderRepo) AttachLine(ctx context.Context, orderID, lineID string) error {
	return r.db.WithContext(ctx).Model(&storage.OrderItem{}).
		Where("id = ? AND (order_id IS NULL OR order_id = ?)", lineID, orderID).
		Update("order_id", orderID).Error
}

func (r *OrderRepo) DetachLine(ctx context.Context, orderID, lineID string) error {
	return r.db.WithContext(ctx).Model(&storage.OrderItem{}).
		Where("id = ? AND order_id = ?", lineID, orderID).
		Updates(map[string]interface{}{"order_id": nil, "quantity": 1}).Error
}

func (r *OrderRepo) IncrementQuantity(ctx context.Context, lineID string) (int, error) {
	var qty int
	res := r.db.WithContext(ctx).
		Raw("UPDATE order_items SET quantity = quantity + 1, updated_at = now() WHERE id = ? RETURNING quantity", lineID).
		Scan(&qty)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return qty, nil
}

func (r *OrderRepo) DecrementQuantity(ctx context.Context, lineID string) (int, error) {
	var qty int
	res := r.db.WithContext(ctx).
		Raw("UPDATE order_items SET quantity = quantity - 1, updated_at = now() WHERE id = ? AND quantity > 1 RETURNING quantity", lineID).
		Scan(&qty)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		// guard hit: the line was already at the minimum
		return 1, nil
	}
	return qty, nil
}

func (r *OrderRepo) findOpenLine(ctx context.Context, userID, itemID string) (domain.OrderItem, error) {
	var row storage.OrderItem
	err := r.db.WithContext(ctx).Preload("Item").
		First(&row, "user_id = ? AND item_id = ? AND ordered = ?", userID, itemID, false).Error
	if err != nil {
		return domain.OrderItem{}, err
	}
	return toDomainLine(row), nil
}

func toDomainOrder(row storage.Order) domain.Order {
	items := make([]domain.OrderItem, 0, len(row.Items))
	for _, it := range row.Items {
		items = append(items, toDomainLine(it))
	}

	o := domain.Order{
		ID:          row.ID,
		UserID:      row.UserID,
		Ordered:     row.Ordered,
		OrderedDate: row.OrderedDate,
		Items:       items,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if row.BillingAddressID != nil {
		o.BillingAddressID = *row.BillingAddressID
	}
	if row.PaymentID != nil {
		o.PaymentID = *row.PaymentID
	}
	return o
}

func toDomainLine(row storage.OrderItem) domain.OrderItem {
	line := domain.OrderItem{
		ID:         row.ID,
		UserID:     row.UserID,
		ItemID:     row.ItemID,
		Quantity:   row.Quantity,
		Slug:       row.Item.Slug,
		Title:      row.Item.Title,
		UnitAmount: row.Item.PriceAmount,
		Currency:   row.Item.Currency,
	}
	if row.OrderID != nil {
		line.OrderID = *row.OrderID
	}
	return line
}
