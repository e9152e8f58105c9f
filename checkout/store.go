package checkout

import (
	"errors"

	"gorm.io/gorm"

	"github.com/alialzoriki7-lab/kado-store/models"
)

var ErrInsufficientStock = errors.New("insufficient stock")

type gormStore struct {
	db    *gorm.DB
	guard bool
}

// NewGormStore persists checkouts through gorm. With guard enabled the
// decrement is conditional and refuses to drive stock negative; without it
// the baseline unguarded decrement is kept, so two concurrent checkouts of
// the same low-stock product can both succeed. That race is a documented
// limitation of the baseline behavior.
func NewGormStore(db *gorm.DB, guard bool) Store {
	return &gormStore{db: db, guard: guard}
}

func (s *gormStore) InsertOrder(order *models.Order) error {
	return s.db.Create(order).Error
}

func (s *gormStore) DecrementStock(productID string, qty int) error {
	q := s.db.Model(&models.Product{}).Where("id = ?", productID)
	if s.guard {
		q = q.Where("stock >= ?", qty)
	}

	res := q.UpdateColumn("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if s.guard && res.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}

func (s *gormStore) UpdateOrderStatus(orderID string, status models.PaymentStatus) error {
	return s.db.Model(&models.Order{}).Where("id = ?", orderID).
		Update("payment_status", status).Error
}
