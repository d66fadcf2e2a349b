package repository

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/snackhouse/food-orders/orders/models"
)

// OrderRepository is the persistence port consumed by the services. Lookups
// return (nil, nil) when no order matches.
type OrderRepository interface {
	GetByID(id uint) (*models.Order, error)
	GetByIDWithItems(id uint) (*models.Order, error)
	GetAll() ([]models.Order, error)
	GetActiveOrders() ([]models.Order, error)
	GetByStatus(status models.OrderStatus) ([]models.Order, error)
	Add(order *models.Order) (*models.Order, error)
	Update(order *models.Order) (*models.Order, error)
	Delete(id uint) (bool, error)
	GetNextOrderNumber() (int, error)
}

type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *GormOrderRepository) GetByIDWithItems(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *GormOrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

func (r *GormOrderRepository) GetActiveOrders() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").
		Where("status <> ?", models.OrderStatusFinalized).
		Order("created_at asc").
		Find(&orders).Error
	return orders, err
}

func (r *GormOrderRepository) GetByStatus(status models.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").
		Where("status = ?", status).
		Order("created_at asc").
		Find(&orders).Error
	return orders, err
}

// Add persists a new order with its items. The unique index on number is
// the authority under concurrent creation: when the pre-allocated number
// collides, the number is re-read and the insert retried.
func (r *GormOrderRepository) Add(order *models.Order) (*models.Order, error) {
	const maxAttempts = 3

	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		err = r.db.Create(order).Error
		if err == nil {
			return r.GetByIDWithItems(order.ID)
		}
		if !isDuplicateNumber(err) {
			return nil, err
		}

		next, numErr := r.GetNextOrderNumber()
		if numErr != nil {
			return nil, numErr
		}
		order.Number = next
	}
	return nil, err
}

func (r *GormOrderRepository) Update(order *models.Order) (*models.Order, error) {
	// Safety net: storage refreshes the mutation timestamp even when the
	// entity path missed it.
	order.UpdatedAt = time.Now().UTC()
	if err := r.db.Save(order).Error; err != nil {
		return nil, err
	}
	return r.GetByIDWithItems(order.ID)
}

// Delete removes the order and its items. Returns false when no row
// matched.
func (r *GormOrderRepository) Delete(id uint) (bool, error) {
	deleted := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Order{}, id)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	return deleted, err
}

// GetNextOrderNumber allocates based on the current maximum, not the row
// count, so numbering keeps advancing past deleted orders.
func (r *GormOrderRepository) GetNextOrderNumber() (int, error) {
	var next int
	err := r.db.Model(&models.Order{}).
		Select("COALESCE(MAX(number), 0) + 1").
		Scan(&next).Error
	return next, err
}

func isDuplicateNumber(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	// MySQL 1062 and sqlite phrase the violation differently.
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
