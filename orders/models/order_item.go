package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is a line item owned by an order. Product name and unit price
// are snapshots taken at order creation, not live joins; catalog changes
// never rewrite past orders. Quantity positivity is a check constraint at
// the persistence layer only.
type OrderItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	OrderID     uint            `gorm:"not null;index" json:"order_id"`
	ProductID   uint            `gorm:"not null" json:"product_id"`
	ProductName string          `gorm:"type:varchar(255);not null" json:"product_name"`
	Quantity    int             `gorm:"not null;check:quantity > 0" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
}

// Subtotal is derived, never stored.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
