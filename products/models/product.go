package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Category groups catalog items on the menu.
type Category string

const (
	CategorySandwich Category = "SANDWICH"
	CategorySide     Category = "SIDE"
	CategoryDrink    Category = "DRINK"
	CategoryDessert  Category = "DESSERT"
)

func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToUpper(strings.TrimSpace(s))) {
	case CategorySandwich:
		return CategorySandwich, nil
	case CategorySide:
		return CategorySide, nil
	case CategoryDrink:
		return CategoryDrink, nil
	case CategoryDessert:
		return CategoryDessert, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
}

var (
	ErrNameRequired    = errors.New("product name is required")
	ErrNegativePrice   = errors.New("product price cannot be negative")
	ErrUnknownCategory = errors.New("unknown product category")
)

// Product is a catalog entry. Orders snapshot name and price at creation
// time, so edits here never rewrite existing orders.
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Category    Category        `gorm:"type:varchar(20);not null;index" json:"category"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Active      bool            `gorm:"not null;default:true" json:"active"`
	ImageURL    string          `gorm:"type:varchar(512)" json:"image_url,omitempty"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

func (p *Product) Activate()   { p.Active = true }
func (p *Product) Deactivate() { p.Active = false }

func (p *Product) UpdatePrice(newPrice decimal.Decimal) error {
	if newPrice.IsNegative() {
		return ErrNegativePrice
	}
	p.Price = newPrice
	p.UpdatedAt = time.Now().UTC()
	return nil
}

func (p *Product) UpdateInfo(name, description, imageURL string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	p.Name = name
	p.Description = description
	p.ImageURL = imageURL
	p.UpdatedAt = time.Now().UTC()
	return nil
}
