package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/snackhouse/food-orders/products/models"
)

// ProductRepository is the catalog persistence port. Lookups return
// (nil, nil) when no product matches.
type ProductRepository interface {
	GetByID(id uint) (*models.Product, error)
	GetAll() ([]models.Product, error)
	GetByCategory(category models.Category) ([]models.Product, error)
	GetActiveProducts() ([]models.Product, error)
	Add(product *models.Product) (*models.Product, error)
	Update(product *models.Product) (*models.Product, error)
	Delete(id uint) (bool, error)
}

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	err := r.db.Order("category asc, name asc").Find(&products).Error
	return products, err
}

func (r *GormProductRepository) GetByCategory(category models.Category) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("category = ?", category).
		Order("name asc").
		Find(&products).Error
	return products, err
}

func (r *GormProductRepository) GetActiveProducts() ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("active = ?", true).
		Order("category asc, name asc").
		Find(&products).Error
	return products, err
}

func (r *GormProductRepository) Add(product *models.Product) (*models.Product, error) {
	now := time.Now().UTC()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now
	if err := r.db.Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func (r *GormProductRepository) Update(product *models.Product) (*models.Product, error) {
	product.UpdatedAt = time.Now().UTC()
	if err := r.db.Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func (r *GormProductRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&models.Product{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
