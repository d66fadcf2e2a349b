package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/snackhouse/food-orders/products/models"
	"github.com/snackhouse/food-orders/products/repository"
)

type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category" binding:"required"`
	Description string          `json:"description,omitempty"`
	ImageURL    string          `json:"image_url,omitempty"`
}

type UpdateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category" binding:"required"`
	Description string          `json:"description,omitempty"`
	Active      bool            `json:"active"`
	ImageURL    string          `json:"image_url,omitempty"`
}

type ProductResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Active      bool            `json:"active"`
	ImageURL    string          `json:"image_url,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type ProductService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// GetByID returns (nil, nil) for a missing product; the controller answers
// 404, which the orders service relies on during item validation.
func (s *ProductService) GetByID(id uint) (*ProductResponse, error) {
	product, err := s.repo.GetByID(id)
	if err != nil || product == nil {
		return nil, err
	}
	return mapProduct(product), nil
}

func (s *ProductService) GetAll() ([]ProductResponse, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return mapProducts(products), nil
}

func (s *ProductService) GetByCategory(category models.Category) ([]ProductResponse, error) {
	products, err := s.repo.GetByCategory(category)
	if err != nil {
		return nil, err
	}
	return mapProducts(products), nil
}

func (s *ProductService) GetActiveProducts() ([]ProductResponse, error) {
	products, err := s.repo.GetActiveProducts()
	if err != nil {
		return nil, err
	}
	return mapProducts(products), nil
}

func (s *ProductService) Create(req CreateProductRequest) (*ProductResponse, error) {
	category, err := models.ParseCategory(req.Category)
	if err != nil {
		return nil, err
	}
	if req.Price.IsNegative() {
		return nil, models.ErrNegativePrice
	}

	now := time.Now().UTC()
	product := &models.Product{
		Name:        req.Name,
		Price:       req.Price,
		Category:    category,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Add(product)
	if err != nil {
		return nil, err
	}
	return mapProduct(created), nil
}

func (s *ProductService) Update(id uint, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	category, err := models.ParseCategory(req.Category)
	if err != nil {
		return nil, err
	}

	if err := product.UpdateInfo(req.Name, req.Description, req.ImageURL); err != nil {
		return nil, err
	}
	if err := product.UpdatePrice(req.Price); err != nil {
		return nil, err
	}
	product.Category = category
	if req.Active {
		product.Activate()
	} else {
		product.Deactivate()
	}

	updated, err := s.repo.Update(product)
	if err != nil {
		return nil, err
	}
	return mapProduct(updated), nil
}

func (s *ProductService) Delete(id uint) (bool, error) {
	return s.repo.Delete(id)
}

func mapProduct(p *models.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Category:    string(p.Category),
		Description: p.Description,
		Active:      p.Active,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func mapProducts(products []models.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, *mapProduct(&products[i]))
	}
	return out
}
