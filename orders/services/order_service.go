package services

import (
	"time"

	"github.com/snackhouse/food-orders/orders/clients"
	"github.com/snackhouse/food-orders/orders/models"
	"github.com/snackhouse/food-orders/orders/repository"
)

// OrderService orchestrates order creation and lifecycle mutations. It owns
// no state; the repository and the products lookup are injected ports.
type OrderService struct {
	repo     repository.OrderRepository
	products clients.ProductsClient
}

func NewOrderService(repo repository.OrderRepository, products clients.ProductsClient) *OrderService {
	return &OrderService{repo: repo, products: products}
}

// GetByID returns (nil, nil) when the order does not exist; the transport
// layer turns that into a 404.
func (s *OrderService) GetByID(id uint) (*OrderResponse, error) {
	order, err := s.repo.GetByIDWithItems(id)
	if err != nil || order == nil {
		return nil, err
	}
	return mapOrder(order), nil
}

func (s *OrderService) GetAll() ([]OrderResponse, error) {
	orders, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return mapOrders(orders), nil
}

func (s *OrderService) GetActiveOrders() ([]OrderResponse, error) {
	orders, err := s.repo.GetActiveOrders()
	if err != nil {
		return nil, err
	}
	return mapOrders(orders), nil
}

func (s *OrderService) GetByStatus(status models.OrderStatus) ([]OrderResponse, error) {
	orders, err := s.repo.GetByStatus(status)
	if err != nil {
		return nil, err
	}
	return mapOrders(orders), nil
}

// Create validates every item against the catalog, snapshots product name
// and price, and persists the order in a single write. Nothing is written
// until all items resolve, so a failed lookup leaves no partial order.
func (s *OrderService) Create(req CreateOrderRequest) (*OrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, models.ErrOrderMustHaveItems
	}

	number, err := s.repo.GetNextOrderNumber()
	if err != nil {
		return nil, err
	}

	order := models.NewOrder(req.CustomerID, req.Observation, number)

	for _, itemReq := range req.Items {
		product, err := s.products.GetProductByID(itemReq.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, &models.NotFoundError{Resource: "product", ID: itemReq.ProductID}
		}
		if !product.Active {
			return nil, &models.ProductInactiveError{Name: product.Name}
		}

		item := models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    itemReq.Quantity,
			UnitPrice:   product.Price,
			CreatedAt:   time.Now().UTC(),
		}
		if err := order.AddItem(item); err != nil {
			return nil, err
		}
	}

	// AddItem already keeps the total current; the explicit pass stays as
	// the consistency guard before the single persistence write.
	order.RecalculateTotal()

	created, err := s.repo.Add(order)
	if err != nil {
		return nil, err
	}
	return mapOrder(created), nil
}

func (s *OrderService) UpdateStatus(id uint, status models.OrderStatus) (*OrderResponse, error) {
	order, err := s.repo.GetByIDWithItems(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, &models.NotFoundError{Resource: "order", ID: id}
	}

	if err := order.ChangeStatus(status); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(order)
	if err != nil {
		return nil, err
	}
	return mapOrder(updated), nil
}

func (s *OrderService) SetPaymentID(id uint, paymentID string) (*OrderResponse, error) {
	order, err := s.repo.GetByIDWithItems(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, &models.NotFoundError{Resource: "order", ID: id}
	}

	if err := order.SetPaymentID(paymentID); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(order)
	if err != nil {
		return nil, err
	}
	return mapOrder(updated), nil
}

// Delete reports false when nothing was removed; the caller maps that to a
// 404 rather than an error.
func (s *OrderService) Delete(id uint) (bool, error) {
	return s.repo.Delete(id)
}
