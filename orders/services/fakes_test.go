package services

import (
	"errors"
	"sort"

	"github.com/snackhouse/food-orders/orders/clients"
	"github.com/snackhouse/food-orders/orders/models"
)

// fakeOrderRepository is an in-memory repository that counts calls so
// tests can assert on zero-write guarantees.
type fakeOrderRepository struct {
	orders    map[uint]*models.Order
	nextID    uint
	getCalls  int
	addCalls  int
	updates   int
	deletes   int
	updateErr error
	lookupErr error
}

func newFakeOrderRepository() *fakeOrderRepository {
	return &fakeOrderRepository{orders: make(map[uint]*models.Order), nextID: 1}
}

func (f *fakeOrderRepository) put(order *models.Order) *models.Order {
	if order.ID == 0 {
		order.ID = f.nextID
		f.nextID++
	}
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
		if order.Items[i].ID == 0 {
			order.Items[i].ID = uint(len(order.Items) + int(order.ID)*100)
		}
	}
	clone := *order
	f.orders[order.ID] = &clone
	return order
}

func (f *fakeOrderRepository) GetByID(id uint) (*models.Order, error) {
	return f.GetByIDWithItems(id)
}

func (f *fakeOrderRepository) GetByIDWithItems(id uint) (*models.Order, error) {
	f.getCalls++
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	order, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	clone := *order
	return &clone, nil
}

func (f *fakeOrderRepository) GetAll() ([]models.Order, error) {
	return f.sorted(func(a, b *models.Order) bool {
		return a.CreatedAt.After(b.CreatedAt)
	}, nil), nil
}

func (f *fakeOrderRepository) GetActiveOrders() ([]models.Order, error) {
	return f.sorted(func(a, b *models.Order) bool {
		return a.CreatedAt.Before(b.CreatedAt)
	}, func(o *models.Order) bool {
		return o.Status != models.OrderStatusFinalized
	}), nil
}

func (f *fakeOrderRepository) GetByStatus(status models.OrderStatus) ([]models.Order, error) {
	return f.sorted(func(a, b *models.Order) bool {
		return a.CreatedAt.Before(b.CreatedAt)
	}, func(o *models.Order) bool {
		return o.Status == status
	}), nil
}

func (f *fakeOrderRepository) sorted(less func(a, b *models.Order) bool, keep func(*models.Order) bool) []models.Order {
	out := make([]models.Order, 0, len(f.orders))
	for _, o := range f.orders {
		if keep == nil || keep(o) {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return less(&out[i], &out[j]) })
	return out
}

func (f *fakeOrderRepository) Add(order *models.Order) (*models.Order, error) {
	f.addCalls++
	return f.put(order), nil
}

func (f *fakeOrderRepository) Update(order *models.Order) (*models.Order, error) {
	f.updates++
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if _, ok := f.orders[order.ID]; !ok {
		return nil, errors.New("update of unknown order")
	}
	return f.put(order), nil
}

func (f *fakeOrderRepository) Delete(id uint) (bool, error) {
	f.deletes++
	if _, ok := f.orders[id]; !ok {
		return false, nil
	}
	delete(f.orders, id)
	return true, nil
}

func (f *fakeOrderRepository) GetNextOrderNumber() (int, error) {
	max := 0
	for _, o := range f.orders {
		if o.Number > max {
			max = o.Number
		}
	}
	return max + 1, nil
}

// fakeProductsClient serves products from a map; missing ids read as 404.
type fakeProductsClient struct {
	products map[uint]*clients.Product
	err      error
	calls    int
}

func newFakeProductsClient(products ...*clients.Product) *fakeProductsClient {
	m := make(map[uint]*clients.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductsClient{products: m}
}

func (f *fakeProductsClient) GetProductByID(id uint) (*clients.Product, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.products[id], nil
}
