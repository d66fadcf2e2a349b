package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/snackhouse/food-orders/orders/models"
)

type CreateOrderItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type CreateOrderRequest struct {
	CustomerID  *uint                    `json:"customer_id,omitempty"`
	Observation string                   `json:"observation,omitempty"`
	Items       []CreateOrderItemRequest `json:"items"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type SetPaymentIDRequest struct {
	PaymentID string `json:"payment_id"`
}

// OrderResponse is the outward projection. Total carries the stored
// amount; it is never recomputed at read time.
type OrderResponse struct {
	ID            uint                `json:"id"`
	CustomerID    *uint               `json:"customer_id,omitempty"`
	Status        string              `json:"status"`
	Observation   string              `json:"observation,omitempty"`
	Number        int                 `json:"number"`
	PaymentID     string              `json:"payment_id,omitempty"`
	PaymentStatus string              `json:"payment_status"`
	Total         decimal.Decimal     `json:"total"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
	Items         []OrderItemResponse `json:"items"`
}

type OrderItemResponse struct {
	ID          uint            `json:"id"`
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

func mapOrder(order *models.Order) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal(),
		})
	}
	return &OrderResponse{
		ID:            order.ID,
		CustomerID:    order.CustomerID,
		Status:        string(order.Status),
		Observation:   order.Observation,
		Number:        order.Number,
		PaymentID:     order.PaymentID,
		PaymentStatus: string(order.PaymentStatus),
		Total:         order.TotalAmount,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
		Items:         items,
	}
}

func mapOrders(orders []models.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, *mapOrder(&orders[i]))
	}
	return out
}
