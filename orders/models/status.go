package models

import "strings"

// OrderStatus is the fulfillment lifecycle of an order. It only moves
// forward: RECEIVED -> IN_PREPARATION -> READY -> FINALIZED.
type OrderStatus string

const (
	OrderStatusReceived      OrderStatus = "RECEIVED"
	OrderStatusInPreparation OrderStatus = "IN_PREPARATION"
	OrderStatusReady         OrderStatus = "READY"
	OrderStatusFinalized     OrderStatus = "FINALIZED"
)

// nextStatus maps each status to its only allowed successor.
var nextStatus = map[OrderStatus]OrderStatus{
	OrderStatusReceived:      OrderStatusInPreparation,
	OrderStatusInPreparation: OrderStatusReady,
	OrderStatusReady:         OrderStatusFinalized,
}

// ParseOrderStatus converts a status string (case-insensitive) into an
// OrderStatus.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case OrderStatusReceived:
		return OrderStatusReceived, nil
	case OrderStatusInPreparation:
		return OrderStatusInPreparation, nil
	case OrderStatusReady:
		return OrderStatusReady, nil
	case OrderStatusFinalized:
		return OrderStatusFinalized, nil
	default:
		return "", &UnknownStatusError{Value: s}
	}
}

// PaymentStatus is the payment reconciliation axis, independent from the
// order status.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusPaid      PaymentStatus = "PAID"
	PaymentStatusRefused   PaymentStatus = "REFUSED"
	PaymentStatusCancelled PaymentStatus = "CANCELLED"
)

// PaymentStatusFromWebhook maps a processor status string onto the domain
// enum. Unrecognized values degrade to PENDING instead of failing; webhook
// providers add statuses without notice.
func PaymentStatusFromWebhook(s string) PaymentStatus {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PAID":
		return PaymentStatusPaid
	case "REFUSED":
		return PaymentStatusRefused
	case "CANCELLED":
		return PaymentStatusCancelled
	default:
		return PaymentStatusPending
	}
}
