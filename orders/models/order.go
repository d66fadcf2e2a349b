package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the aggregate root for a customer's purchase. Number is the
// sequential, customer-facing identifier; ID is the surrogate key.
// TotalAmount is denormalized: it is recomputed on every item mutation and
// trusted as stored on reads.
type Order struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	CustomerID    *uint           `gorm:"index" json:"customer_id,omitempty"`
	Status        OrderStatus     `gorm:"type:varchar(20);not null;default:'RECEIVED'" json:"status"`
	Observation   string          `gorm:"type:text" json:"observation,omitempty"`
	Number        int             `gorm:"uniqueIndex;not null" json:"number"`
	PaymentID     string          `gorm:"type:varchar(64)" json:"payment_id,omitempty"`
	PaymentStatus PaymentStatus   `gorm:"type:varchar(20);not null;default:'PENDING'" json:"payment_status"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
	Items         []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items"`
}

// NewOrder returns an order in the initial RECEIVED/PENDING state with no
// items attached yet.
func NewOrder(customerID *uint, observation string, number int) *Order {
	now := time.Now().UTC()
	return &Order{
		CustomerID:    customerID,
		Observation:   observation,
		Number:        number,
		Status:        OrderStatusReceived,
		PaymentStatus: PaymentStatusPending,
		TotalAmount:   decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ChangeStatus moves the order one step along the lifecycle. Any pair that
// is not an adjacent forward step (including same-state) is rejected and
// the order is left untouched.
func (o *Order) ChangeStatus(next OrderStatus) error {
	if nextStatus[o.Status] != next {
		return &InvalidTransitionError{From: o.Status, To: next}
	}
	o.Status = next
	o.UpdatedAt = time.Now().UTC()
	return nil
}

// AddItem appends an item and recomputes the stored total. Items are
// immutable once the order has left RECEIVED.
func (o *Order) AddItem(item OrderItem) error {
	if o.Status != OrderStatusReceived {
		return ErrItemsLocked
	}
	o.Items = append(o.Items, item)
	o.RecalculateTotal()
	o.UpdatedAt = time.Now().UTC()
	return nil
}

// CalculateTotal sums quantity x unit price over all items.
func (o *Order) CalculateTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// RecalculateTotal overwrites the stored total with the computed one. Safe
// to call at any status.
func (o *Order) RecalculateTotal() {
	o.TotalAmount = o.CalculateTotal()
}

// SetPaymentID records the external payment reference. A payment id is
// never cleared, only overwritten with a non-empty value.
func (o *Order) SetPaymentID(paymentID string) error {
	if isBlank(paymentID) {
		return ErrEmptyPaymentID
	}
	o.PaymentID = paymentID
	o.UpdatedAt = time.Now().UTC()
	return nil
}

// ProcessPayment applies a payment notification. A PAID confirmation on a
// freshly RECEIVED order auto-advances it to IN_PREPARATION; no other
// payment status touches the order status.
func (o *Order) ProcessPayment(paymentID string, status PaymentStatus) error {
	if isBlank(paymentID) {
		return ErrEmptyPaymentID
	}
	o.PaymentID = paymentID
	o.PaymentStatus = status

	if status == PaymentStatusPaid && o.Status == OrderStatusReceived {
		o.Status = OrderStatusInPreparation
	}

	o.UpdatedAt = time.Now().UTC()
	return nil
}

// CancelDueToPaymentFailure only refreshes UpdatedAt when the payment is
// already REFUSED or CANCELLED. It deliberately changes nothing else; there
// is no cancelled state on the order status axis.
// TODO: confirm with product whether a refused payment should release the
// order number.
func (o *Order) CancelDueToPaymentFailure() {
	if o.PaymentStatus == PaymentStatusRefused || o.PaymentStatus == PaymentStatusCancelled {
		o.UpdatedAt = time.Now().UTC()
	}
}
