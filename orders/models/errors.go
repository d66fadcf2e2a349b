package models

import (
	"errors"
	"fmt"
)

var (
	ErrOrderMustHaveItems = errors.New("order must contain at least one item")
	ErrItemsLocked        = errors.New("items can only be added while the order is RECEIVED")
	ErrEmptyPaymentID     = errors.New("payment id must not be empty")
)

// NotFoundError reports a missing order or product.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Resource, e.ID)
}

// InvalidTransitionError reports a status change outside the allowed
// forward path.
type InvalidTransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot change order status from %s to %s", e.From, e.To)
}

// ProductInactiveError reports an attempt to order a deactivated product.
type ProductInactiveError struct {
	Name string
}

func (e *ProductInactiveError) Error() string {
	return fmt.Sprintf("product %s is not active", e.Name)
}

// UnknownStatusError reports an order status string that does not match any
// lifecycle state.
type UnknownStatusError struct {
	Value string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown order status %q", e.Value)
}
