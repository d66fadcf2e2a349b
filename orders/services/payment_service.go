package services

import (
	"fmt"
	"strconv"

	"github.com/snackhouse/food-orders/orders/models"
	"github.com/snackhouse/food-orders/orders/repository"
	"github.com/snackhouse/food-orders/utils"
)

// WebhookResult is the in-band outcome of a payment notification. Webhook
// deliveries always get a structured answer; failures are described here,
// never raised to the transport as errors.
type WebhookResult struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	OrderNumber int    `json:"order_number,omitempty"`
}

// PaymentService reconciles asynchronous payment notifications against
// existing orders. Deliveries are at-least-once, so the duplicate check is
// what keeps a replayed confirmation from writing twice.
type PaymentService struct {
	repo repository.OrderRepository
}

func NewPaymentService(repo repository.OrderRepository) *PaymentService {
	return &PaymentService{repo: repo}
}

func (s *PaymentService) ProcessWebhook(orderIDRaw, paymentID, statusRaw string) WebhookResult {
	utils.InfoLogger.Printf("processing payment webhook: order_id=%s status=%s payment_id=%s",
		orderIDRaw, statusRaw, paymentID)

	id, err := strconv.ParseUint(orderIDRaw, 10, 32)
	if err != nil {
		utils.ErrorLogger.Printf("payment webhook carried an invalid order id: %q", orderIDRaw)
		return WebhookResult{Success: false, Message: "invalid order id"}
	}
	orderID := uint(id)

	order, err := s.repo.GetByIDWithItems(orderID)
	if err != nil {
		utils.ErrorLogger.Printf("payment webhook lookup failed for order %d: %v", orderID, err)
		return WebhookResult{Success: false, Message: "failed to process payment webhook"}
	}
	if order == nil {
		return WebhookResult{Success: false, Message: fmt.Sprintf("order %d not found", orderID)}
	}

	// Duplicate delivery of an already confirmed payment: acknowledge
	// without touching the order. No write may happen here.
	if order.PaymentID != "" && order.PaymentID == paymentID &&
		order.PaymentStatus == models.PaymentStatusPaid {
		utils.InfoLogger.Printf("duplicate payment webhook ignored: order_id=%d payment_id=%s",
			orderID, paymentID)
		return WebhookResult{
			Success:     true,
			Message:     "payment already processed",
			OrderNumber: order.Number,
		}
	}

	status := models.PaymentStatusFromWebhook(statusRaw)

	if err := order.ProcessPayment(paymentID, status); err != nil {
		utils.ErrorLogger.Printf("payment webhook rejected for order %d: %v", orderID, err)
		return WebhookResult{Success: false, Message: "failed to process payment webhook"}
	}

	if status == models.PaymentStatusRefused || status == models.PaymentStatusCancelled {
		order.CancelDueToPaymentFailure()
	}

	if _, err := s.repo.Update(order); err != nil {
		utils.ErrorLogger.Printf("payment webhook persistence failed for order %d: %v", orderID, err)
		return WebhookResult{Success: false, Message: "failed to process payment webhook"}
	}

	utils.InfoLogger.Printf("payment webhook processed: order_id=%d status=%s", orderID, status)
	return WebhookResult{
		Success:     true,
		Message:     fmt.Sprintf("payment %s processed for order %d", status, order.Number),
		OrderNumber: order.Number,
	}
}
