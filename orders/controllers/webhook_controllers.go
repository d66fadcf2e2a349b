package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snackhouse/food-orders/orders/services"
)

// PaymentWebhookRequest is the inbound notification shape. All three fields
// are required at the boundary; the service re-validates order id
// parseability on its own.
type PaymentWebhookRequest struct {
	Status    string `json:"status"`
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id"`
}

type WebhookController struct {
	Payments *services.PaymentService
}

func NewWebhookController(payments *services.PaymentService) *WebhookController {
	return &WebhookController{Payments: payments}
}

// ProcessPayment receives payment processor notifications. The answer is
// always the structured webhook result; success=false maps to 400 so the
// processor retries.
func (wc *WebhookController) ProcessPayment(c *gin.Context) {
	var req PaymentWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, services.WebhookResult{
			Success: false,
			Message: "invalid webhook payload",
		})
		return
	}

	if req.OrderID == "" {
		c.JSON(http.StatusBadRequest, services.WebhookResult{Success: false, Message: "order_id is required"})
		return
	}
	if req.PaymentID == "" {
		c.JSON(http.StatusBadRequest, services.WebhookResult{Success: false, Message: "payment_id is required"})
		return
	}
	if req.Status == "" {
		c.JSON(http.StatusBadRequest, services.WebhookResult{Success: false, Message: "status is required"})
		return
	}

	result := wc.Payments.ProcessWebhook(req.OrderID, req.PaymentID, req.Status)
	if !result.Success {
		c.JSON(http.StatusBadRequest, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Health lets the payment processor verify the endpoint is reachable.
func (wc *WebhookController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
