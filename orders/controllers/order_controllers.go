package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/snackhouse/food-orders/orders/models"
	"github.com/snackhouse/food-orders/orders/services"
	"github.com/snackhouse/food-orders/utils"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{Service: service}
}

// GetAllOrders -> every order with items, newest first.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.Service.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetActiveOrders -> orders not yet FINALIZED, oldest first.
func (oc *OrderController) GetActiveOrders(c *gin.Context) {
	orders, err := oc.Service.GetActiveOrders()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Active orders", orders)
}

// GetOrdersByStatus -> orders in one lifecycle state, oldest first.
func (oc *OrderController) GetOrdersByStatus(c *gin.Context) {
	status, err := models.ParseOrderStatus(c.Param("status"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	orders, err := oc.Service.GetByStatus(status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Orders by status", orders)
}

func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, err := orderIDParam(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Service.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if order == nil {
		utils.RespondError(c, http.StatusNotFound, &models.NotFoundError{Resource: "order", ID: id})
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Service.Create(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, err := orderIDParam(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req services.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	status, err := models.ParseOrderStatus(req.Status)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Service.UpdateStatus(id, status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}

func (oc *OrderController) SetPaymentID(c *gin.Context) {
	id, err := orderIDParam(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req services.SetPaymentIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Service.SetPaymentID(id, req.PaymentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Payment id set", order)
}

func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, err := orderIDParam(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	deleted, err := oc.Service.Delete(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !deleted {
		utils.RespondError(c, http.StatusNotFound, &models.NotFoundError{Resource: "order", ID: id})
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order deleted", gin.H{"order_id": id})
}

func orderIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid order id %q", c.Param("order_id"))
	}
	return uint(id), nil
}

// respondServiceError maps the domain error taxonomy onto HTTP statuses:
// missing resources become 404, rule violations 400, the rest 500.
func respondServiceError(c *gin.Context, err error) {
	var notFound *models.NotFoundError
	if errors.As(err, &notFound) {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	if isDomainViolation(err) {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	utils.ErrorLogger.Printf("unexpected error handling %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	utils.RespondError(c, http.StatusInternalServerError, err)
}

func isDomainViolation(err error) bool {
	var transition *models.InvalidTransitionError
	var inactive *models.ProductInactiveError
	var unknown *models.UnknownStatusError
	return errors.Is(err, models.ErrOrderMustHaveItems) ||
		errors.Is(err, models.ErrItemsLocked) ||
		errors.Is(err, models.ErrEmptyPaymentID) ||
		errors.As(err, &transition) ||
		errors.As(err, &inactive) ||
		errors.As(err, &unknown)
}
