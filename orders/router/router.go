package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/snackhouse/food-orders/middlewares"
	"github.com/snackhouse/food-orders/orders/clients"
	"github.com/snackhouse/food-orders/orders/controllers"
	"github.com/snackhouse/food-orders/orders/repository"
	"github.com/snackhouse/food-orders/orders/services"
)

// SetupRouter wires the orders service: gorm repository and HTTP products
// client behind the services, thin controllers on top.
func SetupRouter(db *gorm.DB, products clients.ProductsClient) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 100).RateLimit())

	repo := repository.NewGormOrderRepository(db)
	orderService := services.NewOrderService(repo, products)
	paymentService := services.NewPaymentService(repo)

	orderCtrl := controllers.NewOrderController(orderService)
	webhookCtrl := controllers.NewWebhookController(paymentService)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")
	{
		orders := api.Group("/orders")
		{
			orders.GET("", orderCtrl.GetAllOrders)
			orders.GET("/active", orderCtrl.GetActiveOrders)
			orders.GET("/status/:status", orderCtrl.GetOrdersByStatus)
			orders.GET("/:order_id", orderCtrl.GetOrderByID)
			orders.POST("", orderCtrl.CreateOrder)
			orders.PATCH("/:order_id/status", orderCtrl.UpdateOrderStatus)
			orders.PATCH("/:order_id/payment", orderCtrl.SetPaymentID)
			orders.DELETE("/:order_id", orderCtrl.DeleteOrder)
		}

		webhook := api.Group("/webhook")
		{
			webhook.POST("", webhookCtrl.ProcessPayment)
			webhook.GET("/health", webhookCtrl.Health)
		}
	}

	return r
}
