package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/snackhouse/food-orders/middlewares"
	"github.com/snackhouse/food-orders/products/controllers"
	"github.com/snackhouse/food-orders/products/repository"
	"github.com/snackhouse/food-orders/products/services"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 100).RateLimit())

	repo := repository.NewGormProductRepository(db)
	service := services.NewProductService(repo)
	productCtrl := controllers.NewProductController(service)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")
	{
		products := api.Group("/products")
		{
			products.GET("", productCtrl.GetAllProducts)
			products.GET("/active", productCtrl.GetActiveProducts)
			products.GET("/category/:category", productCtrl.GetProductsByCategory)
			products.GET("/:product_id", productCtrl.GetProductByID)
			products.POST("", productCtrl.CreateProduct)
			products.PUT("/:product_id", productCtrl.UpdateProduct)
			products.DELETE("/:product_id", productCtrl.DeleteProduct)
		}
	}

	return r
}
