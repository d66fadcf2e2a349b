package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/snackhouse/food-orders/config"
	"github.com/snackhouse/food-orders/orders/clients"
	"github.com/snackhouse/food-orders/orders/models"
	"github.com/snackhouse/food-orders/orders/router"
	"github.com/snackhouse/food-orders/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Println("Warning: .env file not found")
	}

	if config.Getenv("GIN_MODE", "") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB("ORDERS_DB_DSN",
		"orders:orders@tcp(localhost:3306)/orders?charset=utf8mb4&parseTime=True&loc=UTC")
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Order{}, &models.OrderItem{}); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}

	products := clients.NewProductsHTTPClient()

	r := router.SetupRouter(db, products)

	port := config.Getenv("ORDERS_PORT", "8080")
	utils.InfoLogger.Printf("orders service listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
