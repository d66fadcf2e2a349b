package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/snackhouse/food-orders/config"
	"github.com/snackhouse/food-orders/products/models"
	"github.com/snackhouse/food-orders/products/router"
	"github.com/snackhouse/food-orders/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Println("Warning: .env file not found")
	}

	if config.Getenv("GIN_MODE", "") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB("PRODUCTS_DB_DSN",
		"products:products@tcp(localhost:3306)/products?charset=utf8mb4&parseTime=True&loc=UTC")
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Product{}); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}

	r := router.SetupRouter(db)

	port := config.Getenv("PRODUCTS_PORT", "8081")
	utils.InfoLogger.Printf("products service listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
