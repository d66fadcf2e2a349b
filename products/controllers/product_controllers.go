package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/snackhouse/food-orders/products/models"
	"github.com/snackhouse/food-orders/products/services"
	"github.com/snackhouse/food-orders/utils"
)

type ProductController struct {
	Service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{Service: service}
}

func (pc *ProductController) GetAllProducts(c *gin.Context) {
	products, err := pc.Service.GetAll()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of products", products)
}

func (pc *ProductController) GetActiveProducts(c *gin.Context) {
	products, err := pc.Service.GetActiveProducts()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Active products", products)
}

func (pc *ProductController) GetProductsByCategory(c *gin.Context) {
	category, err := models.ParseCategory(c.Param("category"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	products, err := pc.Service.GetByCategory(category)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Products by category", products)
}

func (pc *ProductController) GetProductByID(c *gin.Context) {
	id, err := productIDParam(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	product, err := pc.Service.GetByID(id)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if product == nil {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("product with id %d not found", id))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Product detail", product)
}

func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	product, err := pc.Service.Create(req)
	if err != nil {
		respondProductError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Product created", product)
}

func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, err := productIDParam(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	product, err := pc.Service.Update(id, req)
	if err != nil {
		respondProductError(c, err)
		return
	}
	if product == nil {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("product with id %d not found", id))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Product updated", product)
}

func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, err := productIDParam(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	deleted, err := pc.Service.Delete(id)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if !deleted {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("product with id %d not found", id))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Product deleted", gin.H{"product_id": id})
}

func productIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid product id %q", c.Param("product_id"))
	}
	return uint(id), nil
}

func respondProductError(c *gin.Context, err error) {
	if errors.Is(err, models.ErrNameRequired) ||
		errors.Is(err, models.ErrNegativePrice) ||
		errors.Is(err, models.ErrUnknownCategory) {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	utils.ErrorLogger.Printf("unexpected error handling %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	utils.RespondError(c, http.StatusInternalServerError, err)
}
