// internal/handlers/product.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/craftloom/handloom-backend/internal/services"
	"github.com/craftloom/handloom-backend/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// GET /api/products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	filter := services.ProductFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}

	// Price bounds must be numeric; a typo must not silently widen the
	// result set.
	if minStr := c.Query("minPrice"); minStr != "" {
		min, err := strconv.ParseFloat(minStr, 64)
		if err != nil {
			utils.BadRequestResponse(c, "minPrice must be a number")
			return
		}
		filter.MinPrice = &min
	}

	if maxStr := c.Query("maxPrice"); maxStr != "" {
		max, err := strconv.ParseFloat(maxStr, 64)
		if err != nil {
			utils.BadRequestResponse(c, "maxPrice must be a number")
			return
		}
		filter.MaxPrice = &max
	}

	products, err := h.productService.ListProducts(filter)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"products": products,
	})
}

// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetProduct(id)
	if err != nil {
		respondServiceError(c, err, "Product not found")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}

// POST /api/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	artisanID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.productService.CreateProduct(artisanID, &req)
	if err != nil {
		respondServiceError(c, err, "Product not found")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"product": product,
	})
}

// PUT /api/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID")
		return
	}

	actorID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}
	actorRole, _ := utils.GetRoleFromContext(c)

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.productService.UpdateProduct(id, actorID, actorRole, &req)
	if err != nil {
		respondServiceError(c, err, "Product not found")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}

// DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID")
		return
	}

	actorID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}
	actorRole, _ := utils.GetRoleFromContext(c)

	if err := h.productService.DeleteProduct(id, actorID, actorRole); err != nil {
		respondServiceError(c, err, "Product not found")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Product deleted",
	})
}
