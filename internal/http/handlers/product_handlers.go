package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/you/tradeops/domain"
	"github.com/you/tradeops/internal/http/middleware"
)

// ProductHandlers handles product catalog HTTP requests
type ProductHandlers struct {
	productRepo domain.ProductRepository
}

// NewProductHandlers creates new product handlers
func NewProductHandlers(productRepo domain.ProductRepository) *ProductHandlers {
	return &ProductHandlers{productRepo: productRepo}
}

// ProductRequest represents a create or update payload
type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	ImagePath   string  `json:"image_path"`
}

func productView(p *domain.Product) gin.H {
	return gin.H{
		"id":          p.ID,
		"user_id":     p.UserID,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"image_path":  p.ImagePath,
		"created_at":  p.CreatedAt,
		"updated_at":  p.UpdatedAt,
	}
}

// Create handles product creation for the authenticated user
func (h *ProductHandlers) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing bearer token"})
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := &domain.Product{
		UserID:      user.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImagePath:   req.ImagePath,
	}
	if err := h.productRepo.Create(c.Request.Context(), product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, productView(product))
}

// List returns the authenticated user's own products
func (h *ProductHandlers) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing bearer token"})
		return
	}

	products, err := h.productRepo.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
		return
	}

	c.JSON(http.StatusOK, productViews(products))
}

// Get returns one product. A product owned by someone else looks exactly
// like a missing one.
func (h *ProductHandlers) Get(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing bearer token"})
		return
	}

	product, ok := h.findProduct(c)
	if !ok {
		return
	}
	if product.UserID != user.ID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, productView(product))
}

// Update replaces the mutable fields of an owned product
func (h *ProductHandlers) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing bearer token"})
		return
	}

	product, ok := h.findProduct(c)
	if !ok {
		return
	}
	if product.UserID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to update this product"})
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.ImagePath = req.ImagePath
	if err := h.productRepo.Update(c.Request.Context(), product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, productView(product))
}

// Delete removes an owned product
func (h *ProductHandlers) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing bearer token"})
		return
	}

	product, ok := h.findProduct(c)
	if !ok {
		return
	}
	if product.UserID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this product"})
		return
	}

	if err := h.productRepo.Delete(c.Request.Context(), product.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "Product deleted successfully"})
}

// ListAll returns every product in the catalog. Public endpoint.
func (h *ProductHandlers) ListAll(c *gin.Context) {
	products, err := h.productRepo.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
		return
	}

	c.JSON(http.StatusOK, productViews(products))
}

// findProduct parses the path id and loads the product, writing the error
// response itself when either step fails.
func (h *ProductHandlers) findProduct(c *gin.Context) (*domain.Product, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return nil, false
	}

	product, err := h.productRepo.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load product"})
		return nil, false
	}
	return product, true
}

func productViews(products []*domain.Product) []gin.H {
	views := make([]gin.H, 0, len(products))
	for _, p := range products {
		views = append(views, productView(p))
	}
	return views
}
