// internal/handlers/browse.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Bhavik-1602/misha-barnd-factory/internal/services"
	"github.com/Bhavik-1602/misha-barnd-factory/internal/utils"
)

// BrowseHandler serves the customer-facing catalog surface.
type BrowseHandler struct {
	productService *services.ProductService
	db             *gorm.DB
}

func NewBrowseHandler(productService *services.ProductService, db *gorm.DB) *BrowseHandler {
	return &BrowseHandler{productService: productService, db: db}
}

// GET /products
func (h *BrowseHandler) ListProducts(c *gin.Context) {
	filters, err := services.ParseProductFilters(c, h.db)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	page, err := h.productService.ListProducts(filters)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SetPaginationHeaders(c, page.Meta)
	utils.SuccessResponse(c, page.AppliedFilters, page)
}

// GET /products/:slug
func (h *BrowseHandler) GetProduct(c *gin.Context) {
	product, err := h.productService.GetBySlug(c.Param("slug"))
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "product", gin.H{"product": product})
}

// GET /products/new-arrivals
func (h *BrowseHandler) GetNewArrivals(c *gin.Context) {
	products, err := h.productService.GetNewArrivals(h.limit(c))
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "new arrivals", gin.H{"products": products})
}

// GET /products/deals
func (h *BrowseHandler) GetDeals(c *gin.Context) {
	products, err := h.productService.GetDeals(h.limit(c))
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "deals of the month", gin.H{"products": products})
}

// GET /products/featured
func (h *BrowseHandler) GetFeatured(c *gin.Context) {
	products, err := h.productService.GetFeatured(h.limit(c))
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "featured products", gin.H{"products": products})
}

func (h *BrowseHandler) limit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	return limit
}
