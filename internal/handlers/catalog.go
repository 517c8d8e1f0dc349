// internal/handlers/catalog.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Bhavik-1602/misha-barnd-factory/internal/services"
	"github.com/Bhavik-1602/misha-barnd-factory/internal/utils"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func parseEntityID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

// includeInactive is an admin-only view of disabled entries.
func includeInactive(c *gin.Context) bool {
	_, isAdmin := utils.GetUserIDFromContext(c)
	return isAdmin && c.Query("all") == "true"
}

// GET /brands
func (h *CatalogHandler) ListBrands(c *gin.Context) {
	brands, err := h.catalogService.ListBrands(includeInactive(c))
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, "brands", gin.H{"brands": brands})
}

// POST /admin/brands
func (h *CatalogHandler) CreateBrand(c *gin.Context) {
	var req services.BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body", err.Error())
		return
	}

	brand, err := h.catalogService.CreateBrand(&req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	utils.CreatedResponse(c, "brand created", gin.H{"brand": brand})
}

// PUT /admin/brands/:id
func (h *CatalogHandler) UpdateBrand(c *gin.Context) {
	id, ok := parseEntityID(c)
	if !ok {
		return
	}

	var req services.BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body", err.Error())
		return
	}

	brand, err := h.catalogService.UpdateBrand(id, &req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, "brand updated", gin.H{"brand": brand})
}

// DELETE /admin/brands/:id
func (h *CatalogHandler) DeleteBrand(c *gin.Context) {
	id, ok := parseEntityID(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteBrand(id); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, "brand deleted", nil)
}

// GET /categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories(includeInactive(c))
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, "categories", gin.H{"categories": categories})
}

// POST /admin/categories
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req services.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body", err.Error())
		return
	}

	category, err := h.catalogService.CreateCategory(&req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	utils.CreatedResponse(c, "category created", gin.H{"category": category})
}

// PUT /admin/categories/:id
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseEntityID(c)
	if !ok {
		return
	}

	var req services.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body", err.Error())
		return
	}

	category, err := h.catalogService.UpdateCategory(id, &req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, "category updated", gin.H{"category": category})
}

// DELETE /admin/categories/:id
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseEntityID(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteCategory(id); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, "category deleted", nil)
}

// GET /colors
func (h *CatalogHandler) ListColors(c *gin.Context) {
	colors, err := h.catalogService.ListColors(includeInactive(c))
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, "colors", gin.H{"colors": colors})
}

// POST /admin/colors
func (h *CatalogHandler) CreateColor(c *gin.Context) {
	var req services.ColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body", err.Error())
		return
	}

	color, err := h.catalogService.CreateColor(&req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	utils.CreatedResponse(c, "color created", gin.H{"color": color})
}

// PUT /admin/colors/:id
func (h *CatalogHandler) UpdateColor(c *gin.Context) {
	id, ok := parseEntityID(c)
	if !ok {
		return
	}

	var req services.ColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body", err.Error())
		return
	}

	color, err := h.catalogService.UpdateColor(id, &req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, "color updated", gin.H{"color": color})
}

// DELETE /admin/colors/:id
func (h *CatalogHandler) DeleteColor(c *gin.Context) {
	id, ok := parseEntityID(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteColor(id); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, "color deleted", nil)
}
