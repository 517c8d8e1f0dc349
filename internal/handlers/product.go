// internal/handlers/product.go
package handlers

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Bhavik-1602/misha-barnd-factory/internal/services"
	"github.com/Bhavik-1602/misha-barnd-factory/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Upload fields are keyed by the index of the variant they belong to,
// e.g. images[0], images[2].
var imageFieldPattern = regexp.MustCompile(`^images\[(\d+)\]$`)

// POST /admin/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	images, ok := h.bindMutationRequest(c, &req)
	if !ok {
		return
	}

	product, err := h.productService.CreateProduct(&req, images)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "product created", gin.H{"product": product})
}

// PUT /admin/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid product id", nil)
		return
	}

	var req services.UpdateProductRequest
	images, ok := h.bindMutationRequest(c, &req)
	if !ok {
		return
	}

	product, err := h.productService.UpdateProduct(id, &req, images)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "product updated", gin.H{"product": product})
}

// DELETE /admin/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid product id", nil)
		return
	}

	if err := h.productService.DeleteProduct(id); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "product deleted", nil)
}

// bindMutationRequest reads a mutation payload either as a plain JSON
// body or as a multipart form with a "payload" JSON field plus image
// files keyed by variant index.
func (h *ProductHandler) bindMutationRequest(c *gin.Context, req interface{}) (services.ImageBatch, bool) {
	contentType := c.ContentType()

	if !strings.HasPrefix(contentType, "multipart/") {
		if err := c.ShouldBindJSON(req); err != nil {
			utils.BadRequestResponse(c, "invalid request body", err.Error())
			return nil, false
		}
		return nil, true
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequestResponse(c, "invalid multipart form", err.Error())
		return nil, false
	}

	payload := c.PostForm("payload")
	if payload == "" {
		utils.BadRequestResponse(c, "missing payload field", nil)
		return nil, false
	}
	if err := json.Unmarshal([]byte(payload), req); err != nil {
		utils.BadRequestResponse(c, "invalid payload field", err.Error())
		return nil, false
	}

	images := make(services.ImageBatch)
	for field, headers := range form.File {
		match := imageFieldPattern.FindStringSubmatch(field)
		if match == nil {
			utils.BadRequestResponse(c, "unexpected file field "+field, nil)
			return nil, false
		}
		index, _ := strconv.Atoi(match[1])
		images[index] = append(images[index], headers...)
	}
	pruneEmpty(images)

	return images, true
}

func pruneEmpty(images services.ImageBatch) {
	for index, headers := range images {
		kept := headers[:0]
		for _, header := range headers {
			if header != nil && header.Size > 0 {
				kept = append(kept, header)
			}
		}
		if len(kept) == 0 {
			delete(images, index)
			continue
		}
		images[index] = kept
	}
}
