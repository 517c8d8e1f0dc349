// internal/handlers/product_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/Bhavik-1602/misha-barnd-factory/internal/config"
	"github.com/Bhavik-1602/misha-barnd-factory/internal/models"
	"github.com/Bhavik-1602/misha-barnd-factory/internal/services"
)

var handlerDBSeq int64

type ProductHandlerTestSuite struct {
	suite.Suite
	db       *gorm.DB
	router   *gin.Engine
	category *models.Category
	brand    *models.Brand
	color    *models.Color
}

func (suite *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:handler_test_%d?mode=memory&cache=shared", atomic.AddInt64(&handlerDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.Require().NoError(db.AutoMigrate(
		&models.Category{}, &models.Color{}, &models.Brand{}, &models.Product{},
	))
	suite.db = db

	suite.category = &models.Category{Name: "Shirts", Slug: "shirts", IsActive: true}
	suite.Require().NoError(db.Create(suite.category).Error)
	suite.brand = &models.Brand{Name: "Northside", Slug: "northside", IsActive: true}
	suite.Require().NoError(db.Create(suite.brand).Error)
	suite.color = &models.Color{Name: "Red", Code: "#ff0000", IsActive: true}
	suite.Require().NoError(db.Create(suite.color).Error)

	storage, err := services.NewStorageService(&config.Config{})
	suite.Require().NoError(err)
	productService := services.NewProductService(db, storage)

	productHandler := NewProductHandler(productService)
	browseHandler := NewBrowseHandler(productService, db)

	suite.router = gin.New()
	suite.router.POST("/admin/products", productHandler.CreateProduct)
	suite.router.PUT("/admin/products/:id", productHandler.UpdateProduct)
	suite.router.DELETE("/admin/products/:id", productHandler.DeleteProduct)
	suite.router.GET("/products", browseHandler.ListProducts)
	suite.router.GET("/products/:slug", browseHandler.GetProduct)
}

func (suite *ProductHandlerTestSuite) createPayload(name string) map[string]interface{} {
	return map[string]interface{}{
		"name":        name,
		"category_id": suite.category.ID.String(),
		"brand_id":    suite.brand.ID.String(),
		"base_price":  "49.90",
		"variants": []map[string]interface{}{
			{
				"color": suite.color.ID.String(),
				"sizes": []map[string]interface{}{{"label": "m", "quantity": 5}},
			},
		},
	}
}

func (suite *ProductHandlerTestSuite) postJSON(path string, payload interface{}) *httptest.ResponseRecorder {
	jsonData, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// pngBytes is a minimal buffer carrying the PNG magic signature, enough
// for upload validation.
func pngBytes() []byte {
	return append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, bytes.Repeat([]byte{0}, 64)...)
}

func (suite *ProductHandlerTestSuite) postMultipart(path string, payload interface{}, files map[string][]byte) *httptest.ResponseRecorder {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	jsonData, _ := json.Marshal(payload)
	suite.Require().NoError(writer.WriteField("payload", string(jsonData)))
	for field, content := range files {
		part, err := writer.CreateFormFile(field, "upload.png")
		suite.Require().NoError(err)
		_, err = part.Write(content)
		suite.Require().NoError(err)
	}
	suite.Require().NoError(writer.Close())

	req, _ := http.NewRequest("POST", path, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ProductHandlerTestSuite) TestCreateProductJSON() {
	w := suite.postJSON("/admin/products", suite.createPayload("Classic Tee"))
	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), float64(http.StatusCreated), response["statusCode"])
	assert.Equal(suite.T(), "product created", response["message"])

	data := response["data"].(map[string]interface{})
	product := data["product"].(map[string]interface{})
	assert.Equal(suite.T(), "classic-tee", product["slug"])

	var category models.Category
	suite.Require().NoError(suite.db.First(&category, "id = ?", suite.category.ID).Error)
	assert.Equal(suite.T(), int64(1), category.ProductCount)
}

func (suite *ProductHandlerTestSuite) TestCreateProductMultipartWithImage() {
	w := suite.postMultipart("/admin/products", suite.createPayload("Pictured Tee"), map[string][]byte{
		"images[0]": pngBytes(),
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var stored models.Product
	suite.Require().NoError(suite.db.First(&stored, "slug = ?", "pictured-tee").Error)
	suite.Require().Len(stored.Variants, 1)
	suite.Require().Len(stored.Variants[0].Images, 1)
	assert.True(suite.T(), stored.Variants[0].Images[0].IsPrimary)
	assert.NotEmpty(suite.T(), stored.Variants[0].Images[0].URL)
	assert.NotEmpty(suite.T(), stored.Variants[0].Images[0].StorageKey)
}

func (suite *ProductHandlerTestSuite) TestCreateProductRejectsUnmatchableImages() {
	// images[5] targets a variant slot the payload never declares.
	w := suite.postMultipart("/admin/products", suite.createPayload("Orphan Tee"), map[string][]byte{
		"images[5]": pngBytes(),
	})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ProductHandlerTestSuite) TestCreateProductRejectsUnexpectedFileField() {
	w := suite.postMultipart("/admin/products", suite.createPayload("Odd Field Tee"), map[string][]byte{
		"attachment": pngBytes(),
	})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ProductHandlerTestSuite) TestCreateProductDuplicateSlug() {
	w := suite.postJSON("/admin/products", suite.createPayload("Classic Tee"))
	suite.Require().Equal(http.StatusCreated, w.Code)

	w = suite.postJSON("/admin/products", suite.createPayload("Classic  Tee"))
	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *ProductHandlerTestSuite) TestUpdateProductInvalidID() {
	req, _ := http.NewRequest("PUT", "/admin/products/not-a-uuid", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ProductHandlerTestSuite) TestDeleteProductLifecycle() {
	w := suite.postJSON("/admin/products", suite.createPayload("Doomed Tee"))
	suite.Require().Equal(http.StatusCreated, w.Code)

	var stored models.Product
	suite.Require().NoError(suite.db.First(&stored, "slug = ?", "doomed-tee").Error)

	req, _ := http.NewRequest("DELETE", "/admin/products/"+stored.ID.String(), nil)
	w = httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	// A second delete finds nothing.
	req, _ = http.NewRequest("DELETE", "/admin/products/"+stored.ID.String(), nil)
	w = httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ProductHandlerTestSuite) TestListProductsEnvelopeAndHeaders() {
	w := suite.postJSON("/admin/products", suite.createPayload("Listed Tee"))
	suite.Require().Equal(http.StatusCreated, w.Code)

	req, _ := http.NewRequest("GET", "/products?limit=10", nil)
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Equal(suite.T(), "1", rec.Header().Get("X-Total-Count"))

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(suite.T(), float64(http.StatusOK), response["statusCode"])
}

func (suite *ProductHandlerTestSuite) TestListProductsBadFilterRejected() {
	req, _ := http.NewRequest("GET", "/products?minPrice=50&maxPrice=10", nil)
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)

	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
}

func (suite *ProductHandlerTestSuite) TestGetProductBySlug() {
	w := suite.postJSON("/admin/products", suite.createPayload("Findable Tee"))
	suite.Require().Equal(http.StatusCreated, w.Code)

	req, _ := http.NewRequest("GET", "/products/findable-tee", nil)
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	req, _ = http.NewRequest("GET", "/products/missing-tee", nil)
	rec = httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)
	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)
}

func TestProductHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}
