// internal/services/service_test.go
package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Bhavik-1602/misha-barnd-factory/internal/config"
	"github.com/Bhavik-1602/misha-barnd-factory/internal/models"
	"github.com/Bhavik-1602/misha-barnd-factory/internal/utils"
)

var testDBSeq int64

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:services_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.Color{},
		&models.Brand{},
		&models.Product{},
		&models.AdminUser{},
	))
	return db
}

func newTestProductService(t *testing.T) (*ProductService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	// Empty AWS config selects the local storage fallback, so no file
	// ever leaves the test process.
	storage, err := NewStorageService(&config.Config{})
	require.NoError(t, err)
	return NewProductService(db, storage), db
}

func createTestCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name, Slug: utils.Slugify(name), IsActive: true}
	require.NoError(t, db.Create(category).Error)
	return category
}

func createTestBrand(t *testing.T, db *gorm.DB, name string) *models.Brand {
	t.Helper()
	brand := &models.Brand{Name: name, Slug: utils.Slugify(name), IsActive: true}
	require.NoError(t, db.Create(brand).Error)
	return brand
}

func createTestColor(t *testing.T, db *gorm.DB, name string) *models.Color {
	t.Helper()
	color := &models.Color{Name: name, IsActive: true}
	require.NoError(t, db.Create(color).Error)
	return color
}

func colorRefTo(id uuid.UUID) ColorRef {
	return ColorRef{id: id.String(), present: true}
}

func categoryCount(t *testing.T, db *gorm.DB, id uuid.UUID) int64 {
	t.Helper()
	var category models.Category
	require.NoError(t, db.First(&category, "id = ?", id).Error)
	return category.ProductCount
}

func brandCount(t *testing.T, db *gorm.DB, id uuid.UUID) int64 {
	t.Helper()
	var brand models.Brand
	require.NoError(t, db.First(&brand, "id = ?", id).Error)
	return brand.ProductCount
}

func colorCount(t *testing.T, db *gorm.DB, id uuid.UUID) int64 {
	t.Helper()
	var color models.Color
	require.NoError(t, db.First(&color, "id = ?", id).Error)
	return color.ProductCount
}
