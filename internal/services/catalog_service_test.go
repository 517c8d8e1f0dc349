// internal/services/catalog_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bhavik-1602/misha-barnd-factory/internal/apperrors"
	"github.com/Bhavik-1602/misha-barnd-factory/internal/models"
)

func TestCreateBrandNormalizesSlug(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(db)

	brand, err := svc.CreateBrand(&BrandRequest{Name: "North & Side Co."})
	require.NoError(t, err)
	assert.Equal(t, "north-side-co", brand.Slug)
	assert.True(t, brand.IsActive)
}

func TestCreateBrandSlugConflict(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(db)

	_, err := svc.CreateBrand(&BrandRequest{Name: "Northside"})
	require.NoError(t, err)

	_, err = svc.CreateBrand(&BrandRequest{Name: "NORTHSIDE!!"})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
}

func TestUpdateBrandRenameReslugs(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(db)

	brand, err := svc.CreateBrand(&BrandRequest{Name: "Old Name"})
	require.NoError(t, err)

	updated, err := svc.UpdateBrand(brand.ID, &BrandRequest{Name: "New Name"})
	require.NoError(t, err)
	assert.Equal(t, "new-name", updated.Slug)
}

func TestCreateCategoryRejectsUnsluggableName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(db)

	_, err := svc.CreateCategory(&CategoryRequest{Name: "!!"})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindBadRequest))
}

func TestDeleteCategoryGuardedByProductCount(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(db)

	category, err := svc.CreateCategory(&CategoryRequest{Name: "Shirts"})
	require.NoError(t, err)
	require.NoError(t, db.Model(category).Update("product_count", 3).Error)

	err = svc.DeleteCategory(category.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))

	// Once no product references it, deletion goes through.
	require.NoError(t, db.Model(category).Update("product_count", 0).Error)
	require.NoError(t, svc.DeleteCategory(category.ID))

	var remaining int64
	require.NoError(t, db.Unscoped().Model(&models.Category{}).Where("id = ?", category.ID).Count(&remaining).Error)
	assert.Equal(t, int64(0), remaining)
}

func TestDeleteColorGuardedByProductCount(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(db)

	color, err := svc.CreateColor(&ColorRequest{Name: "Red", Code: "#ff0000"})
	require.NoError(t, err)
	require.NoError(t, db.Model(color).Update("product_count", 1).Error)

	err = svc.DeleteColor(color.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
}

func TestCreateColorPersistsInactiveFlag(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(db)

	inactive := false
	color, err := svc.CreateColor(&ColorRequest{Name: "Retired Red", IsActive: &inactive})
	require.NoError(t, err)

	var stored models.Color
	require.NoError(t, db.First(&stored, "id = ?", color.ID).Error)
	assert.False(t, stored.IsActive)
}

func TestDeleteBrandNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(db)

	err := svc.DeleteBrand(uuid.New())
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestListCategoriesExcludesInactiveByDefault(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(db)

	_, err := svc.CreateCategory(&CategoryRequest{Name: "Shirts"})
	require.NoError(t, err)
	inactive := false
	_, err = svc.CreateCategory(&CategoryRequest{Name: "Archive", IsActive: &inactive})
	require.NoError(t, err)

	visible, err := svc.ListCategories(false)
	require.NoError(t, err)
	assert.Len(t, visible, 1)

	all, err := svc.ListCategories(true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
