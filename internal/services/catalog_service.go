// internal/services/catalog_service.go
package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Bhavik-1602/misha-barnd-factory/internal/apperrors"
	"github.com/Bhavik-1602/misha-barnd-factory/internal/models"
	"github.com/Bhavik-1602/misha-barnd-factory/internal/utils"
)

// CatalogService manages the reference entities products point at:
// brands, categories and colors. Their product_count columns are owned
// by the product mutation path; this service only guards them.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

type BrandRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	LogoURL  string `json:"logo_url,omitempty"`
	IsActive *bool  `json:"is_active,omitempty"`
}

type CategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

type ColorRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Code     string `json:"code,omitempty" validate:"omitempty,max=16"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// --- brands ---

func (s *CatalogService) ListBrands(includeInactive bool) ([]models.Brand, error) {
	var brands []models.Brand
	query := s.db.Order("name ASC")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&brands).Error; err != nil {
		return nil, apperrors.Internal(err, "failed to list brands")
	}
	return brands, nil
}

func (s *CatalogService) CreateBrand(req *BrandRequest) (*models.Brand, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.BadRequest("validation failed: %v", firstValidationMessage(err))
	}

	slug := utils.Slugify(req.Name)
	if slug == "" {
		return nil, apperrors.BadRequest("name must contain at least one alphanumeric character")
	}
	if err := s.checkBrandSlugFree(slug, nil); err != nil {
		return nil, err
	}

	brand := &models.Brand{
		Name:     req.Name,
		Slug:     slug,
		LogoURL:  req.LogoURL,
		IsActive: true,
	}
	if req.IsActive != nil {
		brand.IsActive = *req.IsActive
	}

	if err := s.db.Create(brand).Error; err != nil {
		return nil, apperrors.Internal(err, "failed to create brand")
	}
	return brand, nil
}

func (s *CatalogService) UpdateBrand(id uuid.UUID, req *BrandRequest) (*models.Brand, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.BadRequest("validation failed: %v", firstValidationMessage(err))
	}

	var brand models.Brand
	if err := s.db.First(&brand, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("brand not found")
		}
		return nil, apperrors.Internal(err, "failed to load brand")
	}

	if req.Name != brand.Name {
		slug := utils.Slugify(req.Name)
		if slug == "" {
			return nil, apperrors.BadRequest("name must contain at least one alphanumeric character")
		}
		if slug != brand.Slug {
			if err := s.checkBrandSlugFree(slug, &brand.ID); err != nil {
				return nil, err
			}
			brand.Slug = slug
		}
		brand.Name = req.Name
	}
	brand.LogoURL = req.LogoURL
	if req.IsActive != nil {
		brand.IsActive = *req.IsActive
	}

	if err := s.db.Save(&brand).Error; err != nil {
		return nil, apperrors.Internal(err, "failed to update brand")
	}
	return &brand, nil
}

// DeleteBrand refuses to remove a brand that products still reference.
func (s *CatalogService) DeleteBrand(id uuid.UUID) error {
	var brand models.Brand
	if err := s.db.First(&brand, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("brand not found")
		}
		return apperrors.Internal(err, "failed to load brand")
	}

	if brand.ProductCount > 0 {
		return apperrors.Conflict("brand %q is still referenced by %d products", brand.Name, brand.ProductCount)
	}

	if err := s.db.Unscoped().Delete(&brand).Error; err != nil {
		return apperrors.Internal(err, "failed to delete brand")
	}
	return nil
}

func (s *CatalogService) checkBrandSlugFree(slug string, excludeID *uuid.UUID) error {
	query := s.db.Model(&models.Brand{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return apperrors.Internal(err, "failed to check slug uniqueness")
	}
	if count > 0 {
		return apperrors.Conflict("a brand with slug %q already exists", slug)
	}
	return nil
}

// --- categories ---

func (s *CatalogService) ListCategories(includeInactive bool) ([]models.Category, error) {
	var categories []models.Category
	query := s.db.Order("name ASC")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&categories).Error; err != nil {
		return nil, apperrors.Internal(err, "failed to list categories")
	}
	return categories, nil
}

func (s *CatalogService) CreateCategory(req *CategoryRequest) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.BadRequest("validation failed: %v", firstValidationMessage(err))
	}

	slug := utils.Slugify(req.Name)
	if slug == "" {
		return nil, apperrors.BadRequest("name must contain at least one alphanumeric character")
	}
	if err := s.checkCategorySlugFree(slug, nil); err != nil {
		return nil, err
	}

	category := &models.Category{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Internal(err, "failed to create category")
	}
	return category, nil
}

func (s *CatalogService) UpdateCategory(id uuid.UUID, req *CategoryRequest) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.BadRequest("validation failed: %v", firstValidationMessage(err))
	}

	var category models.Category
	if err := s.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("category not found")
		}
		return nil, apperrors.Internal(err, "failed to load category")
	}

	if req.Name != category.Name {
		slug := utils.Slugify(req.Name)
		if slug == "" {
			return nil, apperrors.BadRequest("name must contain at least one alphanumeric character")
		}
		if slug != category.Slug {
			if err := s.checkCategorySlugFree(slug, &category.ID); err != nil {
				return nil, err
			}
			category.Slug = slug
		}
		category.Name = req.Name
	}
	category.Description = req.Description
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.db.Save(&category).Error; err != nil {
		return nil, apperrors.Internal(err, "failed to update category")
	}
	return &category, nil
}

func (s *CatalogService) DeleteCategory(id uuid.UUID) error {
	var category models.Category
	if err := s.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("category not found")
		}
		return apperrors.Internal(err, "failed to load category")
	}

	if category.ProductCount > 0 {
		return apperrors.Conflict("category %q is still referenced by %d products", category.Name, category.ProductCount)
	}

	if err := s.db.Unscoped().Delete(&category).Error; err != nil {
		return apperrors.Internal(err, "failed to delete category")
	}
	return nil
}

func (s *CatalogService) checkCategorySlugFree(slug string, excludeID *uuid.UUID) error {
	query := s.db.Model(&models.Category{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return apperrors.Internal(err, "failed to check slug uniqueness")
	}
	if count > 0 {
		return apperrors.Conflict("a category with slug %q already exists", slug)
	}
	return nil
}

// --- colors ---

func (s *CatalogService) ListColors(includeInactive bool) ([]models.Color, error) {
	var colors []models.Color
	query := s.db.Order("name ASC")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&colors).Error; err != nil {
		return nil, apperrors.Internal(err, "failed to list colors")
	}
	return colors, nil
}

func (s *CatalogService) CreateColor(req *ColorRequest) (*models.Color, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.BadRequest("validation failed: %v", firstValidationMessage(err))
	}

	color := &models.Color{
		Name:     req.Name,
		Code:     req.Code,
		IsActive: true,
	}
	if req.IsActive != nil {
		color.IsActive = *req.IsActive
	}

	if err := s.db.Create(color).Error; err != nil {
		return nil, apperrors.Internal(err, "failed to create color")
	}
	return color, nil
}

func (s *CatalogService) UpdateColor(id uuid.UUID, req *ColorRequest) (*models.Color, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.BadRequest("validation failed: %v", firstValidationMessage(err))
	}

	var color models.Color
	if err := s.db.First(&color, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("color not found")
		}
		return nil, apperrors.Internal(err, "failed to load color")
	}

	color.Name = req.Name
	color.Code = req.Code
	if req.IsActive != nil {
		color.IsActive = *req.IsActive
	}

	if err := s.db.Save(&color).Error; err != nil {
		return nil, apperrors.Internal(err, "failed to update color")
	}
	return &color, nil
}

func (s *CatalogService) DeleteColor(id uuid.UUID) error {
	var color models.Color
	if err := s.db.First(&color, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("color not found")
		}
		return apperrors.Internal(err, "failed to load color")
	}

	if color.ProductCount > 0 {
		return apperrors.Conflict("color %q is still referenced by %d products", color.Name, color.ProductCount)
	}

	if err := s.db.Unscoped().Delete(&color).Error; err != nil {
		return apperrors.Internal(err, "failed to delete color")
	}
	return nil
}
