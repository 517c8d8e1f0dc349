// internal/services/product_service.go
package services

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Bhavik-1602/misha-barnd-factory/internal/apperrors"
	"github.com/Bhavik-1602/misha-barnd-factory/internal/models"
	"github.com/Bhavik-1602/misha-barnd-factory/internal/utils"
)

type ProductService struct {
	db             *gorm.DB
	storageService *StorageService
}

func NewProductService(db *gorm.DB, storageService *StorageService) *ProductService {
	return &ProductService{
		db:             db,
		storageService: storageService,
	}
}

// ColorRef is a variant's color reference in a mutation payload. The
// wire value must be a plain id string; stale clients sometimes send
// the whole populated color object instead, which is rejected rather
// than guessed at.
type ColorRef struct {
	id       string
	isObject bool
	present  bool
}

func (r *ColorRef) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return nil
	}
	r.present = true
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		r.isObject = true
		return nil
	}
	return json.Unmarshal(data, &r.id)
}

func (r ColorRef) MarshalJSON() ([]byte, error) {
	if !r.present {
		return []byte("null"), nil
	}
	return json.Marshal(r.id)
}

type VariantPayload struct {
	ID      string             `json:"id,omitempty"`
	Color   ColorRef           `json:"color"`
	Price   *decimal.Decimal   `json:"price,omitempty"`
	Sizes   []models.SizeStock `json:"sizes,omitempty"`
	AltText string             `json:"alt_text,omitempty"`
}

type CreateProductRequest struct {
	Name           string                 `json:"name" validate:"required,min=2,max=255"`
	CategoryID     string                 `json:"category_id" validate:"required"`
	BrandID        string                 `json:"brand_id" validate:"required"`
	BasePrice      decimal.Decimal        `json:"base_price" validate:"min=0"`
	Description    string                 `json:"description"`
	Variants       []VariantPayload       `json:"variants" validate:"required,min=1"`
	Tags           []string               `json:"tags,omitempty"`
	Specifications map[string]interface{} `json:"specifications,omitempty"`
	Collections    []string               `json:"collections,omitempty"`
	Discount       *decimal.Decimal       `json:"discount,omitempty"`
	IsActive       *bool                  `json:"is_active,omitempty"`
	IsVisible      *bool                  `json:"is_visible,omitempty"`
	IsFeatured     *bool                  `json:"is_featured,omitempty"`
}

type UpdateProductRequest struct {
	Name           string                 `json:"name,omitempty"`
	CategoryID     string                 `json:"category_id,omitempty"`
	BrandID        string                 `json:"brand_id,omitempty"`
	BasePrice      *decimal.Decimal       `json:"base_price,omitempty"`
	Description    *string                `json:"description,omitempty"`
	Variants       []VariantPayload       `json:"variants,omitempty"`
	Tags           []string               `json:"tags,omitempty"`
	Specifications map[string]interface{} `json:"specifications,omitempty"`
	Collections    []string               `json:"collections,omitempty"`
	Discount       *decimal.Decimal       `json:"discount,omitempty"`
	IsActive       *bool                  `json:"is_active,omitempty"`
	IsVisible      *bool                  `json:"is_visible,omitempty"`
	IsFeatured     *bool                  `json:"is_featured,omitempty"`
	IsSoldOut      *bool                  `json:"is_sold_out,omitempty"`
}

// ImageBatch carries multipart uploads keyed by the index of the
// variant they belong to in the request's variant list.
type ImageBatch map[int][]*multipart.FileHeader

// ProductWithRefs joins a product with the display fields of its
// referenced colors.
type ProductWithRefs struct {
	models.Product
	Colors []models.Color `json:"colors,omitempty"`
}

// CreateProduct validates the request, uploads variant images and, as a
// single atomic unit, inserts the product and adjusts the category,
// brand and color counters. A failure inside the unit keeps none of the
// effects.
func (s *ProductService) CreateProduct(req *CreateProductRequest, images ImageBatch) (*ProductWithRefs, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.BadRequest("validation failed: %v", firstValidationMessage(err))
	}
	if req.BasePrice.IsNegative() {
		return nil, apperrors.BadRequest("base price must not be negative")
	}

	category, err := s.loadCategory(req.CategoryID)
	if err != nil {
		return nil, err
	}
	brand, err := s.loadBrand(req.BrandID)
	if err != nil {
		return nil, err
	}

	variants, err := buildVariants(req.Variants)
	if err != nil {
		return nil, err
	}

	colors, err := s.verifyColors(variants.ColorIDs())
	if err != nil {
		return nil, err
	}

	slug := utils.Slugify(req.Name)
	if slug == "" {
		return nil, apperrors.BadRequest("name must contain at least one alphanumeric character")
	}
	if err := s.checkSlugFree(slug, nil); err != nil {
		return nil, err
	}

	uploadedKeys, err := s.attachImages(variants, req.Variants, images)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:           req.Name,
		Slug:           slug,
		CategoryID:     category.ID,
		BrandID:        brand.ID,
		BasePrice:      req.BasePrice,
		Description:    req.Description,
		Variants:       variants,
		Tags:           utils.SlugifyAll(req.Tags),
		Specifications: models.JSONB(req.Specifications),
		Collections:    utils.SlugifyAll(req.Collections),
		StockCount:     variants.TotalStock(),
		IsActive:       true,
		IsVisible:      true,
	}
	if req.Discount != nil {
		if req.Discount.IsNegative() {
			return nil, apperrors.BadRequest("discount must not be negative")
		}
		product.Discount = *req.Discount
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.IsVisible != nil {
		product.IsVisible = *req.IsVisible
	}
	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			return err
		}
		if err := adjustCounter(tx, &models.Category{}, category.ID, 1); err != nil {
			return err
		}
		if err := adjustCounter(tx, &models.Brand{}, brand.ID, 1); err != nil {
			return err
		}
		for _, colorID := range variants.ColorIDs() {
			if err := adjustCounter(tx, &models.Color{}, colorID, 1); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// The insert rolled back; compensate for the uploads that
		// already happened outside the transaction.
		s.deleteStoredImages(uploadedKeys)
		return nil, apperrors.Internal(err, "failed to create product")
	}

	s.db.Preload("Category").Preload("Brand").First(product, product.ID)

	return &ProductWithRefs{Product: *product, Colors: colors}, nil
}

// UpdateProduct merges the incoming variant payloads into the stored
// list, replaces targeted image slots, and commits counter adjustments
// and the merged document in one atomic unit. The response is
// deep-normalized for transport.
func (s *ProductService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest, images ImageBatch) (map[string]interface{}, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("product not found")
		}
		return nil, apperrors.Internal(err, "failed to load product")
	}

	oldColorIDs := product.Variants.ColorIDs()
	oldCategoryID := product.CategoryID
	oldBrandID := product.BrandID

	if req.CategoryID != "" {
		category, err := s.loadCategory(req.CategoryID)
		if err != nil {
			return nil, err
		}
		product.CategoryID = category.ID
	}
	if req.BrandID != "" {
		brand, err := s.loadBrand(req.BrandID)
		if err != nil {
			return nil, err
		}
		product.BrandID = brand.ID
	}

	merged, payloadSlots, err := mergeVariants(product.Variants, req.Variants)
	if err != nil {
		return nil, err
	}

	if _, err := s.verifyColors(merged.ColorIDs()); err != nil {
		return nil, err
	}

	if req.Name != "" && req.Name != product.Name {
		slug := utils.Slugify(req.Name)
		if slug == "" {
			return nil, apperrors.BadRequest("name must contain at least one alphanumeric character")
		}
		if slug != product.Slug {
			if err := s.checkSlugFree(slug, &product.ID); err != nil {
				return nil, err
			}
			product.Slug = slug
		}
		product.Name = req.Name
	}

	uploadedKeys, err := s.replaceImages(merged, payloadSlots, req.Variants, images)
	if err != nil {
		return nil, err
	}
	if len(images) > 0 && !merged.HasImage() {
		s.deleteStoredImages(uploadedKeys)
		return nil, apperrors.BadRequest("uploaded images could not be matched to any variant")
	}

	product.Variants = merged
	product.StockCount = merged.TotalStock()
	applyScalarUpdates(&product, req)
	if product.BasePrice.IsNegative() {
		return nil, apperrors.BadRequest("base price must not be negative")
	}
	if product.Discount.IsNegative() {
		return nil, apperrors.BadRequest("discount must not be negative")
	}

	increments, decrements := ReconcileRefs(oldColorIDs, merged.ColorIDs())

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, colorID := range increments {
			if err := adjustCounter(tx, &models.Color{}, colorID, 1); err != nil {
				return err
			}
		}
		for _, colorID := range decrements {
			if err := adjustCounter(tx, &models.Color{}, colorID, -1); err != nil {
				return err
			}
		}
		if product.CategoryID != oldCategoryID {
			if err := adjustCounter(tx, &models.Category{}, oldCategoryID, -1); err != nil {
				return err
			}
			if err := adjustCounter(tx, &models.Category{}, product.CategoryID, 1); err != nil {
				return err
			}
		}
		if product.BrandID != oldBrandID {
			if err := adjustCounter(tx, &models.Brand{}, oldBrandID, -1); err != nil {
				return err
			}
			if err := adjustCounter(tx, &models.Brand{}, product.BrandID, 1); err != nil {
				return err
			}
		}
		return tx.Save(&product).Error
	})
	if err != nil {
		s.deleteStoredImages(uploadedKeys)
		return nil, apperrors.Internal(err, "failed to update product")
	}

	s.db.Preload("Category").Preload("Brand").First(&product, product.ID)
	colors, _ := s.listColors(product.Variants.ColorIDs())

	projected, _ := utils.Project(&ProductWithRefs{Product: product, Colors: colors}).(map[string]interface{})
	return projected, nil
}

// DeleteProduct removes the product and its counter contributions in
// one atomic unit, then removes the stored image assets best-effort.
func (s *ProductService) DeleteProduct(id uuid.UUID) error {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("product not found")
		}
		return apperrors.Internal(err, "failed to load product")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := adjustCounter(tx, &models.Category{}, product.CategoryID, -1); err != nil {
			return err
		}
		if err := adjustCounter(tx, &models.Brand{}, product.BrandID, -1); err != nil {
			return err
		}
		for _, colorID := range product.Variants.ColorIDs() {
			if err := adjustCounter(tx, &models.Color{}, colorID, -1); err != nil {
				return err
			}
		}
		return tx.Unscoped().Delete(&models.Product{}, "id = ?", product.ID).Error
	})
	if err != nil {
		return apperrors.Internal(err, "failed to delete product")
	}

	// Asset removal is deliberately outside the atomic unit: a failed
	// file deletion must never block product removal.
	for _, variant := range product.Variants {
		for _, image := range variant.Images {
			if err := s.storageService.DeleteFile(image.StorageKey); err != nil {
				logrus.WithError(err).WithField("key", image.StorageKey).
					Warn("Failed to delete stored image")
			}
		}
	}

	return nil
}

// --- browsing ---

type ProductPage struct {
	Items          []models.Product     `json:"items"`
	Meta           utils.PaginationMeta `json:"meta"`
	AppliedFilters string               `json:"applied_filters"`
}

// ListProducts runs the count query and the windowed fetch against the
// identical predicate so the total stays consistent with the page.
func (s *ProductService) ListProducts(filters *ProductFilters) (*ProductPage, error) {
	query := s.db.Model(&models.Product{}).
		Where("is_active = ? AND is_visible = ?", true, true)
	query = filters.Apply(query)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperrors.Internal(err, "failed to count products")
	}

	query = filters.ApplySort(query)
	query = utils.ApplyWindow(query, filters.Window).
		Preload("Category").Preload("Brand")

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, apperrors.Internal(err, "failed to fetch products")
	}

	return &ProductPage{
		Items:          products,
		Meta:           utils.NewPaginationMeta(filters.Window, total),
		AppliedFilters: filters.Summary(),
	}, nil
}

// GetBySlug returns a visible product and bumps its view counter with a
// single relative update, off the request path.
func (s *ProductService) GetBySlug(slug string) (*ProductWithRefs, error) {
	var product models.Product
	err := s.db.Preload("Category").Preload("Brand").
		Where("slug = ? AND is_active = ? AND is_visible = ?", slug, true, true).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("product not found")
		}
		return nil, apperrors.Internal(err, "failed to load product")
	}

	go s.incrementViewCount(product.ID)

	colors, _ := s.listColors(product.Variants.ColorIDs())
	return &ProductWithRefs{Product: product, Colors: colors}, nil
}

func (s *ProductService) GetNewArrivals(limit int) ([]models.Product, error) {
	return s.listVisible(limit, "created_at DESC", nil)
}

// GetDeals returns discounted products, largest discount first.
func (s *ProductService) GetDeals(limit int) ([]models.Product, error) {
	return s.listVisible(limit, "discount DESC, created_at DESC", func(q *gorm.DB) *gorm.DB {
		return q.Where("discount > 0")
	})
}

func (s *ProductService) GetFeatured(limit int) ([]models.Product, error) {
	return s.listVisible(limit, "created_at DESC", func(q *gorm.DB) *gorm.DB {
		return q.Where("is_featured = ?", true)
	})
}

func (s *ProductService) listVisible(limit int, order string, scope func(*gorm.DB) *gorm.DB) ([]models.Product, error) {
	query := s.db.Where("is_active = ? AND is_visible = ?", true, true)
	if scope != nil {
		query = scope(query)
	}

	var products []models.Product
	err := query.Order(order).Limit(limit).
		Preload("Category").Preload("Brand").
		Find(&products).Error
	if err != nil {
		return nil, apperrors.Internal(err, "failed to fetch products")
	}
	return products, nil
}

func (s *ProductService) incrementViewCount(productID uuid.UUID) {
	err := s.db.Model(&models.Product{}).Where("id = ?", productID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
	if err != nil {
		logrus.WithError(err).WithField("product_id", productID).
			Warn("Failed to bump view count")
	}
}

// --- helpers ---

func adjustCounter(tx *gorm.DB, model interface{}, id uuid.UUID, delta int) error {
	return tx.Model(model).Where("id = ?", id).
		UpdateColumn("product_count", gorm.Expr("product_count + ?", delta)).Error
}

func (s *ProductService) loadCategory(raw string) (*models.Category, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperrors.BadRequest("invalid category id %q", raw)
	}
	var category models.Category
	if err := s.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("category not found")
		}
		return nil, apperrors.Internal(err, "failed to load category")
	}
	return &category, nil
}

func (s *ProductService) loadBrand(raw string) (*models.Brand, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperrors.BadRequest("invalid brand id %q", raw)
	}
	var brand models.Brand
	if err := s.db.First(&brand, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("brand not found")
		}
		return nil, apperrors.Internal(err, "failed to load brand")
	}
	return &brand, nil
}

// verifyColors checks every requested color id against the color
// collection. One unknown id rejects the whole operation.
func (s *ProductService) verifyColors(ids []uuid.UUID) ([]models.Color, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	colors, err := s.listColors(ids)
	if err != nil {
		return nil, err
	}

	if len(colors) != len(ids) {
		found := make(map[uuid.UUID]bool, len(colors))
		for _, color := range colors {
			found[color.ID] = true
		}
		var missing []string
		for _, id := range ids {
			if !found[id] {
				missing = append(missing, id.String())
			}
		}
		return nil, apperrors.BadRequest("unknown color ids: %s", strings.Join(missing, ", "))
	}

	return colors, nil
}

func (s *ProductService) listColors(ids []uuid.UUID) ([]models.Color, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var colors []models.Color
	if err := s.db.Where("id IN ?", ids).Find(&colors).Error; err != nil {
		return nil, apperrors.Internal(err, "failed to load colors")
	}
	return colors, nil
}

func (s *ProductService) checkSlugFree(slug string, excludeID *uuid.UUID) error {
	query := s.db.Model(&models.Product{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return apperrors.Internal(err, "failed to check slug uniqueness")
	}
	if count > 0 {
		return apperrors.Conflict("a product with slug %q already exists", slug)
	}
	return nil
}

// buildVariants turns create payloads into owned variants with fresh
// ids. Every payload must carry a color reference.
func buildVariants(payloads []VariantPayload) (models.VariantList, error) {
	variants := make(models.VariantList, 0, len(payloads))
	for i, payload := range payloads {
		colorID, err := payloadColorID(payload, i)
		if err != nil {
			return nil, err
		}
		if colorID == uuid.Nil {
			return nil, apperrors.BadRequest("variant %d is missing its color reference", i)
		}

		variant := models.Variant{
			ID:      uuid.New(),
			ColorID: colorID,
			Sizes:   payload.Sizes,
		}
		if payload.Price != nil {
			if payload.Price.IsNegative() {
				return nil, apperrors.BadRequest("variant %d price must not be negative", i)
			}
			variant.Price = *payload.Price
		}
		variants = append(variants, variant)
	}
	return variants, nil
}

// mergeVariants folds updates into the existing list: payloads with an
// id patch their variant in place, payloads with only a color become
// new variants. payloadSlots maps each payload index to its position in
// the merged list so uploads correlate positionally.
func mergeVariants(existing models.VariantList, payloads []VariantPayload) (models.VariantList, map[int]int, error) {
	merged := make(models.VariantList, len(existing))
	copy(merged, existing)

	indexByID := make(map[uuid.UUID]int, len(merged))
	for i, variant := range merged {
		indexByID[variant.ID] = i
	}

	payloadSlots := make(map[int]int, len(payloads))
	for i, payload := range payloads {
		colorID, err := payloadColorID(payload, i)
		if err != nil {
			return nil, nil, err
		}

		if payload.ID != "" {
			variantID, err := uuid.Parse(payload.ID)
			if err != nil {
				return nil, nil, apperrors.BadRequest("variant %d has an invalid id", i)
			}
			slot, ok := indexByID[variantID]
			if !ok {
				return nil, nil, apperrors.BadRequest("variant %d references an unknown variant id", i)
			}
			if colorID != uuid.Nil {
				merged[slot].ColorID = colorID
			}
			if payload.Price != nil {
				if payload.Price.IsNegative() {
					return nil, nil, apperrors.BadRequest("variant %d price must not be negative", i)
				}
				merged[slot].Price = *payload.Price
			}
			if payload.Sizes != nil {
				merged[slot].Sizes = payload.Sizes
			}
			payloadSlots[i] = slot
			continue
		}

		if colorID == uuid.Nil {
			return nil, nil, apperrors.BadRequest("variant %d must supply either an id or a color reference", i)
		}

		variant := models.Variant{
			ID:      uuid.New(),
			ColorID: colorID,
			Sizes:   payload.Sizes,
		}
		if payload.Price != nil {
			if payload.Price.IsNegative() {
				return nil, nil, apperrors.BadRequest("variant %d price must not be negative", i)
			}
			variant.Price = *payload.Price
		}
		merged = append(merged, variant)
		payloadSlots[i] = len(merged) - 1
	}

	return merged, payloadSlots, nil
}

func payloadColorID(payload VariantPayload, index int) (uuid.UUID, error) {
	if payload.Color.isObject {
		return uuid.Nil, apperrors.BadRequest("variant %d color must be a plain id, not an object", index)
	}
	if !payload.Color.present || payload.Color.id == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(payload.Color.id)
	if err != nil {
		return uuid.Nil, apperrors.BadRequest("variant %d has an invalid color id %q", index, payload.Color.id)
	}
	return id, nil
}

// attachImages uploads the batch and attaches each file to the variant
// at its index. The first image of a variant becomes primary. Every
// index in the batch must name a variant; one unmatched index rejects
// the whole batch before any file is stored.
func (s *ProductService) attachImages(variants models.VariantList, payloads []VariantPayload, images ImageBatch) ([]string, error) {
	if len(images) == 0 {
		return nil, nil
	}

	for index := range images {
		if index < 0 || index >= len(variants) {
			return nil, apperrors.BadRequest("image field images[%d] does not match any variant", index)
		}
	}

	var uploadedKeys []string
	for index, headers := range images {
		altText := ""
		if index < len(payloads) {
			altText = payloads[index].AltText
		}

		stored, keys, err := s.uploadVariantImages(headers, altText)
		if err != nil {
			s.deleteStoredImages(uploadedKeys)
			return nil, err
		}
		uploadedKeys = append(uploadedKeys, keys...)
		variants[index].Images = stored
	}

	return uploadedKeys, nil
}

// replaceImages handles update-time uploads: the previously stored
// images of a targeted slot are deleted from the asset store
// best-effort before the replacement set is attached.
func (s *ProductService) replaceImages(merged models.VariantList, payloadSlots map[int]int, payloads []VariantPayload, images ImageBatch) ([]string, error) {
	if len(images) == 0 {
		return nil, nil
	}

	var uploadedKeys []string
	for index, headers := range images {
		slot, ok := payloadSlots[index]
		if !ok {
			continue
		}

		for _, old := range merged[slot].Images {
			if err := s.storageService.DeleteFile(old.StorageKey); err != nil {
				logrus.WithError(err).WithField("key", old.StorageKey).
					Warn("Failed to delete replaced image")
			}
		}

		altText := ""
		if index < len(payloads) {
			altText = payloads[index].AltText
		}

		stored, keys, err := s.uploadVariantImages(headers, altText)
		if err != nil {
			s.deleteStoredImages(uploadedKeys)
			return nil, err
		}
		uploadedKeys = append(uploadedKeys, keys...)
		merged[slot].Images = stored
	}

	return uploadedKeys, nil
}

func (s *ProductService) uploadVariantImages(headers []*multipart.FileHeader, altText string) ([]models.VariantImage, []string, error) {
	var stored []models.VariantImage
	var keys []string

	for j, header := range headers {
		file, err := header.Open()
		if err != nil {
			return nil, keys, apperrors.BadRequest("could not read uploaded file %q", header.Filename)
		}

		if err := s.storageService.ValidateImage(file); err != nil {
			file.Close()
			return nil, keys, apperrors.BadRequest("file %q is not a valid image", header.Filename)
		}

		result, err := s.storageService.UploadFile(file, header, ProductImageOptions())
		file.Close()
		if err != nil {
			return nil, keys, apperrors.Internal(err, "failed to store uploaded image")
		}

		keys = append(keys, result.Key)
		stored = append(stored, models.VariantImage{
			URL:        result.URL,
			StorageKey: result.Key,
			AltText:    altText,
			IsPrimary:  j == 0,
		})
	}

	return stored, keys, nil
}

func (s *ProductService) deleteStoredImages(keys []string) {
	for _, key := range keys {
		if err := s.storageService.DeleteFile(key); err != nil {
			logrus.WithError(err).WithField("key", key).
				Warn("Failed to delete stored image")
		}
	}
}

func applyScalarUpdates(product *models.Product, req *UpdateProductRequest) {
	if req.BasePrice != nil {
		product.BasePrice = *req.BasePrice
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Tags != nil {
		product.Tags = utils.SlugifyAll(req.Tags)
	}
	if req.Specifications != nil {
		product.Specifications = models.JSONB(req.Specifications)
	}
	if req.Collections != nil {
		product.Collections = utils.SlugifyAll(req.Collections)
	}
	if req.Discount != nil {
		product.Discount = *req.Discount
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.IsVisible != nil {
		product.IsVisible = *req.IsVisible
	}
	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}
	if req.IsSoldOut != nil {
		product.IsSoldOut = *req.IsSoldOut
	}
}

func firstValidationMessage(err error) string {
	if errs := utils.GetValidationErrors(err); len(errs) > 0 {
		return errs[0].Message
	}
	return err.Error()
}
