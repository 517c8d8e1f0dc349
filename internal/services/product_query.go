// internal/services/product_query.go
package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Bhavik-1602/misha-barnd-factory/internal/apperrors"
	"github.com/Bhavik-1602/misha-barnd-factory/internal/models"
	"github.com/Bhavik-1602/misha-barnd-factory/internal/utils"
)

// ProductFilters is the typed result of parsing an untyped filter
// request. Parsing is fail-closed: one malformed id or an inconsistent
// price range rejects the whole request instead of silently dropping
// the bad element.
type ProductFilters struct {
	Search      string
	CategoryID  *uuid.UUID
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
	Tags        []string
	ColorIDs    []uuid.UUID
	BrandIDs    []uuid.UUID
	Collections []string
	Sizes       []string
	InStock     *bool
	SoldOut     *bool
	SortBy      string
	Order       string
	Window      utils.PageWindow

	applied []string
}

// Sort fields a caller may request; anything else falls back to
// creation time descending.
var allowedSortFields = map[string]bool{
	"created_at": true,
	"base_price": true,
	"rating":     true,
	"view_count": true,
	"name":       true,
}

// ParseProductFilters reads the request's query parameters into a
// ProductFilters. A category given as a non-id token is resolved against
// active category slugs using db; resolution failure is a client error.
func ParseProductFilters(c *gin.Context, db *gorm.DB) (*ProductFilters, error) {
	f := &ProductFilters{Order: "desc", SortBy: "created_at"}

	window, err := utils.GetPageWindow(c)
	if err != nil {
		return nil, apperrors.BadRequest("page and limit must be positive integers")
	}
	f.Window = window

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		f.Search = search
		f.applied = append(f.applied, fmt.Sprintf("search=%q", search))
	}

	if category := strings.TrimSpace(c.Query("category")); category != "" {
		id, err := resolveCategoryToken(db, category)
		if err != nil {
			return nil, err
		}
		f.CategoryID = &id
		f.applied = append(f.applied, "category="+category)
	}

	if err := f.parsePriceRange(c.Query("minPrice"), c.Query("maxPrice")); err != nil {
		return nil, err
	}

	if tags := splitList(c.Query("tags")); len(tags) > 0 {
		f.Tags = utils.SlugifyAll(tags)
		f.applied = append(f.applied, "tags="+strings.Join(f.Tags, ","))
	}

	colorIDs, err := parseIDList(c.Query("colors"), "colors")
	if err != nil {
		return nil, err
	}
	if len(colorIDs) > 0 {
		f.ColorIDs = colorIDs
		f.applied = append(f.applied, fmt.Sprintf("colors=%d selected", len(colorIDs)))
	}

	brandIDs, err := parseIDList(c.Query("brands"), "brands")
	if err != nil {
		return nil, err
	}
	if len(brandIDs) > 0 {
		f.BrandIDs = brandIDs
		f.applied = append(f.applied, fmt.Sprintf("brands=%d selected", len(brandIDs)))
	}

	if collections := splitList(c.Query("collections")); len(collections) > 0 {
		f.Collections = utils.SlugifyAll(collections)
		f.applied = append(f.applied, "collections="+strings.Join(f.Collections, ","))
	}

	if sizes := splitList(c.Query("sizes")); len(sizes) > 0 {
		f.Sizes = sizes
		f.applied = append(f.applied, "sizes="+strings.Join(sizes, ","))
	}

	if raw := c.Query("inStock"); raw != "" {
		inStock, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, apperrors.BadRequest("inStock must be a boolean")
		}
		f.InStock = &inStock
		f.applied = append(f.applied, "inStock="+strconv.FormatBool(inStock))
	}

	if raw := c.Query("soldOut"); raw != "" {
		soldOut, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, apperrors.BadRequest("soldOut must be a boolean")
		}
		f.SoldOut = &soldOut
		f.applied = append(f.applied, "soldOut="+strconv.FormatBool(soldOut))
	}

	if sortBy := c.Query("sortBy"); allowedSortFields[sortBy] {
		f.SortBy = sortBy
		if order := strings.ToLower(c.Query("order")); order == "asc" || order == "desc" {
			f.Order = order
		}
	}

	return f, nil
}

func (f *ProductFilters) parsePriceRange(rawMin, rawMax string) error {
	parse := func(raw, name string) (*decimal.Decimal, error) {
		if raw == "" {
			return nil, nil
		}
		value, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, apperrors.BadRequest("%s must be a number", name)
		}
		if value.IsNegative() {
			return nil, apperrors.BadRequest("%s must not be negative", name)
		}
		return &value, nil
	}

	min, err := parse(rawMin, "minPrice")
	if err != nil {
		return err
	}
	max, err := parse(rawMax, "maxPrice")
	if err != nil {
		return err
	}

	if min != nil && max != nil && min.GreaterThan(*max) {
		return apperrors.BadRequest("minPrice must not exceed maxPrice")
	}

	f.MinPrice = min
	f.MaxPrice = max
	if min != nil {
		f.applied = append(f.applied, "minPrice="+min.String())
	}
	if max != nil {
		f.applied = append(f.applied, "maxPrice="+max.String())
	}
	return nil
}

// Apply attaches the filter predicate to query. The same predicate must
// back both the count query and the windowed fetch so totals never
// drift from the returned page.
func (f *ProductFilters) Apply(query *gorm.DB) *gorm.DB {
	if f.Search != "" {
		like := "%" + escapeLike(strings.ToLower(f.Search)) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? ESCAPE '\\' OR LOWER(description) LIKE ? ESCAPE '\\' OR tags LIKE ? ESCAPE '\\'",
			like, like, like,
		)
	}

	if f.CategoryID != nil {
		query = query.Where("category_id = ?", *f.CategoryID)
	}

	if f.MinPrice != nil {
		query = query.Where("base_price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		query = query.Where("base_price <= ?", *f.MaxPrice)
	}

	// Tag, collection, size and color membership is matched against the
	// JSON-serialized document columns; tokens are normalized slugs so a
	// quoted substring match is exact.
	for _, tag := range f.Tags {
		query = query.Where("tags LIKE ?", `%"`+tag+`"%`)
	}
	for _, collection := range f.Collections {
		query = query.Where("collections LIKE ?", `%"`+collection+`"%`)
	}

	if len(f.Sizes) > 0 {
		conditions := make([]string, 0, len(f.Sizes))
		args := make([]interface{}, 0, len(f.Sizes))
		for _, size := range f.Sizes {
			conditions = append(conditions, "variants LIKE ? ESCAPE '\\'")
			args = append(args, `%"label":"`+escapeLike(size)+`"%`)
		}
		query = query.Where("("+strings.Join(conditions, " OR ")+")", args...)
	}

	if len(f.ColorIDs) > 0 {
		conditions := make([]string, 0, len(f.ColorIDs))
		args := make([]interface{}, 0, len(f.ColorIDs))
		for _, id := range f.ColorIDs {
			conditions = append(conditions, "variants LIKE ?")
			args = append(args, `%"`+id.String()+`"%`)
		}
		query = query.Where("("+strings.Join(conditions, " OR ")+")", args...)
	}

	if len(f.BrandIDs) > 0 {
		query = query.Where("brand_id IN ?", f.BrandIDs)
	}

	if f.InStock != nil {
		if *f.InStock {
			query = query.Where("stock_count > 0")
		} else {
			query = query.Where("stock_count = 0")
		}
	}

	if f.SoldOut != nil {
		query = query.Where("is_sold_out = ?", *f.SoldOut)
	}

	return query
}

// ApplySort orders the query by the validated sort field.
func (f *ProductFilters) ApplySort(query *gorm.DB) *gorm.DB {
	return query.Order(f.SortBy + " " + f.Order)
}

// Summary describes every filter actually applied, for diagnostics and
// response messaging.
func (f *ProductFilters) Summary() string {
	if len(f.applied) == 0 {
		return "no filters applied"
	}
	return strings.Join(f.applied, ", ")
}

func resolveCategoryToken(db *gorm.DB, token string) (uuid.UUID, error) {
	if id, err := uuid.Parse(token); err == nil {
		return id, nil
	}

	var category models.Category
	err := db.Where("slug = ? AND is_active = ?", utils.Slugify(token), true).
		First(&category).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return uuid.Nil, apperrors.BadRequest("unknown category %q", token)
		}
		return uuid.Nil, apperrors.Internal(err, "failed to resolve category")
	}
	return category.ID, nil
}

// parseIDList parses a comma-delimited id list. Every element must be a
// valid id; one bad element rejects the whole request.
func parseIDList(raw, name string) ([]uuid.UUID, error) {
	parts := splitList(raw)
	if len(parts) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(parts))
	for _, part := range parts {
		id, err := uuid.Parse(part)
		if err != nil {
			return nil, apperrors.BadRequest("invalid id %q in %s filter", part, name)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// escapeLike escapes LIKE metacharacters so user input never acts as a
// pattern.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
