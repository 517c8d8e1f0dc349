// internal/models/product.go
package models

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	BaseModel
	Name           string          `json:"name" gorm:"size:255;not null"`
	Slug           string          `json:"slug" gorm:"size:255;not null;uniqueIndex"`
	CategoryID     uuid.UUID       `json:"category_id" gorm:"type:uuid;not null;index"`
	BrandID        uuid.UUID       `json:"brand_id" gorm:"type:uuid;not null;index"`
	BasePrice      decimal.Decimal `json:"base_price" gorm:"type:decimal(10,2);not null"`
	Description    string          `json:"description" gorm:"type:text"`
	Variants       VariantList     `json:"variants" gorm:"type:text"`
	IsActive       bool            `json:"is_active" gorm:"index"`
	IsVisible      bool            `json:"is_visible"`
	IsFeatured     bool            `json:"is_featured" gorm:"default:false;index"`
	IsSoldOut      bool            `json:"is_sold_out" gorm:"default:false"`
	Tags           StringList      `json:"tags" gorm:"type:text"`
	Specifications JSONB           `json:"specifications" gorm:"type:text"`
	Collections    StringList      `json:"collections" gorm:"type:text"`
	Discount       decimal.Decimal `json:"discount" gorm:"type:decimal(10,2);default:0"`
	ViewCount      int64           `json:"view_count" gorm:"default:0"`
	StockCount     int             `json:"stock_count" gorm:"default:0"`
	Rating         float64         `json:"rating" gorm:"type:decimal(3,2);default:0"`

	// Relationships
	Category Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Brand    Brand    `json:"brand,omitempty" gorm:"foreignKey:BrandID"`
}

// Variant is a purchasable configuration of a product. Variants are owned
// by exactly one product and live inside the product row as a document
// column, so merge and counter logic stays in the application layer.
type Variant struct {
	ID      uuid.UUID       `json:"id"`
	ColorID uuid.UUID       `json:"color_id"`
	Price   decimal.Decimal `json:"price"`
	Sizes   []SizeStock     `json:"sizes,omitempty"`
	Images  []VariantImage  `json:"images,omitempty"`
}

type SizeStock struct {
	Label    string `json:"label"`
	Quantity int    `json:"quantity"`
}

type VariantImage struct {
	URL        string `json:"url"`
	StorageKey string `json:"storage_key"`
	AltText    string `json:"alt_text,omitempty"`
	IsPrimary  bool   `json:"is_primary"`
}

type VariantList []Variant

func (v VariantList) Value() (driver.Value, error) {
	if v == nil {
		return nil, nil
	}
	bytes, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(bytes), nil
}

func (v *VariantList) Scan(value interface{}) error {
	if value == nil {
		*v = nil
		return nil
	}

	bytes, err := toBytes(value)
	if err != nil {
		return err
	}

	return json.Unmarshal(bytes, v)
}

// ColorIDs returns the distinct color references across all variants.
func (v VariantList) ColorIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(v))
	var ids []uuid.UUID
	for _, variant := range v {
		if variant.ColorID == uuid.Nil || seen[variant.ColorID] {
			continue
		}
		seen[variant.ColorID] = true
		ids = append(ids, variant.ColorID)
	}
	return ids
}

// TotalStock sums size quantities across all variants. The product row
// carries the result as a denormalized column backing the availability
// filter.
func (v VariantList) TotalStock() int {
	total := 0
	for _, variant := range v {
		for _, size := range variant.Sizes {
			if size.Quantity > 0 {
				total += size.Quantity
			}
		}
	}
	return total
}

// HasImage reports whether at least one variant carries an image.
func (v VariantList) HasImage() bool {
	for _, variant := range v {
		if len(variant.Images) > 0 {
			return true
		}
	}
	return false
}
