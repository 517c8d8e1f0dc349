// internal/models/catalog.go
package models

// Category, Color and Brand are the reference entities a product points
// at. Each carries a denormalized product_count that is adjusted inside
// the same transaction as the product mutation touching it, never
// recomputed by a full scan.

type Category struct {
	BaseModel
	Name         string `json:"name" gorm:"size:100;not null"`
	Slug         string `json:"slug" gorm:"size:100;not null;uniqueIndex"`
	Description  string `json:"description" gorm:"type:text"`
	IsActive     bool   `json:"is_active" gorm:"index"`
	ProductCount int64  `json:"product_count" gorm:"default:0"`
}

type Color struct {
	BaseModel
	Name         string `json:"name" gorm:"size:100;not null"`
	Code         string `json:"code" gorm:"size:16"`
	IsActive     bool   `json:"is_active"`
	ProductCount int64  `json:"product_count" gorm:"default:0"`
}

type Brand struct {
	BaseModel
	Name         string `json:"name" gorm:"size:100;not null"`
	Slug         string `json:"slug" gorm:"size:100;not null;uniqueIndex"`
	LogoURL      string `json:"logo_url" gorm:"size:512"`
	IsActive     bool   `json:"is_active"`
	ProductCount int64  `json:"product_count" gorm:"default:0"`
}
