// internal/utils/pagination.go
package utils

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	DefaultPageSize = 12
	MaxPageSize     = 100
)

type PageWindow struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

type PaginationMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// GetPageWindow reads page/limit query params, clamping them to sane
// bounds. Explicitly invalid values (page=0, negative limit) are the
// caller's problem and reported there; absent values get defaults.
func GetPageWindow(c *gin.Context) (PageWindow, error) {
	window := PageWindow{Page: 1, Limit: DefaultPageSize}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return window, strconv.ErrRange
		}
		window.Page = page
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return window, strconv.ErrRange
		}
		if limit > MaxPageSize {
			limit = MaxPageSize
		}
		window.Limit = limit
	}

	return window, nil
}

func (w PageWindow) Offset() int {
	return (w.Page - 1) * w.Limit
}

func ApplyWindow(db *gorm.DB, w PageWindow) *gorm.DB {
	return db.Offset(w.Offset()).Limit(w.Limit)
}

func NewPaginationMeta(w PageWindow, total int64) PaginationMeta {
	totalPages := int(math.Ceil(float64(total) / float64(w.Limit)))
	return PaginationMeta{
		Page:       w.Page,
		Limit:      w.Limit,
		TotalItems: total,
		TotalPages: totalPages,
	}
}

func SetPaginationHeaders(c *gin.Context, meta PaginationMeta) {
	c.Header("X-Total-Count", strconv.FormatInt(meta.TotalItems, 10))
	c.Header("X-Page", strconv.Itoa(meta.Page))
	c.Header("X-Per-Page", strconv.Itoa(meta.Limit))
	c.Header("X-Total-Pages", strconv.Itoa(meta.TotalPages))
}
