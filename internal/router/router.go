// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Bhavik-1602/misha-barnd-factory/internal/config"
	"github.com/Bhavik-1602/misha-barnd-factory/internal/handlers"
	"github.com/Bhavik-1602/misha-barnd-factory/internal/middleware"
	"github.com/Bhavik-1602/misha-barnd-factory/internal/services"
	"github.com/Bhavik-1602/misha-barnd-factory/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	storageService, _ := services.NewStorageService(cfg)
	productService := services.NewProductService(db, storageService)
	catalogService := services.NewCatalogService(db)
	authService := services.NewAuthService(db, cfg)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(productService)
	browseHandler := handlers.NewBrowseHandler(productService, db)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	authHandler := handlers.NewAuthHandler(authService)

	utils.SetJWTSecret(cfg.JWT.SecretKey)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/login", authHandler.Login)
		}

		// Customer-facing browsing
		products := v1.Group("/products")
		{
			products.GET("", browseHandler.ListProducts)
			products.GET("/new-arrivals", browseHandler.GetNewArrivals)
			products.GET("/deals", browseHandler.GetDeals)
			products.GET("/featured", browseHandler.GetFeatured)
			products.GET("/:slug", browseHandler.GetProduct)
		}

		v1.GET("/brands", catalogHandler.ListBrands)
		v1.GET("/categories", catalogHandler.ListCategories)
		v1.GET("/colors", catalogHandler.ListColors)

		// Admin catalog management
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired())
		{
			admin.POST("/products", middleware.UploadRateLimit(), productHandler.CreateProduct)
			admin.PUT("/products/:id", middleware.UploadRateLimit(), productHandler.UpdateProduct)
			admin.DELETE("/products/:id", productHandler.DeleteProduct)

			admin.POST("/brands", catalogHandler.CreateBrand)
			admin.PUT("/brands/:id", catalogHandler.UpdateBrand)
			admin.DELETE("/brands/:id", catalogHandler.DeleteBrand)

			admin.POST("/categories", catalogHandler.CreateCategory)
			admin.PUT("/categories/:id", catalogHandler.UpdateCategory)
			admin.DELETE("/categories/:id", catalogHandler.DeleteCategory)

			admin.POST("/colors", catalogHandler.CreateColor)
			admin.PUT("/colors/:id", catalogHandler.UpdateColor)
			admin.DELETE("/colors/:id", catalogHandler.DeleteColor)
		}
	}

	return r
}
