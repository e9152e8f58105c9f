package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alialzoriki7-lab/kado-store/config"
	orderControllers "github.com/alialzoriki7-lab/kado-store/controllers/order"
	productcontroller "github.com/alialzoriki7-lab/kado-store/controllers/product"
	"github.com/alialzoriki7-lab/kado-store/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires a valid JWT
// belonging to an admin.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken(cfg), middleware.RequireAdmin(cfg))
	{
		// Product Management
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.GET("", productcontroller.GetProducts(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// Category Management
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(db))
			categoryAdmin.GET("", productcontroller.GetAllCategories(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}

		// Order Management
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.PUT("/:orderID/approve", orderControllers.ApproveOrderHandler(db, cfg))
		}
	}
}
