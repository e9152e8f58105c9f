package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/alialzoriki7-lab/kado-store/controllers/order"
	productcontroller "github.com/alialzoriki7-lab/kado-store/controllers/product"
)

// SetupShopRoutes registers the public storefront endpoints: browsing the
// catalog needs no session.
func SetupShopRoutes(r *gin.Engine, db *gorm.DB) {
	shopGroup := r.Group("/shop")
	{
		shopGroup.GET("/products", productcontroller.GetProducts(db))
		shopGroup.GET("/products/:id", productcontroller.GetProductByID(db))
		shopGroup.GET("/categories", productcontroller.GetAllCategories(db))
		shopGroup.GET("/config", orderControllers.CheckoutConfigHandler())
	}

	// Admin dashboards subscribe here for new-order notifications.
	r.GET("/orders/ws", orderControllers.OrderWebSocketHandler)
}
