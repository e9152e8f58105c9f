package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alialzoriki7-lab/kado-store/cart"
	"github.com/alialzoriki7-lab/kado-store/config"
	cartControllers "github.com/alialzoriki7-lab/kado-store/controllers/cart"
	orderControllers "github.com/alialzoriki7-lab/kado-store/controllers/order"
	"github.com/alialzoriki7-lab/kado-store/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires a valid JWT.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config, carts *cart.Store) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken(cfg))
	{
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(carts))
			cartGroup.POST("/items", cartControllers.AddItem(db, carts))
			cartGroup.PATCH("/items/:product_id", cartControllers.UpdateItemQuantity(carts))
			cartGroup.DELETE("/items/:product_id", cartControllers.DeleteItem(carts))
			cartGroup.DELETE("", cartControllers.ClearCart(carts))
		}

		userGroup.POST("/checkout", orderControllers.CheckoutHandler(db, cfg, carts))
		userGroup.GET("/orders", orderControllers.GetUserOrdersHandler(db))
	}
}
