package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alialzoriki7-lab/kado-store/cart"
	"github.com/alialzoriki7-lab/kado-store/config"
)

// SetupRoutes is the single entry-point that wires up Auth, Shop, User, and
// Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config, carts *cart.Store) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, cfg)

	// Public storefront routes
	SetupShopRoutes(r, db)

	// User routes (JWT-protected)
	SetupUserRoutes(r, db, cfg, carts)

	// Admin routes (JWT + admin check)
	SetupAdminRoutes(r, db, cfg)
}
