package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/alialzoriki7-lab/kado-store/auth"
	"github.com/alialzoriki7-lab/kado-store/config"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, cfg config.Config) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", auth.LoginHandler(cfg))
		authGroup.POST("/logout", auth.LogoutHandler())
	}
}
