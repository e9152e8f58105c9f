package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/alialzoriki7-lab/kado-store/config"
	"github.com/alialzoriki7-lab/kado-store/models"
)

const userKey = "user"

// ValidateToken checks the Authorization header and puts the session user
// into the request context.
func ValidateToken(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("invalid token signing method")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		user := models.User{
			ID:      stringClaim(claims, "user_id"),
			Name:    stringClaim(claims, "name"),
			Phone:   stringClaim(claims, "phone"),
			Email:   stringClaim(claims, "email"),
			IsAdmin: boolClaim(claims, "is_admin"),
		}
		if user.ID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// RequireAdmin gates admin routes. A session is admin when its token says
// so or its email is on the configured allow-list.
func RequireAdmin(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		if !user.IsAdmin && !cfg.IsAdminEmail(user.Email) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the session user set by ValidateToken.
func CurrentUser(c *gin.Context) (models.User, bool) {
	val, exists := c.Get(userKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := val.(models.User)
	return user, ok
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

func boolClaim(claims jwt.MapClaims, key string) bool {
	if v, ok := claims[key].(bool); ok {
		return v
	}
	return false
}
