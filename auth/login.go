package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/alialzoriki7-lab/kado-store/config"
	"github.com/alialzoriki7-lab/kado-store/models"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password"`
}

// LoginHandler runs the simplified local login. The configured credential
// pair grants an admin session; any other username is admitted as a regular
// customer without credential verification.
func LoginHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var user models.User
		if req.Username == cfg.AdminUsername && req.Password == cfg.AdminPassword {
			user = models.User{
				ID:      "admin",
				Name:    req.Username,
				Phone:   config.PaymentNumber,
				Email:   cfg.AdminEmail(),
				IsAdmin: true,
			}
		} else {
			user = models.User{
				ID:    uuid.NewString(),
				Name:  req.Username,
				Phone: "000",
				Email: req.Username + "@user.com",
			}
		}

		token, err := IssueToken(user, cfg.JWTSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"user":    user,
			"token":   token,
		})
	}
}

// LogoutHandler exists for symmetry with the client; sessions are stateless
// JWTs, so logging out is discarding the token.
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// IssueToken signs a session token carrying the user's denormalized
// profile, so checkout can snapshot it without an account lookup.
func IssueToken(user models.User, secret string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"name":     user.Name,
		"phone":    user.Phone,
		"email":    user.Email,
		"is_admin": user.IsAdmin,
		"exp":      time.Now().Add(72 * time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
