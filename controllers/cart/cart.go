package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alialzoriki7-lab/kado-store/cart"
	"github.com/alialzoriki7-lab/kado-store/middleware"
	"github.com/alialzoriki7-lab/kado-store/models"
)

type AddItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type UpdateQuantityInput struct {
	Delta int `json:"delta" binding:"required"`
}

// GetCart returns the caller's cart items with the running subtotal.
func GetCart(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userCart := carts.Get(user.ID)
		c.JSON(http.StatusOK, gin.H{
			"items":    userCart.Items(),
			"subtotal": userCart.Subtotal(),
		})
	}
}

// AddItem puts a product into the caller's cart, merging quantities when
// the product is already there.
func AddItem(db *gorm.DB, carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		userCart := carts.Get(user.ID)
		userCart.Add(product, input.Quantity)
		c.JSON(http.StatusOK, gin.H{
			"message":  "Product added to cart",
			"items":    userCart.Items(),
			"subtotal": userCart.Subtotal(),
		})
	}
}

// UpdateItemQuantity adjusts a cart line by a signed delta. Quantities
// never drop below one; absent products are left untouched.
func UpdateItemQuantity(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		userCart := carts.Get(user.ID)
		userCart.UpdateQuantity(c.Param("product_id"), input.Delta)
		c.JSON(http.StatusOK, gin.H{
			"items":    userCart.Items(),
			"subtotal": userCart.Subtotal(),
		})
	}
}

// DeleteItem removes a product from the caller's cart. Removing a product
// that is not in the cart succeeds without effect.
func DeleteItem(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		userCart := carts.Get(user.ID)
		userCart.Remove(c.Param("product_id"))
		c.JSON(http.StatusOK, gin.H{
			"message":  "Product removed from cart",
			"items":    userCart.Items(),
			"subtotal": userCart.Subtotal(),
		})
	}
}

// ClearCart empties the caller's cart.
func ClearCart(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		carts.Get(user.ID).Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
