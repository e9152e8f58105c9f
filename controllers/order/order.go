package orderControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/alialzoriki7-lab/kado-store/cart"
	"github.com/alialzoriki7-lab/kado-store/checkout"
	"github.com/alialzoriki7-lab/kado-store/config"
	"github.com/alialzoriki7-lab/kado-store/middleware"
	"github.com/alialzoriki7-lab/kado-store/models"
)

var log = logrus.WithField("component", "orders")

// -------- Request Structs --------

type CheckoutRequest struct {
	DeliveryArea     string `json:"delivery_area" binding:"required"`
	PaymentMethod    string `json:"payment_method" binding:"required"`
	ElectronicWallet string `json:"electronic_wallet"`
	PaymentReference string `json:"payment_reference"`
}

// -------- Helpers --------

// Map string to PaymentMethod
func mapPaymentMethod(method string) (models.PaymentMethod, error) {
	switch strings.ToLower(method) {
	case "cash":
		return models.PaymentCash, nil
	case "electronic":
		return models.PaymentElectronic, nil
	default:
		return "", errors.New("invalid payment method")
	}
}

// -------- Handlers --------

// CheckoutHandler places an order from the caller's cart. The cart is
// cleared only when the whole checkout went through; on a partial failure
// the order stays recorded and the cart stays intact so the buyer can retry.
func CheckoutHandler(db *gorm.DB, cfg config.Config, carts *cart.Store) gin.HandlerFunc {
	svc := checkout.NewService(checkout.NewGormStore(db, cfg.StockGuard), log)

	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		method, err := mapPaymentMethod(req.PaymentMethod)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		userCart := carts.Get(user.ID)
		order, outcome, err := svc.Place(checkout.Request{
			User:      user,
			Items:     userCart.Items(),
			AreaID:    req.DeliveryArea,
			Method:    method,
			Wallet:    req.ElectronicWallet,
			Reference: req.PaymentReference,
		})

		if err != nil {
			if errors.Is(err, checkout.ErrEmptyCart) || errors.Is(err, checkout.ErrMissingReference) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			switch outcome {
			case checkout.OutcomePartialStock:
				log.Warnf("checkout for user %s left order %s with partial stock decrements", user.ID, order.ID)
			default:
				log.Errorf("checkout for user %s failed: %v", user.ID, err)
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order, please try again"})
			return
		}

		userCart.Clear()
		broadcastNewOrder(*order)
		c.JSON(http.StatusCreated, gin.H{
			"message": "Order placed successfully",
			"order":   order,
		})
	}
}

// GetAllOrdersHandler lists every order, newest first (admin).
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			log.Warnf("order listing failed: %v", err)
			c.JSON(http.StatusOK, []models.Order{})
			return
		}
		if orders == nil {
			orders = []models.Order{}
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetUserOrdersHandler lists the caller's own orders, newest first.
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var orders []models.Order
		if err := db.
			Where("user_id = ?", user.ID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			log.Warnf("order listing for user %s failed: %v", user.ID, err)
			c.JSON(http.StatusOK, []models.Order{})
			return
		}
		if orders == nil {
			orders = []models.Order{}
		}
		c.JSON(http.StatusOK, orders)
	}
}

// ApproveOrderHandler marks an order's payment as completed (admin).
func ApproveOrderHandler(db *gorm.DB, cfg config.Config) gin.HandlerFunc {
	svc := checkout.NewService(checkout.NewGormStore(db, cfg.StockGuard), log)

	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		if err := svc.Approve(orderID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order approved successfully"})
	}
}
