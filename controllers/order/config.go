package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alialzoriki7-lab/kado-store/config"
)

// CheckoutConfigHandler exposes the static checkout tables the storefront
// needs before placing an order: the payment number, the delivery areas
// with their fees, and the wallets accepted for electronic payment.
func CheckoutConfigHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"payment_number": config.PaymentNumber,
			"delivery_areas": config.DeliveryAreas,
			"wallets":        config.Wallets,
		})
	}
}
