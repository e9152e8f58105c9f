package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alialzoriki7-lab/kado-store/models"
)

type ProductUpdateInput struct {
	NameAR        *string `json:"name_ar"`
	NameEN        *string `json:"name_en"`
	DescriptionAR *string `json:"description_ar"`
	DescriptionEN *string `json:"description_en"`
	Category      *string `json:"category"`
	SubCategory   *string `json:"sub_category"`
	Price         *int    `json:"price"`
	Stock         *int    `json:"stock"`
	ImageURL      *string `json:"image_url"`
}

// UpdateProduct applies a partial update; only the fields present in the
// body change.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var input ProductUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.NameAR != nil {
			product.NameAR = *input.NameAR
		}
		if input.NameEN != nil {
			product.NameEN = *input.NameEN
		}
		if input.DescriptionAR != nil {
			product.DescriptionAR = *input.DescriptionAR
		}
		if input.DescriptionEN != nil {
			product.DescriptionEN = *input.DescriptionEN
		}
		if input.Category != nil {
			product.Category = *input.Category
		}
		if input.SubCategory != nil {
			product.SubCategory = *input.SubCategory
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.Stock != nil {
			product.Stock = *input.Stock
		}
		if input.ImageURL != nil {
			product.ImageURL = *input.ImageURL
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
