package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alialzoriki7-lab/kado-store/models"
)

type ProductInput struct {
	NameAR        string `json:"name_ar" binding:"required"`
	NameEN        string `json:"name_en" binding:"required"`
	DescriptionAR string `json:"description_ar"`
	DescriptionEN string `json:"description_en"`
	Category      string `json:"category"`
	SubCategory   string `json:"sub_category"`
	Price         int    `json:"price" binding:"min=0"`
	Stock         int    `json:"stock" binding:"min=0"`
	ImageURL      string `json:"image_url"`
}

// CreateProduct inserts a new product. Required-field presence is the only
// validation; the category reference is not checked, an orphaned reference
// just fails to resolve a display name later.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			NameAR:        input.NameAR,
			NameEN:        input.NameEN,
			DescriptionAR: input.DescriptionAR,
			DescriptionEN: input.DescriptionEN,
			Category:      input.Category,
			SubCategory:   input.SubCategory,
			Price:         input.Price,
			Stock:         input.Stock,
			ImageURL:      input.ImageURL,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
