package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alialzoriki7-lab/kado-store/models"
	"github.com/alialzoriki7-lab/kado-store/seed"
)

type CategoryInput struct {
	NameAR        string `json:"name_ar" binding:"required"`
	NameEN        string `json:"name_en" binding:"required"`
	DescriptionAR string `json:"description_ar"`
	DescriptionEN string `json:"description_en"`
	ParentID      string `json:"parentId"`
	Icon          string `json:"icon"`
	Color         string `json:"color"`
}

// CreateCategory inserts a category. A parent, when given, must be an
// existing top-level category; the taxonomy is one level deep.
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.ParentID != "" {
			var parent models.CategoryItem
			if err := db.First(&parent, "id = ?", input.ParentID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Parent category does not exist"})
				return
			}
			if parent.ParentID != "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Parent must be a top-level category"})
				return
			}
		}

		category := models.CategoryItem{
			NameAR:        input.NameAR,
			NameEN:        input.NameEN,
			DescriptionAR: input.DescriptionAR,
			DescriptionEN: input.DescriptionEN,
			ParentID:      input.ParentID,
			Icon:          models.ResolveIcon(input.Icon),
			Color:         models.ResolveColor(input.Color),
		}

		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}

		c.JSON(http.StatusCreated, category)
	}
}

// GetAllCategories lists the taxonomy, seeding the defaults on the first
// call against an empty table. A read failure degrades to an empty list.
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := seed.EnsureCategories(db)
		if err != nil {
			log.Warnf("category listing degraded to empty: %v", err)
			categories = []models.CategoryItem{}
		}
		c.JSON(http.StatusOK, categories)
	}
}

func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.CategoryItem
		if err := db.First(&category, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		var input struct {
			NameAR        *string `json:"name_ar"`
			NameEN        *string `json:"name_en"`
			DescriptionAR *string `json:"description_ar"`
			DescriptionEN *string `json:"description_en"`
			Icon          *string `json:"icon"`
			Color         *string `json:"color"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.NameAR != nil {
			category.NameAR = *input.NameAR
		}
		if input.NameEN != nil {
			category.NameEN = *input.NameEN
		}
		if input.DescriptionAR != nil {
			category.DescriptionAR = *input.DescriptionAR
		}
		if input.DescriptionEN != nil {
			category.DescriptionEN = *input.DescriptionEN
		}
		if input.Icon != nil {
			category.Icon = models.ResolveIcon(*input.Icon)
		}
		if input.Color != nil {
			category.Color = models.ResolveColor(*input.Color)
		}

		if err := db.Save(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}

		c.JSON(http.StatusOK, category)
	}
}

// DeleteCategory removes a category without touching products that
// reference it; orphaned references are tolerated and fall back to the raw
// id when a display name is resolved.
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.CategoryItem
		if err := db.First(&category, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		if err := db.Delete(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
	}
}
