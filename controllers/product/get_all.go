package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alialzoriki7-lab/kado-store/catalog"
	"github.com/alialzoriki7-lab/kado-store/models"
	"github.com/alialzoriki7-lab/kado-store/seed"
)

// GetProducts lists the catalog, filtered by the optional category,
// sub_category and search query params. The filtering runs in memory over
// the full product list, the same way the storefront browses it. A read
// failure degrades to an empty list instead of an error.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID := c.DefaultQuery("category", catalog.All)
		subCategoryID := c.DefaultQuery("sub_category", catalog.All)
		search := c.Query("search")

		products, err := seed.EnsureProducts(db)
		if err != nil {
			log.Warnf("product listing degraded to empty: %v", err)
			c.JSON(http.StatusOK, []models.Product{})
			return
		}

		categories, err := seed.EnsureCategories(db)
		if err != nil {
			log.Warnf("category listing degraded to empty: %v", err)
			categories = nil
		}

		filtered := catalog.Filter(products, categories, categoryID, subCategoryID, search)
		if filtered == nil {
			filtered = []models.Product{}
		}
		c.JSON(http.StatusOK, filtered)
	}
}
