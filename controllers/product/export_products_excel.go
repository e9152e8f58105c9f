package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/alialzoriki7-lab/kado-store/models"
)

// ExportProductsToExcel downloads the full catalog as an .xlsx workbook.
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "NameEN", "NameAR", "Category", "SubCategory",
			"Price", "Stock", "ImageURL", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.NameEN)
			row.AddCell().SetValue(p.NameAR)
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(p.SubCategory)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.Stock)
			row.AddCell().SetValue(p.ImageURL)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Description", "File Transfer")
		c.Header("Content-Disposition", `attachment; filename="products.xlsx"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
