package catalog

import (
	"strings"

	"github.com/alialzoriki7-lab/kado-store/models"
)

// All is the sentinel meaning "no category/sub-category filter".
const All = "all"

// Filter returns the products visible under the selected category,
// sub-category and search term, preserving source order.
//
// A product passes the category filter when no category is selected, when it
// is tagged with the selected category directly, or when it is tagged with a
// child of the selected category. The sub-category filter narrows to an
// exact child category id. The search term matches Arabic names
// case-sensitively and English names case-insensitively.
func Filter(products []models.Product, categories []models.CategoryItem, categoryID, subCategoryID, search string) []models.Product {
	childIDs := make(map[string]bool)
	if categoryID != All && categoryID != "" {
		for _, c := range ChildrenOf(categories, categoryID) {
			childIDs[c.ID] = true
		}
	}

	lowerSearch := strings.ToLower(search)

	var out []models.Product
	for _, p := range products {
		if !matchCategory(p, categoryID, childIDs) {
			continue
		}
		if subCategoryID != All && subCategoryID != "" && p.Category != subCategoryID {
			continue
		}
		if !matchSearch(p, search, lowerSearch) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchCategory(p models.Product, categoryID string, childIDs map[string]bool) bool {
	if categoryID == All || categoryID == "" {
		return true
	}
	return p.Category == categoryID || childIDs[p.Category]
}

func matchSearch(p models.Product, search, lowerSearch string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(p.NameAR, search) ||
		strings.Contains(strings.ToLower(p.NameEN), lowerSearch)
}
