package catalog

import "github.com/alialzoriki7-lab/kado-store/models"

// The taxonomy is one parent/child tier deep. A category pointing at itself
// is treated as unparented instead of followed.

func isTopLevel(c models.CategoryItem) bool {
	return c.ParentID == "" || c.ParentID == c.ID
}

// TopLevel returns the categories without a parent.
func TopLevel(categories []models.CategoryItem) []models.CategoryItem {
	var out []models.CategoryItem
	for _, c := range categories {
		if isTopLevel(c) {
			out = append(out, c)
		}
	}
	return out
}

// ChildrenOf returns the categories whose parent is parentID.
func ChildrenOf(categories []models.CategoryItem, parentID string) []models.CategoryItem {
	var out []models.CategoryItem
	for _, c := range categories {
		if c.ParentID == parentID && c.ID != parentID {
			out = append(out, c)
		}
	}
	return out
}

// DisplayName returns the category name for the given language ("ar" or
// "en"). It never fails: a missing name falls back to the other language,
// then to the raw id.
func DisplayName(c models.CategoryItem, lang string) string {
	name := c.NameEN
	other := c.NameAR
	if lang == "ar" {
		name, other = other, name
	}
	if name != "" {
		return name
	}
	if other != "" {
		return other
	}
	return c.ID
}
