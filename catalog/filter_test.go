package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alialzoriki7-lab/kado-store/models"
)

var filterCats = []models.CategoryItem{
	{ID: "bouquets", NameEN: "Bouquets"},
	{ID: "wedding", NameEN: "Wedding", ParentID: "bouquets"},
	{ID: "mixed", NameEN: "Mixed Flowers"},
}

var filterProducts = []models.Product{
	{ID: "p1", NameAR: "مسكة زفاف", NameEN: "Wedding Bouquet", Category: "wedding"},
	{ID: "p2", NameAR: "مسكة", NameEN: "Plain Bouquet", Category: "bouquets"},
	{ID: "p3", NameAR: "زهور مشكلة", NameEN: "Mixed Pink", Category: "mixed", SubCategory: "pink"},
}

func ids(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterAll(t *testing.T) {
	got := Filter(filterProducts, filterCats, All, All, "")
	assert.Equal(t, []string{"p1", "p2", "p3"}, ids(got))
}

func TestFilterHierarchical(t *testing.T) {
	// Selecting the parent includes products tagged with it or any child.
	got := Filter(filterProducts, filterCats, "bouquets", All, "")
	assert.Equal(t, []string{"p1", "p2"}, ids(got))

	// Selecting the child narrows to the child only.
	got = Filter(filterProducts, filterCats, "wedding", All, "")
	assert.Equal(t, []string{"p1"}, ids(got))

	// An unrelated top-level category excludes the child-tagged product.
	got = Filter(filterProducts, filterCats, "mixed", All, "")
	assert.Equal(t, []string{"p3"}, ids(got))
}

func TestFilterSubCategoryNarrows(t *testing.T) {
	got := Filter(filterProducts, filterCats, "bouquets", "wedding", "")
	assert.Equal(t, []string{"p1"}, ids(got))
}

func TestFilterSearchArabicCaseSensitive(t *testing.T) {
	got := Filter(filterProducts, filterCats, All, All, "زفاف")
	assert.Equal(t, []string{"p1"}, ids(got))
}

func TestFilterSearchEnglishCaseInsensitive(t *testing.T) {
	got := Filter(filterProducts, filterCats, All, All, "wEdDiNg")
	assert.Equal(t, []string{"p1"}, ids(got))
}

func TestFilterResultIsSubset(t *testing.T) {
	got := Filter(filterProducts, filterCats, "bouquets", All, "Bouquet")
	source := map[string]bool{}
	for _, p := range filterProducts {
		source[p.ID] = true
	}
	for _, p := range got {
		assert.True(t, source[p.ID])
	}
}

func TestFilterNoMatches(t *testing.T) {
	got := Filter(filterProducts, filterCats, All, All, "nothing here")
	assert.Empty(t, got)
}
