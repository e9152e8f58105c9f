package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alialzoriki7-lab/kado-store/models"
)

func TestTopLevel(t *testing.T) {
	cats := []models.CategoryItem{
		{ID: "bouquets", NameEN: "Bouquets"},
		{ID: "wedding", NameEN: "Wedding", ParentID: "bouquets"},
		{ID: "boxes", NameEN: "Gift Boxes"},
	}

	top := TopLevel(cats)
	assert.Len(t, top, 2)
	assert.Equal(t, "bouquets", top[0].ID)
	assert.Equal(t, "boxes", top[1].ID)
}

func TestTopLevelSelfParent(t *testing.T) {
	// A category pointing at itself must resolve as unparented, not loop.
	cats := []models.CategoryItem{
		{ID: "loop", NameEN: "Loop", ParentID: "loop"},
	}

	assert.Len(t, TopLevel(cats), 1)
	assert.Empty(t, ChildrenOf(cats, "loop"))
}

func TestChildrenOf(t *testing.T) {
	cats := []models.CategoryItem{
		{ID: "bouquets"},
		{ID: "wedding", ParentID: "bouquets"},
		{ID: "engagement", ParentID: "bouquets"},
		{ID: "boxes"},
	}

	children := ChildrenOf(cats, "bouquets")
	assert.Len(t, children, 2)
	assert.Empty(t, ChildrenOf(cats, "boxes"))
	assert.Empty(t, ChildrenOf(cats, "missing"))
}

func TestDisplayName(t *testing.T) {
	c := models.CategoryItem{ID: "boxes", NameAR: "صناديق هدايا", NameEN: "Gift Boxes"}

	assert.Equal(t, "صناديق هدايا", DisplayName(c, "ar"))
	assert.Equal(t, "Gift Boxes", DisplayName(c, "en"))
}

func TestDisplayNameFallback(t *testing.T) {
	// Missing name falls back to the other language, then to the raw id.
	onlyEN := models.CategoryItem{ID: "boxes", NameEN: "Gift Boxes"}
	assert.Equal(t, "Gift Boxes", DisplayName(onlyEN, "ar"))

	onlyAR := models.CategoryItem{ID: "boxes", NameAR: "صناديق"}
	assert.Equal(t, "صناديق", DisplayName(onlyAR, "en"))

	bare := models.CategoryItem{ID: "boxes"}
	assert.Equal(t, "boxes", DisplayName(bare, "en"))
}
