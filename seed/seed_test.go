package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCategories(t *testing.T) {
	cats := DefaultCategories()
	require.Len(t, cats, 4)

	ids := make([]string, 0, len(cats))
	for _, c := range cats {
		ids = append(ids, c.ID)
		assert.NotEmpty(t, c.NameAR)
		assert.NotEmpty(t, c.NameEN)
		assert.Empty(t, c.ParentID)
	}
	assert.Equal(t, []string{"mixed", "bouquets", "rose_bouquets", "boxes"}, ids)
}

func TestDefaultProductsCount(t *testing.T) {
	products := DefaultProducts()
	require.Len(t, products, 63)

	byCategory := map[string]int{}
	bySub := map[string]int{}
	for _, p := range products {
		byCategory[p.Category]++
		bySub[p.SubCategory]++
	}

	assert.Equal(t, 25, byCategory["mixed"])
	assert.Equal(t, 20, byCategory["bouquets"])
	assert.Equal(t, 8, byCategory["rose_bouquets"])
	assert.Equal(t, 10, byCategory["boxes"])
	assert.Equal(t, 10, bySub["engagement"])
	assert.Equal(t, 10, bySub["wedding"])
	for _, color := range []string{"pink", "orange", "purple", "white", "blue"} {
		assert.Equalf(t, 5, bySub[color], "mixed color %s", color)
	}
}

func TestDefaultProductsFields(t *testing.T) {
	catIDs := map[string]bool{}
	for _, c := range DefaultCategories() {
		catIDs[c.ID] = true
	}

	seenIDs := map[string]bool{}
	for _, p := range DefaultProducts() {
		assert.Falsef(t, seenIDs[p.ID], "duplicate product id %s", p.ID)
		seenIDs[p.ID] = true

		assert.Truef(t, catIDs[p.Category], "product %s references unknown category %s", p.ID, p.Category)
		assert.NotEmpty(t, p.NameAR)
		assert.NotEmpty(t, p.NameEN)
		assert.NotEmpty(t, p.ImageURL)
		assert.Greater(t, p.Price, 0)
		assert.Greater(t, p.Stock, 0)
	}
}

func TestDefaultProductsPrices(t *testing.T) {
	prices := map[string]int{}
	stocks := map[string]int{}
	for _, p := range DefaultProducts() {
		prices[p.ID] = p.Price
		stocks[p.ID] = p.Stock
	}

	assert.Equal(t, 2500, prices["mixed-pink-1"])
	assert.Equal(t, 20, stocks["mixed-pink-1"])
	assert.Equal(t, 4500, prices["eng-10"])
	assert.Equal(t, 15, stocks["eng-10"])
	assert.Equal(t, 5000, prices["wed-1"])
	assert.Equal(t, 12, stocks["wed-1"])
	assert.Equal(t, 6000, prices["rose-bq-8"])
	assert.Equal(t, 10, stocks["rose-bq-8"])
	assert.Equal(t, 5000, prices["box-10"])
	assert.Equal(t, 10, stocks["box-10"])
}

func TestDefaultProductsStable(t *testing.T) {
	// Two generations must agree item by item, ids included, so a second
	// listing after seeding returns the same 63 products.
	first := DefaultProducts()
	second := DefaultProducts()
	assert.Equal(t, first, second)
}
