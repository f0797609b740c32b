package usecase

import (
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []entity.Product {
	return []entity.Product{
		{ID: 1, Name: "Silk Stole", Price: 899, Material: "Silk", Color: "Maroon", Description: "Pure silk stole", Category: "stoles", InStock: true, Featured: false},
		{ID: 2, Name: "Cotton Dupatta", Price: 499, Material: "Cotton", Color: "Indigo", Description: "Handloom cotton", Category: "dupattas", InStock: true, Featured: true},
		{ID: 3, Name: "Banarasi Stole", Price: 1499, Material: "Silk", Color: "Gold", Description: "Zari work", Category: "stoles", InStock: false, Featured: true},
		{ID: 4, Name: "Linen Scarf", Price: 699, Material: "Linen", Color: "Sage", Description: "Frame loom weave", Category: "general", InStock: true, Featured: false},
	}
}

func productIDs(products []entity.Product) []int {
	ids := make([]int, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}

	return ids
}

func TestFilterProducts_DefaultCriteriaIsIdentity(t *testing.T) {
	products := testProducts()

	filtered := FilterProducts(products, DefaultCriteria())

	assert.Equal(t, productIDs(products), productIDs(filtered))
}

func TestFilterProducts_PriceRangeInclusive(t *testing.T) {
	products := testProducts()

	filtered := FilterProducts(products, Criteria{PriceMin: 499, PriceMax: 899})

	require.NotEmpty(t, filtered)
	for _, p := range filtered {
		assert.GreaterOrEqual(t, p.Price, 499)
		assert.LessOrEqual(t, p.Price, 899)
	}
	// Both bounds are inclusive: 499 and 899 survive, 1499 does not.
	assert.Equal(t, []int{1, 2, 4}, productIDs(filtered))
}

func TestFilterProducts_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	products := testProducts()

	for _, term := range []string{"silk", "SILK", "stol"} {
		filtered := FilterProducts(products, Criteria{Search: term, PriceMax: DefaultPriceMax})
		assert.Contains(t, productIDs(filtered), 1, "term %q should match Silk Stole", term)
	}
}

func TestFilterProducts_SearchSpansAllTextFields(t *testing.T) {
	products := testProducts()

	// Matches color, description and category fields, not just the name.
	byColor := FilterProducts(products, Criteria{Search: "indigo", PriceMax: DefaultPriceMax})
	assert.Equal(t, []int{2}, productIDs(byColor))

	byDescription := FilterProducts(products, Criteria{Search: "zari", PriceMax: DefaultPriceMax})
	assert.Equal(t, []int{3}, productIDs(byDescription))

	byCategory := FilterProducts(products, Criteria{Search: "dupattas", PriceMax: DefaultPriceMax})
	assert.Equal(t, []int{2}, productIDs(byCategory))
}

func TestFilterProducts_InStockOnly(t *testing.T) {
	products := testProducts()

	filtered := FilterProducts(products, Criteria{PriceMax: DefaultPriceMax, InStockOnly: true})

	assert.Equal(t, []int{1, 2, 4}, productIDs(filtered))
}

func TestFilterProducts_CriteriaAreConjunctive(t *testing.T) {
	products := testProducts()

	combined := FilterProducts(products, Criteria{Search: "stole", PriceMax: DefaultPriceMax, InStockOnly: true})
	bySearch := FilterProducts(products, Criteria{Search: "stole", PriceMax: DefaultPriceMax})
	byStock := FilterProducts(products, Criteria{PriceMax: DefaultPriceMax, InStockOnly: true})

	intersection := make([]int, 0)
	stockIDs := productIDs(byStock)
	for _, id := range productIDs(bySearch) {
		if containsInt(stockIDs, id) {
			intersection = append(intersection, id)
		}
	}

	assert.Equal(t, intersection, productIDs(combined))
}

func containsInt(haystack []int, needle int) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}

	return false
}

func TestFilterProducts_EmptyResultIsValid(t *testing.T) {
	products := testProducts()

	filtered := FilterProducts(products, Criteria{Search: "velvet", PriceMax: DefaultPriceMax})

	assert.NotNil(t, filtered)
	assert.Empty(t, filtered)
}

func TestFilterProducts_EndToEndScenario(t *testing.T) {
	products := []entity.Product{
		{ID: 1, Price: 500, InStock: true},
		{ID: 2, Price: 1500, InStock: false},
	}

	filtered := FilterProducts(products, Criteria{PriceMin: 0, PriceMax: 1000, InStockOnly: true})

	assert.Equal(t, []int{1}, productIDs(filtered))
}

func TestFilterProducts_DoesNotMutateInput(t *testing.T) {
	products := testProducts()
	original := productIDs(products)

	FilterProducts(products, Criteria{Search: "silk", PriceMax: DefaultPriceMax})

	assert.Equal(t, original, productIDs(products))
}

func TestSortProducts_PriceAscending(t *testing.T) {
	sorted := SortProducts(testProducts(), SortPriceLow)

	assert.Equal(t, []int{2, 4, 1, 3}, productIDs(sorted))
}

func TestSortProducts_PriceDescending(t *testing.T) {
	sorted := SortProducts(testProducts(), SortPriceHigh)

	assert.Equal(t, []int{3, 1, 4, 2}, productIDs(sorted))
}

func TestSortProducts_Name(t *testing.T) {
	sorted := SortProducts(testProducts(), SortName)

	assert.Equal(t, []int{3, 2, 4, 1}, productIDs(sorted))
}

func TestSortProducts_NewestFirst(t *testing.T) {
	sorted := SortProducts(testProducts(), SortNewest)

	assert.Equal(t, []int{4, 3, 2, 1}, productIDs(sorted))
}

func TestSortProducts_DefaultIsStableFeaturedPartition(t *testing.T) {
	sorted := SortProducts(testProducts(), SortDefault)

	// Featured products first, ascending id within each partition.
	assert.Equal(t, []int{2, 3, 1, 4}, productIDs(sorted))

	seenNonFeatured := false
	for _, p := range sorted {
		if !p.Featured {
			seenNonFeatured = true
		} else {
			assert.False(t, seenNonFeatured, "featured product after non-featured")
		}
	}
}

func TestSortProducts_DoesNotMutateInput(t *testing.T) {
	products := testProducts()
	original := productIDs(products)

	SortProducts(products, SortPriceHigh)

	assert.Equal(t, original, productIDs(products))
}
