package usecase

import (
	"sort"
	"strings"

	"storefront/internal/domain/entity"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultPriceMax is the upper bound of the price range when no criteria are
// active; it matches the widest setting of the shop's price slider.
const DefaultPriceMax = 5000

// Criteria is the combinable predicate set of the shop filter. Active
// criteria combine conjunctively: a product must satisfy every one of them.
type Criteria struct {
	Search      string // Case-insensitive substring, matched across all text fields.
	PriceMin    int    // Inclusive lower price bound.
	PriceMax    int    // Inclusive upper price bound.
	InStockOnly bool   // Drop out-of-stock products when set.
}

// DefaultCriteria is the unfiltered view: empty search, full price range, no
// stock gate.
func DefaultCriteria() Criteria {
	return Criteria{PriceMin: 0, PriceMax: DefaultPriceMax}
}

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	// SortDefault places featured products first, then ascending id within
	// each partition. The partition is stable.
	SortDefault SortKey = ""
	// SortPriceLow orders by ascending price.
	SortPriceLow SortKey = "price-low"
	// SortPriceHigh orders by descending price.
	SortPriceHigh SortKey = "price-high"
	// SortName orders lexicographically by name, locale-aware.
	SortName SortKey = "name"
	// SortNewest orders by descending id, a proxy for recency.
	SortNewest SortKey = "newest"
)

// FilterProducts narrows the full product set under the given criteria. It is
// pure: the input slice is never mutated and the result preserves the input
// order. An empty result is a valid outcome, not an error.
func FilterProducts(products []entity.Product, criteria Criteria) []entity.Product {
	filtered := make([]entity.Product, 0, len(products))
	search := strings.ToLower(strings.TrimSpace(criteria.Search))

	for _, product := range products {
		if search != "" && !strings.Contains(searchableText(product), search) {
			continue
		}
		if product.Price < criteria.PriceMin || product.Price > criteria.PriceMax {
			continue
		}
		if criteria.InStockOnly && !product.InStock {
			continue
		}

		filtered = append(filtered, product)
	}

	return filtered
}

// searchableText concatenates every text field of a product; the search term
// matches anywhere in the concatenation, not per-field.
func searchableText(product entity.Product) string {
	return strings.ToLower(strings.Join([]string{
		product.Name,
		product.Material,
		product.Color,
		product.Description,
		product.Category,
	}, " "))
}

// SortProducts returns a sorted copy of the product list under the given key.
// Sorting is stable, so equal elements keep their filtered order.
func SortProducts(products []entity.Product, key SortKey) []entity.Product {
	sorted := make([]entity.Product, len(products))
	copy(sorted, products)

	switch key {
	case SortPriceLow:
		stableSort(sorted, func(a, b entity.Product) bool { return a.Price < b.Price })
	case SortPriceHigh:
		stableSort(sorted, func(a, b entity.Product) bool { return a.Price > b.Price })
	case SortName:
		collator := collate.New(language.English)
		stableSort(sorted, func(a, b entity.Product) bool {
			return collator.CompareString(a.Name, b.Name) < 0
		})
	case SortNewest:
		stableSort(sorted, func(a, b entity.Product) bool { return a.ID > b.ID })
	default:
		stableSort(sorted, func(a, b entity.Product) bool {
			if a.Featured != b.Featured {
				return a.Featured
			}

			return a.ID < b.ID
		})
	}

	return sorted
}

func stableSort(products []entity.Product, less func(a, b entity.Product) bool) {
	sort.SliceStable(products, func(i, j int) bool {
		return less(products[i], products[j])
	})
}
