package entity

// DefaultCategory is assigned when a product is created without a category.
const DefaultCategory = "general"

// Product is a single catalog item. Prices are whole rupees; OriginalPrice
// above Price implies a displayed discount, but the relation is not enforced
// at write time.
type Product struct {
	ID            int      `json:"id"`            // Unique across the product set.
	Name          string   `json:"name"`          // Display name.
	Price         int      `json:"price"`         // Selling price, non-negative.
	OriginalPrice int      `json:"originalPrice"` // Pre-discount price.
	Material      string   `json:"material"`      // Fabric, e.g. "Silk".
	Color         string   `json:"color"`         // Primary color.
	Size          string   `json:"size"`          // Dimensions, free-form.
	Description   string   `json:"description"`   // Long description.
	Images        []string `json:"images"`        // Ordered image URLs, at least one for valid rendering.
	InStock       bool     `json:"inStock"`       // Availability flag.
	Featured      bool     `json:"featured"`      // Shown on the home page when set.
	Category      string   `json:"category"`      // Grouping key, defaults to "general".
}

// DiscountPercent returns the displayed discount as a whole percentage, or 0
// when OriginalPrice does not exceed Price.
func (p Product) DiscountPercent() int {
	if p.OriginalPrice <= p.Price || p.OriginalPrice <= 0 {
		return 0
	}

	return int(float64(p.OriginalPrice-p.Price)/float64(p.OriginalPrice)*100 + 0.5)
}

// Clone returns a copy of the product with its own Images slice, so that
// mutations on the copy never leak back into the source.
func (p Product) Clone() Product {
	clone := p
	clone.Images = make([]string, len(p.Images))
	copy(clone.Images, p.Images)

	return clone
}

// CloneProducts copies a product slice element by element.
func CloneProducts(products []Product) []Product {
	clones := make([]Product, len(products))
	for i, p := range products {
		clones[i] = p.Clone()
	}

	return clones
}

// MaxProductID returns the highest id in the set, or 0 for an empty set.
func MaxProductID(products []Product) int {
	maxID := 0
	for _, p := range products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	return maxID
}
