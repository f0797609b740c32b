package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/infra/catalog"
)

// CatalogSource is the read side of the catalog store as seen by the use
// cases: await readiness, then take a private snapshot.
type CatalogSource interface {
	// AwaitReady blocks until the one-time catalog load has settled.
	AwaitReady(ctx context.Context) error

	// Snapshot returns a private copy of the catalog data.
	Snapshot() catalog.Snapshot

	// Degraded reports whether the store is serving fallback data.
	Degraded() bool
}

// StorefrontView is the settings-derived data every page renders: brand
// identity plus the contact deep link.
type StorefrontView struct {
	Settings    entity.Settings `json:"settings"`
	WhatsAppURL string          `json:"whatsappUrl,omitempty"`
	Degraded    bool            `json:"degraded"`
}

// ReviewSummary aggregates the reviews shown on a product page.
type ReviewSummary struct {
	AverageRating float64         `json:"averageRating"`
	Count         int             `json:"count"`
	Reviews       []entity.Review `json:"reviews"`
}

// ProductDetail is the full product-page view: the product, its displayed
// discount, contact links, reviews and related products.
type ProductDetail struct {
	Product            entity.Product   `json:"product"`
	PriceDisplay       string           `json:"priceDisplay"`
	DiscountPercent    int              `json:"discountPercent"`
	WhatsAppOrderURL   string           `json:"whatsappOrderUrl,omitempty"`
	WhatsAppRestockURL string           `json:"whatsappRestockUrl,omitempty"`
	Reviews            ReviewSummary    `json:"reviews"`
	Related            []entity.Product `json:"related"`
}

// ShopUsecase defines the read-only storefront use cases. Every call gates on
// catalog readiness before reading its snapshot.
type ShopUsecase interface {
	// Storefront returns the settings-derived view shared by all pages.
	Storefront(ctx context.Context) (*StorefrontView, error)

	// ListProducts derives the filtered, ordered shop view from the full
	// product set.
	ListProducts(ctx context.Context, criteria Criteria, sort SortKey) ([]entity.Product, error)

	// FeaturedProducts returns the home-page selection: featured, in-stock,
	// capped at the configured limit.
	FeaturedProducts(ctx context.Context) ([]entity.Product, error)

	// ProductDetail resolves a product page by id. A missing id is a
	// not-found condition, never a crash.
	ProductDetail(ctx context.Context, id int) (*ProductDetail, error)

	// ProductQR renders the product's WhatsApp order link as a PNG QR code.
	ProductQR(ctx context.Context, id int) ([]byte, error)
}
