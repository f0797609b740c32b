package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/catalog"
)

// fakeCatalogSource is a settled catalog store: readiness is immediate and
// Snapshot hands out defensive copies, matching the real store's contract.
type fakeCatalogSource struct {
	settings entity.Settings
	products []entity.Product
	reviews  []entity.Review
	degraded bool
	readyErr error
}

func (f *fakeCatalogSource) AwaitReady(_ context.Context) error {
	return f.readyErr
}

func (f *fakeCatalogSource) Snapshot() catalog.Snapshot {
	return catalog.Snapshot{
		Settings: f.settings,
		Products: entity.CloneProducts(f.products),
		Reviews:  entity.CloneReviews(f.reviews),
	}
}

func (f *fakeCatalogSource) Degraded() bool {
	return f.degraded
}

type fakeQRCodeService struct {
	lastLink string
	png      []byte
	err      error
}

func (f *fakeQRCodeService) GenerateLinkQR(link string) ([]byte, error) {
	f.lastLink = link
	if f.err != nil {
		return nil, f.err
	}

	return f.png, nil
}

func catalogFixture() *fakeCatalogSource {
	return &fakeCatalogSource{
		settings: entity.Settings{
			BrandName: "Mary Creations",
			Tagline:   "Woven with Love",
			WhatsApp:  "+91 78608 61434",
		},
		products: []entity.Product{
			{ID: 1, Name: "Silk Stole", Price: 899, OriginalPrice: 1299, Material: "Silk", Category: "stoles", InStock: true, Featured: true},
			{ID: 2, Name: "Cotton Dupatta", Price: 499, OriginalPrice: 499, Material: "Cotton", Category: "dupattas", InStock: true},
			{ID: 3, Name: "Banarasi Stole", Price: 1499, OriginalPrice: 1999, Material: "Silk", Category: "stoles", InStock: false, Featured: true},
			{ID: 4, Name: "Linen Scarf", Price: 699, OriginalPrice: 899, Material: "Linen", Category: "general", InStock: true, Featured: true},
		},
		reviews: []entity.Review{
			{ID: 1, Name: "Priya", Rating: 5, Comment: "Lovely", Date: "2025-11-02", Verified: true, ProductID: 1},
			{ID: 2, Name: "Asha", Rating: 4, Comment: "Nice drape", Date: "2025-12-18", ProductID: 1},
			{ID: 3, Name: "Meena", Rating: 5, Comment: "Gift hit", Date: "2026-01-05", Verified: true, ProductID: 2},
		},
	}
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Catalog = &config.CatalogConfig{
		DataDir:       "data",
		PriceRangeMax: 5000,
		FeaturedLimit: 2,
		RelatedLimit:  2,
	}

	return cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
