package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProductInput carries the fields of a product create or update. Optional
// fields fall back to their declared defaults: OriginalPrice to Price,
// Category to "general".
type ProductInput struct {
	Name          string   `json:"name"`
	Price         int      `json:"price"`
	OriginalPrice *int     `json:"originalPrice"`
	Material      string   `json:"material"`
	Color         string   `json:"color"`
	Size          string   `json:"size"`
	Description   string   `json:"description"`
	Images        []string `json:"images"`
	InStock       bool     `json:"inStock"`
	Featured      bool     `json:"featured"`
	Category      string   `json:"category"`
}

// ReviewInput carries the fields of a review create. Date falls back to the
// current calendar date. ProductID is taken as given, never validated against
// the product set.
type ReviewInput struct {
	Name      string `json:"name"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Verified  bool   `json:"verified"`
	ProductID int    `json:"productId"`
}

// SettingsInput carries the editable settings fields. Nil fields keep their
// current value; the merge is field-by-field per the SettingsFields
// declaration.
type SettingsInput struct {
	BrandName     *string `json:"brandName"`
	Tagline       *string `json:"tagline"`
	WhatsApp      *string `json:"whatsapp"`
	MeeshoShopURL *string `json:"meeshoShopUrl"`
	Description   *string `json:"description"`
	Email         *string `json:"email"`
	Address       *string `json:"address"`
	Instagram     *string `json:"instagram"`
	Facebook      *string `json:"facebook"`
}

// ExportArtifact is the downloadable file produced by an export action, the
// only persistence mechanism of the admin surface.
type ExportArtifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Export collection names.
const (
	CollectionSettings = "settings"
	CollectionProducts = "products"
	CollectionReviews  = "reviews"
)

// AdminUsecase is the mutation engine of the admin surface. It operates on a
// session-private copy of the catalog taken at first use; nothing here writes
// back to the store or to any file. Every mutating operation returns the full
// post-mutation collection so the caller re-renders from scratch.
//
// Mutations that reference a nonexistent id are silent no-ops: the unchanged
// collection comes back without an error. That mirrors the benign-race
// treatment of a stale rendered list.
type AdminUsecase interface {
	// Settings returns the session's settings copy together with the static
	// form-field declaration.
	Settings(ctx context.Context) (entity.Settings, []entity.SettingsField, error)

	// UpdateSettings merges the submitted fields over the session settings.
	UpdateSettings(ctx context.Context, input SettingsInput) (entity.Settings, error)

	// Products returns the session's current product collection.
	Products(ctx context.Context) ([]entity.Product, error)

	// CreateProduct appends a new product with id = max existing id + 1.
	CreateProduct(ctx context.Context, input ProductInput) (entity.Product, []entity.Product, error)

	// UpdateProduct replaces the fields of an existing product in place,
	// preserving its id.
	UpdateProduct(ctx context.Context, id int, input ProductInput) ([]entity.Product, error)

	// ToggleStock flips the inStock flag of an existing product.
	ToggleStock(ctx context.Context, id int) ([]entity.Product, error)

	// DeleteProduct removes a product by id. The confirm flag is the
	// operator confirmation step and must be set.
	DeleteProduct(ctx context.Context, id int, confirm bool) ([]entity.Product, error)

	// Reviews returns the session's current review collection.
	Reviews(ctx context.Context) ([]entity.Review, error)

	// CreateReview appends a new review with id = max existing id + 1.
	CreateReview(ctx context.Context, input ReviewInput) (entity.Review, []entity.Review, error)

	// ToggleVerified flips the verified flag of an existing review.
	ToggleVerified(ctx context.Context, id int) ([]entity.Review, error)

	// DeleteReview removes a review by id after operator confirmation.
	DeleteReview(ctx context.Context, id int, confirm bool) ([]entity.Review, error)

	// Export serializes the named collection to a pretty-printed JSON
	// download named after the collection.
	Export(ctx context.Context, collection string) (*ExportArtifact, error)

	// Reset discards the session's edits and re-copies the store snapshot,
	// the in-process analogue of reloading the admin page.
	Reset(ctx context.Context) error
}
