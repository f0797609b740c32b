// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrSettingsUnavailable is returned when the settings record cannot be read.
	ErrSettingsUnavailable = errors.New("settings unavailable")
	// ErrProductsUnavailable is returned when the product collection cannot be read.
	ErrProductsUnavailable = errors.New("products unavailable")
	// ErrReviewsUnavailable is returned when the review collection cannot be read.
	ErrReviewsUnavailable = errors.New("reviews unavailable")
)

// CatalogRepository defines read access to the three static catalog sources.
// Implementations must treat each read as independent; the catalog store is
// responsible for batching them and deciding atomicity.
type CatalogRepository interface {
	// LoadSettings reads the singleton settings record.
	LoadSettings(ctx context.Context) (*entity.Settings, error)

	// LoadProducts reads the ordered product collection.
	LoadProducts(ctx context.Context) ([]entity.Product, error)

	// LoadReviews reads the ordered review collection.
	LoadReviews(ctx context.Context) ([]entity.Review, error)
}
