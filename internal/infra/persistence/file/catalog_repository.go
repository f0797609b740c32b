// Package file contains the concrete implementation of the persistence layer
// reading the static JSON catalog files from a data directory.
package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
)

// File names of the three catalog sources inside the data directory. The
// same names are used for export artifacts so a downloaded file can replace
// its source directly.
const (
	SettingsFile = "settings.json"
	ProductsFile = "products.json"
	ReviewsFile  = "reviews.json"
)

// catalogRepository implements repository.CatalogRepository over a directory
// of JSON files.
type catalogRepository struct {
	dataDir string
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(cfg *config.Config) repository.CatalogRepository {
	return &catalogRepository{
		dataDir: cfg.Catalog.DataDir,
	}
}

// LoadSettings reads the singleton settings record.
func (repo *catalogRepository) LoadSettings(ctx context.Context) (*entity.Settings, error) {
	var settings entity.Settings
	if err := repo.readJSON(ctx, SettingsFile, &settings); err != nil {
		return nil, errors.Wrap(repository.ErrSettingsUnavailable, err.Error())
	}

	return &settings, nil
}

// LoadProducts reads the ordered product collection.
func (repo *catalogRepository) LoadProducts(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := repo.readJSON(ctx, ProductsFile, &products); err != nil {
		return nil, errors.Wrap(repository.ErrProductsUnavailable, err.Error())
	}

	return products, nil
}

// LoadReviews reads the ordered review collection.
func (repo *catalogRepository) LoadReviews(ctx context.Context) ([]entity.Review, error) {
	var reviews []entity.Review
	if err := repo.readJSON(ctx, ReviewsFile, &reviews); err != nil {
		return nil, errors.Wrap(repository.ErrReviewsUnavailable, err.Error())
	}

	return reviews, nil
}

func (repo *catalogRepository) readJSON(ctx context.Context, name string, out any) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	raw, err := os.ReadFile(filepath.Join(repo.dataDir, name))
	if err != nil {
		return errors.Wrapf(err, "read %s failed", name)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "parse %s failed", name)
	}

	return nil
}
