package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"storefront/config"
	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func newTestRepository(t *testing.T) (repository.CatalogRepository, string) {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{Catalog: &config.CatalogConfig{DataDir: dir}}

	return NewCatalogRepository(cfg), dir
}

func TestCatalogRepository_LoadSettings(t *testing.T) {
	repo, dir := newTestRepository(t)
	writeFixture(t, dir, SettingsFile, `{
  "brandName": "Mary Creations",
  "tagline": "Woven with Love",
  "whatsapp": "+917860861434",
  "meeshoShopUrl": "https://www.meesho.com"
}`)

	settings, err := repo.LoadSettings(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Mary Creations", settings.BrandName)
	assert.Equal(t, "+917860861434", settings.WhatsApp)
}

func TestCatalogRepository_LoadProducts(t *testing.T) {
	repo, dir := newTestRepository(t)
	writeFixture(t, dir, ProductsFile, `[
  {"id": 1, "name": "Silk Stole", "price": 899, "originalPrice": 1299, "inStock": true, "featured": true, "category": "stoles"},
  {"id": 2, "name": "Cotton Dupatta", "price": 499, "inStock": true}
]`)

	products, err := repo.LoadProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Silk Stole", products[0].Name)
	assert.Equal(t, 1299, products[0].OriginalPrice)
	assert.True(t, products[0].Featured)
}

func TestCatalogRepository_LoadReviews(t *testing.T) {
	repo, dir := newTestRepository(t)
	writeFixture(t, dir, ReviewsFile, `[
  {"id": 1, "name": "Priya", "rating": 5, "comment": "Lovely", "date": "2025-11-02", "verified": true, "productId": 1}
]`)

	reviews, err := repo.LoadReviews(context.Background())

	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, 5, reviews[0].Rating)
	assert.Equal(t, 1, reviews[0].ProductID)
}

func TestCatalogRepository_MissingFile(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, err := repo.LoadSettings(context.Background())
	assert.ErrorIs(t, err, repository.ErrSettingsUnavailable)

	_, err = repo.LoadProducts(context.Background())
	assert.ErrorIs(t, err, repository.ErrProductsUnavailable)

	_, err = repo.LoadReviews(context.Background())
	assert.ErrorIs(t, err, repository.ErrReviewsUnavailable)
}

func TestCatalogRepository_MalformedJSON(t *testing.T) {
	repo, dir := newTestRepository(t)
	writeFixture(t, dir, ProductsFile, `{"not": "an array"`)

	_, err := repo.LoadProducts(context.Background())

	assert.ErrorIs(t, err, repository.ErrProductsUnavailable)
}

func TestCatalogRepository_CanceledContext(t *testing.T) {
	repo, dir := newTestRepository(t)
	writeFixture(t, dir, SettingsFile, `{}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.LoadSettings(ctx)

	assert.ErrorIs(t, err, repository.ErrSettingsUnavailable)
	assert.Contains(t, err.Error(), context.Canceled.Error())
}
