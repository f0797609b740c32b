package catalog

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type fakeRepository struct {
	settings    *entity.Settings
	products    []entity.Product
	reviews     []entity.Review
	settingsErr error
	productsErr error
	reviewsErr  error
}

func (f *fakeRepository) LoadSettings(_ context.Context) (*entity.Settings, error) {
	if f.settingsErr != nil {
		return nil, f.settingsErr
	}

	return f.settings, nil
}

func (f *fakeRepository) LoadProducts(_ context.Context) ([]entity.Product, error) {
	if f.productsErr != nil {
		return nil, f.productsErr
	}

	return f.products, nil
}

func (f *fakeRepository) LoadReviews(_ context.Context) ([]entity.Review, error) {
	if f.reviewsErr != nil {
		return nil, f.reviewsErr
	}

	return f.reviews, nil
}

func healthyRepository() *fakeRepository {
	return &fakeRepository{
		settings: &entity.Settings{BrandName: "Mary Creations", WhatsApp: "+917860861434"},
		products: []entity.Product{
			{ID: 1, Name: "Silk Stole", Price: 899, InStock: true},
			{ID: 2, Name: "Cotton Dupatta", Price: 499, InStock: true},
		},
		reviews: []entity.Review{
			{ID: 1, Name: "Priya", Rating: 5},
		},
	}
}

func newTestStore(t *testing.T, repo repository.CatalogRepository) *Store {
	t.Helper()

	return NewStore(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Repo:      repo,
		Logger:    slog.Default(),
	})
}

func TestStore_LoadSuccess(t *testing.T) {
	store := newTestStore(t, healthyRepository())

	assert.False(t, store.Ready())

	store.Load(context.Background())

	assert.True(t, store.Ready())
	assert.False(t, store.Degraded())

	snapshot := store.Snapshot()
	assert.Equal(t, "Mary Creations", snapshot.Settings.BrandName)
	assert.Len(t, snapshot.Products, 2)
	assert.Len(t, snapshot.Reviews, 1)
}

func TestStore_AnySingleFailureTriggersFallback(t *testing.T) {
	cases := []struct {
		name string
		repo *fakeRepository
	}{
		{"settings", &fakeRepository{settingsErr: repository.ErrSettingsUnavailable}},
		{"products", &fakeRepository{productsErr: repository.ErrProductsUnavailable}},
		{"reviews", &fakeRepository{reviewsErr: repository.ErrReviewsUnavailable}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := healthyRepository()
			repo.settingsErr = tc.repo.settingsErr
			repo.productsErr = tc.repo.productsErr
			repo.reviewsErr = tc.repo.reviewsErr

			store := newTestStore(t, repo)
			store.Load(context.Background())

			// The batch is atomic: one failed read discards the others.
			assert.True(t, store.Ready())
			assert.True(t, store.Degraded())

			snapshot := store.Snapshot()
			assert.Equal(t, FallbackSettings(), snapshot.Settings)
			assert.Empty(t, snapshot.Products)
			assert.Empty(t, snapshot.Reviews)
		})
	}
}

func TestStore_ReadinessResolvesOnFallbackToo(t *testing.T) {
	store := newTestStore(t, &fakeRepository{settingsErr: errors.New("boom")})

	done := make(chan error, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		done <- store.AwaitReady(ctx)
	}()

	store.Load(context.Background())

	require.NoError(t, <-done)
}

func TestStore_AwaitReadyHonorsContext(t *testing.T) {
	store := newTestStore(t, healthyRepository())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.AwaitReady(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStore_AwaitReadyAfterLoadReturnsImmediately(t *testing.T) {
	store := newTestStore(t, healthyRepository())
	store.Load(context.Background())

	// A late awaiter must not block once the signal has fired.
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	assert.NoError(t, store.AwaitReady(ctx))
}

func TestStore_LoadRunsOnce(t *testing.T) {
	repo := healthyRepository()
	store := newTestStore(t, repo)

	store.Load(context.Background())

	// A second load must not replace the settled snapshot.
	repo.products = []entity.Product{{ID: 99, Name: "Changed"}}
	store.Load(context.Background())

	snapshot := store.Snapshot()
	require.Len(t, snapshot.Products, 2)
	assert.Equal(t, 1, snapshot.Products[0].ID)
}

func TestStore_SnapshotIsDefensiveCopy(t *testing.T) {
	store := newTestStore(t, healthyRepository())
	store.Load(context.Background())

	first := store.Snapshot()
	first.Products[0].Name = "Mutated"
	first.Reviews[0].Rating = 1

	second := store.Snapshot()
	assert.Equal(t, "Silk Stole", second.Products[0].Name)
	assert.Equal(t, 5, second.Reviews[0].Rating)
}
