// Package catalog owns the canonical catalog snapshot: the one-time load of
// the three static sources, the readiness signal dependents await, and
// fallback defaults when the load fails.
package catalog

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// Snapshot is an immutable-for-the-session copy of the catalog data a page
// module reads after readiness.
type Snapshot struct {
	Settings entity.Settings
	Products []entity.Product
	Reviews  []entity.Review
}

// FallbackSettings is the minimal settings record installed when the load
// fails, so dependent views can still render in a degraded mode.
func FallbackSettings() entity.Settings {
	return entity.Settings{
		BrandName:     "Mary Creations",
		Tagline:       "Woven with Love",
		WhatsApp:      "+917860861434",
		MeeshoShopURL: "https://www.meesho.com",
	}
}

// Store owns the last-loaded catalog collections. Load runs exactly once per
// process; afterwards the store is read-only and every reader gets defensive
// copies. Readiness is a one-shot signal: once the channel closes, all
// current and future AwaitReady calls return immediately.
type Store struct {
	repo   repository.CatalogRepository
	logger *slog.Logger

	loadOnce sync.Once
	ready    chan struct{}

	mu       sync.RWMutex
	settings entity.Settings
	products []entity.Product
	reviews  []entity.Review
	degraded bool
}

// Params holds dependencies for the catalog store, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Repo   repository.CatalogRepository
	Logger *slog.Logger
}

// NewStore is the constructor for Store. The load is kicked off on process
// start and runs in the background; dependents gate on AwaitReady.
func NewStore(params Params) *Store {
	store := &Store{
		repo:   params.Repo,
		logger: params.Logger,
		ready:  make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go store.Load(context.WithoutCancel(ctx))

			return nil
		},
	})

	return store
}

// Load performs the one-time catalog load. The three reads run concurrently
// and the batch is atomic: if any of them fails the whole load is considered
// failed and the fallback snapshot is installed instead. The failure is
// logged, never returned; there is no retry within a process lifetime.
func (s *Store) Load(ctx context.Context) {
	s.loadOnce.Do(func() {
		defer close(s.ready)

		var (
			settings *entity.Settings
			products []entity.Product
			reviews  []entity.Review
		)

		group, groupCtx := errgroup.WithContext(ctx)
		group.Go(func() error {
			var err error
			settings, err = s.repo.LoadSettings(groupCtx)

			return err
		})
		group.Go(func() error {
			var err error
			products, err = s.repo.LoadProducts(groupCtx)

			return err
		})
		group.Go(func() error {
			var err error
			reviews, err = s.repo.LoadReviews(groupCtx)

			return err
		})

		if err := group.Wait(); err != nil {
			s.logger.Error("catalog load failed, falling back to defaults",
				slog.String("error", err.Error()))

			s.mu.Lock()
			s.settings = FallbackSettings()
			s.products = []entity.Product{}
			s.reviews = []entity.Review{}
			s.degraded = true
			s.mu.Unlock()

			return
		}

		s.mu.Lock()
		s.settings = *settings
		s.products = products
		s.reviews = reviews
		s.mu.Unlock()

		s.logger.Info("catalog loaded",
			slog.Int("products", len(products)),
			slog.Int("reviews", len(reviews)))
	})
}

// AwaitReady blocks until the load has settled or the context is done.
func (s *Store) AwaitReady(ctx context.Context) error {
	select {
	case <-s.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Ready reports whether the load has settled, without blocking.
func (s *Store) Ready() bool {
	select {
	case <-s.ready:
		return true
	default:
		return false
	}
}

// Degraded reports whether the store is serving fallback data.
func (s *Store) Degraded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.degraded
}

// Snapshot returns a copy of the catalog data. Callers own the copy and may
// mutate it freely without affecting the store.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Settings: s.settings,
		Products: entity.CloneProducts(s.products),
		Reviews:  entity.CloneReviews(s.reviews),
	}
}
