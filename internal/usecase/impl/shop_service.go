package impl

import (
	"context"
	"math"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/infra/whatsapp"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

type shopService struct {
	store         usecase.CatalogSource
	qrSvc         service.QRCodeService
	featuredLimit int
	relatedLimit  int
}

// NewShopService creates a new shop service instance.
func NewShopService(store usecase.CatalogSource, qrSvc service.QRCodeService, cfg *config.Config) usecase.ShopUsecase {
	return &shopService{
		store:         store,
		qrSvc:         qrSvc,
		featuredLimit: cfg.Catalog.FeaturedLimit,
		relatedLimit:  cfg.Catalog.RelatedLimit,
	}
}

// Storefront returns the settings-derived view shared by all pages.
func (s *shopService) Storefront(ctx context.Context) (*usecase.StorefrontView, error) {
	if err := s.store.AwaitReady(ctx); err != nil {
		return nil, errors.Wrap(err, "await catalog readiness failed")
	}

	snapshot := s.store.Snapshot()
	links := whatsapp.NewLinkBuilder(snapshot.Settings)

	return &usecase.StorefrontView{
		Settings:    snapshot.Settings,
		WhatsAppURL: links.GeneralInquiry(),
		Degraded:    s.store.Degraded(),
	}, nil
}

// ListProducts derives the filtered, ordered shop view from the full product
// set. The derivation always starts from the complete snapshot, never from a
// previous result.
func (s *shopService) ListProducts(ctx context.Context, criteria usecase.Criteria, sort usecase.SortKey) ([]entity.Product, error) {
	if err := s.store.AwaitReady(ctx); err != nil {
		return nil, errors.Wrap(err, "await catalog readiness failed")
	}

	snapshot := s.store.Snapshot()
	filtered := usecase.FilterProducts(snapshot.Products, criteria)

	return usecase.SortProducts(filtered, sort), nil
}

// FeaturedProducts returns the home-page selection.
func (s *shopService) FeaturedProducts(ctx context.Context) ([]entity.Product, error) {
	if err := s.store.AwaitReady(ctx); err != nil {
		return nil, errors.Wrap(err, "await catalog readiness failed")
	}

	snapshot := s.store.Snapshot()
	featured := make([]entity.Product, 0, s.featuredLimit)
	for _, product := range snapshot.Products {
		if !product.Featured || !product.InStock {
			continue
		}

		featured = append(featured, product)
		if len(featured) == s.featuredLimit {
			break
		}
	}

	return featured, nil
}

// ProductDetail resolves a product page by id.
func (s *shopService) ProductDetail(ctx context.Context, id int) (*usecase.ProductDetail, error) {
	if err := s.store.AwaitReady(ctx); err != nil {
		return nil, errors.Wrap(err, "await catalog readiness failed")
	}

	snapshot := s.store.Snapshot()
	product, found := findProduct(snapshot.Products, id)
	if !found {
		return nil, domainerrors.ErrProductNotFound
	}

	links := whatsapp.NewLinkBuilder(snapshot.Settings)

	return &usecase.ProductDetail{
		Product:            product,
		PriceDisplay:       entity.FormatINR(product.Price),
		DiscountPercent:    product.DiscountPercent(),
		WhatsAppOrderURL:   links.OrderInquiry(product),
		WhatsAppRestockURL: links.RestockInquiry(product),
		Reviews:            summarizeReviews(snapshot.Reviews, id),
		Related:            relatedProducts(snapshot.Products, product, s.relatedLimit),
	}, nil
}

// ProductQR renders the product's WhatsApp order link as a PNG QR code.
func (s *shopService) ProductQR(ctx context.Context, id int) ([]byte, error) {
	if err := s.store.AwaitReady(ctx); err != nil {
		return nil, errors.Wrap(err, "await catalog readiness failed")
	}

	snapshot := s.store.Snapshot()
	product, found := findProduct(snapshot.Products, id)
	if !found {
		return nil, domainerrors.ErrProductNotFound
	}

	links := whatsapp.NewLinkBuilder(snapshot.Settings)
	if !links.Enabled() {
		return nil, domainerrors.ErrContactUnavailable
	}

	png, err := s.qrSvc.GenerateLinkQR(links.OrderInquiry(product))
	if err != nil {
		return nil, errors.Wrap(err, "generate product QR failed")
	}

	return png, nil
}

func findProduct(products []entity.Product, id int) (entity.Product, bool) {
	for _, product := range products {
		if product.ID == id {
			return product, true
		}
	}

	return entity.Product{}, false
}

// summarizeReviews collects the reviews for a product and their average
// rating rounded to one decimal place.
func summarizeReviews(reviews []entity.Review, productID int) usecase.ReviewSummary {
	matched := make([]entity.Review, 0)
	sum := 0
	for _, review := range reviews {
		if review.ProductID != productID {
			continue
		}

		matched = append(matched, review)
		sum += review.Rating
	}

	summary := usecase.ReviewSummary{Count: len(matched), Reviews: matched}
	if len(matched) > 0 {
		summary.AverageRating = math.Round(float64(sum)/float64(len(matched))*10) / 10
	}

	return summary
}

// relatedProducts picks products sharing a category or material with the
// subject, excluding the subject itself, in catalog order.
func relatedProducts(products []entity.Product, subject entity.Product, limit int) []entity.Product {
	related := make([]entity.Product, 0, limit)
	for _, product := range products {
		if product.ID == subject.ID {
			continue
		}
		if product.Category != subject.Category && product.Material != subject.Material {
			continue
		}

		related = append(related, product)
		if len(related) == limit {
			break
		}
	}

	return related
}
