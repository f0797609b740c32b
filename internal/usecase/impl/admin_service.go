package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// adminService is the mutation engine behind the admin surface. It works on
// a private copy of the catalog taken from the store on first use; the only
// way out of the session is the export artifact.
type adminService struct {
	store  usecase.CatalogSource
	logger *slog.Logger

	mu          sync.Mutex
	initialized bool
	settings    entity.Settings
	products    []entity.Product
	reviews     []entity.Review
}

// NewAdminService creates a new admin service instance.
func NewAdminService(store usecase.CatalogSource, logger *slog.Logger) usecase.AdminUsecase {
	return &adminService{
		store:  store,
		logger: logger,
	}
}

// ensureSession takes the session's catalog copy on first use. Later calls
// are cheap; the session keeps its copy until Reset.
func (s *adminService) ensureSession(ctx context.Context) error {
	if s.initialized {
		return nil
	}

	if err := s.store.AwaitReady(ctx); err != nil {
		return errors.Wrap(err, "await catalog readiness failed")
	}

	snapshot := s.store.Snapshot()
	s.settings = snapshot.Settings
	s.products = snapshot.Products
	s.reviews = snapshot.Reviews
	s.initialized = true

	return nil
}

// Settings returns the session's settings copy together with the static
// form-field declaration.
func (s *adminService) Settings(ctx context.Context) (entity.Settings, []entity.SettingsField, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureSession(ctx); err != nil {
		return entity.Settings{}, nil, err
	}

	return s.settings, entity.SettingsFields, nil
}

// UpdateSettings merges the submitted fields over the session settings.
func (s *adminService) UpdateSettings(ctx context.Context, input usecase.SettingsInput) (entity.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureSession(ctx); err != nil {
		return entity.Settings{}, err
	}

	merge := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	merge(&s.settings.BrandName, input.BrandName)
	merge(&s.settings.Tagline, input.Tagline)
	merge(&s.settings.WhatsApp, input.WhatsApp)
	merge(&s.settings.MeeshoShopURL, input.MeeshoShopURL)
	merge(&s.settings.Description, input.Description)
	merge(&s.settings.Email, input.Email)
	merge(&s.settings.Address, input.Address)
	merge(&s.settings.Instagram, input.Instagram)
	merge(&s.settings.Facebook, input.Facebook)

	return s.settings, nil
}

// Products returns the session's current product collection.
func (s *adminService) Products(ctx context.Context) ([]entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureSession(ctx); err != nil {
		return nil, err
	}

	return entity.CloneProducts(s.products), nil
}

// CreateProduct appends a new product. The id is a pure function of the
// in-memory collection: max existing id + 1, so an empty collection yields 1.
func (s *adminService) CreateProduct(ctx context.Context, input usecase.ProductInput) (entity.Product, []entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureSession(ctx); err != nil {
		return entity.Product{}, nil, err
	}

	product := productFromInput(entity.MaxProductID(s.products)+1, input)
	s.products = append(s.products, product)

	s.logger.Info("product created", slog.Int("id", product.ID), slog.String("name", product.Name))

	return product.Clone(), entity.CloneProducts(s.products), nil
}

// UpdateProduct replaces the fields of an existing product in place,
// preserving its id. An unknown id is a silent no-op.
func (s *adminService) UpdateProduct(ctx context.Context, id int, input usecase.ProductInput) ([]entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureSession(ctx); err != nil {
		return nil, err
	}

	for i, product := range s.products {
		if product.ID == id {
			s.products[i] = productFromInput(id, input)

			break
		}
	}

	return entity.CloneProducts(s.products), nil
}

// ToggleStock flips the inStock flag of an existing product.
func (s *adminService) ToggleStock(ctx context.Context, id int) ([]entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureSession(ctx); err != nil {
		return nil, err
	}

	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].InStock = !s.products[i].InStock

			break
		}
	}

	return entity.CloneProducts(s.products), nil
}

// DeleteProduct removes a product by id after operator confirmation.
func (s *adminService) DeleteProduct(ctx context.Context, id int, confirm bool) ([]entity.Product, error) {
	if !confirm {
		return nil, domainerrors.ErrConfirmationRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureSession(ctx); err != nil {
		return nil, err
	}

	kept := s.products[:0]
	for _, product := range s.products {
		if product.ID != id {
			kept = append(kept, product)
		}
	}
	s.products = kept

	return entity.CloneProducts(s.products), nil
}

// Reviews returns the session's current review collection.
func (s *adminService) Reviews(ctx context.Context) ([]entity.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureSession(ctx); err != nil {
		return nil, err
	}

	return entity.CloneReviews(s.reviews), nil
}

// CreateReview appends a new review. The date defaults to the current
// calendar date; the product reference is taken as given.
func (s *adminService) CreateReview(ctx context.Context, input usecase.ReviewInput) (entity.Review, []entity.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureSession(ctx); err != nil {
		return entity.Review{}, nil, err
	}

	review := entity.Review{
		ID:        entity.MaxReviewID(s.reviews) + 1,
		Name:      input.Name,
		Rating:    input.Rating,
		Comment:   input.Comment,
		Date:      time.Now().Format(entity.ReviewDateLayout),
		Verified:  input.Verified,
		ProductID: input.ProductID,
	}
	s.reviews = append(s.reviews, review)

	s.logger.Info("review created", slog.Int("id", review.ID), slog.Int("productId", review.ProductID))

	return review, entity.CloneReviews(s.reviews), nil
}

// ToggleVerified flips the verified flag of an existing review.
func (s *adminService) ToggleVerified(ctx context.Context, id int) ([]entity.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureSession(ctx); err != nil {
		return nil, err
	}

	for i := range s.reviews {
		if s.reviews[i].ID == id {
			s.reviews[i].Verified = !s.reviews[i].Verified

			break
		}
	}

	return entity.CloneReviews(s.reviews), nil
}

// DeleteReview removes a review by id after operator confirmation.
func (s *adminService) DeleteReview(ctx context.Context, id int, confirm bool) ([]entity.Review, error) {
	if !confirm {
		return nil, domainerrors.ErrConfirmationRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureSession(ctx); err != nil {
		return nil, err
	}

	kept := s.reviews[:0]
	for _, review := range s.reviews {
		if review.ID != id {
			kept = append(kept, review)
		}
	}
	s.reviews = kept

	return entity.CloneReviews(s.reviews), nil
}

// Export serializes the named collection to a pretty-printed, human-editable
// JSON download named after the collection. Nothing is written back; the
// operator replaces the data file out-of-band.
func (s *adminService) Export(ctx context.Context, collection string) (*usecase.ExportArtifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureSession(ctx); err != nil {
		return nil, err
	}

	var payload any
	switch collection {
	case usecase.CollectionSettings:
		payload = s.settings
	case usecase.CollectionProducts:
		payload = s.products
	case usecase.CollectionReviews:
		payload = s.reviews
	default:
		return nil, domainerrors.ErrUnknownCollection.WithDetails(collection)
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, errors.Wrapf(err, "marshal %s export failed", collection)
	}

	return &usecase.ExportArtifact{
		Filename:    collection + ".json",
		ContentType: "application/json",
		Data:        data,
	}, nil
}

// Reset discards the session's edits and re-copies the store snapshot.
func (s *adminService) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = false

	return s.ensureSession(ctx)
}

// productFromInput applies the declared defaults: originalPrice falls back to
// price, category to "general".
func productFromInput(id int, input usecase.ProductInput) entity.Product {
	originalPrice := input.Price
	if input.OriginalPrice != nil && *input.OriginalPrice > 0 {
		originalPrice = *input.OriginalPrice
	}

	category := input.Category
	if category == "" {
		category = entity.DefaultCategory
	}

	images := make([]string, 0, len(input.Images))
	for _, image := range input.Images {
		if image != "" {
			images = append(images, image)
		}
	}

	return entity.Product{
		ID:            id,
		Name:          input.Name,
		Price:         input.Price,
		OriginalPrice: originalPrice,
		Material:      input.Material,
		Color:         input.Color,
		Size:          input.Size,
		Description:   input.Description,
		Images:        images,
		InStock:       input.InStock,
		Featured:      input.Featured,
		Category:      category,
	}
}
