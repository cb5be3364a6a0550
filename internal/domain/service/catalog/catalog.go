package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/enfash/PrintSwift-sub000/internal/domain"
	"github.com/enfash/PrintSwift-sub000/internal/domain/entity"
	"github.com/enfash/PrintSwift-sub000/internal/domain/service/pricing"
	"github.com/enfash/PrintSwift-sub000/internal/domain/value"
	"github.com/enfash/PrintSwift-sub000/pkg/contextx"
	"github.com/enfash/PrintSwift-sub000/pkg/errcodes"
)

const (
	defaultCacheTTL  = 5 * time.Minute
	defaultListLimit = 50
	maxListLimit     = 100
	maxNameLength    = 200
)

var (
	logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`) //nolint:gochecknoglobals
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id value.ProductID) (entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id value.ProductID) error
	List(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error)
}

// Service — каталог товаров с таблицами ступеней и опциями.
// Get обслуживается из кэша: цены считаются по каждому изменению формы.
type Service struct {
	products ProductRepository
	cache    *cache.Cache
	now      func() time.Time
}

func NewService(products ProductRepository) *Service {
	return &Service{
		products: products,
		cache:    cache.New(defaultCacheTTL, 2*defaultCacheTTL),
		now:      time.Now,
	}
}

func (s *Service) WithCacheTTL(ttl time.Duration) *Service {
	s.cache = cache.New(ttl, 2*ttl)
	return s
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Create(ctx context.Context, product entity.Product) (entity.Product, error) {
	product = normalize(product)

	if err := validateProduct(product); err != nil {
		return entity.Product{}, err
	}

	now := s.now().UTC()

	product.ID = value.NewProductID()
	product.CreatedAt = now
	product.UpdatedAt = now

	if err := s.products.Create(ctx, &product); err != nil {
		return entity.Product{}, fmt.Errorf("products.Create: %w", err)
	}

	logger(ctx).Info("product created",
		slog.String("product-id", product.ID.String()),
		slog.String("slug", product.Slug),
		slog.Int("tiers", len(product.Tiers)),
	)

	return product, nil
}

func (s *Service) Update(ctx context.Context, product entity.Product) (entity.Product, error) {
	product = normalize(product)

	if err := validateProduct(product); err != nil {
		return entity.Product{}, err
	}

	existing, err := s.products.GetByID(ctx, product.ID)
	if err != nil {
		return entity.Product{}, fmt.Errorf("products.GetByID: %w", err)
	}

	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = s.now().UTC()

	if err := s.products.Update(ctx, &product); err != nil {
		return entity.Product{}, fmt.Errorf("products.Update: %w", err)
	}

	s.cache.Delete(product.ID.String())

	return product, nil
}

// Get возвращает товар, при промахе кэша читает из хранилища.
func (s *Service) Get(ctx context.Context, id value.ProductID) (entity.Product, error) {
	if cached, ok := s.cache.Get(id.String()); ok {
		if product, ok := cached.(entity.Product); ok {
			return product, nil
		}
	}

	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return entity.Product{}, fmt.Errorf("products.GetByID: %w", err)
	}

	s.cache.SetDefault(id.String(), product)

	return product, nil
}

func (s *Service) List(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error) {
	if filter.Limit == 0 {
		filter.Limit = defaultListLimit
	}

	if filter.Limit < 0 || filter.Limit > maxListLimit || filter.Offset < 0 {
		return nil, domain.NewInvalidInputError(
			errcodes.InvalidPaging, "limit must be within [1, %d] and offset non-negative", maxListLimit,
		)
	}

	filter.Category = strings.TrimSpace(filter.Category)

	products, err := s.products.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("products.List: %w", err)
	}

	return products, nil
}

func (s *Service) Delete(ctx context.Context, id value.ProductID) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return fmt.Errorf("products.Delete: %w", err)
	}

	s.cache.Delete(id.String())

	logger(ctx).Info("product deleted", slog.String("product-id", id.String()))

	return nil
}

func normalize(product entity.Product) entity.Product {
	product.Name = strings.TrimSpace(product.Name)
	product.Slug = strings.ToLower(strings.TrimSpace(product.Slug))
	product.Category = strings.TrimSpace(product.Category)
	product.Description = strings.TrimSpace(product.Description)

	return product
}

func validateProduct(product entity.Product) error {
	switch {
	case product.Name == "":
		return domain.NewInvalidInputError(errcodes.InvalidProduct, "product name is required")
	case len(product.Name) > maxNameLength:
		return domain.NewInvalidInputError(errcodes.InvalidProduct, "product name is longer than %d bytes", maxNameLength)
	case !slugPattern.MatchString(product.Slug):
		return domain.NewInvalidInputError(
			errcodes.InvalidProduct, "slug %q must be lowercase words separated by dashes", product.Slug,
		)
	}

	if err := pricing.ValidateTiers(product.Tiers); err != nil {
		return fmt.Errorf("pricing.ValidateTiers: %w", err)
	}

	if err := pricing.ValidateOptions(product.Options); err != nil {
		return fmt.Errorf("pricing.ValidateOptions: %w", err)
	}

	return nil
}
