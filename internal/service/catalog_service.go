package service

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"bigmanpc/api/internal/models"
	"bigmanpc/api/internal/sanitize"
)

const catalogCacheKey = "catalog:all"

// ProductStore is the persistence surface the catalog needs. Satisfied by
// repository.ProductRepository.
type ProductStore interface {
	List(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (models.Product, error)
	Create(ctx context.Context, p models.Product) (int64, error)
	Update(ctx context.Context, p models.Product) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, keyword string) ([]models.Product, error)
	Filter(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	SetSoldOut(ctx context.Context, id int64, soldOut bool) error
}

// ProductInput is the raw form/JSON payload of a create or update. Price
// arrives as text because multipart forms carry it that way.
type ProductInput struct {
	Name      string
	Processor string
	RAM       string
	Graphics  string
	Storage   string
	Purpose   string
	Price     string
	Image     string
	Specs     string
	Tag       string
}

type CatalogService struct {
	store ProductStore
	cache *redis.Client
	ttl   time.Duration
	log   zerolog.Logger
}

func NewCatalogService(store ProductStore, cache *redis.Client, ttl time.Duration, log zerolog.Logger) *CatalogService {
	return &CatalogService{
		store: store,
		cache: cache,
		ttl:   ttl,
		log:   log,
	}
}

// List serves the full catalog, cache-aside: Redis hit wins, miss falls
// through to the database and repopulates. A nil cache client disables
// caching entirely.
func (s *CatalogService) List(ctx context.Context) ([]models.Product, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, catalogCacheKey).Result()
		if err == nil {
			var products []models.Product
			if json.Unmarshal([]byte(cached), &products) == nil {
				return products, nil
			}
		}
	}

	products, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && len(products) > 0 {
		if payload, err := json.Marshal(products); err == nil {
			if err := s.cache.Set(ctx, catalogCacheKey, payload, s.ttl).Err(); err != nil {
				s.log.Warn().Err(err).Msg("catalog cache set failed")
			}
		}
	}

	return products, nil
}

func (s *CatalogService) GetByID(ctx context.Context, id int64) (models.Product, error) {
	return s.store.GetByID(ctx, id)
}

func (s *CatalogService) Create(ctx context.Context, input ProductInput) (models.Product, error) {
	product, err := buildProduct(input)
	if err != nil {
		return models.Product{}, err
	}

	id, err := s.store.Create(ctx, product)
	if err != nil {
		return models.Product{}, err
	}
	product.ID = id

	s.invalidate(ctx)
	return product, nil
}

func (s *CatalogService) Update(ctx context.Context, id int64, input ProductInput) error {
	product, err := buildProduct(input)
	if err != nil {
		return err
	}
	product.ID = id

	if err := s.store.Update(ctx, product); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) Search(ctx context.Context, keyword string) ([]models.Product, error) {
	return s.store.Search(ctx, sanitize.Clean(keyword))
}

func (s *CatalogService) Filter(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	return s.store.Filter(ctx, filter)
}

func (s *CatalogService) SetSoldOut(ctx context.Context, id int64, soldOut bool) error {
	if err := s.store.SetSoldOut(ctx, id, soldOut); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// RefreshCache repopulates the catalog cache, used by the scheduler so the
// storefront rarely pays the database round trip.
func (s *CatalogService) RefreshCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}

	products, err := s.store.List(ctx)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, catalogCacheKey, payload, s.ttl).Err()
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, catalogCacheKey).Err(); err != nil {
		s.log.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}

var productRequiredFields = []string{"name", "processor", "ram", "graphics", "storage", "purpose", "price"}

// buildProduct validates the payload and returns the sanitized record.
// All core fields are required on every write; partial updates are not a
// thing this API supports.
func buildProduct(input ProductInput) (models.Product, error) {
	values := map[string]string{
		"name":      strings.TrimSpace(input.Name),
		"processor": strings.TrimSpace(input.Processor),
		"ram":       strings.TrimSpace(input.RAM),
		"graphics":  strings.TrimSpace(input.Graphics),
		"storage":   strings.TrimSpace(input.Storage),
		"purpose":   strings.TrimSpace(input.Purpose),
		"price":     strings.TrimSpace(input.Price),
	}

	var missing []string
	for _, field := range productRequiredFields {
		if values[field] == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return models.Product{}, &ValidationError{
			Message:       "Missing required fields: " + strings.Join(missing, ", "),
			MissingFields: missing,
		}
	}

	// ParseFloat accepts "NaN" and "Inf"; neither is a price, and NaN
	// would blow up JSON encoding later.
	price, err := strconv.ParseFloat(values["price"], 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return models.Product{}, &ValidationError{Message: "Price must be a valid positive number"}
	}

	image := strings.TrimSpace(input.Image)
	if image == "" {
		image = DefaultImagePath
	}

	return models.Product{
		Name:      sanitize.Clean(input.Name),
		Processor: sanitize.Clean(input.Processor),
		RAM:       sanitize.Clean(input.RAM),
		Graphics:  sanitize.Clean(input.Graphics),
		Storage:   sanitize.Clean(input.Storage),
		Purpose:   sanitize.Clean(input.Purpose),
		Price:     price,
		Image:     sanitize.Clean(image),
		Specs:     sanitize.Clean(input.Specs),
		Tag:       sanitize.Clean(input.Tag),
	}, nil
}
