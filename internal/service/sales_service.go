package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"bigmanpc/api/internal/models"
	"bigmanpc/api/internal/sanitize"
)

var saleDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// SalesStore is satisfied by repository.SalesRepository.
type SalesStore interface {
	List(ctx context.Context) ([]models.Sale, error)
	Add(ctx context.Context, sale models.Sale) (int64, error)
	Delete(ctx context.Context, id int64) error
	Summary(ctx context.Context) (count int64, revenue float64, err error)
}

type SaleInput struct {
	ProductID   int64
	ProductName string
	Price       float64
	SaleDate    string
}

type SalesService struct {
	store SalesStore
	log   zerolog.Logger
}

func NewSalesService(store SalesStore, log zerolog.Logger) *SalesService {
	return &SalesService{store: store, log: log}
}

func (s *SalesService) List(ctx context.Context) ([]models.Sale, error) {
	return s.store.List(ctx)
}

func (s *SalesService) Add(ctx context.Context, input SaleInput) (int64, error) {
	if input.ProductID == 0 || strings.TrimSpace(input.ProductName) == "" ||
		input.Price == 0 || input.SaleDate == "" {
		return 0, &ValidationError{
			Message: "Missing required fields: product_id, product_name, price, sale_date",
		}
	}

	if input.Price <= 0 {
		return 0, &ValidationError{Message: "Price must be a positive number"}
	}

	if !saleDatePattern.MatchString(input.SaleDate) {
		return 0, &ValidationError{Message: "Invalid date format. Use YYYY-MM-DD"}
	}

	sale := models.Sale{
		ProductID:   input.ProductID,
		ProductName: sanitize.Clean(input.ProductName),
		Price:       input.Price,
		SaleDate:    input.SaleDate,
	}

	return s.store.Add(ctx, sale)
}

func (s *SalesService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

func (s *SalesService) Summary(ctx context.Context) (int64, float64, error) {
	return s.store.Summary(ctx)
}
