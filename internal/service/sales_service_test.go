package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"bigmanpc/api/internal/models"
	"bigmanpc/api/internal/repository"
)

type fakeSalesStore struct {
	knownProducts map[int64]bool
	sales         map[int64]models.Sale
	nextID        int64
}

func newFakeSalesStore(productIDs ...int64) *fakeSalesStore {
	known := make(map[int64]bool)
	for _, id := range productIDs {
		known[id] = true
	}
	return &fakeSalesStore{knownProducts: known, sales: make(map[int64]models.Sale), nextID: 1}
}

func (f *fakeSalesStore) List(ctx context.Context) ([]models.Sale, error) {
	var out []models.Sale
	for _, s := range f.sales {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSalesStore) Add(ctx context.Context, sale models.Sale) (int64, error) {
	if !f.knownProducts[sale.ProductID] {
		return 0, repository.ErrProductNotFound
	}
	sale.ID = f.nextID
	f.nextID++
	f.sales[sale.ID] = sale
	return sale.ID, nil
}

func (f *fakeSalesStore) Delete(ctx context.Context, id int64) error {
	if _, ok := f.sales[id]; !ok {
		return repository.ErrSaleNotFound
	}
	delete(f.sales, id)
	return nil
}

func (f *fakeSalesStore) Summary(ctx context.Context) (int64, float64, error) {
	var revenue float64
	for _, s := range f.sales {
		revenue += s.Price
	}
	return int64(len(f.sales)), revenue, nil
}

func validSale() SaleInput {
	return SaleInput{ProductID: 1, ProductName: "X", Price: 599.99, SaleDate: "2025-08-01"}
}

func TestSalesAdd(t *testing.T) {
	store := newFakeSalesStore(1)
	svc := NewSalesService(store, zerolog.Nop())

	id, err := svc.Add(context.Background(), validSale())
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if id == 0 {
		t.Fatal("expected generated id")
	}
	if got := store.sales[id]; got.ProductName != "X" || got.Price != 599.99 {
		t.Errorf("stored sale = %+v", got)
	}
}

func TestSalesAddUnknownProduct(t *testing.T) {
	svc := NewSalesService(newFakeSalesStore(), zerolog.Nop())

	_, err := svc.Add(context.Background(), validSale())
	if err != repository.ErrProductNotFound {
		t.Errorf("err = %v, want ErrProductNotFound", err)
	}
}

func TestSalesAddValidation(t *testing.T) {
	svc := NewSalesService(newFakeSalesStore(1), zerolog.Nop())

	cases := []struct {
		name    string
		mutate  func(*SaleInput)
		message string
	}{
		{"missing product_id", func(s *SaleInput) { s.ProductID = 0 }, "Missing required fields: product_id, product_name, price, sale_date"},
		{"missing name", func(s *SaleInput) { s.ProductName = "" }, "Missing required fields: product_id, product_name, price, sale_date"},
		{"zero price", func(s *SaleInput) { s.Price = 0 }, "Missing required fields: product_id, product_name, price, sale_date"},
		{"negative price", func(s *SaleInput) { s.Price = -5 }, "Price must be a positive number"},
		{"bad date", func(s *SaleInput) { s.SaleDate = "01/08/2025" }, "Invalid date format. Use YYYY-MM-DD"},
		{"short date", func(s *SaleInput) { s.SaleDate = "2025-8-1" }, "Invalid date format. Use YYYY-MM-DD"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validSale()
			tc.mutate(&input)
			_, err := svc.Add(context.Background(), input)
			ve, ok := AsValidation(err)
			if !ok {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Message != tc.message {
				t.Errorf("Message = %q, want %q", ve.Message, tc.message)
			}
		})
	}
}

func TestSalesDeleteMissing(t *testing.T) {
	svc := NewSalesService(newFakeSalesStore(1), zerolog.Nop())

	if err := svc.Delete(context.Background(), 42); err != repository.ErrSaleNotFound {
		t.Errorf("err = %v, want ErrSaleNotFound", err)
	}
}
