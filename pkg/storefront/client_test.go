package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func catalogServer(t *testing.T, products []Product) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if q := r.URL.Query().Get("search"); q != "" {
			var matched []Product
			for _, p := range products {
				if p.Purpose == q {
					matched = append(matched, p)
				}
			}
			if len(matched) == 0 {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(map[string]string{"message": "No products found matching the search criteria."})
				return
			}
			json.NewEncoder(w).Encode(productsResponse{Products: matched})
			return
		}
		json.NewEncoder(w).Encode(productsResponse{Products: products})
	}))
}

func TestFetchUsesAPI(t *testing.T) {
	catalog := []Product{
		{ID: 10, Name: "Creator Rig", Processor: "amd-ryzen7", Purpose: "workstation", Price: 1500},
	}
	srv := catalogServer(t, catalog)
	defer srv.Close()

	client := NewClient(srv.URL)
	products, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Creator Rig" {
		t.Fatalf("unexpected catalog: %+v", products)
	}
	if client.UsingFallback() {
		t.Fatal("expected live catalog, got fallback")
	}
}

func TestFetchFallsBackWhenUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient(srv.URL)
	products, err := client.Fetch(context.Background())
	if err == nil {
		t.Fatal("expected fetch error")
	}
	if !client.UsingFallback() {
		t.Fatal("expected fallback catalog")
	}
	if len(products) != 4 {
		t.Fatalf("fallback catalog has %d products, want 4", len(products))
	}
	if products[0].Name != "Gaming Beast Pro" {
		t.Fatalf("unexpected first fallback product %q", products[0].Name)
	}
}

func TestFetchFallsBackOnEmptyCatalog(t *testing.T) {
	srv := catalogServer(t, nil)
	defer srv.Close()

	client := NewClient(srv.URL)
	if _, err := client.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if !client.UsingFallback() {
		t.Fatal("empty catalog should switch to fallback")
	}
}

func TestSearchLocalFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL)
	client.Fetch(context.Background())

	results := client.Search(context.Background(), "gaming")
	if len(results) != 2 {
		t.Fatalf("local search found %d products, want 2", len(results))
	}
	for _, p := range results {
		if p.Purpose != "gaming" {
			t.Errorf("unexpected match %q", p.Name)
		}
	}
}

func TestFilterPredicate(t *testing.T) {
	client := NewClient("http://unused")
	client.products = FallbackProducts()

	tests := []struct {
		name    string
		filters Filters
		want    []string
	}{
		{
			name:    "purpose only",
			filters: Filters{Purpose: "gaming"},
			want:    []string{"Gaming Beast Pro", "Gaming Starter"},
		},
		{
			name:    "purpose and ram",
			filters: Filters{Purpose: "gaming", RAM: "8gb"},
			want:    []string{"Gaming Starter"},
		},
		{
			name:    "price ceiling",
			filters: Filters{PriceCeiling: 700},
			want:    []string{"Office Master"},
		},
		{
			name:    "default ceiling includes everything",
			filters: Filters{},
			want:    []string{"Gaming Beast Pro", "Office Master", "Workstation Elite", "Gaming Starter"},
		},
		{
			name:    "no match",
			filters: Filters{Processor: "intel-i9"},
			want:    nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := client.Filter(tc.filters)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d products, want %d", len(got), len(tc.want))
			}
			for i, p := range got {
				if p.Name != tc.want[i] {
					t.Errorf("product %d = %q, want %q", i, p.Name, tc.want[i])
				}
			}
		})
	}
}
