// Package storefront is the Go data layer for the shop frontend. It keeps
// an in-memory catalog fetched from the API and degrades to a built-in
// sample catalog whenever the API is unreachable, so the storefront always
// has something to show.
package storefront

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Product is the catalog entry as the storefront sees it.
type Product struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Processor string  `json:"processor"`
	RAM       string  `json:"ram"`
	Graphics  string  `json:"graphics"`
	Storage   string  `json:"storage"`
	Price     float64 `json:"price"`
	Purpose   string  `json:"purpose"`
	Image     string  `json:"image"`
	Tag       string  `json:"tag,omitempty"`
	Specs     string  `json:"specs"`
	SoldOut   bool    `json:"sold_out,omitempty"`
}

type Client struct {
	baseURL string
	http    *http.Client

	products []Product
	fallback bool
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type productsResponse struct {
	Products []Product `json:"products"`
}

// Fetch loads the catalog from the API. Any failure, including an empty
// catalog answer, switches the client to the built-in fallback list.
func (c *Client) Fetch(ctx context.Context) ([]Product, error) {
	products, err := c.fetchRemote(ctx, c.baseURL+"/api/products")
	if err != nil || len(products) == 0 {
		c.products = FallbackProducts()
		c.fallback = true
		return c.products, err
	}

	c.products = products
	c.fallback = false
	return c.products, nil
}

func (c *Client) fetchRemote(ctx context.Context, rawURL string) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body productsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	return body.Products, nil
}

// Search queries the API, falling back to a local scan over the cached
// catalog when the request fails.
func (c *Client) Search(ctx context.Context, query string) []Product {
	u := c.baseURL + "/api/products?search=" + url.QueryEscape(query)
	if products, err := c.fetchRemote(ctx, u); err == nil {
		return products
	}
	return searchLocal(c.products, query)
}

// Products returns the catalog from the last Fetch.
func (c *Client) Products() []Product {
	return c.products
}

// UsingFallback reports whether the catalog came from the built-in sample
// data rather than the API.
func (c *Client) UsingFallback() bool {
	return c.fallback
}

func searchLocal(products []Product, query string) []Product {
	q := strings.ToLower(query)
	var matches []Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Processor), q) ||
			strings.Contains(strings.ToLower(p.Purpose), q) ||
			strings.Contains(strings.ToLower(p.Tag), q) {
			matches = append(matches, p)
		}
	}
	return matches
}
