package storefront

// DefaultPriceCeiling matches the storefront's initial price slider value.
const DefaultPriceCeiling = 5000

// Filters holds the storefront's attribute selections. Empty strings mean
// "any"; PriceCeiling of zero is treated as DefaultPriceCeiling.
type Filters struct {
	Processor    string
	RAM          string
	Graphics     string
	Storage      string
	Purpose      string
	PriceCeiling float64
}

// Apply narrows the catalog with exact attribute matches and the price
// ceiling, the same predicate the storefront sidebar uses.
func (f Filters) Apply(products []Product) []Product {
	ceiling := f.PriceCeiling
	if ceiling == 0 {
		ceiling = DefaultPriceCeiling
	}

	var matched []Product
	for _, p := range products {
		if f.Processor != "" && p.Processor != f.Processor {
			continue
		}
		if f.RAM != "" && p.RAM != f.RAM {
			continue
		}
		if f.Graphics != "" && p.Graphics != f.Graphics {
			continue
		}
		if f.Storage != "" && p.Storage != f.Storage {
			continue
		}
		if f.Purpose != "" && p.Purpose != f.Purpose {
			continue
		}
		if p.Price > ceiling {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

// Filter applies the given filters to the cached catalog.
func (c *Client) Filter(f Filters) []Product {
	return f.Apply(c.products)
}
