package storefront

// FallbackProducts is the sample catalog shown when the API is down. The
// entries match the seed data the shop launched with.
func FallbackProducts() []Product {
	return []Product{
		{
			ID:        1,
			Name:      "Gaming Beast Pro",
			Processor: "intel-i7",
			RAM:       "16gb",
			Graphics:  "nvidia-rtx3070",
			Storage:   "ssd-1tb",
			Price:     1299.99,
			Purpose:   "gaming",
			Image:     "/src/assets/images/pc1.svg",
			Tag:       "Best Seller",
			Specs:     "Intel Core i7, 16GB DDR4, NVIDIA RTX 3070, 1TB SSD",
		},
		{
			ID:        2,
			Name:      "Office Master",
			Processor: "intel-i5",
			RAM:       "8gb",
			Graphics:  "integrated",
			Storage:   "ssd-512",
			Price:     599.99,
			Purpose:   "office",
			Image:     "/src/assets/images/pc2.svg",
			Tag:       "Budget",
			Specs:     "Intel Core i5, 8GB DDR4, Integrated Graphics, 512GB SSD",
		},
		{
			ID:        3,
			Name:      "Workstation Elite",
			Processor: "amd-ryzen9",
			RAM:       "32gb",
			Graphics:  "nvidia-rtx3080",
			Storage:   "ssd-2tb",
			Price:     2199.99,
			Purpose:   "workstation",
			Image:     "/src/assets/images/pc3.svg",
			Tag:       "Premium",
			Specs:     "AMD Ryzen 9, 32GB DDR4, NVIDIA RTX 3080, 2TB SSD",
		},
		{
			ID:        4,
			Name:      "Gaming Starter",
			Processor: "amd-ryzen5",
			RAM:       "8gb",
			Graphics:  "nvidia-gtx1660",
			Storage:   "combo-ssd-hdd",
			Price:     799.99,
			Purpose:   "gaming",
			Image:     "/src/assets/images/pc1.svg",
			Tag:       "Entry Level",
			Specs:     "AMD Ryzen 5, 8GB DDR4, NVIDIA GTX 1660, 512GB SSD + 2TB HDD",
		},
	}
}
