package models

import "time"

type Product struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Processor string    `json:"processor"`
	RAM       string    `json:"ram"`
	Graphics  string    `json:"graphics"`
	Storage   string    `json:"storage"`
	Purpose   string    `json:"purpose"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
	Specs     string    `json:"specs"`
	Tag       string    `json:"tag"`
	SoldOut   bool      `json:"sold_out"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductFilter is an AND-combination of exact attribute matches plus an
// inclusive price range. Zero values mean the criterion is not applied.
type ProductFilter struct {
	Processor string
	RAM       string
	Graphics  string
	Storage   string
	Purpose   string
	MinPrice  *float64
	MaxPrice  *float64
}

func (f ProductFilter) Empty() bool {
	return f.Processor == "" && f.RAM == "" && f.Graphics == "" &&
		f.Storage == "" && f.Purpose == "" && f.MinPrice == nil && f.MaxPrice == nil
}
