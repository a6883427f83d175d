package models

import "time"

// Sale is an append-mostly ledger row. Product name and price are snapshots
// taken at sale time, so later product edits do not rewrite history.
type Sale struct {
	ID          int64     `json:"id"`
	ProductID   int64     `json:"product_id"`
	ProductName string    `json:"product_name"`
	Price       float64   `json:"price"`
	SaleDate    string    `json:"sale_date"`
	CreatedAt   time.Time `json:"created_at"`
}
