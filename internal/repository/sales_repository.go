package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bigmanpc/api/internal/models"
)

var ErrSaleNotFound = errors.New("sale not found")

type SalesRepository struct {
	pool *pgxpool.Pool
}

func NewSalesRepository(pool *pgxpool.Pool) *SalesRepository {
	return &SalesRepository{pool: pool}
}

func (r *SalesRepository) List(ctx context.Context) ([]models.Sale, error) {
	const query = `
		SELECT id, product_id, product_name, price, to_char(sale_date, 'YYYY-MM-DD'), created_at
		FROM sales
		ORDER BY sale_date DESC, created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []models.Sale
	for rows.Next() {
		var s models.Sale
		if err := rows.Scan(
			&s.ID,
			&s.ProductID,
			&s.ProductName,
			&s.Price,
			&s.SaleDate,
			&s.CreatedAt,
		); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

// Add records a sale. The product existence check and the insert run in one
// transaction, so a product deleted mid-request cannot leave an orphan row.
func (r *SalesRepository) Add(ctx context.Context, sale models.Sale) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	var productID int64
	err = tx.QueryRow(ctx, `SELECT id FROM products WHERE id = $1`, sale.ProductID).Scan(&productID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrProductNotFound
		}
		return 0, err
	}

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO sales (product_id, product_name, price, sale_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, sale.ProductID, sale.ProductName, sale.Price, sale.SaleDate).Scan(&id)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

func (r *SalesRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrSaleNotFound
	}
	return nil
}

// Summary aggregates the ledger for the daily report job.
func (r *SalesRepository) Summary(ctx context.Context) (count int64, revenue float64, err error) {
	const query = `SELECT COUNT(*), COALESCE(SUM(price), 0) FROM sales`

	if err := r.pool.QueryRow(ctx, query).Scan(&count, &revenue); err != nil {
		return 0, 0, err
	}
	return count, revenue, nil
}
