package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bigmanpc/api/internal/models"
)

var ErrProductNotFound = errors.New("product not found")

const productColumns = `id, name, processor, ram, graphics, storage, purpose, price, image, specs, tag, sold_out, created_at, updated_at`

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func scanProduct(row pgx.Row) (models.Product, error) {
	var p models.Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Processor,
		&p.RAM,
		&p.Graphics,
		&p.Storage,
		&p.Purpose,
		&p.Price,
		&p.Image,
		&p.Specs,
		&p.Tag,
		&p.SoldOut,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

func collectProducts(rows pgx.Rows) ([]models.Product, error) {
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return collectProducts(rows)
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Product{}, ErrProductNotFound
		}
		return models.Product{}, err
	}
	return p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p models.Product) (int64, error) {
	const query = `
		INSERT INTO products (
			name, processor, ram, graphics, storage, purpose, price, image, specs, tag
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
		RETURNING id
	`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		p.Name,
		p.Processor,
		p.RAM,
		p.Graphics,
		p.Storage,
		p.Purpose,
		p.Price,
		p.Image,
		p.Specs,
		p.Tag,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *ProductRepository) Update(ctx context.Context, p models.Product) error {
	const query = `
		UPDATE products
		SET name = $2, processor = $3, ram = $4, graphics = $5, storage = $6,
		    purpose = $7, price = $8, image = $9, specs = $10, tag = $11,
		    updated_at = NOW()
		WHERE id = $1
	`

	cmd, err := r.pool.Exec(ctx, query,
		p.ID,
		p.Name,
		p.Processor,
		p.RAM,
		p.Graphics,
		p.Storage,
		p.Purpose,
		p.Price,
		p.Image,
		p.Specs,
		p.Tag,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Search(ctx context.Context, keyword string) ([]models.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE name ILIKE $1 OR processor ILIKE $1 OR purpose ILIKE $1 OR tag ILIKE $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, "%"+keyword+"%")
	if err != nil {
		return nil, err
	}
	return collectProducts(rows)
}

func (r *ProductRepository) Filter(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	query, args := buildFilterQuery(filter)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectProducts(rows)
}

// buildFilterQuery assembles the AND-combined filter. Omitted criteria do
// not appear in the statement at all.
func buildFilterQuery(filter models.ProductFilter) (string, []any) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	var args []any

	addClause := func(clause string, value any) {
		args = append(args, value)
		query += fmt.Sprintf(clause, len(args))
	}

	if filter.Processor != "" {
		addClause(" AND processor = $%d", filter.Processor)
	}
	if filter.RAM != "" {
		addClause(" AND ram = $%d", filter.RAM)
	}
	if filter.Graphics != "" {
		addClause(" AND graphics = $%d", filter.Graphics)
	}
	if filter.Storage != "" {
		addClause(" AND storage = $%d", filter.Storage)
	}
	if filter.Purpose != "" {
		addClause(" AND purpose = $%d", filter.Purpose)
	}
	if filter.MinPrice != nil {
		addClause(" AND price >= $%d", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		addClause(" AND price <= $%d", *filter.MaxPrice)
	}

	query += " ORDER BY created_at DESC"
	return query, args
}

func (r *ProductRepository) SetSoldOut(ctx context.Context, id int64, soldOut bool) error {
	const query = `UPDATE products SET sold_out = $2, updated_at = NOW() WHERE id = $1`

	cmd, err := r.pool.Exec(ctx, query, id, soldOut)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}
