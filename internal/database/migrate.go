package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type migration struct {
	name string
	sql  string
}

var migrations = []migration{
	{
		name: "001_products",
		sql: `
			CREATE TABLE IF NOT EXISTS products (
				id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
				name VARCHAR(255) NOT NULL,
				processor VARCHAR(100) NOT NULL,
				ram VARCHAR(50) NOT NULL,
				graphics VARCHAR(100) NOT NULL,
				storage VARCHAR(100) NOT NULL,
				purpose VARCHAR(50) NOT NULL,
				price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
				image VARCHAR(500) NOT NULL DEFAULT '',
				specs TEXT NOT NULL DEFAULT '',
				tag VARCHAR(50) NOT NULL DEFAULT '',
				sold_out BOOLEAN NOT NULL DEFAULT FALSE,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)
		`,
	},
	{
		name: "002_sales",
		sql: `
			CREATE TABLE IF NOT EXISTS sales (
				id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
				product_id BIGINT NOT NULL REFERENCES products(id),
				product_name VARCHAR(255) NOT NULL,
				price NUMERIC(10,2) NOT NULL CHECK (price > 0),
				sale_date DATE NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)
		`,
	},
	{
		name: "003_admin_users",
		sql: `
			CREATE TABLE IF NOT EXISTS admin_users (
				id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
				username VARCHAR(100) NOT NULL UNIQUE,
				password BYTEA NOT NULL,
				email VARCHAR(255) NOT NULL DEFAULT '',
				full_name VARCHAR(255) NOT NULL DEFAULT '',
				is_active BOOLEAN NOT NULL DEFAULT TRUE,
				last_login TIMESTAMPTZ,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)
		`,
	},
	{
		name: "004_sales_date_index",
		sql:  `CREATE INDEX IF NOT EXISTS idx_sales_date ON sales (sale_date DESC, created_at DESC)`,
	},
}

// Migrate applies the bootstrap schema. Each step is recorded in a
// migrations table so it runs once per database.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS migrations (
			name TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	for _, m := range migrations {
		var applied bool
		err := pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM migrations WHERE name = $1)`, m.name,
		).Scan(&applied)
		if err != nil {
			return fmt.Errorf("check migration %s: %w", m.name, err)
		}
		if applied {
			continue
		}

		if _, err := pool.Exec(ctx, m.sql); err != nil {
			return fmt.Errorf("migration %s: %w", m.name, err)
		}
		if _, err := pool.Exec(ctx, `INSERT INTO migrations (name) VALUES ($1)`, m.name); err != nil {
			return fmt.Errorf("record migration %s: %w", m.name, err)
		}
	}

	return nil
}
