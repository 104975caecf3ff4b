package catalog

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const productsSchema = `
CREATE TABLE IF NOT EXISTS products (
	id          INTEGER PRIMARY KEY,
	position    INTEGER NOT NULL,
	name        TEXT    NOT NULL,
	price       INTEGER NOT NULL CHECK (price >= 0),
	category    TEXT    NOT NULL,
	description TEXT    NOT NULL DEFAULT '',
	image       TEXT    NOT NULL DEFAULT ''
)`

// LoadSQLite reads the products table of the database at path.
// Rows are returned in position order so the catalogue order survives a round trip.
func LoadSQLite(ctx context.Context, path string) (*Catalog, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog db: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT id, name, price, category, description, image FROM products ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		var category string
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &category, &p.Description, &p.Image); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		p.Category = Category(category)
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}

	c, err := New(products)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return c, nil
}

// SeedSQLite creates the products table at path and replaces its contents
// with products, in order.
func SeedSQLite(ctx context.Context, path string, products []Product) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open catalog db: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, productsSchema); err != nil {
		return fmt.Errorf("failed to create products table: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM products`); err != nil {
		return fmt.Errorf("failed to clear products: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO products (id, position, name, price, category, description, image) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range products {
		if _, err := stmt.ExecContext(ctx, p.ID, i, p.Name, p.Price, string(p.Category), p.Description, p.Image); err != nil {
			return fmt.Errorf("failed to insert product %d: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}
	return nil
}
