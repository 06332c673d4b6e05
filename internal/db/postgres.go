package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the catalog schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// PRODUCTS
	// -------------------------------
	productsSQL := `
		CREATE TABLE IF NOT EXISTS products (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			price_takeout NUMERIC(10,2) NOT NULL DEFAULT 0,
			price_delivery NUMERIC(10,2) NOT NULL DEFAULT 0,
			is_combo BOOLEAN NOT NULL DEFAULT FALSE,
			position INT NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, productsSQL); err != nil {
		return err
	}

	// -------------------------------
	// COMBO GROUPS
	// -------------------------------
	comboGroupsSQL := `
		CREATE TABLE IF NOT EXISTS combo_groups (
			id SERIAL PRIMARY KEY,
			product_id VARCHAR(64) NOT NULL REFERENCES products(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			kind VARCHAR(20) NOT NULL,
			forced_quantity INT NOT NULL DEFAULT 0,
			max_quantity INT NOT NULL DEFAULT 0,
			position INT NOT NULL DEFAULT 0,
			UNIQUE (product_id, name)
		)
	`
	if _, err := db.Exec(ctx, comboGroupsSQL); err != nil {
		return err
	}

	// -------------------------------
	// COMBO ITEMS
	// -------------------------------
	comboItemsSQL := `
		CREATE TABLE IF NOT EXISTS combo_items (
			id VARCHAR(64) NOT NULL,
			group_id INT NOT NULL REFERENCES combo_groups(id) ON DELETE CASCADE,
			label VARCHAR(255) NOT NULL,
			extra_takeout NUMERIC(10,2) NOT NULL DEFAULT 0,
			extra_delivery NUMERIC(10,2) NOT NULL DEFAULT 0,
			default_quantity INT NOT NULL DEFAULT 0,
			default_selected BOOLEAN NOT NULL DEFAULT FALSE,
			badges TEXT[] NOT NULL DEFAULT '{}',
			position INT NOT NULL DEFAULT 0,
			PRIMARY KEY (group_id, id)
		)
	`
	if _, err := db.Exec(ctx, comboItemsSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
