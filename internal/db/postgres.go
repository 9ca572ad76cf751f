package db

import (
	"context"
	"os"
	"time"

	"github.com/apex/log"
	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.WithError(err).Fatal("invalid DATABASE_URL")
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.WithError(err).Fatal("postgres pool init failed")
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.WithError(err).Fatal("postgres connection failed")
	}

	if err := initSchema(pool); err != nil {
		log.WithError(err).Fatal("schema init failed")
	}

	log.Info("connected to PostgreSQL")
	return pool
}

// initSchema bootstraps the tables. Idempotent; real migrations are out of
// scope for this service.
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS menus (
			id UUID PRIMARY KEY,
			owner_id UUID NOT NULL REFERENCES users(id),
			name VARCHAR(255) NOT NULL,
			default_language VARCHAR(10) NOT NULL DEFAULT 'en',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS categories (
			id UUID PRIMARY KEY,
			menu_id UUID NOT NULL REFERENCES menus(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			position INT NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS menu_items (
			id UUID PRIMARY KEY,
			category_id UUID NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price NUMERIC(10,2) NOT NULL DEFAULT 0,
			allergens TEXT[] NOT NULL DEFAULT '{}',
			is_vegetarian BOOLEAN NOT NULL DEFAULT FALSE,
			is_vegan BOOLEAN NOT NULL DEFAULT FALSE,
			is_gluten_free BOOLEAN NOT NULL DEFAULT FALSE,
			position INT NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS menu_languages (
			menu_id UUID NOT NULL REFERENCES menus(id) ON DELETE CASCADE,
			language_code VARCHAR(10) NOT NULL,
			is_default BOOLEAN NOT NULL DEFAULT FALSE,
			translated_title VARCHAR(255) NOT NULL DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (menu_id, language_code)
		)`,

		`CREATE TABLE IF NOT EXISTS category_translations (
			category_id UUID NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
			language_code VARCHAR(10) NOT NULL,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (category_id, language_code)
		)`,

		`CREATE TABLE IF NOT EXISTS item_translations (
			item_id UUID NOT NULL REFERENCES menu_items(id) ON DELETE CASCADE,
			language_code VARCHAR(10) NOT NULL,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (item_id, language_code)
		)`,

		`CREATE TABLE IF NOT EXISTS extraction_jobs (
			id SERIAL PRIMARY KEY,
			menu_id UUID NOT NULL REFERENCES menus(id) ON DELETE CASCADE,
			image_url VARCHAR(500) NOT NULL,
			status VARCHAR(50) NOT NULL DEFAULT 'PENDING',
			error TEXT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	return nil
}
