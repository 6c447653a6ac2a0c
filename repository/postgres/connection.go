package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"weddingplanner/configs"
	"weddingplanner/domain/entity"
)

// NewConnection creates a new PostgreSQL connection pool
func NewConnection(cfg *configs.DatabaseConfig, log *zap.Logger) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database URL: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxOpenConns)
	if cfg.MaxIdleConns > 0 {
		poolConfig.MinConns = int32(cfg.MaxIdleConns)
	}
	poolConfig.HealthCheckPeriod = 1 * time.Minute
	poolConfig.MaxConnLifetime = cfg.ConnMaxLifetime
	poolConfig.MaxConnIdleTime = cfg.ConnMaxIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	log.Info("PostgreSQL connection pool initialized", zap.Int32("max_conns", poolConfig.MaxConns))
	return pool, nil
}

// RunMigrations executes the schema migration from migrationsDir
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, migrationsDir string) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	migrationSQL, err := os.ReadFile(filepath.Join(migrationsDir, "001_init_schema.up.sql"))
	if err != nil {
		return fmt.Errorf("failed to read migration file: %w", err)
	}

	if _, err := pool.Exec(ctx, string(migrationSQL)); err != nil {
		return fmt.Errorf("failed to execute migration: %w", err)
	}
	return nil
}

// Seed inserts the sample checklist when no task exists yet, and any missing
// sample venue. Deleted checklist items are therefore not resurrected.
func Seed(ctx context.Context, pool *pgxpool.Pool, tasks []entity.Task, venues []entity.Venue) error {
	var count int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM checklist_items`).Scan(&count); err != nil {
		return fmt.Errorf("count checklist items: %w", err)
	}

	if count == 0 {
		repo := NewTaskRepository(pool)
		for _, t := range tasks {
			if err := repo.Upsert(ctx, t); err != nil {
				return fmt.Errorf("seed task %s: %w", t.ID, err)
			}
		}
	}

	for _, v := range venues {
		_, err := pool.Exec(ctx, `
			INSERT INTO venues (
				id, name, location, price_range, capacity, description,
				amenities, image_url, rating, contact_number, email
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			ON CONFLICT (id) DO NOTHING
		`,
			v.ID, v.Name, v.Location, v.PriceRange, v.Capacity, v.Description,
			v.Amenities, v.ImageURL, v.Rating, v.ContactNumber, v.Email,
		)
		if err != nil {
			return fmt.Errorf("seed venue %s: %w", v.ID, err)
		}
	}
	return nil
}
