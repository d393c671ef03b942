package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Reset drops all tables and re-runs migrations. Used by the admin
// reset endpoint between enrollment seasons.
func Reset(pool *pgxpool.Pool, databaseURL string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dropQuery := `
		DROP TABLE IF EXISTS registrations CASCADE;
		DROP TABLE IF EXISTS schema_migrations CASCADE;
	`

	if _, err := pool.Exec(ctx, dropQuery); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}

	log.Println("All tables dropped successfully")

	if err := RunMigrations(databaseURL); err != nil {
		return fmt.Errorf("failed to run migrations after reset: %w", err)
	}

	log.Println("Database reset completed successfully")
	return nil
}
