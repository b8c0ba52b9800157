package persistent

import (
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations
var embedMigrations embed.FS

// Migrate applies pending goose migrations from the embedded SQL files.
// Runs on its own short-lived database/sql connection; the pgx pool is
// untouched.
func Migrate(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("Migrate - sql.Open: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(embedMigrations)

	if err = goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("Migrate - goose.SetDialect: %w", err)
	}

	if err = goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("Migrate - goose.Up: %w", err)
	}

	return nil
}
