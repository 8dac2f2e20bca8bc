package migration

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"

	migrate "github.com/rubenv/sql-migrate"
)

const (
	migrationDir   = "internal/migration"
	migrationTable = "schema_migrations"
)

// Run applies pending migrations from internal/migration, resolved against
// the working directory.
func Run(db *sql.DB) {
	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("Error getting working directory: %v", err)
	}

	migrate.SetTable(migrationTable)
	migrations := &migrate.FileMigrationSource{
		Dir: filepath.Join(wd, migrationDir),
	}

	n, err := migrate.Exec(db, "postgres", migrations, migrate.Up)
	if err != nil {
		log.Fatalf("Error executing migration: %v", err)
	}

	log.Printf("Applied %d migrations!\n", n)
}
