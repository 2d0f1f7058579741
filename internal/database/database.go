package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"vidtube/internal/repository"
)

// Connect opens PostgreSQL for postgres:// DSNs and pure-Go SQLite for
// anything else (local development and tests). TranslateError is on so
// unique-constraint violations surface as gorm.ErrDuplicatedKey on both
// drivers.
func Connect(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		cfg,
	)
}

// Migrate creates or updates the schema, including the unique indexes on
// username and email that back the duplicate-registration guarantees.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(repository.Models()...)
}
