package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"proacolhe-service/internal/app/config"
	"time"

	"github.com/mattn/go-sqlite3"
	migrate "github.com/rubenv/sql-migrate"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const (
	sqliteDialect   = "sqlite3"
	migrationsTable = "schema_migrations"
)

func NewSQLite(driverConfig *config.DriverConfig) *sql.DB {
	db, err := OpenSQLite(driverConfig.SQLite.Path)
	if err != nil {
		log.Fatalf("Failed to open sqlite database: %s", err.Error())
	}

	n, err := RunMigrations(db)
	if err != nil {
		db.Close()
		log.Fatalf("Failed to migrate sqlite database: %s", err.Error())
	}
	log.Printf("Successfully connected to sqlite database at %s, applied %d migrations", driverConfig.SQLite.Path, n)
	return db
}

// OpenSQLite opens or creates the database file and applies the connection
// pragmas. Schema changes are left to RunMigrations.
func OpenSQLite(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open(sqliteDialect, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return db, nil
}

func RunMigrations(db *sql.DB) (int, error) {
	migrate.SetTable(migrationsTable)
	source := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationFiles,
		Root:       "migrations",
	}
	return migrate.Exec(db, sqliteDialect, source, migrate.Up)
}

// Timestamps are stored as RFC3339 text in UTC.
func FormatSQLiteTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func ParseSQLiteTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

// IsUniqueViolation reports whether err comes from a UNIQUE constraint.
func IsUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
