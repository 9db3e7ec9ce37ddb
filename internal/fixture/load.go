package fixture

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/workboard/internal/db"
	"gopkg.in/yaml.v3"
)

// IsSQLitePath reports whether path names a SQLite seed database.
func IsSQLitePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// Load reads, validates and converts a seed. An empty path yields Default.
func Load(ctx context.Context, path string) (*Seed, error) {
	if path == "" {
		return Default(), nil
	}

	schema, err := loadSchema(ctx, path)
	if err != nil {
		return nil, err
	}
	if errs := ValidateSeedSchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("invalid seed %s: %w", path, errors.Join(errs...))
	}
	return Convert(schema)
}

func loadSchema(ctx context.Context, path string) (*SeedSchema, error) {
	if !IsSQLitePath(path) {
		return LoadSeedSchema(path)
	}

	database, err := db.OpenReadOnly(ctx, path)
	if err != nil {
		return nil, err
	}
	defer database.Close()
	return ReadSQLite(ctx, database)
}

// Save writes schema to path in the format implied by its extension.
func Save(ctx context.Context, path string, schema *SeedSchema) error {
	if IsSQLitePath(path) {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("seed database %s already exists", path)
		}
		if err := saveSQLite(ctx, path, schema); err != nil {
			removeDatabase(path)
			return err
		}
		return nil
	}

	var data []byte
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(schema)
	case ".json":
		data, err = json.MarshalIndent(schema, "", "  ")
	default:
		return fmt.Errorf("unsupported file extension %q", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("encoding seed: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// saveSQLite writes the whole seed in one transaction.
func saveSQLite(ctx context.Context, path string, schema *SeedSchema) error {
	database, err := db.OpenDB(path)
	if err != nil {
		return err
	}
	defer database.Close()

	tx, err := database.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning seed write: %w", err)
	}
	if err := WriteSQLite(ctx, tx, schema); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed write: %w", err)
	}
	return nil
}

// removeDatabase deletes a partially created seed database and its WAL files.
func removeDatabase(path string) {
	for _, p := range []string{path, path + "-wal", path + "-shm"} {
		os.Remove(p)
	}
}
