package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// DB is the part of *pgxpool.Pool the migrator needs.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

const (
	createMigrationsTableQuery = `CREATE TABLE IF NOT EXISTS migrations (
	version VARCHAR(255) PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	applied_at TIMESTAMP WITH TIME ZONE NOT NULL
)`
	listAppliedMigrationsQuery = `SELECT version, name, applied_at FROM migrations ORDER BY version`
	recordMigrationQuery       = `INSERT INTO migrations (version, name, applied_at) VALUES ($1, $2, $3)`
)

type MigrationRecord struct {
	Version   string
	Name      string
	AppliedAt time.Time
}

// RunMigrations applies every <version>_<name>.sql file of migrationsDir that is not
// recorded in the migrations table, in file name order, one transaction per file.
func RunMigrations(ctx context.Context, db DB, migrationsDir string, logger *zap.Logger) error {
	if _, err := db.Exec(ctx, createMigrationsTableQuery); err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	var migrationFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			migrationFiles = append(migrationFiles, entry.Name())
		}
	}
	sort.Strings(migrationFiles)

	for _, file := range migrationFiles {
		version, name, ok := strings.Cut(strings.TrimSuffix(file, ".sql"), "_")
		if !ok {
			logger.Warn("invalid migration file name", zap.String("file", file))
			continue
		}

		if applied[version] {
			logger.Debug("migration already applied", zap.String("version", version), zap.String("name", name))
			continue
		}

		content, err := os.ReadFile(filepath.Join(migrationsDir, file))
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}

		logger.Info("applying migration", zap.String("version", version), zap.String("name", name))

		if err := applyMigration(ctx, db, version, name, string(content)); err != nil {
			return fmt.Errorf("migration %s: %w", file, err)
		}

		logger.Info("migration applied", zap.String("version", version), zap.String("name", name))
	}

	return nil
}

func appliedVersions(ctx context.Context, db DB) (map[string]bool, error) {
	rows, err := db.Query(ctx, listAppliedMigrationsQuery)
	if err != nil {
		return nil, fmt.Errorf("list applied migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var record MigrationRecord
		if err := rows.Scan(&record.Version, &record.Name, &record.AppliedAt); err != nil {
			return nil, fmt.Errorf("scan migration record: %w", err)
		}
		applied[record.Version] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list applied migrations: %w", err)
	}

	return applied, nil
}

func applyMigration(ctx context.Context, db DB, version, name, content string) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	if _, err := tx.Exec(ctx, content); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("exec: %w", err)
	}

	if _, err := tx.Exec(ctx, recordMigrationQuery, version, name, time.Now().UTC()); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("record: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}
