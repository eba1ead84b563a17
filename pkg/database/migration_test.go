package database

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeMigrations(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestRunMigrations_AppliesPendingInOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	const (
		tables = "CREATE TABLE professionals (id BIGSERIAL PRIMARY KEY);"
		seed   = "INSERT INTO professionals DEFAULT VALUES;"
	)
	dir := writeMigrations(t, map[string]string{
		"0001_init.sql":           "CREATE TABLE x ();",
		"0003_seed_directory.sql": seed,
		"0002_tables.sql":         tables,
		"README.md":               "not a migration",
		"broken.sql":              "SELECT 1;",
	})

	mock.ExpectExec(regexp.QuoteMeta(createMigrationsTableQuery)).
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	mock.ExpectQuery(regexp.QuoteMeta(listAppliedMigrationsQuery)).
		WillReturnRows(pgxmock.NewRows([]string{"version", "name", "applied_at"}).
			AddRow("0001", "init", time.Now()))

	for _, m := range []struct{ version, name, sql string }{
		{"0002", "tables", tables},
		{"0003", "seed_directory", seed},
	} {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(m.sql)).
			WillReturnResult(pgxmock.NewResult("EXEC", 0))
		mock.ExpectExec(regexp.QuoteMeta(recordMigrationQuery)).
			WithArgs(m.version, m.name, pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()
	}

	require.NoError(t, RunMigrations(t.Context(), mock, dir, zap.NewNop()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_RollsBackFailedFile(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	dir := writeMigrations(t, map[string]string{
		"0001_init.sql": "CREATE TABLE broken (;",
	})

	mock.ExpectExec(regexp.QuoteMeta(createMigrationsTableQuery)).
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	mock.ExpectQuery(regexp.QuoteMeta(listAppliedMigrationsQuery)).
		WillReturnRows(pgxmock.NewRows([]string{"version", "name", "applied_at"}))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE broken (;")).
		WillReturnError(errors.New("syntax error"))
	mock.ExpectRollback()

	err = RunMigrations(t.Context(), mock, dir, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "0001_init.sql")
	assert.Contains(t, err.Error(), "syntax error")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_MissingDir(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta(createMigrationsTableQuery)).
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	mock.ExpectQuery(regexp.QuoteMeta(listAppliedMigrationsQuery)).
		WillReturnRows(pgxmock.NewRows([]string{"version", "name", "applied_at"}))

	err = RunMigrations(t.Context(), mock, filepath.Join(t.TempDir(), "missing"), zap.NewNop())
	assert.ErrorContains(t, err, "read migrations dir")
}
