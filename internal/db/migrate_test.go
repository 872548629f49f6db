package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openRaw(t *testing.T) *sql.DB {
	t.Helper()
	database, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	database := openRaw(t)
	require.NoError(t, Migrate(database))

	tables := []string{
		"users", "professors", "cohort_groups", "documentos", "actas",
		"practicum_sites", "work_plans", "work_plan_entries",
		"improvement_plans", "improvement_factors", "improvement_activities",
		"faculties", "programs", "subjects", "catalog_items",
	}
	for _, table := range tables {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}
}

func TestMigrate_RerunIsIdempotent(t *testing.T) {
	database := openRaw(t)
	require.NoError(t, Migrate(database))
	// A second run re-executes every statement, including the ALTER TABLE
	// additions, which must be swallowed rather than failing.
	require.NoError(t, Migrate(database))

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count))
	assert.Equal(t, 3, count, "seed users must not duplicate on re-run")
}

func TestMigrate_SeedsAdminUser(t *testing.T) {
	database := openRaw(t)
	require.NoError(t, Migrate(database))

	var password, role, name string
	err := database.QueryRow(
		`SELECT password, role, name FROM users WHERE username = 'admin'`,
	).Scan(&password, &role, &name)
	require.NoError(t, err)
	assert.Equal(t, "admin123", password)
	assert.Equal(t, "administrador", role)
	assert.Equal(t, "Administrador", name)
}

func TestMigrate_AddedColumnsPresent(t *testing.T) {
	database := openRaw(t)
	require.NoError(t, Migrate(database))

	// Columns added by late ALTER TABLE statements must be queryable.
	_, err := database.Exec(
		`INSERT INTO professors (id, name, cv, profile, created_at, updated_at)
		 VALUES ('PROF-1', 'X', 'cv', 'perfil', '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z')`)
	assert.NoError(t, err)

	_, err = database.Exec(
		`INSERT INTO actas (id, group_name, photo2, type, created_at, updated_at)
		 VALUES ('ACTA-1', 'G1', '', 'seguimiento', '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z')`)
	assert.NoError(t, err)
}
