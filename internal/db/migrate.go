package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema statements in order. The migration list is
// additive and re-run unconditionally on every startup: CREATE statements
// are idempotent via IF NOT EXISTS, and later ALTER TABLE statements that
// re-add an existing column are tolerated.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		username   TEXT PRIMARY KEY,
		password   TEXT NOT NULL,
		role       TEXT NOT NULL
		           CHECK(role IN ('administrador','coordinador','profesor','estudiante')),
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS professors (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		email          TEXT NOT NULL DEFAULT '',
		photo          TEXT NOT NULL DEFAULT '',
		identification TEXT NOT NULL DEFAULT '',
		phone          TEXT NOT NULL DEFAULT '',
		role           TEXT NOT NULL DEFAULT '',
		specialty      TEXT NOT NULL DEFAULT '',
		gender         TEXT NOT NULL DEFAULT '',
		sex            TEXT NOT NULL DEFAULT '',
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	// advisor_id is a weak reference to professors(id): no constraint, a
	// deleted professor leaves the group pointing at a missing record and
	// the view renders a placeholder.
	`CREATE TABLE IF NOT EXISTS cohort_groups (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		date        TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		features    TEXT NOT NULL DEFAULT '',
		advisor_id  TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS documentos (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		type       TEXT NOT NULL DEFAULT '',
		date       TEXT NOT NULL DEFAULT '',
		purpose    TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS actas (
		id            TEXT PRIMARY KEY,
		group_name    TEXT NOT NULL,
		advisor_name  TEXT NOT NULL DEFAULT '',
		date          TEXT NOT NULL DEFAULT '',
		linked_doc_id TEXT NOT NULL DEFAULT '',
		logros        TEXT NOT NULL DEFAULT '',
		acuerdos      TEXT NOT NULL DEFAULT '',
		sintesis      TEXT NOT NULL DEFAULT '',
		pdf_url       TEXT NOT NULL DEFAULT '',
		photo1        TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS practicum_sites (
		id           TEXT PRIMARY KEY,
		company_name TEXT NOT NULL,
		department   TEXT NOT NULL DEFAULT '',
		contact_name TEXT NOT NULL DEFAULT '',
		professor_id TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS work_plans (
		id               TEXT PRIMARY KEY,
		professor_id     TEXT NOT NULL,
		period           TEXT NOT NULL,
		year             INTEGER NOT NULL,
		status           TEXT NOT NULL DEFAULT 'draft'
		                 CHECK(status IN ('draft','approved','signed')),
		faculty_id       TEXT NOT NULL DEFAULT '',
		program_id       TEXT NOT NULL DEFAULT '',
		vinculation_type TEXT NOT NULL DEFAULT 'catedra',
		dedication       INTEGER NOT NULL DEFAULT 0,
		hours_docencia   INTEGER NOT NULL DEFAULT 0,
		hours_apoyo      INTEGER NOT NULL DEFAULT 0,
		hours_grado      INTEGER NOT NULL DEFAULT 0,
		hours_invest     INTEGER NOT NULL DEFAULT 0,
		hours_pdi        INTEGER NOT NULL DEFAULT 0,
		hours_gestion    INTEGER NOT NULL DEFAULT 0,
		hours_total      INTEGER NOT NULL DEFAULT 0,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS work_plan_entries (
		id          TEXT PRIMARY KEY,
		plan_id     TEXT NOT NULL REFERENCES work_plans(id) ON DELETE CASCADE,
		block       TEXT NOT NULL
		            CHECK(block IN ('docencia','apoyo_docencia','trabajos_grado',
		                            'investigacion','pdi','gestion')),
		subject_id  TEXT NOT NULL DEFAULT '',
		group_name  TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		hours       INTEGER NOT NULL DEFAULT 0,
		order_index INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_plan_entries_plan ON work_plan_entries(plan_id)`,

	`CREATE TABLE IF NOT EXISTS improvement_plans (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		year        INTEGER NOT NULL DEFAULT 0,
		responsible TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS improvement_factors (
		id         TEXT PRIMARY KEY,
		plan_id    TEXT NOT NULL REFERENCES improvement_plans(id) ON DELETE CASCADE,
		number     INTEGER NOT NULL DEFAULT 0,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_factors_plan ON improvement_factors(plan_id)`,

	// factor_id intentionally carries no constraint: deleting a factor
	// leaves its activities orphaned, and lookups tolerate the orphans.
	`CREATE TABLE IF NOT EXISTS improvement_activities (
		id          TEXT PRIMARY KEY,
		factor_id   TEXT NOT NULL,
		description TEXT NOT NULL,
		responsible TEXT NOT NULL DEFAULT '',
		deadline    TEXT,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_activities_factor ON improvement_activities(factor_id)`,

	`CREATE TABLE IF NOT EXISTS faculties (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS programs (
		id         TEXT PRIMARY KEY,
		faculty_id TEXT NOT NULL DEFAULT '',
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS subjects (
		id         TEXT PRIMARY KEY,
		program_id TEXT NOT NULL DEFAULT '',
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS catalog_items (
		id         TEXT PRIMARY KEY,
		kind       TEXT NOT NULL
		           CHECK(kind IN ('activity_type','delivery_form','verification_means',
		                          'pdi_action','improvement_action')),
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_catalog_items_kind ON catalog_items(kind)`,

	// Seed credential records. Kept as INSERT OR IGNORE so operator edits
	// survive restarts.
	`INSERT OR IGNORE INTO users (username, password, role, name, created_at, updated_at) VALUES
		('admin', 'admin123', 'administrador', 'Administrador', '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z'),
		('coordinador', 'coord123', 'coordinador', 'Coordinador de Programa', '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z'),
		('profesor', 'prof123', 'profesor', 'Profesor de Planta', '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z')`,

	// Later additions to professors: CV and profile text blocks.
	`ALTER TABLE professors ADD COLUMN cv TEXT NOT NULL DEFAULT ''`,
	`ALTER TABLE professors ADD COLUMN profile TEXT NOT NULL DEFAULT ''`,

	// Second evidence photo and acta type arrived after the initial schema.
	`ALTER TABLE actas ADD COLUMN photo2 TEXT NOT NULL DEFAULT ''`,
	`ALTER TABLE actas ADD COLUMN type TEXT NOT NULL DEFAULT ''`,
}
