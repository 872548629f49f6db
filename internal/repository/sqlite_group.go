package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dfrestrepo/claustro/internal/db"
	"github.com/dfrestrepo/claustro/internal/domain"
)

// SQLiteGroupRepo implements GroupRepo over the cohort_groups table.
type SQLiteGroupRepo struct {
	db db.DBTX
}

func NewSQLiteGroupRepo(db db.DBTX) *SQLiteGroupRepo {
	return &SQLiteGroupRepo{db: db}
}

const groupColumns = `id, name, date, description, features, advisor_id, created_at, updated_at`

func (r *SQLiteGroupRepo) Create(ctx context.Context, g *domain.Group) error {
	query := `INSERT INTO cohort_groups (` + groupColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		g.ID, g.Name, formatDate(g.Date), g.Description, g.Features, g.AdvisorID,
		stamp(g.CreatedAt), stamp(g.UpdatedAt))
	if err != nil {
		return fmt.Errorf("inserting group: %w", err)
	}
	return nil
}

func (r *SQLiteGroupRepo) GetByID(ctx context.Context, id string) (*domain.Group, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+groupColumns+` FROM cohort_groups WHERE id = ?`, id)
	return scanGroup(row.Scan)
}

func (r *SQLiteGroupRepo) List(ctx context.Context) ([]*domain.Group, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+groupColumns+` FROM cohort_groups ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing groups: %w", err)
	}
	defer rows.Close()

	var groups []*domain.Group
	for rows.Next() {
		g, err := scanGroup(rows.Scan)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating groups: %w", err)
	}
	return groups, nil
}

func (r *SQLiteGroupRepo) Update(ctx context.Context, g *domain.Group) error {
	query := `UPDATE cohort_groups SET name = ?, date = ?, description = ?,
		features = ?, advisor_id = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		g.Name, formatDate(g.Date), g.Description, g.Features, g.AdvisorID,
		stamp(g.UpdatedAt), g.ID)
	if err != nil {
		return fmt.Errorf("updating group: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLiteGroupRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cohort_groups WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting group: %w", err)
	}
	return nil
}

func scanGroup(scan func(...any) error) (*domain.Group, error) {
	var g domain.Group
	var date, createdAt, updatedAt string
	err := scan(&g.ID, &g.Name, &date, &g.Description, &g.Features, &g.AdvisorID,
		&createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning group: %w", err)
	}
	g.Date = parseDate(date)
	g.CreatedAt = parseStamp(createdAt)
	g.UpdatedAt = parseStamp(updatedAt)
	return &g, nil
}
