package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dfrestrepo/claustro/internal/db"
	"github.com/dfrestrepo/claustro/internal/domain"
)

// SQLiteSiteRepo implements SiteRepo over the practicum_sites table.
type SQLiteSiteRepo struct {
	db db.DBTX
}

func NewSQLiteSiteRepo(db db.DBTX) *SQLiteSiteRepo {
	return &SQLiteSiteRepo{db: db}
}

const siteColumns = `id, company_name, department, contact_name, professor_id, created_at, updated_at`

func (r *SQLiteSiteRepo) Create(ctx context.Context, s *domain.PracticumSite) error {
	query := `INSERT INTO practicum_sites (` + siteColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.CompanyName, s.Department, s.ContactName, s.ProfessorID,
		stamp(s.CreatedAt), stamp(s.UpdatedAt))
	if err != nil {
		return fmt.Errorf("inserting practicum site: %w", err)
	}
	return nil
}

func (r *SQLiteSiteRepo) GetByID(ctx context.Context, id string) (*domain.PracticumSite, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+siteColumns+` FROM practicum_sites WHERE id = ?`, id)
	return scanSite(row.Scan)
}

func (r *SQLiteSiteRepo) List(ctx context.Context) ([]*domain.PracticumSite, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+siteColumns+` FROM practicum_sites ORDER BY company_name`)
	if err != nil {
		return nil, fmt.Errorf("listing practicum sites: %w", err)
	}
	defer rows.Close()

	var sites []*domain.PracticumSite
	for rows.Next() {
		s, err := scanSite(rows.Scan)
		if err != nil {
			return nil, err
		}
		sites = append(sites, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating practicum sites: %w", err)
	}
	return sites, nil
}

func (r *SQLiteSiteRepo) Update(ctx context.Context, s *domain.PracticumSite) error {
	query := `UPDATE practicum_sites SET company_name = ?, department = ?,
		contact_name = ?, professor_id = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.CompanyName, s.Department, s.ContactName, s.ProfessorID,
		stamp(s.UpdatedAt), s.ID)
	if err != nil {
		return fmt.Errorf("updating practicum site: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLiteSiteRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM practicum_sites WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting practicum site: %w", err)
	}
	return nil
}

func scanSite(scan func(...any) error) (*domain.PracticumSite, error) {
	var s domain.PracticumSite
	var createdAt, updatedAt string
	err := scan(&s.ID, &s.CompanyName, &s.Department, &s.ContactName,
		&s.ProfessorID, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning practicum site: %w", err)
	}
	s.CreatedAt = parseStamp(createdAt)
	s.UpdatedAt = parseStamp(updatedAt)
	return &s, nil
}
