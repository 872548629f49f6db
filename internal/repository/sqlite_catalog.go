package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dfrestrepo/claustro/internal/db"
	"github.com/dfrestrepo/claustro/internal/domain"
)

// SQLiteFacultyRepo implements FacultyRepo.
type SQLiteFacultyRepo struct {
	db db.DBTX
}

func NewSQLiteFacultyRepo(db db.DBTX) *SQLiteFacultyRepo {
	return &SQLiteFacultyRepo{db: db}
}

func (r *SQLiteFacultyRepo) Create(ctx context.Context, f *domain.Faculty) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO faculties (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		f.ID, f.Name, stamp(f.CreatedAt), stamp(f.UpdatedAt))
	if err != nil {
		return fmt.Errorf("inserting faculty: %w", err)
	}
	return nil
}

func (r *SQLiteFacultyRepo) GetByID(ctx context.Context, id string) (*domain.Faculty, error) {
	var f domain.Faculty
	var createdAt, updatedAt string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at, updated_at FROM faculties WHERE id = ?`, id).
		Scan(&f.ID, &f.Name, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning faculty: %w", err)
	}
	f.CreatedAt = parseStamp(createdAt)
	f.UpdatedAt = parseStamp(updatedAt)
	return &f, nil
}

func (r *SQLiteFacultyRepo) List(ctx context.Context) ([]*domain.Faculty, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, created_at, updated_at FROM faculties ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing faculties: %w", err)
	}
	defer rows.Close()

	var faculties []*domain.Faculty
	for rows.Next() {
		var f domain.Faculty
		var createdAt, updatedAt string
		if err := rows.Scan(&f.ID, &f.Name, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning faculty: %w", err)
		}
		f.CreatedAt = parseStamp(createdAt)
		f.UpdatedAt = parseStamp(updatedAt)
		faculties = append(faculties, &f)
	}
	return faculties, rows.Err()
}

func (r *SQLiteFacultyRepo) Update(ctx context.Context, f *domain.Faculty) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE faculties SET name = ?, updated_at = ? WHERE id = ?`,
		f.Name, stamp(f.UpdatedAt), f.ID)
	if err != nil {
		return fmt.Errorf("updating faculty: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLiteFacultyRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM faculties WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting faculty: %w", err)
	}
	return nil
}

// SQLiteProgramRepo implements ProgramRepo.
type SQLiteProgramRepo struct {
	db db.DBTX
}

func NewSQLiteProgramRepo(db db.DBTX) *SQLiteProgramRepo {
	return &SQLiteProgramRepo{db: db}
}

func (r *SQLiteProgramRepo) Create(ctx context.Context, p *domain.Program) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO programs (id, faculty_id, name, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.FacultyID, p.Name, stamp(p.CreatedAt), stamp(p.UpdatedAt))
	if err != nil {
		return fmt.Errorf("inserting program: %w", err)
	}
	return nil
}

func (r *SQLiteProgramRepo) GetByID(ctx context.Context, id string) (*domain.Program, error) {
	var p domain.Program
	var createdAt, updatedAt string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, faculty_id, name, created_at, updated_at FROM programs WHERE id = ?`, id).
		Scan(&p.ID, &p.FacultyID, &p.Name, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning program: %w", err)
	}
	p.CreatedAt = parseStamp(createdAt)
	p.UpdatedAt = parseStamp(updatedAt)
	return &p, nil
}

func (r *SQLiteProgramRepo) List(ctx context.Context) ([]*domain.Program, error) {
	return r.listWhere(ctx,
		`SELECT id, faculty_id, name, created_at, updated_at FROM programs ORDER BY name`)
}

func (r *SQLiteProgramRepo) ListByFaculty(ctx context.Context, facultyID string) ([]*domain.Program, error) {
	return r.listWhere(ctx,
		`SELECT id, faculty_id, name, created_at, updated_at FROM programs
		 WHERE faculty_id = ? ORDER BY name`, facultyID)
}

func (r *SQLiteProgramRepo) listWhere(ctx context.Context, query string, args ...any) ([]*domain.Program, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing programs: %w", err)
	}
	defer rows.Close()

	var programs []*domain.Program
	for rows.Next() {
		var p domain.Program
		var createdAt, updatedAt string
		if err := rows.Scan(&p.ID, &p.FacultyID, &p.Name, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning program: %w", err)
		}
		p.CreatedAt = parseStamp(createdAt)
		p.UpdatedAt = parseStamp(updatedAt)
		programs = append(programs, &p)
	}
	return programs, rows.Err()
}

func (r *SQLiteProgramRepo) Update(ctx context.Context, p *domain.Program) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE programs SET faculty_id = ?, name = ?, updated_at = ? WHERE id = ?`,
		p.FacultyID, p.Name, stamp(p.UpdatedAt), p.ID)
	if err != nil {
		return fmt.Errorf("updating program: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLiteProgramRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM programs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting program: %w", err)
	}
	return nil
}

// SQLiteSubjectRepo implements SubjectRepo.
type SQLiteSubjectRepo struct {
	db db.DBTX
}

func NewSQLiteSubjectRepo(db db.DBTX) *SQLiteSubjectRepo {
	return &SQLiteSubjectRepo{db: db}
}

func (r *SQLiteSubjectRepo) Create(ctx context.Context, s *domain.Subject) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO subjects (id, program_id, name, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		s.ID, s.ProgramID, s.Name, stamp(s.CreatedAt), stamp(s.UpdatedAt))
	if err != nil {
		return fmt.Errorf("inserting subject: %w", err)
	}
	return nil
}

func (r *SQLiteSubjectRepo) GetByID(ctx context.Context, id string) (*domain.Subject, error) {
	var s domain.Subject
	var createdAt, updatedAt string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, program_id, name, created_at, updated_at FROM subjects WHERE id = ?`, id).
		Scan(&s.ID, &s.ProgramID, &s.Name, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning subject: %w", err)
	}
	s.CreatedAt = parseStamp(createdAt)
	s.UpdatedAt = parseStamp(updatedAt)
	return &s, nil
}

func (r *SQLiteSubjectRepo) List(ctx context.Context) ([]*domain.Subject, error) {
	return r.listWhere(ctx,
		`SELECT id, program_id, name, created_at, updated_at FROM subjects ORDER BY name`)
}

func (r *SQLiteSubjectRepo) ListByProgram(ctx context.Context, programID string) ([]*domain.Subject, error) {
	return r.listWhere(ctx,
		`SELECT id, program_id, name, created_at, updated_at FROM subjects
		 WHERE program_id = ? ORDER BY name`, programID)
}

func (r *SQLiteSubjectRepo) listWhere(ctx context.Context, query string, args ...any) ([]*domain.Subject, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing subjects: %w", err)
	}
	defer rows.Close()

	var subjects []*domain.Subject
	for rows.Next() {
		var s domain.Subject
		var createdAt, updatedAt string
		if err := rows.Scan(&s.ID, &s.ProgramID, &s.Name, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning subject: %w", err)
		}
		s.CreatedAt = parseStamp(createdAt)
		s.UpdatedAt = parseStamp(updatedAt)
		subjects = append(subjects, &s)
	}
	return subjects, rows.Err()
}

func (r *SQLiteSubjectRepo) Update(ctx context.Context, s *domain.Subject) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE subjects SET program_id = ?, name = ?, updated_at = ? WHERE id = ?`,
		s.ProgramID, s.Name, stamp(s.UpdatedAt), s.ID)
	if err != nil {
		return fmt.Errorf("updating subject: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLiteSubjectRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM subjects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting subject: %w", err)
	}
	return nil
}

// SQLiteCatalogItemRepo implements CatalogItemRepo for the simple
// reference catalogs.
type SQLiteCatalogItemRepo struct {
	db db.DBTX
}

func NewSQLiteCatalogItemRepo(db db.DBTX) *SQLiteCatalogItemRepo {
	return &SQLiteCatalogItemRepo{db: db}
}

func (r *SQLiteCatalogItemRepo) Create(ctx context.Context, c *domain.CatalogItem) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO catalog_items (id, kind, name, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		c.ID, string(c.Kind), c.Name, stamp(c.CreatedAt), stamp(c.UpdatedAt))
	if err != nil {
		return fmt.Errorf("inserting catalog item: %w", err)
	}
	return nil
}

func (r *SQLiteCatalogItemRepo) GetByID(ctx context.Context, id string) (*domain.CatalogItem, error) {
	var c domain.CatalogItem
	var kind, createdAt, updatedAt string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, kind, name, created_at, updated_at FROM catalog_items WHERE id = ?`, id).
		Scan(&c.ID, &kind, &c.Name, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning catalog item: %w", err)
	}
	c.Kind = domain.CatalogKind(kind)
	c.CreatedAt = parseStamp(createdAt)
	c.UpdatedAt = parseStamp(updatedAt)
	return &c, nil
}

func (r *SQLiteCatalogItemRepo) ListByKind(ctx context.Context, kind domain.CatalogKind) ([]*domain.CatalogItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, kind, name, created_at, updated_at FROM catalog_items
		 WHERE kind = ? ORDER BY name`, string(kind))
	if err != nil {
		return nil, fmt.Errorf("listing catalog items: %w", err)
	}
	defer rows.Close()

	var items []*domain.CatalogItem
	for rows.Next() {
		var c domain.CatalogItem
		var k, createdAt, updatedAt string
		if err := rows.Scan(&c.ID, &k, &c.Name, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning catalog item: %w", err)
		}
		c.Kind = domain.CatalogKind(k)
		c.CreatedAt = parseStamp(createdAt)
		c.UpdatedAt = parseStamp(updatedAt)
		items = append(items, &c)
	}
	return items, rows.Err()
}

func (r *SQLiteCatalogItemRepo) Update(ctx context.Context, c *domain.CatalogItem) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE catalog_items SET name = ?, updated_at = ? WHERE id = ?`,
		c.Name, stamp(c.UpdatedAt), c.ID)
	if err != nil {
		return fmt.Errorf("updating catalog item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLiteCatalogItemRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM catalog_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting catalog item: %w", err)
	}
	return nil
}
