package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dfrestrepo/claustro/internal/db"
	"github.com/dfrestrepo/claustro/internal/domain"
)

// SQLiteProfessorRepo implements ProfessorRepo over the professors table.
type SQLiteProfessorRepo struct {
	db db.DBTX
}

func NewSQLiteProfessorRepo(db db.DBTX) *SQLiteProfessorRepo {
	return &SQLiteProfessorRepo{db: db}
}

const professorColumns = `id, name, email, photo, identification, phone, role,
	specialty, cv, profile, gender, sex, created_at, updated_at`

func (r *SQLiteProfessorRepo) Create(ctx context.Context, p *domain.Professor) error {
	query := `INSERT INTO professors (` + professorColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Email, p.Photo, p.Identification, p.Phone, p.Role,
		p.Specialty, p.CV, p.Profile, p.Gender, p.Sex,
		stamp(p.CreatedAt), stamp(p.UpdatedAt))
	if err != nil {
		return fmt.Errorf("inserting professor: %w", err)
	}
	return nil
}

func (r *SQLiteProfessorRepo) GetByID(ctx context.Context, id string) (*domain.Professor, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+professorColumns+` FROM professors WHERE id = ?`, id)
	return scanProfessor(row.Scan)
}

func (r *SQLiteProfessorRepo) List(ctx context.Context) ([]*domain.Professor, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+professorColumns+` FROM professors ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing professors: %w", err)
	}
	defer rows.Close()

	var professors []*domain.Professor
	for rows.Next() {
		p, err := scanProfessor(rows.Scan)
		if err != nil {
			return nil, err
		}
		professors = append(professors, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating professors: %w", err)
	}
	return professors, nil
}

func (r *SQLiteProfessorRepo) Update(ctx context.Context, p *domain.Professor) error {
	query := `UPDATE professors SET name = ?, email = ?, photo = ?, identification = ?,
		phone = ?, role = ?, specialty = ?, cv = ?, profile = ?, gender = ?, sex = ?,
		updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Name, p.Email, p.Photo, p.Identification, p.Phone, p.Role,
		p.Specialty, p.CV, p.Profile, p.Gender, p.Sex,
		stamp(p.UpdatedAt), p.ID)
	if err != nil {
		return fmt.Errorf("updating professor: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the professor only. Groups, practicum sites and work plans
// that reference the id keep their dangling reference.
func (r *SQLiteProfessorRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM professors WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting professor: %w", err)
	}
	return nil
}

func scanProfessor(scan func(...any) error) (*domain.Professor, error) {
	var p domain.Professor
	var createdAt, updatedAt string
	err := scan(&p.ID, &p.Name, &p.Email, &p.Photo, &p.Identification, &p.Phone,
		&p.Role, &p.Specialty, &p.CV, &p.Profile, &p.Gender, &p.Sex,
		&createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning professor: %w", err)
	}
	p.CreatedAt = parseStamp(createdAt)
	p.UpdatedAt = parseStamp(updatedAt)
	return &p, nil
}
