package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dfrestrepo/claustro/internal/db"
	"github.com/dfrestrepo/claustro/internal/domain"
)

// SQLiteActaRepo implements ActaRepo over the actas table.
type SQLiteActaRepo struct {
	db db.DBTX
}

func NewSQLiteActaRepo(db db.DBTX) *SQLiteActaRepo {
	return &SQLiteActaRepo{db: db}
}

const actaColumns = `id, group_name, advisor_name, date, linked_doc_id, logros,
	acuerdos, sintesis, pdf_url, photo1, photo2, type, created_at, updated_at`

func (r *SQLiteActaRepo) Create(ctx context.Context, a *domain.Acta) error {
	query := `INSERT INTO actas (` + actaColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.Group, a.AdvisorName, formatDate(a.Date), a.LinkedDocID,
		a.Logros, a.Acuerdos, a.Sintesis, a.PDFUrl, a.Photo1, a.Photo2, a.Type,
		stamp(a.CreatedAt), stamp(a.UpdatedAt))
	if err != nil {
		return fmt.Errorf("inserting acta: %w", err)
	}
	return nil
}

func (r *SQLiteActaRepo) GetByID(ctx context.Context, id string) (*domain.Acta, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+actaColumns+` FROM actas WHERE id = ?`, id)
	return scanActa(row.Scan)
}

func (r *SQLiteActaRepo) List(ctx context.Context) ([]*domain.Acta, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+actaColumns+` FROM actas ORDER BY date DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("listing actas: %w", err)
	}
	defer rows.Close()

	var actas []*domain.Acta
	for rows.Next() {
		a, err := scanActa(rows.Scan)
		if err != nil {
			return nil, err
		}
		actas = append(actas, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating actas: %w", err)
	}
	return actas, nil
}

func (r *SQLiteActaRepo) Update(ctx context.Context, a *domain.Acta) error {
	query := `UPDATE actas SET group_name = ?, advisor_name = ?, date = ?,
		linked_doc_id = ?, logros = ?, acuerdos = ?, sintesis = ?, pdf_url = ?,
		photo1 = ?, photo2 = ?, type = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		a.Group, a.AdvisorName, formatDate(a.Date), a.LinkedDocID,
		a.Logros, a.Acuerdos, a.Sintesis, a.PDFUrl, a.Photo1, a.Photo2, a.Type,
		stamp(a.UpdatedAt), a.ID)
	if err != nil {
		return fmt.Errorf("updating acta: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLiteActaRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM actas WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting acta: %w", err)
	}
	return nil
}

func scanActa(scan func(...any) error) (*domain.Acta, error) {
	var a domain.Acta
	var date, createdAt, updatedAt string
	err := scan(&a.ID, &a.Group, &a.AdvisorName, &date, &a.LinkedDocID,
		&a.Logros, &a.Acuerdos, &a.Sintesis, &a.PDFUrl, &a.Photo1, &a.Photo2,
		&a.Type, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning acta: %w", err)
	}
	a.Date = parseDate(date)
	a.CreatedAt = parseStamp(createdAt)
	a.UpdatedAt = parseStamp(updatedAt)
	return &a, nil
}
