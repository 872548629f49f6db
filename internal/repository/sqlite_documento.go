package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dfrestrepo/claustro/internal/db"
	"github.com/dfrestrepo/claustro/internal/domain"
)

// SQLiteDocumentoRepo implements DocumentoRepo over the documentos table.
type SQLiteDocumentoRepo struct {
	db db.DBTX
}

func NewSQLiteDocumentoRepo(db db.DBTX) *SQLiteDocumentoRepo {
	return &SQLiteDocumentoRepo{db: db}
}

const documentoColumns = `id, title, type, date, purpose, created_at, updated_at`

func (r *SQLiteDocumentoRepo) Create(ctx context.Context, d *domain.Documento) error {
	query := `INSERT INTO documentos (` + documentoColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		d.ID, d.Title, d.Type, formatDate(d.Date), d.Purpose,
		stamp(d.CreatedAt), stamp(d.UpdatedAt))
	if err != nil {
		return fmt.Errorf("inserting documento: %w", err)
	}
	return nil
}

func (r *SQLiteDocumentoRepo) GetByID(ctx context.Context, id string) (*domain.Documento, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+documentoColumns+` FROM documentos WHERE id = ?`, id)
	return scanDocumento(row.Scan)
}

func (r *SQLiteDocumentoRepo) List(ctx context.Context) ([]*domain.Documento, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+documentoColumns+` FROM documentos ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("listing documentos: %w", err)
	}
	defer rows.Close()

	var docs []*domain.Documento
	for rows.Next() {
		d, err := scanDocumento(rows.Scan)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documentos: %w", err)
	}
	return docs, nil
}

func (r *SQLiteDocumentoRepo) Update(ctx context.Context, d *domain.Documento) error {
	query := `UPDATE documentos SET title = ?, type = ?, date = ?, purpose = ?,
		updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		d.Title, d.Type, formatDate(d.Date), d.Purpose, stamp(d.UpdatedAt), d.ID)
	if err != nil {
		return fmt.Errorf("updating documento: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLiteDocumentoRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM documentos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting documento: %w", err)
	}
	return nil
}

func scanDocumento(scan func(...any) error) (*domain.Documento, error) {
	var d domain.Documento
	var date, createdAt, updatedAt string
	err := scan(&d.ID, &d.Title, &d.Type, &date, &d.Purpose, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning documento: %w", err)
	}
	d.Date = parseDate(date)
	d.CreatedAt = parseStamp(createdAt)
	d.UpdatedAt = parseStamp(updatedAt)
	return &d, nil
}
