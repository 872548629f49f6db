package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dfrestrepo/claustro/internal/db"
	"github.com/dfrestrepo/claustro/internal/domain"
)

// SQLiteWorkPlanRepo implements WorkPlanRepo over work_plans and
// work_plan_entries. Updates replace the entry set wholesale; run them
// inside a unit of work.
type SQLiteWorkPlanRepo struct {
	db db.DBTX
}

func NewSQLiteWorkPlanRepo(db db.DBTX) *SQLiteWorkPlanRepo {
	return &SQLiteWorkPlanRepo{db: db}
}

const workPlanColumns = `id, professor_id, period, year, status,
	faculty_id, program_id, vinculation_type, dedication,
	hours_docencia, hours_apoyo, hours_grado, hours_invest, hours_pdi,
	hours_gestion, hours_total, created_at, updated_at`

func (r *SQLiteWorkPlanRepo) Create(ctx context.Context, p *domain.WorkPlan) error {
	query := `INSERT INTO work_plans (` + workPlanColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	h := p.CalculatedHours
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.ProfessorID, p.Period, p.Year, string(p.Status),
		p.GeneralInfo.FacultyID, p.GeneralInfo.ProgramID,
		string(p.GeneralInfo.VinculationType), p.GeneralInfo.Dedication,
		h.Docencia, h.ApoyoDocencia, h.TrabajosGrado, h.Investigacion,
		h.PDI, h.Gestion, h.Total,
		stamp(p.CreatedAt), stamp(p.UpdatedAt))
	if err != nil {
		return fmt.Errorf("inserting work plan: %w", err)
	}
	return r.insertEntries(ctx, p)
}

func (r *SQLiteWorkPlanRepo) Update(ctx context.Context, p *domain.WorkPlan) error {
	query := `UPDATE work_plans SET professor_id = ?, period = ?, year = ?,
		status = ?, faculty_id = ?, program_id = ?, vinculation_type = ?,
		dedication = ?, hours_docencia = ?, hours_apoyo = ?, hours_grado = ?,
		hours_invest = ?, hours_pdi = ?, hours_gestion = ?, hours_total = ?,
		updated_at = ? WHERE id = ?`
	h := p.CalculatedHours
	res, err := r.db.ExecContext(ctx, query,
		p.ProfessorID, p.Period, p.Year, string(p.Status),
		p.GeneralInfo.FacultyID, p.GeneralInfo.ProgramID,
		string(p.GeneralInfo.VinculationType), p.GeneralInfo.Dedication,
		h.Docencia, h.ApoyoDocencia, h.TrabajosGrado, h.Investigacion,
		h.PDI, h.Gestion, h.Total,
		stamp(p.UpdatedAt), p.ID)
	if err != nil {
		return fmt.Errorf("updating work plan: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM work_plan_entries WHERE plan_id = ?`, p.ID); err != nil {
		return fmt.Errorf("clearing work plan entries: %w", err)
	}
	return r.insertEntries(ctx, p)
}

func (r *SQLiteWorkPlanRepo) insertEntries(ctx context.Context, p *domain.WorkPlan) error {
	for i, e := range p.Entries {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO work_plan_entries (id, plan_id, block, subject_id,
				group_name, description, hours, order_index)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, p.ID, string(e.Block), e.SubjectID, e.GroupName,
			e.Description, e.Hours, i)
		if err != nil {
			return fmt.Errorf("inserting work plan entry: %w", err)
		}
	}
	return nil
}

func (r *SQLiteWorkPlanRepo) GetByID(ctx context.Context, id string) (*domain.WorkPlan, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+workPlanColumns+` FROM work_plans WHERE id = ?`, id)
	p, err := scanWorkPlan(row.Scan)
	if err != nil {
		return nil, err
	}
	if err := r.loadEntries(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *SQLiteWorkPlanRepo) List(ctx context.Context) ([]*domain.WorkPlan, error) {
	return r.list(ctx,
		`SELECT `+workPlanColumns+` FROM work_plans ORDER BY year DESC, period DESC, id`)
}

func (r *SQLiteWorkPlanRepo) ListByProfessor(ctx context.Context, professorID string) ([]*domain.WorkPlan, error) {
	return r.list(ctx,
		`SELECT `+workPlanColumns+` FROM work_plans WHERE professor_id = ?
		 ORDER BY year DESC, period DESC, id`, professorID)
}

func (r *SQLiteWorkPlanRepo) list(ctx context.Context, query string, args ...any) ([]*domain.WorkPlan, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing work plans: %w", err)
	}
	defer rows.Close()

	var plans []*domain.WorkPlan
	for rows.Next() {
		p, err := scanWorkPlan(rows.Scan)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating work plans: %w", err)
	}
	for _, p := range plans {
		if err := r.loadEntries(ctx, p); err != nil {
			return nil, err
		}
	}
	return plans, nil
}

func (r *SQLiteWorkPlanRepo) loadEntries(ctx context.Context, p *domain.WorkPlan) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, block, subject_id, group_name, description, hours
		 FROM work_plan_entries WHERE plan_id = ? ORDER BY order_index`, p.ID)
	if err != nil {
		return fmt.Errorf("loading work plan entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e domain.PlanEntry
		var block string
		if err := rows.Scan(&e.ID, &block, &e.SubjectID, &e.GroupName,
			&e.Description, &e.Hours); err != nil {
			return fmt.Errorf("scanning work plan entry: %w", err)
		}
		e.Block = domain.PlanBlock(block)
		p.Entries = append(p.Entries, e)
	}
	return rows.Err()
}

// Delete removes the plan; its entries go with it via the FK cascade.
func (r *SQLiteWorkPlanRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM work_plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting work plan: %w", err)
	}
	return nil
}

func scanWorkPlan(scan func(...any) error) (*domain.WorkPlan, error) {
	var p domain.WorkPlan
	var status, vinculation, createdAt, updatedAt string
	h := &p.CalculatedHours
	err := scan(&p.ID, &p.ProfessorID, &p.Period, &p.Year, &status,
		&p.GeneralInfo.FacultyID, &p.GeneralInfo.ProgramID,
		&vinculation, &p.GeneralInfo.Dedication,
		&h.Docencia, &h.ApoyoDocencia, &h.TrabajosGrado, &h.Investigacion,
		&h.PDI, &h.Gestion, &h.Total,
		&createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning work plan: %w", err)
	}
	p.Status = domain.WorkPlanStatus(status)
	p.GeneralInfo.VinculationType = domain.VinculationType(vinculation)
	p.CreatedAt = parseStamp(createdAt)
	p.UpdatedAt = parseStamp(updatedAt)
	return &p, nil
}
