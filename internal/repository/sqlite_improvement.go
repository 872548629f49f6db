package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dfrestrepo/claustro/internal/db"
	"github.com/dfrestrepo/claustro/internal/domain"
)

// SQLiteImprovementPlanRepo implements ImprovementPlanRepo.
// Deleting a plan cascades to its factors via the FK; activities under
// those factors are deliberately left behind (see migrate.go).
type SQLiteImprovementPlanRepo struct {
	db db.DBTX
}

func NewSQLiteImprovementPlanRepo(db db.DBTX) *SQLiteImprovementPlanRepo {
	return &SQLiteImprovementPlanRepo{db: db}
}

func (r *SQLiteImprovementPlanRepo) Create(ctx context.Context, p *domain.ImprovementPlan) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO improvement_plans (id, name, year, responsible, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Year, p.Responsible, stamp(p.CreatedAt), stamp(p.UpdatedAt))
	if err != nil {
		return fmt.Errorf("inserting improvement plan: %w", err)
	}
	return nil
}

func (r *SQLiteImprovementPlanRepo) GetByID(ctx context.Context, id string) (*domain.ImprovementPlan, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, year, responsible, created_at, updated_at
		 FROM improvement_plans WHERE id = ?`, id)
	return scanImprovementPlan(row.Scan)
}

func (r *SQLiteImprovementPlanRepo) List(ctx context.Context) ([]*domain.ImprovementPlan, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, year, responsible, created_at, updated_at
		 FROM improvement_plans ORDER BY year DESC, name`)
	if err != nil {
		return nil, fmt.Errorf("listing improvement plans: %w", err)
	}
	defer rows.Close()

	var plans []*domain.ImprovementPlan
	for rows.Next() {
		p, err := scanImprovementPlan(rows.Scan)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating improvement plans: %w", err)
	}
	return plans, nil
}

func (r *SQLiteImprovementPlanRepo) Update(ctx context.Context, p *domain.ImprovementPlan) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE improvement_plans SET name = ?, year = ?, responsible = ?, updated_at = ?
		 WHERE id = ?`,
		p.Name, p.Year, p.Responsible, stamp(p.UpdatedAt), p.ID)
	if err != nil {
		return fmt.Errorf("updating improvement plan: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLiteImprovementPlanRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM improvement_plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting improvement plan: %w", err)
	}
	return nil
}

func scanImprovementPlan(scan func(...any) error) (*domain.ImprovementPlan, error) {
	var p domain.ImprovementPlan
	var createdAt, updatedAt string
	err := scan(&p.ID, &p.Name, &p.Year, &p.Responsible, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning improvement plan: %w", err)
	}
	p.CreatedAt = parseStamp(createdAt)
	p.UpdatedAt = parseStamp(updatedAt)
	return &p, nil
}

// SQLiteFactorRepo implements FactorRepo.
type SQLiteFactorRepo struct {
	db db.DBTX
}

func NewSQLiteFactorRepo(db db.DBTX) *SQLiteFactorRepo {
	return &SQLiteFactorRepo{db: db}
}

func (r *SQLiteFactorRepo) Create(ctx context.Context, f *domain.ImprovementFactor) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO improvement_factors (id, plan_id, number, name, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		f.ID, f.PlanID, f.Number, f.Name, stamp(f.CreatedAt), stamp(f.UpdatedAt))
	if err != nil {
		return fmt.Errorf("inserting factor: %w", err)
	}
	return nil
}

func (r *SQLiteFactorRepo) GetByID(ctx context.Context, id string) (*domain.ImprovementFactor, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, plan_id, number, name, created_at, updated_at
		 FROM improvement_factors WHERE id = ?`, id)
	return scanFactor(row.Scan)
}

func (r *SQLiteFactorRepo) ListByPlan(ctx context.Context, planID string) ([]*domain.ImprovementFactor, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, plan_id, number, name, created_at, updated_at
		 FROM improvement_factors WHERE plan_id = ? ORDER BY number, name`, planID)
	if err != nil {
		return nil, fmt.Errorf("listing factors: %w", err)
	}
	defer rows.Close()

	var factors []*domain.ImprovementFactor
	for rows.Next() {
		f, err := scanFactor(rows.Scan)
		if err != nil {
			return nil, err
		}
		factors = append(factors, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating factors: %w", err)
	}
	return factors, nil
}

func (r *SQLiteFactorRepo) Update(ctx context.Context, f *domain.ImprovementFactor) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE improvement_factors SET number = ?, name = ?, updated_at = ?
		 WHERE id = ?`,
		f.Number, f.Name, stamp(f.UpdatedAt), f.ID)
	if err != nil {
		return fmt.Errorf("updating factor: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the factor only. Its activities stay behind with a
// dangling factor_id; listing tolerates them.
func (r *SQLiteFactorRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM improvement_factors WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting factor: %w", err)
	}
	return nil
}

func scanFactor(scan func(...any) error) (*domain.ImprovementFactor, error) {
	var f domain.ImprovementFactor
	var createdAt, updatedAt string
	err := scan(&f.ID, &f.PlanID, &f.Number, &f.Name, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning factor: %w", err)
	}
	f.CreatedAt = parseStamp(createdAt)
	f.UpdatedAt = parseStamp(updatedAt)
	return &f, nil
}

// SQLiteActivityRepo implements ActivityRepo.
type SQLiteActivityRepo struct {
	db db.DBTX
}

func NewSQLiteActivityRepo(db db.DBTX) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{db: db}
}

const activityColumns = `id, factor_id, description, responsible, deadline, created_at, updated_at`

func (r *SQLiteActivityRepo) Create(ctx context.Context, a *domain.ImprovementActivity) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO improvement_activities (`+activityColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.FactorID, a.Description, a.Responsible,
		nullableTimeToString(a.Deadline, dateLayout),
		stamp(a.CreatedAt), stamp(a.UpdatedAt))
	if err != nil {
		return fmt.Errorf("inserting activity: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) GetByID(ctx context.Context, id string) (*domain.ImprovementActivity, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+activityColumns+` FROM improvement_activities WHERE id = ?`, id)
	return scanActivity(row.Scan)
}

func (r *SQLiteActivityRepo) ListByFactor(ctx context.Context, factorID string) ([]*domain.ImprovementActivity, error) {
	return r.listWhere(ctx,
		`SELECT `+activityColumns+` FROM improvement_activities
		 WHERE factor_id = ? ORDER BY created_at, id`, factorID)
}

func (r *SQLiteActivityRepo) List(ctx context.Context) ([]*domain.ImprovementActivity, error) {
	return r.listWhere(ctx,
		`SELECT `+activityColumns+` FROM improvement_activities ORDER BY created_at, id`)
}

func (r *SQLiteActivityRepo) listWhere(ctx context.Context, query string, args ...any) ([]*domain.ImprovementActivity, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	defer rows.Close()

	var activities []*domain.ImprovementActivity
	for rows.Next() {
		a, err := scanActivity(rows.Scan)
		if err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activities: %w", err)
	}
	return activities, nil
}

func (r *SQLiteActivityRepo) Update(ctx context.Context, a *domain.ImprovementActivity) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE improvement_activities SET description = ?, responsible = ?,
		 deadline = ?, updated_at = ? WHERE id = ?`,
		a.Description, a.Responsible,
		nullableTimeToString(a.Deadline, dateLayout),
		stamp(a.UpdatedAt), a.ID)
	if err != nil {
		return fmt.Errorf("updating activity: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLiteActivityRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM improvement_activities WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting activity: %w", err)
	}
	return nil
}

func scanActivity(scan func(...any) error) (*domain.ImprovementActivity, error) {
	var a domain.ImprovementActivity
	var deadline sql.NullString
	var createdAt, updatedAt string
	err := scan(&a.ID, &a.FactorID, &a.Description, &a.Responsible,
		&deadline, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning activity: %w", err)
	}
	a.Deadline = parseNullableTime(deadline, dateLayout)
	a.CreatedAt = parseStamp(createdAt)
	a.UpdatedAt = parseStamp(updatedAt)
	return &a, nil
}
