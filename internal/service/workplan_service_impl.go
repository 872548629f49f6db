package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dfrestrepo/claustro/internal/db"
	"github.com/dfrestrepo/claustro/internal/domain"
	"github.com/dfrestrepo/claustro/internal/repository"
	"github.com/google/uuid"
)

type workPlanService struct {
	plans repository.WorkPlanRepo
	uow   db.UnitOfWork
}

// NewWorkPlanService builds the plan service. Reads go through the given
// repo; saves run inside the unit of work so the plan row and its entries
// commit or roll back together.
func NewWorkPlanService(plans repository.WorkPlanRepo, uow db.UnitOfWork) WorkPlanService {
	return &workPlanService{plans: plans, uow: uow}
}

// prepare normalizes a plan before persisting: entry ids are assigned,
// the dedication defaults from the vinculation type when unset, and the
// block hours are recomputed from the entries. Whatever hour totals came
// in with the plan are thrown away.
func prepare(p *domain.WorkPlan) {
	for i := range p.Entries {
		if p.Entries[i].ID == "" {
			p.Entries[i].ID = uuid.New().String()
		}
	}
	if p.GeneralInfo.Dedication == 0 {
		p.GeneralInfo.Dedication = p.GeneralInfo.VinculationType.DefaultDedication()
	}
	p.CalculatedHours = p.ComputeHours()
}

func (s *workPlanService) Create(ctx context.Context, p *domain.WorkPlan) error {
	if p.ID == "" {
		p.ID = domain.NewID(domain.PrefixWorkPlan)
	}
	if p.Status == "" {
		p.Status = domain.PlanDraft
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := checkStruct("work plan", p); err != nil {
		return err
	}
	prepare(p)
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteWorkPlanRepo(tx).Create(ctx, p)
	})
}

func (s *workPlanService) GetByID(ctx context.Context, id string) (*domain.WorkPlan, error) {
	return s.plans.GetByID(ctx, id)
}

func (s *workPlanService) List(ctx context.Context) ([]*domain.WorkPlan, error) {
	return s.plans.List(ctx)
}

func (s *workPlanService) ListByProfessor(ctx context.Context, professorID string) ([]*domain.WorkPlan, error) {
	return s.plans.ListByProfessor(ctx, professorID)
}

func (s *workPlanService) Update(ctx context.Context, p *domain.WorkPlan) error {
	stored, err := s.plans.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	if !stored.Editable() {
		return ErrPlanLocked
	}
	if err := checkStruct("work plan", p); err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC()
	prepare(p)
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteWorkPlanRepo(tx).Update(ctx, p)
	})
}

// allowedStatusMoves restricts the plan lifecycle: drafts get approved,
// approved plans get signed or sent back to draft. Signed is terminal.
var allowedStatusMoves = map[domain.WorkPlanStatus][]domain.WorkPlanStatus{
	domain.PlanDraft:    {domain.PlanApproved},
	domain.PlanApproved: {domain.PlanSigned, domain.PlanDraft},
}

func (s *workPlanService) SetStatus(ctx context.Context, id string, status domain.WorkPlanStatus) error {
	stored, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return err
	}
	allowed := false
	for _, next := range allowedStatusMoves[stored.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("cannot move work plan from %s to %s", stored.Status, status)
	}
	stored.Status = status
	stored.UpdatedAt = time.Now().UTC()
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteWorkPlanRepo(tx).Update(ctx, stored)
	})
}

func (s *workPlanService) Delete(ctx context.Context, id string) error {
	stored, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !stored.Editable() {
		return ErrPlanLocked
	}
	return s.plans.Delete(ctx, id)
}
