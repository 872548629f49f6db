package service

import (
	"context"
	"time"

	"github.com/dfrestrepo/claustro/internal/domain"
	"github.com/dfrestrepo/claustro/internal/repository"
)

type improvementService struct {
	plans      repository.ImprovementPlanRepo
	factors    repository.FactorRepo
	activities repository.ActivityRepo
}

func NewImprovementService(
	plans repository.ImprovementPlanRepo,
	factors repository.FactorRepo,
	activities repository.ActivityRepo,
) ImprovementService {
	return &improvementService{plans: plans, factors: factors, activities: activities}
}

func (s *improvementService) CreatePlan(ctx context.Context, p *domain.ImprovementPlan) error {
	if err := checkStruct("improvement plan", p); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = domain.NewID(domain.PrefixImprovement)
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.plans.Create(ctx, p)
}

func (s *improvementService) ListPlans(ctx context.Context) ([]*domain.ImprovementPlan, error) {
	return s.plans.List(ctx)
}

func (s *improvementService) UpdatePlan(ctx context.Context, p *domain.ImprovementPlan) error {
	if err := checkStruct("improvement plan", p); err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC()
	return s.plans.Update(ctx, p)
}

// DeletePlan removes the plan; the schema cascades the delete to its
// factors. Activities under those factors stay behind.
func (s *improvementService) DeletePlan(ctx context.Context, id string) error {
	return s.plans.Delete(ctx, id)
}

func (s *improvementService) CreateFactor(ctx context.Context, f *domain.ImprovementFactor) error {
	if err := checkStruct("improvement factor", f); err != nil {
		return err
	}
	if f.ID == "" {
		f.ID = domain.NewID(domain.PrefixFactor)
	}
	now := time.Now().UTC()
	f.CreatedAt = now
	f.UpdatedAt = now
	return s.factors.Create(ctx, f)
}

func (s *improvementService) ListFactors(ctx context.Context, planID string) ([]*domain.ImprovementFactor, error) {
	return s.factors.ListByPlan(ctx, planID)
}

func (s *improvementService) UpdateFactor(ctx context.Context, f *domain.ImprovementFactor) error {
	if err := checkStruct("improvement factor", f); err != nil {
		return err
	}
	f.UpdatedAt = time.Now().UTC()
	return s.factors.Update(ctx, f)
}

// DeleteFactor removes only the factor row. Its activities keep their
// factor_id and stay listable.
func (s *improvementService) DeleteFactor(ctx context.Context, id string) error {
	return s.factors.Delete(ctx, id)
}

func (s *improvementService) CreateActivity(ctx context.Context, a *domain.ImprovementActivity) error {
	if err := checkStruct("improvement activity", a); err != nil {
		return err
	}
	if a.ID == "" {
		a.ID = domain.NewID(domain.PrefixActivity)
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	return s.activities.Create(ctx, a)
}

func (s *improvementService) ListActivities(ctx context.Context, factorID string) ([]*domain.ImprovementActivity, error) {
	return s.activities.ListByFactor(ctx, factorID)
}

func (s *improvementService) ListAllActivities(ctx context.Context) ([]*domain.ImprovementActivity, error) {
	return s.activities.List(ctx)
}

func (s *improvementService) UpdateActivity(ctx context.Context, a *domain.ImprovementActivity) error {
	if err := checkStruct("improvement activity", a); err != nil {
		return err
	}
	a.UpdatedAt = time.Now().UTC()
	return s.activities.Update(ctx, a)
}

func (s *improvementService) DeleteActivity(ctx context.Context, id string) error {
	return s.activities.Delete(ctx, id)
}
