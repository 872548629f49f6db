package service

import (
	"context"
	"testing"

	"github.com/dfrestrepo/claustro/internal/domain"
	"github.com/dfrestrepo/claustro/internal/repository"
	"github.com/dfrestrepo/claustro/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newImprovementService(t *testing.T) ImprovementService {
	t.Helper()
	db := testutil.NewTestDB(t)
	return NewImprovementService(
		repository.NewSQLiteImprovementPlanRepo(db),
		repository.NewSQLiteFactorRepo(db),
		repository.NewSQLiteActivityRepo(db),
	)
}

func TestImprovementService_PlanDeleteRemovesFactorsKeepsActivities(t *testing.T) {
	svc := newImprovementService(t)
	ctx := context.Background()

	plan := &domain.ImprovementPlan{Name: "Acreditacion"}
	require.NoError(t, svc.CreatePlan(ctx, plan))

	factor := &domain.ImprovementFactor{PlanID: plan.ID, Name: "Factor 4"}
	require.NoError(t, svc.CreateFactor(ctx, factor))

	activity := &domain.ImprovementActivity{FactorID: factor.ID, Description: "Revisar syllabus"}
	require.NoError(t, svc.CreateActivity(ctx, activity))

	require.NoError(t, svc.DeletePlan(ctx, plan.ID))

	factors, err := svc.ListFactors(ctx, plan.ID)
	require.NoError(t, err)
	assert.Empty(t, factors)

	// The activity survives both the factor cascade and the plan delete.
	all, err := svc.ListAllActivities(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, factor.ID, all[0].FactorID)
}

func TestImprovementService_FactorDeleteLeavesOrphans(t *testing.T) {
	svc := newImprovementService(t)
	ctx := context.Background()

	plan := &domain.ImprovementPlan{Name: "Plan"}
	require.NoError(t, svc.CreatePlan(ctx, plan))
	factor := &domain.ImprovementFactor{PlanID: plan.ID, Name: "Factor"}
	require.NoError(t, svc.CreateFactor(ctx, factor))
	activity := &domain.ImprovementActivity{FactorID: factor.ID, Description: "Actividad"}
	require.NoError(t, svc.CreateActivity(ctx, activity))

	require.NoError(t, svc.DeleteFactor(ctx, factor.ID))

	orphans, err := svc.ListActivities(ctx, factor.ID)
	require.NoError(t, err)
	assert.Len(t, orphans, 1)
}

func TestImprovementService_IDPrefixes(t *testing.T) {
	svc := newImprovementService(t)
	ctx := context.Background()

	plan := &domain.ImprovementPlan{Name: "Plan"}
	require.NoError(t, svc.CreatePlan(ctx, plan))
	assert.True(t, domain.HasPrefix(plan.ID, domain.PrefixImprovement))

	factor := &domain.ImprovementFactor{PlanID: plan.ID, Name: "Factor"}
	require.NoError(t, svc.CreateFactor(ctx, factor))
	assert.True(t, domain.HasPrefix(factor.ID, domain.PrefixFactor))

	activity := &domain.ImprovementActivity{FactorID: factor.ID, Description: "Actividad"}
	require.NoError(t, svc.CreateActivity(ctx, activity))
	assert.True(t, domain.HasPrefix(activity.ID, domain.PrefixActivity))
}
