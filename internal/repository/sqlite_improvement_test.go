package repository

import (
	"context"
	"testing"

	"github.com/dfrestrepo/claustro/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImprovementPlanRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteImprovementPlanRepo(db)
	ctx := context.Background()

	plan := testutil.NewTestImprovementPlan("Acreditacion 2024")
	plan.Responsible = "Decanatura"
	require.NoError(t, repo.Create(ctx, plan))

	fetched, err := repo.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acreditacion 2024", fetched.Name)
	assert.Equal(t, "Decanatura", fetched.Responsible)
}

// Deleting a plan removes its factors through the schema cascade.
func TestImprovementPlanRepo_DeleteCascadesToFactors(t *testing.T) {
	db := testutil.NewTestDB(t)
	plans := NewSQLiteImprovementPlanRepo(db)
	factors := NewSQLiteFactorRepo(db)
	ctx := context.Background()

	plan := testutil.NewTestImprovementPlan("Plan A")
	require.NoError(t, plans.Create(ctx, plan))
	require.NoError(t, factors.Create(ctx, testutil.NewTestFactor(plan.ID, "Factor 1")))
	require.NoError(t, factors.Create(ctx, testutil.NewTestFactor(plan.ID, "Factor 2")))

	require.NoError(t, plans.Delete(ctx, plan.ID))

	remaining, err := factors.ListByPlan(ctx, plan.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

// Deleting a factor does NOT remove its activities. They stay behind with
// a dangling factor_id and remain reachable through the flat listing.
func TestFactorRepo_DeleteLeavesActivitiesOrphaned(t *testing.T) {
	db := testutil.NewTestDB(t)
	plans := NewSQLiteImprovementPlanRepo(db)
	factors := NewSQLiteFactorRepo(db)
	activities := NewSQLiteActivityRepo(db)
	ctx := context.Background()

	plan := testutil.NewTestImprovementPlan("Plan B")
	require.NoError(t, plans.Create(ctx, plan))

	factor := testutil.NewTestFactor(plan.ID, "Factor unico")
	require.NoError(t, factors.Create(ctx, factor))

	activity := testutil.NewTestActivity(factor.ID, "Actualizar microcurriculos")
	require.NoError(t, activities.Create(ctx, activity))

	require.NoError(t, factors.Delete(ctx, factor.ID))

	orphan, err := activities.GetByID(ctx, activity.ID)
	require.NoError(t, err)
	assert.Equal(t, factor.ID, orphan.FactorID)

	all, err := activities.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	byFactor, err := activities.ListByFactor(ctx, factor.ID)
	require.NoError(t, err)
	assert.Len(t, byFactor, 1)
}

func TestFactorRepo_ListByPlan_OrderedByNumber(t *testing.T) {
	db := testutil.NewTestDB(t)
	plans := NewSQLiteImprovementPlanRepo(db)
	factors := NewSQLiteFactorRepo(db)
	ctx := context.Background()

	plan := testutil.NewTestImprovementPlan("Plan C")
	require.NoError(t, plans.Create(ctx, plan))

	second := testutil.NewTestFactor(plan.ID, "Segundo")
	second.Number = 2
	first := testutil.NewTestFactor(plan.ID, "Primero")
	first.Number = 1
	require.NoError(t, factors.Create(ctx, second))
	require.NoError(t, factors.Create(ctx, first))

	listed, err := factors.ListByPlan(ctx, plan.ID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "Primero", listed[0].Name)
	assert.Equal(t, "Segundo", listed[1].Name)
}

func TestActivityRepo_DeadlineRoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	activities := NewSQLiteActivityRepo(db)
	ctx := context.Background()

	withDeadline := testutil.NewTestActivity("FACT-1", "Con fecha")
	deadline := dateOnly(t, "2025-06-30")
	withDeadline.Deadline = &deadline
	require.NoError(t, activities.Create(ctx, withDeadline))

	without := testutil.NewTestActivity("FACT-1", "Sin fecha")
	require.NoError(t, activities.Create(ctx, without))

	fetched, err := activities.GetByID(ctx, withDeadline.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.Deadline)
	assert.Equal(t, "2025-06-30", fetched.Deadline.Format("2006-01-02"))

	fetched, err = activities.GetByID(ctx, without.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.Deadline)
}
