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

func newWorkPlanService(t *testing.T) WorkPlanService {
	t.Helper()
	db := testutil.NewTestDB(t)
	return NewWorkPlanService(repository.NewSQLiteWorkPlanRepo(db), testutil.NewTestUoW(db))
}

func TestWorkPlanService_Create_RecomputesHours(t *testing.T) {
	svc := newWorkPlanService(t)
	ctx := context.Background()

	plan := testutil.NewTestWorkPlan("PROF-1", testutil.WithEntries(
		domain.PlanEntry{Block: domain.BlockDocencia, SubjectID: "SUBJ-1", Hours: 4},
		domain.PlanEntry{Block: domain.BlockDocencia, SubjectID: "SUBJ-2", Hours: 6},
		domain.PlanEntry{Block: domain.BlockApoyoDocencia, Description: "Tutorias"},
		domain.PlanEntry{Block: domain.BlockApoyoDocencia, Description: "Semillero"},
	))
	// A stale total carried in from the caller must be discarded.
	plan.CalculatedHours = domain.BlockHours{Total: 999}
	require.NoError(t, svc.Create(ctx, plan))

	fetched, err := svc.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, fetched.CalculatedHours.Docencia)
	assert.Equal(t, 4, fetched.CalculatedHours.ApoyoDocencia)
	assert.Equal(t, 14, fetched.CalculatedHours.Total)
}

func TestWorkPlanService_Create_DefaultsDedication(t *testing.T) {
	svc := newWorkPlanService(t)
	ctx := context.Background()

	plan := testutil.NewTestWorkPlan("PROF-1")
	plan.GeneralInfo.VinculationType = domain.VinculationOcasional
	plan.GeneralInfo.Dedication = 0
	require.NoError(t, svc.Create(ctx, plan))

	fetched, err := svc.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, fetched.GeneralInfo.Dedication)
}

func TestWorkPlanService_Create_KeepsExplicitDedication(t *testing.T) {
	svc := newWorkPlanService(t)
	ctx := context.Background()

	plan := testutil.NewTestWorkPlan("PROF-1")
	plan.GeneralInfo.VinculationType = domain.VinculationOcasional
	plan.GeneralInfo.Dedication = 20
	require.NoError(t, svc.Create(ctx, plan))

	fetched, err := svc.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, fetched.GeneralInfo.Dedication)
}

func TestWorkPlanService_Update_RecomputesHours(t *testing.T) {
	svc := newWorkPlanService(t)
	ctx := context.Background()

	plan := testutil.NewTestWorkPlan("PROF-1", testutil.WithEntries(
		domain.PlanEntry{Block: domain.BlockDocencia, SubjectID: "SUBJ-1", Hours: 4},
	))
	require.NoError(t, svc.Create(ctx, plan))

	plan.Entries = append(plan.Entries,
		domain.PlanEntry{Block: domain.BlockGestion, Description: "Comite"})
	require.NoError(t, svc.Update(ctx, plan))

	fetched, err := svc.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, fetched.CalculatedHours.Docencia)
	assert.Equal(t, 2, fetched.CalculatedHours.Gestion)
	assert.Equal(t, 6, fetched.CalculatedHours.Total)
}

func TestWorkPlanService_SignedPlanIsReadOnly(t *testing.T) {
	svc := newWorkPlanService(t)
	ctx := context.Background()

	plan := testutil.NewTestWorkPlan("PROF-1")
	require.NoError(t, svc.Create(ctx, plan))
	require.NoError(t, svc.SetStatus(ctx, plan.ID, domain.PlanApproved))
	require.NoError(t, svc.SetStatus(ctx, plan.ID, domain.PlanSigned))

	plan.Period = "2025-1"
	assert.ErrorIs(t, svc.Update(ctx, plan), ErrPlanLocked)
	assert.ErrorIs(t, svc.Delete(ctx, plan.ID), ErrPlanLocked)
}

func TestWorkPlanService_SetStatus_RejectsSkippingApproval(t *testing.T) {
	svc := newWorkPlanService(t)
	ctx := context.Background()

	plan := testutil.NewTestWorkPlan("PROF-1")
	require.NoError(t, svc.Create(ctx, plan))

	err := svc.SetStatus(ctx, plan.ID, domain.PlanSigned)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot move work plan")
}

func TestWorkPlanService_SetStatus_ApprovedBackToDraft(t *testing.T) {
	svc := newWorkPlanService(t)
	ctx := context.Background()

	plan := testutil.NewTestWorkPlan("PROF-1")
	require.NoError(t, svc.Create(ctx, plan))
	require.NoError(t, svc.SetStatus(ctx, plan.ID, domain.PlanApproved))
	require.NoError(t, svc.SetStatus(ctx, plan.ID, domain.PlanDraft))

	fetched, err := svc.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PlanDraft, fetched.Status)
}

func TestWorkPlanService_Create_RequiresProfessor(t *testing.T) {
	svc := newWorkPlanService(t)
	ctx := context.Background()

	plan := testutil.NewTestWorkPlan("")
	err := svc.Create(ctx, plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid work plan")
}

// A failure while writing entries must leave no plan row behind.
func TestWorkPlanService_Create_RollsBackAtomically(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: assert.AnError}
	repo := repository.NewSQLiteWorkPlanRepo(database)
	svc := NewWorkPlanService(repo, uow)

	plan := testutil.NewTestWorkPlan("PROF-1", testutil.WithEntries(
		domain.PlanEntry{Block: domain.BlockDocencia, SubjectID: "SUBJ-1", Hours: 4},
	))
	require.Error(t, svc.Create(ctx, plan))

	_, err := repo.GetByID(ctx, plan.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
