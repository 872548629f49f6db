package repository

import (
	"context"
	"testing"

	"github.com/dfrestrepo/claustro/internal/db"
	"github.com/dfrestrepo/claustro/internal/domain"
	"github.com/dfrestrepo/claustro/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkPlanRepo_CreateAndReloadWithEntries(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWorkPlanRepo(db)
	ctx := context.Background()

	plan := testutil.NewTestWorkPlan("PROF-1", testutil.WithEntries(
		domain.PlanEntry{Block: domain.BlockDocencia, SubjectID: "SUBJ-1", GroupName: "A", Hours: 4},
		domain.PlanEntry{Block: domain.BlockDocencia, SubjectID: "SUBJ-2", GroupName: "B", Hours: 6},
		domain.PlanEntry{Block: domain.BlockApoyoDocencia, Description: "Tutorias"},
	))
	plan.CalculatedHours = plan.ComputeHours()
	require.NoError(t, repo.Create(ctx, plan))

	fetched, err := repo.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "PROF-1", fetched.ProfessorID)
	require.Len(t, fetched.Entries, 3)
	assert.Equal(t, domain.BlockDocencia, fetched.Entries[0].Block)
	assert.Equal(t, "SUBJ-1", fetched.Entries[0].SubjectID)
	assert.Equal(t, 4, fetched.Entries[0].Hours)
	assert.Equal(t, "Tutorias", fetched.Entries[2].Description)
	assert.Equal(t, 10, fetched.CalculatedHours.Docencia)
	assert.Equal(t, 2, fetched.CalculatedHours.ApoyoDocencia)
	assert.Equal(t, 12, fetched.CalculatedHours.Total)
}

// Update replaces the entry set wholesale. Entries removed from the plan
// must not linger in storage.
func TestWorkPlanRepo_UpdateReplacesEntries(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWorkPlanRepo(db)
	ctx := context.Background()

	plan := testutil.NewTestWorkPlan("PROF-1", testutil.WithEntries(
		domain.PlanEntry{Block: domain.BlockDocencia, SubjectID: "SUBJ-1", Hours: 4},
		domain.PlanEntry{Block: domain.BlockInvestigacion, Description: "Proyecto X"},
	))
	require.NoError(t, repo.Create(ctx, plan))

	plan.Entries = []domain.PlanEntry{
		{ID: "e-new", Block: domain.BlockGestion, Description: "Comite curricular"},
	}
	plan.CalculatedHours = plan.ComputeHours()
	require.NoError(t, repo.Update(ctx, plan))

	fetched, err := repo.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Entries, 1)
	assert.Equal(t, domain.BlockGestion, fetched.Entries[0].Block)
	assert.Equal(t, 0, fetched.CalculatedHours.Docencia)
	assert.Equal(t, 2, fetched.CalculatedHours.Total)
}

func TestWorkPlanRepo_ListByProfessor(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWorkPlanRepo(db)
	ctx := context.Background()

	mine := testutil.NewTestWorkPlan("PROF-1")
	other := testutil.NewTestWorkPlan("PROF-2")
	require.NoError(t, repo.Create(ctx, mine))
	require.NoError(t, repo.Create(ctx, other))

	plans, err := repo.ListByProfessor(ctx, "PROF-1")
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, mine.ID, plans[0].ID)
}

func TestWorkPlanRepo_DeleteRemovesEntries(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWorkPlanRepo(db)
	ctx := context.Background()

	plan := testutil.NewTestWorkPlan("PROF-1", testutil.WithEntries(
		domain.PlanEntry{Block: domain.BlockDocencia, SubjectID: "SUBJ-1", Hours: 4},
	))
	require.NoError(t, repo.Create(ctx, plan))
	require.NoError(t, repo.Delete(ctx, plan.ID))

	_, err := repo.GetByID(ctx, plan.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var count int
	require.NoError(t, db.QueryRow(
		`SELECT COUNT(*) FROM work_plan_entries WHERE plan_id = ?`, plan.ID).Scan(&count))
	assert.Zero(t, count)
}

// Rollback check: if inserting an entry fails mid-save, the plan row must
// not be left behind.
func TestWorkPlanRepo_CreateRollsBackOnEntryFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: assert.AnError}
	plan := testutil.NewTestWorkPlan("PROF-1", testutil.WithEntries(
		domain.PlanEntry{Block: domain.BlockDocencia, SubjectID: "SUBJ-1", Hours: 4},
	))

	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return NewSQLiteWorkPlanRepo(tx).Create(ctx, plan)
	})
	require.Error(t, err)

	_, err = NewSQLiteWorkPlanRepo(database).GetByID(ctx, plan.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
