package repository

import (
	"context"
	"testing"

	"github.com/dfrestrepo/claustro/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteGroupRepo(db)
	ctx := context.Background()

	group := testutil.NewTestGroup("Semillero 2024-2")
	group.Description = "Grupo de investigacion formativa"
	require.NoError(t, repo.Create(ctx, group))

	fetched, err := repo.GetByID(ctx, group.ID)
	require.NoError(t, err)
	assert.Equal(t, group.ID, fetched.ID)
	assert.Equal(t, "Semillero 2024-2", fetched.Name)
	assert.Equal(t, "Grupo de investigacion formativa", fetched.Description)
}

// Advisor references are soft: a group may point at a professor id that
// does not exist (or no longer exists), and the row still saves and loads.
func TestGroupRepo_DanglingAdvisorReference(t *testing.T) {
	db := testutil.NewTestDB(t)
	groups := NewSQLiteGroupRepo(db)
	professors := NewSQLiteProfessorRepo(db)
	ctx := context.Background()

	advisor := testutil.NewTestProfessor("Asesora")
	require.NoError(t, professors.Create(ctx, advisor))

	group := testutil.NewTestGroup("Cohorte A", testutil.WithAdvisor(advisor.ID))
	require.NoError(t, groups.Create(ctx, group))

	require.NoError(t, professors.Delete(ctx, advisor.ID))

	fetched, err := groups.GetByID(ctx, group.ID)
	require.NoError(t, err)
	assert.Equal(t, advisor.ID, fetched.AdvisorID)

	_, err = professors.GetByID(ctx, fetched.AdvisorID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGroupRepo_UpdateAndDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteGroupRepo(db)
	ctx := context.Background()

	group := testutil.NewTestGroup("Cohorte B")
	require.NoError(t, repo.Create(ctx, group))

	group.Features = "Modalidad nocturna"
	require.NoError(t, repo.Update(ctx, group))

	fetched, err := repo.GetByID(ctx, group.ID)
	require.NoError(t, err)
	assert.Equal(t, "Modalidad nocturna", fetched.Features)

	require.NoError(t, repo.Delete(ctx, group.ID))
	_, err = repo.GetByID(ctx, group.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
