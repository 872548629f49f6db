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

func newProfessorService(t *testing.T) ProfessorService {
	t.Helper()
	db := testutil.NewTestDB(t)
	return NewProfessorService(repository.NewSQLiteProfessorRepo(db))
}

func TestProfessorService_Create_AssignsPrefixedID(t *testing.T) {
	svc := newProfessorService(t)
	ctx := context.Background()

	prof := &domain.Professor{Name: "Laura", Identification: "CC-100"}
	require.NoError(t, svc.Create(ctx, prof))
	assert.True(t, domain.HasPrefix(prof.ID, domain.PrefixProfessor))
	assert.False(t, prof.CreatedAt.IsZero())
}

func TestProfessorService_Create_RejectsMissingName(t *testing.T) {
	svc := newProfessorService(t)
	ctx := context.Background()

	err := svc.Create(ctx, &domain.Professor{Identification: "CC-100"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid professor")
}

func TestProfessorService_Create_RejectsBadEmail(t *testing.T) {
	svc := newProfessorService(t)
	ctx := context.Background()

	err := svc.Create(ctx, &domain.Professor{
		Name: "Laura", Identification: "CC-100", Email: "not-an-email",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid professor")
}

func TestProfessorService_DeleteKeepsDependentReferences(t *testing.T) {
	db := testutil.NewTestDB(t)
	professors := NewProfessorService(repository.NewSQLiteProfessorRepo(db))
	groups := NewGroupService(repository.NewSQLiteGroupRepo(db))
	ctx := context.Background()

	prof := &domain.Professor{Name: "Asesor", Identification: "CC-200"}
	require.NoError(t, professors.Create(ctx, prof))

	group := &domain.Group{Name: "Cohorte 1", AdvisorID: prof.ID}
	require.NoError(t, groups.Create(ctx, group))

	require.NoError(t, professors.Delete(ctx, prof.ID))

	fetched, err := groups.GetByID(ctx, group.ID)
	require.NoError(t, err)
	assert.Equal(t, prof.ID, fetched.AdvisorID)
}
