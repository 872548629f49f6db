package repository

import (
	"context"
	"testing"

	"github.com/dfrestrepo/claustro/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfessorRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfessorRepo(db)
	ctx := context.Background()

	prof := testutil.NewTestProfessor("Ana Maria Rojas",
		testutil.WithEmail("arojas@uni.edu"),
		testutil.WithSpecialty("Epidemiologia"))
	require.NoError(t, repo.Create(ctx, prof))

	fetched, err := repo.GetByID(ctx, prof.ID)
	require.NoError(t, err)
	assert.Equal(t, prof.ID, fetched.ID)
	assert.Equal(t, "Ana Maria Rojas", fetched.Name)
	assert.Equal(t, "arojas@uni.edu", fetched.Email)
	assert.Equal(t, "Epidemiologia", fetched.Specialty)
}

func TestProfessorRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfessorRepo(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "PROF-0")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfessorRepo_List_OrderedByName(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfessorRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestProfessor("Zoraida")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestProfessor("Alberto")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestProfessor("Marta")))

	professors, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, professors, 3)
	assert.Equal(t, "Alberto", professors[0].Name)
	assert.Equal(t, "Marta", professors[1].Name)
	assert.Equal(t, "Zoraida", professors[2].Name)
}

func TestProfessorRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfessorRepo(db)
	ctx := context.Background()

	prof := testutil.NewTestProfessor("Carlos")
	require.NoError(t, repo.Create(ctx, prof))

	prof.Phone = "3001234567"
	prof.Profile = "Docente de planta"
	require.NoError(t, repo.Update(ctx, prof))

	fetched, err := repo.GetByID(ctx, prof.ID)
	require.NoError(t, err)
	assert.Equal(t, "3001234567", fetched.Phone)
	assert.Equal(t, "Docente de planta", fetched.Profile)
}

func TestProfessorRepo_Update_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfessorRepo(db)
	ctx := context.Background()

	prof := testutil.NewTestProfessor("Fantasma")
	err := repo.Update(ctx, prof)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfessorRepo_Delete_RemovesExactlyOne(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfessorRepo(db)
	ctx := context.Background()

	keep := testutil.NewTestProfessor("Keep")
	gone := testutil.NewTestProfessor("Gone")
	require.NoError(t, repo.Create(ctx, keep))
	require.NoError(t, repo.Create(ctx, gone))

	require.NoError(t, repo.Delete(ctx, gone.ID))

	professors, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, professors, 1)
	assert.Equal(t, keep.ID, professors[0].ID)

	_, err = repo.GetByID(ctx, gone.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
