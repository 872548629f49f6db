package repository

import (
	"context"
	"testing"

	"github.com/dfrestrepo/claustro/internal/domain"
	"github.com/dfrestrepo/claustro/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgramRepo_ListByFaculty(t *testing.T) {
	db := testutil.NewTestDB(t)
	faculties := NewSQLiteFacultyRepo(db)
	programs := NewSQLiteProgramRepo(db)
	ctx := context.Background()

	salud := testutil.NewTestFaculty("Ciencias de la Salud")
	ingenieria := testutil.NewTestFaculty("Ingenieria")
	require.NoError(t, faculties.Create(ctx, salud))
	require.NoError(t, faculties.Create(ctx, ingenieria))

	require.NoError(t, programs.Create(ctx, testutil.NewTestProgram(salud.ID, "Enfermeria")))
	require.NoError(t, programs.Create(ctx, testutil.NewTestProgram(salud.ID, "Medicina")))
	require.NoError(t, programs.Create(ctx, testutil.NewTestProgram(ingenieria.ID, "Sistemas")))

	listed, err := programs.ListByFaculty(ctx, salud.ID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "Enfermeria", listed[0].Name)
	assert.Equal(t, "Medicina", listed[1].Name)
}

func TestSubjectRepo_ListByProgram(t *testing.T) {
	db := testutil.NewTestDB(t)
	programs := NewSQLiteProgramRepo(db)
	subjects := NewSQLiteSubjectRepo(db)
	ctx := context.Background()

	prog := testutil.NewTestProgram("FAC-1", "Enfermeria")
	require.NoError(t, programs.Create(ctx, prog))
	require.NoError(t, subjects.Create(ctx, testutil.NewTestSubject(prog.ID, "Farmacologia")))
	require.NoError(t, subjects.Create(ctx, testutil.NewTestSubject("PROG-999", "Otra")))

	listed, err := subjects.ListByProgram(ctx, prog.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Farmacologia", listed[0].Name)
}

func TestCatalogItemRepo_ListByKind(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCatalogItemRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx,
		testutil.NewTestCatalogItem(domain.CatalogActivityType, "Clase magistral")))
	require.NoError(t, repo.Create(ctx,
		testutil.NewTestCatalogItem(domain.CatalogActivityType, "Laboratorio")))
	require.NoError(t, repo.Create(ctx,
		testutil.NewTestCatalogItem(domain.CatalogDeliveryForm, "Informe escrito")))

	types, err := repo.ListByKind(ctx, domain.CatalogActivityType)
	require.NoError(t, err)
	require.Len(t, types, 2)
	for _, item := range types {
		assert.Equal(t, domain.CatalogActivityType, item.Kind)
	}

	forms, err := repo.ListByKind(ctx, domain.CatalogDeliveryForm)
	require.NoError(t, err)
	require.Len(t, forms, 1)
	assert.Equal(t, "Informe escrito", forms[0].Name)
}

func TestFacultyRepo_UpdateAndDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteFacultyRepo(db)
	ctx := context.Background()

	fac := testutil.NewTestFaculty("Humanidades")
	require.NoError(t, repo.Create(ctx, fac))

	fac.Name = "Ciencias Humanas"
	require.NoError(t, repo.Update(ctx, fac))

	fetched, err := repo.GetByID(ctx, fac.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ciencias Humanas", fetched.Name)

	require.NoError(t, repo.Delete(ctx, fac.ID))
	_, err = repo.GetByID(ctx, fac.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
