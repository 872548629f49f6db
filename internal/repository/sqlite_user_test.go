package repository

import (
	"context"
	"testing"

	"github.com/dfrestrepo/claustro/internal/domain"
	"github.com/dfrestrepo/claustro/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The migrations seed a default administrator account.
func TestUserRepo_SeededAdmin(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteUserRepo(db)
	ctx := context.Background()

	admin, err := repo.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin123", admin.Password)
	assert.Equal(t, domain.RoleAdministrador, admin.Role)
	assert.Equal(t, "Administrador", admin.Name)
}

func TestUserRepo_GetByUsername_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteUserRepo(db)
	ctx := context.Background()

	_, err := repo.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepo_Upsert_InsertsThenUpdates(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteUserRepo(db)
	ctx := context.Background()

	user := testutil.NewTestUser("mrivera", domain.RoleProfesor)
	require.NoError(t, repo.Upsert(ctx, user))

	user.Name = "Maria Rivera"
	require.NoError(t, repo.Upsert(ctx, user))

	fetched, err := repo.GetByUsername(ctx, "mrivera")
	require.NoError(t, err)
	assert.Equal(t, "Maria Rivera", fetched.Name)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	// Three seeded accounts plus the one just created.
	assert.Len(t, users, 4)
}

func TestUserRepo_UpdatePassword(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteUserRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.UpdatePassword(ctx, "admin", "nuevaClave1"))

	admin, err := repo.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "nuevaClave1", admin.Password)

	err = repo.UpdatePassword(ctx, "nobody", "x")
	assert.ErrorIs(t, err, ErrNotFound)
}
