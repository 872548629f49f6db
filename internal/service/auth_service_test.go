package service

import (
	"context"
	"testing"

	"github.com/dfrestrepo/claustro/internal/domain"
	"github.com/dfrestrepo/claustro/internal/repository"
	"github.com/dfrestrepo/claustro/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuth(t *testing.T) (AuthService, repository.UserRepo) {
	t.Helper()
	db := testutil.NewTestDB(t)
	users := repository.NewSQLiteUserRepo(db)
	return NewAuthService(users), users
}

func TestAuthService_Login_SeededAdmin(t *testing.T) {
	auth, _ := newAuth(t)
	ctx := context.Background()

	user, err := auth.Login(ctx, "admin", "admin123", domain.RoleAdministrador)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdministrador, user.Role)
	assert.Equal(t, "Administrador", user.Name)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	auth, _ := newAuth(t)
	ctx := context.Background()

	_, err := auth.Login(ctx, "admin", "wrong", domain.RoleAdministrador)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_WrongRole(t *testing.T) {
	auth, _ := newAuth(t)
	ctx := context.Background()

	_, err := auth.Login(ctx, "admin", "admin123", domain.RoleEstudiante)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	auth, _ := newAuth(t)
	ctx := context.Background()

	_, err := auth.Login(ctx, "ghost", "admin123", domain.RoleAdministrador)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// Login must not trim or case-fold: credentials match exactly or not at all.
func TestAuthService_Login_ExactMatchOnly(t *testing.T) {
	auth, _ := newAuth(t)
	ctx := context.Background()

	_, err := auth.Login(ctx, "Admin", "admin123", domain.RoleAdministrador)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login(ctx, "admin", "admin123 ", domain.RoleAdministrador)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_BcryptStoredPassword(t *testing.T) {
	auth, users := newAuth(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secreto"), bcrypt.MinCost)
	require.NoError(t, err)

	user := testutil.NewTestUser("hashed", domain.RoleCoordinador)
	user.Password = string(hash)
	require.NoError(t, users.Upsert(ctx, user))

	got, err := auth.Login(ctx, "hashed", "secreto", domain.RoleCoordinador)
	require.NoError(t, err)
	assert.Equal(t, "hashed", got.Username)

	_, err = auth.Login(ctx, "hashed", "otro", domain.RoleCoordinador)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_ChangePassword(t *testing.T) {
	auth, _ := newAuth(t)
	ctx := context.Background()

	require.NoError(t, auth.ChangePassword(ctx, "admin", "admin123", "nueva456"))

	_, err := auth.Login(ctx, "admin", "admin123", domain.RoleAdministrador)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	user, err := auth.Login(ctx, "admin", "nueva456", domain.RoleAdministrador)
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
}

func TestAuthService_ChangePassword_WrongOld(t *testing.T) {
	auth, _ := newAuth(t)
	ctx := context.Background()

	err := auth.ChangePassword(ctx, "admin", "wrong", "nueva456")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
