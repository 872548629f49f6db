package service

import (
	"context"
	"errors"
	"strings"

	"github.com/dfrestrepo/claustro/internal/domain"
	"github.com/dfrestrepo/claustro/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier checks a submitted password against a stored one.
type CredentialVerifier interface {
	Verify(stored, submitted string) bool
}

// PlainVerifier compares passwords byte for byte. Seeded accounts store
// their passwords in plain text.
type PlainVerifier struct{}

func (PlainVerifier) Verify(stored, submitted string) bool {
	return stored == submitted
}

// BcryptVerifier treats the stored value as a bcrypt hash.
type BcryptVerifier struct{}

func (BcryptVerifier) Verify(stored, submitted string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(submitted)) == nil
}

type authService struct {
	users repository.UserRepo
}

func NewAuthService(users repository.UserRepo) AuthService {
	return &authService{users: users}
}

// verifierFor picks the strategy per stored value: bcrypt hashes start
// with the "$2" modular-crypt prefix.
func verifierFor(stored string) CredentialVerifier {
	if strings.HasPrefix(stored, "$2") {
		return BcryptVerifier{}
	}
	return PlainVerifier{}
}

// Login succeeds only when username, password and role all match the stored
// record. The error never reveals which of the three was wrong.
func (s *authService) Login(ctx context.Context, username, password string, role domain.Role) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !verifierFor(user.Password).Verify(user.Password, password) {
		return nil, ErrInvalidCredentials
	}
	if user.Role != role {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *authService) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}
	if !verifierFor(user.Password).Verify(user.Password, oldPassword) {
		return ErrInvalidCredentials
	}
	if newPassword == "" {
		return errors.New("new password must not be empty")
	}
	return s.users.UpdatePassword(ctx, username, newPassword)
}
