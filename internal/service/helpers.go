package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidCredentials is returned for any failed login, regardless of
// whether the username exists.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrPlanLocked is returned when a signed work plan is modified.
var ErrPlanLocked = errors.New("signed work plans are read-only")

var validate = validator.New(validator.WithRequiredStructEnabled())

// checkStruct validates a domain struct's tags and wraps the failure with
// the record kind for display.
func checkStruct(kind string, v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("invalid %s: %w", kind, err)
	}
	return nil
}
