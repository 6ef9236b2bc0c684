package orchestrators

import (
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUnlockDisabled = errors.New("no admin password configured")
	ErrWrongPassword  = errors.New("wrong admin password")
)

// UnlockAdminInput carries the password typed on the dashboard.
type UnlockAdminInput struct {
	Password string
}

// UnlockAdminDeps holds dependencies for UnlockAdmin.
type UnlockAdminDeps struct {
	PasswordHash string // bcrypt hash; empty means mutations need no unlock
}

// ExecuteUnlockAdmin checks the dashboard password.
// PRE: PasswordHash is a bcrypt hash or empty
// POST: nil when the password matches; ErrUnlockDisabled when no hash is configured
func ExecuteUnlockAdmin(input UnlockAdminInput, deps UnlockAdminDeps) error {
	if deps.PasswordHash == "" {
		return ErrUnlockDisabled
	}
	if input.Password == "" {
		return ErrWrongPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(deps.PasswordHash), []byte(input.Password)); err != nil {
		slog.Info("admin_event", "event", "unlock_failed")
		return ErrWrongPassword
	}
	slog.Info("admin_event", "event", "unlock_succeeded")
	return nil
}
