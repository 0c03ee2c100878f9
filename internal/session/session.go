// Package session owns the sign-in lifecycle: exchanging credentials for a
// token, persisting it in the system keyring, restoring it on startup, and
// gating access by role. Patient accounts are rejected; this client is for
// professionals only.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lcabreja/psiq/internal/api"
	"github.com/lcabreja/psiq/internal/constants"
	"github.com/lcabreja/psiq/internal/keyring"
	"github.com/lcabreja/psiq/internal/logger"
)

// ErrRoleNotAllowed is returned when a patient account signs in.
var ErrRoleNotAllowed = errors.New("Access denied: Role not allowed.")

// ErrSignedOut is returned by operations that need an active session.
var ErrSignedOut = errors.New("not signed in")

// Session is the signed-in professional's identity for the life of the
// process. The zero value is a signed-out session.
type Session struct {
	Token          string
	UserID         int
	ProfessionalID int
	Email          string
	Role           string
}

// SignedIn reports whether a token is attached.
func (s *Session) SignedIn() bool {
	return s.Token != ""
}

// roleName maps the backend's role id to its display name. Unknown ids map
// to an empty name, matching the backend's own convention.
func roleName(roleID int) string {
	switch roleID {
	case 0:
		return constants.RoleAdministrator
	case 2:
		return constants.RolePsychologist
	case 3:
		return constants.RolePsychiatrist
	default:
		return ""
	}
}

// Restore rebuilds a session from the keyring token, if one is stored. A
// stale or rejected token clears the keyring and leaves the session signed
// out; that is not an error.
func Restore(ctx context.Context, client *api.Client) (*Session, error) {
	token, err := keyring.GetToken()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return &Session{}, nil
		}
		return nil, fmt.Errorf("reading stored session: %w", err)
	}

	client.SetToken(token)
	user, err := client.CurrentUser(ctx)
	if err != nil {
		logger.Warn("stored session rejected, signing out", "err", err)
		client.SetToken("")
		if derr := keyring.DeleteToken(); derr != nil && !errors.Is(derr, keyring.ErrNotFound) {
			logger.Warn("could not clear stored session", "err", derr)
		}
		return &Session{}, nil
	}

	if warn := expiryWarning(token); warn != "" {
		logger.Warn(warn)
	}

	return &Session{
		Token:          token,
		UserID:         user.ID,
		ProfessionalID: user.CharacterID,
		Email:          user.Email,
		Role:           roleName(user.RoleID),
	}, nil
}

// SignIn exchanges credentials for a token, verifies the account's role, and
// persists the token. Patient accounts (role id 1) are rejected and never
// persisted.
func SignIn(ctx context.Context, client *api.Client, username, password string) (*Session, error) {
	token, err := client.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	client.SetToken(token)
	user, err := client.CurrentUser(ctx)
	if err != nil {
		client.SetToken("")
		return nil, err
	}

	if user.RoleID == 1 {
		client.SetToken("")
		return nil, ErrRoleNotAllowed
	}

	if err := keyring.SetToken(token); err != nil {
		logger.Warn("could not persist session token", "err", err)
	}

	return &Session{
		Token:          token,
		UserID:         user.ID,
		ProfessionalID: user.CharacterID,
		Email:          user.Email,
		Role:           roleName(user.RoleID),
	}, nil
}

// SignOut clears the in-memory session and the stored token.
func SignOut(client *api.Client, sess *Session) error {
	client.SetToken("")
	*sess = Session{}

	if err := keyring.DeleteToken(); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("clearing stored session: %w", err)
	}
	return nil
}

// expiryWarning decodes the token's exp claim without verifying the
// signature, which stays the backend's job, and returns a warning when the
// token has expired or is about to.
func expiryWarning(token string) string {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return ""
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return ""
	}

	switch remaining := time.Until(exp.Time); {
	case remaining <= 0:
		return "stored session has expired, sign in again"
	case remaining < 10*time.Minute:
		return fmt.Sprintf("stored session expires in %s", remaining.Round(time.Minute))
	}
	return ""
}
