// Package cli implements the psiq subcommands. Every command receives the
// shared Context built in main: the API client, the local settings store,
// and the restored session.
package cli

import (
	"context"
	"time"

	"github.com/lcabreja/psiq/internal/api"
	"github.com/lcabreja/psiq/internal/session"
	"github.com/lcabreja/psiq/internal/storage/sqlite"
)

type Context struct {
	Client  *api.Client
	Store   *sqlite.Store
	Session *session.Session
}

const commandTimeout = 30 * time.Second

// requestContext bounds a single command's backend calls.
func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), commandTimeout)
}

// RequireSession returns an error when no professional is signed in.
func (c *Context) RequireSession() error {
	if !c.Session.SignedIn() {
		return session.ErrSignedOut
	}
	return nil
}
