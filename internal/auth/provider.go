package auth

import (
	"context"

	"github.com/ivanoskov/notes_app/internal/session"
)

// Provider is the session provider contract: credential calls, a
// current-session getter and change notifications. One provider serves
// one browser session.
type Provider interface {
	// Session returns the current session, nil when signed out.
	Session(ctx context.Context) (*session.Session, error)

	// Subscribe registers fn for session changes and returns its
	// unsubscribe func.
	Subscribe(fn func(*session.Session)) func()

	// SignIn exchanges credentials for a session and publishes the
	// change to subscribers.
	SignIn(ctx context.Context, email, password string) (*session.Session, error)

	// SignUp registers a new account. No session is issued until the
	// address is verified out of band.
	SignUp(ctx context.Context, email, password string) error

	// SignOut always clears the local session and publishes nil, even
	// when the remote revocation fails.
	SignOut(ctx context.Context) error

	// User performs a fresh identity lookup. It returns nil, nil when
	// no session is held.
	User(ctx context.Context) (*session.User, error)
}
