package session

import (
	"context"
	"errors"

	kaviarhttp "github.com/usbtecnok/kaviar-admin-os/internal/pkg/http"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/jwt"
)

// State is the authentication state of a dashboard session
type State int

const (
	StateChecking State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "checking"
	}
}

// ErrNotFound is returned by stores when nothing is held under a key
var ErrNotFound = errors.New("session: not found")

// Session is the per-browser context threaded into every API call
type Session struct {
	ID    string
	Token string
	Admin string
	State State
}

// BearerToken returns the held token or ErrTokenMissing
func (s *Session) BearerToken() (string, error) {
	if s == nil || s.Token == "" {
		return "", kaviarhttp.ErrTokenMissing
	}
	return s.Token, nil
}

// Authenticated reports whether a token is held
func (s *Session) Authenticated() bool {
	return s != nil && s.State == StateAuthenticated
}

// Store persists the session token and the held list collections
type Store interface {
	SetToken(ctx context.Context, sid, token string) error
	GetToken(ctx context.Context, sid string) (string, error)
	SaveView(ctx context.Context, sid, name string, v interface{}) error
	LoadView(ctx context.Context, sid, name string, v interface{}) error
	Clear(ctx context.Context, sid string) error
}

// Resolve reads the token held for sid and reports the resulting state.
// Presence of a token is the only criterion; it is never validated here.
func Resolve(ctx context.Context, store Store, sid string) (*Session, error) {
	sess := &Session{ID: sid, State: StateChecking}
	if sid == "" {
		sess.State = StateUnauthenticated
		return sess, nil
	}

	token, err := store.GetToken(ctx, sid)
	if errors.Is(err, ErrNotFound) || (err == nil && token == "") {
		sess.State = StateUnauthenticated
		return sess, nil
	}
	if err != nil {
		return nil, err
	}

	sess.Token = token
	sess.Admin = jwt.Subject(token)
	sess.State = StateAuthenticated
	return sess, nil
}
