// Package auth gates the admin area. Authentication itself is delegated to
// the hosted identity provider; this package only mints and verifies the
// session cookie and applies the per-request route guard.
package auth

import (
	"context"
	"errors"
	"time"

	fbauth "firebase.google.com/go/v4/auth"
)

// CookieName is the session cookie set on login and cleared on logout.
const CookieName = "cw_session"

// ErrNoSession is returned when a cookie is absent, expired, or invalid.
var ErrNoSession = errors.New("no active session")

// Sessions abstracts the hosted session mechanism: exchange an ID token for
// a session cookie, and verify a cookie back to a user id.
type Sessions interface {
	Create(ctx context.Context, idToken string, ttl time.Duration) (string, error)
	Verify(ctx context.Context, cookie string) (uid string, err error)
}

// FirebaseSessions implements Sessions on the Firebase Admin SDK.
type FirebaseSessions struct {
	client *fbauth.Client
}

func NewFirebaseSessions(client *fbauth.Client) *FirebaseSessions {
	return &FirebaseSessions{client: client}
}

func (s *FirebaseSessions) Create(ctx context.Context, idToken string, ttl time.Duration) (string, error) {
	cookie, err := s.client.SessionCookie(ctx, idToken, ttl)
	if err != nil {
		return "", ErrNoSession
	}
	return cookie, nil
}

func (s *FirebaseSessions) Verify(ctx context.Context, cookie string) (string, error) {
	if cookie == "" {
		return "", ErrNoSession
	}
	tok, err := s.client.VerifySessionCookie(ctx, cookie)
	if err != nil {
		return "", ErrNoSession
	}
	return tok.UID, nil
}
